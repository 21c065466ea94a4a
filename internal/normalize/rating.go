package normalize

import "strings"

// Rating normalizes one rating token to its hyphenated upper-case code,
// for example "pg 13" to "PG-13" and "tv ma" to "TV-MA". Blank input yields "".
func (n *Normalizer) Rating(tok string) string {
	t := strings.ToUpper(collapse(tok))
	t = strings.ReplaceAll(t, ".", "")
	if t == "" {
		return ""
	}
	t = n.fixRatingSpacing(t)
	if alias, ok := n.tables.ratingAliases[t]; ok {
		t = alias
	}
	t = hyphenRuns.ReplaceAllString(t, "-")
	return strings.Trim(t, " -")
}

// fixRatingSpacing rewrites "TV MA" style codes. Rules run in table order.
func (n *Normalizer) fixRatingSpacing(t string) string {
	for _, r := range n.tables.ratingSpacing {
		t = strings.ReplaceAll(t, r.Old, r.New)
	}
	return t
}

// Ratings splits a multi-valued rating field and normalizes each token.
func (n *Normalizer) Ratings(field string) []string {
	parts := splitField(field)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if r := n.Rating(p); r != "" {
			out = append(out, r)
		}
	}
	return out
}
