package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CountryCutoff is the minimum similarity ratio for a fuzzy country match.
const CountryCutoff = 0.85

//nolint:gochecknoglobals // Compiled once, read-only
var (
	trailingParen = regexp.MustCompile(`\s*\(.*?\)\s*$`)
	apostrophes   = strings.NewReplacer("'", "", "’", "", "`", "")
)

// CleanCountryToken applies the textual cleanup that precedes any table lookup:
// whitespace collapse, trailing parenthetical removal, accent and apostrophe
// removal, then title case.
func CleanCountryToken(tok string) string {
	t := collapse(tok)
	if t == "" {
		return ""
	}
	t = trailingParen.ReplaceAllString(t, "")
	t = apostrophes.Replace(t)
	t = stripAccents(t)
	// Casers carry state, so one is built per call.
	t = cases.Title(language.Und).String(t)
	return strings.TrimSpace(t)
}

// stripAccents decomposes s and drops combining marks.
func stripAccents(s string) string {
	tr := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(tr, s)
	if err != nil {
		return s
	}
	return out
}

// Country normalizes a single country token. Aliases win over exact canonical
// matches, which win over fuzzy matches; a token with no close canonical name
// is returned cleaned but otherwise unchanged. Blank input yields "".
func (n *Normalizer) Country(tok string) string {
	t := CleanCountryToken(tok)
	if t == "" {
		return ""
	}
	if alias, ok := n.tables.countryAliases[strings.ToLower(t)]; ok {
		return alias
	}
	if _, ok := n.tables.canonicalSet[t]; ok {
		return t
	}
	if match, ok := ClosestMatch(t, n.tables.canonicalCountries, CountryCutoff); ok {
		return match
	}
	return t
}

// Countries splits a multi-country field and normalizes each token.
// Tokens that normalize to empty are dropped; order and duplicates are kept.
func (n *Normalizer) Countries(field string) []string {
	parts := splitField(field)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := n.Country(p); c != "" {
			out = append(out, c)
		}
	}
	return out
}
