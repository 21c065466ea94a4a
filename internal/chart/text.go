package chart

// clip shortens s to at most n runes, marking the cut with an ellipsis.
func clip(s string, n int) string {
	r := []rune(s)
	if n < 2 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func clipAll(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = clip(name, maxLabelRunes)
	}
	return out
}
