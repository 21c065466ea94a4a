package normalize

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Similarity returns the Ratcliff/Obershelp ratio of a and b in [0, 1],
// compared rune by rune.
func Similarity(a, b string) float64 {
	m := difflib.NewMatcher(splitRunes(a), splitRunes(b))
	return m.Ratio()
}

// ClosestMatch returns the candidate most similar to word whose ratio is at
// least cutoff. Ties go to the candidate listed first.
func ClosestMatch(word string, candidates []string, cutoff float64) (string, bool) {
	if word == "" || len(candidates) == 0 {
		return "", false
	}

	m := difflib.NewMatcher(nil, nil)
	m.SetSeq2(splitRunes(word))

	best, bestScore := "", -1.0
	for _, c := range candidates {
		m.SetSeq1(splitRunes(c))
		// Cheap upper bounds first, the full ratio only when they pass.
		if m.RealQuickRatio() < cutoff || m.QuickRatio() < cutoff {
			continue
		}
		if score := m.Ratio(); score >= cutoff && score > bestScore {
			best, bestScore = c, score
		}
	}
	return best, bestScore >= 0
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
