package normalize

import (
	"regexp"
	"slices"
	"strings"
)

// DefaultMinWordLen is the shortest token Words keeps when no length is configured.
const DefaultMinWordLen = 3

//nolint:gochecknoglobals // Compiled once, read-only
var letterRuns = regexp.MustCompile(`[a-z]+`)

// WordCount is one entry of a word-frequency ranking.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Words lowercases text and returns its ASCII letter runs, minus stop words and
// tokens shorter than minLen. A minLen below 1 selects DefaultMinWordLen.
func (n *Normalizer) Words(text string, minLen int) []string {
	if minLen < 1 {
		minLen = DefaultMinWordLen
	}
	tokens := letterRuns.FindAllString(strings.ToLower(text), -1)
	out := tokens[:0]
	for _, tok := range tokens {
		if len(tok) < minLen || n.tables.IsStopWord(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// TopWords counts Words over every text and keeps the topN most frequent.
// Count ties keep the order in which the words were first seen. The result is
// ordered by ascending count so it plots bottom-up.
func (n *Normalizer) TopWords(texts []string, topN, minLen int) []WordCount {
	if topN < 1 {
		return []WordCount{}
	}

	counts := make(map[string]int)
	var seen []string
	for _, text := range texts {
		for _, w := range n.Words(text, minLen) {
			if counts[w] == 0 {
				seen = append(seen, w)
			}
			counts[w]++
		}
	}

	ranked := make([]WordCount, 0, len(seen))
	for _, w := range seen {
		ranked = append(ranked, WordCount{Word: w, Count: counts[w]})
	}
	slices.SortStableFunc(ranked, func(a, b WordCount) int { return b.Count - a.Count })
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	slices.SortStableFunc(ranked, func(a, b WordCount) int { return a.Count - b.Count })
	return ranked
}
