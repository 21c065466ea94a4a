package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	n := New(nil)

	tests := []struct {
		name   string
		text   string
		minLen int
		want   []string
	}{
		{"all stop words or short", "The Movie Show 2 Shows", 3, []string{}},
		{"apostrophe splits", "A man's long journey", 3, []string{"man", "long", "journey"}},
		{"min length", "An ox and a yak", 2, []string{"ox", "yak"}},
		{"default min length", "go to the zoo", 0, []string{"zoo"}},
		{"non ascii letters split", "Café society", 3, []string{"caf", "society"}},
		{"empty", "", 3, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Words(tt.text, tt.minLen)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTopWords(t *testing.T) {
	n := New(nil)
	texts := []string{"great great plot", "great acting"}

	got := n.TopWords(texts, 2, 3)
	// plot and acting tie at 1; plot is seen first.
	assert.Equal(t, []WordCount{{"plot", 1}, {"great", 3}}, got)

	// Re-running over the same input gives the same answer.
	assert.Equal(t, got, n.TopWords(texts, 2, 3))
}

func TestTopWords_Edges(t *testing.T) {
	n := New(nil)

	assert.Empty(t, n.TopWords(nil, 5, 3))
	assert.Empty(t, n.TopWords([]string{"the and of"}, 5, 3))
	assert.Empty(t, n.TopWords([]string{"plenty of words"}, 0, 3))

	got := n.TopWords([]string{"zeta alpha zeta"}, 10, 3)
	assert.Equal(t, []WordCount{{"alpha", 1}, {"zeta", 2}}, got)
}

func TestTopWords_TiesKeepFirstSeenOrder(t *testing.T) {
	n := New(nil)

	tests := []struct {
		name  string
		texts []string
		topN  int
		want  []WordCount
	}{
		{"cutoff keeps earlier word", []string{"zebra apple"}, 1, []WordCount{{"zebra", 1}}},
		{"ties stay in order of appearance", []string{"zebra apple", "mango"}, 3,
			[]WordCount{{"zebra", 1}, {"apple", 1}, {"mango", 1}}},
		{"later word wins on count", []string{"zebra apple apple"}, 1, []WordCount{{"apple", 2}}},
		{"first seen across texts", []string{"delta", "bravo delta", "bravo charlie"}, 3,
			[]WordCount{{"charlie", 1}, {"delta", 2}, {"bravo", 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.TopWords(tt.texts, tt.topN, 3))
		})
	}
}
