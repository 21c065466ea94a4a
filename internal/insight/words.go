package insight

import (
	"github.com/listenupapp/catalog-insights/internal/catalog"
	"github.com/listenupapp/catalog-insights/internal/chart"
	"github.com/listenupapp/catalog-insights/internal/color"
	"github.com/listenupapp/catalog-insights/internal/normalize"
)

// WordRanking is the answer to Q10: the most used words in titles and descriptions.
// Both lists are ordered by ascending count.
type WordRanking struct {
	Titles       []normalize.WordCount
	Descriptions []normalize.WordCount
}

// TopWords counts English words in titles and descriptions separately.
func (a *Analyzer) TopWords(t *catalog.Table) (*WordRanking, error) {
	if err := t.Require(catalog.ColTitle, catalog.ColDescription); err != nil {
		return nil, err
	}

	titles := make([]string, 0, t.Len())
	descriptions := make([]string, 0, t.Len())
	for _, r := range t.Records {
		titles = append(titles, r.Title)
		descriptions = append(descriptions, r.Description)
	}
	return &WordRanking{
		Titles:       a.norm.TopWords(titles, a.opts.TopN, a.opts.MinWordLen),
		Descriptions: a.norm.TopWords(descriptions, a.opts.TopN, a.opts.MinWordLen),
	}, nil
}

func wordPivot(name string, words []normalize.WordCount) *Pivot {
	p := &Pivot{Name: name, Index: "word", Columns: []string{"Count"}}
	for _, w := range words {
		p.Rows = append(p.Rows, PivotRow{Key: w.Word, Values: []float64{float64(w.Count)}})
	}
	return p
}

// Tables implements Outcome.
func (r *WordRanking) Tables() []*Pivot {
	return []*Pivot{wordPivot("top_words_titles", r.Titles), wordPivot("top_words_descriptions", r.Descriptions)}
}

// Rows implements Outcome.
func (r *WordRanking) Rows() int { return len(r.Titles) + len(r.Descriptions) }

// Charts implements Outcome.
func (r *WordRanking) Charts() []Chart {
	return []Chart{
		{File: "q10_top_words_titles.png", Spec: wordSpec("Top palabras en títulos", r.Titles, chart.Series{Color: color.Movie})},
		{File: "q10_top_words_descriptions.png", Spec: wordSpec("Top palabras en descripciones", r.Descriptions, chart.Series{Color: color.TV})},
	}
}

func wordSpec(title string, words []normalize.WordCount, s chart.Series) chart.Spec {
	cats := make([]string, len(words))
	s.Name = "Frecuencia"
	s.Values = make([]float64, len(words))
	for i, w := range words {
		cats[i] = w.Word
		s.Values[i] = float64(w.Count)
	}
	return chart.Spec{
		Kind:       chart.KindBarH,
		Title:      title,
		XLabel:     "Frecuencia",
		Categories: cats,
		Series:     []chart.Series{s},
	}
}
