package insight

import (
	"github.com/listenupapp/catalog-insights/internal/catalog"
	"github.com/listenupapp/catalog-insights/internal/chart"
	"github.com/listenupapp/catalog-insights/internal/color"
)

// RatingTypes is the answer to Q4: which type of content dominates each rating.
type RatingTypes struct {
	// Counts has Movie, TV Show and Total per rating, Total descending.
	Counts *Pivot
	// Props has MovieShare, TVShare and Total per rating, in the same order.
	Props *Pivot
}

// RatingByType explodes normalized ratings and counts titles per rating and type.
// Records without a rating contribute nothing.
func (a *Analyzer) RatingByType(t *catalog.Table) (*RatingTypes, error) {
	if err := t.Require(catalog.ColRating, catalog.ColType); err != nil {
		return nil, err
	}

	ct := newCrossTab()
	for _, row := range a.norm.ExplodeRatings(typeRows(t.Records)) {
		ct.add(row.Token, row.Type)
	}
	counts := ct.pivot("counts", catalog.ColRating, typeColumns, true)
	counts.SortDesc(ColTotal)

	props := &Pivot{
		Name:    "props",
		Index:   catalog.ColRating,
		Columns: []string{ColMovieShare, ColTVShare, ColTotal},
		Rows:    make([]PivotRow, 0, counts.Len()),
	}
	for _, r := range counts.Rows {
		movies, shows, total := r.Values[0], r.Values[1], r.Values[2]
		if total <= 0 {
			continue
		}
		props.Rows = append(props.Rows, PivotRow{
			Key:    r.Key,
			Values: []float64{movies / total, shows / total, total},
		})
	}
	return &RatingTypes{Counts: counts, Props: props}, nil
}

// Tables implements Outcome.
func (r *RatingTypes) Tables() []*Pivot { return []*Pivot{r.Counts, r.Props} }

// Rows implements Outcome.
func (r *RatingTypes) Rows() int { return r.Counts.Len() }

// Charts implements Outcome.
func (r *RatingTypes) Charts() []Chart {
	counts := r.Counts.Reversed()
	props := r.Props.Reversed()
	return []Chart{
		{
			File: "q4_rating_tipo_grouped_barh.png",
			Spec: chart.Spec{
				Kind:       chart.KindBarH,
				Title:      "Títulos por rating y tipo",
				XLabel:     "Cantidad de títulos",
				Categories: counts.Keys(),
				Series:     typeSeries(counts),
			},
		},
		{
			File: "q4_rating_tipo_stacked100.png",
			Spec: chart.Spec{
				Kind:       chart.KindStackedBarH,
				Title:      "Proporción de tipo dentro de cada rating",
				XLabel:     "Proporción",
				Categories: props.Keys(),
				Series: []chart.Series{
					{Name: "Movies", Values: props.Column(ColMovieShare), Color: color.Movie},
					{Name: "TV Shows", Values: props.Column(ColTVShare), Color: color.TV},
				},
			},
		},
	}
}
