package insight

import (
	"github.com/listenupapp/catalog-insights/internal/catalog"
	"github.com/listenupapp/catalog-insights/internal/chart"
	"github.com/listenupapp/catalog-insights/internal/color"
)

//nolint:gochecknoglobals // Static labels
var monthLabels = []string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

// monthKeys are the row keys of the seasonality tables, "1" through "12".
func monthKeys() []string {
	keys := make([]string, 12)
	for i := range keys {
		keys[i] = itoa(i + 1)
	}
	return keys
}

// Seasonality is the answer to Q6: in which months each genre bucket is added.
type Seasonality struct {
	// ByGenre has one row per month (1..12, zero-filled) and one column per
	// genre bucket, buckets in alphabetical order.
	ByGenre *Pivot
	// Totals has one row per month with the Total of exploded genre rows.
	Totals *Pivot
}

// GenreSeasonality explodes listed_in into genre buckets and counts them by the
// month of date_added. Records whose date does not parse are dropped.
func (a *Analyzer) GenreSeasonality(t *catalog.Table) (*Seasonality, error) {
	if err := t.Require(catalog.ColDateAdded, catalog.ColListedIn); err != nil {
		return nil, err
	}

	ct := newCrossTab()
	totals := newCrossTab()
	for _, row := range a.norm.ExplodeGenres(t.Records) {
		added, ok := catalog.ParseDateAdded(row.DateAdded)
		if !ok {
			continue
		}
		month := itoa(int(added.Month()))
		ct.add(month, row.Token)
		totals.add(month, ColTotal)
	}

	months := monthKeys()
	return &Seasonality{
		ByGenre: ct.pivotRows("month_genre", "month", months, ct.colKeys(), false),
		Totals:  totals.pivotRows("month_totals", "month", months, []string{ColTotal}, false),
	}, nil
}

// Tables implements Outcome.
func (r *Seasonality) Tables() []*Pivot { return []*Pivot{r.ByGenre, r.Totals} }

// Rows implements Outcome.
func (r *Seasonality) Rows() int {
	n := 0
	for _, v := range r.Totals.Column(ColTotal) {
		n += int(v)
	}
	return n
}

// Charts implements Outcome. Both charts are skipped when no record carried a
// usable date.
func (r *Seasonality) Charts() []Chart {
	if r.Rows() == 0 {
		return nil
	}

	heat := make([]chart.Series, 0, len(r.ByGenre.Columns))
	for _, g := range r.ByGenre.Columns {
		heat = append(heat, chart.Series{Name: g, Values: r.ByGenre.Column(g)})
	}
	return []Chart{
		{
			File: "q6_heatmap_categorias.png",
			Spec: chart.Spec{
				Kind:       chart.KindHeatmap,
				Title:      "Estacionalidad de géneros (títulos agregados por mes)",
				XLabel:     "Género",
				YLabel:     "Mes",
				Categories: monthLabels,
				Series:     heat,
			},
		},
		{
			File: "q6_barras_meses.png",
			Spec: chart.Spec{
				Kind:       chart.KindColumns,
				Title:      "Total de títulos agregados por mes",
				XLabel:     "Mes",
				YLabel:     "Cantidad",
				Categories: monthLabels,
				Series: []chart.Series{
					{Name: ColTotal, Values: r.Totals.Column(ColTotal), Color: color.Movie},
				},
			},
		},
	}
}
