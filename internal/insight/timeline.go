package insight

import (
	"github.com/listenupapp/catalog-insights/internal/catalog"
	"github.com/listenupapp/catalog-insights/internal/chart"
	"github.com/listenupapp/catalog-insights/internal/color"
)

// Proportion columns of TypeShare.Table.
const (
	ColMovieShare = "MovieShare"
	ColTVShare    = "TVShare"
)

// TypeShare is the answer to Q1: how the movie/series split changed by release year.
type TypeShare struct {
	// Table has one row per release year (ascending) with Movie, TV Show,
	// Total, MovieShare and TVShare columns.
	Table *Pivot
}

// TypeShareByReleaseYear counts titles per release year and type and derives
// each type's share of the year. Rows with an unparseable year or a type other
// than Movie/TV Show are dropped.
func (a *Analyzer) TypeShareByReleaseYear(t *catalog.Table) (*TypeShare, error) {
	if err := t.Require(catalog.ColReleaseYear, catalog.ColType); err != nil {
		return nil, err
	}

	ct := newCrossTab()
	for _, r := range typeRows(t.Records) {
		year, ok := catalog.ParseReleaseYear(r.ReleaseYear)
		if !ok {
			continue
		}
		ct.add(itoa(year), r.Type)
	}

	p := ct.pivot("type_share", catalog.ColReleaseYear, typeColumns, true)
	p.Columns = append(p.Columns, ColMovieShare, ColTVShare)
	for i := range p.Rows {
		v := p.Rows[i].Values
		total := v[2]
		v = append(v, v[0]/total, v[1]/total)
		p.Rows[i].Values = v
	}
	return &TypeShare{Table: p}, nil
}

// Tables implements Outcome.
func (r *TypeShare) Tables() []*Pivot { return []*Pivot{r.Table} }

// Rows implements Outcome.
func (r *TypeShare) Rows() int { return r.Table.Len() }

// Charts implements Outcome.
func (r *TypeShare) Charts() []Chart {
	return []Chart{{
		File: "q1_proporcion_peliculas_series.png",
		Spec: chart.Spec{
			Kind:       chart.KindLines,
			Title:      "Proporción de películas y series por año de estreno",
			XLabel:     "Año de estreno",
			YLabel:     "Proporción",
			Categories: r.Table.Keys(),
			Series: []chart.Series{
				{Name: "Películas", Values: r.Table.Column(ColMovieShare), Color: color.Movie},
				{Name: "Series", Values: r.Table.Column(ColTVShare), Color: color.TV},
			},
		},
	}}
}

// Additions is the answer to Q2: titles added to the catalog per year and type.
type Additions struct {
	// Table has one row per year of date_added (ascending) with Movie and TV Show columns.
	Table *Pivot
}

// AdditionsByYear counts titles per year added and type. Records whose
// date_added does not parse are dropped.
func (a *Analyzer) AdditionsByYear(t *catalog.Table) (*Additions, error) {
	if err := t.Require(catalog.ColDateAdded, catalog.ColType); err != nil {
		return nil, err
	}

	ct := newCrossTab()
	for _, r := range typeRows(t.Records) {
		added, ok := catalog.ParseDateAdded(r.DateAdded)
		if !ok {
			continue
		}
		ct.add(itoa(added.Year()), r.Type)
	}
	return &Additions{Table: ct.pivot("additions", "year_added", typeColumns, false)}, nil
}

// Tables implements Outcome.
func (r *Additions) Tables() []*Pivot { return []*Pivot{r.Table} }

// Rows implements Outcome.
func (r *Additions) Rows() int { return r.Table.Len() }

// Charts implements Outcome.
func (r *Additions) Charts() []Chart {
	years := r.Table.Keys()
	return []Chart{
		{
			File: "q2_lineas_estrenos.png",
			Spec: chart.Spec{
				Kind:       chart.KindLines,
				Title:      "Títulos agregados por año",
				XLabel:     "Año agregado",
				YLabel:     "Cantidad de títulos",
				Categories: years,
				Series:     typeSeries(r.Table),
			},
		},
		{
			File: "q2_area_apilada.png",
			Spec: chart.Spec{
				Kind:       chart.KindColumns,
				Title:      "Títulos agregados por año (apilado)",
				XLabel:     "Año agregado",
				YLabel:     "Cantidad de títulos",
				Categories: years,
				Series:     typeSeries(r.Table),
			},
		},
	}
}
