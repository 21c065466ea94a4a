package insight

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/listenupapp/catalog-insights/internal/catalog"
	"github.com/listenupapp/catalog-insights/internal/chart"
	"github.com/listenupapp/catalog-insights/internal/color"
)

// MinuteBins is the number of equal-width bins in the movie duration histogram.
const MinuteBins = 60

// TitleValue is one title with a parsed numeric duration.
type TitleValue struct {
	Title string `json:"title"`
	Value int    `json:"value"`
}

// Histogram holds bin edges (len(Counts)+1 values) and per-bin counts. Every
// bin is half-open except the last, which includes its right edge.
type Histogram struct {
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
}

// Labels returns one "lo-hi" label per bin.
func (h Histogram) Labels() []string {
	labels := make([]string, len(h.Counts))
	for i := range h.Counts {
		labels[i] = formatEdge(h.Edges[i]) + "-" + formatEdge(h.Edges[i+1])
	}
	return labels
}

func formatEdge(v float64) string {
	if v == math.Trunc(v) {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// EqualWidthHistogram splits [min, max] of values into n equal bins. A
// constant input widens the range by half a unit each side.
func EqualWidthHistogram(values []int, n int) Histogram {
	if len(values) == 0 || n < 1 {
		return Histogram{}
	}
	lo, hi := float64(slices.Min(values)), float64(slices.Max(values))
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	width := (hi - lo) / float64(n)

	h := Histogram{Edges: make([]float64, n+1), Counts: make([]int, n)}
	for i := range h.Edges {
		h.Edges[i] = lo + float64(i)*width
	}
	h.Edges[n] = hi
	for _, v := range values {
		i := int((float64(v) - lo) / width)
		if i >= n {
			i = n - 1
		}
		h.Counts[i]++
	}
	return h
}

// UnitHistogram bins values into [1,2), [2,3), ... up to the largest value.
// Values below 1 fall outside every bin.
func UnitHistogram(values []int) Histogram {
	if len(values) == 0 {
		return Histogram{}
	}
	top := slices.Max(values)
	if top < 1 {
		return Histogram{}
	}

	h := Histogram{Edges: make([]float64, top+1), Counts: make([]int, top)}
	for i := range h.Edges {
		h.Edges[i] = float64(i + 1)
	}
	for _, v := range values {
		if v >= 1 {
			h.Counts[v-1]++
		}
	}
	return h
}

// Durations is the answer to Q9: how long movies and series run.
type Durations struct {
	Movies     []TitleValue
	Shows      []TitleValue
	MinuteBins Histogram
	SeasonBins Histogram
}

// DurationDistribution parses duration into minutes for movies and seasons for
// series. Durations that do not parse are dropped.
func (a *Analyzer) DurationDistribution(t *catalog.Table) (*Durations, error) {
	if err := t.Require(catalog.ColType, catalog.ColDuration); err != nil {
		return nil, err
	}

	var movies, shows []TitleValue
	for _, r := range typeRows(t.Records) {
		d := catalog.ParseDuration(r.Duration)
		switch {
		case r.Type == catalog.TypeMovie && d.HasMinutes:
			movies = append(movies, TitleValue{Title: r.Title, Value: d.Minutes})
		case r.Type == catalog.TypeTVShow && d.HasSeasons:
			shows = append(shows, TitleValue{Title: r.Title, Value: d.Seasons})
		}
	}

	return &Durations{
		Movies:     movies,
		Shows:      shows,
		MinuteBins: EqualWidthHistogram(values(movies), MinuteBins),
		SeasonBins: UnitHistogram(values(shows)),
	}, nil
}

func values(tv []TitleValue) []int {
	out := make([]int, len(tv))
	for i, v := range tv {
		out[i] = v.Value
	}
	return out
}

func histogramPivot(name, index string, h Histogram) *Pivot {
	p := &Pivot{Name: name, Index: index, Columns: []string{"Count"}}
	for i, label := range h.Labels() {
		p.Rows = append(p.Rows, PivotRow{Key: label, Values: []float64{float64(h.Counts[i])}})
	}
	return p
}

func titlePivot(name, col string, tv []TitleValue) *Pivot {
	p := &Pivot{Name: name, Index: catalog.ColTitle, Columns: []string{col}}
	for _, v := range tv {
		p.Rows = append(p.Rows, PivotRow{Key: v.Title, Values: []float64{float64(v.Value)}})
	}
	return p
}

// Tables implements Outcome.
func (r *Durations) Tables() []*Pivot {
	return []*Pivot{
		titlePivot("movies", "duration_minutes", r.Movies),
		titlePivot("tvshows", "duration_seasons", r.Shows),
		histogramPivot("movie_minutes_hist", "minutes", r.MinuteBins),
		histogramPivot("tv_seasons_hist", "seasons", r.SeasonBins),
	}
}

// Rows implements Outcome.
func (r *Durations) Rows() int { return len(r.Movies) + len(r.Shows) }

// Charts implements Outcome.
func (r *Durations) Charts() []Chart {
	return []Chart{
		{
			File: "q9_movies_duration_hist.png",
			Spec: histogramSpec("Duración de películas", "Minutos", r.MinuteBins, chart.Series{Name: "Count", Color: color.Movie}),
		},
		{
			File: "q9_tvshows_duration_hist.png",
			Spec: histogramSpec("Duración de series", "Temporadas", r.SeasonBins, chart.Series{Name: "Count", Color: color.TV}),
		},
	}
}

// histogramSpec fills series c with the bin counts of h.
func histogramSpec(title, xLabel string, h Histogram, c chart.Series) chart.Spec {
	counts := make([]float64, len(h.Counts))
	for i, n := range h.Counts {
		counts[i] = float64(n)
	}
	c.Values = counts
	return chart.Spec{
		Kind:       chart.KindColumns,
		Title:      title,
		XLabel:     xLabel,
		YLabel:     fmt.Sprintf("Cantidad de títulos (%d)", sum(h.Counts)),
		Categories: h.Labels(),
		Series:     []chart.Series{c},
	}
}

func sum(xs []int) int {
	n := 0
	for _, x := range xs {
		n += x
	}
	return n
}
