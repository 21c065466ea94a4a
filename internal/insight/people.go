package insight

import (
	"fmt"
	"slices"

	"github.com/listenupapp/catalog-insights/internal/catalog"
	"github.com/listenupapp/catalog-insights/internal/chart"
	"github.com/listenupapp/catalog-insights/internal/color"
	"github.com/listenupapp/catalog-insights/internal/normalize"
)

// RatingOrder is the column order of actor × rating tables. Codes not listed
// follow in alphabetical order.
//
//nolint:gochecknoglobals // Static ordering
var RatingOrder = []string{"TV-MA", "TV-14", "TV-PG", "PG-13", "PG", "R", "G", "TV-Y7", "TV-Y", "NR"}

// donutSlices is how many categories a donut shows before folding the rest into "Otros".
const donutSlices = 8

// DirectorRanking is the answer to Q7: which directors have the most titles,
// and whether they concentrate on one type or audience.
type DirectorRanking struct {
	// Ranking holds the top names, most titles first.
	Ranking []string
	// ByType has Movie, TV Show and Total per director, ascending by Total.
	ByType *Pivot
	// ByAudience has the kids label, adult label and Total per director, ascending by Total.
	ByAudience     *Pivot
	KidsLabel      string
	AdultLabel     string
	TopN           int
	UnknownRatings []string
}

// TopDirectors ranks directors by title count and breaks the top N down by
// type and by audience.
func (a *Analyzer) TopDirectors(t *catalog.Table) (*DirectorRanking, error) {
	if err := t.Require(catalog.ColDirector, catalog.ColType, catalog.ColRating); err != nil {
		return nil, err
	}

	rows := a.norm.ExplodeDirectors(withMediaType(t.Records))
	ranking := rankTokens(rows, a.opts.TopN)
	inTop := toSet(ranking)

	byType := newCrossTab()
	byAudience := newCrossTab()
	unknown := make(map[string]struct{})
	for _, row := range rows {
		if _, ok := inTop[row.Token]; !ok {
			continue
		}
		byType.add(row.Token, row.Type)
		for _, code := range a.norm.Ratings(row.Rating) {
			if !a.norm.IsKnownRating(code) {
				unknown[code] = struct{}{}
			}
			byAudience.add(row.Token, a.norm.Audience(code, a.opts.AudienceMode))
		}
	}

	kids, adult := a.opts.AudienceMode.Labels()
	return &DirectorRanking{
		Ranking:        ranking,
		ByType:         ascending(byType.pivotRows("director_type", catalog.ColDirector, ranking, typeColumns, true)),
		ByAudience:     ascending(byAudience.pivotRows("director_audience", catalog.ColDirector, ranking, []string{kids, adult}, true)),
		KidsLabel:      kids,
		AdultLabel:     adult,
		TopN:           a.opts.TopN,
		UnknownRatings: sortedKeys(unknown),
	}, nil
}

// Tables implements Outcome.
func (r *DirectorRanking) Tables() []*Pivot { return []*Pivot{r.ByType, r.ByAudience} }

// Rows implements Outcome.
func (r *DirectorRanking) Rows() int { return len(r.Ranking) }

// Unknown implements unknownReporter.
func (r *DirectorRanking) Unknown() []string { return r.UnknownRatings }

// Charts implements Outcome.
func (r *DirectorRanking) Charts() []Chart {
	return []Chart{
		{
			File: fmt.Sprintf("q7_top%d_directores_tipo_stacked.png", r.TopN),
			Spec: chart.Spec{
				Kind:       chart.KindStackedBarH,
				Title:      fmt.Sprintf("Top %d directores por tipo (Movie vs TV Show)", r.TopN),
				XLabel:     "Cantidad de títulos",
				Categories: r.ByType.Keys(),
				Series:     typeSeries(r.ByType),
			},
		},
		{
			File: fmt.Sprintf("q7_top%d_directores_audiencia_stacked.png", r.TopN),
			Spec: chart.Spec{
				Kind:       chart.KindStackedBarH,
				Title:      fmt.Sprintf("Top %d directores por audiencia (%s vs %s)", r.TopN, r.KidsLabel, r.AdultLabel),
				XLabel:     "Cantidad de títulos",
				Categories: r.ByAudience.Keys(),
				Series:     audienceSeries(r.ByAudience, r.KidsLabel, r.AdultLabel),
			},
		},
	}
}

// ActorRanking is the answer to Q8: who the most frequent cast members are and
// how their titles spread across ratings.
type ActorRanking struct {
	// Ranking holds the top names, most titles first.
	Ranking []string
	// Counts has the Total per actor, ascending.
	Counts *Pivot
	// ByRating has one column per rating (RatingOrder first) plus Total, ascending by Total.
	ByRating *Pivot
	// Props has ByRating's rating columns as row proportions, plus the row Total.
	Props *Pivot
	// RatingMix sums ByRating per rating over the top actors, descending.
	RatingMix *Pivot
	// TypeMix counts the top actors' rows per type, descending.
	TypeMix *Pivot
}

// TopActors ranks cast members by title count and breaks the top N down by rating.
func (a *Analyzer) TopActors(t *catalog.Table) (*ActorRanking, error) {
	if err := t.Require(catalog.ColCast, catalog.ColType, catalog.ColRating); err != nil {
		return nil, err
	}

	rows := a.norm.ExplodeCast(withMediaType(t.Records))
	ranking := rankTokens(rows, a.opts.TopN)
	inTop := toSet(ranking)

	totals := newCrossTab()
	byRating := newCrossTab()
	ratingMix := newCrossTab()
	typeMix := newCrossTab()
	for _, row := range rows {
		if _, ok := inTop[row.Token]; !ok {
			continue
		}
		totals.add(row.Token, ColTotal)
		if row.Type != "" {
			typeMix.add(row.Type, ColTotal)
		}
		for _, code := range a.norm.Ratings(row.Rating) {
			byRating.add(row.Token, code)
			ratingMix.add(code, ColTotal)
		}
	}

	ratingCols := orderRatings(byRating.colKeys())
	ratingTable := ascending(byRating.pivotRows("actor_rating", catalog.ColCast, ranking, ratingCols, true))

	mix := ratingMix.pivot("rating_mix", catalog.ColRating, []string{ColTotal}, false)
	mix.SortDesc(ColTotal)
	types := typeMix.pivot("type_mix", catalog.ColType, []string{ColTotal}, false)
	types.SortDesc(ColTotal)

	return &ActorRanking{
		Ranking:   ranking,
		Counts:    ascending(totals.pivotRows("actor_counts", catalog.ColCast, ranking, []string{ColTotal}, false)),
		ByRating:  ratingTable,
		Props:     rowProportions(ratingTable),
		RatingMix: mix,
		TypeMix:   types,
	}, nil
}

// Tables implements Outcome.
func (r *ActorRanking) Tables() []*Pivot {
	return []*Pivot{r.Counts, r.ByRating, r.Props, r.RatingMix, r.TypeMix}
}

// Rows implements Outcome.
func (r *ActorRanking) Rows() int { return len(r.Ranking) }

// Charts implements Outcome.
func (r *ActorRanking) Charts() []Chart {
	ratingCols := r.Props.Columns[:len(r.Props.Columns)-1]
	stacked := make([]chart.Series, 0, len(ratingCols))
	heat := make([]chart.Series, 0, len(ratingCols))
	for _, col := range ratingCols {
		stacked = append(stacked, chart.Series{Name: col, Values: r.Props.Column(col), Color: color.ForLabel(col)})
		heat = append(heat, chart.Series{Name: col, Values: r.ByRating.Column(col)})
	}

	return []Chart{
		{
			File: "q8_top_actores_count_barh.png",
			Spec: chart.Spec{
				Kind:       chart.KindBarH,
				Title:      "Actores con más títulos",
				XLabel:     "Cantidad de títulos",
				Categories: r.Counts.Keys(),
				Series:     []chart.Series{{Name: ColTotal, Values: r.Counts.Column(ColTotal), Color: color.Movie}},
			},
		},
		{
			File: "q8_top_actores_rating_stacked100.png",
			Spec: chart.Spec{
				Kind:       chart.KindStackedBarH,
				Title:      "Distribución por rating (actores Top)",
				XLabel:     "Proporción",
				Categories: r.Props.Keys(),
				Series:     stacked,
			},
		},
		{
			File: "q8_top_actores_rating_heatmap.png",
			Spec: chart.Spec{
				Kind:       chart.KindHeatmap,
				Title:      "Actores × rating (conteos)",
				XLabel:     "Rating",
				Categories: r.ByRating.Keys(),
				Series:     heat,
			},
		},
		{File: "q8_top_actores_rating_donut.png", Spec: donutSpec("Distribución de ratings (actores Top)", r.RatingMix)},
		{File: "q8_top_actores_type_donut.png", Spec: donutSpec("Distribución por tipo (actores Top)", r.TypeMix)},
	}
}

// withMediaType copies records with Type replaced by its normalized value.
func withMediaType(records []catalog.Record) []catalog.Record {
	out := make([]catalog.Record, len(records))
	for i, r := range records {
		r.Type = r.MediaType()
		out[i] = r
	}
	return out
}

// rankTokens counts exploded tokens and returns the n most frequent.
func rankTokens(rows []normalize.Expanded, n int) []string {
	c := make(counter)
	for _, row := range rows {
		c[row.Token]++
	}
	return c.top(n)
}

func toSet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// ascending orders p by Total ascending, the mirror of the descending ranking.
func ascending(p *Pivot) *Pivot {
	p.SortDesc(ColTotal)
	return p.Reversed()
}

// orderRatings puts the codes of RatingOrder first, then the rest alphabetically.
func orderRatings(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range RatingOrder {
		if slices.Contains(codes, c) {
			out = append(out, c)
		}
	}
	var rest []string
	for _, c := range codes {
		if !slices.Contains(RatingOrder, c) {
			rest = append(rest, c)
		}
	}
	slices.Sort(rest)
	return append(out, rest...)
}

// rowProportions divides every non-Total cell by its row sum. Rows summing to
// zero get zero proportions. The Total column is kept.
func rowProportions(p *Pivot) *Pivot {
	out := &Pivot{Name: "actor_rating_props", Index: p.Index, Columns: slices.Clone(p.Columns)}
	last := len(p.Columns) - 1
	for _, r := range p.Rows {
		total := r.Values[last]
		values := make([]float64, len(r.Values))
		for i := range last {
			if total > 0 {
				values[i] = r.Values[i] / total
			}
		}
		values[last] = total
		out.Rows = append(out.Rows, PivotRow{Key: r.Key, Values: values})
	}
	return out
}

// donutSpec charts a single-column Total table as a ring, folding everything
// after the first donutSlices rows into "Otros". Zero rows are left out.
func donutSpec(title string, p *Pivot) chart.Spec {
	var cats []string
	var vals []float64
	other := 0.0
	for _, r := range p.Rows {
		v := r.Values[0]
		if v <= 0 {
			continue
		}
		if len(cats) < donutSlices {
			cats = append(cats, r.Key)
			vals = append(vals, v)
			continue
		}
		other += v
	}
	if other > 0 {
		cats = append(cats, "Otros")
		vals = append(vals, other)
	}
	return chart.Spec{
		Kind:       chart.KindDonut,
		Title:      title,
		Categories: cats,
		Series:     []chart.Series{{Name: ColTotal, Values: vals}},
	}
}
