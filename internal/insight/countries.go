package insight

import (
	"fmt"
	"slices"

	"github.com/listenupapp/catalog-insights/internal/catalog"
	"github.com/listenupapp/catalog-insights/internal/chart"
)

// rankSlice is one band of a ranking, e.g. ranks 11 to 20.
type rankSlice struct {
	name  string
	file  string
	label string
	from  int
	to    int
}

//nolint:gochecknoglobals // Fixed ranking bands
var rankSlices = []rankSlice{
	{"top1_10", "top01_10", "1–10", 0, 10},
	{"top11_20", "top11_20", "11–20", 10, 20},
	{"top21_30", "top21_30", "21–30", 20, 30},
}

// RankedSlices holds a full ranking and its three bands. Each band is ordered
// ascending by Total so the largest bar is drawn on top.
type RankedSlices struct {
	All   *Pivot
	Bands []*Pivot
}

func sliceRanking(all *Pivot) RankedSlices {
	bands := make([]*Pivot, 0, len(rankSlices))
	for _, s := range rankSlices {
		bands = append(bands, all.Slice(s.from, s.to).Reversed().Renamed(s.name))
	}
	return RankedSlices{All: all, Bands: bands}
}

// CountryRanking is the answer to Q3: which countries contribute the most titles, by type.
type CountryRanking struct {
	RankedSlices
}

// TopCountries explodes co-productions into one row per normalized country and
// ranks countries by title count. All is ordered by Total descending.
func (a *Analyzer) TopCountries(t *catalog.Table) (*CountryRanking, error) {
	if err := t.Require(catalog.ColCountry, catalog.ColType); err != nil {
		return nil, err
	}

	ct := newCrossTab()
	for _, row := range a.norm.ExplodeCountries(typeRows(t.Records)) {
		ct.add(row.Token, row.Type)
	}
	all := ct.pivot("countries", catalog.ColCountry, typeColumns, true)
	all.SortDesc(ColTotal)
	return &CountryRanking{RankedSlices: sliceRanking(all)}, nil
}

// Tables implements Outcome.
func (r *CountryRanking) Tables() []*Pivot {
	return append([]*Pivot{r.All}, r.Bands...)
}

// Rows implements Outcome.
func (r *CountryRanking) Rows() int { return r.All.Len() }

// Charts implements Outcome.
func (r *CountryRanking) Charts() []Chart {
	charts := make([]Chart, 0, len(r.Bands))
	for i, band := range r.Bands {
		s := rankSlices[i]
		charts = append(charts, Chart{
			File: fmt.Sprintf("q3_%s_grouped_barh.png", s.file),
			Spec: chart.Spec{
				Kind:       chart.KindBarH,
				Title:      fmt.Sprintf("Top %s países (Movies vs TV Shows)", s.label),
				XLabel:     "Cantidad de títulos",
				Categories: band.Keys(),
				Series:     typeSeries(band),
			},
		})
	}
	return charts
}

// CountryAudience is the answer to Q5: which countries produce the most adult
// and kids content.
type CountryAudience struct {
	RankedSlices
	KidsLabel  string
	AdultLabel string
	// UnknownRatings lists, sorted, the rating codes outside both audience sets
	// that were classified with the adult default.
	UnknownRatings []string
}

// CountryAudienceRanking explodes countries, then ratings, maps every rating to
// its audience and ranks countries by total.
func (a *Analyzer) CountryAudienceRanking(t *catalog.Table) (*CountryAudience, error) {
	if err := t.Require(catalog.ColCountry, catalog.ColRating); err != nil {
		return nil, err
	}

	kids, adult := a.opts.AudienceMode.Labels()
	unknown := make(map[string]struct{})
	ct := newCrossTab()
	for _, c := range a.norm.ExplodeCountries(t.Records) {
		for _, code := range a.norm.Ratings(c.Rating) {
			if !a.norm.IsKnownRating(code) {
				unknown[code] = struct{}{}
			}
			ct.add(c.Token, a.norm.Audience(code, a.opts.AudienceMode))
		}
	}
	all := ct.pivot("country_audience", catalog.ColCountry, []string{kids, adult}, true)
	all.SortDesc(ColTotal)
	return &CountryAudience{
		RankedSlices:   sliceRanking(all),
		KidsLabel:      kids,
		AdultLabel:     adult,
		UnknownRatings: sortedKeys(unknown),
	}, nil
}

// Tables implements Outcome.
func (r *CountryAudience) Tables() []*Pivot {
	return append([]*Pivot{r.All}, r.Bands...)
}

// Rows implements Outcome.
func (r *CountryAudience) Rows() int { return r.All.Len() }

// Charts implements Outcome.
func (r *CountryAudience) Charts() []Chart {
	charts := make([]Chart, 0, len(r.Bands))
	for i, band := range r.Bands {
		s := rankSlices[i]
		charts = append(charts, Chart{
			File: fmt.Sprintf("q5_%s_audiencias_pais.png", s.file),
			Spec: chart.Spec{
				Kind:       chart.KindBarH,
				Title:      fmt.Sprintf("Top %s países (%s vs %s)", s.label, r.AdultLabel, r.KidsLabel),
				XLabel:     "Cantidad de títulos",
				Categories: band.Keys(),
				Series:     audienceSeries(band, r.KidsLabel, r.AdultLabel),
			},
		})
	}
	return charts
}

// Unknown implements unknownReporter.
func (r *CountryAudience) Unknown() []string { return r.UnknownRatings }

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
