// Package insight answers the ten fixed questions about the media catalog.
//
// Every question validates its required columns before reading any record,
// aggregates through the normalize package, and returns a typed outcome that
// can describe its own tables (for export) and charts (for rendering).
package insight

import (
	"github.com/listenupapp/catalog-insights/internal/catalog"
	"github.com/listenupapp/catalog-insights/internal/chart"
	"github.com/listenupapp/catalog-insights/internal/color"
	"github.com/listenupapp/catalog-insights/internal/normalize"
)

// Defaults used when Options leaves a field zero.
const (
	DefaultTopN = 20
)

// Options tune the questions.
type Options struct {
	TopN         int
	MinWordLen   int
	AudienceMode normalize.AudienceMode
}

// Chart pairs a chart description with the file name it is written to inside
// the question's output directory.
type Chart struct {
	File string
	Spec chart.Spec
}

// Outcome is implemented by every question result.
type Outcome interface {
	// Tables returns the result tables in report order.
	Tables() []*Pivot
	// Charts returns the charts to draw. Charts with empty specs are skipped.
	Charts() []Chart
	// Rows is the number of primary result rows, used for logging.
	Rows() int
}

// Analyzer runs individual questions against a catalog table.
type Analyzer struct {
	norm *normalize.Normalizer
	opts Options
}

// NewAnalyzer binds the questions to a normalizer and options.
func NewAnalyzer(norm *normalize.Normalizer, opts Options) *Analyzer {
	if norm == nil {
		norm = normalize.New(nil)
	}
	if opts.TopN < 1 {
		opts.TopN = DefaultTopN
	}
	if opts.MinWordLen < 1 {
		opts.MinWordLen = normalize.DefaultMinWordLen
	}
	if opts.AudienceMode == "" {
		opts.AudienceMode = normalize.ModeAdultKids
	}
	return &Analyzer{norm: norm, opts: opts}
}

// Options returns the effective options.
func (a *Analyzer) Options() Options {
	return a.opts
}

// typeRows keeps records whose normalized type is Movie or TV Show and
// rewrites their Type field to the normalized value.
func typeRows(records []catalog.Record) []catalog.Record {
	out := make([]catalog.Record, 0, len(records))
	for _, r := range records {
		switch t := r.MediaType(); t {
		case catalog.TypeMovie, catalog.TypeTVShow:
			r.Type = t
			out = append(out, r)
		}
	}
	return out
}

//nolint:gochecknoglobals // Fixed column order
var typeColumns = []string{catalog.TypeMovie, catalog.TypeTVShow}

// typeSeries builds the Movie and TV Show series of p with the brand colors.
func typeSeries(p *Pivot) []chart.Series {
	return []chart.Series{
		{Name: "Movies", Values: p.Column(catalog.TypeMovie), Color: color.Movie},
		{Name: "TV Shows", Values: p.Column(catalog.TypeTVShow), Color: color.TV},
	}
}

// audienceSeries builds the kids and adult series of p.
func audienceSeries(p *Pivot, kids, adult string) []chart.Series {
	return []chart.Series{
		{Name: kids, Values: p.Column(kids), Color: color.TV},
		{Name: adult, Values: p.Column(adult), Color: color.Movie},
	}
}

var (
	_ Outcome = (*TypeShare)(nil)
	_ Outcome = (*Additions)(nil)
	_ Outcome = (*CountryRanking)(nil)
	_ Outcome = (*RatingTypes)(nil)
	_ Outcome = (*CountryAudience)(nil)
	_ Outcome = (*Seasonality)(nil)
	_ Outcome = (*DirectorRanking)(nil)
	_ Outcome = (*ActorRanking)(nil)
	_ Outcome = (*Durations)(nil)
	_ Outcome = (*WordRanking)(nil)
)
