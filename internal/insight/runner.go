package insight

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/listenupapp/catalog-insights/internal/catalog"
	"github.com/listenupapp/catalog-insights/internal/chart"
	domainerrors "github.com/listenupapp/catalog-insights/internal/errors"
	"github.com/listenupapp/catalog-insights/internal/id"
)

// Renderer draws one chart to path.
type Renderer interface {
	Render(spec chart.Spec, path string) error
}

// ResultSink persists a finished report.
type ResultSink interface {
	SaveReport(ctx context.Context, report *Report) error
}

// unknownReporter is implemented by outcomes that classify ratings into audiences.
type unknownReporter interface {
	Unknown() []string
}

// Question is one entry of the fixed question list.
type Question struct {
	ID       string
	Title    string
	Requires []string
	run      func(*Analyzer, *catalog.Table) (Outcome, error)
}

// Questions returns the ten questions in report order.
func Questions() []Question {
	return []Question{
		{"q1", "Proporción de películas y series por año de estreno",
			[]string{catalog.ColReleaseYear, catalog.ColType},
			func(a *Analyzer, t *catalog.Table) (Outcome, error) { return a.TypeShareByReleaseYear(t) }},
		{"q2", "Títulos agregados por año y tipo",
			[]string{catalog.ColDateAdded, catalog.ColType},
			func(a *Analyzer, t *catalog.Table) (Outcome, error) { return a.AdditionsByYear(t) }},
		{"q3", "Países con más títulos",
			[]string{catalog.ColCountry, catalog.ColType},
			func(a *Analyzer, t *catalog.Table) (Outcome, error) { return a.TopCountries(t) }},
		{"q4", "Tipo de contenido por rating",
			[]string{catalog.ColRating, catalog.ColType},
			func(a *Analyzer, t *catalog.Table) (Outcome, error) { return a.RatingByType(t) }},
		{"q5", "Países por audiencia",
			[]string{catalog.ColCountry, catalog.ColRating},
			func(a *Analyzer, t *catalog.Table) (Outcome, error) { return a.CountryAudienceRanking(t) }},
		{"q6", "Estacionalidad de géneros",
			[]string{catalog.ColDateAdded, catalog.ColListedIn},
			func(a *Analyzer, t *catalog.Table) (Outcome, error) { return a.GenreSeasonality(t) }},
		{"q7", "Directores con más títulos",
			[]string{catalog.ColDirector, catalog.ColType, catalog.ColRating},
			func(a *Analyzer, t *catalog.Table) (Outcome, error) { return a.TopDirectors(t) }},
		{"q8", "Actores más frecuentes",
			[]string{catalog.ColCast, catalog.ColType, catalog.ColRating},
			func(a *Analyzer, t *catalog.Table) (Outcome, error) { return a.TopActors(t) }},
		{"q9", "Duración de películas y series",
			[]string{catalog.ColType, catalog.ColDuration},
			func(a *Analyzer, t *catalog.Table) (Outcome, error) { return a.DurationDistribution(t) }},
		{"q10", "Palabras más usadas en títulos y descripciones",
			[]string{catalog.ColTitle, catalog.ColDescription},
			func(a *Analyzer, t *catalog.Table) (Outcome, error) { return a.TopWords(t) }},
	}
}

// RequiredColumns returns every column any question needs, in first-use order.
func RequiredColumns() []string {
	var cols []string
	for _, q := range Questions() {
		for _, c := range q.Requires {
			if !slices.Contains(cols, c) {
				cols = append(cols, c)
			}
		}
	}
	return cols
}

// RunnerConfig configures a Runner.
type RunnerConfig struct {
	// OutDir receives one subdirectory per question with its charts.
	OutDir string
	// Input is recorded on the report; it is not read by the runner.
	Input string
}

// Runner executes every question against a table, renders the charts and
// hands the report to the sink.
type Runner struct {
	analyzer *Analyzer
	renderer Renderer
	sink     ResultSink
	cfg      RunnerConfig
	logger   *slog.Logger
}

// NewRunner creates a runner. A nil renderer skips charts; a nil sink skips export.
func NewRunner(analyzer *Analyzer, renderer Renderer, sink ResultSink, cfg RunnerConfig, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		analyzer: analyzer,
		renderer: renderer,
		sink:     sink,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run answers all questions. The table's columns are checked up front so a
// missing column fails the run before any question executes.
func (r *Runner) Run(ctx context.Context, t *catalog.Table) (*Report, error) {
	if err := t.Require(RequiredColumns()...); err != nil {
		return nil, err
	}

	runID, err := id.NewRunID()
	if err != nil {
		return nil, domainerrors.Internal("generate run id").WithCause(err)
	}

	report := &Report{
		RunID:     runID,
		Input:     r.cfg.Input,
		Records:   t.Len(),
		StartedAt: time.Now().UTC(),
		Options:   r.analyzer.Options(),
	}
	r.logger.Info("starting report",
		"run_id", report.RunID,
		"records", t.Len(),
		"top_n", report.Options.TopN,
		"audience_mode", report.Options.AudienceMode,
	)

	warned := make(map[string]struct{})
	for _, q := range Questions() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		outcome, err := q.run(r.analyzer, t)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", q.ID, err)
		}

		if u, ok := outcome.(unknownReporter); ok {
			for _, code := range u.Unknown() {
				if _, seen := warned[code]; seen {
					continue
				}
				warned[code] = struct{}{}
				r.logger.Warn("rating code outside audience sets, classified as adult",
					"question", q.ID,
					"code", code,
				)
			}
		}

		files, err := r.render(q.ID, outcome)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", q.ID, err)
		}

		report.Questions = append(report.Questions, QuestionReport{
			ID:      q.ID,
			Title:   q.Title,
			Outcome: outcome,
			Files:   files,
		})
		r.logger.Info("question complete",
			"question", q.ID,
			"rows", outcome.Rows(),
			"charts", len(files),
			"duration", time.Since(start),
		)
	}
	report.Duration = time.Since(report.StartedAt)

	if r.sink != nil {
		if err := r.sink.SaveReport(ctx, report); err != nil {
			return nil, fmt.Errorf("export results: %w", err)
		}
	}

	r.logger.Info("report complete", "run_id", report.RunID, "duration", report.Duration)
	return report, nil
}

// render draws the outcome's non-empty charts into OutDir/<question>/.
func (r *Runner) render(question string, outcome Outcome) ([]string, error) {
	if r.renderer == nil {
		return nil, nil
	}

	dir := filepath.Join(r.cfg.OutDir, question)
	var files []string
	for _, c := range outcome.Charts() {
		if c.Spec.Empty() {
			r.logger.Debug("skipping empty chart", "question", question, "file", c.File)
			continue
		}
		if files == nil {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, domainerrors.Internal("create output directory").WithCause(err)
			}
		}
		path := filepath.Join(dir, c.File)
		if err := r.renderer.Render(c.Spec, path); err != nil {
			return nil, domainerrors.Wrapf(err, domainerrors.CodeInternal, "render %s", c.File)
		}
		files = append(files, path)
	}
	return files, nil
}
