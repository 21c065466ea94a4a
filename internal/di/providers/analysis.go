package providers

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/catalog-insights/internal/chart"
	"github.com/listenupapp/catalog-insights/internal/config"
	domainerrors "github.com/listenupapp/catalog-insights/internal/errors"
	"github.com/listenupapp/catalog-insights/internal/insight"
	"github.com/listenupapp/catalog-insights/internal/logger"
	"github.com/listenupapp/catalog-insights/internal/normalize"
	"github.com/listenupapp/catalog-insights/internal/store"
)

// ProvideTables provides the lookup tables, merging the configured YAML overrides when set.
func ProvideTables(i do.Injector) (*normalize.Tables, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.Input.TablesPath == "" {
		return normalize.DefaultTables(), nil
	}

	tables, err := normalize.LoadTables(cfg.Input.TablesPath)
	if err != nil {
		return nil, err
	}
	log.Info("Lookup tables loaded", "path", cfg.Input.TablesPath)

	return tables, nil
}

// ProvideNormalizer provides the categorical normalizer.
func ProvideNormalizer(i do.Injector) (*normalize.Normalizer, error) {
	tables := do.MustInvoke[*normalize.Tables](i)
	return normalize.New(tables), nil
}

// ProvideRenderer provides the PNG chart renderer.
func ProvideRenderer(i do.Injector) (*chart.PNGRenderer, error) {
	return chart.NewPNGRenderer(chart.DefaultWidth, chart.DefaultHeight), nil
}

// ProvideAnalyzer provides the question analyzer.
func ProvideAnalyzer(i do.Injector) (*insight.Analyzer, error) {
	cfg := do.MustInvoke[*config.Config](i)
	norm := do.MustInvoke[*normalize.Normalizer](i)

	mode, err := normalize.ParseAudienceMode(cfg.Report.AudienceMode)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeValidation, "invalid audience mode")
	}

	return insight.NewAnalyzer(norm, insight.Options{
		TopN:         cfg.Report.TopN,
		MinWordLen:   cfg.Report.MinWordLen,
		AudienceMode: mode,
	}), nil
}

// ProvideRunner provides the report runner. Charts are skipped when rendering is
// disabled and results are exported only when a results store is configured.
func ProvideRunner(i do.Injector) (*insight.Runner, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	analyzer := do.MustInvoke[*insight.Analyzer](i)
	storeHandle := do.MustInvoke[*ResultStoreHandle](i)

	var renderer insight.Renderer
	if cfg.Output.RenderCharts {
		renderer = do.MustInvoke[*chart.PNGRenderer](i)
	}

	var sink insight.ResultSink
	if storeHandle.Enabled() {
		sink = store.NewSink(storeHandle.Store)
	}

	runner := insight.NewRunner(analyzer, renderer, sink, insight.RunnerConfig{
		OutDir: cfg.Output.Dir,
		Input:  cfg.Input.DataPath,
	}, log.Logger)

	log.Debug("Report runner ready",
		"render_charts", cfg.Output.RenderCharts,
		"export", storeHandle.Enabled(),
	)

	return runner, nil
}
