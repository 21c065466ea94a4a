package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/listenupapp/catalog-insights/internal/catalog"
	"github.com/listenupapp/catalog-insights/internal/config"
	"github.com/listenupapp/catalog-insights/internal/di"
	"github.com/listenupapp/catalog-insights/internal/di/providers"
	"github.com/listenupapp/catalog-insights/internal/insight"
	"github.com/listenupapp/catalog-insights/internal/logger"
	"github.com/listenupapp/catalog-insights/internal/watcher"
)

const defaultSummaryRows = 10

func newReportCmd(flags *config.Flags) *cobra.Command {
	var summaryRows int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run every question against the catalog CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, *flags, summaryRows)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.DataPath, "data", "", "catalog CSV (DATA_PATH)")
	f.StringVar(&flags.OutDir, "outdir", "", "chart output directory (OUTDIR, default outputs)")
	f.StringVar(&flags.TopN, "top-n", "", "entries kept by ranking questions (TOP_N, default 20)")
	f.StringVar(&flags.MinWordLen, "min-word-len", "", "shortest counted word (MIN_WORD_LEN, default 3)")
	f.StringVar(&flags.AudienceMode, "audience-mode", "", "adult_kids or family (AUDIENCE_MODE)")
	f.StringVar(&flags.SQLitePath, "sqlite", "", "export results to this SQLite file (SQLITE_PATH)")
	f.StringVar(&flags.RenderCharts, "render-charts", "", "write PNG charts (RENDER_CHARTS, default true)")
	f.StringVar(&flags.Watch, "watch", "", "re-run whenever the CSV changes (WATCH)")
	f.StringVar(&flags.WatchSettle, "watch-settle", "", "quiet period before a change is processed (WATCH_SETTLE)")
	f.IntVar(&summaryRows, "summary-rows", defaultSummaryRows, "rows printed per result table, 0 for all")
	f.Lookup("render-charts").NoOptDefVal = "true"
	f.Lookup("watch").NoOptDefVal = "true"

	return cmd
}

func runReport(cmd *cobra.Command, flags config.Flags, summaryRows int) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	injector := di.NewContainer(flags)
	var log *logger.Logger
	defer func() { shutdown(injector, log) }()

	if err := di.Bootstrap(injector); err != nil {
		return err
	}

	cfg := do.MustInvoke[*config.Config](injector)
	log = do.MustInvoke[*logger.Logger](injector)
	runner := do.MustInvoke[*insight.Runner](injector)
	out := cmd.OutOrStdout()

	if err := runOnce(ctx, runner, cfg.Input.DataPath, out, summaryRows); err != nil {
		return err
	}
	if !cfg.Watch.Enabled {
		return nil
	}

	handle, err := do.Invoke[*providers.FileWatcherHandle](injector)
	if err != nil {
		return err
	}
	return watchLoop(ctx, handle.Watcher, log, func() error {
		return runOnce(ctx, runner, cfg.Input.DataPath, out, summaryRows)
	})
}

// runOnce loads the catalog, answers every question and prints the summary.
func runOnce(ctx context.Context, runner *insight.Runner, path string, out io.Writer, summaryRows int) error {
	table, err := catalog.LoadCSV(path)
	if err != nil {
		return err
	}
	report, err := runner.Run(ctx, table)
	if err != nil {
		return err
	}
	return report.WriteSummary(out, summaryRows)
}

// watchLoop re-runs the report on every settled change until ctx ends or the
// watcher stops. A failed re-run is logged and the loop keeps waiting.
func watchLoop(ctx context.Context, w *watcher.Watcher, log *logger.Logger, rerun func() error) error {
	for {
		select {
		case <-ctx.Done():
			log.Info("Watch mode stopped")
			return nil
		case event, ok := <-w.Events():
			if !ok {
				return nil
			}
			switch event.Type {
			case watcher.EventRemoved:
				log.Warn("Catalog file removed, waiting for it to reappear", "path", event.Path)
			case watcher.EventModified:
				log.Info("Catalog file changed, re-running report", "path", event.Path, "size", event.Size)
				if err := rerun(); err != nil {
					log.WithError(err).Error("Report failed", "path", event.Path)
				}
			}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			log.Warn("File watcher error", "error", err)
		}
	}
}

// shutdown releases container services in reverse dependency order.
// log is nil when bootstrap failed before the logger existed.
func shutdown(injector *do.RootScope, log *logger.Logger) {
	report := injector.Shutdown()
	if report == nil || len(report.Errors) == 0 || log == nil {
		return
	}
	log.Error("Shutdown error", "error", report.Error())
}
