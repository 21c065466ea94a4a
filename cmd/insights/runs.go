package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	domainerrors "github.com/listenupapp/catalog-insights/internal/errors"
	"github.com/listenupapp/catalog-insights/internal/store"
	"github.com/listenupapp/catalog-insights/internal/store/sqlite"
)

// newRunsCmd reads back the runs a report exported with --sqlite.
func newRunsCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect report runs stored in the results database",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "sqlite", "", "results database written by report --sqlite (SQLITE_PATH)")

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List stored runs, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withResults(cmd.Context(), dbPath, func(ctx context.Context, s *sqlite.Store) error {
				runs, err := s.ListRuns(ctx, limit)
				if err != nil {
					return domainerrors.Internal("list runs").WithCause(err)
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tSTARTED\tRECORDS\tTOP_N\tAUDIENCE\tDURATION\tINPUT")
				for _, r := range runs {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\t%s\n",
						r.ID, r.StartedAt.Format(time.RFC3339), r.Records, r.TopN,
						r.AudienceMode, r.Duration.Round(time.Millisecond), r.Input)
				}
				return tw.Flush()
			})
		},
	}
	list.Flags().IntVar(&limit, "limit", 20, "runs to print; 0 prints every run")
	cmd.AddCommand(list)

	var question string
	show := &cobra.Command{
		Use:     "show <run-id>",
		Short:   "Print one run and its result cells",
		Example: `  insights runs show V1StGXR8_Z5jdHi6B-myT --question q3 --sqlite results.db`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withResults(cmd.Context(), dbPath, func(ctx context.Context, s *sqlite.Store) error {
				return showRun(ctx, cmd, s, args[0], question)
			})
		},
	}
	show.Flags().StringVar(&question, "question", "", "only print cells of this question, e.g. q3")
	cmd.AddCommand(show)

	return cmd
}

func showRun(ctx context.Context, cmd *cobra.Command, s *sqlite.Store, runID, question string) error {
	run, err := s.GetRun(ctx, runID)
	if errors.Is(err, store.ErrNotFound) {
		return domainerrors.NotFoundf("run %q not found", runID)
	}
	if err != nil {
		return domainerrors.Internalf("read run %s", runID).WithCause(err)
	}
	cells, err := s.Cells(ctx, runID, question)
	if err != nil {
		return domainerrors.Internalf("read cells of run %s", runID).WithCause(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s\n", run.ID)
	fmt.Fprintf(out, "input: %s (%d records)\n", run.Input, run.Records)
	fmt.Fprintf(out, "started: %s, took %s\n", run.StartedAt.Format(time.RFC3339), run.Duration.Round(time.Millisecond))
	fmt.Fprintf(out, "options: top_n=%d min_word_len=%d audience_mode=%s\n\n", run.TopN, run.MinWordLen, run.AudienceMode)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "QUESTION\tTABLE\tROW\tCOLUMN\tVALUE")
	for _, c := range cells {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			c.Question, c.Table, c.Row, c.Column, strconv.FormatFloat(c.Value, 'f', -1, 64))
	}
	return tw.Flush()
}

// withResults opens the results database named by the flag or SQLITE_PATH.
// A missing file is reported rather than created empty.
func withResults(ctx context.Context, path string, fn func(context.Context, *sqlite.Store) error) error {
	if path == "" {
		path = os.Getenv("SQLITE_PATH")
	}
	if path == "" {
		return domainerrors.Validation("results database not set: pass --sqlite or set SQLITE_PATH")
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domainerrors.NotFoundf("results database %s does not exist", path)
		}
		return domainerrors.Internalf("stat %s", path).WithCause(err)
	}

	s, err := sqlite.Open(path, nil)
	if err != nil {
		return domainerrors.Internalf("open results database %s", path).WithCause(err)
	}
	defer s.Close()

	return fn(ctx, s)
}
