package store

import (
	"context"
	"fmt"

	"github.com/listenupapp/catalog-insights/internal/insight"
)

// Sink exports finished reports into a Store.
type Sink struct {
	store Store
}

var _ insight.ResultSink = (*Sink)(nil)

// NewSink creates a sink writing to s.
func NewSink(s Store) *Sink {
	return &Sink{store: s}
}

// SaveReport flattens report and saves it as one run.
func (k *Sink) SaveReport(ctx context.Context, report *insight.Report) error {
	if err := k.store.SaveRun(ctx, RunFromReport(report)); err != nil {
		return fmt.Errorf("save run %s: %w", report.RunID, err)
	}
	return nil
}

// RunFromReport flattens every result table of report into cells, question by
// question, row by row.
func RunFromReport(report *insight.Report) *Run {
	run := &Run{
		ID:           report.RunID,
		Input:        report.Input,
		Records:      report.Records,
		TopN:         report.Options.TopN,
		MinWordLen:   report.Options.MinWordLen,
		AudienceMode: string(report.Options.AudienceMode),
		StartedAt:    report.StartedAt,
		Duration:     report.Duration,
	}
	for _, q := range report.Questions {
		for _, p := range q.Outcome.Tables() {
			if p == nil {
				continue
			}
			for _, row := range p.Rows {
				for i, col := range p.Columns {
					if i >= len(row.Values) {
						break
					}
					run.Cells = append(run.Cells, Cell{
						Question: q.ID,
						Table:    p.Name,
						Row:      row.Key,
						Column:   col,
						Value:    row.Values[i],
					})
				}
			}
		}
	}
	return run
}
