// Package store defines persistence for finished report runs.
package store

import (
	"context"
	"time"
)

// Run is one stored report run with its flattened result tables.
type Run struct {
	ID           string
	Input        string
	Records      int
	TopN         int
	MinWordLen   int
	AudienceMode string
	StartedAt    time.Time
	Duration     time.Duration
	Cells        []Cell
}

// Cell is one value of a result table: the intersection of a row key and a column.
type Cell struct {
	Question string
	Table    string
	Row      string
	Column   string
	Value    float64
}

// Store persists runs. Implementations must write a run atomically.
type Store interface {
	SaveRun(ctx context.Context, run *Run) error
	GetRun(ctx context.Context, id string) (*Run, error)
	ListRuns(ctx context.Context, limit int) ([]*Run, error)
	Cells(ctx context.Context, runID, question string) ([]Cell, error)
	Close() error
}
