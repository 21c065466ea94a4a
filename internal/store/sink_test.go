package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/catalog-insights/internal/insight"
	"github.com/listenupapp/catalog-insights/internal/normalize"
	"github.com/listenupapp/catalog-insights/internal/store"
)

type tablesOutcome struct {
	tables []*insight.Pivot
}

func (o tablesOutcome) Tables() []*insight.Pivot { return o.tables }
func (o tablesOutcome) Charts() []insight.Chart  { return nil }
func (o tablesOutcome) Rows() int                { return len(o.tables) }

type memoryStore struct {
	store.Store
	saved []*store.Run
	err   error
}

func (m *memoryStore) SaveRun(_ context.Context, run *store.Run) error {
	m.saved = append(m.saved, run)
	return m.err
}

func testReport() *insight.Report {
	pivot := &insight.Pivot{
		Name:    "countries",
		Index:   "country",
		Columns: []string{"Movie", "TV Show"},
		Rows: []insight.PivotRow{
			{Key: "India", Values: []float64{3, 1}},
			{Key: "Spain", Values: []float64{2, 0}},
		},
	}
	return &insight.Report{
		RunID:     "run-abc",
		Input:     "titles.csv",
		Records:   10,
		StartedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Duration:  1500 * time.Millisecond,
		Options:   insight.Options{TopN: 20, MinWordLen: 3, AudienceMode: normalize.ModeFamily},
		Questions: []insight.QuestionReport{
			{ID: "q3", Outcome: tablesOutcome{tables: []*insight.Pivot{pivot, nil}}},
			{ID: "q10", Outcome: tablesOutcome{}},
		},
	}
}

func TestRunFromReport(t *testing.T) {
	run := store.RunFromReport(testReport())

	assert.Equal(t, "run-abc", run.ID)
	assert.Equal(t, "family", run.AudienceMode)
	assert.Equal(t, 20, run.TopN)
	assert.Equal(t, 1500*time.Millisecond, run.Duration)
	require.Len(t, run.Cells, 4)
	assert.Equal(t, store.Cell{Question: "q3", Table: "countries", Row: "India", Column: "Movie", Value: 3}, run.Cells[0])
	assert.Equal(t, store.Cell{Question: "q3", Table: "countries", Row: "Spain", Column: "TV Show", Value: 0}, run.Cells[3])
}

func TestSink_SaveReport(t *testing.T) {
	mem := &memoryStore{}

	require.NoError(t, store.NewSink(mem).SaveReport(context.Background(), testReport()))

	require.Len(t, mem.saved, 1)
	assert.Equal(t, "run-abc", mem.saved[0].ID)
}

func TestSink_SaveReportError(t *testing.T) {
	mem := &memoryStore{err: errors.New("database is locked")}

	err := store.NewSink(mem).SaveReport(context.Background(), testReport())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save run run-abc")
}
