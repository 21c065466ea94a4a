package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	domainerrors "github.com/listenupapp/catalog-insights/internal/errors"
	"github.com/listenupapp/catalog-insights/internal/store"
)

// runColumns is the ordered list of columns selected in run queries.
// Must match the scan order in scanRun.
const runColumns = `id, input, records, top_n, min_word_len, audience_mode, started_at, duration_ms`

// scanRun scans a sql.Row (or sql.Rows via its Scan method) into a store.Run.
// Cells are left empty.
func scanRun(scanner interface{ Scan(dest ...any) error }) (*store.Run, error) {
	var (
		r          store.Run
		startedAt  string
		durationMS int64
	)

	err := scanner.Scan(
		&r.ID,
		&r.Input,
		&r.Records,
		&r.TopN,
		&r.MinWordLen,
		&r.AudienceMode,
		&startedAt,
		&durationMS,
	)
	if err != nil {
		return nil, err
	}

	r.StartedAt, err = parseTime(startedAt)
	if err != nil {
		return nil, err
	}
	r.Duration = time.Duration(durationMS) * time.Millisecond

	return &r, nil
}

// SaveRun inserts a run and all of its cells in a single transaction.
func (s *Store) SaveRun(ctx context.Context, run *store.Run) error {
	if run == nil || run.ID == "" {
		return store.ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (`+runColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Input,
		run.Records,
		run.TopN,
		run.MinWordLen,
		run.AudienceMode,
		formatTime(run.StartedAt),
		run.Duration.Milliseconds(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domainerrors.Validationf("run %s already exists", run.ID)
		}
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO result_cells (run_id, seq, question, table_name, row_key, column_name, value)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare cell insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range run.Cells {
		if _, err := stmt.ExecContext(ctx, run.ID, i, c.Question, c.Table, c.Row, c.Column, c.Value); err != nil {
			return fmt.Errorf("insert result cell: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}

	s.logger.Debug("run saved", "run_id", run.ID, "cells", len(run.Cells))
	return nil
}

// GetRun retrieves a run by its ID, without cells.
// Returns store.ErrNotFound if the run does not exist.
func (s *Store) GetRun(ctx context.Context, id string) (*store.Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListRuns returns the most recent runs first, without cells.
// A limit below 1 returns every run.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]*store.Run, error) {
	if limit < 1 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY started_at DESC, id ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []*store.Run{}
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}

// Cells returns the cells one question of a run produced, in the order they
// were saved. An empty question returns every cell of the run.
// Returns store.ErrNotFound if the run does not exist.
func (s *Store) Cells(ctx context.Context, runID, question string) ([]store.Cell, error) {
	if _, err := s.GetRun(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT question, table_name, row_key, column_name, value
		FROM result_cells
		WHERE run_id = ? AND (? = '' OR question = ?)
		ORDER BY seq ASC`,
		runID, question, question,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cells := []store.Cell{}
	for rows.Next() {
		var c store.Cell
		if err := rows.Scan(&c.Question, &c.Table, &c.Row, &c.Column, &c.Value); err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cells, nil
}
