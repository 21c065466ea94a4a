package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/listenupapp/catalog-insights/internal/errors"
	"github.com/listenupapp/catalog-insights/internal/store/sqlite"
)

// exportRun runs a report into a fresh results database and returns its path
// and the stored run id.
func exportRun(t *testing.T) (dbPath, runID string) {
	t.Helper()
	dbPath = filepath.Join(t.TempDir(), "results.db")
	_, err := execute(t, "report",
		"--env-file", filepath.Join(t.TempDir(), "missing.env"),
		"--log-level", "error",
		"--data", writeCatalog(t),
		"--outdir", filepath.Join(t.TempDir(), "charts"),
		"--render-charts=false",
		"--sqlite", dbPath,
	)
	require.NoError(t, err)

	db, err := sqlite.Open(dbPath, nil)
	require.NoError(t, err)
	defer db.Close()
	runs, err := db.ListRuns(t.Context(), 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	return dbPath, runs[0].ID
}

func TestRunsList(t *testing.T) {
	t.Setenv("SQLITE_PATH", "")
	dbPath, runID := exportRun(t)

	out, err := execute(t, "runs", "list", "--sqlite", dbPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID", strings.Fields(lines[0])[0])
	fields := strings.Fields(lines[1])
	assert.Equal(t, runID, fields[0])
	assert.Equal(t, "3", fields[2])
}

func TestRunsList_FromEnv(t *testing.T) {
	dbPath, runID := exportRun(t)
	t.Setenv("SQLITE_PATH", dbPath)

	out, err := execute(t, "runs", "list")
	require.NoError(t, err)
	assert.Contains(t, out, runID)
}

func TestRunsShow(t *testing.T) {
	t.Setenv("SQLITE_PATH", "")
	dbPath, runID := exportRun(t)

	out, err := execute(t, "runs", "show", runID, "--sqlite", dbPath, "--question", "q1")
	require.NoError(t, err)

	assert.Contains(t, out, "run "+runID)
	assert.Contains(t, out, "(3 records)")
	assert.Contains(t, out, "QUESTION")
	cells := 0
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || !strings.HasPrefix(fields[0], "q") {
			continue
		}
		assert.Equal(t, "q1", fields[0], line)
		cells++
	}
	assert.Positive(t, cells)
}

func TestRuns_Errors(t *testing.T) {
	t.Setenv("SQLITE_PATH", "")
	dbPath, _ := exportRun(t)
	missing := filepath.Join(t.TempDir(), "none.db")

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"no database configured", []string{"runs", "list"}, 2},
		{"database does not exist", []string{"runs", "list", "--sqlite", missing}, 3},
		{"unknown run", []string{"runs", "show", "nope", "--sqlite", dbPath}, 3},
		{"show needs an id", []string{"runs", "show", "--sqlite", dbPath}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, domainerrors.ExitCode(err))
		})
	}

	assert.NoFileExists(t, missing)
}
