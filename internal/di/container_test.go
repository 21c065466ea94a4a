package di

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/catalog-insights/internal/config"
	"github.com/listenupapp/catalog-insights/internal/di/providers"
	domainerrors "github.com/listenupapp/catalog-insights/internal/errors"
	"github.com/listenupapp/catalog-insights/internal/insight"
	"github.com/listenupapp/catalog-insights/internal/normalize"
)

func testFlags(t *testing.T) config.Flags {
	t.Helper()
	dir := t.TempDir()
	data := filepath.Join(dir, "titles.csv")
	require.NoError(t, os.WriteFile(data, []byte("type,title\nMovie,X\n"), 0o644))
	return config.Flags{
		EnvFile:  filepath.Join(dir, "missing.env"),
		LogLevel: "error",
		DataPath: data,
		OutDir:   filepath.Join(dir, "out"),
	}
}

func TestBootstrap(t *testing.T) {
	injector := NewContainer(testFlags(t))
	require.NoError(t, Bootstrap(injector))

	runner, err := do.Invoke[*insight.Runner](injector)
	require.NoError(t, err)
	assert.NotNil(t, runner)

	storeHandle := do.MustInvoke[*providers.ResultStoreHandle](injector)
	assert.False(t, storeHandle.Enabled())

	analyzer := do.MustInvoke[*insight.Analyzer](injector)
	assert.Equal(t, 20, analyzer.Options().TopN)
	assert.Equal(t, normalize.ModeAdultKids, analyzer.Options().AudienceMode)

	report := injector.Shutdown()
	assert.Empty(t, report.Errors)
}

func TestBootstrap_OpensResultStore(t *testing.T) {
	flags := testFlags(t)
	flags.SQLitePath = filepath.Join(t.TempDir(), "results.db")
	flags.AudienceMode = "family"

	injector := NewContainer(flags)
	require.NoError(t, Bootstrap(injector))

	storeHandle := do.MustInvoke[*providers.ResultStoreHandle](injector)
	assert.True(t, storeHandle.Enabled())
	assert.FileExists(t, flags.SQLitePath)

	analyzer := do.MustInvoke[*insight.Analyzer](injector)
	assert.Equal(t, normalize.ModeFamily, analyzer.Options().AudienceMode)

	report := injector.Shutdown()
	assert.Empty(t, report.Errors)
}

func TestBootstrap_InvalidConfig(t *testing.T) {
	flags := testFlags(t)
	flags.TopN = "0"

	err := Bootstrap(NewContainer(flags))
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))
}

func TestBootstrap_BadTablesFile(t *testing.T) {
	flags := testFlags(t)
	flags.TablesPath = filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(flags.TablesPath, []byte("country_aliases: [not, a, map]\n"), 0o644))

	assert.Error(t, Bootstrap(NewContainer(flags)))
}

func TestFileWatcherProvider(t *testing.T) {
	injector := NewContainer(testFlags(t))
	require.NoError(t, Bootstrap(injector))

	handle, err := do.Invoke[*providers.FileWatcherHandle](injector)
	require.NoError(t, err)
	require.NotNil(t, handle.Watcher)

	require.NoError(t, handle.Shutdown())
	_, open := <-handle.Events()
	assert.False(t, open)
}
