package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/catalog-insights/internal/logger"
	"github.com/listenupapp/catalog-insights/internal/watcher"
)

func TestWatchLoop_RerunsOnChangeAndSurvivesFailures(t *testing.T) {
	path := writeCatalog(t)

	w, err := watcher.New(nil, watcher.Options{SettleDelay: 30 * time.Millisecond})
	require.NoError(t, err)
	t.Cleanup(func() { w.Stop() }) //nolint:errcheck // Test cleanup
	require.NoError(t, w.Watch(path))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx) //nolint:errcheck // Test goroutine

	reruns := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, w, logger.Discard(), func() error {
			reruns <- struct{}{}
			return errors.New("bad edit")
		})
	}()

	for i := range 2 {
		require.NoError(t, os.WriteFile(path, []byte(catalogCSV+"\n"), 0o644))
		select {
		case <-reruns:
		case <-time.After(2 * time.Second):
			t.Fatalf("rerun %d not triggered", i+1)
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch loop did not stop")
	}
}

func TestWatchLoop_ReturnsWhenWatcherStops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.csv")
	require.NoError(t, os.WriteFile(path, []byte(catalogCSV), 0o644))

	w, err := watcher.New(nil, watcher.Options{})
	require.NoError(t, err)
	require.NoError(t, w.Watch(path))
	require.NoError(t, w.Stop())

	err = watchLoop(context.Background(), w, logger.Discard(), func() error {
		t.Fatal("rerun must not be called")
		return nil
	})
	assert.NoError(t, err)
}
