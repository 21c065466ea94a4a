package providers

import (
	"context"
	"time"

	"github.com/samber/do/v2"

	"github.com/listenupapp/catalog-insights/internal/config"
	"github.com/listenupapp/catalog-insights/internal/logger"
	"github.com/listenupapp/catalog-insights/internal/watcher"
)

// FileWatcherHandle wraps the input file watcher with shutdown capability.
type FileWatcherHandle struct {
	*watcher.Watcher
	cancel context.CancelFunc
	done   chan struct{}
}

// Shutdown implements do.ShutdownerWithError.
func (h *FileWatcherHandle) Shutdown() error {
	h.cancel()
	select {
	case <-h.done:
	case <-time.After(watcherStopTimeout):
	}
	return h.Watcher.Stop()
}

// ProvideFileWatcher watches the catalog CSV. Events are consumed by the caller.
func ProvideFileWatcher(i do.Injector) (*FileWatcherHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	w, err := watcher.New(log.Logger, watcher.Options{SettleDelay: cfg.Watch.SettleDelay})
	if err != nil {
		return nil, err
	}

	if err := w.Watch(cfg.Input.DataPath); err != nil {
		_ = w.Stop()
		return nil, err
	}

	// Start in background
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		if err := w.Start(ctx); err != nil {
			log.Error("File watcher error", "error", err)
		}
	}()

	log.Info("Watching catalog file", "path", cfg.Input.DataPath, "settle", cfg.Watch.SettleDelay)

	return &FileWatcherHandle{
		Watcher: w,
		cancel:  cancel,
		done:    done,
	}, nil
}
