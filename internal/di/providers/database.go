package providers

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/catalog-insights/internal/config"
	"github.com/listenupapp/catalog-insights/internal/logger"
	"github.com/listenupapp/catalog-insights/internal/store/sqlite"
)

// ResultStoreHandle wraps the optional results store with shutdown capability.
// Store is nil when no SQLite path is configured.
type ResultStoreHandle struct {
	*sqlite.Store
}

// Enabled reports whether a results store is open.
func (h *ResultStoreHandle) Enabled() bool {
	return h.Store != nil
}

// Shutdown implements do.ShutdownerWithError.
func (h *ResultStoreHandle) Shutdown() error {
	if h.Store == nil {
		return nil
	}
	return h.Close()
}

// ProvideResultStore opens the SQLite results store when SQLITE_PATH is set.
func ProvideResultStore(i do.Injector) (*ResultStoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.Output.SQLitePath == "" {
		return &ResultStoreHandle{}, nil
	}

	db, err := sqlite.Open(cfg.Output.SQLitePath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Results database initialized", "path", cfg.Output.SQLitePath)

	return &ResultStoreHandle{Store: db}, nil
}
