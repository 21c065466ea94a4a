// Package di provides dependency injection configuration for the insights CLI.
package di

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/catalog-insights/internal/config"
	"github.com/listenupapp/catalog-insights/internal/di/providers"
	"github.com/listenupapp/catalog-insights/internal/insight"
	"github.com/listenupapp/catalog-insights/internal/logger"
)

// NewContainer creates and configures the DI container with all providers.
// The command-line flags are registered as a value so ProvideConfig can apply them.
func NewContainer(flags config.Flags) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.ProvideValue(injector, flags)
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Normalization layer
	do.Provide(injector, providers.ProvideTables)
	do.Provide(injector, providers.ProvideNormalizer)

	// Output layer
	do.Provide(injector, providers.ProvideRenderer)
	do.Provide(injector, providers.ProvideResultStore)

	// Analysis
	do.Provide(injector, providers.ProvideAnalyzer)
	do.Provide(injector, providers.ProvideRunner)

	// Workers
	do.Provide(injector, providers.ProvideFileWatcher)

	return injector
}

// Bootstrap initializes the services every command needs. The file watcher is
// left lazy and is only created in watch mode.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*insight.Runner](injector); err != nil {
		return err
	}
	return nil
}
