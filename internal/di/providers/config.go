// Package providers contains dependency injection providers for the insights CLI.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/catalog-insights/internal/config"
	"github.com/listenupapp/catalog-insights/internal/logger"
)

// ProvideConfig loads the configuration from the command-line flags registered in the container.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	flags := do.MustInvoke[config.Flags](i)
	return config.LoadConfig(flags)
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	log.Debug("Configuration loaded",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"data_path", cfg.Input.DataPath,
		"outdir", cfg.Output.Dir,
	)

	return log, nil
}
