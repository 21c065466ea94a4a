// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	domainerrors "github.com/listenupapp/catalog-insights/internal/errors"
	"github.com/listenupapp/catalog-insights/internal/validation"
)

// Config holds the application configuration.
type Config struct {
	App    AppConfig
	Logger LoggerConfig
	Input  InputConfig
	Report ReportConfig
	Output OutputConfig
	Watch  WatchConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string `env:"ENV" validate:"required,oneof=development staging production"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string `env:"LOG_LEVEL" validate:"required,oneof=debug info warn error"`
}

// InputConfig holds the catalog input locations.
type InputConfig struct {
	// DataPath is the catalog CSV.
	DataPath string `env:"DATA_PATH" validate:"required,file"`
	// TablesPath is an optional YAML file merged over the built-in lookup tables.
	TablesPath string `env:"TABLES_PATH" validate:"omitempty,file"`
}

// ReportConfig holds the analysis parameters.
type ReportConfig struct {
	TopN         int    `env:"TOP_N" validate:"gte=1,lte=1000"`
	MinWordLen   int    `env:"MIN_WORD_LEN" validate:"gte=1,lte=50"`
	AudienceMode string `env:"AUDIENCE_MODE" validate:"oneof=adult_kids family"`
}

// OutputConfig holds where results are written.
type OutputConfig struct {
	Dir          string `env:"OUTDIR" validate:"required"`
	RenderCharts bool   `env:"RENDER_CHARTS"`
	// SQLitePath enables the results export when set.
	SQLitePath string `env:"SQLITE_PATH"`
}

// WatchConfig holds watch mode configuration.
type WatchConfig struct {
	Enabled     bool          `env:"WATCH"`
	SettleDelay time.Duration `env:"WATCH_SETTLE" validate:"gte=0"`
}

// Flags carries raw command-line values. An empty field means the flag was not given.
type Flags struct {
	EnvFile      string
	Env          string
	LogLevel     string
	DataPath     string
	TablesPath   string
	OutDir       string
	TopN         string
	MinWordLen   string
	AudienceMode string
	SQLitePath   string
	RenderCharts string
	Watch        string
	WatchSettle  string
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig(flags Flags) (*Config, error) {
	envFile := flags.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	dotenv, err := loadEnvFile(envFile)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}
	src := source{dotenv: dotenv}

	cfg := &Config{
		App: AppConfig{
			Environment: src.value(flags.Env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: strings.ToLower(src.value(flags.LogLevel, "LOG_LEVEL", "info")),
		},
		Input: InputConfig{
			DataPath:   src.value(flags.DataPath, "DATA_PATH", ""),
			TablesPath: src.value(flags.TablesPath, "TABLES_PATH", ""),
		},
		Report: ReportConfig{
			AudienceMode: src.value(flags.AudienceMode, "AUDIENCE_MODE", "adult_kids"),
		},
		Output: OutputConfig{
			Dir:        src.value(flags.OutDir, "OUTDIR", "outputs"),
			SQLitePath: src.value(flags.SQLitePath, "SQLITE_PATH", ""),
		},
	}

	var parseErrs []error
	cfg.Report.TopN, err = src.intValue(flags.TopN, "TOP_N", 20)
	parseErrs = append(parseErrs, err)
	cfg.Report.MinWordLen, err = src.intValue(flags.MinWordLen, "MIN_WORD_LEN", 3)
	parseErrs = append(parseErrs, err)
	cfg.Output.RenderCharts, err = src.boolValue(flags.RenderCharts, "RENDER_CHARTS", true)
	parseErrs = append(parseErrs, err)
	cfg.Watch.Enabled, err = src.boolValue(flags.Watch, "WATCH", false)
	parseErrs = append(parseErrs, err)
	cfg.Watch.SettleDelay, err = src.durationValue(flags.WatchSettle, "WATCH_SETTLE", 500*time.Millisecond)
	parseErrs = append(parseErrs, err)
	if err := errors.Join(parseErrs...); err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeValidation, "invalid configuration value")
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	return validation.New().Validate(c)
}

// expandPaths makes every configured path absolute. Empty optional paths stay empty.
func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.Input.DataPath, &c.Input.TablesPath, &c.Output.Dir, &c.Output.SQLitePath} {
		expanded, err := expandPath(*p, "")
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	// Expand tilde.
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	// Make absolute if needed.
	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// source resolves one setting from a flag value, the environment, and the parsed .env file.
type source struct {
	dotenv map[string]string
}

// value returns the first non-empty value from flag, env var, .env file, or default.
func (s source) value(flagValue, envKey, defaultValue string) string {
	// Priority 1: Command-line flag.
	if flagValue != "" {
		return flagValue
	}

	// Priority 2: Environment variable.
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	// Priority 3: .env file.
	if fileValue := s.dotenv[envKey]; fileValue != "" {
		return fileValue
	}

	// Priority 4: Default value.
	return defaultValue
}

// boolValue returns a bool from the sources, or default.
// Accepts "true", "1", "yes" as true and "false", "0", "no" as false (case-insensitive).
func (s source) boolValue(flagValue, envKey string, defaultValue bool) (bool, error) {
	strValue := strings.ToLower(s.value(flagValue, envKey, ""))
	switch strValue {
	case "":
		return defaultValue, nil
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%s: %q is not a boolean", envKey, strValue)
	}
}

// intValue returns an int from the sources, or default.
func (s source) intValue(flagValue, envKey string, defaultValue int) (int, error) {
	strValue := s.value(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue, nil
	}
	result, err := strconv.Atoi(strings.TrimSpace(strValue))
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", envKey, strValue)
	}
	return result, nil
}

// durationValue returns a duration from the sources, or default.
func (s source) durationValue(flagValue, envKey string, defaultValue time.Duration) (time.Duration, error) {
	strValue := s.value(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue, nil
	}
	result, err := time.ParseDuration(strValue)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a duration", envKey, strValue)
	}
	return result, nil
}

// loadEnvFile reads KEY=value pairs from a .env file without touching the
// process environment. A missing file yields an empty map.
func loadEnvFile(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return values, nil
}
