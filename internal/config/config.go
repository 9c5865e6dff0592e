package config

import (
	"math"
	"os"
	"strconv"
	"strings"

	"hypokit/internal/errors"
)

// Normal backends selectable with HYPOKIT_NORMAL_BACKEND
const (
	NormalBackendTable   = "table"
	NormalBackendLibrary = "library"
)

// Config represents the complete application configuration
type Config struct {
	LogLevel  string
	Inference InferenceConfig
	Table     TableConfig
}

// InferenceConfig holds defaults for the analyzers and the bootstrap
type InferenceConfig struct {
	Confidence    float64
	Resamples     int
	Seed          int64
	Workers       int
	NormalBackend string
}

// TableConfig shapes the approximate normal table
type TableConfig struct {
	Step      float64
	Precision int
	Lower     float64
	Upper     float64
}

// Default returns the configuration used when no variables are set
func Default() *Config {
	return &Config{
		LogLevel: "INFO",
		Inference: InferenceConfig{
			Confidence:    0.95,
			Resamples:     10000,
			Workers:       1,
			NormalBackend: NormalBackendTable,
		},
		Table: TableConfig{
			Step:      0.001,
			Precision: 3,
			Lower:     -5,
			Upper:     5,
		},
	}
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := Default()
	config.LogLevel = strings.ToUpper(getEnvOrDefault("LOG_LEVEL", config.LogLevel))

	inference, err := loadInferenceConfig(config.Inference)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load inference configuration")
	}
	config.Inference = *inference

	table, err := loadTableConfig(config.Table)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load normal table configuration")
	}
	config.Table = *table

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func loadInferenceConfig(defaults InferenceConfig) (*InferenceConfig, error) {
	var err error
	cfg := defaults
	if cfg.Confidence, err = getEnvFloatOrDefault("HYPOKIT_CONFIDENCE", defaults.Confidence); err != nil {
		return nil, err
	}
	if cfg.Resamples, err = getEnvIntOrDefault("HYPOKIT_RESAMPLES", defaults.Resamples); err != nil {
		return nil, err
	}
	seed, err := getEnvIntOrDefault("HYPOKIT_SEED", int(defaults.Seed))
	if err != nil {
		return nil, err
	}
	cfg.Seed = int64(seed)
	if cfg.Workers, err = getEnvIntOrDefault("HYPOKIT_WORKERS", defaults.Workers); err != nil {
		return nil, err
	}
	cfg.NormalBackend = strings.ToLower(getEnvOrDefault("HYPOKIT_NORMAL_BACKEND", defaults.NormalBackend))
	return &cfg, nil
}

func loadTableConfig(defaults TableConfig) (*TableConfig, error) {
	var err error
	cfg := defaults
	if cfg.Step, err = getEnvFloatOrDefault("HYPOKIT_TABLE_STEP", defaults.Step); err != nil {
		return nil, err
	}
	if cfg.Precision, err = getEnvIntOrDefault("HYPOKIT_TABLE_PRECISION", defaults.Precision); err != nil {
		return nil, err
	}
	if cfg.Lower, err = getEnvFloatOrDefault("HYPOKIT_TABLE_LOWER", defaults.Lower); err != nil {
		return nil, err
	}
	if cfg.Upper, err = getEnvFloatOrDefault("HYPOKIT_TABLE_UPPER", defaults.Upper); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges that the environment parsing cannot
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "ERROR", "WARN", "INFO", "DEBUG", "TRACE":
	default:
		return errors.ConfigInvalidf("LOG_LEVEL must be ERROR, WARN, INFO, DEBUG or TRACE, got %q", c.LogLevel)
	}

	inf := c.Inference
	if math.IsNaN(inf.Confidence) || inf.Confidence < 0 || inf.Confidence > 1 {
		return errors.ConfigInvalidf("HYPOKIT_CONFIDENCE must lie in [0,1], got %v", inf.Confidence)
	}
	if inf.Resamples <= 0 {
		return errors.ConfigInvalidf("HYPOKIT_RESAMPLES must be positive, got %d", inf.Resamples)
	}
	if inf.Workers <= 0 {
		return errors.ConfigInvalidf("HYPOKIT_WORKERS must be positive, got %d", inf.Workers)
	}
	if inf.NormalBackend != NormalBackendTable && inf.NormalBackend != NormalBackendLibrary {
		return errors.ConfigInvalidf("HYPOKIT_NORMAL_BACKEND must be %q or %q, got %q", NormalBackendTable, NormalBackendLibrary, inf.NormalBackend)
	}

	tbl := c.Table
	if !(tbl.Step > 0) {
		return errors.ConfigInvalidf("HYPOKIT_TABLE_STEP must be positive, got %v", tbl.Step)
	}
	if tbl.Precision < 0 {
		return errors.ConfigInvalidf("HYPOKIT_TABLE_PRECISION cannot be negative, got %d", tbl.Precision)
	}
	if !(tbl.Lower < tbl.Upper) {
		return errors.ConfigInvalidf("HYPOKIT_TABLE_LOWER (%v) must be below HYPOKIT_TABLE_UPPER (%v)", tbl.Lower, tbl.Upper)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.WithCode(errors.CodeConfigInvalid, errors.Wrapf(err, "%s is not an integer", key))
	}
	return intValue, nil
}

func getEnvFloatOrDefault(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.WithCode(errors.CodeConfigInvalid, errors.Wrapf(err, "%s is not a number", key))
	}
	return floatValue, nil
}
