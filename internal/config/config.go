// Package config loads the CLI configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/ukaji3/salesextract-go/pkg/salesextract/extractor"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable, e.g. SALESX_LOGGING_LEVEL.
const EnvPrefix = "SALESX"

// Config represents the complete CLI configuration
type Config struct {
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Extract   ExtractConfig   `yaml:"extract" envconfig:"EXTRACT"`
	Output    OutputConfig    `yaml:"output" envconfig:"OUTPUT"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
}

// ExtractConfig contains the heuristic scan limits and the store table override
type ExtractConfig struct {
	HeaderRows       int     `yaml:"header_rows" envconfig:"HEADER_ROWS" validate:"gte=1"`
	ScalarMaxRow     int     `yaml:"scalar_max_row" envconfig:"SCALAR_MAX_ROW" validate:"gte=0"`
	CategoryMaxRow   int     `yaml:"category_max_row" envconfig:"CATEGORY_MAX_ROW" validate:"gte=0"`
	ScalarProbe      int     `yaml:"scalar_probe" envconfig:"SCALAR_PROBE" validate:"gte=1"`
	CategoryProbe    int     `yaml:"category_probe" envconfig:"CATEGORY_PROBE" validate:"gte=1"`
	CategoryMinValue float64 `yaml:"category_min_value" envconfig:"CATEGORY_MIN_VALUE" validate:"gte=0"`
	MonthAfterStore  bool    `yaml:"month_after_store" envconfig:"MONTH_AFTER_STORE"`
	StoresFile       string  `yaml:"stores_file" envconfig:"STORES_FILE"`
}

// OutputConfig contains result serialization settings
type OutputConfig struct {
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json csv xlsx"`
	Pretty bool   `yaml:"pretty" envconfig:"PRETTY"`
}

// TelemetryConfig contains tracing and metrics settings
type TelemetryConfig struct {
	Trace       bool   `yaml:"trace" envconfig:"TRACE"`
	MetricsFile string `yaml:"metrics_file" envconfig:"METRICS_FILE"`
}

// Default returns the built-in configuration.
func Default() Config {
	limits := extractor.DefaultLimits()
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Extract: ExtractConfig{
			HeaderRows:       limits.HeaderRows,
			ScalarMaxRow:     limits.ScalarMaxRow,
			CategoryMaxRow:   limits.CategoryMaxRow,
			ScalarProbe:      limits.ScalarProbe,
			CategoryProbe:    limits.CategoryProbe,
			CategoryMinValue: limits.CategoryMinValue,
			MonthAfterStore:  limits.MonthAfterStore,
		},
		Output: OutputConfig{Format: "json"},
	}
}

// Load builds the configuration from defaults, the optional YAML file at path,
// the optional dotenv file and SALESX_* environment variables, in that order
// of increasing precedence. Empty paths are skipped.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	// Unset variables leave the file and default values untouched.
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadFromFile overlays a YAML file onto cfg
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks every section.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// Limits converts the extract section into scan limits.
func (c ExtractConfig) Limits() extractor.Limits {
	return extractor.Limits{
		HeaderRows:       c.HeaderRows,
		ScalarMaxRow:     c.ScalarMaxRow,
		CategoryMaxRow:   c.CategoryMaxRow,
		ScalarProbe:      c.ScalarProbe,
		CategoryProbe:    c.CategoryProbe,
		CategoryMinValue: c.CategoryMinValue,
		MonthAfterStore:  c.MonthAfterStore,
	}
}
