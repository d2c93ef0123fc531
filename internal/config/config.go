package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete application configuration. Values are layered:
// built-in defaults, then an optional YAML file, then REMCLI_* environment
// variables.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Currency CurrencyConfig `yaml:"currency" envconfig:"CURRENCY"`
	Growth   GrowthConfig   `yaml:"growth" envconfig:"GROWTH"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
}

// LoggingConfig controls slog handler selection.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
}

// CurrencyConfig pins the display convention. The source application
// hard-coded the Indian convention; here it is an explicit knob shared by
// every call site.
type CurrencyConfig struct {
	Convention string `yaml:"convention" envconfig:"CONVENTION" validate:"oneof=indian international"`
	Symbol     string `yaml:"symbol" envconfig:"SYMBOL" validate:"required"`
}

// GrowthConfig controls the CAGR window and percentage rendering.
type GrowthConfig struct {
	MaxYears      int `yaml:"max_years" envconfig:"MAX_YEARS" validate:"gte=2,lte=50"`
	PercentDigits int `yaml:"percent_digits" envconfig:"PERCENT_DIGITS" validate:"gte=0,lte=6"`
}

// PathsConfig contains file system locations for pipeline input and output.
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" validate:"required"`
}

// Default returns the built-in configuration, reproducing the source
// application's implicit constants: Indian convention, rupee symbol,
// five-year growth window, one percent fraction digit.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Currency: CurrencyConfig{
			Convention: "indian",
			Symbol:     "₹",
		},
		Growth: GrowthConfig{
			MaxYears:      5,
			PercentDigits: 1,
		},
		Paths: PathsConfig{
			DataDir:    "data",
			ReportsDir: "data/reports",
		},
	}
}

// Load builds the effective configuration. filePath may be empty or point
// to a missing file, in which case the YAML layer is skipped; a present but
// malformed file is an error. Environment variables override both layers.
func Load(filePath string) (*Config, error) {
	cfg := Default()

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		switch {
		case os.IsNotExist(err):
			// optional file, defaults stand
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", filePath, err)
			}
		}
	}

	if err := envconfig.Process("REMCLI", &cfg); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration against the struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
