package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "indian", cfg.Currency.Convention)
	assert.Equal(t, "₹", cfg.Currency.Symbol)
	assert.Equal(t, 5, cfg.Growth.MaxYears)
	assert.Equal(t, 1, cfg.Growth.PercentDigits)
	assert.Equal(t, "data", cfg.Paths.DataDir)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logging:
  level: debug
  format: json
currency:
  convention: international
  symbol: "$"
growth:
  max_years: 10
  percent_digits: 2
paths:
  data_dir: /tmp/in
  reports_dir: /tmp/out
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "international", cfg.Currency.Convention)
	assert.Equal(t, "$", cfg.Currency.Symbol)
	assert.Equal(t, 10, cfg.Growth.MaxYears)
	assert.Equal(t, 2, cfg.Growth.PercentDigits)
	assert.Equal(t, "/tmp/in", cfg.Paths.DataDir)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: ["), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("REMCLI_CURRENCY_CONVENTION", "international")
	t.Setenv("REMCLI_GROWTH_MAX_YEARS", "3")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "international", cfg.Currency.Convention)
	assert.Equal(t, 3, cfg.Growth.MaxYears)
	// untouched fields keep defaults
	assert.Equal(t, "₹", cfg.Currency.Symbol)
}

func TestValidationRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown_convention", func(c *Config) { c.Currency.Convention = "roman" }},
		{"window_below_two", func(c *Config) { c.Growth.MaxYears = 1 }},
		{"negative_digits", func(c *Config) { c.Growth.PercentDigits = -1 }},
		{"bad_log_level", func(c *Config) { c.Logging.Level = "loud" }},
		{"empty_symbol", func(c *Config) { c.Currency.Symbol = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
