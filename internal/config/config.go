package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/kozaktomas/mrzname/internal/logging"
	"github.com/kozaktomas/mrzname/internal/mrz"
	"github.com/kozaktomas/mrzname/internal/names"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Config struct {
	Extraction ExtractionConfig `yaml:"extraction"`
	Log        logging.Config   `yaml:"log"`
	Database   DatabaseConfig   `yaml:"database"`
	Web        WebConfig        `yaml:"web"`
}

type ExtractionConfig struct {
	MaxCombinations int    `yaml:"max_combinations"` // 0 = unbounded
	Workers         int    `yaml:"workers"`          // 0 = runtime.NumCPU()
	CaseOrder       string `yaml:"case_order"`       // upper-first or legacy
}

// Synthesizer builds the name synthesizer described by the config.
func (c *ExtractionConfig) Synthesizer() (names.Synthesizer, error) {
	order, err := mrz.ParseCaseOrder(c.CaseOrder)
	if err != nil {
		return names.Synthesizer{}, err
	}
	if c.MaxCombinations < 0 {
		return names.Synthesizer{}, fmt.Errorf("max combinations must not be negative, got %d", c.MaxCombinations)
	}
	return names.Synthesizer{
		Cleaner:         mrz.Cleaner{Order: order},
		MaxCombinations: c.MaxCombinations,
	}, nil
}

type DatabaseConfig struct {
	URL          string `yaml:"url"`            // PostgreSQL connection URL, empty disables persistence
	MaxOpenConns int    `yaml:"max_open_conns"` // Maximum open connections (default 25)
	MaxIdleConns int    `yaml:"max_idle_conns"` // Maximum idle connections (default 5)
}

type WebConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	AllowedOrigins string `yaml:"allowed_origins"` // Comma-separated CORS origins, localhost is always allowed
	APIKey         string `yaml:"api_key"`         // Required on /api/v1 when set
}

// envInt reads an environment variable and parses it as a non-negative integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n
	}
	return defaultVal
}

func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

// Load returns the embedded defaults overridden by environment variables.
func Load() *Config {
	var defaults Config
	if err := yaml.Unmarshal(defaultsYAML, &defaults); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded defaults.yaml: " + err.Error())
	}

	return &Config{
		Extraction: ExtractionConfig{
			MaxCombinations: envInt("MRZNAME_MAX_COMBINATIONS", defaults.Extraction.MaxCombinations),
			Workers:         envInt("MRZNAME_WORKERS", defaults.Extraction.Workers),
			CaseOrder:       envString("MRZNAME_CASE_ORDER", defaults.Extraction.CaseOrder),
		},
		Log: logging.Config{
			Level:  envString("LOG_LEVEL", defaults.Log.Level),
			Format: envString("LOG_FORMAT", defaults.Log.Format),
		},
		Database: DatabaseConfig{
			URL:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: envInt("DATABASE_MAX_OPEN_CONNS", defaults.Database.MaxOpenConns),
			MaxIdleConns: envInt("DATABASE_MAX_IDLE_CONNS", defaults.Database.MaxIdleConns),
		},
		Web: WebConfig{
			Host:           envString("WEB_HOST", defaults.Web.Host),
			Port:           envInt("WEB_PORT", defaults.Web.Port),
			AllowedOrigins: envString("WEB_ALLOWED_ORIGINS", defaults.Web.AllowedOrigins),
			APIKey:         os.Getenv("WEB_API_KEY"),
		},
	}
}

// LoadFile overlays the settings present in a YAML file onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}
