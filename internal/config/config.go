// Package config loads the DesignSearch server configuration from YAML
// with environment-variable expansion and sane defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the config file
// path. When unset and no default file exists, built-in defaults apply.
const EnvConfigPath = "DESIGNSEARCH_CONFIG"

// defaultConfigFile is probed when EnvConfigPath is unset.
const defaultConfigFile = "designsearch.yaml"

// Config holds the designsearch server configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig selects and locates the design database source.
type DataConfig struct {
	Driver      string `yaml:"driver"`       // csv, sqlite (default: csv)
	Dir         string `yaml:"dir"`          // CSV data directory
	CatalogPath string `yaml:"catalog_path"` // SQLite catalog file
}

// SearchConfig holds ranking and caching settings.
type SearchConfig struct {
	BM25K1    float64 `yaml:"bm25_k1"`    // term-frequency saturation (default 1.5)
	BM25B     float64 `yaml:"bm25_b"`     // length normalization (default 0.75)
	CacheSize int     `yaml:"cache_size"` // query cache entries (default 1000)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: info)
}

// Load reads configuration from the file named by DESIGNSEARCH_CONFIG,
// falling back to ./designsearch.yaml, falling back to built-in defaults
// when neither exists.
func Load() (Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		if !fileExists(defaultConfigFile) {
			cfg := Config{}
			cfg.ApplyDefaults()
			return cfg, nil
		}
		path = defaultConfigFile
	}

	return LoadFile(path)
}

// LoadFile reads configuration from an explicit YAML file path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// Substitute env variables of the form ${VAR} / ${VAR:-default}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Data.Driver == "" {
		c.Data.Driver = "csv"
	}
	if c.Data.Dir == "" {
		c.Data.Dir = filepath.Join("data", "design")
	}
	if c.Search.BM25K1 <= 0 {
		c.Search.BM25K1 = 1.5
	}
	if c.Search.BM25B <= 0 {
		c.Search.BM25B = 0.75
	}
	if c.Search.CacheSize <= 0 {
		c.Search.CacheSize = 1000
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	switch c.Data.Driver {
	case "csv", "sqlite":
		// ok
	default:
		return fmt.Errorf("data.driver must be \"csv\" or \"sqlite\", got %q", c.Data.Driver)
	}

	if c.Data.Driver == "sqlite" && c.Data.CatalogPath == "" {
		return fmt.Errorf("data.catalog_path is required for the sqlite driver")
	}

	if c.Search.BM25B > 1 {
		return fmt.Errorf("search.bm25_b must be in [0, 1], got %g", c.Search.BM25B)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}

	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
