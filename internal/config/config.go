// Package config provides configuration management for i18nscan.
// It supports a YAML configuration file, environment variables, and
// sensible defaults. Command-line flags always win over both.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/HybridTalentComputing/i18nscan/internal/util"
)

// Config represents the complete i18nscan configuration.
type Config struct {
	// Scan configures which files are visited and how work is divided
	Scan ScanConfig `yaml:"scan"`

	// Cache configures the persistent extraction cache
	Cache CacheConfig `yaml:"cache"`

	// Output configures report format and display preferences
	Output OutputConfig `yaml:"output"`
}

// ScanConfig holds traversal and scheduling settings.
type ScanConfig struct {
	// FileTypes is the extension allow-list (dot optional)
	FileTypes []string `yaml:"file_types"`
	// Excludes is the path-fragment deny-list
	Excludes []string `yaml:"excludes"`
	// MinStrings marks a file as needing extraction only at or above
	// this string count
	MinStrings int `yaml:"min_strings"`
	// Workers sizes the worker pool; 0 means host parallelism
	Workers int `yaml:"workers"`
	// Budget is an optional wall-clock limit for a whole run
	Budget time.Duration `yaml:"budget,omitempty"`
}

// CacheConfig holds extraction cache settings.
type CacheConfig struct {
	// Enabled enables or disables the persistent cache
	Enabled bool `yaml:"enabled"`
	// Dir is the cache directory path
	Dir string `yaml:"dir"`
}

// OutputConfig holds report and display preferences.
type OutputConfig struct {
	// Format is the default report format (json, csv, text)
	Format string `yaml:"format"`
	// Sort is the default report ordering (count, path)
	Sort string `yaml:"sort"`
	// Top is how many files the text report lists
	Top int `yaml:"top"`
	// Color controls color output (auto, always, never)
	Color string `yaml:"color"`
	// Verbose enables verbose output
	Verbose bool `yaml:"verbose"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			FileTypes:  []string{"js", "jsx", "ts", "tsx", "vue", "html"},
			Excludes:   []string{"node_modules", "dist", "build", ".git"},
			MinStrings: 1,
			Workers:    0,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     util.DefaultCacheDirName,
		},
		Output: OutputConfig{
			Format: "json",
			Sort:   "count",
			Top:    20,
			Color:  "auto",
		},
	}
}

// Load loads the configuration from the user's config file, merging with
// defaults. A missing file is not an error; defaults plus environment
// overrides are returned.
func Load(fs afero.Fs) (*Config, error) {
	cfg := Default()

	data, err := afero.ReadFile(fs, util.ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvironment()
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyEnvironment()
	return cfg, nil
}

// LoadFromPath loads configuration from a specific path. Unlike Load,
// a missing file is an error here: the caller asked for it explicitly.
func LoadFromPath(fs afero.Fs, path string) (*Config, error) {
	cfg := Default()

	data, err := afero.ReadFile(fs, util.ExpandHome(path))
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.applyEnvironment()
	return cfg, nil
}

// Save writes the configuration to the user's config file.
func (c *Config) Save(fs afero.Fs) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, util.ConfigPath(), data, 0o644)
}

// applyEnvironment applies environment variable overrides. Variables
// follow the pattern I18NSCAN_<SECTION>_<KEY>.
func (c *Config) applyEnvironment() {
	// Scan settings
	if v := os.Getenv("I18NSCAN_SCAN_FILE_TYPES"); v != "" {
		c.Scan.FileTypes = splitList(v)
	}
	if v := os.Getenv("I18NSCAN_SCAN_EXCLUDES"); v != "" {
		c.Scan.Excludes = splitList(v)
	}
	if v := os.Getenv("I18NSCAN_SCAN_MIN_STRINGS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Scan.MinStrings = n
		}
	}
	if v := os.Getenv("I18NSCAN_SCAN_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Scan.Workers = n
		}
	}
	if v := os.Getenv("I18NSCAN_SCAN_BUDGET"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Scan.Budget = d
		}
	}

	// Cache settings
	if v := os.Getenv("I18NSCAN_CACHE_ENABLED"); v != "" {
		c.Cache.Enabled = parseBool(v)
	}
	if v := os.Getenv("I18NSCAN_CACHE_DIR"); v != "" {
		c.Cache.Dir = v
	}

	// Output settings
	if v := os.Getenv("I18NSCAN_OUTPUT_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("I18NSCAN_OUTPUT_SORT"); v != "" {
		c.Output.Sort = v
	}
	if v := os.Getenv("I18NSCAN_OUTPUT_TOP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Output.Top = n
		}
	}
	if v := os.Getenv("I18NSCAN_OUTPUT_COLOR"); v != "" {
		c.Output.Color = v
	}
	if v := os.Getenv("I18NSCAN_OUTPUT_VERBOSE"); v != "" {
		c.Output.Verbose = parseBool(v)
	}
}

// parseBool parses a boolean from common string representations.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// splitList splits a comma-separated value into trimmed, non-empty items.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// Exists reports whether a config file is present.
func Exists(fs afero.Fs) bool {
	_, err := fs.Stat(util.ConfigPath())
	return err == nil
}
