// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the main Config type and core functionality for
//              loading, parsing, and accessing configuration data from TOML
//              and YAML files with environment variable support.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-05
// Modified: 2026-08-21
//
// Change History:
// - 2026-07-05 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	regerror "github.com/msto63/cmdreg/core/error"
	"github.com/msto63/cmdreg/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format // File format (default: auto-detect)
	EnvPrefix string // Prefix for environment variable overrides
}

// DefaultEnvPrefix is the prefix used for environment overrides when
// no explicit prefix is configured.
const DefaultEnvPrefix = "CMDREG"

// Load reads and parses the configuration file at the given path
func Load(filePath string, options ...LoadOptions) (*Config, error) {
	opts := LoadOptions{Format: FormatAuto, EnvPrefix: DefaultEnvPrefix}
	if len(options) > 0 {
		opts = options[0]
		if stringx.IsBlank(opts.EnvPrefix) {
			opts.EnvPrefix = DefaultEnvPrefix
		}
	}

	format := opts.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, regerror.Wrap(err, "cannot read configuration file").
			WithCode(regerror.CodeMissingConfig).
			WithDetail("path", filePath)
	}

	data := make(map[string]interface{})
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(raw, &data); err != nil {
			return nil, regerror.Wrap(err, "cannot parse TOML configuration").
				WithCode(regerror.CodeInvalidConfig).
				WithDetail("path", filePath)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, regerror.Wrap(err, "cannot parse YAML configuration").
				WithCode(regerror.CodeInvalidConfig).
				WithDetail("path", filePath)
		}
	default:
		return nil, regerror.New("unsupported configuration format").
			WithCode(regerror.CodeInvalidConfig).
			WithDetail("format", format.String())
	}

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: opts.EnvPrefix,
	}, nil
}

// NewFromMap creates a configuration instance from an existing map.
// Useful for tests and for embedding defaults.
func NewFromMap(data map[string]interface{}) *Config {
	if data == nil {
		data = make(map[string]interface{})
	}
	return &Config{
		data:      data,
		format:    FormatTOML,
		envPrefix: DefaultEnvPrefix,
	}
}

// detectFormat determines the format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the detected configuration format
func (c *Config) Format() Format {
	return c.format
}

// Get returns the raw value for a dot-notation key.
// Environment variables take precedence over file values: the key
// "table.ordered_keys" is overridden by CMDREG_TABLE_ORDERED_KEYS.
func (c *Config) Get(key string) (interface{}, bool) {
	if env, ok := c.envOverride(key); ok {
		return env, true
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := strings.Split(key, ".")
	var current interface{} = c.data
	for _, part := range parts {
		section, ok := asMap(current)
		if !ok {
			return nil, false
		}
		current, ok = section[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// GetString returns a string value, or the default if missing
func (c *Config) GetString(key, defaultValue string) string {
	v, ok := c.Get(key)
	if !ok {
		return defaultValue
	}
	switch s := v.(type) {
	case string:
		return s
	default:
		return defaultValue
	}
}

// GetBool returns a boolean value, or the default if missing or unparsable
func (c *Config) GetBool(key string, defaultValue bool) bool {
	v, ok := c.Get(key)
	if !ok {
		return defaultValue
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return defaultValue
		}
		return parsed
	default:
		return defaultValue
	}
}

// GetInt returns an integer value, or the default if missing or unparsable
func (c *Config) GetInt(key string, defaultValue int) int {
	v, ok := c.Get(key)
	if !ok {
		return defaultValue
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return defaultValue
		}
		return parsed
	default:
		return defaultValue
	}
}

// Has returns true if the key is present in the configuration
func (c *Config) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// envOverride checks for an environment variable override of the key
func (c *Config) envOverride(key string) (string, bool) {
	name := c.envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	value, ok := os.LookupEnv(name)
	if !ok || stringx.IsBlank(value) {
		return "", false
	}
	return value, true
}

// asMap normalizes the nested map types produced by the TOML and YAML parsers
func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		normalized := make(map[string]interface{}, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				continue
			}
			normalized[key] = val
		}
		return normalized, true
	default:
		return nil, false
	}
}
