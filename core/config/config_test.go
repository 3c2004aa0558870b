// File: config_test.go
// Title: Core Configuration Tests
// Description: Unit tests for loading TOML and YAML configuration files,
//              dot-notation access, type coercion, and environment overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-05
// Modified: 2026-08-21

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	regerror "github.com/msto63/cmdreg/core/error"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "cmdreg.toml", `
[table]
name = "commands"
ordered_keys = true
max_depth = 8
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, FormatTOML, cfg.Format())
	assert.Equal(t, path, cfg.FilePath())
	assert.Equal(t, "commands", cfg.GetString("table.name", ""))
	assert.True(t, cfg.GetBool("table.ordered_keys", false))
	assert.Equal(t, 8, cfg.GetInt("table.max_depth", 0))
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "cmdreg.yaml", `
table:
  name: commands
  ordered_keys: false
  max_depth: 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, FormatYAML, cfg.Format())
	assert.Equal(t, "commands", cfg.GetString("table.name", ""))
	assert.False(t, cfg.GetBool("table.ordered_keys", true))
	assert.Equal(t, 4, cfg.GetInt("table.max_depth", 0))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.True(t, regerror.IsCode(err, regerror.CodeMissingConfig))
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeFile(t, "broken.toml", `[table`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, regerror.IsCode(err, regerror.CodeInvalidConfig))
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeFile(t, "broken.yaml", "table:\n  - a\n b: c\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, regerror.IsCode(err, regerror.CodeInvalidConfig))
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"config.toml", FormatTOML},
		{"config.yaml", FormatYAML},
		{"config.yml", FormatYAML},
		{"config.YAML", FormatYAML},
		{"config", FormatTOML},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, detectFormat(tt.path), tt.path)
	}
}

func TestGetNested(t *testing.T) {
	cfg := NewFromMap(map[string]interface{}{
		"table": map[string]interface{}{
			"name": "commands",
			"options": map[string]interface{}{
				"concurrent_reads": true,
			},
		},
	})

	v, ok := cfg.Get("table.options.concurrent_reads")
	require.True(t, ok)
	assert.Equal(t, true, v)

	_, ok = cfg.Get("table.missing")
	assert.False(t, ok)

	// Traversing through a scalar fails cleanly.
	_, ok = cfg.Get("table.name.deeper")
	assert.False(t, ok)
}

func TestGetNormalizesYAMLMaps(t *testing.T) {
	cfg := NewFromMap(map[string]interface{}{
		"table": map[interface{}]interface{}{
			"name": "commands",
		},
	})

	assert.Equal(t, "commands", cfg.GetString("table.name", ""))
}

func TestTypeCoercion(t *testing.T) {
	cfg := NewFromMap(map[string]interface{}{
		"bool_str":  "true",
		"int_str":   " 42 ",
		"int_float": float64(7),
		"int_64":    int64(9),
		"garbage":   "not-a-number",
	})

	assert.True(t, cfg.GetBool("bool_str", false))
	assert.Equal(t, 42, cfg.GetInt("int_str", 0))
	assert.Equal(t, 7, cfg.GetInt("int_float", 0))
	assert.Equal(t, 9, cfg.GetInt("int_64", 0))
	assert.Equal(t, -1, cfg.GetInt("garbage", -1))
	assert.False(t, cfg.GetBool("garbage", false))
	assert.Equal(t, "fallback", cfg.GetString("missing", "fallback"))
}

func TestEnvOverride(t *testing.T) {
	cfg := NewFromMap(map[string]interface{}{
		"table": map[string]interface{}{
			"name":         "commands",
			"ordered_keys": true,
		},
	})

	t.Setenv("CMDREG_TABLE_NAME", "moderation")
	t.Setenv("CMDREG_TABLE_ORDERED_KEYS", "false")

	assert.Equal(t, "moderation", cfg.GetString("table.name", ""))
	assert.False(t, cfg.GetBool("table.ordered_keys", true))
}

func TestEnvOverrideBlankIgnored(t *testing.T) {
	cfg := NewFromMap(map[string]interface{}{
		"table": map[string]interface{}{"name": "commands"},
	})

	t.Setenv("CMDREG_TABLE_NAME", "   ")

	assert.Equal(t, "commands", cfg.GetString("table.name", ""))
}

func TestHas(t *testing.T) {
	cfg := NewFromMap(map[string]interface{}{"table": map[string]interface{}{"name": "commands"}})

	assert.True(t, cfg.Has("table.name"))
	assert.False(t, cfg.Has("table.nope"))
}
