// Package config provides configuration loading for the cmdreg library.
//
// Package: config
// Title: cmdreg Configuration Management
// Description: This package loads configuration from TOML and YAML files with
//              automatic format detection and environment variable overrides.
//              The registry owner uses it to derive table options from a
//              configuration file instead of hard-coded settings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-05
// Modified: 2026-08-21
//
// Change History:
// - 2026-07-05 v0.1.0: Initial implementation with TOML/YAML support
//
// Usage:
//   cfg, err := config.Load("cmdreg.toml")
//   if err != nil { ... }
//
//   ordered := cfg.GetBool("table.ordered_keys", true)
//   name := cfg.GetString("table.name", "commands")
//
// Environment overrides use the CMDREG_ prefix, so "table.name" can be
// overridden with CMDREG_TABLE_NAME.
package config
