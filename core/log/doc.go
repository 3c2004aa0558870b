// Package log provides structured logging for the cmdreg library.
//
// Package: log
// Title: cmdreg Structured Logging
// Description: This package implements a small structured logging system with
//              log levels, contextual fields, and pluggable output formats.
//              It is used by the registry core for lifecycle and operation
//              logging and integrates with the cmdreg error system so that
//              structured errors are logged with their codes and details.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-02
// Modified: 2026-08-21
//
// Change History:
// - 2026-07-02 v0.1.0: Initial implementation with structured logging
//
// Usage:
//   import "github.com/msto63/cmdreg/core/log"
//
//   logger := log.New().
//     WithLevel(log.LevelDebug).
//     WithFormat(log.FormatText).
//     WithField("component", "command-registry")
//
//   logger.Info("table started", log.Fields{"table": "commands"})
//   logger.Debug("command added", log.String("path", "mod.ban"))
//   logger.LogError(err)
package log
