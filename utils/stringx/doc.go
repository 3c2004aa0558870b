// Package stringx provides string utilities for the cmdreg library.
//
// Package: stringx
// Title: cmdreg String Utilities
// Description: Small set of string helpers used across the library for
//              validation of table names and path segments. Extends the
//              standard library with blank-string semantics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-05
// Modified: 2026-07-05
package stringx
