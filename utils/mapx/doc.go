// Package mapx provides generic map utilities for the cmdreg library.
//
// Package: mapx
// Title: cmdreg Map Utilities
// Description: Generic helpers for key extraction, cloning, filtering, and
//              merging of maps. The registry's copy-on-write group mutation
//              and snapshot code are built on these primitives.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-05
// Modified: 2026-08-21
package mapx
