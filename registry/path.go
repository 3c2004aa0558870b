// File: path.go
// Title: Command Path Helpers
// Description: Helpers for the segmented command paths used by the registry,
//              including the dotted string form ("mod.ban") and path
//              validation shared by all table operations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-10
// Modified: 2026-08-24
//
// Change History:
// - 2026-07-10 v0.1.0: Initial implementation

package registry

import (
	"strings"

	regerror "github.com/msto63/cmdreg/core/error"
	"github.com/msto63/cmdreg/utils/stringx"
)

// PathSeparator separates segments in the dotted string form of a path.
const PathSeparator = "."

// ParsePath splits a dotted command path ("mod.ban") into its segments.
// Blank input and blank segments are rejected.
func ParsePath(s string) ([]string, error) {
	if stringx.IsBlank(s) {
		return nil, regerror.New("command path must not be blank").
			WithCode(regerror.CodeInvalidPath).
			WithSeverity(regerror.SeverityLow)
	}

	path := strings.Split(s, PathSeparator)
	if err := validatePath(path); err != nil {
		return nil, err
	}
	return path, nil
}

// JoinPath renders path segments in dotted string form.
func JoinPath(path []string) string {
	return strings.Join(path, PathSeparator)
}

// validatePath checks that a path is non-empty and free of blank segments.
func validatePath(path []string) error {
	if len(path) == 0 {
		return regerror.New("command path must not be empty").
			WithCode(regerror.CodeInvalidPath).
			WithSeverity(regerror.SeverityLow)
	}
	for i, segment := range path {
		if stringx.IsBlank(segment) {
			return regerror.New("command path contains a blank segment").
				WithCode(regerror.CodeInvalidPath).
				WithSeverity(regerror.SeverityLow).
				WithDetail("position", i).
				WithDetail("path", JoinPath(path))
		}
	}
	return nil
}
