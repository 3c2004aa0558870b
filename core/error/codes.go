// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the cmdreg library. These codes enable
//              structured error handling and error monitoring.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-02
// Modified: 2026-08-21
//
// Change History:
// - 2026-07-02 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the cmdreg library
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Registry codes
	CodeLeafCollision Code = "LEAF_COLLISION"
	CodeInvalidPath   Code = "INVALID_PATH"
	CodeTableExists   Code = "TABLE_EXISTS"
	CodeNoSuchTable   Code = "NO_SUCH_TABLE"
	CodeReadOnlyTable Code = "READ_ONLY_TABLE"

	// Configuration codes
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeMissingConfig Code = "MISSING_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeLeafCollision, CodeInvalidPath, CodeTableExists, CodeNoSuchTable, CodeReadOnlyTable,
		CodeConfigError, CodeInvalidConfig, CodeMissingConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLeafCollision, CodeInvalidPath, CodeTableExists, CodeNoSuchTable, CodeReadOnlyTable:
		return "registry"
	case CodeConfigError, CodeInvalidConfig, CodeMissingConfig:
		return "configuration"
	default:
		return "generic"
	}
}
