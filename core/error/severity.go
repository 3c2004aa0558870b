// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization, monitoring, and logging. The logging package
//              maps severities onto log levels when errors are logged.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-02
// Modified: 2026-07-02
//
// Change History:
// - 2026-07-02 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, rejected duplicate registrations
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: leaf collisions on concurrent registration, read-only handle writes
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: operations against a stopped or missing table
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	// Examples: corrupted registry state, failed owner startup
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}
