// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. A syntax error in user
//              source is routine; a playground server that cannot bind its
//              port is not. Severities let the tools log and alert
//              accordingly.
// Author: The Rata Team
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a routine error that does not affect the tool
	// Examples: syntax errors in user source, unknown REPL commands
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: unreadable config file (defaults apply), oversized input rejected
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: history file unwritable, websocket upgrade failures
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the tool unusable
	// Examples: server cannot bind, corrupted installation
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

// Priority returns a priority value for sorting (higher number = higher priority)
func (s Severity) Priority() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Critical tool failures
	case CodeServiceUnavailable, CodeEnvironmentError:
		return SeverityCritical

	// High severity errors
	case CodeInternal, CodeServiceInitialization, CodeIOError:
		return SeverityHigh

	// Medium severity errors
	case CodeNetworkError, CodeServiceTimeout, CodeTimeout,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeInputTooLarge, CodeDepthExceeded:
		return SeverityMedium

	// Routine front-end errors
	case CodeLexError, CodeParseError, CodeIncomplete,
		CodeInvalidInput, CodeNotFound, CodeFileNotFound,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat,
		CodeValueOutOfRange, CodeInvalidLength:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
