// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for classifying errors across
//              the Rata tools. Codes enable structured error handling, JSON
//              response formatting in the playground, and log filtering.
// Author: The Rata Team
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial implementation with front-end error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes used across the Rata front end
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Language front end
	CodeLexError      Code = "RATA_LEX"
	CodeParseError    Code = "RATA_SYNTAX"
	CodeIncomplete    Code = "RATA_INCOMPLETE"
	CodeDepthExceeded Code = "RATA_DEPTH_EXCEEDED"
	CodeInputTooLarge Code = "RATA_INPUT_TOO_LARGE"

	// Files and I/O
	CodeIOError      Code = "IO_ERROR"
	CodeFileNotFound Code = "FILE_NOT_FOUND"

	// Service and network (playground server)
	CodeServiceUnavailable    Code = "SERVICE_UNAVAILABLE"
	CodeNetworkError          Code = "NETWORK_ERROR"
	CodeServiceTimeout        Code = "SERVICE_TIMEOUT"
	CodeServiceInitialization Code = "SERVICE_INITIALIZATION"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength    Code = "INVALID_LENGTH"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeLexError, CodeParseError, CodeIncomplete, CodeDepthExceeded, CodeInputTooLarge,
		CodeIOError, CodeFileNotFound,
		CodeServiceUnavailable, CodeNetworkError, CodeServiceTimeout, CodeServiceInitialization,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout:
		return "generic"
	case CodeLexError, CodeParseError, CodeIncomplete, CodeDepthExceeded, CodeInputTooLarge:
		return "language"
	case CodeIOError, CodeFileNotFound:
		return "io"
	case CodeServiceUnavailable, CodeNetworkError, CodeServiceTimeout, CodeServiceInitialization:
		return "service"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return "config"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength:
		return "validation"
	default:
		return "unknown"
	}
}

// IsSyntaxCode reports whether the code describes a lexical or grammatical
// failure of Rata source text
func (c Code) IsSyntaxCode() bool {
	switch c {
	case CodeLexError, CodeParseError, CodeIncomplete, CodeDepthExceeded:
		return true
	default:
		return false
	}
}
