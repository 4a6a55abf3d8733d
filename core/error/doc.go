// Package error provides structured error handling for the Rata toolchain.
//
// Package: error
// Title: Rata Error Framework
// Description: This package implements the structured error type used at the
//              boundaries of the Rata front end (CLI, REPL, playground, TUI).
//              It carries error codes, severities, operations, and details on
//              top of Go's standard error interface. The parser and lexer
//              themselves return plain position-tagged error values; the tools
//              wrap those values with this framework before logging or
//              transporting them.
// Author: The Rata Team
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial implementation with contextual errors
//
// Usage:
//   import rataerror "github.com/rata-lang/rata/core/error"
//
//   err := rataerror.Wrap(parseErr, "playground parse request failed").
//     WithCode(rataerror.CodeParseError).
//     WithOperation("playground.parse").
//     WithDetail("request_id", reqID)
package error
