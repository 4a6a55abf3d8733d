// Package log provides structured logging for the Rata toolchain.
//
// Package: log
// Title: Rata Structured Logging
// Description: This package implements the structured logging system shared by
//              the Rata front-end tools (CLI, REPL, playground server, TUI).
//              It supports leveled filtering, multiple output formats, contextual
//              fields, and integration with the Rata error framework.
// Author: The Rata Team
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial implementation with structured logging
//
// Features:
// - Structured logging with JSON, text, console, and logfmt formats
// - Leveled filtering from trace to audit
// - Contextual logging with request IDs, session IDs, and source files
// - Integration with the Rata error framework for automatic error logging
// - Performance timers for lexer/parser throughput measurements
// - Asynchronous output for high-volume scenarios (playground server)
//
// Usage:
//   import ratalog "github.com/rata-lang/rata/core/log"
//
//   logger := ratalog.New().
//     WithLevel(ratalog.LevelDebug).
//     WithFormat(ratalog.FormatConsole).
//     WithName("repl")
//
//   logger.Info("session started", ratalog.Field("history", histPath))
//   logger.ErrorWithErr("parse failed", err, ratalog.String("input", line))
//
//   timer := logger.StartTimer("parse_module")
//   // ... tokenize and parse
//   timer.Stop()
package log
