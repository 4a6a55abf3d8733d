// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides extended string operations for the
//              Rata toolchain, offering Unicode-safe manipulation and low
//              allocation helpers that extend Go's standard library.
// Author: The Rata Team
// Version: v0.1.0
// Created: 2026-02-12
// Modified: 2026-02-12
//
// Change History:
// - 2026-02-12 v0.1.0: Initial implementation with core string utilities

// Package stringx provides extended string operations for the Rata toolchain.
//
// Overview
//
// The stringx package extends Go's standard strings package with utilities
// the tokenizer, REPL, and configuration layer need repeatedly. All
// functions are Unicode-aware and safe for concurrent use.
//
// Key capabilities include:
//   - Memory-efficient string interning for token text
//   - Unicode-safe truncation and padding
//   - Blank and empty checking for input validation
//   - Line splitting across \n, \r\n, and \r conventions
//   - Block indentation for tree-shaped diagnostic output
//
// Usage Examples
//
// Basic string operations:
//
//	// Safe empty/blank checking
//	if stringx.IsBlank("  \t\n  ") {
//	    fmt.Println("String contains only whitespace")
//	}
//
//	// Unicode-aware truncation
//	long := "load_csv(\"data/世界.csv\") |> filter(...)"
//	short := stringx.Truncate(long, 20, "...")
//
//	// Caret alignment under an offending source column
//	caret := stringx.PadLeft("^", col, ' ')
//
// Interning token text:
//
//	// Identifiers repeat heavily across a source file. Interning
//	// collapses the copies the scanner would otherwise allocate.
//	name := stringx.Intern(source[start:end])
//
// Thread Safety
//
// All exported functions are safe for concurrent use. The interning cache
// uses sync.RWMutex and bounds its size so hostile input cannot grow it
// without limit.
//
// See Also
//
//   - strings: Go standard library string functions
//   - unicode: Unicode character classification
//   - utf8: UTF-8 encoding helpers
//
package stringx
