// File: doc.go
// Title: Rata Parser Package Documentation
// Description: Implements the lexical analyzer and parser for Rata source
//              text. Converts source strings into structured AST
//              representations with position-tagged error reporting.
// Author: The Rata Team
// Version: v0.1.0
// Created: 2026-02-17
// Modified: 2026-02-17
//
// Change History:
// - 2026-02-17 v0.1.0: Initial parser implementation

/*
Package parser provides lexical analysis and parsing for Rata source text.

This package implements a recursive descent parser that converts Rata
source strings into Abstract Syntax Tree (AST) representations. It
includes:

  • Lexical analyzer (tokenizer) for Rata syntax
  • Precedence-climbing parser over the expression grammar
  • Module and REPL-line entry points
  • Lambda parameter inference and f-string segmentation
  • Position-tagged lexical and grammar errors

Parsing is pure and deterministic: identical input always yields a
structurally identical AST or an identical error, and a Parser value can
be shared between goroutines. Interactive callers can distinguish merely
unfinished input from real faults with IsIncomplete.
*/
package parser
