// File: doc.go
// Title: Rata Abstract Syntax Tree Package Documentation
// Description: Defines the Abstract Syntax Tree nodes for representing
//              parsed Rata source. Provides visitor patterns, validation,
//              and a stable JSON encoding of the tree.
// Author: The Rata Team
// Version: v0.1.0
// Created: 2026-02-17
// Modified: 2026-02-17
//
// Change History:
// - 2026-02-17 v0.1.0: Initial AST implementation

/*
Package ast defines the Abstract Syntax Tree structures for Rata source.

This package provides the node definitions, visitor patterns, and utilities
for representing parsed Rata modules, statements, and expressions as
structured data.

The AST enables:
  • Structured representation of Rata programs
  • Evaluation by an external runtime
  • Tree rendering for the REPL, CLI, and playground
  • Static validation of parsed structure
*/
package ast
