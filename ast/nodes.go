// File: nodes.go
// Title: Rata AST Node Definitions
// Description: Defines all AST node types for representing Rata source
//              including modules, imports, statements, expressions,
//              collection literals, lambdas, and interpolated strings.
//              Provides string representations and validation methods.
// Author: The Rata Team
// Version: v0.3.0
// Created: 2026-02-17
// Modified: 2026-03-02
//
// Change History:
// - 2026-02-17 v0.1.0: Initial node set (literals, identifiers, calls, binary ops)
// - 2026-02-24 v0.2.0: Ranges, sets, vectors, maps, interpolation, typed parameters
// - 2026-03-02 v0.3.0: Module self-reference, named function definitions, validation pass

package ast

import (
	"fmt"
	"strconv"
	"strings"

	ratastringx "github.com/rata-lang/rata/utils/stringx"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a source-shaped representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate performs basic structural validation of the node
	Validate() error
}

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// String formats the position as line:column
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Expr represents the base interface for all expressions
type Expr interface {
	Node
	exprNode() // marker method
}

// Stmt represents the base interface for all statements
type Stmt interface {
	Node
	stmtNode() // marker method
}

// Module represents a complete Rata source unit
type Module struct {
	Name    string           // Module name (e.g., "Pipeline")
	Imports []*LibraryImport // Leading library imports, in source order
	Body    []Stmt           // Module body statements, in source order
	Pos     Position         // Source position
}

// LibraryImport represents a library import (library Name [as alias])
type LibraryImport struct {
	ModuleName string   // Imported module name
	Alias      string   // Optional alias, empty when absent
	Pos        Position // Source position
}

// Assignment represents a name binding (name = expression)
type Assignment struct {
	Name  string   // Bound name
	Value Expr     // Bound expression
	Pos   Position // Source position
}

// FunctionDef represents a named function definition statement
// (function name(params) { body })
type FunctionDef struct {
	Name   string       // Function name
	Params []*Parameter // Parameter list, in source order
	Body   []Stmt       // Body statements
	Pos    Position     // Source position
}

// Function represents an anonymous function literal
// (function(params) { body }) in expression position
type Function struct {
	Params []*Parameter // Parameter list, in source order
	Body   []Stmt       // Body statements
	Pos    Position     // Source position
}

// Return represents a return statement (return expression)
type Return struct {
	Value Expr     // Returned expression
	Pos   Position // Source position
}

// AssertStatement represents an assertion (assert condition)
type AssertStatement struct {
	Condition Expr     // Asserted expression
	Pos       Position // Source position
}

// ExpressionStatement wraps an expression appearing in statement position
type ExpressionStatement struct {
	Expression Expr     // The wrapped expression
	Pos        Position // Source position
}

// LiteralKind represents the kind of a literal value
type LiteralKind int

const (
	LiteralInt LiteralKind = iota
	LiteralFloat
	LiteralString
)

// String returns string representation of LiteralKind
func (lk LiteralKind) String() string {
	switch lk {
	case LiteralInt:
		return "int"
	case LiteralFloat:
		return "float"
	case LiteralString:
		return "string"
	default:
		return "unknown"
	}
}

// Literal represents a literal value (integer, float, or string)
type Literal struct {
	Kind  LiteralKind // Kind of the literal
	Raw   string      // Source text as written (string content without quotes)
	Value interface{} // Parsed value: int64, float64, or string
	Pos   Position    // Source position
}

// Symbol represents a symbol literal (:name)
type Symbol struct {
	Name string   // Symbol name without the leading colon
	Pos  Position // Source position
}

// Identifier represents a bare identifier (including the _ wildcard)
type Identifier struct {
	Name string   // Identifier name
	Pos  Position // Source position
}

// QualifiedIdentifier represents a module-qualified name (Module.name)
type QualifiedIdentifier struct {
	Module string   // Module part, never empty
	Name   string   // Name part, never empty
	Pos    Position // Source position
}

// ModuleRef represents the module self-reference token (__module__)
type ModuleRef struct {
	Pos Position // Source position
}

// Tuple represents a positional tuple literal ({a, b, c} or {})
type Tuple struct {
	Elements []Expr   // Tuple elements, in source order
	Pos      Position // Source position
}

// Vector represents a vector literal ([a, b, c])
type Vector struct {
	Elements []Expr   // Vector elements, in source order
	Pos      Position // Source position
}

// Set represents a set literal (#{a, b, c})
type Set struct {
	Elements []Expr   // Set elements, in source order
	Pos      Position // Source position
}

// MapPair is one key/value entry of a Map literal
type MapPair struct {
	Key   Expr // Entry key
	Value Expr // Entry value
}

// Map represents a map literal ({k: v, ...}). Pair order follows the
// source; duplicate keys are permitted syntactically.
type Map struct {
	Pairs []MapPair // Entries in declaration order
	Pos   Position  // Source position
}

// Range represents a range expression (start..end)
type Range struct {
	Start Expr     // Range start
	End   Expr     // Range end
	Pos   Position // Source position
}

// FunctionCall represents a call of any callable expression
type FunctionCall struct {
	Function Expr     // Called expression (identifier, qualified name, or any primary)
	Args     []Expr   // Call arguments, in source order
	Pos      Position // Source position
}

// BinaryOp represents a binary operation, including the pipe operator
type BinaryOp struct {
	Left     Expr     // Left operand
	Operator string   // Operator (|>, ==, !=, <=, >, +, -, *, %, ^)
	Right    Expr     // Right operand
	Pos      Position // Source position
}

// If represents an if expression (if cond { ... } else { ... })
type If struct {
	Condition Expr     // Condition expression
	Then      []Stmt   // Then-branch statements
	Else      []Stmt   // Else-branch statements, nil when absent
	Pos       Position // Source position
}

// Lambda represents a tilde lambda (~ body) with inferred parameters
type Lambda struct {
	Params []string // Inferred parameter names, first-occurrence order
	Body   Expr     // Lambda body expression
	Pos    Position // Source position
}

// LambdaParam represents a lambda parameter reference (.name)
type LambdaParam struct {
	Name string   // Parameter name without the leading dot
	Pos  Position // Source position
}

// InterpolatedString represents an f-string. Parts alternate between
// string literal chunks and embedded expressions, in source order.
type InterpolatedString struct {
	Parts []Expr   // Literal chunks (*Literal, string kind) and expressions
	Pos   Position // Source position
}

// Parameter represents one entry of a parameter list (name [: type])
type Parameter struct {
	Name string   // Parameter name
	Type string   // Type tag or nominal type name, empty when untyped
	Pos  Position // Source position
}

// stmtBlock renders a statement block in canonical single-line form
func stmtBlock(stmts []Stmt) string {
	if len(stmts) == 0 {
		return "{}"
	}
	parts := make([]string, len(stmts))
	for i, stmt := range stmts {
		parts[i] = stmt.String()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// paramList renders a parameter list in canonical form
func paramList(params []*Parameter) string {
	parts := make([]string, len(params))
	for i, param := range params {
		parts[i] = param.String()
	}
	return strings.Join(parts, ", ")
}

// exprList renders comma-separated expressions
func exprList(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, expr := range exprs {
		parts[i] = expr.String()
	}
	return strings.Join(parts, ", ")
}

// Implementation of Node interface for Module

func (m *Module) String() string {
	var builder strings.Builder

	for _, imp := range m.Imports {
		builder.WriteString(imp.String())
		builder.WriteString("\n")
	}

	builder.WriteString(fmt.Sprintf("module %s {", m.Name))
	if len(m.Body) > 0 {
		builder.WriteString("\n")
		for _, stmt := range m.Body {
			builder.WriteString(ratastringx.Indent(stmt.String(), "  "))
			builder.WriteString("\n")
		}
	}
	builder.WriteString("}")

	return builder.String()
}

func (m *Module) Accept(visitor Visitor) interface{} {
	return visitor.VisitModule(m)
}

func (m *Module) Position() Position {
	return m.Pos
}

func (m *Module) Validate() error {
	if ratastringx.IsBlank(m.Name) {
		return fmt.Errorf("module name is required")
	}

	for i, imp := range m.Imports {
		if imp == nil {
			return fmt.Errorf("import %d is nil", i)
		}
		if err := imp.Validate(); err != nil {
			return fmt.Errorf("import %d: %w", i, err)
		}
	}

	for i, stmt := range m.Body {
		if stmt == nil {
			return fmt.Errorf("statement %d is nil", i)
		}
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}

	return nil
}

// HasImports returns true if the module declares any library imports
func (m *Module) HasImports() bool {
	return len(m.Imports) > 0
}

// Implementation of Node interface for LibraryImport

func (li *LibraryImport) String() string {
	if li.Alias != "" {
		return fmt.Sprintf("library %s as %s", li.ModuleName, li.Alias)
	}
	return fmt.Sprintf("library %s", li.ModuleName)
}

func (li *LibraryImport) Accept(visitor Visitor) interface{} {
	return visitor.VisitLibraryImport(li)
}

func (li *LibraryImport) Position() Position {
	return li.Pos
}

func (li *LibraryImport) Validate() error {
	if ratastringx.IsBlank(li.ModuleName) {
		return fmt.Errorf("library name is required")
	}
	return nil
}

// IsAliased returns true if the import binds an alias
func (li *LibraryImport) IsAliased() bool {
	return li.Alias != ""
}

func (li *LibraryImport) stmtNode() {}

// Implementation of Node interface for Assignment

func (a *Assignment) String() string {
	return fmt.Sprintf("%s = %s", a.Name, a.Value.String())
}

func (a *Assignment) Accept(visitor Visitor) interface{} {
	return visitor.VisitAssignment(a)
}

func (a *Assignment) Position() Position {
	return a.Pos
}

func (a *Assignment) Validate() error {
	if ratastringx.IsBlank(a.Name) {
		return fmt.Errorf("assignment name is required")
	}
	if a.Value == nil {
		return fmt.Errorf("assignment value is required")
	}
	if err := a.Value.Validate(); err != nil {
		return fmt.Errorf("assignment value: %w", err)
	}
	return nil
}

func (a *Assignment) stmtNode() {}

// Implementation of Node interface for FunctionDef

func (fd *FunctionDef) String() string {
	return fmt.Sprintf("function %s(%s) %s", fd.Name, paramList(fd.Params), stmtBlock(fd.Body))
}

func (fd *FunctionDef) Accept(visitor Visitor) interface{} {
	return visitor.VisitFunctionDef(fd)
}

func (fd *FunctionDef) Position() Position {
	return fd.Pos
}

func (fd *FunctionDef) Validate() error {
	if ratastringx.IsBlank(fd.Name) {
		return fmt.Errorf("function name is required")
	}

	for i, param := range fd.Params {
		if param == nil {
			return fmt.Errorf("parameter %d is nil", i)
		}
		if err := param.Validate(); err != nil {
			return fmt.Errorf("parameter %d: %w", i, err)
		}
	}

	for i, stmt := range fd.Body {
		if stmt == nil {
			return fmt.Errorf("body statement %d is nil", i)
		}
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("body statement %d: %w", i, err)
		}
	}

	return nil
}

func (fd *FunctionDef) stmtNode() {}

// Implementation of Node interface for Function

func (f *Function) String() string {
	return fmt.Sprintf("function(%s) %s", paramList(f.Params), stmtBlock(f.Body))
}

func (f *Function) Accept(visitor Visitor) interface{} {
	return visitor.VisitFunction(f)
}

func (f *Function) Position() Position {
	return f.Pos
}

func (f *Function) Validate() error {
	for i, param := range f.Params {
		if param == nil {
			return fmt.Errorf("parameter %d is nil", i)
		}
		if err := param.Validate(); err != nil {
			return fmt.Errorf("parameter %d: %w", i, err)
		}
	}

	for i, stmt := range f.Body {
		if stmt == nil {
			return fmt.Errorf("body statement %d is nil", i)
		}
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("body statement %d: %w", i, err)
		}
	}

	return nil
}

func (f *Function) exprNode() {}

// Implementation of Node interface for Return

func (r *Return) String() string {
	return fmt.Sprintf("return %s", r.Value.String())
}

func (r *Return) Accept(visitor Visitor) interface{} {
	return visitor.VisitReturn(r)
}

func (r *Return) Position() Position {
	return r.Pos
}

func (r *Return) Validate() error {
	if r.Value == nil {
		return fmt.Errorf("return value is required")
	}
	if err := r.Value.Validate(); err != nil {
		return fmt.Errorf("return value: %w", err)
	}
	return nil
}

func (r *Return) stmtNode() {}

// Implementation of Node interface for AssertStatement

func (as *AssertStatement) String() string {
	return fmt.Sprintf("assert %s", as.Condition.String())
}

func (as *AssertStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitAssert(as)
}

func (as *AssertStatement) Position() Position {
	return as.Pos
}

func (as *AssertStatement) Validate() error {
	if as.Condition == nil {
		return fmt.Errorf("assert condition is required")
	}
	if err := as.Condition.Validate(); err != nil {
		return fmt.Errorf("assert condition: %w", err)
	}
	return nil
}

func (as *AssertStatement) stmtNode() {}

// Implementation of Node interface for ExpressionStatement

func (es *ExpressionStatement) String() string {
	return es.Expression.String()
}

func (es *ExpressionStatement) Accept(visitor Visitor) interface{} {
	return visitor.VisitExpressionStatement(es)
}

func (es *ExpressionStatement) Position() Position {
	return es.Pos
}

func (es *ExpressionStatement) Validate() error {
	if es.Expression == nil {
		return fmt.Errorf("expression is required")
	}
	return es.Expression.Validate()
}

func (es *ExpressionStatement) stmtNode() {}

// Implementation of Node interface for Literal

func (l *Literal) String() string {
	switch l.Kind {
	case LiteralString:
		if s, ok := l.Value.(string); ok {
			return strconv.Quote(s)
		}
		return strconv.Quote(l.Raw)
	default:
		if l.Raw != "" {
			return l.Raw
		}
		return fmt.Sprintf("%v", l.Value)
	}
}

func (l *Literal) Accept(visitor Visitor) interface{} {
	return visitor.VisitLiteral(l)
}

func (l *Literal) Position() Position {
	return l.Pos
}

func (l *Literal) Validate() error {
	switch l.Kind {
	case LiteralInt:
		if _, ok := l.Value.(int64); !ok {
			return fmt.Errorf("invalid integer literal value: %v", l.Value)
		}
	case LiteralFloat:
		if _, ok := l.Value.(float64); !ok {
			return fmt.Errorf("invalid float literal value: %v", l.Value)
		}
	case LiteralString:
		if _, ok := l.Value.(string); !ok {
			return fmt.Errorf("invalid string literal value: %v", l.Value)
		}
	default:
		return fmt.Errorf("unknown literal kind: %v", l.Kind)
	}
	return nil
}

// GetIntValue returns the integer value if this is an integer literal
func (l *Literal) GetIntValue() (int64, bool) {
	if v, ok := l.Value.(int64); ok {
		return v, true
	}
	return 0, false
}

// GetFloatValue returns the numeric value for integer or float literals
func (l *Literal) GetFloatValue() (float64, bool) {
	switch v := l.Value.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// GetStringValue returns the string value if this is a string literal
func (l *Literal) GetStringValue() (string, bool) {
	if v, ok := l.Value.(string); ok {
		return v, true
	}
	return "", false
}

func (l *Literal) exprNode() {}

// Implementation of Node interface for Symbol

func (s *Symbol) String() string {
	return ":" + s.Name
}

func (s *Symbol) Accept(visitor Visitor) interface{} {
	return visitor.VisitSymbol(s)
}

func (s *Symbol) Position() Position {
	return s.Pos
}

func (s *Symbol) Validate() error {
	if ratastringx.IsBlank(s.Name) {
		return fmt.Errorf("symbol name is required")
	}
	return nil
}

func (s *Symbol) exprNode() {}

// Implementation of Node interface for Identifier

func (id *Identifier) String() string {
	return id.Name
}

func (id *Identifier) Accept(visitor Visitor) interface{} {
	return visitor.VisitIdentifier(id)
}

func (id *Identifier) Position() Position {
	return id.Pos
}

func (id *Identifier) Validate() error {
	if ratastringx.IsBlank(id.Name) {
		return fmt.Errorf("identifier name is required")
	}
	return nil
}

// IsWildcard returns true for the discard identifier _
func (id *Identifier) IsWildcard() bool {
	return id.Name == "_"
}

func (id *Identifier) exprNode() {}

// Implementation of Node interface for QualifiedIdentifier

func (qi *QualifiedIdentifier) String() string {
	return qi.Module + "." + qi.Name
}

func (qi *QualifiedIdentifier) Accept(visitor Visitor) interface{} {
	return visitor.VisitQualifiedIdentifier(qi)
}

func (qi *QualifiedIdentifier) Position() Position {
	return qi.Pos
}

func (qi *QualifiedIdentifier) Validate() error {
	// Both parts non-empty: a bare dotted name never degrades to a float
	if ratastringx.IsBlank(qi.Module) {
		return fmt.Errorf("qualified identifier module is required")
	}
	if ratastringx.IsBlank(qi.Name) {
		return fmt.Errorf("qualified identifier name is required")
	}
	return nil
}

func (qi *QualifiedIdentifier) exprNode() {}

// Implementation of Node interface for ModuleRef

func (mr *ModuleRef) String() string {
	return "__module__"
}

func (mr *ModuleRef) Accept(visitor Visitor) interface{} {
	return visitor.VisitModuleRef(mr)
}

func (mr *ModuleRef) Position() Position {
	return mr.Pos
}

func (mr *ModuleRef) Validate() error {
	return nil
}

func (mr *ModuleRef) exprNode() {}

// Implementation of Node interface for Tuple

func (t *Tuple) String() string {
	return "{" + exprList(t.Elements) + "}"
}

func (t *Tuple) Accept(visitor Visitor) interface{} {
	return visitor.VisitTuple(t)
}

func (t *Tuple) Position() Position {
	return t.Pos
}

func (t *Tuple) Validate() error {
	for i, elem := range t.Elements {
		if elem == nil {
			return fmt.Errorf("element %d is nil", i)
		}
		if err := elem.Validate(); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

func (t *Tuple) exprNode() {}

// Implementation of Node interface for Vector

func (v *Vector) String() string {
	return "[" + exprList(v.Elements) + "]"
}

func (v *Vector) Accept(visitor Visitor) interface{} {
	return visitor.VisitVector(v)
}

func (v *Vector) Position() Position {
	return v.Pos
}

func (v *Vector) Validate() error {
	for i, elem := range v.Elements {
		if elem == nil {
			return fmt.Errorf("element %d is nil", i)
		}
		if err := elem.Validate(); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

func (v *Vector) exprNode() {}

// Implementation of Node interface for Set

func (s *Set) String() string {
	return "#{" + exprList(s.Elements) + "}"
}

func (s *Set) Accept(visitor Visitor) interface{} {
	return visitor.VisitSet(s)
}

func (s *Set) Position() Position {
	return s.Pos
}

func (s *Set) Validate() error {
	for i, elem := range s.Elements {
		if elem == nil {
			return fmt.Errorf("element %d is nil", i)
		}
		if err := elem.Validate(); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

func (s *Set) exprNode() {}

// Implementation of Node interface for Map

func (m *Map) String() string {
	parts := make([]string, len(m.Pairs))
	for i, pair := range m.Pairs {
		parts[i] = fmt.Sprintf("%s: %s", pair.Key.String(), pair.Value.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (m *Map) Accept(visitor Visitor) interface{} {
	return visitor.VisitMap(m)
}

func (m *Map) Position() Position {
	return m.Pos
}

func (m *Map) Validate() error {
	for i, pair := range m.Pairs {
		if pair.Key == nil {
			return fmt.Errorf("pair %d key is nil", i)
		}
		if pair.Value == nil {
			return fmt.Errorf("pair %d value is nil", i)
		}
		if err := pair.Key.Validate(); err != nil {
			return fmt.Errorf("pair %d key: %w", i, err)
		}
		if err := pair.Value.Validate(); err != nil {
			return fmt.Errorf("pair %d value: %w", i, err)
		}
	}
	return nil
}

func (m *Map) exprNode() {}

// Implementation of Node interface for Range

func (r *Range) String() string {
	return fmt.Sprintf("%s..%s", r.Start.String(), r.End.String())
}

func (r *Range) Accept(visitor Visitor) interface{} {
	return visitor.VisitRange(r)
}

func (r *Range) Position() Position {
	return r.Pos
}

func (r *Range) Validate() error {
	if r.Start == nil {
		return fmt.Errorf("range start is required")
	}
	if r.End == nil {
		return fmt.Errorf("range end is required")
	}
	if err := r.Start.Validate(); err != nil {
		return fmt.Errorf("range start: %w", err)
	}
	if err := r.End.Validate(); err != nil {
		return fmt.Errorf("range end: %w", err)
	}
	return nil
}

func (r *Range) exprNode() {}

// Implementation of Node interface for FunctionCall

func (fc *FunctionCall) String() string {
	return fmt.Sprintf("%s(%s)", fc.Function.String(), exprList(fc.Args))
}

func (fc *FunctionCall) Accept(visitor Visitor) interface{} {
	return visitor.VisitFunctionCall(fc)
}

func (fc *FunctionCall) Position() Position {
	return fc.Pos
}

func (fc *FunctionCall) Validate() error {
	if fc.Function == nil {
		return fmt.Errorf("called expression is required")
	}
	if err := fc.Function.Validate(); err != nil {
		return fmt.Errorf("called expression: %w", err)
	}

	for i, arg := range fc.Args {
		if arg == nil {
			return fmt.Errorf("argument %d is nil", i)
		}
		if err := arg.Validate(); err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
	}

	return nil
}

func (fc *FunctionCall) exprNode() {}

// Implementation of Node interface for BinaryOp

func (bo *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", bo.Left.String(), bo.Operator, bo.Right.String())
}

func (bo *BinaryOp) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryOp(bo)
}

func (bo *BinaryOp) Position() Position {
	return bo.Pos
}

func (bo *BinaryOp) Validate() error {
	if bo.Left == nil {
		return fmt.Errorf("left operand is required")
	}
	if bo.Right == nil {
		return fmt.Errorf("right operand is required")
	}
	if ratastringx.IsBlank(bo.Operator) {
		return fmt.Errorf("operator is required")
	}

	if err := bo.Left.Validate(); err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	if err := bo.Right.Validate(); err != nil {
		return fmt.Errorf("right operand: %w", err)
	}

	return nil
}

// IsPipe returns true for the pipeline operator
func (bo *BinaryOp) IsPipe() bool {
	return bo.Operator == "|>"
}

func (bo *BinaryOp) exprNode() {}

// Implementation of Node interface for If

func (i *If) String() string {
	result := fmt.Sprintf("if %s %s", i.Condition.String(), stmtBlock(i.Then))
	if i.Else != nil {
		result += " else " + stmtBlock(i.Else)
	}
	return result
}

func (i *If) Accept(visitor Visitor) interface{} {
	return visitor.VisitIf(i)
}

func (i *If) Position() Position {
	return i.Pos
}

func (i *If) Validate() error {
	if i.Condition == nil {
		return fmt.Errorf("if condition is required")
	}
	if err := i.Condition.Validate(); err != nil {
		return fmt.Errorf("if condition: %w", err)
	}

	for idx, stmt := range i.Then {
		if stmt == nil {
			return fmt.Errorf("then statement %d is nil", idx)
		}
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("then statement %d: %w", idx, err)
		}
	}

	for idx, stmt := range i.Else {
		if stmt == nil {
			return fmt.Errorf("else statement %d is nil", idx)
		}
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("else statement %d: %w", idx, err)
		}
	}

	return nil
}

// HasElse returns true if the else branch is present
func (i *If) HasElse() bool {
	return i.Else != nil
}

func (i *If) exprNode() {}

// Implementation of Node interface for Lambda

func (l *Lambda) String() string {
	return "~ " + l.Body.String()
}

func (l *Lambda) Accept(visitor Visitor) interface{} {
	return visitor.VisitLambda(l)
}

func (l *Lambda) Position() Position {
	return l.Pos
}

func (l *Lambda) Validate() error {
	if l.Body == nil {
		return fmt.Errorf("lambda body is required")
	}
	for i, param := range l.Params {
		if ratastringx.IsBlank(param) {
			return fmt.Errorf("lambda parameter %d is blank", i)
		}
	}
	if err := l.Body.Validate(); err != nil {
		return fmt.Errorf("lambda body: %w", err)
	}
	return nil
}

func (l *Lambda) exprNode() {}

// Implementation of Node interface for LambdaParam

func (lp *LambdaParam) String() string {
	return "." + lp.Name
}

func (lp *LambdaParam) Accept(visitor Visitor) interface{} {
	return visitor.VisitLambdaParam(lp)
}

func (lp *LambdaParam) Position() Position {
	return lp.Pos
}

func (lp *LambdaParam) Validate() error {
	if ratastringx.IsBlank(lp.Name) {
		return fmt.Errorf("lambda parameter name is required")
	}
	return nil
}

func (lp *LambdaParam) exprNode() {}

// Implementation of Node interface for InterpolatedString

func (is *InterpolatedString) String() string {
	var builder strings.Builder
	builder.WriteString(`f"`)
	for _, part := range is.Parts {
		if lit, ok := part.(*Literal); ok && lit.Kind == LiteralString {
			if s, valid := lit.GetStringValue(); valid {
				quoted := strconv.Quote(s)
				builder.WriteString(quoted[1 : len(quoted)-1])
				continue
			}
		}
		builder.WriteString("{")
		builder.WriteString(part.String())
		builder.WriteString("}")
	}
	builder.WriteString(`"`)
	return builder.String()
}

func (is *InterpolatedString) Accept(visitor Visitor) interface{} {
	return visitor.VisitInterpolatedString(is)
}

func (is *InterpolatedString) Position() Position {
	return is.Pos
}

func (is *InterpolatedString) Validate() error {
	if len(is.Parts) == 0 {
		return fmt.Errorf("interpolated string needs at least one part")
	}
	for i, part := range is.Parts {
		if part == nil {
			return fmt.Errorf("part %d is nil", i)
		}
		if err := part.Validate(); err != nil {
			return fmt.Errorf("part %d: %w", i, err)
		}
	}
	return nil
}

func (is *InterpolatedString) exprNode() {}

// Implementation of Node interface for Parameter

func (p *Parameter) String() string {
	if p.Type != "" {
		return fmt.Sprintf("%s: %s", p.Name, p.Type)
	}
	return p.Name
}

func (p *Parameter) Accept(visitor Visitor) interface{} {
	return visitor.VisitParameter(p)
}

func (p *Parameter) Position() Position {
	return p.Pos
}

func (p *Parameter) Validate() error {
	if ratastringx.IsBlank(p.Name) {
		return fmt.Errorf("parameter name is required")
	}
	return nil
}

// IsTyped returns true if the parameter carries a type annotation
func (p *Parameter) IsTyped() bool {
	return p.Type != ""
}
