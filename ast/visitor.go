// File: visitor.go
// Title: Rata AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing and processing
//              Rata AST nodes. Provides the base visitor interface and common
//              visitor implementations for rendering, validation, and
//              node collection.
// Author: The Rata Team
// Version: v0.3.0
// Created: 2026-02-17
// Modified: 2026-03-02
//
// Change History:
// - 2026-02-17 v0.1.0: Initial visitor pattern implementation
// - 2026-02-24 v0.2.0: Collection literal and interpolation traversal
// - 2026-03-02 v0.3.0: Tree visitor for the REPL and CLI inspectors

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	// Visit structure nodes
	VisitModule(module *Module) interface{}
	VisitLibraryImport(imp *LibraryImport) interface{}
	VisitParameter(param *Parameter) interface{}

	// Visit statement nodes
	VisitAssignment(assign *Assignment) interface{}
	VisitFunctionDef(def *FunctionDef) interface{}
	VisitReturn(ret *Return) interface{}
	VisitAssert(assert *AssertStatement) interface{}
	VisitExpressionStatement(stmt *ExpressionStatement) interface{}

	// Visit expression nodes
	VisitLiteral(lit *Literal) interface{}
	VisitSymbol(sym *Symbol) interface{}
	VisitIdentifier(ident *Identifier) interface{}
	VisitQualifiedIdentifier(ident *QualifiedIdentifier) interface{}
	VisitModuleRef(ref *ModuleRef) interface{}
	VisitTuple(tuple *Tuple) interface{}
	VisitVector(vector *Vector) interface{}
	VisitSet(set *Set) interface{}
	VisitMap(m *Map) interface{}
	VisitRange(rng *Range) interface{}
	VisitFunctionCall(call *FunctionCall) interface{}
	VisitBinaryOp(op *BinaryOp) interface{}
	VisitIf(ifExpr *If) interface{}
	VisitFunction(fn *Function) interface{}
	VisitLambda(lambda *Lambda) interface{}
	VisitLambdaParam(param *LambdaParam) interface{}
	VisitInterpolatedString(str *InterpolatedString) interface{}
}

// BaseVisitor provides default implementations for all visitor methods
// Embed this in concrete visitors to only override needed methods
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitModule(module *Module) interface{} {
	for _, imp := range module.Imports {
		imp.Accept(bv)
	}
	for _, stmt := range module.Body {
		stmt.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitLibraryImport(imp *LibraryImport) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitParameter(param *Parameter) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitAssignment(assign *Assignment) interface{} {
	if assign.Value != nil {
		return assign.Value.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitFunctionDef(def *FunctionDef) interface{} {
	for _, param := range def.Params {
		param.Accept(bv)
	}
	for _, stmt := range def.Body {
		stmt.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitReturn(ret *Return) interface{} {
	if ret.Value != nil {
		return ret.Value.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitAssert(assert *AssertStatement) interface{} {
	if assert.Condition != nil {
		return assert.Condition.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitExpressionStatement(stmt *ExpressionStatement) interface{} {
	if stmt.Expression != nil {
		return stmt.Expression.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitLiteral(lit *Literal) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitSymbol(sym *Symbol) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitIdentifier(ident *Identifier) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitQualifiedIdentifier(ident *QualifiedIdentifier) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitModuleRef(ref *ModuleRef) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitTuple(tuple *Tuple) interface{} {
	for _, elem := range tuple.Elements {
		elem.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitVector(vector *Vector) interface{} {
	for _, elem := range vector.Elements {
		elem.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitSet(set *Set) interface{} {
	for _, elem := range set.Elements {
		elem.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitMap(m *Map) interface{} {
	for _, pair := range m.Pairs {
		if pair.Key != nil {
			pair.Key.Accept(bv)
		}
		if pair.Value != nil {
			pair.Value.Accept(bv)
		}
	}
	return nil
}

func (bv *BaseVisitor) VisitRange(rng *Range) interface{} {
	if rng.Start != nil {
		rng.Start.Accept(bv)
	}
	if rng.End != nil {
		rng.End.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitFunctionCall(call *FunctionCall) interface{} {
	if call.Function != nil {
		call.Function.Accept(bv)
	}
	for _, arg := range call.Args {
		arg.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitBinaryOp(op *BinaryOp) interface{} {
	if op.Left != nil {
		op.Left.Accept(bv)
	}
	if op.Right != nil {
		op.Right.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitIf(ifExpr *If) interface{} {
	if ifExpr.Condition != nil {
		ifExpr.Condition.Accept(bv)
	}
	for _, stmt := range ifExpr.Then {
		stmt.Accept(bv)
	}
	for _, stmt := range ifExpr.Else {
		stmt.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitFunction(fn *Function) interface{} {
	for _, param := range fn.Params {
		param.Accept(bv)
	}
	for _, stmt := range fn.Body {
		stmt.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitLambda(lambda *Lambda) interface{} {
	if lambda.Body != nil {
		return lambda.Body.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitLambdaParam(param *LambdaParam) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitInterpolatedString(str *InterpolatedString) interface{} {
	for _, part := range str.Parts {
		part.Accept(bv)
	}
	return nil
}

// TreeVisitor renders an AST as an indented tree, one node per line.
// The REPL :ast command and the CLI parse command use this output.
type TreeVisitor struct {
	BaseVisitor
	buffer strings.Builder
	indent int
}

// NewTreeVisitor creates a new tree visitor
func NewTreeVisitor() *TreeVisitor {
	return &TreeVisitor{}
}

// String returns the built tree representation
func (tv *TreeVisitor) String() string {
	return tv.buffer.String()
}

// Reset clears the internal buffer
func (tv *TreeVisitor) Reset() {
	tv.buffer.Reset()
	tv.indent = 0
}

func (tv *TreeVisitor) writeIndent() {
	for i := 0; i < tv.indent; i++ {
		tv.buffer.WriteString("  ")
	}
}

func (tv *TreeVisitor) writeLine(format string, args ...interface{}) {
	tv.writeIndent()
	tv.buffer.WriteString(fmt.Sprintf(format, args...))
	tv.buffer.WriteString("\n")
}

func (tv *TreeVisitor) visitChildren(nodes []Stmt) {
	tv.indent++
	for _, node := range nodes {
		node.Accept(tv)
	}
	tv.indent--
}

func (tv *TreeVisitor) VisitModule(module *Module) interface{} {
	tv.writeLine("Module: %s", module.Name)
	tv.indent++
	for _, imp := range module.Imports {
		imp.Accept(tv)
	}
	for _, stmt := range module.Body {
		stmt.Accept(tv)
	}
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitLibraryImport(imp *LibraryImport) interface{} {
	if imp.Alias != "" {
		tv.writeLine("Import: %s as %s", imp.ModuleName, imp.Alias)
	} else {
		tv.writeLine("Import: %s", imp.ModuleName)
	}
	return nil
}

func (tv *TreeVisitor) VisitParameter(param *Parameter) interface{} {
	tv.writeLine("Parameter: %s", param.String())
	return nil
}

func (tv *TreeVisitor) VisitAssignment(assign *Assignment) interface{} {
	tv.writeLine("Assignment: %s", assign.Name)
	tv.indent++
	assign.Value.Accept(tv)
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitFunctionDef(def *FunctionDef) interface{} {
	tv.writeLine("FunctionDef: %s(%s)", def.Name, paramList(def.Params))
	tv.visitChildren(def.Body)
	return nil
}

func (tv *TreeVisitor) VisitReturn(ret *Return) interface{} {
	tv.writeLine("Return:")
	tv.indent++
	ret.Value.Accept(tv)
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitAssert(assert *AssertStatement) interface{} {
	tv.writeLine("Assert:")
	tv.indent++
	assert.Condition.Accept(tv)
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitExpressionStatement(stmt *ExpressionStatement) interface{} {
	// Statement wrapper carries no information of its own
	return stmt.Expression.Accept(tv)
}

func (tv *TreeVisitor) VisitLiteral(lit *Literal) interface{} {
	tv.writeLine("Literal: %s(%s)", lit.Kind.String(), lit.String())
	return nil
}

func (tv *TreeVisitor) VisitSymbol(sym *Symbol) interface{} {
	tv.writeLine("Symbol: :%s", sym.Name)
	return nil
}

func (tv *TreeVisitor) VisitIdentifier(ident *Identifier) interface{} {
	tv.writeLine("Identifier: %s", ident.Name)
	return nil
}

func (tv *TreeVisitor) VisitQualifiedIdentifier(ident *QualifiedIdentifier) interface{} {
	tv.writeLine("QualifiedIdentifier: %s.%s", ident.Module, ident.Name)
	return nil
}

func (tv *TreeVisitor) VisitModuleRef(ref *ModuleRef) interface{} {
	tv.writeLine("ModuleRef: __module__")
	return nil
}

func (tv *TreeVisitor) VisitTuple(tuple *Tuple) interface{} {
	tv.writeLine("Tuple:")
	tv.indent++
	for _, elem := range tuple.Elements {
		elem.Accept(tv)
	}
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitVector(vector *Vector) interface{} {
	tv.writeLine("Vector:")
	tv.indent++
	for _, elem := range vector.Elements {
		elem.Accept(tv)
	}
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitSet(set *Set) interface{} {
	tv.writeLine("Set:")
	tv.indent++
	for _, elem := range set.Elements {
		elem.Accept(tv)
	}
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitMap(m *Map) interface{} {
	tv.writeLine("Map:")
	tv.indent++
	for _, pair := range m.Pairs {
		tv.writeLine("Entry:")
		tv.indent++
		pair.Key.Accept(tv)
		pair.Value.Accept(tv)
		tv.indent--
	}
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitRange(rng *Range) interface{} {
	tv.writeLine("Range:")
	tv.indent++
	rng.Start.Accept(tv)
	rng.End.Accept(tv)
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitFunctionCall(call *FunctionCall) interface{} {
	tv.writeLine("FunctionCall:")
	tv.indent++
	tv.writeLine("Function:")
	tv.indent++
	call.Function.Accept(tv)
	tv.indent--
	if len(call.Args) > 0 {
		tv.writeLine("Args:")
		tv.indent++
		for _, arg := range call.Args {
			arg.Accept(tv)
		}
		tv.indent--
	}
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitBinaryOp(op *BinaryOp) interface{} {
	tv.writeLine("BinaryOp: %s", op.Operator)
	tv.indent++
	op.Left.Accept(tv)
	op.Right.Accept(tv)
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitIf(ifExpr *If) interface{} {
	tv.writeLine("If:")
	tv.indent++
	tv.writeLine("Condition:")
	tv.indent++
	ifExpr.Condition.Accept(tv)
	tv.indent--
	tv.writeLine("Then:")
	tv.visitChildren(ifExpr.Then)
	if ifExpr.Else != nil {
		tv.writeLine("Else:")
		tv.visitChildren(ifExpr.Else)
	}
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitFunction(fn *Function) interface{} {
	tv.writeLine("Function: (%s)", paramList(fn.Params))
	tv.visitChildren(fn.Body)
	return nil
}

func (tv *TreeVisitor) VisitLambda(lambda *Lambda) interface{} {
	tv.writeLine("Lambda: (%s)", strings.Join(lambda.Params, ", "))
	tv.indent++
	lambda.Body.Accept(tv)
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitLambdaParam(param *LambdaParam) interface{} {
	tv.writeLine("LambdaParam: .%s", param.Name)
	return nil
}

func (tv *TreeVisitor) VisitInterpolatedString(str *InterpolatedString) interface{} {
	tv.writeLine("InterpolatedString:")
	tv.indent++
	for _, part := range str.Parts {
		part.Accept(tv)
	}
	tv.indent--
	return nil
}

// ValidationVisitor validates AST nodes and collects errors
type ValidationVisitor struct {
	BaseVisitor
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{
		errors: make([]error, 0),
	}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = vv.errors[:0]
}

func (vv *ValidationVisitor) addError(err error) {
	vv.errors = append(vv.errors, err)
}

func (vv *ValidationVisitor) VisitModule(module *Module) interface{} {
	if err := module.Validate(); err != nil {
		vv.addError(fmt.Errorf("module validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitModule(module)
}

func (vv *ValidationVisitor) VisitLibraryImport(imp *LibraryImport) interface{} {
	if err := imp.Validate(); err != nil {
		vv.addError(fmt.Errorf("import validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitLibraryImport(imp)
}

func (vv *ValidationVisitor) VisitParameter(param *Parameter) interface{} {
	if err := param.Validate(); err != nil {
		vv.addError(fmt.Errorf("parameter validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitParameter(param)
}

func (vv *ValidationVisitor) VisitAssignment(assign *Assignment) interface{} {
	if err := assign.Validate(); err != nil {
		vv.addError(fmt.Errorf("assignment validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitAssignment(assign)
}

func (vv *ValidationVisitor) VisitFunctionDef(def *FunctionDef) interface{} {
	if err := def.Validate(); err != nil {
		vv.addError(fmt.Errorf("function definition validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitFunctionDef(def)
}

func (vv *ValidationVisitor) VisitReturn(ret *Return) interface{} {
	if err := ret.Validate(); err != nil {
		vv.addError(fmt.Errorf("return validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitReturn(ret)
}

func (vv *ValidationVisitor) VisitAssert(assert *AssertStatement) interface{} {
	if err := assert.Validate(); err != nil {
		vv.addError(fmt.Errorf("assert validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitAssert(assert)
}

func (vv *ValidationVisitor) VisitExpressionStatement(stmt *ExpressionStatement) interface{} {
	if err := stmt.Validate(); err != nil {
		vv.addError(fmt.Errorf("expression statement validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitExpressionStatement(stmt)
}

func (vv *ValidationVisitor) VisitLiteral(lit *Literal) interface{} {
	if err := lit.Validate(); err != nil {
		vv.addError(fmt.Errorf("literal validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitLiteral(lit)
}

func (vv *ValidationVisitor) VisitSymbol(sym *Symbol) interface{} {
	if err := sym.Validate(); err != nil {
		vv.addError(fmt.Errorf("symbol validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitSymbol(sym)
}

func (vv *ValidationVisitor) VisitIdentifier(ident *Identifier) interface{} {
	if err := ident.Validate(); err != nil {
		vv.addError(fmt.Errorf("identifier validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitIdentifier(ident)
}

func (vv *ValidationVisitor) VisitQualifiedIdentifier(ident *QualifiedIdentifier) interface{} {
	if err := ident.Validate(); err != nil {
		vv.addError(fmt.Errorf("qualified identifier validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitQualifiedIdentifier(ident)
}

func (vv *ValidationVisitor) VisitModuleRef(ref *ModuleRef) interface{} {
	if err := ref.Validate(); err != nil {
		vv.addError(fmt.Errorf("module reference validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitModuleRef(ref)
}

func (vv *ValidationVisitor) VisitTuple(tuple *Tuple) interface{} {
	if err := tuple.Validate(); err != nil {
		vv.addError(fmt.Errorf("tuple validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitTuple(tuple)
}

func (vv *ValidationVisitor) VisitVector(vector *Vector) interface{} {
	if err := vector.Validate(); err != nil {
		vv.addError(fmt.Errorf("vector validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitVector(vector)
}

func (vv *ValidationVisitor) VisitSet(set *Set) interface{} {
	if err := set.Validate(); err != nil {
		vv.addError(fmt.Errorf("set validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitSet(set)
}

func (vv *ValidationVisitor) VisitMap(m *Map) interface{} {
	if err := m.Validate(); err != nil {
		vv.addError(fmt.Errorf("map validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitMap(m)
}

func (vv *ValidationVisitor) VisitRange(rng *Range) interface{} {
	if err := rng.Validate(); err != nil {
		vv.addError(fmt.Errorf("range validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitRange(rng)
}

func (vv *ValidationVisitor) VisitFunctionCall(call *FunctionCall) interface{} {
	if err := call.Validate(); err != nil {
		vv.addError(fmt.Errorf("function call validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitFunctionCall(call)
}

func (vv *ValidationVisitor) VisitBinaryOp(op *BinaryOp) interface{} {
	if err := op.Validate(); err != nil {
		vv.addError(fmt.Errorf("binary operation validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitBinaryOp(op)
}

func (vv *ValidationVisitor) VisitIf(ifExpr *If) interface{} {
	if err := ifExpr.Validate(); err != nil {
		vv.addError(fmt.Errorf("if expression validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitIf(ifExpr)
}

func (vv *ValidationVisitor) VisitFunction(fn *Function) interface{} {
	if err := fn.Validate(); err != nil {
		vv.addError(fmt.Errorf("function validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitFunction(fn)
}

func (vv *ValidationVisitor) VisitLambda(lambda *Lambda) interface{} {
	if err := lambda.Validate(); err != nil {
		vv.addError(fmt.Errorf("lambda validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitLambda(lambda)
}

func (vv *ValidationVisitor) VisitLambdaParam(param *LambdaParam) interface{} {
	if err := param.Validate(); err != nil {
		vv.addError(fmt.Errorf("lambda parameter validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitLambdaParam(param)
}

func (vv *ValidationVisitor) VisitInterpolatedString(str *InterpolatedString) interface{} {
	if err := str.Validate(); err != nil {
		vv.addError(fmt.Errorf("interpolated string validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitInterpolatedString(str)
}

// CollectorVisitor collects specific types of nodes from the AST
type CollectorVisitor struct {
	BaseVisitor
	Identifiers          []*Identifier
	QualifiedIdentifiers []*QualifiedIdentifier
	FunctionCalls        []*FunctionCall
	Literals             []*Literal
	LambdaParams         []*LambdaParam
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{
		Identifiers:          make([]*Identifier, 0),
		QualifiedIdentifiers: make([]*QualifiedIdentifier, 0),
		FunctionCalls:        make([]*FunctionCall, 0),
		Literals:             make([]*Literal, 0),
		LambdaParams:         make([]*LambdaParam, 0),
	}
}

// Reset clears all collected nodes
func (cv *CollectorVisitor) Reset() {
	cv.Identifiers = cv.Identifiers[:0]
	cv.QualifiedIdentifiers = cv.QualifiedIdentifiers[:0]
	cv.FunctionCalls = cv.FunctionCalls[:0]
	cv.Literals = cv.Literals[:0]
	cv.LambdaParams = cv.LambdaParams[:0]
}

func (cv *CollectorVisitor) VisitIdentifier(ident *Identifier) interface{} {
	cv.Identifiers = append(cv.Identifiers, ident)
	return cv.BaseVisitor.VisitIdentifier(ident)
}

func (cv *CollectorVisitor) VisitQualifiedIdentifier(ident *QualifiedIdentifier) interface{} {
	cv.QualifiedIdentifiers = append(cv.QualifiedIdentifiers, ident)
	return cv.BaseVisitor.VisitQualifiedIdentifier(ident)
}

func (cv *CollectorVisitor) VisitFunctionCall(call *FunctionCall) interface{} {
	cv.FunctionCalls = append(cv.FunctionCalls, call)
	return cv.BaseVisitor.VisitFunctionCall(call)
}

func (cv *CollectorVisitor) VisitLiteral(lit *Literal) interface{} {
	cv.Literals = append(cv.Literals, lit)
	return cv.BaseVisitor.VisitLiteral(lit)
}

func (cv *CollectorVisitor) VisitLambdaParam(param *LambdaParam) interface{} {
	cv.LambdaParams = append(cv.LambdaParams, param)
	return cv.BaseVisitor.VisitLambdaParam(param)
}

// Utility functions for working with visitors

// ValidateAST validates an AST node and returns any validation errors
func ValidateAST(node Node) []error {
	visitor := NewValidationVisitor()
	node.Accept(visitor)
	return visitor.Errors()
}

// ASTToTree converts an AST node to an indented tree representation
func ASTToTree(node Node) string {
	visitor := NewTreeVisitor()
	node.Accept(visitor)
	return visitor.String()
}

// CollectNodes collects specific types of nodes from an AST
func CollectNodes(node Node) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	node.Accept(visitor)
	return visitor
}
