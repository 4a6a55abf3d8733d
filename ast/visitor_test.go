// File: visitor_test.go
// Title: Rata AST Visitor Pattern Unit Tests
// Description: Unit tests for the Rata AST visitor pattern including base
//              visitor traversal, tree rendering, validation error
//              collection, node collection, and utility functions.
// Author: The Rata Team
// Version: v0.3.0
// Created: 2026-02-17
// Modified: 2026-03-02
//
// Change History:
// - 2026-02-17 v0.1.0: Initial visitor test suite
// - 2026-02-24 v0.2.0: Collection and interpolation traversal coverage
// - 2026-03-02 v0.3.0: Tree visitor coverage

package ast

import (
	"strings"
	"testing"
)

// Helper functions for creating test AST fixtures

func createTestModule() *Module {
	return &Module{
		Name: "Pipeline",
		Imports: []*LibraryImport{
			{ModuleName: "Math", Alias: "m", Pos: Position{Line: 1, Column: 1}},
		},
		Body: []Stmt{
			&Assignment{
				Name:  "x",
				Value: intLit(1),
				Pos:   Position{Line: 3, Column: 1},
			},
			&FunctionDef{
				Name:   "double",
				Params: []*Parameter{{Name: "n", Type: "int", Pos: Position{Line: 5, Column: 17}}},
				Body: []Stmt{
					&Return{
						Value: &BinaryOp{Left: ident("n"), Operator: "*", Right: intLit(2)},
						Pos:   Position{Line: 6, Column: 3},
					},
				},
				Pos: Position{Line: 5, Column: 1},
			},
			&AssertStatement{
				Condition: &BinaryOp{
					Left:     &FunctionCall{Function: ident("double"), Args: []Expr{intLit(2)}},
					Operator: "==",
					Right:    intLit(4),
				},
				Pos: Position{Line: 8, Column: 1},
			},
		},
		Pos: Position{Line: 2, Column: 1},
	}
}

func createPipelineExpression() Expr {
	return &BinaryOp{
		Left: &BinaryOp{
			Left:     ident("data"),
			Operator: "|>",
			Right:    &FunctionCall{Function: ident("clean")},
		},
		Operator: "|>",
		Right: &FunctionCall{
			Function: &QualifiedIdentifier{Module: "Stats", Name: "summarize"},
			Args:     []Expr{&Symbol{Name: "mean"}},
		},
	}
}

func createLambdaExpression() *Lambda {
	return &Lambda{
		Params: []string{"x", "y"},
		Body: &BinaryOp{
			Left:     &LambdaParam{Name: "x"},
			Operator: "+",
			Right:    &LambdaParam{Name: "y"},
		},
	}
}

func createInterpolatedExpression() *InterpolatedString {
	return &InterpolatedString{
		Parts: []Expr{
			strLit("sum: "),
			&BinaryOp{Left: ident("a"), Operator: "+", Right: ident("b")},
		},
	}
}

func createCollectionExpression() Expr {
	return &Map{
		Pairs: []MapPair{
			{Key: ident("values"), Value: &Vector{Elements: []Expr{intLit(1), intLit(2)}}},
			{Key: ident("tags"), Value: &Set{Elements: []Expr{&Symbol{Name: "raw"}}}},
			{Key: ident("window"), Value: &Range{Start: intLit(1), End: intLit(10)}},
		},
	}
}

// Test cases for BaseVisitor

func TestBaseVisitor_VisitModule(t *testing.T) {
	visitor := &BaseVisitor{}

	tests := []struct {
		name   string
		module *Module
	}{
		{"Full module", createTestModule()},
		{"Empty module", &Module{Name: "Empty"}},
		{"Imports only", &Module{Name: "M", Imports: []*LibraryImport{{ModuleName: "Math"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := visitor.VisitModule(tt.module)
			if result != nil {
				t.Errorf("Expected nil result, got %v", result)
			}
		})
	}
}

func TestBaseVisitor_VisitAllExpressionTypes(t *testing.T) {
	visitor := &BaseVisitor{}

	tests := []struct {
		name string
		expr Expr
	}{
		{"Literal", intLit(42)},
		{"Symbol", &Symbol{Name: "ok"}},
		{"Identifier", ident("x")},
		{"Qualified identifier", &QualifiedIdentifier{Module: "Math", Name: "pi"}},
		{"Module reference", &ModuleRef{}},
		{"Tuple", &Tuple{Elements: []Expr{intLit(1), intLit(2)}}},
		{"Vector", &Vector{Elements: []Expr{intLit(1)}}},
		{"Set", &Set{Elements: []Expr{intLit(1)}}},
		{"Map", createCollectionExpression()},
		{"Range", &Range{Start: intLit(1), End: intLit(10)}},
		{"Function call", &FunctionCall{Function: ident("f"), Args: []Expr{intLit(1)}}},
		{"Binary operation", &BinaryOp{Left: intLit(1), Operator: "+", Right: intLit(2)}},
		{"Pipeline", createPipelineExpression()},
		{"If expression", &If{Condition: ident("c"), Then: []Stmt{exprStmt(intLit(1))}, Else: []Stmt{exprStmt(intLit(2))}}},
		{"Function expression", &Function{Params: []*Parameter{{Name: "x"}}, Body: []Stmt{exprStmt(ident("x"))}}},
		{"Lambda", createLambdaExpression()},
		{"Lambda parameter", &LambdaParam{Name: "x"}},
		{"Interpolated string", createInterpolatedExpression()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.expr.Accept(visitor)
			if result != nil {
				t.Errorf("Expected nil result, got %v", result)
			}
		})
	}
}

func TestBaseVisitor_VisitAllStatementTypes(t *testing.T) {
	visitor := &BaseVisitor{}

	tests := []struct {
		name string
		stmt Stmt
	}{
		{"Library import", &LibraryImport{ModuleName: "Math"}},
		{"Assignment", &Assignment{Name: "x", Value: intLit(1)}},
		{"Function definition", &FunctionDef{Name: "f", Body: []Stmt{&Return{Value: intLit(1)}}}},
		{"Return", &Return{Value: intLit(1)}},
		{"Assert", &AssertStatement{Condition: ident("ok")}},
		{"Expression statement", exprStmt(intLit(1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.stmt.Accept(visitor)
			if result != nil {
				t.Errorf("Expected nil result, got %v", result)
			}
		})
	}
}

// Test cases for TreeVisitor

func TestTreeVisitor_Module(t *testing.T) {
	visitor := NewTreeVisitor()
	createTestModule().Accept(visitor)
	result := visitor.String()

	contains := []string{
		"Module: Pipeline",
		"Import: Math as m",
		"Assignment: x",
		"Literal: int(1)",
		"FunctionDef: double(n: int)",
		"Return:",
		"BinaryOp: *",
		"Assert:",
		"BinaryOp: ==",
		"FunctionCall:",
		"Identifier: double",
	}

	for _, expected := range contains {
		if !strings.Contains(result, expected) {
			t.Errorf("Expected result to contain '%s', got:\n%s", expected, result)
		}
	}
}

func TestTreeVisitor_ExpressionShapes(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{
			name: "Binary operation",
			node: &BinaryOp{Left: intLit(1), Operator: "+", Right: intLit(2)},
			expected: "BinaryOp: +\n" +
				"  Literal: int(1)\n" +
				"  Literal: int(2)\n",
		},
		{
			name: "Range",
			node: &Range{Start: intLit(1), End: intLit(10)},
			expected: "Range:\n" +
				"  Literal: int(1)\n" +
				"  Literal: int(10)\n",
		},
		{
			name: "Function call",
			node: &FunctionCall{Function: ident("f"), Args: []Expr{intLit(1)}},
			expected: "FunctionCall:\n" +
				"  Function:\n" +
				"    Identifier: f\n" +
				"  Args:\n" +
				"    Literal: int(1)\n",
		},
		{
			name: "Call without arguments",
			node: &FunctionCall{Function: ident("now")},
			expected: "FunctionCall:\n" +
				"  Function:\n" +
				"    Identifier: now\n",
		},
		{
			name: "Lambda",
			node: createLambdaExpression(),
			expected: "Lambda: (x, y)\n" +
				"  BinaryOp: +\n" +
				"    LambdaParam: .x\n" +
				"    LambdaParam: .y\n",
		},
		{
			name: "Map entries",
			node: &Map{Pairs: []MapPair{{Key: &Symbol{Name: "mode"}, Value: strLit("fast")}}},
			expected: "Map:\n" +
				"  Entry:\n" +
				"    Symbol: :mode\n" +
				"    Literal: string(\"fast\")\n",
		},
		{
			name: "If with else",
			node: &If{
				Condition: ident("c"),
				Then:      []Stmt{exprStmt(intLit(1))},
				Else:      []Stmt{exprStmt(intLit(2))},
			},
			expected: "If:\n" +
				"  Condition:\n" +
				"    Identifier: c\n" +
				"  Then:\n" +
				"    Literal: int(1)\n" +
				"  Else:\n" +
				"    Literal: int(2)\n",
		},
		{
			name: "Interpolated string",
			node: createInterpolatedExpression(),
			expected: "InterpolatedString:\n" +
				"  Literal: string(\"sum: \")\n" +
				"  BinaryOp: +\n" +
				"    Identifier: a\n" +
				"    Identifier: b\n",
		},
		{
			name:     "Module reference",
			node:     &ModuleRef{},
			expected: "ModuleRef: __module__\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ASTToTree(tt.node); got != tt.expected {
				t.Errorf("Expected:\n%s\nGot:\n%s", tt.expected, got)
			}
		})
	}
}

func TestTreeVisitor_PipelineShape(t *testing.T) {
	result := ASTToTree(createPipelineExpression())

	if strings.Count(result, "BinaryOp: |>") != 2 {
		t.Errorf("Expected two pipe nodes in tree, got:\n%s", result)
	}
	if !strings.Contains(result, "QualifiedIdentifier: Stats.summarize") {
		t.Errorf("Expected qualified callee in tree, got:\n%s", result)
	}
	if !strings.Contains(result, "Symbol: :mean") {
		t.Errorf("Expected symbol argument in tree, got:\n%s", result)
	}
}

func TestTreeVisitor_Reset(t *testing.T) {
	visitor := NewTreeVisitor()
	module := createTestModule()

	module.Accept(visitor)
	result1 := visitor.String()

	if result1 == "" {
		t.Error("Expected non-empty string after first visit")
	}

	visitor.Reset()
	module.Accept(visitor)
	result2 := visitor.String()

	if result1 != result2 {
		t.Errorf("Expected same result after reset, got different strings:\nFirst:\n%s\nSecond:\n%s", result1, result2)
	}
}

// Test cases for ValidationVisitor

func TestValidationVisitor_ValidNodes(t *testing.T) {
	visitor := NewValidationVisitor()

	tests := []struct {
		name string
		node Node
	}{
		{"Full module", createTestModule()},
		{"Pipeline expression", createPipelineExpression()},
		{"Lambda", createLambdaExpression()},
		{"Interpolated string", createInterpolatedExpression()},
		{"Collections", createCollectionExpression()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visitor.Reset()
			tt.node.Accept(visitor)

			if visitor.HasErrors() {
				t.Errorf("Expected no validation errors for valid node, got: %v", visitor.Errors())
			}
		})
	}
}

func TestValidationVisitor_InvalidNodes(t *testing.T) {
	visitor := NewValidationVisitor()

	tests := []struct {
		name string
		node Node
	}{
		{"Blank identifier", ident("")},
		{"Binary op without left operand", &BinaryOp{Operator: "+", Right: intLit(1)}},
		{"Qualified identifier without module", &QualifiedIdentifier{Name: "sqrt"}},
		{"Symbol without name", &Symbol{}},
		{"Lambda parameter without name", &LambdaParam{}},
		{"Literal kind mismatch", &Literal{Kind: LiteralInt, Raw: "1", Value: "1"}},
		{"Module without name", &Module{Body: []Stmt{exprStmt(intLit(1))}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visitor.Reset()
			tt.node.Accept(visitor)

			if !visitor.HasErrors() {
				t.Error("Expected validation errors but got none")
			}
		})
	}
}

func TestValidationVisitor_ErrorCollection(t *testing.T) {
	visitor := NewValidationVisitor()

	// Two independent faults on different branches
	module := &Module{
		Name: "Broken",
		Body: []Stmt{
			&Assignment{Name: "x", Value: ident("")},
			&AssertStatement{Condition: &BinaryOp{Operator: "==", Right: intLit(1)}},
		},
	}

	module.Accept(visitor)

	if !visitor.HasErrors() {
		t.Fatal("Expected validation errors for broken module")
	}
	if len(visitor.Errors()) < 2 {
		t.Errorf("Expected at least 2 validation errors, got %d: %v", len(visitor.Errors()), visitor.Errors())
	}
}

func TestValidationVisitor_Reset(t *testing.T) {
	visitor := NewValidationVisitor()

	ident("").Accept(visitor)
	if !visitor.HasErrors() {
		t.Fatal("Expected errors before reset")
	}

	visitor.Reset()
	if visitor.HasErrors() {
		t.Error("Expected no errors after reset")
	}
}

// Test cases for CollectorVisitor

func TestCollectorVisitor_CollectNodes(t *testing.T) {
	visitor := NewCollectorVisitor()
	module := createTestModule()

	module.Accept(visitor)

	// n (inside return) and double (callee); assignment names are plain strings
	if len(visitor.Identifiers) != 2 {
		t.Errorf("Expected 2 identifiers (n, double), got %d", len(visitor.Identifiers))
	}
	if len(visitor.FunctionCalls) != 1 {
		t.Errorf("Expected 1 function call, got %d", len(visitor.FunctionCalls))
	}
	// 1, 2, 2, 4
	if len(visitor.Literals) != 4 {
		t.Errorf("Expected 4 literals, got %d", len(visitor.Literals))
	}
}

func TestCollectorVisitor_PipelineExpression(t *testing.T) {
	visitor := NewCollectorVisitor()
	createPipelineExpression().Accept(visitor)

	if len(visitor.Identifiers) != 2 {
		t.Errorf("Expected 2 identifiers (data, clean), got %d", len(visitor.Identifiers))
	}
	if len(visitor.QualifiedIdentifiers) != 1 {
		t.Errorf("Expected 1 qualified identifier, got %d", len(visitor.QualifiedIdentifiers))
	}
	if len(visitor.FunctionCalls) != 2 {
		t.Errorf("Expected 2 function calls, got %d", len(visitor.FunctionCalls))
	}

	if len(visitor.QualifiedIdentifiers) > 0 {
		qi := visitor.QualifiedIdentifiers[0]
		if qi.Module != "Stats" || qi.Name != "summarize" {
			t.Errorf("Expected Stats.summarize, got %s.%s", qi.Module, qi.Name)
		}
	}
}

func TestCollectorVisitor_LambdaParams(t *testing.T) {
	visitor := NewCollectorVisitor()
	createLambdaExpression().Accept(visitor)

	if len(visitor.LambdaParams) != 2 {
		t.Errorf("Expected 2 lambda parameter references, got %d", len(visitor.LambdaParams))
	}
	if len(visitor.LambdaParams) == 2 {
		if visitor.LambdaParams[0].Name != "x" || visitor.LambdaParams[1].Name != "y" {
			t.Errorf("Expected parameters x and y in traversal order, got %s and %s",
				visitor.LambdaParams[0].Name, visitor.LambdaParams[1].Name)
		}
	}
}

func TestCollectorVisitor_Reset(t *testing.T) {
	visitor := NewCollectorVisitor()
	createTestModule().Accept(visitor)

	if len(visitor.Identifiers) == 0 && len(visitor.Literals) == 0 {
		t.Error("Expected to collect nodes before reset")
	}

	visitor.Reset()

	if len(visitor.Identifiers) != 0 || len(visitor.QualifiedIdentifiers) != 0 ||
		len(visitor.FunctionCalls) != 0 || len(visitor.Literals) != 0 ||
		len(visitor.LambdaParams) != 0 {
		t.Error("Expected all collections to be empty after reset")
	}
}

// Test cases for utility functions

func TestValidateAST(t *testing.T) {
	tests := []struct {
		name    string
		node    Node
		wantErr bool
	}{
		{"Valid module", createTestModule(), false},
		{"Valid expression", createPipelineExpression(), false},
		{
			name:    "Invalid module",
			node:    &Module{Name: "", Body: []Stmt{exprStmt(intLit(1))}},
			wantErr: true,
		},
		{
			name:    "Invalid expression",
			node:    &BinaryOp{Left: nil, Operator: "+", Right: intLit(1)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := ValidateAST(tt.node)

			hasErrors := len(errors) > 0
			if tt.wantErr && !hasErrors {
				t.Error("Expected validation errors but got none")
			}
			if !tt.wantErr && hasErrors {
				t.Errorf("Expected no validation errors but got: %v", errors)
			}
		})
	}
}

func TestASTToTree(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		contains []string
	}{
		{
			name: "Module",
			node: createTestModule(),
			contains: []string{
				"Module: Pipeline",
				"Import: Math as m",
				"FunctionDef: double(n: int)",
			},
		},
		{
			name: "Expression",
			node: &BinaryOp{Left: ident("x"), Operator: "==", Right: intLit(5)},
			contains: []string{
				"BinaryOp: ==",
				"Identifier: x",
				"Literal: int(5)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ASTToTree(tt.node)

			if result == "" {
				t.Error("Expected non-empty tree result")
			}

			for _, expected := range tt.contains {
				if !strings.Contains(result, expected) {
					t.Errorf("Expected result to contain '%s', got:\n%s", expected, result)
				}
			}
		})
	}
}

func TestCollectNodes(t *testing.T) {
	collector := CollectNodes(createTestModule())

	if len(collector.Literals) == 0 {
		t.Error("Expected collected literals")
	}
	if len(collector.FunctionCalls) == 0 {
		t.Error("Expected collected function calls")
	}

	t.Logf("CollectNodes utility: Identifiers=%d, Qualified=%d, Calls=%d, Literals=%d, LambdaParams=%d",
		len(collector.Identifiers), len(collector.QualifiedIdentifiers),
		len(collector.FunctionCalls), len(collector.Literals), len(collector.LambdaParams))
}

// Test cases for edge cases

func TestVisitor_OptionalPartsAbsent(t *testing.T) {
	visitors := []struct {
		name    string
		visitor Visitor
	}{
		{"BaseVisitor", &BaseVisitor{}},
		{"TreeVisitor", NewTreeVisitor()},
		{"ValidationVisitor", NewValidationVisitor()},
		{"CollectorVisitor", NewCollectorVisitor()},
	}

	nodes := []struct {
		name string
		node Node
	}{
		{"Module without imports or body", &Module{Name: "Empty"}},
		{"Import without alias", &LibraryImport{ModuleName: "Math"}},
		{"If without else", &If{Condition: ident("c"), Then: []Stmt{exprStmt(intLit(1))}}},
		{"Call without arguments", &FunctionCall{Function: ident("now")}},
		{"Empty tuple", &Tuple{}},
		{"Untyped parameter", &Parameter{Name: "x"}},
		{"Function without parameters", &Function{Body: []Stmt{exprStmt(intLit(1))}}},
	}

	for _, v := range visitors {
		for _, n := range nodes {
			t.Run(v.name+"/"+n.name, func(t *testing.T) {
				// Must traverse without panicking
				_ = n.node.Accept(v.visitor)
			})
		}
	}
}

// Benchmarks

func BenchmarkTreeVisitor_Module(b *testing.B) {
	module := createTestModule()
	visitor := NewTreeVisitor()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		visitor.Reset()
		module.Accept(visitor)
		_ = visitor.String()
	}
}

func BenchmarkValidationVisitor_Module(b *testing.B) {
	module := createTestModule()
	visitor := NewValidationVisitor()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		visitor.Reset()
		module.Accept(visitor)
		_ = visitor.HasErrors()
	}
}

func BenchmarkCollectorVisitor_Pipeline(b *testing.B) {
	expr := createPipelineExpression()
	visitor := NewCollectorVisitor()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		visitor.Reset()
		expr.Accept(visitor)
	}
}

func BenchmarkUtilityFunctions(b *testing.B) {
	module := createTestModule()

	b.Run("ValidateAST", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = ValidateAST(module)
		}
	})

	b.Run("ASTToTree", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = ASTToTree(module)
		}
	})

	b.Run("CollectNodes", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = CollectNodes(module)
		}
	})
}
