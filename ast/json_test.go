// File: json_test.go
// Title: Rata AST JSON Encoding Unit Tests
// Description: Unit tests for the AST JSON encoding covering node kinds,
//              field ordering, optional field omission, and error paths.
// Author: The Rata Team
// Version: v0.1.0
// Created: 2026-03-05
// Modified: 2026-03-05
//
// Change History:
// - 2026-03-05 v0.1.0: Initial JSON encoding tests

package ast

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMarshal_CompactLiteral(t *testing.T) {
	data, err := Marshal(intLit(42))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := `{"kind":"literal","type":"int","raw":"42","value":42,"pos":{"line":0,"column":0,"offset":0}}`
	if string(data) != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, string(data))
	}
}

func TestMarshal_NodeKinds(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		contains []string
	}{
		{
			name:     "String literal",
			node:     strLit("hi"),
			contains: []string{`"kind":"literal"`, `"type":"string"`, `"value":"hi"`},
		},
		{
			name:     "Float literal",
			node:     floatLit("3.14", 3.14),
			contains: []string{`"type":"float"`, `"raw":"3.14"`, `"value":3.14`},
		},
		{
			name:     "Symbol",
			node:     &Symbol{Name: "mean"},
			contains: []string{`"kind":"symbol"`, `"name":"mean"`},
		},
		{
			name:     "Identifier",
			node:     ident("x"),
			contains: []string{`"kind":"identifier"`, `"name":"x"`},
		},
		{
			name:     "Qualified identifier",
			node:     &QualifiedIdentifier{Module: "Math", Name: "sqrt"},
			contains: []string{`"kind":"qualified_identifier"`, `"module":"Math"`, `"name":"sqrt"`},
		},
		{
			name:     "Module reference",
			node:     &ModuleRef{},
			contains: []string{`"kind":"module_ref"`},
		},
		{
			name:     "Tuple",
			node:     &Tuple{Elements: []Expr{intLit(1)}},
			contains: []string{`"kind":"tuple"`, `"elements":[`},
		},
		{
			name:     "Empty tuple keeps elements array",
			node:     &Tuple{},
			contains: []string{`"kind":"tuple"`, `"elements":[]`},
		},
		{
			name:     "Vector",
			node:     &Vector{Elements: []Expr{intLit(1)}},
			contains: []string{`"kind":"vector"`},
		},
		{
			name:     "Set",
			node:     &Set{Elements: []Expr{intLit(1)}},
			contains: []string{`"kind":"set"`},
		},
		{
			name: "Map",
			node: &Map{Pairs: []MapPair{{Key: ident("x"), Value: intLit(1)}}},
			contains: []string{
				`"kind":"map"`,
				`"pairs":[{"key":`,
				`"value":`,
			},
		},
		{
			name:     "Range",
			node:     &Range{Start: intLit(1), End: intLit(10)},
			contains: []string{`"kind":"range"`, `"start":`, `"end":`},
		},
		{
			name:     "Function call",
			node:     &FunctionCall{Function: ident("f"), Args: []Expr{intLit(1)}},
			contains: []string{`"kind":"call"`, `"function":`, `"args":[`},
		},
		{
			name: "Binary operation",
			node: &BinaryOp{Left: intLit(1), Operator: "|>", Right: intLit(2)},
			// encoding/json escapes '>' in string values.
			contains: []string{`"kind":"binary_op"`, `"operator":"|>"`},
		},
		{
			name:     "Lambda",
			node:     createLambdaExpression(),
			contains: []string{`"kind":"lambda"`, `"params":["x","y"]`, `"kind":"lambda_param"`},
		},
		{
			name:     "Interpolated string",
			node:     createInterpolatedExpression(),
			contains: []string{`"kind":"interpolated_string"`, `"parts":[`},
		},
		{
			name:     "Assignment",
			node:     &Assignment{Name: "x", Value: intLit(1)},
			contains: []string{`"kind":"assignment"`, `"name":"x"`},
		},
		{
			name:     "Return",
			node:     &Return{Value: intLit(1)},
			contains: []string{`"kind":"return"`},
		},
		{
			name:     "Assert",
			node:     &AssertStatement{Condition: ident("ok")},
			contains: []string{`"kind":"assert"`, `"condition":`},
		},
		{
			name:     "Expression statement",
			node:     exprStmt(intLit(1)),
			contains: []string{`"kind":"expression_statement"`, `"expression":`},
		},
		{
			name: "Function definition",
			node: &FunctionDef{
				Name:   "double",
				Params: []*Parameter{{Name: "n", Type: "int"}},
				Body:   []Stmt{&Return{Value: ident("n")}},
			},
			contains: []string{
				`"kind":"function_def"`,
				`"kind":"parameter"`,
				`"type":"int"`,
			},
		},
		{
			name: "Function expression",
			node: &Function{Params: []*Parameter{{Name: "x"}}, Body: []Stmt{exprStmt(ident("x"))}},
			contains: []string{
				`"kind":"function"`,
				`"params":[`,
				`"body":[`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Marshal(tt.node)
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if !json.Valid(data) {
				t.Fatalf("Expected valid JSON, got: %s", string(data))
			}

			result := string(data)
			for _, expected := range tt.contains {
				if !strings.Contains(result, expected) {
					t.Errorf("Expected result to contain '%s', got:\n%s", expected, result)
				}
			}
		})
	}
}

func TestMarshal_OptionalFieldOmission(t *testing.T) {
	// Import without alias
	data, err := Marshal(&LibraryImport{ModuleName: "Math"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if strings.Contains(string(data), "alias") {
		t.Errorf("Expected alias to be omitted, got: %s", string(data))
	}

	// Import with alias
	data, err = Marshal(&LibraryImport{ModuleName: "Math", Alias: "m"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !strings.Contains(string(data), `"alias":"m"`) {
		t.Errorf("Expected alias field, got: %s", string(data))
	}

	// If without else
	data, err = Marshal(&If{Condition: ident("c"), Then: []Stmt{exprStmt(intLit(1))}})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if strings.Contains(string(data), `"else"`) {
		t.Errorf("Expected else to be omitted, got: %s", string(data))
	}

	// Untyped parameter
	data, err = Marshal(&Parameter{Name: "x"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if strings.Contains(string(data), `"type"`) {
		t.Errorf("Expected type to be omitted, got: %s", string(data))
	}
}

func TestMarshal_Module(t *testing.T) {
	data, err := Marshal(createTestModule())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Expected decodable JSON, got: %v", err)
	}

	if decoded["kind"] != "module" {
		t.Errorf("Expected kind 'module', got '%v'", decoded["kind"])
	}
	if decoded["name"] != "Pipeline" {
		t.Errorf("Expected name 'Pipeline', got '%v'", decoded["name"])
	}

	imports, ok := decoded["imports"].([]interface{})
	if !ok || len(imports) != 1 {
		t.Fatalf("Expected 1 import, got %v", decoded["imports"])
	}
	body, ok := decoded["body"].([]interface{})
	if !ok || len(body) != 3 {
		t.Fatalf("Expected 3 body statements, got %v", decoded["body"])
	}
}

func TestMarshalIndent(t *testing.T) {
	data, err := MarshalIndent(createTestModule())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !json.Valid(data) {
		t.Fatalf("Expected valid JSON, got: %s", string(data))
	}

	result := string(data)
	if !strings.HasPrefix(result, "{\n  \"kind\": \"module\"") {
		t.Errorf("Expected indented output opening with the kind field, got:\n%.80s", result)
	}
}

type unsupportedNode struct{}

func (n *unsupportedNode) String() string                    { return "" }
func (n *unsupportedNode) Accept(visitor Visitor) interface{} { return nil }
func (n *unsupportedNode) Position() Position                { return Position{} }
func (n *unsupportedNode) Validate() error                   { return nil }

func TestMarshal_UnsupportedNode(t *testing.T) {
	if _, err := Marshal(&unsupportedNode{}); err == nil {
		t.Error("Expected error for unsupported node type")
	}
}

func BenchmarkMarshal_Module(b *testing.B) {
	module := createTestModule()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Marshal(module); err != nil {
			b.Fatal(err)
		}
	}
}
