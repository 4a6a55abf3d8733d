// File: json.go
// Title: Rata AST JSON Encoding
// Description: Encodes AST nodes into a stable JSON form for the CLI,
//              the playground service, and external tooling. Encoding
//              is one-way; consumers rebuild their own structures.
// Author: The Rata Team
// Version: v0.1.0
// Created: 2026-03-05
// Modified: 2026-03-05
//
// Change History:
// - 2026-03-05 v0.1.0: Initial JSON encoding for all node types

package ast

import (
	"encoding/json"
	"fmt"
)

// Marshal encodes a node as compact JSON
func Marshal(node Node) ([]byte, error) {
	value, err := nodeToJSON(node)
	if err != nil {
		return nil, err
	}
	return json.Marshal(value)
}

// MarshalIndent encodes a node as indented JSON
func MarshalIndent(node Node) ([]byte, error) {
	value, err := nodeToJSON(node)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(value, "", "  ")
}

type jsonPos struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

type jsonModule struct {
	Kind    string        `json:"kind"`
	Name    string        `json:"name"`
	Imports []interface{} `json:"imports"`
	Body    []interface{} `json:"body"`
	Pos     jsonPos       `json:"pos"`
}

type jsonLibraryImport struct {
	Kind   string  `json:"kind"`
	Module string  `json:"module"`
	Alias  string  `json:"alias,omitempty"`
	Pos    jsonPos `json:"pos"`
}

type jsonAssignment struct {
	Kind  string      `json:"kind"`
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
	Pos   jsonPos     `json:"pos"`
}

type jsonFunctionDef struct {
	Kind   string        `json:"kind"`
	Name   string        `json:"name"`
	Params []interface{} `json:"params"`
	Body   []interface{} `json:"body"`
	Pos    jsonPos       `json:"pos"`
}

type jsonFunction struct {
	Kind   string        `json:"kind"`
	Params []interface{} `json:"params"`
	Body   []interface{} `json:"body"`
	Pos    jsonPos       `json:"pos"`
}

type jsonReturn struct {
	Kind  string      `json:"kind"`
	Value interface{} `json:"value"`
	Pos   jsonPos     `json:"pos"`
}

type jsonAssert struct {
	Kind      string      `json:"kind"`
	Condition interface{} `json:"condition"`
	Pos       jsonPos     `json:"pos"`
}

type jsonExpressionStatement struct {
	Kind       string      `json:"kind"`
	Expression interface{} `json:"expression"`
	Pos        jsonPos     `json:"pos"`
}

type jsonLiteral struct {
	Kind  string      `json:"kind"`
	Type  string      `json:"type"`
	Raw   string      `json:"raw"`
	Value interface{} `json:"value"`
	Pos   jsonPos     `json:"pos"`
}

type jsonSymbol struct {
	Kind string  `json:"kind"`
	Name string  `json:"name"`
	Pos  jsonPos `json:"pos"`
}

type jsonIdentifier struct {
	Kind string  `json:"kind"`
	Name string  `json:"name"`
	Pos  jsonPos `json:"pos"`
}

type jsonQualifiedIdentifier struct {
	Kind   string  `json:"kind"`
	Module string  `json:"module"`
	Name   string  `json:"name"`
	Pos    jsonPos `json:"pos"`
}

type jsonModuleRef struct {
	Kind string  `json:"kind"`
	Pos  jsonPos `json:"pos"`
}

type jsonCollection struct {
	Kind     string        `json:"kind"`
	Elements []interface{} `json:"elements"`
	Pos      jsonPos       `json:"pos"`
}

type jsonMapPair struct {
	Key   interface{} `json:"key"`
	Value interface{} `json:"value"`
}

type jsonMap struct {
	Kind  string        `json:"kind"`
	Pairs []jsonMapPair `json:"pairs"`
	Pos   jsonPos       `json:"pos"`
}

type jsonRange struct {
	Kind  string      `json:"kind"`
	Start interface{} `json:"start"`
	End   interface{} `json:"end"`
	Pos   jsonPos     `json:"pos"`
}

type jsonFunctionCall struct {
	Kind     string        `json:"kind"`
	Function interface{}   `json:"function"`
	Args     []interface{} `json:"args"`
	Pos      jsonPos       `json:"pos"`
}

type jsonBinaryOp struct {
	Kind     string      `json:"kind"`
	Operator string      `json:"operator"`
	Left     interface{} `json:"left"`
	Right    interface{} `json:"right"`
	Pos      jsonPos     `json:"pos"`
}

type jsonIf struct {
	Kind      string        `json:"kind"`
	Condition interface{}   `json:"condition"`
	Then      []interface{} `json:"then"`
	Else      []interface{} `json:"else,omitempty"`
	Pos       jsonPos       `json:"pos"`
}

type jsonLambda struct {
	Kind   string      `json:"kind"`
	Params []string    `json:"params"`
	Body   interface{} `json:"body"`
	Pos    jsonPos     `json:"pos"`
}

type jsonLambdaParam struct {
	Kind string  `json:"kind"`
	Name string  `json:"name"`
	Pos  jsonPos `json:"pos"`
}

type jsonInterpolatedString struct {
	Kind  string        `json:"kind"`
	Parts []interface{} `json:"parts"`
	Pos   jsonPos       `json:"pos"`
}

type jsonParameter struct {
	Kind string  `json:"kind"`
	Name string  `json:"name"`
	Type string  `json:"type,omitempty"`
	Pos  jsonPos `json:"pos"`
}

func posToJSON(pos Position) jsonPos {
	return jsonPos{Line: pos.Line, Column: pos.Column, Offset: pos.Offset}
}

func exprsToJSON(exprs []Expr) ([]interface{}, error) {
	result := make([]interface{}, len(exprs))
	for i, expr := range exprs {
		value, err := nodeToJSON(expr)
		if err != nil {
			return nil, err
		}
		result[i] = value
	}
	return result, nil
}

func stmtsToJSON(stmts []Stmt) ([]interface{}, error) {
	result := make([]interface{}, len(stmts))
	for i, stmt := range stmts {
		value, err := nodeToJSON(stmt)
		if err != nil {
			return nil, err
		}
		result[i] = value
	}
	return result, nil
}

func paramsToJSON(params []*Parameter) ([]interface{}, error) {
	result := make([]interface{}, len(params))
	for i, param := range params {
		value, err := nodeToJSON(param)
		if err != nil {
			return nil, err
		}
		result[i] = value
	}
	return result, nil
}

func nodeToJSON(node Node) (interface{}, error) {
	switch n := node.(type) {
	case *Module:
		imports := make([]interface{}, len(n.Imports))
		for i, imp := range n.Imports {
			value, err := nodeToJSON(imp)
			if err != nil {
				return nil, err
			}
			imports[i] = value
		}
		body, err := stmtsToJSON(n.Body)
		if err != nil {
			return nil, err
		}
		return jsonModule{Kind: "module", Name: n.Name, Imports: imports, Body: body, Pos: posToJSON(n.Pos)}, nil

	case *LibraryImport:
		return jsonLibraryImport{Kind: "library_import", Module: n.ModuleName, Alias: n.Alias, Pos: posToJSON(n.Pos)}, nil

	case *Assignment:
		value, err := nodeToJSON(n.Value)
		if err != nil {
			return nil, err
		}
		return jsonAssignment{Kind: "assignment", Name: n.Name, Value: value, Pos: posToJSON(n.Pos)}, nil

	case *FunctionDef:
		params, err := paramsToJSON(n.Params)
		if err != nil {
			return nil, err
		}
		body, err := stmtsToJSON(n.Body)
		if err != nil {
			return nil, err
		}
		return jsonFunctionDef{Kind: "function_def", Name: n.Name, Params: params, Body: body, Pos: posToJSON(n.Pos)}, nil

	case *Function:
		params, err := paramsToJSON(n.Params)
		if err != nil {
			return nil, err
		}
		body, err := stmtsToJSON(n.Body)
		if err != nil {
			return nil, err
		}
		return jsonFunction{Kind: "function", Params: params, Body: body, Pos: posToJSON(n.Pos)}, nil

	case *Return:
		value, err := nodeToJSON(n.Value)
		if err != nil {
			return nil, err
		}
		return jsonReturn{Kind: "return", Value: value, Pos: posToJSON(n.Pos)}, nil

	case *AssertStatement:
		condition, err := nodeToJSON(n.Condition)
		if err != nil {
			return nil, err
		}
		return jsonAssert{Kind: "assert", Condition: condition, Pos: posToJSON(n.Pos)}, nil

	case *ExpressionStatement:
		expression, err := nodeToJSON(n.Expression)
		if err != nil {
			return nil, err
		}
		return jsonExpressionStatement{Kind: "expression_statement", Expression: expression, Pos: posToJSON(n.Pos)}, nil

	case *Literal:
		return jsonLiteral{Kind: "literal", Type: n.Kind.String(), Raw: n.Raw, Value: n.Value, Pos: posToJSON(n.Pos)}, nil

	case *Symbol:
		return jsonSymbol{Kind: "symbol", Name: n.Name, Pos: posToJSON(n.Pos)}, nil

	case *Identifier:
		return jsonIdentifier{Kind: "identifier", Name: n.Name, Pos: posToJSON(n.Pos)}, nil

	case *QualifiedIdentifier:
		return jsonQualifiedIdentifier{Kind: "qualified_identifier", Module: n.Module, Name: n.Name, Pos: posToJSON(n.Pos)}, nil

	case *ModuleRef:
		return jsonModuleRef{Kind: "module_ref", Pos: posToJSON(n.Pos)}, nil

	case *Tuple:
		elements, err := exprsToJSON(n.Elements)
		if err != nil {
			return nil, err
		}
		return jsonCollection{Kind: "tuple", Elements: elements, Pos: posToJSON(n.Pos)}, nil

	case *Vector:
		elements, err := exprsToJSON(n.Elements)
		if err != nil {
			return nil, err
		}
		return jsonCollection{Kind: "vector", Elements: elements, Pos: posToJSON(n.Pos)}, nil

	case *Set:
		elements, err := exprsToJSON(n.Elements)
		if err != nil {
			return nil, err
		}
		return jsonCollection{Kind: "set", Elements: elements, Pos: posToJSON(n.Pos)}, nil

	case *Map:
		pairs := make([]jsonMapPair, len(n.Pairs))
		for i, pair := range n.Pairs {
			key, err := nodeToJSON(pair.Key)
			if err != nil {
				return nil, err
			}
			value, err := nodeToJSON(pair.Value)
			if err != nil {
				return nil, err
			}
			pairs[i] = jsonMapPair{Key: key, Value: value}
		}
		return jsonMap{Kind: "map", Pairs: pairs, Pos: posToJSON(n.Pos)}, nil

	case *Range:
		start, err := nodeToJSON(n.Start)
		if err != nil {
			return nil, err
		}
		end, err := nodeToJSON(n.End)
		if err != nil {
			return nil, err
		}
		return jsonRange{Kind: "range", Start: start, End: end, Pos: posToJSON(n.Pos)}, nil

	case *FunctionCall:
		function, err := nodeToJSON(n.Function)
		if err != nil {
			return nil, err
		}
		args, err := exprsToJSON(n.Args)
		if err != nil {
			return nil, err
		}
		return jsonFunctionCall{Kind: "call", Function: function, Args: args, Pos: posToJSON(n.Pos)}, nil

	case *BinaryOp:
		left, err := nodeToJSON(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := nodeToJSON(n.Right)
		if err != nil {
			return nil, err
		}
		return jsonBinaryOp{Kind: "binary_op", Operator: n.Operator, Left: left, Right: right, Pos: posToJSON(n.Pos)}, nil

	case *If:
		condition, err := nodeToJSON(n.Condition)
		if err != nil {
			return nil, err
		}
		then, err := stmtsToJSON(n.Then)
		if err != nil {
			return nil, err
		}
		var elseStmts []interface{}
		if n.Else != nil {
			elseStmts, err = stmtsToJSON(n.Else)
			if err != nil {
				return nil, err
			}
		}
		return jsonIf{Kind: "if", Condition: condition, Then: then, Else: elseStmts, Pos: posToJSON(n.Pos)}, nil

	case *Lambda:
		body, err := nodeToJSON(n.Body)
		if err != nil {
			return nil, err
		}
		params := n.Params
		if params == nil {
			params = []string{}
		}
		return jsonLambda{Kind: "lambda", Params: params, Body: body, Pos: posToJSON(n.Pos)}, nil

	case *LambdaParam:
		return jsonLambdaParam{Kind: "lambda_param", Name: n.Name, Pos: posToJSON(n.Pos)}, nil

	case *InterpolatedString:
		parts, err := exprsToJSON(n.Parts)
		if err != nil {
			return nil, err
		}
		return jsonInterpolatedString{Kind: "interpolated_string", Parts: parts, Pos: posToJSON(n.Pos)}, nil

	case *Parameter:
		return jsonParameter{Kind: "parameter", Name: n.Name, Type: n.Type, Pos: posToJSON(n.Pos)}, nil

	default:
		return nil, fmt.Errorf("unsupported node type %T", node)
	}
}
