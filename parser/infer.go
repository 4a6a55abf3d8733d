// File: infer.go
// Title: Lambda Parameter Inference
// Description: Computes the ordered parameter list of a lambda expression
//              from the lambda-parameter references found in its body.
// Author: The Rata Team
// Version: v0.2.0
// Created: 2026-02-17
// Modified: 2026-02-24
//
// Change History:
// - 2026-02-17 v0.1.0: Initial inference walk
// - 2026-02-24 v0.2.0: Deduplicate inferred names by first occurrence

package parser

import (
	"github.com/rata-lang/rata/ast"
)

// inferLambdaParams computes the parameter list of a lambda body in source
// order. The walk covers binary operations, function calls, and
// if-expressions; any other node kind contributes no names, so parameters
// referenced only inside nested collection literals are not discovered.
// Repeated references collapse to the first occurrence.
func inferLambdaParams(body ast.Expr) []string {
	names := collectLambdaParams(body, nil)

	seen := make(map[string]bool, len(names))
	params := make([]string, 0, len(names))
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			params = append(params, name)
		}
	}
	return params
}

func collectLambdaParams(expr ast.Expr, names []string) []string {
	switch e := expr.(type) {
	case *ast.LambdaParam:
		names = append(names, e.Name)
	case *ast.BinaryOp:
		names = collectLambdaParams(e.Left, names)
		names = collectLambdaParams(e.Right, names)
	case *ast.FunctionCall:
		names = collectLambdaParams(e.Function, names)
		for _, arg := range e.Args {
			names = collectLambdaParams(arg, names)
		}
	case *ast.If:
		names = collectLambdaParams(e.Condition, names)
		for _, stmt := range e.Then {
			names = collectStatementLambdaParams(stmt, names)
		}
		for _, stmt := range e.Else {
			names = collectStatementLambdaParams(stmt, names)
		}
	}
	return names
}

func collectStatementLambdaParams(stmt ast.Stmt, names []string) []string {
	switch s := stmt.(type) {
	case *ast.Assignment:
		names = collectLambdaParams(s.Value, names)
	case *ast.Return:
		names = collectLambdaParams(s.Value, names)
	case *ast.AssertStatement:
		names = collectLambdaParams(s.Condition, names)
	case *ast.ExpressionStatement:
		names = collectLambdaParams(s.Expression, names)
	}
	return names
}
