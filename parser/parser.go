// File: parser.go
// Title: Rata Parser Implementation
// Description: Recursive descent parser for Rata source text. Implements
//              precedence climbing over the expression grammar, the module
//              and REPL entry productions, and structured error reporting.
// Author: The Rata Team
// Version: v0.3.0
// Created: 2026-02-17
// Modified: 2026-03-02
//
// Change History:
// - 2026-02-17 v0.1.0: Initial recursive descent parser
// - 2026-02-24 v0.2.0: Ranges, sets, vectors, maps, interpolation, typed parameters
// - 2026-03-02 v0.3.0: Module self-reference, named function definitions, nesting depth guard

package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rata-lang/rata/ast"
	ratalog "github.com/rata-lang/rata/core/log"
)

// Default limits applied when Options fields are zero.
const (
	DefaultMaxInputLength = 1 << 20
	DefaultMaxDepth       = 256
)

// ParseError represents a grammar fault at a specific token.
type ParseError struct {
	Message  string
	Position int
	Line     int
	Column   int
	Token    Token
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Token.Type == TokenEOF {
		return fmt.Sprintf("parse error at line %d, column %d: %s (at end of input)", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse error at line %d, column %d: %s (near '%s')", e.Line, e.Column, e.Message, e.Token.Value)
}

// IsIncomplete reports whether err describes a parse that failed at the end
// of the input. Interactive callers use this to read a continuation line
// instead of reporting the error.
func IsIncomplete(err error) bool {
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		return false
	}
	return parseErr.Token.Type == TokenEOF
}

// deeperError picks the more specific of two alternative failures: the one
// that progressed further into the input. Ties keep the first alternative,
// preserving the deterministic grammar ordering.
func deeperError(first, second error) error {
	var a, b *ParseError
	if !errors.As(first, &a) || !errors.As(second, &b) {
		return first
	}
	if b.Position > a.Position {
		return second
	}
	return first
}

// Options configures parser construction.
type Options struct {
	// Logger receives debug and warning events. Defaults to the package
	// default logger.
	Logger *ratalog.Logger

	// MaxInputLength bounds accepted source size in bytes.
	MaxInputLength int

	// MaxDepth bounds expression nesting so adversarial input cannot
	// exhaust the stack.
	MaxDepth int
}

// Parser builds Rata ASTs from source text. A Parser carries configuration
// only; each parse call runs on its own state, so a single Parser is safe
// for concurrent use.
type Parser struct {
	logger  *ratalog.Logger
	options Options
}

// New creates a parser with the given options.
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = ratalog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.MaxInputLength < 0 {
		return nil, fmt.Errorf("max input length must be positive, got %d", opts.MaxInputLength)
	}
	if opts.MaxDepth < 0 {
		return nil, fmt.Errorf("max depth must be positive, got %d", opts.MaxDepth)
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "rata-parser"),
		options: opts,
	}, nil
}

// ParseModule parses a complete source unit into a module AST. The
// imports-prefixed grammar is tried first; only on failure does parsing
// fall back to the bare module grammar.
func (p *Parser) ParseModule(input string) (*ast.Module, error) {
	if len(input) > p.options.MaxInputLength {
		return nil, fmt.Errorf("input exceeds maximum length of %d bytes", p.options.MaxInputLength)
	}

	p.logger.Debug("Starting module parse", ratalog.Fields{
		"input_length": len(input),
	})

	tokens, err := TokenizeInput(input)
	if err != nil {
		p.logger.Warn("Tokenization failed", ratalog.Fields{"error": err.Error()})
		return nil, err
	}

	r := p.newRun(tokens)
	mod, err := r.parseModuleUnit()
	if err == nil && !r.at(TokenEOF) {
		err = r.errorf("unexpected token after module definition")
	}
	if err != nil {
		p.logger.Warn("Module parse failed", ratalog.Fields{"error": err.Error()})
		return nil, err
	}

	p.logger.Debug("Module parse completed", ratalog.Fields{
		"module":     mod.Name,
		"imports":    len(mod.Imports),
		"statements": len(mod.Body),
	})

	return mod, nil
}

// ParseLine parses a single interactive line into a statement or expression
// AST. Statement forms are tried before the bare-expression fallback so
// that "x = 1" is never read as an expression followed by stray tokens.
func (p *Parser) ParseLine(input string) (ast.Node, error) {
	if len(input) > p.options.MaxInputLength {
		return nil, fmt.Errorf("input exceeds maximum length of %d bytes", p.options.MaxInputLength)
	}

	p.logger.Debug("Starting line parse", ratalog.Fields{
		"input_length": len(input),
	})

	tokens, err := TokenizeInput(input)
	if err != nil {
		p.logger.Warn("Tokenization failed", ratalog.Fields{"error": err.Error()})
		return nil, err
	}

	r := p.newRun(tokens)
	node, err := r.parseLine()
	if err == nil && !r.at(TokenEOF) {
		err = r.errorf("unexpected token after statement")
	}
	if err != nil {
		p.logger.Warn("Line parse failed", ratalog.Fields{"error": err.Error()})
		return nil, err
	}

	p.logger.Debug("Line parse completed", ratalog.Fields{
		"node_type": fmt.Sprintf("%T", node),
	})

	return node, nil
}

func (p *Parser) newRun(tokens []Token) *run {
	return &run{tokens: tokens, maxDepth: p.options.MaxDepth}
}

// tokenPos converts a token location to an AST position.
func tokenPos(tok Token) ast.Position {
	return ast.Position{Line: tok.Line, Column: tok.Column, Offset: tok.Position}
}

// run holds the state of a single parse call. The token slice always ends
// with an EOF token.
type run struct {
	tokens   []Token
	pos      int
	depth    int
	maxDepth int
}

func (r *run) current() Token {
	if r.pos >= len(r.tokens) {
		return r.tokens[len(r.tokens)-1]
	}
	return r.tokens[r.pos]
}

func (r *run) peek() Token {
	if r.pos+1 >= len(r.tokens) {
		return r.tokens[len(r.tokens)-1]
	}
	return r.tokens[r.pos+1]
}

func (r *run) at(tokenType TokenType) bool {
	return r.current().Type == tokenType
}

func (r *run) advance() {
	if r.pos < len(r.tokens)-1 {
		r.pos++
	}
}

// mark and reset implement backtracking for the grammar's documented
// fallback points.
func (r *run) mark() int {
	return r.pos
}

func (r *run) reset(mark int) {
	r.pos = mark
}

// enter guards recursion depth across the mutually recursive productions.
// A failed enter leaves the depth counter unchanged.
func (r *run) enter() error {
	if r.depth >= r.maxDepth {
		return r.errorf("maximum expression nesting depth %d exceeded", r.maxDepth)
	}
	r.depth++
	return nil
}

func (r *run) leave() {
	r.depth--
}

func (r *run) errorAt(tok Token, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Message:  fmt.Sprintf(format, args...),
		Position: tok.Position,
		Line:     tok.Line,
		Column:   tok.Column,
		Token:    tok,
	}
}

func (r *run) errorf(format string, args ...interface{}) *ParseError {
	return r.errorAt(r.current(), format, args...)
}

func (r *run) expect(tokenType TokenType, message string) (Token, error) {
	tok := r.current()
	if tok.Type != tokenType {
		return tok, r.errorf("%s", message)
	}
	r.advance()
	return tok, nil
}

// parseModuleUnit implements the two module entry grammars. The
// imports-prefixed grammar accepts zero or more imports, so a file without
// imports still parses under it; the bare grammar is only a fallback.
func (r *run) parseModuleUnit() (*ast.Module, error) {
	m := r.mark()
	mod, withErr := r.parseModuleWithImports()
	if withErr == nil {
		return mod, nil
	}

	r.reset(m)
	mod, bareErr := r.parseBareModule(nil)
	if bareErr == nil {
		return mod, nil
	}

	return nil, deeperError(withErr, bareErr)
}

func (r *run) parseModuleWithImports() (*ast.Module, error) {
	var imports []*ast.LibraryImport
	for r.at(TokenLibrary) {
		imp, err := r.parseLibraryImport()
		if err != nil {
			return nil, err
		}
		imports = append(imports, imp)
	}
	return r.parseBareModule(imports)
}

func (r *run) parseBareModule(imports []*ast.LibraryImport) (*ast.Module, error) {
	tok, err := r.expect(TokenModule, "expected 'module' keyword")
	if err != nil {
		return nil, err
	}
	nameTok, err := r.expect(TokenIdentifier, "expected module name after 'module'")
	if err != nil {
		return nil, err
	}
	body, err := r.parseStatementBlock("module body")
	if err != nil {
		return nil, err
	}
	return &ast.Module{Name: nameTok.Value, Imports: imports, Body: body, Pos: tokenPos(tok)}, nil
}

func (r *run) parseLibraryImport() (*ast.LibraryImport, error) {
	tok := r.current()
	r.advance() // 'library'

	nameTok, err := r.expect(TokenIdentifier, "expected library name after 'library'")
	if err != nil {
		return nil, err
	}

	imp := &ast.LibraryImport{ModuleName: nameTok.Value, Pos: tokenPos(tok)}
	if r.at(TokenAs) {
		r.advance()
		aliasTok, err := r.expect(TokenIdentifier, "expected alias name after 'as'")
		if err != nil {
			return nil, err
		}
		imp.Alias = aliasTok.Value
	}
	return imp, nil
}

// parseLine dispatches on the leading token so statement forms win over the
// bare-expression fallback. A lone import and a full pasted module are both
// accepted interactively.
func (r *run) parseLine() (ast.Node, error) {
	switch r.current().Type {
	case TokenAssert:
		return r.parseAssert()
	case TokenReturn:
		return r.parseReturn()
	case TokenModule:
		return r.parseModuleUnit()
	case TokenLibrary:
		m := r.mark()
		imp, impErr := r.parseLibraryImport()
		if impErr == nil && r.at(TokenEOF) {
			return imp, nil
		}
		r.reset(m)
		return r.parseModuleUnit()
	case TokenFunction:
		if r.peek().Type == TokenIdentifier {
			return r.parseFunctionDef()
		}
	case TokenIdentifier:
		if r.peek().Type == TokenAssign {
			return r.parseAssignment()
		}
	}
	return r.parseExpression()
}

func (r *run) parseStatementBlock(context string) ([]ast.Stmt, error) {
	if _, err := r.expect(TokenLeftBrace, fmt.Sprintf("expected '{' to open %s", context)); err != nil {
		return nil, err
	}

	var stmts []ast.Stmt
	for !r.at(TokenRightBrace) {
		if r.at(TokenEOF) {
			return nil, r.errorf("expected '}' to close %s", context)
		}
		stmt, err := r.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	r.advance() // consume '}'

	return stmts, nil
}

func (r *run) parseStatement() (ast.Stmt, error) {
	switch r.current().Type {
	case TokenAssert:
		return r.parseAssert()
	case TokenReturn:
		return r.parseReturn()
	case TokenFunction:
		// Only a named definition is a statement form; an anonymous
		// function literal falls through to the expression path.
		if r.peek().Type == TokenIdentifier {
			return r.parseFunctionDef()
		}
	case TokenIdentifier:
		if r.peek().Type == TokenAssign {
			return r.parseAssignment()
		}
	}

	expr, err := r.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expression: expr, Pos: expr.Position()}, nil
}

func (r *run) parseAssignment() (*ast.Assignment, error) {
	nameTok := r.current()
	r.advance() // name
	r.advance() // '='

	value, err := r.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{Name: nameTok.Value, Value: value, Pos: tokenPos(nameTok)}, nil
}

func (r *run) parseAssert() (*ast.AssertStatement, error) {
	tok := r.current()
	r.advance() // 'assert'

	condition, err := r.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.AssertStatement{Condition: condition, Pos: tokenPos(tok)}, nil
}

func (r *run) parseReturn() (*ast.Return, error) {
	tok := r.current()
	r.advance() // 'return'

	value, err := r.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Return{Value: value, Pos: tokenPos(tok)}, nil
}

func (r *run) parseFunctionDef() (*ast.FunctionDef, error) {
	tok := r.current()
	r.advance() // 'function'
	nameTok := r.current()
	r.advance() // name, guarded by the caller's lookahead

	params, err := r.parseParameterList()
	if err != nil {
		return nil, err
	}
	body, err := r.parseStatementBlock("function body")
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDef{Name: nameTok.Value, Params: params, Body: body, Pos: tokenPos(tok)}, nil
}

func (r *run) parseFunctionLiteral() (*ast.Function, error) {
	tok := r.current()
	r.advance() // 'function'

	params, err := r.parseParameterList()
	if err != nil {
		return nil, err
	}
	body, err := r.parseStatementBlock("function body")
	if err != nil {
		return nil, err
	}
	return &ast.Function{Params: params, Body: body, Pos: tokenPos(tok)}, nil
}

// parseParameterList reads a parenthesized list of "name" or "name: type"
// entries. A type is either a built-in tag or a bare identifier naming a
// user type.
func (r *run) parseParameterList() ([]*ast.Parameter, error) {
	if _, err := r.expect(TokenLeftParen, "expected '(' after 'function'"); err != nil {
		return nil, err
	}

	var params []*ast.Parameter
	if !r.at(TokenRightParen) {
		for {
			nameTok := r.current()
			if nameTok.Type != TokenIdentifier {
				return nil, r.errorf("expected parameter name")
			}
			r.advance()

			param := &ast.Parameter{Name: nameTok.Value, Pos: tokenPos(nameTok)}
			if r.at(TokenColon) {
				r.advance()
				typeTok := r.current()
				switch typeTok.Type {
				case TokenTypeName, TokenIdentifier:
					param.Type = typeTok.Value
					r.advance()
				default:
					return nil, r.errorf("expected type name after ':'")
				}
			}
			params = append(params, param)

			if !r.at(TokenComma) {
				break
			}
			r.advance()
		}
	}

	if _, err := r.expect(TokenRightParen, "expected ')' after parameters"); err != nil {
		return nil, err
	}
	return params, nil
}

// parseExpression is the root of the precedence chain: pipe, comparison,
// additive, range, multiplicative, power, primary.
func (r *run) parseExpression() (ast.Expr, error) {
	if err := r.enter(); err != nil {
		return nil, err
	}
	defer r.leave()

	return r.parsePipe()
}

func (r *run) parsePipe() (ast.Expr, error) {
	left, err := r.parseComparison()
	if err != nil {
		return nil, err
	}

	for r.at(TokenPipe) {
		op := r.current()
		r.advance()
		right, err := r.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Operator: op.Value, Right: right, Pos: left.Position()}
	}
	return left, nil
}

func (r *run) parseComparison() (ast.Expr, error) {
	left, err := r.parseAdditive()
	if err != nil {
		return nil, err
	}

	for r.at(TokenEquals) || r.at(TokenNotEquals) || r.at(TokenLessEq) || r.at(TokenGreater) {
		op := r.current()
		r.advance()
		right, err := r.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Operator: op.Value, Right: right, Pos: left.Position()}
	}
	return left, nil
}

func (r *run) parseAdditive() (ast.Expr, error) {
	left, err := r.parseRange()
	if err != nil {
		return nil, err
	}

	for r.at(TokenPlus) || r.at(TokenMinus) {
		op := r.current()
		r.advance()
		right, err := r.parseRange()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Operator: op.Value, Right: right, Pos: left.Position()}
	}
	return left, nil
}

// parseRange folds at most one '..' per expression level; ranges do not
// chain.
func (r *run) parseRange() (ast.Expr, error) {
	start, err := r.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	if r.at(TokenRange) {
		r.advance()
		end, err := r.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		return &ast.Range{Start: start, End: end, Pos: start.Position()}, nil
	}
	return start, nil
}

func (r *run) parseMultiplicative() (ast.Expr, error) {
	left, err := r.parsePower()
	if err != nil {
		return nil, err
	}

	for r.at(TokenStar) || r.at(TokenPercent) {
		op := r.current()
		r.advance()
		right, err := r.parsePower()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Left: left, Operator: op.Value, Right: right, Pos: left.Position()}
	}
	return left, nil
}

// parsePower is right-associative through self-recursion, so it carries its
// own depth guard.
func (r *run) parsePower() (ast.Expr, error) {
	if err := r.enter(); err != nil {
		return nil, err
	}
	defer r.leave()

	base, err := r.parsePrimary()
	if err != nil {
		return nil, err
	}

	if r.at(TokenCaret) {
		op := r.current()
		r.advance()
		exponent, err := r.parsePower()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Left: base, Operator: op.Value, Right: exponent, Pos: base.Position()}, nil
	}
	return base, nil
}

// parsePrimary parses a primary expression and folds any number of trailing
// call argument lists, so f(1)(2) calls the result of f(1).
func (r *run) parsePrimary() (ast.Expr, error) {
	base, err := r.parsePrimaryBase()
	if err != nil {
		return nil, err
	}

	for r.at(TokenLeftParen) {
		r.advance()
		args, err := r.parseCallArgs()
		if err != nil {
			return nil, err
		}
		base = &ast.FunctionCall{Function: base, Args: args, Pos: base.Position()}
	}
	return base, nil
}

func (r *run) parseCallArgs() ([]ast.Expr, error) {
	var args []ast.Expr
	if !r.at(TokenRightParen) {
		for {
			arg, err := r.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !r.at(TokenComma) {
				break
			}
			r.advance()
		}
	}

	if _, err := r.expect(TokenRightParen, "expected ')' after call arguments"); err != nil {
		return nil, err
	}
	return args, nil
}

func (r *run) parsePrimaryBase() (ast.Expr, error) {
	tok := r.current()

	switch tok.Type {
	case TokenMinus:
		return r.parseNegatedNumber()
	case TokenInt, TokenFloat:
		r.advance()
		return r.numberLiteral(tok, tok.Value, tokenPos(tok))
	case TokenString:
		r.advance()
		return &ast.Literal{
			Kind:  ast.LiteralString,
			Raw:   tok.Value,
			Value: decodeEscapes(tok.Value),
			Pos:   tokenPos(tok),
		}, nil
	case TokenFString:
		r.advance()
		return r.parseInterpolatedString(tok)
	case TokenSymbol:
		r.advance()
		return &ast.Symbol{Name: tok.Value, Pos: tokenPos(tok)}, nil
	case TokenModuleRef:
		r.advance()
		return &ast.ModuleRef{Pos: tokenPos(tok)}, nil
	case TokenLambdaParam:
		r.advance()
		return &ast.LambdaParam{Name: tok.Value, Pos: tokenPos(tok)}, nil
	case TokenIdentifier:
		r.advance()
		if r.at(TokenDot) {
			r.advance()
			nameTok, err := r.expect(TokenIdentifier, "expected name after '.'")
			if err != nil {
				return nil, err
			}
			return &ast.QualifiedIdentifier{Module: tok.Value, Name: nameTok.Value, Pos: tokenPos(tok)}, nil
		}
		return &ast.Identifier{Name: tok.Value, Pos: tokenPos(tok)}, nil
	case TokenTilde:
		return r.parseLambda()
	case TokenIf:
		return r.parseIf()
	case TokenFunction:
		return r.parseFunctionLiteral()
	case TokenLeftParen:
		r.advance()
		expr, err := r.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := r.expect(TokenRightParen, "expected ')' to close grouped expression"); err != nil {
			return nil, err
		}
		return expr, nil
	case TokenLeftBrace:
		return r.parseBraceExpression()
	case TokenLeftBracket:
		return r.parseVector()
	case TokenHashBrace:
		return r.parseSet()
	case TokenTypeName:
		return nil, r.errorf("type tag '%s' cannot be used as an expression", tok.Value)
	default:
		return nil, r.errorf("expected an expression")
	}
}

// parseNegatedNumber folds a leading '-' into the numeric literal that
// follows it. The minus token itself is always lexed as an operator.
func (r *run) parseNegatedNumber() (ast.Expr, error) {
	minus := r.current()
	r.advance()

	tok := r.current()
	switch tok.Type {
	case TokenInt, TokenFloat:
		r.advance()
		return r.numberLiteral(tok, "-"+tok.Value, tokenPos(minus))
	default:
		return nil, r.errorf("expected a number after '-'")
	}
}

func (r *run) numberLiteral(tok Token, raw string, pos ast.Position) (ast.Expr, error) {
	if tok.Type == TokenFloat {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, r.errorAt(tok, "invalid float literal '%s'", raw)
		}
		return &ast.Literal{Kind: ast.LiteralFloat, Raw: raw, Value: value, Pos: pos}, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, r.errorAt(tok, "invalid integer literal '%s'", raw)
	}
	return &ast.Literal{Kind: ast.LiteralInt, Raw: raw, Value: value, Pos: pos}, nil
}

func (r *run) parseLambda() (*ast.Lambda, error) {
	tok := r.current()
	r.advance() // '~'

	body, err := r.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Lambda{Params: inferLambdaParams(body), Body: body, Pos: tokenPos(tok)}, nil
}

func (r *run) parseIf() (*ast.If, error) {
	tok := r.current()
	r.advance() // 'if'

	condition, err := r.parseExpression()
	if err != nil {
		return nil, err
	}
	thenBlock, err := r.parseStatementBlock("if branch")
	if err != nil {
		return nil, err
	}

	ifExpr := &ast.If{Condition: condition, Then: thenBlock, Pos: tokenPos(tok)}
	if r.at(TokenElse) {
		r.advance()
		elseBlock, err := r.parseStatementBlock("else branch")
		if err != nil {
			return nil, err
		}
		ifExpr.Else = elseBlock
	}
	return ifExpr, nil
}

// parseBraceExpression disambiguates '{'. The map alternative is tried
// first with full backtracking; only when it cannot match does the tuple
// alternative run. An empty pair of braces is an empty tuple.
func (r *run) parseBraceExpression() (ast.Expr, error) {
	open := r.current()
	r.advance() // '{'

	if r.at(TokenRightBrace) {
		r.advance()
		return &ast.Tuple{Pos: tokenPos(open)}, nil
	}

	m := r.mark()
	mapExpr, mapErr := r.parseMapContent(open)
	if mapErr == nil {
		return mapExpr, nil
	}

	r.reset(m)
	tupleExpr, tupleErr := r.parseTupleContent(open)
	if tupleErr == nil {
		return tupleExpr, nil
	}

	return nil, deeperError(mapErr, tupleErr)
}

func (r *run) parseMapContent(open Token) (*ast.Map, error) {
	var pairs []ast.MapPair
	for {
		key, err := r.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := r.expect(TokenColon, "expected ':' after map key"); err != nil {
			return nil, err
		}
		value, err := r.parseExpression()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, ast.MapPair{Key: key, Value: value})

		if !r.at(TokenComma) {
			break
		}
		r.advance()
	}

	if _, err := r.expect(TokenRightBrace, "expected '}' to close map literal"); err != nil {
		return nil, err
	}
	return &ast.Map{Pairs: pairs, Pos: tokenPos(open)}, nil
}

func (r *run) parseTupleContent(open Token) (*ast.Tuple, error) {
	var elements []ast.Expr
	for {
		element, err := r.parseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)

		if !r.at(TokenComma) {
			break
		}
		r.advance()
	}

	if _, err := r.expect(TokenRightBrace, "expected '}' to close tuple literal"); err != nil {
		return nil, err
	}
	return &ast.Tuple{Elements: elements, Pos: tokenPos(open)}, nil
}

func (r *run) parseVector() (ast.Expr, error) {
	open := r.current()
	r.advance() // '['

	elements, err := r.parseExpressionList(TokenRightBracket, "expected ']' to close vector literal")
	if err != nil {
		return nil, err
	}
	return &ast.Vector{Elements: elements, Pos: tokenPos(open)}, nil
}

func (r *run) parseSet() (ast.Expr, error) {
	open := r.current()
	r.advance() // '#{'

	elements, err := r.parseExpressionList(TokenRightBrace, "expected '}' to close set literal")
	if err != nil {
		return nil, err
	}
	return &ast.Set{Elements: elements, Pos: tokenPos(open)}, nil
}

func (r *run) parseExpressionList(terminator TokenType, closeMessage string) ([]ast.Expr, error) {
	var elements []ast.Expr
	if !r.at(terminator) {
		for {
			element, err := r.parseExpression()
			if err != nil {
				return nil, err
			}
			elements = append(elements, element)
			if !r.at(TokenComma) {
				break
			}
			r.advance()
		}
	}

	if _, err := r.expect(terminator, closeMessage); err != nil {
		return nil, err
	}
	return elements, nil
}

// decodeEscapes resolves the escape sequences recognized in string
// literals: quote, backslash, newline, tab, and carriage return. Unknown
// escape pairs are kept verbatim.
func decodeEscapes(raw string) string {
	if !strings.Contains(raw, "\\") {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if ch != '\\' || i+1 >= len(raw) {
			b.WriteByte(ch)
			continue
		}
		i++
		switch raw[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte('\\')
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}
