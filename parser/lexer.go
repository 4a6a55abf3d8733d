// File: lexer.go
// Title: Rata Lexer Implementation
// Description: Lexical analyzer for Rata source text. Converts raw input
//              into a stream of typed tokens covering literals, symbols,
//              keywords, operators, and collection delimiters.
// Author: The Rata Team
// Version: v0.3.0
// Created: 2026-02-17
// Modified: 2026-03-02
//
// Change History:
// - 2026-02-17 v0.1.0: Initial lexer with identifiers, numbers, strings, and operators
// - 2026-02-24 v0.2.0: Ranges, set braces, symbols, f-string capture, type keywords
// - 2026-03-02 v0.3.0: Module self-reference token and position-seeded fragment lexing

package parser

import (
	"fmt"
	"sort"
	"strings"

	ratastringx "github.com/rata-lang/rata/utils/stringx"
)

// TokenType identifies the lexical class of a token.
type TokenType int

const (
	// Control tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Literals and names
	TokenInt
	TokenFloat
	TokenString
	TokenFString
	TokenSymbol
	TokenIdentifier
	TokenLambdaParam
	TokenTypeName

	// Keywords
	TokenLibrary
	TokenModule
	TokenFunction
	TokenIf
	TokenElse
	TokenReturn
	TokenAssert
	TokenAs
	TokenModuleRef

	// Operators
	TokenPipe      // |>
	TokenEquals    // ==
	TokenNotEquals // !=
	TokenLessEq    // <=
	TokenGreater   // >
	TokenAssign    // =
	TokenPlus      // +
	TokenMinus     // -
	TokenStar      // *
	TokenPercent   // %
	TokenCaret     // ^
	TokenRange     // ..
	TokenTilde     // ~

	// Delimiters
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenLeftBrace    // {
	TokenRightBrace   // }
	TokenLeftBracket  // [
	TokenRightBracket // ]
	TokenHashBrace    // #{
	TokenComma        // ,
	TokenColon        // :
	TokenDot          // .
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenInt:
		return "INT"
	case TokenFloat:
		return "FLOAT"
	case TokenString:
		return "STRING"
	case TokenFString:
		return "FSTRING"
	case TokenSymbol:
		return "SYMBOL"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenLambdaParam:
		return "LAMBDA_PARAM"
	case TokenTypeName:
		return "TYPE_NAME"
	case TokenLibrary:
		return "LIBRARY"
	case TokenModule:
		return "MODULE"
	case TokenFunction:
		return "FUNCTION"
	case TokenIf:
		return "IF"
	case TokenElse:
		return "ELSE"
	case TokenReturn:
		return "RETURN"
	case TokenAssert:
		return "ASSERT"
	case TokenAs:
		return "AS"
	case TokenModuleRef:
		return "MODULE_REF"
	case TokenPipe:
		return "PIPE"
	case TokenEquals:
		return "EQUALS"
	case TokenNotEquals:
		return "NOT_EQUALS"
	case TokenLessEq:
		return "LESS_EQ"
	case TokenGreater:
		return "GREATER"
	case TokenAssign:
		return "ASSIGN"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenPercent:
		return "PERCENT"
	case TokenCaret:
		return "CARET"
	case TokenRange:
		return "RANGE"
	case TokenTilde:
		return "TILDE"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	case TokenLeftBrace:
		return "LEFT_BRACE"
	case TokenRightBrace:
		return "RIGHT_BRACE"
	case TokenLeftBracket:
		return "LEFT_BRACKET"
	case TokenRightBracket:
		return "RIGHT_BRACKET"
	case TokenHashBrace:
		return "HASH_BRACE"
	case TokenComma:
		return "COMMA"
	case TokenColon:
		return "COLON"
	case TokenDot:
		return "DOT"
	default:
		return "UNKNOWN"
	}
}

// Token represents a single lexical unit of source text. Position is the
// byte offset of the token start; Line and Column are 1-based.
type Token struct {
	Type     TokenType
	Value    string
	Position int
	Line     int
	Column   int
}

// String returns a readable representation of the token.
func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Type, t.Value)
}

// LexError describes a lexical fault at a specific input position.
type LexError struct {
	Message  string
	Position int
	Line     int
	Column   int
}

// Error implements the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// Reserved words of the language. Built once at startup and treated as
// immutable read-only data afterwards.
var keywords = map[string]TokenType{
	"library":    TokenLibrary,
	"module":     TokenModule,
	"function":   TokenFunction,
	"if":         TokenIf,
	"else":       TokenElse,
	"return":     TokenReturn,
	"assert":     TokenAssert,
	"as":         TokenAs,
	"__module__": TokenModuleRef,
}

// Built-in type tags accepted in parameter annotations alongside nominal
// user types.
var typeNames = map[string]bool{
	"int":     true,
	"posint":  true,
	"float":   true,
	"numeric": true,
	"string":  true,
	"bool":    true,
}

// lookupIdent maps an identifier-shaped word to its keyword, type tag, or
// plain identifier token type.
func lookupIdent(word string) TokenType {
	if tokType, ok := keywords[word]; ok {
		return tokType
	}
	if typeNames[word] {
		return TokenTypeName
	}
	return TokenIdentifier
}

// Lexer performs lexical analysis of Rata source text.
type Lexer struct {
	input    string
	position int  // current position in input (points to current char)
	readPos  int  // current reading position (after current char)
	ch       byte // current char under examination
	line     int
	column   int
	base     int       // offset added to positions when lexing embedded fragments
	prev     TokenType // last emitted token type, drives '.' disambiguation
	err      *LexError // detailed fault behind a pending Illegal token
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	return newLexerAt(input, 1, 0, 0)
}

// newLexerAt creates a lexer whose reported positions are seeded with the
// absolute location of an embedded fragment inside a larger source text.
// The column seed is the position just before the fragment's first column.
func newLexerAt(input string, line, column, offset int) *Lexer {
	l := &Lexer{
		input:  input,
		line:   line,
		column: column,
		base:   offset,
		prev:   TokenEOF,
	}
	l.readChar()
	return l
}

// NextToken scans and returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.base + l.position
	line := l.line
	column := l.column

	var tok Token

	switch l.ch {
	case 0:
		l.prev = TokenEOF
		return Token{Type: TokenEOF, Value: "", Position: pos, Line: line, Column: column}
	case '"':
		return l.readStringToken(pos, line, column)
	case ':':
		if isLetter(l.peekChar()) {
			l.readChar() // skip ':'
			name := l.readIdentifier()
			l.prev = TokenSymbol
			return Token{Type: TokenSymbol, Value: name, Position: pos, Line: line, Column: column}
		}
		tok = l.newToken(TokenColon, ":", pos, line, column)
	case '.':
		if l.peekChar() == '.' {
			l.readChar()
			tok = l.newToken(TokenRange, "..", pos, line, column)
		} else if l.prev == TokenIdentifier {
			// A '.' directly after an identifier joins two identifiers
			// into a qualified name and never begins a lambda parameter.
			tok = l.newToken(TokenDot, ".", pos, line, column)
		} else if isLetter(l.peekChar()) {
			l.readChar() // skip '.'
			name := l.readIdentifier()
			l.prev = TokenLambdaParam
			return Token{Type: TokenLambdaParam, Value: name, Position: pos, Line: line, Column: column}
		} else {
			tok = l.newToken(TokenIllegal, ".", pos, line, column)
		}
	case '#':
		// Every '#' not followed by '{' was consumed as a comment in
		// skipWhitespace, so this always opens a set literal.
		l.readChar()
		tok = l.newToken(TokenHashBrace, "#{", pos, line, column)
	case '|':
		if l.peekChar() == '>' {
			l.readChar()
			tok = l.newToken(TokenPipe, "|>", pos, line, column)
		} else {
			tok = l.newToken(TokenIllegal, "|", pos, line, column)
		}
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.newToken(TokenEquals, "==", pos, line, column)
		} else {
			tok = l.newToken(TokenAssign, "=", pos, line, column)
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.newToken(TokenNotEquals, "!=", pos, line, column)
		} else {
			tok = l.newToken(TokenIllegal, "!", pos, line, column)
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.newToken(TokenLessEq, "<=", pos, line, column)
		} else {
			tok = l.newToken(TokenIllegal, "<", pos, line, column)
		}
	case '>':
		tok = l.newToken(TokenGreater, ">", pos, line, column)
	case '+':
		tok = l.newToken(TokenPlus, "+", pos, line, column)
	case '-':
		tok = l.newToken(TokenMinus, "-", pos, line, column)
	case '*':
		tok = l.newToken(TokenStar, "*", pos, line, column)
	case '%':
		tok = l.newToken(TokenPercent, "%", pos, line, column)
	case '^':
		tok = l.newToken(TokenCaret, "^", pos, line, column)
	case '~':
		tok = l.newToken(TokenTilde, "~", pos, line, column)
	case '(':
		tok = l.newToken(TokenLeftParen, "(", pos, line, column)
	case ')':
		tok = l.newToken(TokenRightParen, ")", pos, line, column)
	case '{':
		tok = l.newToken(TokenLeftBrace, "{", pos, line, column)
	case '}':
		tok = l.newToken(TokenRightBrace, "}", pos, line, column)
	case '[':
		tok = l.newToken(TokenLeftBracket, "[", pos, line, column)
	case ']':
		tok = l.newToken(TokenRightBracket, "]", pos, line, column)
	case ',':
		tok = l.newToken(TokenComma, ",", pos, line, column)
	default:
		if l.ch == 'f' && l.peekChar() == '"' {
			return l.readFStringToken(pos, line, column)
		}
		if isLetter(l.ch) {
			word := l.readIdentifier()
			tokType := lookupIdent(word)
			l.prev = tokType
			return Token{Type: tokType, Value: word, Position: pos, Line: line, Column: column}
		}
		if isDigit(l.ch) {
			return l.readNumberToken(pos, line, column)
		}
		tok = l.newToken(TokenIllegal, string(l.ch), pos, line, column)
	}

	l.readChar()
	return tok
}

// Tokenize reads all tokens from the input. The returned slice always ends
// with an EOF token; the first lexical fault aborts the scan.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokenIllegal {
			if l.err != nil {
				return nil, l.err
			}
			return nil, &LexError{
				Message:  fmt.Sprintf("illegal character '%s'", tok.Value),
				Position: tok.Position,
				Line:     tok.Line,
				Column:   tok.Column,
			}
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			break
		}
	}
	return tokens, nil
}

// newToken creates a single-lexeme token and records its type for the
// '.' disambiguation rule.
func (l *Lexer) newToken(tokenType TokenType, value string, pos, line, column int) Token {
	l.prev = tokenType
	return Token{Type: tokenType, Value: value, Position: pos, Line: line, Column: column}
}

// readChar advances the lexer by one byte and maintains line/column counters.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next byte without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// readIdentifier reads an identifier-shaped word starting at the current
// character. Words are interned since module sources repeat names heavily.
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return ratastringx.Intern(l.input[start:l.position])
}

// readNumber reads an unsigned integer or decimal number. The decimal point
// is only consumed when a digit follows, so range expressions such as 1..10
// keep their '..' delimiter intact.
func (l *Lexer) readNumber() (string, bool) {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}

	isFloat := false
	if l.ch == '.' && isDigit(l.peekChar()) {
		isFloat = true
		l.readChar() // consume '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[start:l.position], isFloat
}

func (l *Lexer) readNumberToken(pos, line, column int) Token {
	value, isFloat := l.readNumber()
	tokType := TokenInt
	if isFloat {
		tokType = TokenFloat
	}
	l.prev = tokType
	return Token{Type: tokType, Value: value, Position: pos, Line: line, Column: column}
}

// readString captures the raw body of a string literal without decoding
// escape sequences. The opening quote is the current character; a backslash
// always skips the following character so escaped quotes stay inside the
// body. Strings may span multiple lines.
func (l *Lexer) readString() (string, bool) {
	start := l.position + 1
	for {
		l.readChar()
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 {
				return "", false
			}
			continue
		}
		if l.ch == '"' {
			break
		}
		if l.ch == 0 {
			return "", false
		}
	}
	body := l.input[start:l.position]
	l.readChar() // skip closing quote
	return body, true
}

func (l *Lexer) readStringToken(pos, line, column int) Token {
	body, ok := l.readString()
	if !ok {
		l.err = &LexError{Message: "unterminated string literal", Position: pos, Line: line, Column: column}
		l.prev = TokenIllegal
		return Token{Type: TokenIllegal, Value: "\"", Position: pos, Line: line, Column: column}
	}
	l.prev = TokenString
	return Token{Type: TokenString, Value: body, Position: pos, Line: line, Column: column}
}

// readFStringToken captures an interpolated string body raw, including any
// embedded {...} fragments. Segmentation happens in the parser.
func (l *Lexer) readFStringToken(pos, line, column int) Token {
	l.readChar() // skip 'f', now on the opening quote
	body, ok := l.readString()
	if !ok {
		l.err = &LexError{Message: "unterminated interpolated string literal", Position: pos, Line: line, Column: column}
		l.prev = TokenIllegal
		return Token{Type: TokenIllegal, Value: "f\"", Position: pos, Line: line, Column: column}
	}
	l.prev = TokenFString
	return Token{Type: TokenFString, Value: body, Position: pos, Line: line, Column: column}
}

// skipWhitespace advances past whitespace and '#' line comments. A '#'
// immediately followed by '{' opens a set literal and is left in place.
func (l *Lexer) skipWhitespace() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '#' && l.peekChar() != '{':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

// isLetter reports whether ch can begin or continue an identifier. Bytes
// above 127 are part of multi-byte UTF-8 runes and are treated as letters.
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || ch > 127
}

// isDigit reports whether ch is an ASCII digit.
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// TokenizeInput tokenizes the given source text in one call.
func TokenizeInput(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}

// IsKeyword reports whether word is a reserved word.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// IsTypeName reports whether word is a built-in type tag.
func IsTypeName(word string) bool {
	return typeNames[word]
}

// Keywords returns the reserved words in sorted order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for word := range keywords {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// TypeNames returns the built-in type tags in sorted order.
func TypeNames() []string {
	names := make([]string, 0, len(typeNames))
	for name := range typeNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsValidNumber reports whether s is a well-formed numeric literal. A single
// leading '-' is accepted so rendered negative literals validate.
func IsValidNumber(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}

	seenDot := false
	for i := 0; i < len(s); i++ {
		switch {
		case isDigit(s[i]):
		case s[i] == '.' && !seenDot && i > 0 && i < len(s)-1:
			seenDot = true
		default:
			return false
		}
	}
	return true
}

// IsValidIdentifier reports whether s is usable as a binding name. Reserved
// words and type tags are identifier shaped but not usable.
func IsValidIdentifier(s string) bool {
	if s == "" || IsKeyword(s) || IsTypeName(s) {
		return false
	}
	if !isLetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isLetter(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return true
}
