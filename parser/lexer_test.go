// File: lexer_test.go
// Title: Rata Lexer Unit Tests
// Description: Unit tests for the Rata lexical analyzer covering all token
//              classes, position tracking, comment handling, and error
//              cases.
// Author: The Rata Team
// Version: v0.3.0
// Created: 2026-02-17
// Modified: 2026-03-02
//
// Change History:
// - 2026-02-17 v0.1.0: Initial lexer tests
// - 2026-02-24 v0.2.0: Range, set, symbol, and f-string coverage
// - 2026-03-02 v0.3.0: Module self-reference and comment coverage

package parser

import (
	"strings"
	"testing"
)

func TestLexer_NextToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Simple assignment",
			input: "x = 1",
			expected: []Token{
				{Type: TokenIdentifier, Value: "x", Position: 0, Line: 1, Column: 1},
				{Type: TokenAssign, Value: "=", Position: 2, Line: 1, Column: 3},
				{Type: TokenInt, Value: "1", Position: 4, Line: 1, Column: 5},
				{Type: TokenEOF, Value: "", Position: 5, Line: 1, Column: 6},
			},
		},
		{
			name:  "Pipe into call",
			input: "data |> clean()",
			expected: []Token{
				{Type: TokenIdentifier, Value: "data", Position: 0, Line: 1, Column: 1},
				{Type: TokenPipe, Value: "|>", Position: 5, Line: 1, Column: 6},
				{Type: TokenIdentifier, Value: "clean", Position: 8, Line: 1, Column: 9},
				{Type: TokenLeftParen, Value: "(", Position: 13, Line: 1, Column: 14},
				{Type: TokenRightParen, Value: ")", Position: 14, Line: 1, Column: 15},
				{Type: TokenEOF, Value: "", Position: 15, Line: 1, Column: 16},
			},
		},
		{
			name:  "Qualified identifier call",
			input: "Math.sqrt(16)",
			expected: []Token{
				{Type: TokenIdentifier, Value: "Math", Position: 0, Line: 1, Column: 1},
				{Type: TokenDot, Value: ".", Position: 4, Line: 1, Column: 5},
				{Type: TokenIdentifier, Value: "sqrt", Position: 5, Line: 1, Column: 6},
				{Type: TokenLeftParen, Value: "(", Position: 9, Line: 1, Column: 10},
				{Type: TokenInt, Value: "16", Position: 10, Line: 1, Column: 11},
				{Type: TokenRightParen, Value: ")", Position: 12, Line: 1, Column: 13},
				{Type: TokenEOF, Value: "", Position: 13, Line: 1, Column: 14},
			},
		},
		{
			name:  "Float literal stays one token",
			input: "3.14",
			expected: []Token{
				{Type: TokenFloat, Value: "3.14", Position: 0, Line: 1, Column: 1},
				{Type: TokenEOF, Value: "", Position: 4, Line: 1, Column: 5},
			},
		},
		{
			name:  "Integer range keeps its delimiter",
			input: "1..10",
			expected: []Token{
				{Type: TokenInt, Value: "1", Position: 0, Line: 1, Column: 1},
				{Type: TokenRange, Value: "..", Position: 1, Line: 1, Column: 2},
				{Type: TokenInt, Value: "10", Position: 3, Line: 1, Column: 4},
				{Type: TokenEOF, Value: "", Position: 5, Line: 1, Column: 6},
			},
		},
		{
			name:  "Float range",
			input: "1.5..2",
			expected: []Token{
				{Type: TokenFloat, Value: "1.5", Position: 0, Line: 1, Column: 1},
				{Type: TokenRange, Value: "..", Position: 3, Line: 1, Column: 4},
				{Type: TokenInt, Value: "2", Position: 5, Line: 1, Column: 6},
				{Type: TokenEOF, Value: "", Position: 6, Line: 1, Column: 7},
			},
		},
		{
			name:  "Symbol",
			input: ":mean",
			expected: []Token{
				{Type: TokenSymbol, Value: "mean", Position: 0, Line: 1, Column: 1},
				{Type: TokenEOF, Value: "", Position: 5, Line: 1, Column: 6},
			},
		},
		{
			name:  "Lambda with parameters",
			input: "~ .x + .y",
			expected: []Token{
				{Type: TokenTilde, Value: "~", Position: 0, Line: 1, Column: 1},
				{Type: TokenLambdaParam, Value: "x", Position: 2, Line: 1, Column: 3},
				{Type: TokenPlus, Value: "+", Position: 5, Line: 1, Column: 6},
				{Type: TokenLambdaParam, Value: "y", Position: 7, Line: 1, Column: 8},
				{Type: TokenEOF, Value: "", Position: 9, Line: 1, Column: 10},
			},
		},
		{
			name:  "Set literal",
			input: "#{1, 2}",
			expected: []Token{
				{Type: TokenHashBrace, Value: "#{", Position: 0, Line: 1, Column: 1},
				{Type: TokenInt, Value: "1", Position: 2, Line: 1, Column: 3},
				{Type: TokenComma, Value: ",", Position: 3, Line: 1, Column: 4},
				{Type: TokenInt, Value: "2", Position: 5, Line: 1, Column: 6},
				{Type: TokenRightBrace, Value: "}", Position: 6, Line: 1, Column: 7},
				{Type: TokenEOF, Value: "", Position: 7, Line: 1, Column: 8},
			},
		},
		{
			name:  "Vector literal",
			input: "[1, 2]",
			expected: []Token{
				{Type: TokenLeftBracket, Value: "[", Position: 0, Line: 1, Column: 1},
				{Type: TokenInt, Value: "1", Position: 1, Line: 1, Column: 2},
				{Type: TokenComma, Value: ",", Position: 2, Line: 1, Column: 3},
				{Type: TokenInt, Value: "2", Position: 4, Line: 1, Column: 5},
				{Type: TokenRightBracket, Value: "]", Position: 5, Line: 1, Column: 6},
				{Type: TokenEOF, Value: "", Position: 6, Line: 1, Column: 7},
			},
		},
		{
			name:  "Equality and inequality",
			input: "a == b != c",
			expected: []Token{
				{Type: TokenIdentifier, Value: "a", Position: 0, Line: 1, Column: 1},
				{Type: TokenEquals, Value: "==", Position: 2, Line: 1, Column: 3},
				{Type: TokenIdentifier, Value: "b", Position: 5, Line: 1, Column: 6},
				{Type: TokenNotEquals, Value: "!=", Position: 7, Line: 1, Column: 8},
				{Type: TokenIdentifier, Value: "c", Position: 10, Line: 1, Column: 11},
				{Type: TokenEOF, Value: "", Position: 11, Line: 1, Column: 12},
			},
		},
		{
			name:  "Ordering operators",
			input: "x <= y > z",
			expected: []Token{
				{Type: TokenIdentifier, Value: "x", Position: 0, Line: 1, Column: 1},
				{Type: TokenLessEq, Value: "<=", Position: 2, Line: 1, Column: 3},
				{Type: TokenIdentifier, Value: "y", Position: 5, Line: 1, Column: 6},
				{Type: TokenGreater, Value: ">", Position: 7, Line: 1, Column: 8},
				{Type: TokenIdentifier, Value: "z", Position: 9, Line: 1, Column: 10},
				{Type: TokenEOF, Value: "", Position: 10, Line: 1, Column: 11},
			},
		},
		{
			name:  "Arithmetic operators",
			input: "2 * 3 % 4 ^ 5",
			expected: []Token{
				{Type: TokenInt, Value: "2", Position: 0, Line: 1, Column: 1},
				{Type: TokenStar, Value: "*", Position: 2, Line: 1, Column: 3},
				{Type: TokenInt, Value: "3", Position: 4, Line: 1, Column: 5},
				{Type: TokenPercent, Value: "%", Position: 6, Line: 1, Column: 7},
				{Type: TokenInt, Value: "4", Position: 8, Line: 1, Column: 9},
				{Type: TokenCaret, Value: "^", Position: 10, Line: 1, Column: 11},
				{Type: TokenInt, Value: "5", Position: 12, Line: 1, Column: 13},
				{Type: TokenEOF, Value: "", Position: 13, Line: 1, Column: 14},
			},
		},
		{
			name:  "Minus is always a binary operator",
			input: "x-1",
			expected: []Token{
				{Type: TokenIdentifier, Value: "x", Position: 0, Line: 1, Column: 1},
				{Type: TokenMinus, Value: "-", Position: 1, Line: 1, Column: 2},
				{Type: TokenInt, Value: "1", Position: 2, Line: 1, Column: 3},
				{Type: TokenEOF, Value: "", Position: 3, Line: 1, Column: 4},
			},
		},
		{
			name:  "Module keywords",
			input: "module Pipeline {}",
			expected: []Token{
				{Type: TokenModule, Value: "module", Position: 0, Line: 1, Column: 1},
				{Type: TokenIdentifier, Value: "Pipeline", Position: 7, Line: 1, Column: 8},
				{Type: TokenLeftBrace, Value: "{", Position: 16, Line: 1, Column: 17},
				{Type: TokenRightBrace, Value: "}", Position: 17, Line: 1, Column: 18},
				{Type: TokenEOF, Value: "", Position: 18, Line: 1, Column: 19},
			},
		},
		{
			name:  "Library import with alias",
			input: "library Math as m",
			expected: []Token{
				{Type: TokenLibrary, Value: "library", Position: 0, Line: 1, Column: 1},
				{Type: TokenIdentifier, Value: "Math", Position: 8, Line: 1, Column: 9},
				{Type: TokenAs, Value: "as", Position: 13, Line: 1, Column: 14},
				{Type: TokenIdentifier, Value: "m", Position: 16, Line: 1, Column: 17},
				{Type: TokenEOF, Value: "", Position: 17, Line: 1, Column: 18},
			},
		},
		{
			name:  "Typed parameter list",
			input: "function f(n: int)",
			expected: []Token{
				{Type: TokenFunction, Value: "function", Position: 0, Line: 1, Column: 1},
				{Type: TokenIdentifier, Value: "f", Position: 9, Line: 1, Column: 10},
				{Type: TokenLeftParen, Value: "(", Position: 10, Line: 1, Column: 11},
				{Type: TokenIdentifier, Value: "n", Position: 11, Line: 1, Column: 12},
				{Type: TokenColon, Value: ":", Position: 12, Line: 1, Column: 13},
				{Type: TokenTypeName, Value: "int", Position: 14, Line: 1, Column: 15},
				{Type: TokenRightParen, Value: ")", Position: 17, Line: 1, Column: 18},
				{Type: TokenEOF, Value: "", Position: 18, Line: 1, Column: 19},
			},
		},
		{
			name:  "F-string captured raw",
			input: `f"sum: {a}"`,
			expected: []Token{
				{Type: TokenFString, Value: "sum: {a}", Position: 0, Line: 1, Column: 1},
				{Type: TokenEOF, Value: "", Position: 11, Line: 1, Column: 12},
			},
		},
		{
			name:  "String with escaped quote stays raw",
			input: `"a\"b"`,
			expected: []Token{
				{Type: TokenString, Value: `a\"b`, Position: 0, Line: 1, Column: 1},
				{Type: TokenEOF, Value: "", Position: 6, Line: 1, Column: 7},
			},
		},
		{
			name:  "Module self-reference",
			input: "__module__",
			expected: []Token{
				{Type: TokenModuleRef, Value: "__module__", Position: 0, Line: 1, Column: 1},
				{Type: TokenEOF, Value: "", Position: 10, Line: 1, Column: 11},
			},
		},
		{
			name:  "Underscore wildcard is an identifier",
			input: "_",
			expected: []Token{
				{Type: TokenIdentifier, Value: "_", Position: 0, Line: 1, Column: 1},
				{Type: TokenEOF, Value: "", Position: 1, Line: 1, Column: 2},
			},
		},
		{
			name:  "Multiline position tracking",
			input: "x = 1\ny = 2",
			expected: []Token{
				{Type: TokenIdentifier, Value: "x", Position: 0, Line: 1, Column: 1},
				{Type: TokenAssign, Value: "=", Position: 2, Line: 1, Column: 3},
				{Type: TokenInt, Value: "1", Position: 4, Line: 1, Column: 5},
				{Type: TokenIdentifier, Value: "y", Position: 6, Line: 2, Column: 1},
				{Type: TokenAssign, Value: "=", Position: 8, Line: 2, Column: 3},
				{Type: TokenInt, Value: "2", Position: 10, Line: 2, Column: 5},
				{Type: TokenEOF, Value: "", Position: 11, Line: 2, Column: 6},
			},
		},
		{
			name:  "Line comment skipped",
			input: "x = 1 # note\ny = 2",
			expected: []Token{
				{Type: TokenIdentifier, Value: "x", Position: 0, Line: 1, Column: 1},
				{Type: TokenAssign, Value: "=", Position: 2, Line: 1, Column: 3},
				{Type: TokenInt, Value: "1", Position: 4, Line: 1, Column: 5},
				{Type: TokenIdentifier, Value: "y", Position: 13, Line: 2, Column: 1},
				{Type: TokenAssign, Value: "=", Position: 15, Line: 2, Column: 3},
				{Type: TokenInt, Value: "2", Position: 17, Line: 2, Column: 5},
				{Type: TokenEOF, Value: "", Position: 18, Line: 2, Column: 6},
			},
		},
		{
			name:  "Comment-only input",
			input: "# only a comment",
			expected: []Token{
				{Type: TokenEOF, Value: "", Position: 16, Line: 1, Column: 17},
			},
		},
		{
			name:  "Empty set is not a comment",
			input: "#{}",
			expected: []Token{
				{Type: TokenHashBrace, Value: "#{", Position: 0, Line: 1, Column: 1},
				{Type: TokenRightBrace, Value: "}", Position: 2, Line: 1, Column: 3},
				{Type: TokenEOF, Value: "", Position: 3, Line: 1, Column: 4},
			},
		},
		{
			name:  "Empty input",
			input: "",
			expected: []Token{
				{Type: TokenEOF, Value: "", Position: 0, Line: 1, Column: 1},
			},
		},
		{
			name:  "Map-shaped braces",
			input: "{x: 1}",
			expected: []Token{
				{Type: TokenLeftBrace, Value: "{", Position: 0, Line: 1, Column: 1},
				{Type: TokenIdentifier, Value: "x", Position: 1, Line: 1, Column: 2},
				{Type: TokenColon, Value: ":", Position: 2, Line: 1, Column: 3},
				{Type: TokenInt, Value: "1", Position: 4, Line: 1, Column: 5},
				{Type: TokenRightBrace, Value: "}", Position: 5, Line: 1, Column: 6},
				{Type: TokenEOF, Value: "", Position: 6, Line: 1, Column: 7},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer(tt.input)

			for i, expected := range tt.expected {
				token := lexer.NextToken()

				if token.Type != expected.Type {
					t.Errorf("Token %d: expected type %s, got %s", i, expected.Type, token.Type)
				}
				if token.Value != expected.Value {
					t.Errorf("Token %d: expected value %q, got %q", i, expected.Value, token.Value)
				}
				if token.Position != expected.Position {
					t.Errorf("Token %d: expected position %d, got %d", i, expected.Position, token.Position)
				}
				if token.Line != expected.Line {
					t.Errorf("Token %d: expected line %d, got %d", i, expected.Line, token.Line)
				}
				if token.Column != expected.Column {
					t.Errorf("Token %d: expected column %d, got %d", i, expected.Column, token.Column)
				}
			}
		})
	}
}

func TestLexer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		errMsg   string
		tokenLen int
	}{
		{
			name:     "Valid expression",
			input:    "Math.sqrt(16)",
			tokenLen: 7,
		},
		{
			name:     "Valid assignment",
			input:    "x = 1",
			tokenLen: 4,
		},
		{
			name:     "Empty input",
			input:    "",
			tokenLen: 1,
		},
		{
			name:    "Illegal character",
			input:   "x @ y",
			wantErr: true,
			errMsg:  "illegal character '@'",
		},
		{
			name:    "Lone pipe",
			input:   "a | b",
			wantErr: true,
			errMsg:  "illegal character '|'",
		},
		{
			name:    "Lone exclamation mark",
			input:   "a ! b",
			wantErr: true,
			errMsg:  "illegal character '!'",
		},
		{
			name:    "Lone less-than",
			input:   "a < b",
			wantErr: true,
			errMsg:  "illegal character '<'",
		},
		{
			name:    "Dot without identifier context",
			input:   "1 . 2",
			wantErr: true,
			errMsg:  "illegal character '.'",
		},
		{
			name:    "Leading decimal point",
			input:   ".5",
			wantErr: true,
			errMsg:  "illegal character '.'",
		},
		{
			name:    "Unterminated string",
			input:   `"abc`,
			wantErr: true,
			errMsg:  "unterminated string literal",
		},
		{
			name:    "Unterminated f-string",
			input:   `f"abc {x}`,
			wantErr: true,
			errMsg:  "unterminated interpolated string literal",
		},
		{
			name:    "Semicolon is not part of the language",
			input:   "x = 1;",
			wantErr: true,
			errMsg:  "illegal character ';'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewLexer(tt.input).Tokenize()

			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got nil")
				}
				if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Expected error containing %q, got %q", tt.errMsg, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(tokens) != tt.tokenLen {
				t.Errorf("Expected %d tokens, got %d", tt.tokenLen, len(tokens))
			}
			if tokens[len(tokens)-1].Type != TokenEOF {
				t.Errorf("Expected trailing EOF token, got %s", tokens[len(tokens)-1].Type)
			}
		})
	}
}

func TestLexError_Error(t *testing.T) {
	err := &LexError{
		Message:  "illegal character '@'",
		Position: 4,
		Line:     2,
		Column:   3,
	}

	expected := "lex error at line 2, column 3: illegal character '@'"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}

func TestLexer_TokenizeErrorPosition(t *testing.T) {
	_, err := NewLexer("x = 1\ny = @").Tokenize()
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	lexErr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("Expected *LexError, got %T", err)
	}
	if lexErr.Line != 2 {
		t.Errorf("Expected line 2, got %d", lexErr.Line)
	}
	if lexErr.Column != 5 {
		t.Errorf("Expected column 5, got %d", lexErr.Column)
	}
	if lexErr.Position != 10 {
		t.Errorf("Expected position 10, got %d", lexErr.Position)
	}
}

func TestTokenType_String(t *testing.T) {
	tests := []struct {
		tokenType TokenType
		expected  string
	}{
		{TokenEOF, "EOF"},
		{TokenIllegal, "ILLEGAL"},
		{TokenInt, "INT"},
		{TokenFloat, "FLOAT"},
		{TokenString, "STRING"},
		{TokenFString, "FSTRING"},
		{TokenSymbol, "SYMBOL"},
		{TokenIdentifier, "IDENTIFIER"},
		{TokenLambdaParam, "LAMBDA_PARAM"},
		{TokenTypeName, "TYPE_NAME"},
		{TokenLibrary, "LIBRARY"},
		{TokenModule, "MODULE"},
		{TokenFunction, "FUNCTION"},
		{TokenIf, "IF"},
		{TokenElse, "ELSE"},
		{TokenReturn, "RETURN"},
		{TokenAssert, "ASSERT"},
		{TokenAs, "AS"},
		{TokenModuleRef, "MODULE_REF"},
		{TokenPipe, "PIPE"},
		{TokenEquals, "EQUALS"},
		{TokenNotEquals, "NOT_EQUALS"},
		{TokenLessEq, "LESS_EQ"},
		{TokenGreater, "GREATER"},
		{TokenAssign, "ASSIGN"},
		{TokenPlus, "PLUS"},
		{TokenMinus, "MINUS"},
		{TokenStar, "STAR"},
		{TokenPercent, "PERCENT"},
		{TokenCaret, "CARET"},
		{TokenRange, "RANGE"},
		{TokenTilde, "TILDE"},
		{TokenLeftParen, "LEFT_PAREN"},
		{TokenRightParen, "RIGHT_PAREN"},
		{TokenLeftBrace, "LEFT_BRACE"},
		{TokenRightBrace, "RIGHT_BRACE"},
		{TokenLeftBracket, "LEFT_BRACKET"},
		{TokenRightBracket, "RIGHT_BRACKET"},
		{TokenHashBrace, "HASH_BRACE"},
		{TokenComma, "COMMA"},
		{TokenColon, "COLON"},
		{TokenDot, "DOT"},
		{TokenType(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.tokenType.String(); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestToken_String(t *testing.T) {
	tests := []struct {
		token    Token
		expected string
	}{
		{Token{Type: TokenEOF, Value: ""}, "EOF"},
		{Token{Type: TokenIllegal, Value: "@"}, "ILLEGAL(@)"},
		{Token{Type: TokenIdentifier, Value: "data"}, "IDENTIFIER(data)"},
		{Token{Type: TokenSymbol, Value: "mean"}, "SYMBOL(mean)"},
		{Token{Type: TokenFString, Value: "sum: {a}"}, "FSTRING(sum: {a})"},
		{Token{Type: TokenRange, Value: ".."}, "RANGE(..)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.token.String(); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestIsValidNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"123", true},
		{"123.45", true},
		{"0", true},
		{"0.0", true},
		{"-3", true},
		{"-3.5", true},
		{"", false},
		{"   ", false},
		{"abc", false},
		{"12.34.56", false},
		{"12a", false},
		{"+3", false},
		{"-", false},
		{".", false},
		{"1.", false},
		{".5", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidNumber(tt.input); got != tt.expected {
				t.Errorf("IsValidNumber(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"data", true},
		{"DataFrame", true},
		{"_private", true},
		{"x1", true},
		{"total_sum", true},
		{"", false},
		{"123x", false},
		{"user-name", false},
		{"item name", false},
		{"module", false},
		{"int", false},
		{"__module__", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidIdentifier(tt.input); got != tt.expected {
				t.Errorf("IsValidIdentifier(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsKeyword(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"library", true},
		{"module", true},
		{"function", true},
		{"if", true},
		{"else", true},
		{"return", true},
		{"assert", true},
		{"as", true},
		{"__module__", true},
		{"Module", false},
		{"int", false},
		{"data", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsKeyword(tt.input); got != tt.expected {
				t.Errorf("IsKeyword(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsTypeName(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"int", true},
		{"posint", true},
		{"float", true},
		{"numeric", true},
		{"string", true},
		{"bool", true},
		{"Int", false},
		{"DataFrame", false},
		{"module", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsTypeName(tt.input); got != tt.expected {
				t.Errorf("IsTypeName(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestKeywords(t *testing.T) {
	expected := []string{"__module__", "as", "assert", "else", "function", "if", "library", "module", "return"}

	got := Keywords()
	if len(got) != len(expected) {
		t.Fatalf("Expected %d keywords, got %d: %v", len(expected), len(got), got)
	}
	for i, word := range expected {
		if got[i] != word {
			t.Errorf("Keyword %d: expected %q, got %q", i, word, got[i])
		}
	}
}

func TestTypeNames(t *testing.T) {
	expected := []string{"bool", "float", "int", "numeric", "posint", "string"}

	got := TypeNames()
	if len(got) != len(expected) {
		t.Fatalf("Expected %d type names, got %d: %v", len(expected), len(got), got)
	}
	for i, name := range expected {
		if got[i] != name {
			t.Errorf("Type name %d: expected %q, got %q", i, name, got[i])
		}
	}
}

func TestTokenizeInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		checkLen int
	}{
		{
			name:     "Simple expression",
			input:    "1 + 2",
			checkLen: 4,
		},
		{
			name:     "Module header",
			input:    "module T { x = 1 }",
			checkLen: 8,
		},
		{
			name:    "Invalid character",
			input:   "x & y",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := TokenizeInput(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.checkLen > 0 && len(tokens) != tt.checkLen {
				t.Errorf("Expected %d tokens, got %d", tt.checkLen, len(tokens))
			}
		})
	}
}

// Benchmarks

func BenchmarkLexer_Expression(b *testing.B) {
	input := `data |> normalize(:zscore) |> summarize(~ .x + .y, f"run {id}")`

	for i := 0; i < b.N; i++ {
		lexer := NewLexer(input)
		for {
			token := lexer.NextToken()
			if token.Type == TokenEOF {
				break
			}
		}
	}
}

func BenchmarkLexer_Module(b *testing.B) {
	input := `library Math as m
library Stats

module Pipeline {
  threshold = 0.5
  window = 1..10

  function score(frame, weight: float) {
    return frame |> m.scale(weight)
  }
}`

	for i := 0; i < b.N; i++ {
		lexer := NewLexer(input)
		for {
			token := lexer.NextToken()
			if token.Type == TokenEOF {
				break
			}
		}
	}
}
