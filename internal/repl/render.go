package repl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rata-lang/rata/ast"
	"github.com/rata-lang/rata/parser"
	ratastringx "github.com/rata-lang/rata/utils/stringx"
)

const (
	ansiRed   = "\x1b[31m"
	ansiBlue  = "\x1b[94m"
	ansiReset = "\x1b[0m"
)

// paint wraps s in the given ANSI color when color output is enabled.
func (r *REPL) paint(s, color string) string {
	if !r.color {
		return s
	}
	return color + s + ansiReset
}

// renderTokens formats the token stream of input as an aligned table with
// one token per line.
func (r *REPL) renderTokens(input string) string {
	tokens, err := parser.TokenizeInput(input)
	if err != nil {
		return r.renderError(input, err) + "\n"
	}

	var b strings.Builder
	for _, tok := range tokens {
		pos := fmt.Sprintf("%d:%d", tok.Line, tok.Column)
		b.WriteString(ratastringx.PadRight(pos, 8, ' '))
		b.WriteString(ratastringx.PadRight(tok.Type.String(), 14, ' '))
		b.WriteString(tok.Value)
		b.WriteString("\n")
	}
	return b.String()
}

// renderTree formats node as an indented syntax tree.
func renderTree(node ast.Node) string {
	tv := ast.NewTreeVisitor()
	node.Accept(tv)
	return tv.String()
}

// renderError formats a lex or parse failure. When the error carries a
// source position the offending line is echoed with a caret under the
// fault column.
func (r *REPL) renderError(src string, err error) string {
	msg := r.paint(err.Error(), ansiRed)

	line, column := faultPosition(err)
	if line <= 0 || column <= 0 {
		return msg
	}
	lines := ratastringx.SplitLines(src)
	if line > len(lines) {
		return msg
	}

	var b strings.Builder
	b.WriteString(msg)
	b.WriteString("\n  ")
	b.WriteString(lines[line-1])
	b.WriteString("\n  ")
	b.WriteString(ratastringx.PadLeft("^", column, ' '))
	return b.String()
}

// faultPosition extracts line and column from lex and parse errors. Both
// are zero for other error kinds.
func faultPosition(err error) (int, int) {
	var lexErr *parser.LexError
	if errors.As(err, &lexErr) {
		return lexErr.Line, lexErr.Column
	}
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Line, parseErr.Column
	}
	return 0, 0
}
