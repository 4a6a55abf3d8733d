// File: interpolate.go
// Title: Interpolated-String Segmenter
// Description: Splits the raw body of an f-string token into literal chunks
//              and embedded expressions, parsing each embedded fragment
//              with the full expression grammar.
// Author: The Rata Team
// Version: v0.3.0
// Created: 2026-02-24
// Modified: 2026-03-02
//
// Change History:
// - 2026-02-24 v0.2.0: Initial segmenter with brace-depth tracking
// - 2026-03-02 v0.3.0: Absolute positions for fragments, end-of-fragment error normalization

package parser

import (
	"errors"
	"strings"

	"github.com/rata-lang/rata/ast"
)

// segment is one raw span of an interpolated string body: either literal
// text or the source text of an embedded expression. Positions are absolute
// locations in the original input.
type segment struct {
	expression bool
	text       string
	line       int
	column     int
	offset     int

	// Location of the '}' that closed an expression segment.
	closeLine   int
	closeColumn int
	closeOffset int
}

// parseInterpolatedString segments the raw body of an f-string token and
// recursively parses each embedded fragment. Every fragment must form a
// complete expression on its own.
func (r *run) parseInterpolatedString(tok Token) (ast.Expr, error) {
	segments, err := splitInterpolated(tok)
	if err != nil {
		return nil, err
	}

	parts := make([]ast.Expr, 0, len(segments))
	for _, seg := range segments {
		if !seg.expression {
			parts = append(parts, &ast.Literal{
				Kind:  ast.LiteralString,
				Raw:   seg.text,
				Value: decodeEscapes(seg.text),
				Pos:   ast.Position{Line: seg.line, Column: seg.column, Offset: seg.offset},
			})
			continue
		}

		expr, err := r.parseFragment(seg)
		if err != nil {
			return nil, err
		}
		parts = append(parts, expr)
	}

	// f"" still carries one empty literal chunk.
	if len(parts) == 0 {
		parts = append(parts, &ast.Literal{
			Kind:  ast.LiteralString,
			Raw:   "",
			Value: "",
			Pos:   tokenPos(tok),
		})
	}

	return &ast.InterpolatedString{Parts: parts, Pos: tokenPos(tok)}, nil
}

// parseFragment parses the source text of one embedded expression. The
// fragment lexer is seeded with the segment's absolute position so node
// positions and diagnostics point into the original input.
func (r *run) parseFragment(seg segment) (ast.Expr, error) {
	tokens, err := newLexerAt(unescapeFragment(seg.text), seg.line, seg.column-1, seg.offset).Tokenize()
	if err != nil {
		return nil, err
	}

	sub := &run{tokens: tokens, depth: r.depth, maxDepth: r.maxDepth}
	expr, fragErr := sub.parseExpression()
	if fragErr == nil && !sub.at(TokenEOF) {
		fragErr = sub.errorf("unexpected token in interpolated expression")
	}
	if fragErr != nil {
		return nil, normalizeFragmentError(fragErr, seg)
	}
	return expr, nil
}

// normalizeFragmentError rewrites a fragment failure that ran out of
// fragment tokens to point at the closing brace instead. The f-string
// itself is complete, so the error must not look like truncated input.
func normalizeFragmentError(err error, seg segment) error {
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Token.Type != TokenEOF {
		return err
	}

	closing := Token{
		Type:     TokenRightBrace,
		Value:    "}",
		Position: seg.closeOffset,
		Line:     seg.closeLine,
		Column:   seg.closeColumn,
	}
	return &ParseError{
		Message:  parseErr.Message,
		Position: closing.Position,
		Line:     closing.Line,
		Column:   closing.Column,
		Token:    closing,
	}
}

// unescapeFragment undoes the f-string quoting layer inside an embedded
// expression so nested string literals read as originally written. Only
// quote and backslash pairs belong to the outer layer; every other escape
// is owned by the fragment's own literals.
func unescapeFragment(text string) string {
	if !strings.Contains(text, "\\") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' && i+1 < len(text) && (text[i+1] == '"' || text[i+1] == '\\') {
			i++
		}
		b.WriteByte(text[i])
	}
	return b.String()
}

// splitInterpolated cuts the raw body of an f-string token into literal and
// expression segments. Brace depth is tracked so nested braces inside an
// embedded expression do not close the segment early; a '{' with no
// matching '}' before the end of the body is an error. A backslash keeps
// the following character literal, and a lone '}' is ordinary text.
func splitInterpolated(tok Token) ([]segment, error) {
	body := tok.Value

	// The body begins after the f" prefix on the token's own line.
	line := tok.Line
	column := tok.Column + 2
	offset := tok.Position + 2

	var segments []segment

	i := 0
	litStart := 0
	litLine, litColumn, litOffset := line, column, offset

	// step moves past body[i], keeping line accounting in sync with the
	// lexer's convention.
	step := func() {
		if body[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
		offset++
		i++
	}

	flushLiteral := func(end int) {
		if end > litStart {
			segments = append(segments, segment{
				text:   body[litStart:end],
				line:   litLine,
				column: litColumn,
				offset: litOffset,
			})
		}
	}

	for i < len(body) {
		switch {
		case body[i] == '\\' && i+1 < len(body):
			step()
			step()
		case body[i] == '{':
			flushLiteral(i)
			openLine, openColumn := line, column
			openOffset := offset
			step() // consume '{'

			seg := segment{
				expression: true,
				line:       line,
				column:     column,
				offset:     offset,
			}
			exprStart := i

			depth := 1
			for i < len(body) {
				if body[i] == '\\' && i+1 < len(body) {
					step()
					step()
					continue
				}
				if body[i] == '{' {
					depth++
				} else if body[i] == '}' {
					depth--
					if depth == 0 {
						break
					}
				}
				step()
			}
			if depth > 0 {
				return nil, &ParseError{
					Message:  "unterminated interpolation in f-string",
					Position: openOffset,
					Line:     openLine,
					Column:   openColumn,
					Token:    Token{Type: TokenLeftBrace, Value: "{", Position: openOffset, Line: openLine, Column: openColumn},
				}
			}

			seg.text = body[exprStart:i]
			seg.closeLine, seg.closeColumn = line, column
			seg.closeOffset = offset
			step() // consume '}'

			segments = append(segments, seg)
			litStart = i
			litLine, litColumn, litOffset = line, column, offset
		default:
			step()
		}
	}

	flushLiteral(len(body))
	return segments, nil
}
