// File: error_test.go
// Title: Core Error Tests
// Description: Tests for the structured Error type including construction,
//              wrapping, code/severity handling, and JSON marshaling.
// Author: The Rata Team
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10
//
// Change History:
// - 2026-02-10 v0.1.0: Initial implementation

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("tokenize failed")

	if err.Error() != "tokenize failed" {
		t.Errorf("Error() = %v, want %v", err.Error(), "tokenize failed")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("unexpected token %q at line %d", "}", 3)

	want := `unexpected token "}" at line 3`
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		if got := Wrap(nil, "context"); got != nil {
			t.Errorf("Wrap(nil) = %v, want nil", got)
		}
	})

	t.Run("standard error", func(t *testing.T) {
		base := errors.New("unterminated string")
		wrapped := Wrap(base, "parse request failed")

		want := "parse request failed: unterminated string"
		if wrapped.Error() != want {
			t.Errorf("Error() = %v, want %v", wrapped.Error(), want)
		}
		if !errors.Is(wrapped, base) {
			t.Error("errors.Is should find the wrapped cause")
		}
	})

	t.Run("preserves code and details", func(t *testing.T) {
		inner := New("bad brace").
			WithCode(CodeParseError).
			WithDetail("line", 4)
		wrapped := Wrap(inner, "check failed")

		if wrapped.Code() != CodeParseError {
			t.Errorf("Code() = %v, want %v", wrapped.Code(), CodeParseError)
		}
		if wrapped.Details()["line"] != 4 {
			t.Errorf("Details()[line] = %v, want 4", wrapped.Details()["line"])
		}
	})
}

func TestWrapf(t *testing.T) {
	base := errors.New("boom")
	wrapped := Wrapf(base, "parsing %s", "main.rata")

	want := "parsing main.rata: boom"
	if wrapped.Error() != want {
		t.Errorf("Error() = %v, want %v", wrapped.Error(), want)
	}
}

func TestWrapChainTruncation(t *testing.T) {
	var err error = New("root")
	for i := 0; i < MaxErrorChainDepth+5; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}

	rerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}

	if !strings.Contains(rerr.Error(), "chain truncated") {
		t.Errorf("expected truncation marker in %q", rerr.Error())
	}
	if truncated, _ := rerr.Details()["truncated"].(bool); !truncated {
		t.Error("expected truncated detail to be set")
	}
}

func TestWithCodeAutoSeverity(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want Severity
	}{
		{"syntax is routine", CodeParseError, SeverityLow},
		{"internal is high", CodeInternal, SeverityHigh},
		{"depth cap is medium", CodeDepthExceeded, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if got := err.Severity(); got != tt.want {
				t.Errorf("Severity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithCodeKeepsExplicitSeverity(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeParseError)
	if got := err.Severity(); got != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", got, SeverityCritical)
	}
}

func TestRootCause(t *testing.T) {
	base := errors.New("disk full")
	err := Wrap(Wrap(base, "history write failed"), "repl shutdown failed")

	if got := err.RootCause(); got != base {
		t.Errorf("RootCause() = %v, want %v", got, base)
	}
}

func TestErrorHelpers(t *testing.T) {
	rerr := New("x").WithCode(CodeLexError)
	plain := errors.New("plain")

	if !HasCode(rerr, CodeLexError) {
		t.Error("HasCode should match the set code")
	}
	if HasCode(plain, CodeLexError) {
		t.Error("HasCode should be false for plain errors")
	}
	if got := GetCode(rerr); got != CodeLexError {
		t.Errorf("GetCode() = %v, want %v", got, CodeLexError)
	}
	if got := GetCode(plain); got != CodeUnknown {
		t.Errorf("GetCode(plain) = %v, want %v", got, CodeUnknown)
	}
	if got := GetSeverity(plain); got != SeverityMedium {
		t.Errorf("GetSeverity(plain) = %v, want %v", got, SeverityMedium)
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("unexpected token").
		WithCode(CodeParseError).
		WithOperation("parser.ParseModule").
		WithRequestID("req-42").
		WithDetail("line", 7)

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal failed: %v", jerr)
	}

	var obj map[string]interface{}
	if jerr := json.Unmarshal(data, &obj); jerr != nil {
		t.Fatalf("Unmarshal failed: %v", jerr)
	}

	if obj["message"] != "unexpected token" {
		t.Errorf("message = %v, want %v", obj["message"], "unexpected token")
	}
	if obj["code"] != string(CodeParseError) {
		t.Errorf("code = %v, want %v", obj["code"], CodeParseError)
	}
	if obj["operation"] != "parser.ParseModule" {
		t.Errorf("operation = %v, want %v", obj["operation"], "parser.ParseModule")
	}
	if obj["request_id"] != "req-42" {
		t.Errorf("request_id = %v, want %v", obj["request_id"], "req-42")
	}
}

func TestErrorString(t *testing.T) {
	err := New("bad input").WithCode(CodeInvalidInput).WithOperation("cli.parse")
	s := err.String()

	for _, want := range []string{"Error: bad input", "Code: INVALID_INPUT", "Operation: cli.parse"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}
