// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements string operations that extend the Go standard
//              library. Focuses on Unicode safety and low-allocation paths
//              for hot spots such as token text interning and source line
//              rendering.
// Author: The Rata Team
// Version: v0.1.0
// Created: 2026-02-12
// Modified: 2026-02-12
//
// Change History:
// - 2026-02-12 v0.1.0: Initial implementation with core utilities

package stringx

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Interning cache for frequently repeated strings such as keywords,
// operators, and identifier names seen while tokenizing.
var (
	internCache = make(map[string]string)
	internMu    sync.RWMutex
)

// Intern returns the canonical representation of a string to reduce memory
// usage. Tokenizing large sources produces the same identifier and keyword
// text over and over, interning collapses those copies into one.
func Intern(s string) string {
	if s == "" {
		return ""
	}

	internMu.RLock()
	if interned, exists := internCache[s]; exists {
		internMu.RUnlock()
		return interned
	}
	internMu.RUnlock()

	internMu.Lock()
	// Double-check after acquiring write lock
	if interned, exists := internCache[s]; exists {
		internMu.Unlock()
		return interned
	}

	// Bound the cache so pathological sources cannot grow it forever
	if len(internCache) >= 1000 {
		for k := range internCache {
			delete(internCache, k)
			if len(internCache) <= 500 {
				break
			}
		}
	}

	// Copy so the cache owns its memory independent of the caller's buffer
	interned := string([]byte(s))
	internCache[s] = interned
	internMu.Unlock()

	return interned
}

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotEmpty returns true if the string is not empty.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsNotBlank returns true if the string contains non-whitespace characters.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate truncates a string to the specified length, adding an ellipsis if
// truncated. This function is Unicode-aware and will not break multi-byte
// characters. If the string is shorter than maxLen, it returns the original.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}

	contentLen := maxLen - ellipsisLen
	return string([]rune(s)[:contentLen]) + ellipsis
}

// isASCIIString checks if a string contains only ASCII characters
func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 128 {
			return false
		}
	}
	return true
}

// isASCIIRune checks if a rune is ASCII
func isASCIIRune(r rune) bool {
	return r < 128
}

// PadLeft pads the string s to the specified width with the given pad
// character. If the string is already longer than width, it returns the
// original string.
func PadLeft(s string, width int, pad rune) string {
	// Fast path for ASCII-only strings and pad characters
	if isASCIIString(s) && isASCIIRune(pad) {
		if len(s) >= width {
			return s
		}

		result := make([]byte, width)
		padCount := width - len(s)

		for i := 0; i < padCount; i++ {
			result[i] = byte(pad)
		}

		copy(result[padCount:], s)

		return string(result)
	}

	// Unicode fallback path
	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}

	var builder strings.Builder
	padCount := width - runeCount
	builder.Grow(width * 4)

	for i := 0; i < padCount; i++ {
		builder.WriteRune(pad)
	}
	builder.WriteString(s)

	return builder.String()
}

// PadRight pads the string s to the specified width with the given pad
// character. If the string is already longer than width, it returns the
// original string.
func PadRight(s string, width int, pad rune) string {
	// Fast path for ASCII-only strings and pad characters
	if isASCIIString(s) && isASCIIRune(pad) {
		if len(s) >= width {
			return s
		}

		result := make([]byte, width)

		copy(result, s)

		for i := len(s); i < width; i++ {
			result[i] = byte(pad)
		}

		return string(result)
	}

	// Unicode fallback path
	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}

	var builder strings.Builder
	padCount := width - runeCount
	builder.Grow(width * 4)

	builder.WriteString(s)
	for i := 0; i < padCount; i++ {
		builder.WriteRune(pad)
	}

	return builder.String()
}

// SplitLines splits a string into lines, handling different line ending
// conventions. It properly handles \n, \r\n, and \r line endings.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	return strings.Split(s, "\n")
}

// Indent prefixes every line of s with the given prefix. Empty trailing
// lines keep their position but are not prefixed, so indenting a block that
// ends in a newline does not produce trailing whitespace.
func Indent(s, prefix string) string {
	if s == "" {
		return s
	}

	lines := strings.Split(s, "\n")
	var builder strings.Builder
	builder.Grow(len(s) + len(prefix)*len(lines))

	for i, line := range lines {
		if i > 0 {
			builder.WriteByte('\n')
		}
		if line == "" {
			continue
		}
		builder.WriteString(prefix)
		builder.WriteString(line)
	}

	return builder.String()
}

// FirstNonBlank returns the first non-blank string from the provided
// strings. Useful for resolving a value from a flag, environment, and
// default chain.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}
