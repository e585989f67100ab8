// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Text is the extracted form of one document.
type Text struct {
	// Normalized is the whole document with control characters removed,
	// whitespace runs collapsed to one space, and ends trimmed.
	Normalized string

	// Lines is the line-structured view: each source line normalized on its
	// own, blank lines dropped. Line-oriented heuristics read this view.
	Lines []string
}

// NewText builds both views from raw decoded text.
func NewText(raw string) Text {
	return Text{
		Normalized: Normalize(raw),
		Lines:      SplitLines(raw),
	}
}

// DecodePlainText decodes data as UTF-8, replacing invalid sequences with
// U+FFFD rather than failing.
func DecodePlainText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

// Normalize removes NUL and other control characters, collapses every run of
// whitespace into a single space and trims both ends. Normalize is
// idempotent.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r), r >= '\x1c' && r <= '\x1f':
			// U+001C..U+001F are the separator controls, treated as spaces.
			pendingSpace = true
			continue
		case unicode.IsControl(r), r == '\uFEFF':
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// SplitLines breaks raw text on line and page breaks and normalizes each
// line, dropping lines that normalize to nothing.
func SplitLines(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == '\r' || r == '\f' || r == '\u2028' || r == '\u2029'
	})
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		if l := Normalize(f); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
