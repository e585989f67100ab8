// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses whitespace runs", "Jane   Doe\n\n\tApex", "Jane Doe Apex"},
		{"trims ends", "  \n hello \t ", "hello"},
		{"removes null bytes", "Sales\x00force", "Salesforce"},
		{"removes control characters", "a\x07b\x1bc", "abc"},
		{"control between spaces", "a \x00 b", "a b"},
		{"separator controls become spaces", "a\x1cb\x1dc\x1e\x1fd", "a b c d"},
		{"unicode spaces", "a\u00a0\u2003b", "a b"},
		{"byte order mark", "\uFEFFResume", "Resume"},
		{"empty", "", ""},
		{"only whitespace", " \n\t ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

var doubleSpace = regexp.MustCompile(`\s{2,}`)

func TestNormalize_Invariants(t *testing.T) {
	inputs := []string{
		"Jane Doe\r\nSenior Salesforce Developer\f\fPage 2",
		"\x00\x00  lots\t\t\tof\n\n\nspace  \x00",
		"tabs\tand\vvertical\ftabs",
		strings.Repeat("word \x00\n", 50),
	}
	for _, in := range inputs {
		out := Normalize(in)
		assert.NotContains(t, out, "\x00")
		assert.False(t, doubleSpace.MatchString(out), "double whitespace in %q", out)
		assert.Equal(t, out, Normalize(out), "normalization must be idempotent")
		assert.Equal(t, strings.TrimSpace(out), out)
	}
}

func TestSplitLines(t *testing.T) {
	raw := "  Jane Doe \r\n\r\nSalesforce   Developer\n\x00\nPage\ftwo"
	assert.Equal(t, []string{"Jane Doe", "Salesforce Developer", "Page", "two"}, SplitLines(raw))
}

func TestDecodePlainText_ReplacesInvalidBytes(t *testing.T) {
	got := DecodePlainText([]byte("caf\xe9 apex"))
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "caf\uFFFD apex", got)
}

func TestNewText(t *testing.T) {
	text := NewText("Resume\nJane Doe\n\nEmail: jane@example.com")
	assert.Equal(t, "Resume Jane Doe Email: jane@example.com", text.Normalized)
	assert.Equal(t, []string{"Resume", "Jane Doe", "Email: jane@example.com"}, text.Lines)
}
