// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"unicode"
)

// headerPhrases are document titles that look like names but are not.
var headerPhrases = map[string]bool{
	"resume":           true,
	"curriculum vitae": true,
	"cv":               true,
	"profile":          true,
	"summary":          true,
}

// GuessName returns the first line that reads like a person's name: one to
// four tokens made only of letters, spaces, hyphens, periods and
// apostrophes, and not a document header. It returns "" when no line
// qualifies.
func GuessName(lines []string) string {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || !nameChars(line) {
			continue
		}
		if n := len(strings.Fields(line)); n < 1 || n > 4 {
			continue
		}
		if headerPhrases[strings.ToLower(line)] {
			continue
		}
		return line
	}
	return ""
}

func nameChars(line string) bool {
	for _, r := range line {
		switch {
		case unicode.IsLetter(r), unicode.IsSpace(r):
		case r == '-', r == '.', r == '\'':
		default:
			return false
		}
	}
	return true
}
