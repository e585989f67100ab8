// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"sort"
	"strings"

	"github.com/pdiddy/resume-screener/internal/vocab"
)

// ExtractSkills returns the vocabulary phrases contained in text, compared
// case-insensitively, sorted. It returns nil when none are found.
func ExtractSkills(text string, v vocab.Vocabulary) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, phrase := range v.Phrases() {
		if strings.Contains(lower, phrase) {
			found = append(found, phrase)
		}
	}
	sort.Strings(found)
	return found
}
