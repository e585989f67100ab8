// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vocab defines the closed skill vocabulary shared by field
// extraction and feature building. A Vocabulary is immutable once built and
// is passed to each component at construction.
package vocab

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/resume-screener/pkg/types"
)

// DefaultVersion identifies the built-in phrase list. Feature tables record
// it so a changed vocabulary is detectable as schema drift.
const DefaultVersion = "salesforce-v1"

var defaultPhrases = []string{
	"salesforce", "apex", "visualforce", "soql", "sosl", "lwc", "lightning", "lightning web components",
	"triggers", "flows", "process builder", "sales cloud", "service cloud", "marketing cloud",
	"community cloud", "experience cloud", "cpq", "field service", "einstein", "integration", "mulesoft",
	"heroku", "rest api", "soap api", "oauth", "salesforce admin", "platform developer", "ci/cd",
	"devops", "git", "bitbucket", "jira", "test classes", "unit testing", "sfdx", "data loader",
	"profiles", "permission sets", "sharing rules", "validation rules", "workflow", "reports", "dashboards",
	"objects", "fields", "page layouts", "record types", "approval process",
}

// Vocabulary is an ordered, deduplicated set of lowercase skill phrases.
type Vocabulary struct {
	version string
	phrases []string
	index   map[string]int
}

// Default returns the built-in vocabulary.
func Default() Vocabulary {
	v, err := New(DefaultVersion, defaultPhrases)
	if err != nil {
		panic(err) // built-in list is static
	}
	return v
}

// New builds a vocabulary from phrases, lowercasing and trimming each one and
// dropping duplicates while keeping first-seen order.
func New(version string, phrases []string) (Vocabulary, error) {
	if strings.TrimSpace(version) == "" {
		return Vocabulary{}, errors.New("vocabulary version is required")
	}
	v := Vocabulary{
		version: version,
		phrases: make([]string, 0, len(phrases)),
		index:   make(map[string]int, len(phrases)),
	}
	for _, p := range phrases {
		p = strings.ToLower(strings.Join(strings.Fields(p), " "))
		if p == "" {
			continue
		}
		if _, dup := v.index[p]; dup {
			continue
		}
		v.index[p] = len(v.phrases)
		v.phrases = append(v.phrases, p)
	}
	if len(v.phrases) == 0 {
		return Vocabulary{}, fmt.Errorf("vocabulary %q has no phrases", version)
	}
	return v, nil
}

// FromConfig returns the configured vocabulary, or the default when the
// config lists no skills.
func FromConfig(cfg types.VocabularyConfig) (Vocabulary, error) {
	if len(cfg.Skills) == 0 {
		return Default(), nil
	}
	version := cfg.Version
	if version == "" {
		version = "custom"
	}
	return New(version, cfg.Skills)
}

// Version returns the vocabulary identifier.
func (v Vocabulary) Version() string { return v.version }

// Len returns the number of phrases.
func (v Vocabulary) Len() int { return len(v.phrases) }

// Phrases returns a copy of the phrases in vocabulary order.
func (v Vocabulary) Phrases() []string {
	out := make([]string, len(v.phrases))
	copy(out, v.phrases)
	return out
}

// Contains reports whether phrase belongs to the vocabulary.
func (v Vocabulary) Contains(phrase string) bool {
	_, ok := v.index[phrase]
	return ok
}

// Columns returns the feature-table skill columns in vocabulary order.
func (v Vocabulary) Columns() []string {
	cols := make([]string, len(v.phrases))
	for i, p := range v.phrases {
		cols[i] = types.SkillColumnPrefix + p
	}
	return cols
}
