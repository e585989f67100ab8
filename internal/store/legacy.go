// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/pdiddy/resume-screener/internal/logger"
	"github.com/pdiddy/resume-screener/pkg/types"
)

// legacyProfile accepts every shape older parse runs produced: the full
// text under raw_text, contacts either nested or flattened to the top
// level, and numbers that may have been written as strings.
type legacyProfile struct {
	FileName        string         `json:"file_name"`
	Name            string         `json:"name"`
	Contacts        legacyContacts `json:"contacts"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	YearsExperience *float64       `json:"years_experience"`
	Skills          []string       `json:"skills"`
	RawText         string         `json:"raw_text"`
	RawTextExcerpt  string         `json:"raw_text_excerpt"`
	Error           string         `json:"error"`
}

type legacyContacts struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// MigrateSummary holds counts from a migration run.
type MigrateSummary struct {
	Migrated  int
	Unchanged int
	Failed    int
}

// Total returns the number of files examined.
func (s MigrateSummary) Total() int {
	return s.Migrated + s.Unchanged + s.Failed
}

// HasFailures reports whether any file could not be migrated.
func (s MigrateSummary) HasFailures() bool {
	return s.Failed > 0
}

// Migrate rewrites legacy per-document files in dir into the canonical bare
// object. A file is legacy when it is a single-element array or carries the
// raw_text key. Canonical files are left untouched. excerptChars bounds the
// excerpt built from a legacy raw_text.
func Migrate(dir string, excerptChars int, log *zap.Logger, w io.Writer) (MigrateSummary, error) {
	log = logger.OrNop(log)
	names, err := ProfileFiles(dir)
	if err != nil {
		return MigrateSummary{}, &types.ConfigurationError{Setting: "data.parsed_dir", Path: dir, Err: err}
	}

	var summary MigrateSummary
	for _, name := range names {
		path := filepath.Join(dir, name)
		p, legacy, err := readAnyShape(path, excerptChars)
		if err != nil {
			fmt.Fprintf(w, "failed:   %s (%v)\n", name, err)
			log.Warn("legacy profile not migrated", zap.String("file", name), zap.Error(err))
			summary.Failed++
			continue
		}
		if !legacy {
			summary.Unchanged++
			continue
		}
		if err := WriteJSON(path, p); err != nil {
			fmt.Fprintf(w, "failed:   %s (%v)\n", name, err)
			summary.Failed++
			continue
		}
		fmt.Fprintf(w, "migrated: %s\n", name)
		log.Warn("migrated legacy profile", zap.String("file", name))
		summary.Migrated++
	}

	fmt.Fprintf(w, "\nMigration complete: %d migrated, %d unchanged, %d failed (total %d)\n",
		summary.Migrated, summary.Unchanged, summary.Failed, summary.Total())
	return summary, nil
}

// readAnyShape decodes path whatever its shape and reports whether it needs
// rewriting.
func readAnyShape(path string, excerptChars int) (types.CandidateProfile, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.CandidateProfile{}, false, err
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return types.CandidateProfile{}, false, fmt.Errorf("decoding: %w", err)
	}

	legacy := false
	if arr, ok := raw.([]any); ok {
		if len(arr) != 1 {
			return types.CandidateProfile{}, false, fmt.Errorf("%w holds %d records, want 1", ErrLegacyShape, len(arr))
		}
		raw = arr[0]
		legacy = true
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return types.CandidateProfile{}, false, fmt.Errorf("expected a JSON object, got %T", raw)
	}
	if _, ok := obj["raw_text"]; ok {
		legacy = true
	}

	p, err := decodeLegacyProfile(obj, excerptChars)
	if err != nil {
		return types.CandidateProfile{}, false, err
	}
	return p, legacy, nil
}

func decodeLegacyProfile(obj map[string]any, excerptChars int) (types.CandidateProfile, error) {
	var lp legacyProfile
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &lp,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return types.CandidateProfile{}, err
	}
	if err := dec.Decode(obj); err != nil {
		return types.CandidateProfile{}, fmt.Errorf("decoding legacy profile: %w", err)
	}

	if lp.Error != "" {
		return types.CandidateProfile{FileName: lp.FileName, Error: lp.Error}, nil
	}
	p := types.CandidateProfile{
		FileName:        lp.FileName,
		Name:            lp.Name,
		Contacts:        types.Contacts{Email: lp.Contacts.Email, Phone: lp.Contacts.Phone},
		YearsExperience: lp.YearsExperience,
		Skills:          lp.Skills,
		RawTextExcerpt:  lp.RawTextExcerpt,
	}
	if p.Contacts.Email == "" {
		p.Contacts.Email = lp.Email
	}
	if p.Contacts.Phone == "" {
		p.Contacts.Phone = lp.Phone
	}
	if p.RawTextExcerpt == "" {
		p.RawTextExcerpt = Excerpt(lp.RawText, excerptChars)
	}
	if len(p.Skills) == 0 {
		p.Skills = nil
	}
	return p, nil
}

// Excerpt returns the first n runes of s.
func Excerpt(s string, n int) string {
	if n <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
