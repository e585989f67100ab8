// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package features projects candidate profiles onto the fixed-schema
// feature table: identity columns, years of experience and one flag per
// vocabulary phrase.
package features

import (
	"strings"

	"github.com/pdiddy/resume-screener/internal/vocab"
	"github.com/pdiddy/resume-screener/pkg/types"
)

// Build returns the feature row for p. Missing values take their defaults:
// zero years, empty strings, unset flags. Skills outside v are ignored.
func Build(p types.CandidateProfile, v vocab.Vocabulary) types.FeatureRecord {
	r := types.FeatureRecord{
		FileName: p.FileName,
		Name:     p.Name,
		Email:    p.Contacts.Email,
		Phone:    p.Contacts.Phone,
	}
	if p.YearsExperience != nil {
		r.YearsExperience = *p.YearsExperience
	}

	have := make(map[string]bool, len(p.Skills))
	for _, s := range p.Skills {
		have[strings.ToLower(s)] = true
	}
	phrases := v.Phrases()
	r.Skills = make([]types.SkillFlag, len(phrases))
	for i, phrase := range phrases {
		r.Skills[i] = types.SkillFlag{Skill: phrase, Present: have[phrase]}
	}
	return r
}

// BuildAll builds one row per profile, in order.
func BuildAll(profiles []types.CandidateProfile, v vocab.Vocabulary) []types.FeatureRecord {
	rows := make([]types.FeatureRecord, len(profiles))
	for i, p := range profiles {
		rows[i] = Build(p, v)
	}
	return rows
}

// Columns returns the full column list for v in schema order.
func Columns(v vocab.Vocabulary) []string {
	return append(append([]string{}, types.BaseColumns...), v.Columns()...)
}
