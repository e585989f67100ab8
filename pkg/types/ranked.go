// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RelevanceTier is the coarse bucket derived from a similarity score.
type RelevanceTier string

const (
	TierHighlyRelevant RelevanceTier = "Highly Relevant"
	TierModerate       RelevanceTier = "Moderate"
	TierIrrelevant     RelevanceTier = "Irrelevant"
)

// Rank orders tiers from least (0) to most relevant.
func (t RelevanceTier) Rank() int {
	switch t {
	case TierHighlyRelevant:
		return 2
	case TierModerate:
		return 1
	default:
		return 0
	}
}

// RankedResult scores one profile against a job description. ResumeIndex is
// the profile's position in the vectorized corpus for this run only; it is
// always stored next to FileName, which is the identity key.
type RankedResult struct {
	ResumeIndex   int
	FileName      string
	Similarity    float64
	RelevanceTier RelevanceTier

	// Features is the joined feature row, nil on a join miss.
	Features *FeatureRecord
}

// MarshalJSON flattens the joined feature columns next to the score fields.
func (r RankedResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	fs := []field{
		{"resume_index", r.ResumeIndex},
		{ColumnFileName, r.FileName},
		{"similarity", r.Similarity},
		{"relevance_tier", r.RelevanceTier},
	}
	if r.Features != nil {
		fs = append(fs, r.Features.fields(false)...)
	}
	if err := writeFields(&buf, fs); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores a result written by MarshalJSON, rebuilding Features
// when any feature column is present.
func (r *RankedResult) UnmarshalJSON(data []byte) error {
	*r = RankedResult{}
	var feat FeatureRecord
	joined := false

	err := decodeFlatObject(data, func(key string, value any) error {
		switch key {
		case "resume_index":
			f, err := floatValue(value)
			if err != nil {
				return fmt.Errorf("resume_index: %w", err)
			}
			r.ResumeIndex = int(f)
		case ColumnFileName:
			r.FileName = stringValue(value)
		case "similarity":
			f, err := floatValue(value)
			if err != nil {
				return fmt.Errorf("similarity: %w", err)
			}
			r.Similarity = f
		case "relevance_tier":
			r.RelevanceTier = RelevanceTier(stringValue(value))
		default:
			ok, err := feat.SetField(key, value)
			if err != nil {
				return err
			}
			joined = joined || ok
		}
		return nil
	})
	if err != nil {
		return err
	}
	if joined {
		feat.FileName = r.FileName
		r.Features = &feat
	}
	return nil
}

// compile-time checks
var (
	_ json.Marshaler   = RankedResult{}
	_ json.Unmarshaler = (*RankedResult)(nil)
	_ json.Marshaler   = FeatureRecord{}
	_ json.Unmarshaler = (*FeatureRecord)(nil)
)
