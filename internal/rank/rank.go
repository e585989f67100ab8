// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank scores candidate profiles against a job description with
// TF-IDF cosine similarity, buckets the scores into relevance tiers and
// joins each result with its feature row.
package rank

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/resume-screener/internal/features"
	"github.com/pdiddy/resume-screener/internal/logger"
	"github.com/pdiddy/resume-screener/pkg/types"
)

// ErrNoProfiles is returned by the rank stage when the profile directory
// holds no profiles.
var ErrNoProfiles = errors.New("no profiles found")

// Engine ranks profiles. It is safe for concurrent use.
type Engine struct {
	tiers Tiers
	log   *zap.Logger
}

// NewEngine returns an Engine using tiers.
func NewEngine(tiers Tiers, log *zap.Logger) *Engine {
	return &Engine{tiers: tiers, log: logger.OrNop(log)}
}

// Tiers returns the engine's thresholds.
func (e *Engine) Tiers() Tiers { return e.tiers }

// ProfileText renders the textual form of p that is vectorized: the values
// of its scalar fields and skills separated by spaces.
func ProfileText(p types.CandidateProfile) string {
	parts := []string{p.FileName, p.Name, p.Contacts.Email, p.Contacts.Phone}
	if p.YearsExperience != nil {
		parts = append(parts, strconv.FormatFloat(*p.YearsExperience, 'f', -1, 64))
	}
	parts = append(parts, p.Skills...)
	parts = append(parts, p.RawTextExcerpt, p.Error)

	var b strings.Builder
	for _, s := range parts {
		if s == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s)
	}
	return b.String()
}

// Score vectorizes the job description as document 0 and the profiles as
// documents 1..N and returns one result per profile in input order.
func (e *Engine) Score(jobDescription string, profiles []types.CandidateProfile) []types.RankedResult {
	if len(profiles) == 0 {
		return []types.RankedResult{}
	}
	corpus := make([]string, 0, len(profiles)+1)
	corpus = append(corpus, jobDescription)
	for _, p := range profiles {
		corpus = append(corpus, ProfileText(p))
	}
	vectors := FitTransform(corpus)

	results := make([]types.RankedResult, len(profiles))
	for i, p := range profiles {
		sim := Cosine(vectors[0], vectors[i+1])
		results[i] = types.RankedResult{
			ResumeIndex:   i,
			FileName:      p.FileName,
			Similarity:    sim,
			RelevanceTier: e.tiers.Tier(sim),
		}
	}
	return results
}

// JoinStats reports how the feature join went.
type JoinStats struct {
	// ByFileName is false when the table has no file_name column and rows
	// were matched by position.
	ByFileName bool
	Joined     int
	Misses     int
}

// Rank scores the profiles, joins each result with its row in table when
// table is not nil, and sorts by descending similarity. Ties keep input
// order.
func (e *Engine) Rank(jobDescription string, profiles []types.CandidateProfile, table *features.Table) ([]types.RankedResult, JoinStats) {
	results := e.Score(jobDescription, profiles)

	var stats JoinStats
	if table != nil {
		stats = e.join(results, table)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	return results, stats
}

// join attaches feature rows to results, matching on file_name when the
// table carries it and by resume_index otherwise. A miss leaves Features
// nil.
func (e *Engine) join(results []types.RankedResult, table *features.Table) JoinStats {
	stats := JoinStats{ByFileName: table.HasColumn(types.ColumnFileName)}

	byName := make(map[string]int, len(table.Rows))
	if stats.ByFileName {
		for i := len(table.Rows) - 1; i >= 0; i-- {
			byName[table.Rows[i].FileName] = i
		}
	}

	for i := range results {
		r := &results[i]
		idx, ok := r.ResumeIndex, r.ResumeIndex < len(table.Rows)
		if stats.ByFileName {
			idx, ok = byName[r.FileName]
		}
		if !ok {
			stats.Misses++
			e.log.Warn("no feature row for ranked profile",
				zap.String("file", r.FileName), zap.Int("resume_index", r.ResumeIndex))
			continue
		}
		row := table.Rows[idx]
		if !stats.ByFileName {
			row.FileName = r.FileName
		}
		r.Features = &row
		stats.Joined++
	}
	return stats
}
