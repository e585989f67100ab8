// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report prepares ranked results for reading: filtering by score,
// a text table and the distribution of skills among the shown candidates.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/resume-screener/pkg/types"
)

// Defaults for the report filters.
const (
	DefaultMinSimilarity = 0.3
	DefaultTop           = 20
)

// Filter keeps results scoring at least minSimilarity, ordered by
// descending similarity, and truncates to top entries when top > 0.
func Filter(results []types.RankedResult, minSimilarity float64, top int) []types.RankedResult {
	var out []types.RankedResult
	for _, r := range results {
		if r.Similarity >= minSimilarity {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Similarity > out[j].Similarity })
	if top > 0 && len(out) > top {
		out = out[:top]
	}
	return out
}

// SkillCount is the number of shown candidates having one skill.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// SkillDistribution counts skills across entries. Skills come from the
// joined feature row; entries without one fall back to the profile with
// the same file name in profiles, which may be nil. The result is ordered
// by descending count, then skill.
func SkillDistribution(entries []types.RankedResult, profiles map[string]types.CandidateProfile) []SkillCount {
	counts := make(map[string]int)
	for _, e := range entries {
		if e.Features != nil {
			for _, s := range e.Features.Skills {
				if s.Present {
					counts[s.Skill]++
				}
			}
			continue
		}
		if p, ok := profiles[e.FileName]; ok {
			for _, s := range p.Skills {
				counts[s]++
			}
		}
	}

	out := make([]SkillCount, 0, len(counts))
	for skill, n := range counts {
		out = append(out, SkillCount{Skill: skill, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Skill < out[j].Skill
	})
	return out
}

// WriteTable prints entries as an aligned text table.
func WriteTable(w io.Writer, entries []types.RankedResult) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No results above the similarity threshold.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-30s  %-10s  %-15s  %-24s  %s\n",
		"Rank", "File", "Similarity", "Tier", "Name", "Years")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for i, e := range entries {
		name, years := "", ""
		if e.Features != nil {
			name = e.Features.Name
			years = strconv.FormatFloat(e.Features.YearsExperience, 'f', -1, 64)
		}
		fmt.Fprintf(w, "%-4d  %-30s  %-10.4f  %-15s  %-24s  %s\n",
			i+1, truncate(e.FileName, 30), e.Similarity, e.RelevanceTier, truncate(name, 24), years)
	}
	fmt.Fprintf(w, "\n%d results\n", len(entries))
}

// WriteDistribution prints skill counts with a bar per skill.
func WriteDistribution(w io.Writer, counts []SkillCount) {
	if len(counts) == 0 {
		fmt.Fprintln(w, "No skills extracted to display.")
		return
	}
	width := 0
	for _, c := range counts {
		width = max(width, len(c.Skill))
	}
	for _, c := range counts {
		fmt.Fprintf(w, "%-*s  %3d  %s\n", width, c.Skill, c.Count, strings.Repeat("#", c.Count))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
