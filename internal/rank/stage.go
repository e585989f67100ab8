// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/pdiddy/resume-screener/internal/features"
	"github.com/pdiddy/resume-screener/internal/store"
	"github.com/pdiddy/resume-screener/pkg/types"
)

// StageSummary holds tier counts from a rank run.
type StageSummary struct {
	Profiles       int
	HighlyRelevant int
	Moderate       int
	Irrelevant     int
	Join           JoinStats
	TableFound     bool
}

// FeatureTablePath returns the CSV the rank stage joins against.
func FeatureTablePath(cfg types.DataConfig) string {
	if cfg.FeatureTable != "" {
		return cfg.FeatureTable
	}
	return features.CSVPath(cfg.FeaturesDir)
}

// RankStage ranks the profiles in cfg.Data.ParsedDir against the job
// description at cfg.Data.JobDescription and writes the results to
// cfg.Data.Output. Input paths are checked before anything is written. When
// no profiles exist it returns ErrNoProfiles and leaves any earlier output
// in place.
func RankStage(cfg types.Config, eng *Engine, w io.Writer) (StageSummary, []types.RankedResult, error) {
	jd, err := readJobDescription(cfg.Data.JobDescription)
	if err != nil {
		return StageSummary{}, nil, err
	}

	profiles, err := store.LoadProfiles(cfg.Data.ParsedDir)
	if err != nil {
		return StageSummary{}, nil, err
	}
	if len(profiles) == 0 {
		eng.log.Warn("no profiles to rank", zap.String("dir", cfg.Data.ParsedDir))
		return StageSummary{}, nil, fmt.Errorf("%s: %w", cfg.Data.ParsedDir, ErrNoProfiles)
	}

	var summary StageSummary
	var table *features.Table
	tablePath := FeatureTablePath(cfg.Data)
	switch t, err := features.LoadCSV(tablePath); {
	case err == nil:
		table = &t
		summary.TableFound = true
	case errors.Is(err, os.ErrNotExist):
		eng.log.Warn("feature table not found, skipping join", zap.String("path", tablePath))
		fmt.Fprintf(w, "warning: feature table %s not found, skipping join\n", tablePath)
	default:
		eng.log.Warn("feature table unreadable, skipping join", zap.String("path", tablePath), zap.Error(err))
		fmt.Fprintf(w, "warning: feature table unreadable (%v), skipping join\n", err)
	}

	results, stats := eng.Rank(jd, profiles, table)
	summary.Profiles = len(results)
	summary.Join = stats
	for _, r := range results {
		switch r.RelevanceTier {
		case types.TierHighlyRelevant:
			summary.HighlyRelevant++
		case types.TierModerate:
			summary.Moderate++
		default:
			summary.Irrelevant++
		}
	}

	if err := store.WriteRanked(cfg.Data.Output, results); err != nil {
		return StageSummary{}, nil, err
	}

	if stats.Misses > 0 {
		fmt.Fprintf(w, "warning: %d ranked profiles had no feature row\n", stats.Misses)
	}
	fmt.Fprintf(w, "Ranked %d resumes: %d highly relevant, %d moderate, %d irrelevant\n",
		summary.Profiles, summary.HighlyRelevant, summary.Moderate, summary.Irrelevant)
	fmt.Fprintf(w, "Results saved to %s\n", cfg.Data.Output)
	return summary, results, nil
}

func readJobDescription(path string) (string, error) {
	if path == "" {
		return "", &types.ConfigurationError{
			Setting: "data.job_description",
			Err:     errors.New("a job description file is required"),
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &types.ConfigurationError{Setting: "data.job_description", Path: path, Err: err}
	}
	return string(data), nil
}
