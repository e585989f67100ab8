// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/resume-screener/internal/rank"
	"github.com/pdiddy/resume-screener/pkg/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank parsed profiles against a job description",
	Long: `Rank scores every parsed profile against the job description with
TF-IDF cosine similarity, assigns a relevance tier (Highly Relevant,
Moderate, Irrelevant), joins each result with its feature row and writes
the results sorted by similarity.

The command exits non-zero when the parsed directory holds no profiles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runRank(cfg, os.Stdout)
	},
}

func runRank(cfg types.Config, w io.Writer) error {
	tiers, err := rank.TiersFromConfig(cfg.Ranking)
	if err != nil {
		return err
	}
	_, _, err = rank.RankStage(cfg, rank.NewEngine(tiers, zlog), w)
	return err
}

func addRankFlags(cmd *cobra.Command) {
	d := types.Defaults()
	cmd.Flags().String("job-description", "", "path to the job description text file (required)")
	cmd.Flags().String("parsed-dir", d.Data.ParsedDir, "directory of parsed profiles")
	cmd.Flags().String("feature-table", "", "feature table CSV to join (default: <features-dir>/resume_features.csv)")
	cmd.Flags().String("features-dir", d.Data.FeaturesDir, "directory of the feature table")
	cmd.Flags().String("output", d.Data.Output, "path for the ranked results JSON")
	cmd.Flags().Float64("high-threshold", d.Ranking.HighThreshold, "lowest similarity that is Highly Relevant")
	cmd.Flags().Float64("moderate-threshold", d.Ranking.ModerateThreshold, "lowest similarity that is Moderate")
}

func init() {
	addRankFlags(rankCmd)
	rootCmd.AddCommand(rankCmd)
}
