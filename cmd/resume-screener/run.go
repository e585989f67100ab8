// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/resume-screener/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run parse, features and rank in sequence",
	Long: `Run executes the full pipeline: parse the resume directory, build the
feature table, then rank against the job description. A stage failure
stops the pipeline; outputs of earlier stages are kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out := os.Stdout

		fmt.Fprintln(out, "==> parse")
		if err := runParse(cmd.Context(), cfg, false, out); err != nil {
			return fmt.Errorf("parse: %w", err)
		}
		fmt.Fprintln(out, "\n==> features")
		if err := runFeatures(cfg, out); err != nil {
			return fmt.Errorf("features: %w", err)
		}
		fmt.Fprintln(out, "\n==> rank")
		if err := runRank(cfg, out); err != nil {
			return fmt.Errorf("rank: %w", err)
		}
		return nil
	},
}

func init() {
	d := types.Defaults()
	addParseFlags(runCmd)
	runCmd.Flags().String("features-dir", d.Data.FeaturesDir, "directory for the feature table")
	runCmd.Flags().String("job-description", "", "path to the job description text file (required)")
	runCmd.Flags().String("output", d.Data.Output, "path for the ranked results JSON")
	runCmd.Flags().Float64("high-threshold", d.Ranking.HighThreshold, "lowest similarity that is Highly Relevant")
	runCmd.Flags().Float64("moderate-threshold", d.Ranking.ModerateThreshold, "lowest similarity that is Moderate")

	rootCmd.AddCommand(runCmd)
}
