// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/resume-screener/internal/features"
	"github.com/pdiddy/resume-screener/internal/vocab"
	"github.com/pdiddy/resume-screener/pkg/types"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Build the feature table from parsed profiles",
	Long: `Features reads all_parsed.json from the parsed directory and writes
resume_features.csv and resume_features.json to the features directory.
Every row has the same columns: file_name, name, email, phone,
years_experience and one skill_<phrase> flag per vocabulary phrase.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runFeatures(cfg, os.Stdout)
	},
}

func runFeatures(cfg types.Config, w io.Writer) error {
	v, err := vocab.FromConfig(cfg.Vocabulary)
	if err != nil {
		return &types.ConfigurationError{Setting: "vocabulary", Err: err}
	}
	_, err = features.BuildStage(cfg, v, zlog, w)
	return err
}

func addFeaturesFlags(cmd *cobra.Command) {
	d := types.Defaults()
	cmd.Flags().String("parsed-dir", d.Data.ParsedDir, "directory of parsed profiles")
	cmd.Flags().String("features-dir", d.Data.FeaturesDir, "directory for the feature table")
}

func init() {
	addFeaturesFlags(featuresCmd)
	rootCmd.AddCommand(featuresCmd)
}
