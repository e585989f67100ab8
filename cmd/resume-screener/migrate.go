// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/resume-screener/internal/store"
	"github.com/pdiddy/resume-screener/pkg/types"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Rewrite legacy per-document profiles into the current shape",
	Long: `Migrate converts per-document JSON files written by older versions
(single-element arrays, or objects carrying the full raw_text) into the
canonical profile object. Files already in the current shape are left
untouched. Run it once before ranking an old parsed directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		summary, err := store.Migrate(cfg.Data.ParsedDir, cfg.Extract.ExcerptChars, zlog, os.Stdout)
		if err != nil {
			return err
		}
		if summary.HasFailures() {
			return fmt.Errorf("%d file(s) could not be migrated", summary.Failed)
		}
		return nil
	},
}

func init() {
	d := types.Defaults()
	migrateCmd.Flags().String("parsed-dir", d.Data.ParsedDir, "directory of parsed profiles")
	migrateCmd.Flags().Int("excerpt-chars", d.Extract.ExcerptChars, "excerpt length for profiles migrated from raw_text")

	rootCmd.AddCommand(migrateCmd)
}
