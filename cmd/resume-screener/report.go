// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/resume-screener/internal/report"
	"github.com/pdiddy/resume-screener/internal/store"
	"github.com/pdiddy/resume-screener/pkg/types"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the top ranked candidates and their skill distribution",
	Long: `Report reads the ranked results and prints the candidates scoring at
least --min-similarity, best first, limited to --top entries, followed by
the distribution of skills among the shown candidates.`,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	minSim, _ := cmd.Flags().GetFloat64("min-similarity")
	top, _ := cmd.Flags().GetInt("top")
	format, _ := cmd.Flags().GetString("format")

	results, err := store.ReadRanked(cfg.Data.Output)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no results at %s: run the rank stage first", cfg.Data.Output)
		}
		return err
	}
	shown := report.Filter(results, minSim, top)

	profiles := make(map[string]types.CandidateProfile)
	if loaded, err := store.LoadProfiles(cfg.Data.ParsedDir); err == nil {
		for _, p := range loaded {
			profiles[p.FileName] = p
		}
	} else {
		zlog.Debug("profiles unavailable for skill fallback", zap.Error(err))
	}
	dist := report.SkillDistribution(shown, profiles)

	switch format {
	case "table", "":
		report.WriteTable(os.Stdout, shown)
		fmt.Println("\nSkill distribution")
		report.WriteDistribution(os.Stdout, dist)
	case "json":
		if shown == nil {
			shown = []types.RankedResult{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Results []types.RankedResult `json:"results"`
			Skills  []report.SkillCount  `json:"skills"`
		}{shown, dist})
	default:
		return fmt.Errorf("unsupported format %q: use table or json", format)
	}
	return nil
}

func init() {
	d := types.Defaults()
	reportCmd.Flags().String("output", d.Data.Output, "ranked results JSON to read")
	reportCmd.Flags().String("parsed-dir", d.Data.ParsedDir, "directory of parsed profiles, used for skills when a result has no feature row")
	reportCmd.Flags().Float64("min-similarity", report.DefaultMinSimilarity, "minimum similarity to show")
	reportCmd.Flags().Int("top", report.DefaultTop, "maximum number of candidates to show (0 = all)")
	reportCmd.Flags().String("format", "table", "output format: table or json")

	rootCmd.AddCommand(reportCmd)
}
