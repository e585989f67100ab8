// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the resume-screener CLI. Each pipeline
// stage is a subcommand (parse, features, rank); run chains all three.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/resume-screener/internal/logger"
	"github.com/pdiddy/resume-screener/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// zlog is built once flags are parsed.
var zlog = zap.NewNop()

// flagKeys maps command-line flags to configuration keys. A flag is bound
// only for the command being run, so subcommands can share flag names.
var flagKeys = map[string]string{
	"resume-dir":         "data.resume_dir",
	"parsed-dir":         "data.parsed_dir",
	"features-dir":       "data.features_dir",
	"feature-table":      "data.feature_table",
	"output":             "data.output",
	"job-description":    "data.job_description",
	"workers":            "extract.workers",
	"excerpt-chars":      "extract.excerpt_chars",
	"pdf-backend":        "extract.pdf_backend",
	"docx-backend":       "extract.docx_backend",
	"tika-url":           "extract.tika_url",
	"timeout":            "extract.timeout",
	"high-threshold":     "ranking.high_threshold",
	"moderate-threshold": "ranking.moderate_threshold",
}

// rootCmd is the base command for the resume-screener CLI.
var rootCmd = &cobra.Command{
	Use:   "resume-screener",
	Short: "Parse, featurize and rank resumes against a job description",
	Long: `resume-screener turns a directory of resumes (.txt, .pdf, .docx) into
structured candidate profiles, builds a fixed-schema feature table from
them, and ranks the candidates against a job description with TF-IDF
cosine similarity.

Each stage is a subcommand: parse, features and rank. The run subcommand
chains them. All stages read and write flat files under data/ by default.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var bindErr error
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
				bindErr = viper.BindPFlag(key, f)
			}
		})
		if bindErr != nil {
			return bindErr
		}

		l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
		if err != nil {
			return fmt.Errorf("creating a logger: %w", err)
		}
		zlog = l
		if used := viper.ConfigFileUsed(); used != "" {
			zlog.Debug("using config file", zap.String("path", used))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zlog.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./resume-screener.yaml or ~/.config/resume-screener/resume-screener.yaml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("resume-screener")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "resume-screener"))
		}
	}

	configureEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			fmt.Fprintln(os.Stderr, "Reading config file:", err)
		}
	}
}

// configureEnv registers defaults and the RESUME_SCREENER_ environment
// overrides, e.g. RESUME_SCREENER_EXTRACT_WORKERS for extract.workers.
func configureEnv() {
	setDefaults(types.Defaults())
	viper.SetEnvPrefix("RESUME_SCREENER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// setDefaults registers every configuration key so that environment
// variables are honored by Unmarshal.
func setDefaults(d types.Config) {
	viper.SetDefault("data.resume_dir", d.Data.ResumeDir)
	viper.SetDefault("data.parsed_dir", d.Data.ParsedDir)
	viper.SetDefault("data.features_dir", d.Data.FeaturesDir)
	viper.SetDefault("data.feature_table", d.Data.FeatureTable)
	viper.SetDefault("data.output", d.Data.Output)
	viper.SetDefault("data.job_description", d.Data.JobDescription)
	viper.SetDefault("extract.workers", d.Extract.Workers)
	viper.SetDefault("extract.excerpt_chars", d.Extract.ExcerptChars)
	viper.SetDefault("extract.pdf_backend", string(d.Extract.PDFBackend))
	viper.SetDefault("extract.docx_backend", string(d.Extract.DocxBackend))
	viper.SetDefault("extract.tika_url", d.Extract.TikaURL)
	viper.SetDefault("extract.timeout", d.Extract.Timeout)
	viper.SetDefault("vocabulary.version", d.Vocabulary.Version)
	viper.SetDefault("vocabulary.skills", d.Vocabulary.Skills)
	viper.SetDefault("ranking.high_threshold", d.Ranking.HighThreshold)
	viper.SetDefault("ranking.moderate_threshold", d.Ranking.ModerateThreshold)
}

// loadConfig decodes the merged file, environment and flag settings.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
