// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/resume-screener/internal/convert"
	"github.com/pdiddy/resume-screener/internal/extract"
	"github.com/pdiddy/resume-screener/internal/vocab"
	"github.com/pdiddy/resume-screener/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract candidate profiles from a directory of resumes",
	Long: `Parse reads every .txt, .pdf and .docx file in the resume directory,
extracts the candidate's name, contacts, years of experience and skills,
and writes one JSON profile per document plus all_parsed.json to the
parsed directory.

A document that cannot be read is recorded as a profile with an error
field; the batch continues. PDF and DOCX readers are selected with
--pdf-backend and --docx-backend (native, markitdown, tika, none).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		strict, _ := cmd.Flags().GetBool("strict")
		return runParse(cmd.Context(), cfg, strict, os.Stdout)
	},
}

func runParse(ctx context.Context, cfg types.Config, strict bool, w io.Writer) error {
	v, err := vocab.FromConfig(cfg.Vocabulary)
	if err != nil {
		return &types.ConfigurationError{Setting: "vocabulary", Err: err}
	}
	ex, err := convert.FromConfig(ctx, cfg.Extract, zlog)
	if err != nil {
		return err
	}
	eng := extract.NewEngine(v, extract.WithExcerptChars(cfg.Extract.ExcerptChars), extract.WithLogger(zlog))

	summary, _, err := extract.ParseAll(ctx, ex, eng, cfg, w)
	if err != nil {
		return err
	}
	if strict && summary.HasFailures() {
		return fmt.Errorf("%d document(s) failed to parse", summary.Failed)
	}
	return nil
}

func addParseFlags(cmd *cobra.Command) {
	d := types.Defaults()
	cmd.Flags().String("resume-dir", d.Data.ResumeDir, "directory of resumes to parse")
	cmd.Flags().String("parsed-dir", d.Data.ParsedDir, "directory for parsed profiles")
	cmd.Flags().Int("workers", d.Extract.Workers, "documents processed concurrently")
	cmd.Flags().Int("excerpt-chars", d.Extract.ExcerptChars, "length of raw_text_excerpt in characters")
	cmd.Flags().String("pdf-backend", string(d.Extract.PDFBackend), "PDF reader: native, markitdown, tika, or none")
	cmd.Flags().String("docx-backend", string(d.Extract.DocxBackend), "DOCX reader: native, markitdown, tika, or none")
	cmd.Flags().String("tika-url", "", "Apache Tika server URL for the tika backend")
	cmd.Flags().Duration("timeout", d.Extract.Timeout, "timeout for one external extraction call")
}

func init() {
	addParseFlags(parseCmd)
	parseCmd.Flags().Bool("strict", false, "exit non-zero when any document fails")

	rootCmd.AddCommand(parseCmd)
}
