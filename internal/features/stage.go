// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package features

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/resume-screener/internal/logger"
	"github.com/pdiddy/resume-screener/internal/store"
	"github.com/pdiddy/resume-screener/internal/vocab"
	"github.com/pdiddy/resume-screener/pkg/types"
)

// StageSummary reports what the feature stage wrote.
type StageSummary struct {
	Rows    int
	Columns int
	// Drift is set when the profiles were parsed with a different
	// vocabulary than the one the table was built with.
	Drift bool
}

// CSVPath returns the feature table CSV inside dir.
func CSVPath(dir string) string { return filepath.Join(dir, store.FeaturesCSVFile) }

// JSONPath returns the feature table JSON inside dir.
func JSONPath(dir string) string { return filepath.Join(dir, store.FeaturesJSONFile) }

// BuildStage reads the combined profiles from cfg.Data.ParsedDir and writes
// the feature table in CSV and JSON, plus a manifest, to
// cfg.Data.FeaturesDir. Row order follows the combined file.
func BuildStage(cfg types.Config, v vocab.Vocabulary, log *zap.Logger, w io.Writer) (StageSummary, error) {
	log = logger.OrNop(log)
	profiles, err := store.ReadCombined(cfg.Data.ParsedDir)
	if errors.Is(err, os.ErrNotExist) {
		return StageSummary{}, &types.ConfigurationError{
			Setting: "data.parsed_dir",
			Path:    filepath.Join(cfg.Data.ParsedDir, store.CombinedFile),
			Err:     fmt.Errorf("%w (run the parse stage first)", err),
		}
	}
	if err != nil {
		return StageSummary{}, err
	}

	var summary StageSummary
	if m, err := store.ReadManifest(cfg.Data.ParsedDir); err == nil && m.VocabularyVersion != v.Version() {
		summary.Drift = true
		log.Warn("vocabulary changed since parse",
			zap.String("parsed_with", m.VocabularyVersion),
			zap.String("building_with", v.Version()))
		fmt.Fprintf(w, "warning: profiles were parsed with vocabulary %q, building features with %q; re-run parse\n",
			m.VocabularyVersion, v.Version())
	}

	table := NewTable(profiles, v)
	summary.Rows = len(table.Rows)
	summary.Columns = len(table.Columns)

	var csvBuf, jsonBuf bytes.Buffer
	if err := table.WriteCSV(&csvBuf); err != nil {
		return StageSummary{}, fmt.Errorf("encoding feature CSV: %w", err)
	}
	if err := table.WriteJSON(&jsonBuf); err != nil {
		return StageSummary{}, fmt.Errorf("encoding feature JSON: %w", err)
	}

	csvPath, jsonPath := CSVPath(cfg.Data.FeaturesDir), JSONPath(cfg.Data.FeaturesDir)
	if err := store.WriteFile(csvPath, csvBuf.Bytes()); err != nil {
		return StageSummary{}, err
	}
	if err := store.WriteFile(jsonPath, jsonBuf.Bytes()); err != nil {
		return StageSummary{}, err
	}
	manifest := store.Manifest{
		Stage:             "features",
		VocabularyVersion: v.Version(),
		GeneratedAt:       time.Now().UTC(),
		Records:           summary.Rows,
		Columns:           table.Columns,
	}
	if err := store.WriteManifest(cfg.Data.FeaturesDir, manifest); err != nil {
		return StageSummary{}, err
	}

	log.Debug("feature table written", zap.Int("rows", summary.Rows), zap.Int("columns", summary.Columns))
	fmt.Fprintf(w, "Features extracted for %d resumes\n", summary.Rows)
	fmt.Fprintf(w, "Saved CSV:  %s\n", csvPath)
	fmt.Fprintf(w, "Saved JSON: %s\n", jsonPath)
	return summary, nil
}
