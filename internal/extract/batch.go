// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/resume-screener/internal/convert"
	"github.com/pdiddy/resume-screener/internal/store"
	"github.com/pdiddy/resume-screener/pkg/types"
)

const defaultWorkers = 4

// BatchSummary holds counts from a parse run.
type BatchSummary struct {
	Parsed  int
	Failed  int
	Skipped int // files with unsupported extensions
	Pruned  int // stale profiles removed from the parsed directory
}

// Total returns the number of documents processed.
func (s BatchSummary) Total() int {
	return s.Parsed + s.Failed
}

// HasFailures reports whether any document failed.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

// syncWriter serializes progress lines from concurrent workers.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, format, args...)
}

// ParseAll extracts a profile from every supported document in
// cfg.Data.ResumeDir and writes the per-document files, the combined array
// and a manifest to cfg.Data.ParsedDir. Documents are processed by up to
// cfg.Extract.Workers goroutines; the combined output is always sorted by
// file name. Per-document failures are recorded on profiles and counted,
// they never abort the batch.
func ParseAll(ctx context.Context, ex *convert.Extractor, eng *Engine, cfg types.Config, w io.Writer) (BatchSummary, []types.CandidateProfile, error) {
	handles, skipped, err := scanResumes(cfg.Data.ResumeDir)
	if err != nil {
		return BatchSummary{}, nil, err
	}
	summary := BatchSummary{Skipped: skipped}
	if len(handles) == 0 {
		eng.log.Warn("no resumes found", zap.String("dir", cfg.Data.ResumeDir))
	}

	workers := cfg.Extract.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	out := &syncWriter{w: w}
	profiles := make([]types.CandidateProfile, len(handles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, h := range handles {
		i, h := i, h
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p := eng.Process(gctx, ex, h)
			profiles[i] = p
			if p.Failed() {
				out.printf("failed:  %s (%s)\n", h.FileName, p.Error)
			} else {
				out.printf("parsed:  %s\n", h.FileName)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchSummary{}, nil, fmt.Errorf("parsing %s: %w", cfg.Data.ResumeDir, err)
	}

	names := outputNames(handles)
	written := make(map[string]bool, len(names))
	for i, p := range profiles {
		if err := store.WriteProfile(cfg.Data.ParsedDir, names[i], p); err != nil {
			return BatchSummary{}, nil, err
		}
		written[names[i]] = true
		if p.Failed() {
			summary.Failed++
		} else {
			summary.Parsed++
		}
	}

	if err := store.WriteCombined(cfg.Data.ParsedDir, profiles); err != nil {
		return BatchSummary{}, nil, err
	}
	manifest := store.Manifest{
		Stage:             "parse",
		VocabularyVersion: eng.Vocabulary().Version(),
		GeneratedAt:       time.Now().UTC(),
		Records:           len(profiles),
		Failed:            summary.Failed,
	}
	if err := store.WriteManifest(cfg.Data.ParsedDir, manifest); err != nil {
		return BatchSummary{}, nil, err
	}

	pruned, err := pruneStale(cfg.Data.ParsedDir, written, eng.log)
	if err != nil {
		return BatchSummary{}, nil, err
	}
	summary.Pruned = pruned

	fmt.Fprintf(w, "\nParse complete: %d parsed, %d failed, %d skipped (total %d)\n",
		summary.Parsed, summary.Failed, summary.Skipped, summary.Total())
	return summary, profiles, nil
}

// scanResumes lists supported documents in dir, sorted by file name, and
// counts the files it ignored.
func scanResumes(dir string) ([]types.DocumentHandle, int, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, 0, &types.ConfigurationError{Setting: "data.resume_dir", Path: dir, Err: err}
	}
	if err != nil {
		return nil, 0, fmt.Errorf("reading resume directory %s: %w", dir, err)
	}

	var (
		handles []types.DocumentHandle
		skipped int
	)
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if !types.IsSupported(e.Name()) {
			skipped++
			continue
		}
		handles = append(handles, types.NewDocumentHandle(filepath.Join(dir, e.Name())))
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i].FileName < handles[j].FileName })
	return handles, skipped, nil
}

// outputNames assigns each document its per-document file name. A base
// name shared by several documents gets the extension appended, and any
// name still taken gets a numeric suffix. The combined file's name is
// reserved. handles must be sorted.
func outputNames(handles []types.DocumentHandle) []string {
	counts := make(map[string]int, len(handles))
	bases := make([]string, len(handles))
	for i, h := range handles {
		bases[i] = strings.TrimSuffix(h.FileName, filepath.Ext(h.FileName))
		counts[strings.ToLower(bases[i])]++
	}

	names := make([]string, len(handles))
	used := map[string]bool{strings.ToLower(store.CombinedFile): true}
	for i, h := range handles {
		base := bases[i]
		if counts[strings.ToLower(base)] > 1 {
			base += "_" + strings.ToLower(strings.TrimPrefix(filepath.Ext(h.FileName), "."))
		}
		name := base + ".json"
		for n := 2; used[strings.ToLower(name)]; n++ {
			name = fmt.Sprintf("%s_%d.json", base, n)
		}
		used[strings.ToLower(name)] = true
		names[i] = name
	}
	return names
}

// pruneStale removes per-document profiles left by earlier runs whose
// source document is gone.
func pruneStale(dir string, keep map[string]bool, log *zap.Logger) (int, error) {
	existing, err := store.ProfileFiles(dir)
	if err != nil {
		return 0, fmt.Errorf("listing %s: %w", dir, err)
	}
	pruned := 0
	for _, name := range existing {
		if keep[name] {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return pruned, fmt.Errorf("removing stale profile %s: %w", name, err)
		}
		log.Info("removed stale profile", zap.String("file", name))
		pruned++
	}
	return pruned, nil
}
