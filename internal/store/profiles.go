// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/resume-screener/pkg/types"
)

// ProfilePath returns the per-document file for outputName inside dir.
func ProfilePath(dir, outputName string) string {
	return filepath.Join(dir, outputName)
}

// WriteProfile writes p as a bare JSON object to dir/outputName.
func WriteProfile(dir, outputName string, p types.CandidateProfile) error {
	return WriteJSON(ProfilePath(dir, outputName), p)
}

// ReadProfile reads one per-document file. An array-wrapped file, or an
// object still carrying the full raw_text, yields ErrLegacyShape.
func ReadProfile(path string) (types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.CandidateProfile{}, err
	}
	if isArray(data) {
		return types.CandidateProfile{}, fmt.Errorf("%s: %w", path, ErrLegacyShape)
	}
	var p struct {
		types.CandidateProfile
		RawText *json.RawMessage `json:"raw_text"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return types.CandidateProfile{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	if p.RawText != nil {
		return types.CandidateProfile{}, fmt.Errorf("%s: raw_text: %w", path, ErrLegacyShape)
	}
	return p.CandidateProfile, nil
}

func isArray(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// WriteCombined writes all profiles, in order, to dir/all_parsed.json.
func WriteCombined(dir string, profiles []types.CandidateProfile) error {
	if profiles == nil {
		profiles = []types.CandidateProfile{}
	}
	return WriteJSON(filepath.Join(dir, CombinedFile), profiles)
}

// ReadCombined reads dir/all_parsed.json.
func ReadCombined(dir string) ([]types.CandidateProfile, error) {
	var profiles []types.CandidateProfile
	if err := ReadJSON(filepath.Join(dir, CombinedFile), &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// ProfileFiles lists the per-document JSON files in dir in name order,
// leaving out the combined file and hidden temporaries.
func ProfileFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || name == CombinedFile {
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), ".json") {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// LoadProfiles reads every per-document profile in dir in file-name order.
// The order defines resume_index for a ranking run. A missing directory is
// a ConfigurationError.
func LoadProfiles(dir string) ([]types.CandidateProfile, error) {
	names, err := ProfileFiles(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &types.ConfigurationError{Setting: "data.parsed_dir", Path: dir, Err: err}
	}
	if err != nil {
		return nil, fmt.Errorf("listing profiles in %s: %w", dir, err)
	}

	profiles := make([]types.CandidateProfile, 0, len(names))
	for _, name := range names {
		p, err := ReadProfile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if p.FileName == "" {
			p.FileName = strings.TrimSuffix(name, filepath.Ext(name))
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
