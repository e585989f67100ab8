// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"
)

// SchemaVersion is bumped whenever a persisted record changes shape.
const SchemaVersion = 1

// Manifest describes the files a stage wrote into a directory. The
// vocabulary version pins which skill list produced the records, so a
// later stage can detect schema drift.
type Manifest struct {
	SchemaVersion     int       `yaml:"schema_version"`
	Stage             string    `yaml:"stage"`
	VocabularyVersion string    `yaml:"vocabulary_version"`
	GeneratedAt       time.Time `yaml:"generated_at"`
	Records           int       `yaml:"records"`
	Failed            int       `yaml:"failed,omitempty"`
	Columns           []string  `yaml:"columns,omitempty"`
}

// WriteManifest writes m to dir/manifest.yaml.
func WriteManifest(dir string, m Manifest) error {
	if m.SchemaVersion == 0 {
		m.SchemaVersion = SchemaVersion
	}
	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return WriteFile(filepath.Join(dir, ManifestFile), data)
}

// ReadManifest reads dir/manifest.yaml. A missing manifest returns an error
// matching os.ErrNotExist.
func ReadManifest(dir string) (Manifest, error) {
	path := filepath.Join(dir, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}
