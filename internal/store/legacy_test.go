// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/resume-screener/pkg/types"
)

func TestMigrate(t *testing.T) {
	dir := t.TempDir()
	longText := strings.Repeat("a", 30)
	files := map[string]string{
		"wrapped.json": `[{"file_name": "wrapped.txt", "name": "Jane Doe",
			"contacts": {"email": "jane@example.com", "phone": null},
			"years_experience": 4, "skills": ["apex"], "raw_text": "` + longText + `"}]`,
		"flat.json":      `{"file_name": "flat.pdf", "email": "bob@example.com", "years_experience": "2.5", "raw_text": "Bob"}`,
		"failed.json":    `[{"file_name": "failed.pdf", "error": "cannot read"}]`,
		"canonical.json": `{"file_name": "canonical.txt", "raw_text_excerpt": "ok"}`,
		"multi.json":     `[{"file_name": "a"}, {"file_name": "b"}]`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	canonicalBefore, err := os.ReadFile(filepath.Join(dir, "canonical.json"))
	require.NoError(t, err)

	var out strings.Builder
	summary, err := Migrate(dir, 10, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Migrated)
	assert.Equal(t, 1, summary.Unchanged)
	assert.Equal(t, 1, summary.Failed)
	assert.True(t, summary.HasFailures())
	assert.Equal(t, 5, summary.Total())
	assert.Contains(t, out.String(), "migrated: wrapped.json")

	got, err := ReadProfile(filepath.Join(dir, "wrapped.json"))
	require.NoError(t, err)
	assert.Equal(t, types.CandidateProfile{
		FileName:        "wrapped.txt",
		Name:            "Jane Doe",
		Contacts:        types.Contacts{Email: "jane@example.com"},
		YearsExperience: years(4),
		Skills:          []string{"apex"},
		RawTextExcerpt:  strings.Repeat("a", 10),
	}, got)

	got, err = ReadProfile(filepath.Join(dir, "flat.json"))
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", got.Contacts.Email)
	require.NotNil(t, got.YearsExperience)
	assert.InDelta(t, 2.5, *got.YearsExperience, 1e-9)
	assert.Equal(t, "Bob", got.RawTextExcerpt)

	got, err = ReadProfile(filepath.Join(dir, "failed.json"))
	require.NoError(t, err)
	assert.Equal(t, types.CandidateProfile{FileName: "failed.pdf", Error: "cannot read"}, got)

	canonicalAfter, err := os.ReadFile(filepath.Join(dir, "canonical.json"))
	require.NoError(t, err)
	assert.Equal(t, canonicalBefore, canonicalAfter)

	_, err = ReadProfile(filepath.Join(dir, "multi.json"))
	assert.ErrorIs(t, err, ErrLegacyShape, "multi-record arrays are left for manual repair")
}

func TestMigrate_MissingDir(t *testing.T) {
	_, err := Migrate(filepath.Join(t.TempDir(), "absent"), 2000, nil, &strings.Builder{})
	var ce *types.ConfigurationError
	assert.ErrorAs(t, err, &ce)
}
