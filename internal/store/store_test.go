// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/resume-screener/pkg/types"
)

func years(v float64) *float64 { return &v }

func sampleProfile() types.CandidateProfile {
	return types.CandidateProfile{
		FileName:        "jane.pdf",
		Name:            "Jane Doe",
		Contacts:        types.Contacts{Email: "jane.doe@example.com", Phone: "(555) 123-4567"},
		YearsExperience: years(5),
		Skills:          []string{"apex", "salesforce"},
		RawTextExcerpt:  "Jane Doe Salesforce Apex developer",
	}
}

func TestWriteFile_Atomic(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	path := filepath.Join(dir, "a.json")

	require.NoError(t, WriteFile(path, []byte("first")))
	require.NoError(t, WriteFile(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestWriteFile_FailureKeepsPriorContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.json")
	require.NoError(t, os.WriteFile(path, []byte("good"), 0o644))

	// A directory in place of the target makes the rename fail.
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.MkdirAll(filepath.Join(blocked, "child"), 0o755))
	assert.Error(t, WriteFile(blocked, []byte("x")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "good", string(data))
}

func TestProfileRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		profile types.CandidateProfile
	}{
		{"full", sampleProfile()},
		{"empty optional fields", types.CandidateProfile{FileName: "blank.txt"}},
		{"zero years", types.CandidateProfile{FileName: "new.txt", YearsExperience: years(0)}},
		{"error profile", types.ErrorProfile("broken.pdf", errors.New("bad xref"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, WriteProfile(dir, "out.json", tt.profile))
			got, err := ReadProfile(filepath.Join(dir, "out.json"))
			require.NoError(t, err)
			assert.Equal(t, tt.profile, got)
		})
	}
}

func TestExcerpt(t *testing.T) {
	long := strings.Repeat("é", 2500)
	got := Excerpt(long, 2000)
	assert.Equal(t, 2000, len([]rune(got)))
	assert.True(t, strings.HasPrefix(long, got))

	assert.Equal(t, "short", Excerpt("short", 2000))
	assert.Equal(t, "", Excerpt("", 10))
	assert.Equal(t, "abc", Excerpt("abc", 0))
}

func TestReadProfile_LegacyShape(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"array wrapped", `  [{"file_name": "legacy.txt"}]`},
		{"raw_text object", `{"file_name": "legacy.txt", "raw_text": "Jane Doe Apex"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "legacy.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o644))

			_, err := ReadProfile(path)
			assert.ErrorIs(t, err, ErrLegacyShape)
		})
	}
}

func TestLoadProfiles_RawTextNeedsMigration(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.json"),
		[]byte(`{"file_name": "old.txt", "raw_text": "Jane Doe Salesforce Apex"}`), 0o644))

	_, err := LoadProfiles(dir)
	require.ErrorIs(t, err, ErrLegacyShape)

	_, err = Migrate(dir, 2000, nil, io.Discard)
	require.NoError(t, err)

	got, err := LoadProfiles(dir)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jane Doe Salesforce Apex", got[0].RawTextExcerpt)
}

func TestLoadProfiles(t *testing.T) {
	dir := t.TempDir()
	b := sampleProfile()
	b.FileName = "b.txt"
	a := types.CandidateProfile{FileName: "a.pdf", Skills: []string{"soql"}}

	require.NoError(t, WriteProfile(dir, "b.json", b))
	require.NoError(t, WriteProfile(dir, "a.json", a))
	require.NoError(t, WriteCombined(dir, []types.CandidateProfile{a, b}))
	require.NoError(t, WriteManifest(dir, Manifest{Stage: "parse", VocabularyVersion: "v1", Records: 2}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))

	got, err := LoadProfiles(dir)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a.pdf", got[0].FileName)
	assert.Equal(t, "b.txt", got[1].FileName)
}

func TestLoadProfiles_MissingDir(t *testing.T) {
	_, err := LoadProfiles(filepath.Join(t.TempDir(), "absent"))
	var ce *types.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "data.parsed_dir", ce.Setting)
}

func TestCombinedRoundTrip(t *testing.T) {
	dir := t.TempDir()
	profiles := []types.CandidateProfile{sampleProfile(), types.ErrorProfile("x.pdf", errors.New("boom"))}
	require.NoError(t, WriteCombined(dir, profiles))

	got, err := ReadCombined(dir)
	require.NoError(t, err)
	assert.Equal(t, profiles, got)

	require.NoError(t, WriteCombined(dir, nil))
	data, err := os.ReadFile(filepath.Join(dir, CombinedFile))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := Manifest{
		Stage:             "features",
		VocabularyVersion: "salesforce-v1",
		GeneratedAt:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Records:           3,
		Columns:           []string{"file_name", "skill_apex"},
	}
	require.NoError(t, WriteManifest(dir, m))

	got, err := ReadManifest(dir)
	require.NoError(t, err)
	m.SchemaVersion = SchemaVersion
	assert.Equal(t, m, got)

	_, err = ReadManifest(t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRankedRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	results := []types.RankedResult{
		{
			ResumeIndex:   1,
			FileName:      "jane.pdf",
			Similarity:    0.72,
			RelevanceTier: types.TierHighlyRelevant,
			Features: &types.FeatureRecord{
				FileName:        "jane.pdf",
				Name:            "Jane Doe",
				Email:           "jane.doe@example.com",
				YearsExperience: 5,
				Skills:          []types.SkillFlag{{Skill: "apex", Present: true}, {Skill: "soql", Present: false}},
			},
		},
		{ResumeIndex: 0, FileName: "bob.txt", Similarity: 0, RelevanceTier: types.TierIrrelevant},
	}
	require.NoError(t, WriteRanked(path, results))

	got, err := ReadRanked(path)
	require.NoError(t, err)
	assert.Equal(t, results, got)
}
