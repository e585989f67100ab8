// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/resume-screener/pkg/types"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetViper(t)
	configureEnv()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, types.Defaults(), cfg)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	resetViper(t)
	t.Setenv("RESUME_SCREENER_EXTRACT_WORKERS", "7")
	t.Setenv("RESUME_SCREENER_DATA_JOB_DESCRIPTION", "jd.txt")
	t.Setenv("RESUME_SCREENER_EXTRACT_TIMEOUT", "5s")
	configureEnv()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Extract.Workers)
	assert.Equal(t, "jd.txt", cfg.Data.JobDescription)
	assert.Equal(t, 5*time.Second, cfg.Extract.Timeout)
}

func TestLoadConfig_File(t *testing.T) {
	resetViper(t)
	path := filepath.Join(t.TempDir(), "resume-screener.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
extract:
  pdf_backend: tika
  tika_url: http://localhost:9998
vocabulary:
  version: java-v1
  skills: [java, spring, kafka]
ranking:
  high_threshold: 0.7
`), 0o644))
	viper.SetConfigFile(path)
	configureEnv()
	require.NoError(t, viper.ReadInConfig())

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, types.BackendTika, cfg.Extract.PDFBackend)
	assert.Equal(t, types.BackendNative, cfg.Extract.DocxBackend)
	assert.Equal(t, []string{"java", "spring", "kafka"}, cfg.Vocabulary.Skills)
	assert.Equal(t, 0.7, cfg.Ranking.HighThreshold)
	assert.Equal(t, 0.45, cfg.Ranking.ModerateThreshold)
}
