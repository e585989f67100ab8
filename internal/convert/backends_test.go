// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/resume-screener/internal/container"
	"github.com/pdiddy/resume-screener/pkg/types"
)

func stubRuntime(t *testing.T, rt container.Runtime, err error) *int {
	t.Helper()
	calls := 0
	orig := detectRuntime
	detectRuntime = func(context.Context) (container.Runtime, error) {
		calls++
		return rt, err
	}
	t.Cleanup(func() { detectRuntime = orig })
	return &calls
}

func TestFromConfig_Backends(t *testing.T) {
	tests := []struct {
		name     string
		cfg      types.ExtractConfig
		wantPDF  bool
		wantDocx bool
	}{
		{"defaults", types.Defaults().Extract, true, true},
		{"empty backends mean native", types.ExtractConfig{}, true, true},
		{"none", types.ExtractConfig{PDFBackend: types.BackendNone, DocxBackend: types.BackendNative}, false, true},
		{"tika without url", types.ExtractConfig{PDFBackend: types.BackendTika, DocxBackend: types.BackendTika}, false, false},
		{"tika with url", types.ExtractConfig{PDFBackend: types.BackendTika, TikaURL: "http://localhost:9998"}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex, err := FromConfig(context.Background(), tt.cfg, nil)
			require.NoError(t, err)
			assert.True(t, ex.Supports(types.FormatPlainText))
			assert.Equal(t, tt.wantPDF, ex.Supports(types.FormatPDF))
			assert.Equal(t, tt.wantDocx, ex.Supports(types.FormatWordProcessor))
		})
	}
}

func TestFromConfig_MarkitdownRuntimeMissing(t *testing.T) {
	calls := stubRuntime(t, nil, errors.New("no container runtime available"))
	cfg := types.ExtractConfig{PDFBackend: types.BackendMarkitdown, DocxBackend: types.BackendMarkitdown}

	ex, err := FromConfig(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.False(t, ex.Supports(types.FormatPDF))
	assert.False(t, ex.Supports(types.FormatWordProcessor))
	assert.Equal(t, 1, *calls, "runtime is probed once for both formats")

	h := writeDoc(t, "jane.pdf", "%PDF")
	_, err = ex.Extract(context.Background(), h)
	assert.ErrorIs(t, err, ErrMissingCapability)
}

func TestFromConfig_MarkitdownAvailable(t *testing.T) {
	rt := &fakeRuntime{output: "Jane Doe"}
	stubRuntime(t, rt, nil)
	cfg := types.ExtractConfig{PDFBackend: types.BackendMarkitdown, DocxBackend: types.BackendNative}

	ex, err := FromConfig(context.Background(), cfg, nil)
	require.NoError(t, err)

	text, err := ex.Extract(context.Background(), writeDoc(t, "jane.pdf", "%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", text.Normalized)
}

func TestFromConfig_UnknownBackend(t *testing.T) {
	_, err := FromConfig(context.Background(), types.ExtractConfig{DocxBackend: "libreoffice"}, nil)
	var ce *types.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "extract.docx_backend", ce.Setting)
}
