// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/pdiddy/resume-screener/internal/container"
	"github.com/pdiddy/resume-screener/internal/logger"
	"github.com/pdiddy/resume-screener/pkg/types"
)

// detectRuntime is replaced in tests.
var detectRuntime = container.Detect

// FromConfig builds an Extractor with the backends selected in cfg. A
// backend whose external piece is unavailable does not fail construction:
// its format is recorded as missing and documents of that format fail
// individually.
func FromConfig(ctx context.Context, cfg types.ExtractConfig, log *zap.Logger) (*Extractor, error) {
	log = logger.OrNop(log)
	opts := []Option{WithLogger(log)}

	var (
		markitdown    Converter
		markitdownErr error
		probed        bool
	)
	probeMarkitdown := func() (Converter, error) {
		if !probed {
			probed = true
			rt, err := detectRuntime(ctx)
			if err != nil {
				markitdownErr = err
			} else {
				markitdown, markitdownErr = NewMarkitdownConverter(ctx, rt, DefaultMarkitdownImage)
			}
		}
		return markitdown, markitdownErr
	}

	formats := []struct {
		format  types.Format
		key     string
		backend types.Backend
		native  Converter
	}{
		{types.FormatPDF, "extract.pdf_backend", cfg.PDFBackend, PDFConverter{}},
		{types.FormatWordProcessor, "extract.docx_backend", cfg.DocxBackend, DocxConverter{}},
	}

	for _, f := range formats {
		switch f.backend {
		case types.BackendNative, "":
			opts = append(opts, WithConverter(f.format, f.native))
		case types.BackendMarkitdown:
			c, err := probeMarkitdown()
			if err != nil {
				log.Warn("markitdown backend unavailable", zap.String("format", string(f.format)), zap.Error(err))
				opts = append(opts, WithMissing(f.format,
					fmt.Sprintf("the markitdown container (docker or podman with %s): %v", DefaultMarkitdownImage, err)))
				continue
			}
			opts = append(opts, WithConverter(f.format, c))
		case types.BackendTika:
			if cfg.TikaURL == "" {
				opts = append(opts, WithMissing(f.format, "an Apache Tika server (extract.tika_url is not set)"))
				continue
			}
			opts = append(opts, WithConverter(f.format, NewTikaConverter(cfg.TikaURL, &http.Client{Timeout: cfg.Timeout})))
		case types.BackendNone:
			opts = append(opts, WithMissing(f.format, fmt.Sprintf("a %s reader (%s is %q)", f.format, f.key, f.backend)))
		default:
			return nil, &types.ConfigurationError{
				Setting: f.key,
				Err:     fmt.Errorf("unknown backend %q: use native, markitdown, tika, or none", f.backend),
			}
		}
		log.Debug("text backend", zap.String("format", string(f.format)), zap.String("backend", string(f.backend)))
	}

	return New(opts...), nil
}
