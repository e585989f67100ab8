// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns document text into candidate profiles. The field
// heuristics are independent functions over text; Engine composes them and
// ParseAll runs them over a directory of resumes.
package extract

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/resume-screener/internal/convert"
	"github.com/pdiddy/resume-screener/internal/logger"
	"github.com/pdiddy/resume-screener/internal/store"
	"github.com/pdiddy/resume-screener/internal/vocab"
	"github.com/pdiddy/resume-screener/pkg/types"
)

// DefaultExcerptChars is the length of raw_text_excerpt in characters.
const DefaultExcerptChars = 2000

// Engine builds CandidateProfiles from extracted text.
type Engine struct {
	vocab        vocab.Vocabulary
	excerptChars int
	log          *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithExcerptChars sets the excerpt length. Values below one keep the
// default.
func WithExcerptChars(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.excerptChars = n
		}
	}
}

// WithLogger sets the logger used for per-document diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine returns an Engine matching skills against v.
func NewEngine(v vocab.Vocabulary, opts ...Option) *Engine {
	e := &Engine{vocab: v, excerptChars: DefaultExcerptChars}
	for _, opt := range opts {
		opt(e)
	}
	e.log = logger.OrNop(e.log)
	return e
}

// Vocabulary returns the vocabulary skills are matched against.
func (e *Engine) Vocabulary() vocab.Vocabulary { return e.vocab }

// Build runs every field heuristic over text. A panic in any heuristic
// yields an error profile for fileName instead of propagating.
func (e *Engine) Build(fileName string, text convert.Text) (p types.CandidateProfile) {
	defer func() {
		if r := recover(); r != nil {
			p = types.ErrorProfile(fileName, fmt.Errorf("field extraction: %v", r))
		}
	}()

	return types.CandidateProfile{
		FileName:        fileName,
		Name:            GuessName(text.Lines),
		Contacts:        ExtractContacts(text.Normalized),
		YearsExperience: ExtractYearsExperience(text.Normalized),
		Skills:          ExtractSkills(text.Normalized, e.vocab),
		RawTextExcerpt:  store.Excerpt(text.Normalized, e.excerptChars),
	}
}

// Process extracts the text of one document and builds its profile. Every
// failure is recorded on the returned profile.
func (e *Engine) Process(ctx context.Context, ex *convert.Extractor, h types.DocumentHandle) types.CandidateProfile {
	text, err := ex.Extract(ctx, h)
	if err != nil {
		fields := []zap.Field{
			zap.String("file", h.FileName),
			zap.String("format", string(h.Format)),
			zap.Error(err),
		}
		if errors.Is(err, convert.ErrMissingCapability) {
			e.log.Warn("no reader for document format", fields...)
		} else {
			e.log.Warn("text extraction failed", fields...)
		}
		return types.ErrorProfile(h.FileName, err)
	}

	p := e.Build(h.FileName, text)
	if p.Failed() {
		e.log.Warn("field extraction failed", zap.String("file", h.FileName), zap.String("error", p.Error))
	}
	return p
}
