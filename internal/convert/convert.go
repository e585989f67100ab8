// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns source documents into normalized text. Plain text is
// decoded in-process; PDF and word-processor documents are delegated to a
// Converter configured per format (native decoders, the markitdown
// container, or an Apache Tika server). A format without a converter fails
// with a MissingCapabilityError, which callers can tell apart from an
// ExtractionError.
package convert

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pdiddy/resume-screener/internal/logger"
	"github.com/pdiddy/resume-screener/pkg/types"
)

// Converter transforms the raw bytes of one document into text. Different
// backends implement this interface; name is the source file name, used for
// diagnostics and content-type hints only.
type Converter interface {
	Convert(ctx context.Context, name string, data []byte) (string, error)
}

// ErrMissingCapability matches every MissingCapabilityError via errors.Is.
var ErrMissingCapability = errors.New("missing capability")

// MissingCapabilityError reports that no reader is available for a format.
// It is not a parse failure: the document was never looked at.
type MissingCapabilityError struct {
	Format types.Format
	// Component names the optional piece that would provide the reader.
	Component string
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("missing capability: no %s reader available, requires %s", e.Format, e.Component)
}

func (e *MissingCapabilityError) Is(target error) bool { return target == ErrMissingCapability }

// ExtractionError reports an I/O or decode failure for one document.
type ExtractionError struct {
	FileName string
	Cause    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed for %s: %v", e.FileName, e.Cause)
}

func (e *ExtractionError) Unwrap() error { return e.Cause }

// Extractor dispatches documents to the converter registered for their
// format. It holds no per-document state and is safe for concurrent use as
// long as its converters are.
type Extractor struct {
	converters map[types.Format]Converter
	missing    map[types.Format]string
	log        *zap.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithConverter registers c for format.
func WithConverter(format types.Format, c Converter) Option {
	return func(e *Extractor) {
		e.converters[format] = c
		delete(e.missing, format)
	}
}

// WithMissing records that format has no reader and names the component that
// would provide one.
func WithMissing(format types.Format, component string) Option {
	return func(e *Extractor) {
		delete(e.converters, format)
		e.missing[format] = component
	}
}

// WithLogger sets the logger used for per-document diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(e *Extractor) { e.log = l }
}

// New returns an Extractor that decodes plain text and uses the converters
// given by opts for everything else.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		converters: make(map[types.Format]Converter),
		missing:    make(map[types.Format]string),
		log:        zap.NewNop(),
	}
	for _, o := range opts {
		o(e)
	}
	e.log = logger.OrNop(e.log)
	return e
}

// Supports reports whether a reader is registered for format.
func (e *Extractor) Supports(format types.Format) bool {
	if format == types.FormatPlainText {
		return true
	}
	_, ok := e.converters[format]
	return ok
}

// Extract reads the document and returns its normalized text. The raw bytes
// are released when Extract returns.
func (e *Extractor) Extract(ctx context.Context, h types.DocumentHandle) (Text, error) {
	if !e.Supports(h.Format) {
		component := e.missing[h.Format]
		if component == "" {
			component = fmt.Sprintf("a %s converter", h.Format)
		}
		return Text{}, &MissingCapabilityError{Format: h.Format, Component: component}
	}

	data, err := os.ReadFile(h.Path)
	if err != nil {
		return Text{}, &ExtractionError{FileName: h.FileName, Cause: err}
	}

	raw, err := e.decode(ctx, h, data)
	if err != nil {
		return Text{}, &ExtractionError{FileName: h.FileName, Cause: err}
	}

	text := NewText(raw)
	e.log.Debug("extracted text",
		zap.String("file", h.FileName),
		zap.String("format", string(h.Format)),
		zap.Int("bytes", len(data)),
		zap.Int("chars", len(text.Normalized)),
	)
	return text, nil
}

func (e *Extractor) decode(ctx context.Context, h types.DocumentHandle, data []byte) (raw string, err error) {
	if h.Format == types.FormatPlainText {
		return DecodePlainText(data), nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s converter panicked: %v", h.Format, r)
		}
	}()
	out, err := e.converters[h.Format].Convert(ctx, h.FileName, data)
	if err != nil {
		return "", err
	}
	return DecodePlainText([]byte(out)), nil
}
