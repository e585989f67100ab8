// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the resume-screener pipeline:
// source document handles, candidate profiles, feature records, ranked
// results, stage configuration, and the errors shared across stages.
package types

import (
	"path/filepath"
	"strings"
)

// Format identifies how a source document is decoded into text.
type Format string

const (
	FormatPlainText     Format = "plain-text"
	FormatPDF           Format = "pdf"
	FormatWordProcessor Format = "word-processor"
)

// supportedExtensions maps the extensions the parse stage picks up from the
// resume directory to their format.
var supportedExtensions = map[string]Format{
	".txt":  FormatPlainText,
	".pdf":  FormatPDF,
	".docx": FormatWordProcessor,
}

// FormatFromPath returns the format for a file name based on its extension.
// Unknown extensions fall back to plain text.
func FormatFromPath(path string) Format {
	if f, ok := supportedExtensions[strings.ToLower(filepath.Ext(path))]; ok {
		return f
	}
	return FormatPlainText
}

// IsSupported reports whether the batch stage should pick up path.
func IsSupported(path string) bool {
	_, ok := supportedExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// DocumentHandle identifies one source file within a batch. The raw bytes are
// read by the extractor for the duration of a single extraction call and are
// not retained.
type DocumentHandle struct {
	// FileName is the base name, unique within a batch.
	FileName string `json:"file_name" yaml:"file_name"`

	// Path is the filesystem location of the document.
	Path string `json:"path" yaml:"path"`

	// Format selects the decoder.
	Format Format `json:"format" yaml:"format"`
}

// NewDocumentHandle builds a handle for the file at path, deriving the file
// name and format from it.
func NewDocumentHandle(path string) DocumentHandle {
	return DocumentHandle{
		FileName: filepath.Base(path),
		Path:     path,
		Format:   FormatFromPath(path),
	}
}
