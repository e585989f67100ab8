// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/dslipak/pdf"
)

// PDFConverter extracts the text layer of a PDF in-process. Scanned PDFs
// without a text layer yield empty text, not an error.
type PDFConverter struct{}

func (PDFConverter) Convert(_ context.Context, name string, data []byte) (text string, err error) {
	// The parser panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parsing PDF %s: %v", name, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", name, err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("reading text of PDF %s: %w", name, err)
	}
	out, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("reading text of PDF %s: %w", name, err)
	}
	return string(out), nil
}
