// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/pdiddy/resume-screener/internal/httputil"
)

var tikaContentTypes = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// TikaConverter sends documents to an Apache Tika server and reads back the
// plain-text rendering.
type TikaConverter struct {
	serverURL  string
	client     *http.Client
	maxRetries int
}

// NewTikaConverter returns a converter for the Tika server at serverURL
// (e.g. "http://localhost:9998").
func NewTikaConverter(serverURL string, client *http.Client) *TikaConverter {
	if client == nil {
		client = http.DefaultClient
	}
	return &TikaConverter{
		serverURL: strings.TrimRight(serverURL, "/"),
		client:    client,
	}
}

func (c *TikaConverter) Convert(ctx context.Context, name string, data []byte) (string, error) {
	url := c.serverURL + "/tika"
	newReq := func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "text/plain")
		if ct, ok := tikaContentTypes[strings.ToLower(filepath.Ext(name))]; ok {
			req.Header.Set("Content-Type", ct)
		}
		req.Header.Set("X-Tika-Resource-Name", name)
		return req, nil
	}

	resp, err := httputil.DoWithRetry(ctx, c.client, newReq, c.maxRetries)
	if err != nil {
		return "", fmt.Errorf("sending %s to tika: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tika returned HTTP %d for %s", resp.StatusCode, name)
	}
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading tika response for %s: %w", name, err)
	}
	return string(out), nil
}
