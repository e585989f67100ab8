// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTikaConverter_Convert(t *testing.T) {
	var (
		gotMethod, gotPath, gotAccept, gotType, gotName string
		gotBody                                         []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		gotType = r.Header.Get("Content-Type")
		gotName = r.Header.Get("X-Tika-Resource-Name")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = io.WriteString(w, "Jane Doe\nApex developer\n")
	}))
	defer srv.Close()

	conv := NewTikaConverter(srv.URL+"/", srv.Client())
	out, err := conv.Convert(context.Background(), "Jane.PDF", []byte("%PDF-1.7"))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\nApex developer\n", out)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/tika", gotPath)
	assert.Equal(t, "text/plain", gotAccept)
	assert.Equal(t, "application/pdf", gotType)
	assert.Equal(t, "Jane.PDF", gotName)
	assert.Equal(t, []byte("%PDF-1.7"), gotBody)
}

func TestTikaConverter_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := NewTikaConverter(srv.URL, srv.Client()).Convert(context.Background(), "jane.docx", []byte("PK"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 422")
}

func TestTikaConverter_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewTikaConverter(url, nil).Convert(context.Background(), "jane.pdf", []byte("%PDF"))
	assert.Error(t, err)
}
