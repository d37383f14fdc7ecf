// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-upload-stager/internal/logger"
	"github.com/MKhiriev/go-upload-stager/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHTTPFetcher(maxBytes int64) *HTTPFetcher {
	return NewHTTPFetcher(utils.NewHTTPClient(5*time.Second, "stager-test"), maxBytes, logger.Nop())
}

func TestHTTPFetcher_Success(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n0000")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/avatars/a.png", r.URL.Path)
		assert.Equal(t, "stager-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}))
	defer srv.Close()

	res, err := newTestHTTPFetcher(0).Fetch(context.Background(), srv.URL+"/avatars/a.png")

	require.NoError(t, err)
	assert.Equal(t, png, res.Payload)
	assert.Equal(t, "image/png", res.ContentType)
}

func TestHTTPFetcher_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "gone", status: http.StatusGone, wantErr: ErrNotFound},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			_, err := newTestHTTPFetcher(0).Fetch(context.Background(), srv.URL)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestHTTPFetcher_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestHTTPFetcher(0).Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, "http 418: I'm a teapot", err.Error())
}

func TestHTTPFetcher_BodyLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(bytes.Repeat([]byte("x"), 4096))
	}))
	defer srv.Close()

	_, err := newTestHTTPFetcher(1024).Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrTooLarge)

	res, err := newTestHTTPFetcher(4096).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, res.Payload, 4096)
}

func TestHTTPFetcher_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestHTTPFetcher(0).Fetch(ctx, srv.URL)
	assert.ErrorIs(t, err, context.Canceled)
}
