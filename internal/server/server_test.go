// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-upload-stager/internal/config"
	"github.com/MKhiriev/go-upload-stager/internal/handler"
	"github.com/MKhiriev/go-upload-stager/internal/logger"
	"github.com/MKhiriev/go-upload-stager/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingWorker struct {
	started chan struct{}
	stopped int
}

func (w *countingWorker) Start(context.Context) { close(w.started) }
func (w *countingWorker) Stop()                 { w.stopped++ }

func newTestServer(t *testing.T, address string, w *workers.Workers) *server {
	t.Helper()

	cfg := config.Server{HTTPAddress: address, RequestTimeout: time.Second}
	handlers, err := handler.NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, w, cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(nil, nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	worker := &countingWorker{started: make(chan struct{})}
	srv := newTestServer(t, "127.0.0.1:0", workers.NewWorkers(worker))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.run(ctx) }()

	select {
	case <-worker.started:
	case <-time.After(time.Second):
		t.Fatal("workers were not started")
	}
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, 1, worker.stopped)

	srv.Shutdown()
	assert.Equal(t, 1, worker.stopped)
}

func TestServer_RunReturnsListenError(t *testing.T) {
	worker := &countingWorker{started: make(chan struct{})}
	srv := newTestServer(t, "127.0.0.1:-1", workers.NewWorkers(worker))

	err := srv.run(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 1, worker.stopped)
}
