// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-upload-stager/internal/logger"
	"github.com/MKhiriev/go-upload-stager/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// recordingWorker logs Start and Stop calls into a shared slice.
type recordingWorker struct {
	id    string
	calls *[]string
}

func (w *recordingWorker) Start(context.Context) { *w.calls = append(*w.calls, "start "+w.id) }
func (w *recordingWorker) Stop()                 { *w.calls = append(*w.calls, "stop "+w.id) }

func TestWorkers_StartStopOrder(t *testing.T) {
	var calls []string
	ws := NewWorkers(
		&recordingWorker{id: "a", calls: &calls},
		nil,
		&recordingWorker{id: "b", calls: &calls},
	)

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, calls)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
}

func TestSessionJanitor_SweepsOnTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	sweeper := mock.NewMockStagingService(ctrl)

	swept := make(chan struct{}, 1)
	sweeper.EXPECT().
		Sweep(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) int {
			select {
			case swept <- struct{}{}:
			default:
			}
			return 1
		}).
		MinTimes(1)

	j := NewSessionJanitor(sweeper, 5*time.Millisecond, logger.Nop())
	j.Start(context.Background())
	defer j.Stop()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("janitor did not sweep")
	}
}

func TestSessionJanitor_StopsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	sweeper := mock.NewMockStagingService(ctrl)
	sweeper.EXPECT().Sweep(gomock.Any(), gomock.Any()).Return(0).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	j := NewSessionJanitor(sweeper, 5*time.Millisecond, logger.Nop())
	j.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		j.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancellation")
	}
}

func TestSessionJanitor_StopWithoutStart(t *testing.T) {
	j := NewSessionJanitor(nil, 0, logger.Nop())

	assert.NotPanics(t, j.Stop)
	assert.Equal(t, DefaultSweepInterval, j.(*sessionJanitor).interval)
}
