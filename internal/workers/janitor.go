// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-upload-stager/internal/logger"
)

// DefaultSweepInterval is used by NewSessionJanitor for a non-positive
// interval.
const DefaultSweepInterval = time.Minute

type sessionJanitor struct {
	sweeper  Sweeper
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionJanitor creates a worker that calls sweeper.Sweep every interval.
func NewSessionJanitor(sweeper Sweeper, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	return &sessionJanitor{
		sweeper:  sweeper,
		interval: interval,
		now:      time.Now,
		logger:   log,
	}
}

// Start implements Worker. A running janitor is restarted.
func (j *sessionJanitor) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Dur("interval", j.interval).Msg("session janitor started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if swept := j.sweeper.Sweep(jobCtx, j.now()); swept > 0 {
					j.logger.Debug().Int("swept", swept).Msg("idle sessions closed")
				}
			}
		}
	}()
}

// Stop implements Worker.
func (j *sessionJanitor) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
		j.logger.Info().Msg("session janitor stopped")
	}
	j.wg.Wait()
}
