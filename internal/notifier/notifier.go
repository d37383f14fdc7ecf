// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notifier provides the toast sinks a staging buffer reports to.
package notifier

import (
	"sync"

	"github.com/MKhiriev/go-upload-stager/internal/logger"
	"github.com/MKhiriev/go-upload-stager/internal/staging"
	"github.com/MKhiriev/go-upload-stager/models"
	"github.com/rs/zerolog"
)

// DefaultQueueSize is used by NewQueue for a non-positive size.
const DefaultQueueSize = 32

// Queue keeps the most recent notifications until they are drained. When
// full, the oldest entry is dropped.
type Queue struct {
	mu      sync.Mutex
	items   []models.Notification
	size    int
	dropped int
}

// NewQueue returns a queue holding at most size notifications.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{size: size, items: make([]models.Notification, 0, size)}
}

// Notify implements staging.Notifier.
func (q *Queue) Notify(n models.Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == q.size {
		q.items = q.items[1:]
		q.dropped++
	}
	q.items = append(q.items, n)
}

// Drain returns the queued notifications oldest first and empties the queue.
func (q *Queue) Drain() []models.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]models.Notification, len(q.items))
	copy(out, q.items)
	q.items = q.items[:0]
	return out
}

// Len returns the number of queued notifications.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Dropped returns how many notifications were evicted because the queue
// was full.
func (q *Queue) Dropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

// Log writes every notification to a zerolog logger at the matching level.
type Log struct {
	logger *logger.Logger
}

// NewLog returns a notifier writing to log.
func NewLog(log *logger.Logger) *Log {
	return &Log{logger: log}
}

// Notify implements staging.Notifier.
func (l *Log) Notify(n models.Notification) {
	l.logger.WithLevel(zerologLevel(n.Level)).
		Time("at", n.At).
		Msg(n.Message)
}

func zerologLevel(level models.NotificationLevel) zerolog.Level {
	switch level {
	case models.NotificationError:
		return zerolog.ErrorLevel
	case models.NotificationWarning:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// Multi fans a notification out to several notifiers in order.
type Multi []staging.Notifier

// Notify implements staging.Notifier. Nil entries are skipped.
func (m Multi) Notify(n models.Notification) {
	for _, target := range m {
		if target != nil {
			target.Notify(n)
		}
	}
}

// Func adapts a plain function to staging.Notifier.
type Func func(models.Notification)

// Notify implements staging.Notifier.
func (f Func) Notify(n models.Notification) {
	f(n)
}
