package workers

import (
	"context"
	"slices"
)

type Workers struct {
	workers []Worker
}

// NewWorkers groups workers so they are started and stopped together. Nil
// entries are skipped.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: slices.DeleteFunc(slices.Clone(workers), func(w Worker) bool { return w == nil })}
}

// Start starts every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for _, worker := range slices.Backward(w.workers) {
		worker.Stop()
	}
}
