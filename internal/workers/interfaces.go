// Package workers runs the background jobs of the stager server. A worker
// is started once with the server context and stopped during shutdown.
package workers

import (
	"context"
	"time"
)

// Worker is a background job.
//
// Start launches the job and returns immediately; the job ends when ctx is
// cancelled or Stop is called. Stop blocks until the job has exited and is
// safe to call on a worker that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Sweeper closes idle staging sessions. It is implemented by
// service.StagingService.
type Sweeper interface {
	Sweep(ctx context.Context, now time.Time) int
}
