// Package workers runs the client's background jobs as one group.
//
// The group starts every registered job with its own interval and stops
// them in reverse order, so a job registered later may depend on one
// registered earlier.
package workers

import (
	"context"
	"time"
)

// Job is a background loop that can be started and stopped repeatedly.
//
// Start must not block. Stop waits until the loop has exited and any final
// work is done.
type Job interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
