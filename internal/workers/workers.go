package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/calm-companion/internal/logger"
)

type entry struct {
	name     string
	job      Job
	interval time.Duration
}

// Workers is a group of background jobs sharing one lifecycle.
type Workers struct {
	mu      sync.Mutex
	jobs    []entry
	running bool

	logger *logger.Logger
}

func NewWorkers(logger *logger.Logger) *Workers {
	return &Workers{logger: logger}
}

// Add registers job under name. A nil job is ignored. Jobs added while the
// group is running are started on the next Start.
func (w *Workers) Add(name string, job Job, interval time.Duration) *Workers {
	if job == nil {
		return w
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.jobs = append(w.jobs, entry{name: name, job: job, interval: interval})
	return w
}

// Start launches every job. Calling Start on a running group restarts it.
func (w *Workers) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		w.stopLocked()
	}

	for _, e := range w.jobs {
		w.logger.Debug().Str("func", "*Workers.Start").
			Str("job", e.name).Dur("interval", e.interval).Msg("starting job")
		e.job.Start(ctx, e.interval)
	}
	w.running = true
}

// Stop stops every job, last registered first. It is safe to call on a
// group that is not running.
func (w *Workers) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	w.stopLocked()
}

func (w *Workers) stopLocked() {
	for i := len(w.jobs) - 1; i >= 0; i-- {
		w.logger.Debug().Str("func", "*Workers.Stop").
			Str("job", w.jobs[i].name).Msg("stopping job")
		w.jobs[i].job.Stop()
	}
	w.running = false
}

// Len reports the number of registered jobs.
func (w *Workers) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.jobs)
}
