package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/calm-companion/internal/adapter"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/validators"
	"github.com/MKhiriev/calm-companion/models"
)

const (
	defaultJournalInterval = 30 * time.Second
	journalStopTimeout     = 5 * time.Second
)

// entryUploader is the part of the adapter the journal needs.
type entryUploader interface {
	SaveConversationEntries(ctx context.Context, entries []models.ConversationEntry) error
}

type clientJournalJob struct {
	uploader entryUploader
	enabled  bool

	queueMu sync.Mutex
	queue   []models.ConversationEntry

	// flushMu serialises uploads so one batch is never sent twice.
	flushMu sync.Mutex

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientJournalJob creates a journal that uploads recorded messages every
// interval once started. A disabled journal drops everything it receives.
func NewClientJournalJob(uploader entryUploader, enabled bool, logger *logger.Logger) ClientJournalJob {
	return &clientJournalJob{uploader: uploader, enabled: enabled, logger: logger}
}

func (j *clientJournalJob) Record(msg models.Message) {
	if !j.enabled {
		return
	}

	entry := models.ConversationEntry{
		Sender:    msg.Sender,
		Message:   msg.Text,
		Timestamp: msg.Timestamp,
	}

	j.queueMu.Lock()
	j.queue = append(j.queue, entry)
	j.queueMu.Unlock()
}

func (j *clientJournalJob) Pending() int {
	j.queueMu.Lock()
	defer j.queueMu.Unlock()
	return len(j.queue)
}

// Start stops any previously running loop, then flushes every interval until
// ctx is cancelled or Stop is called. Zero or negative intervals default to
// 30 seconds.
func (j *clientJournalJob) Start(ctx context.Context, interval time.Duration) {
	if !j.enabled {
		return
	}
	if interval <= 0 {
		interval = defaultJournalInterval
	}

	j.stopLoop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.Flush(jobCtx); err != nil {
					j.logger.Warn().Err(err).Str("func", "*clientJournalJob.Start").
						Int("pending", j.Pending()).Msg("journal flush failed")
				}
			}
		}
	}()
}

func (j *clientJournalJob) Stop() {
	j.stopLoop()

	ctx, cancel := context.WithTimeout(context.Background(), journalStopTimeout)
	defer cancel()
	if err := j.Flush(ctx); err != nil {
		j.logger.Err(err).Str("func", "*clientJournalJob.Stop").
			Int("pending", j.Pending()).Msg("final journal flush failed")
	}
}

func (j *clientJournalJob) stopLoop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientJournalJob) Flush(ctx context.Context) error {
	j.flushMu.Lock()
	defer j.flushMu.Unlock()

	for {
		batch := j.take(validators.MaxEntriesInBatch)
		if len(batch) == 0 {
			return nil
		}

		err := j.uploader.SaveConversationEntries(ctx, batch)
		if err == nil {
			continue
		}

		// A rejected payload will be rejected again, so it is dropped
		// instead of blocking the queue.
		if errors.Is(err, adapter.ErrBadRequest) {
			j.logger.Err(err).Str("func", "*clientJournalJob.Flush").
				Int("dropped", len(batch)).Msg("journal batch rejected by backend")
			continue
		}

		j.requeue(batch)
		return fmt.Errorf("upload journal batch: %w", mapAdapterError(err))
	}
}

// Discard empties the queue and returns how many entries were dropped. It
// waits for an in-flight Flush so a failed batch cannot be requeued after it.
func (j *clientJournalJob) Discard() int {
	j.flushMu.Lock()
	defer j.flushMu.Unlock()

	j.queueMu.Lock()
	defer j.queueMu.Unlock()

	n := len(j.queue)
	j.queue = nil
	return n
}

func (j *clientJournalJob) take(limit int) []models.ConversationEntry {
	j.queueMu.Lock()
	defer j.queueMu.Unlock()

	n := min(limit, len(j.queue))
	if n == 0 {
		return nil
	}

	batch := make([]models.ConversationEntry, n)
	copy(batch, j.queue[:n])
	j.queue = j.queue[n:]
	return batch
}

func (j *clientJournalJob) requeue(batch []models.ConversationEntry) {
	j.queueMu.Lock()
	defer j.queueMu.Unlock()

	j.queue = append(batch, j.queue...)
}
