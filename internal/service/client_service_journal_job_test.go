package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/calm-companion/internal/adapter"
	"github.com/MKhiriev/calm-companion/internal/app"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/validators"
	"github.com/MKhiriev/calm-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyUploader records each uploaded batch and fails while err is set.
type spyUploader struct {
	mu      sync.Mutex
	batches [][]models.ConversationEntry
	err     error
}

func (s *spyUploader) SaveConversationEntries(_ context.Context, entries []models.ConversationEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.batches = append(s.batches, entries)
	return nil
}

func (s *spyUploader) uploaded() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.batches {
		n += len(b)
	}
	return n
}

func (s *spyUploader) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func userMessage(text string) models.Message {
	return models.Message{ID: text, Sender: models.SenderUser, Text: text, Timestamp: time.Now()}
}

// ─────────────────────────────────────────────
// Record / Flush
// ─────────────────────────────────────────────

func TestClientJournalJob_Disabled(t *testing.T) {
	spy := &spyUploader{}
	job := NewClientJournalJob(spy, false, logger.Nop())

	job.Record(userMessage("hello"))
	assert.Equal(t, 0, job.Pending())

	job.Start(context.Background(), time.Millisecond)
	job.Stop()
	assert.Equal(t, 0, spy.uploaded())
}

func TestClientJournalJob_Flush(t *testing.T) {
	spy := &spyUploader{}
	job := NewClientJournalJob(spy, true, logger.Nop())

	job.Record(userMessage("hello"))
	job.Record(models.Message{Sender: models.SenderAssistant, Text: "hi", Timestamp: time.Now()})
	require.Equal(t, 2, job.Pending())

	require.NoError(t, job.Flush(context.Background()))

	assert.Equal(t, 0, job.Pending())
	require.Len(t, spy.batches, 1)
	assert.Equal(t, "hello", spy.batches[0][0].Message)
	assert.Equal(t, models.SenderAssistant, spy.batches[0][1].Sender)
	assert.Empty(t, spy.batches[0][0].Language)
}

func TestClientJournalJob_Flush_Batches(t *testing.T) {
	spy := &spyUploader{}
	job := NewClientJournalJob(spy, true, logger.Nop())

	total := validators.MaxEntriesInBatch + 3
	for i := range total {
		job.Record(userMessage(fmt.Sprint(i)))
	}

	require.NoError(t, job.Flush(context.Background()))
	require.Len(t, spy.batches, 2)
	assert.Len(t, spy.batches[0], validators.MaxEntriesInBatch)
	assert.Len(t, spy.batches[1], 3)
}

func TestClientJournalJob_Flush_FailureRequeues(t *testing.T) {
	spy := &spyUploader{err: errors.New("connection refused")}
	job := NewClientJournalJob(spy, true, logger.Nop())

	job.Record(userMessage("first"))
	require.Error(t, job.Flush(context.Background()))
	job.Record(userMessage("second"))
	assert.Equal(t, 2, job.Pending())

	spy.setErr(nil)
	require.NoError(t, job.Flush(context.Background()))
	require.Len(t, spy.batches, 1)
	assert.Equal(t, "first", spy.batches[0][0].Message)
	assert.Equal(t, "second", spy.batches[0][1].Message)
}

func TestClientJournalJob_Flush_RejectedBatchDropped(t *testing.T) {
	spy := &spyUploader{err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgIntegrityCheckFailed)}
	job := NewClientJournalJob(spy, true, logger.Nop())

	job.Record(userMessage("hello"))
	require.NoError(t, job.Flush(context.Background()))
	assert.Equal(t, 0, job.Pending())
}

func TestClientJournalJob_Discard_UnsentEntriesDoNotReachNextSession(t *testing.T) {
	spy := &spyUploader{err: fmt.Errorf("%w: token expired", adapter.ErrUnauthorized)}
	job := NewClientJournalJob(spy, true, logger.Nop())

	job.Record(userMessage("I want to end it"))
	require.Error(t, job.Flush(context.Background()))
	require.Equal(t, 1, job.Pending())

	assert.Equal(t, 1, job.Discard())
	assert.Equal(t, 0, job.Pending())

	// next account logs in
	spy.setErr(nil)
	job.Record(userMessage("hello"))
	require.NoError(t, job.Flush(context.Background()))

	require.Len(t, spy.batches, 1)
	require.Len(t, spy.batches[0], 1)
	assert.Equal(t, "hello", spy.batches[0][0].Message)
}

func TestClientJournalJob_Discard_Empty(t *testing.T) {
	job := NewClientJournalJob(&spyUploader{}, true, logger.Nop())

	assert.Equal(t, 0, job.Discard())
}

func TestClientJournalJob_Flush_MapsError(t *testing.T) {
	spy := &spyUploader{err: adapter.ErrUnauthorized}
	job := NewClientJournalJob(spy, true, logger.Nop())

	job.Record(userMessage("hello"))
	err := job.Flush(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, 1, job.Pending())
}

// ─────────────────────────────────────────────
// Start / Stop
// ─────────────────────────────────────────────

func TestClientJournalJob_Start_FlushesOnTicker(t *testing.T) {
	spy := &spyUploader{}
	job := NewClientJournalJob(spy, true, logger.Nop())

	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	job.Record(userMessage("hello"))
	assert.Eventually(t, func() bool { return spy.uploaded() == 1 }, time.Second, 5*time.Millisecond)
}

func TestClientJournalJob_Stop_FlushesRemaining(t *testing.T) {
	spy := &spyUploader{}
	job := NewClientJournalJob(spy, true, logger.Nop())

	job.Start(context.Background(), time.Hour)
	job.Record(userMessage("hello"))
	job.Stop()

	assert.Equal(t, 1, spy.uploaded())
	assert.Equal(t, 0, job.Pending())
}

func TestClientJournalJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientJournalJob(&spyUploader{}, true, logger.Nop())
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientJournalJob_Start_Restart(t *testing.T) {
	spy := &spyUploader{}
	job := NewClientJournalJob(spy, true, logger.Nop())

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	job.Record(userMessage("hello"))
	assert.Eventually(t, func() bool { return spy.uploaded() == 1 }, time.Second, 5*time.Millisecond)
}
