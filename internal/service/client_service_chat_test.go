package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/calm-companion/internal/cache"
	"github.com/MKhiriev/calm-companion/internal/classifier"
	"github.com/MKhiriev/calm-companion/internal/config"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/mock"
	"github.com/MKhiriev/calm-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type spyRecorder struct {
	mu       sync.Mutex
	messages []models.Message
}

func (s *spyRecorder) Record(msg models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

func (s *spyRecorder) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

func newTestChat(t *testing.T, cfg config.ClientApp) (ChatSession, *mock.MockServerAdapter, *spyRecorder) {
	t.Helper()
	a := mock.NewMockServerAdapter(gomock.NewController(t))
	rec := &spyRecorder{}
	return NewChatSession(a, cache.New(time.Minute), rec, cfg, logger.Nop()), a, rec
}

// ─────────────────────────────────────────────
// Welcome
// ─────────────────────────────────────────────

func TestChatSession_Welcome_FromBackend(t *testing.T) {
	chat, a, rec := newTestChat(t, config.ClientApp{})
	a.EXPECT().GetStaticMessage(gomock.Any()).Return("Vanakkam!", nil).Times(1)

	first := chat.Welcome(context.Background())
	again := chat.Welcome(context.Background())

	assert.Equal(t, "Vanakkam!", first.Text)
	assert.Equal(t, models.SenderAssistant, first.Sender)
	assert.Equal(t, first.ID, again.ID)
	assert.Len(t, chat.Messages(), 1)
	assert.Equal(t, 1, rec.count())
}

func TestChatSession_Welcome_Fallback(t *testing.T) {
	chat, a, _ := newTestChat(t, config.ClientApp{})
	a.EXPECT().GetStaticMessage(gomock.Any()).Return("", errors.New("offline"))

	msg := chat.Welcome(context.Background())
	assert.Equal(t, classifier.WelcomeFallback, msg.Text)
}

// ─────────────────────────────────────────────
// Send / Reply
// ─────────────────────────────────────────────

func TestChatSession_Send(t *testing.T) {
	chat, _, _ := newTestChat(t, config.ClientApp{})

	_, ok := chat.Send("   ")
	assert.False(t, ok)

	msg, ok := chat.Send("  I feel anxious  ")
	require.True(t, ok)
	assert.Equal(t, "I feel anxious", msg.Text)
	assert.True(t, msg.IsUser())
	assert.NotEmpty(t, msg.ID)
	assert.True(t, chat.Typing())

	_, ok = chat.Send("another")
	assert.False(t, ok, "send is refused while a reply is pending")
}

func TestChatSession_Reply_Categories(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"anxiety", "I feel so anxious today", classifier.AnxietyReply},
		{"sadness", "I am lonely", classifier.SadnessReply},
		{"general uses backend message", "I went for a walk", "Tell me more."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat, a, rec := newTestChat(t, config.ClientApp{})
			a.EXPECT().GetStaticAssistantMessage(gomock.Any()).Return("Tell me more.", nil).AnyTimes()

			_, ok := chat.Send(tt.text)
			require.True(t, ok)

			reply, err := chat.Reply(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, reply.Text)
			assert.False(t, chat.Typing())
			assert.Equal(t, 2, rec.count())

			last, ok := chat.LastAssistantMessage()
			require.True(t, ok)
			assert.Equal(t, reply.ID, last.ID)
		})
	}
}

func TestChatSession_Reply_FallbackWhenOffline(t *testing.T) {
	chat, a, _ := newTestChat(t, config.ClientApp{})
	a.EXPECT().GetStaticAssistantMessage(gomock.Any()).Return("", errors.New("offline"))

	reply, err := chat.Reply(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, classifier.DefaultReply, reply.Text)
}

func TestChatSession_Reply_Cancelled(t *testing.T) {
	chat, _, rec := newTestChat(t, config.ClientApp{ReplyDelayMin: time.Minute, ReplyDelayMax: time.Minute})

	_, ok := chat.Send("hello")
	require.True(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := chat.Reply(ctx, "hello")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, chat.Typing())
	assert.Len(t, chat.Messages(), 1)
	assert.Equal(t, 1, rec.count())
}

func TestChatSession_Reset(t *testing.T) {
	chat, _, _ := newTestChat(t, config.ClientApp{})
	chat.Send("hello")

	chat.Reset()

	assert.Empty(t, chat.Messages())
	assert.False(t, chat.Typing())
	_, ok := chat.LastAssistantMessage()
	assert.False(t, ok)
}

func TestChatSession_Delay(t *testing.T) {
	c := NewChatSession(nil, nil, nil, config.ClientApp{
		ReplyDelayMin: 3 * time.Second,
		ReplyDelayMax: time.Second,
	}, logger.Nop()).(*chatSession)

	for range 50 {
		d := c.delay()
		assert.GreaterOrEqual(t, d, time.Second)
		assert.LessOrEqual(t, d, 3*time.Second)
	}
}
