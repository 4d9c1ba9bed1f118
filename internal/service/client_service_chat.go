package service

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/calm-companion/internal/adapter"
	"github.com/MKhiriev/calm-companion/internal/cache"
	"github.com/MKhiriev/calm-companion/internal/classifier"
	"github.com/MKhiriev/calm-companion/internal/config"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/utils"
	"github.com/MKhiriev/calm-companion/models"
)

type chatSession struct {
	adapter  adapter.ServerAdapter
	cache    *cache.QueryCache
	recorder MessageRecorder
	ids      *utils.UUIDGenerator

	delayMin time.Duration
	delayMax time.Duration
	now      func() time.Time

	mu       sync.Mutex
	messages []models.Message
	typing   bool

	logger *logger.Logger
}

// NewChatSession builds an empty chat. recorder may be nil.
func NewChatSession(serverAdapter adapter.ServerAdapter, queryCache *cache.QueryCache, recorder MessageRecorder, cfg config.ClientApp, logger *logger.Logger) ChatSession {
	delayMin, delayMax := cfg.ReplyDelayMin, cfg.ReplyDelayMax
	if delayMax < delayMin {
		delayMin, delayMax = delayMax, delayMin
	}

	return &chatSession{
		adapter:  serverAdapter,
		cache:    queryCache,
		recorder: recorder,
		ids:      utils.NewUUIDGenerator(),
		delayMin: delayMin,
		delayMax: delayMax,
		now:      time.Now,
		logger:   logger,
	}
}

func (c *chatSession) Welcome(ctx context.Context) models.Message {
	c.mu.Lock()
	if len(c.messages) > 0 {
		first := c.messages[0]
		c.mu.Unlock()
		return first
	}
	c.mu.Unlock()

	text, err := cache.Fetch(ctx, c.cache, cache.KeyStaticMessage, c.adapter.GetStaticMessage)
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "*chatSession.Welcome").Msg("using built-in welcome message")
	}
	if strings.TrimSpace(text) == "" {
		text = classifier.WelcomeFallback
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.messages) > 0 {
		return c.messages[0]
	}
	return c.appendLocked(models.SenderAssistant, text)
}

func (c *chatSession) Send(text string) (models.Message, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Message{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.typing {
		return models.Message{}, false
	}

	msg := c.appendLocked(models.SenderUser, text)
	c.typing = true
	return msg, true
}

func (c *chatSession) Reply(ctx context.Context, text string) (models.Message, error) {
	defer c.setTyping(false)

	if delay := c.delay(); delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return models.Message{}, ctx.Err()
		case <-timer.C:
		}
	}

	fallback, err := cache.Fetch(ctx, c.cache, cache.KeyAssistantMessage, c.adapter.GetStaticAssistantMessage)
	if err != nil || strings.TrimSpace(fallback) == "" {
		fallback = classifier.DefaultReply
	}
	category, reply := classifier.Respond(text, fallback)
	c.logger.Debug().Str("func", "*chatSession.Reply").Str("category", category.String()).Msg("reply selected")

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.appendLocked(models.SenderAssistant, reply), nil
}

func (c *chatSession) Messages() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *chatSession) Typing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.typing
}

func (c *chatSession) LastAssistantMessage() (models.Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Sender == models.SenderAssistant {
			return c.messages[i], true
		}
	}
	return models.Message{}, false
}

func (c *chatSession) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
	c.typing = false
}

// appendLocked must be called with c.mu held.
func (c *chatSession) appendLocked(sender models.Sender, text string) models.Message {
	msg := models.Message{
		ID:        c.ids.Generate(),
		Sender:    sender,
		Text:      text,
		Timestamp: c.now().UTC(),
	}
	c.messages = append(c.messages, msg)

	if c.recorder != nil {
		c.recorder.Record(msg)
	}
	return msg
}

func (c *chatSession) setTyping(v bool) {
	c.mu.Lock()
	c.typing = v
	c.mu.Unlock()
}

func (c *chatSession) delay() time.Duration {
	if c.delayMax <= c.delayMin {
		return c.delayMin
	}
	return c.delayMin + rand.N(c.delayMax-c.delayMin+1)
}
