package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/calm-companion/internal/analysis"
	"github.com/MKhiriev/calm-companion/internal/classifier"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/store"
	"github.com/MKhiriev/calm-companion/models"
)

// HistoryLimit caps the number of entries returned by one history request.
const HistoryLimit = 500

type conversationService struct {
	conversationRepository store.ConversationRepository
	localeService          LocaleService
	messageService         MessageService

	logger *logger.Logger
}

func NewConversationService(conversationRepository store.ConversationRepository, localeService LocaleService, messageService MessageService, logger *logger.Logger) ConversationService {
	return &conversationService{
		conversationRepository: conversationRepository,
		localeService:          localeService,
		messageService:         messageService,
		logger:                 logger,
	}
}

// SaveEntries enriches the batch before storing it: a missing language is
// detected from the message, a known one is canonicalised, a missing colour
// comes from the sentiment of the message and user messages get the canned
// reply the companion would give as their expected reply.
func (c *conversationService) SaveEntries(ctx context.Context, userID int64, entries []models.ConversationEntry) error {
	log := logger.FromContext(ctx)

	fallback := c.messageService.StaticAssistantMessage(ctx)
	enriched := make([]models.ConversationEntry, len(entries))
	for i, entry := range entries {
		entry.UserID = userID

		if entry.Language == "" {
			entry.Language = analysis.DetectLanguage(entry.Message)
		} else if code, ok := c.localeService.Normalize(entry.Language); ok {
			entry.Language = code
		} else {
			return fmt.Errorf("entry %d: %w", i, ErrUnknownLanguage)
		}

		if entry.Color == "" {
			entry.Color = analysis.Analyze(entry.Message).Color
		}

		if entry.Sender == models.SenderUser && entry.ExpectedReply == "" {
			_, entry.ExpectedReply = classifier.Respond(entry.Message, fallback)
		}

		enriched[i] = entry
	}

	if err := c.conversationRepository.SaveEntries(ctx, userID, enriched...); err != nil {
		log.Err(err).Int64("user_id", userID).Int("entries", len(enriched)).Msg("failed to save conversation entries")
		return fmt.Errorf("save conversation entries: %w", err)
	}

	log.Debug().Int64("user_id", userID).Int("entries", len(enriched)).Msg("conversation entries saved")
	return nil
}

// GetHistory returns the user's entries oldest first. A non-empty locale
// restricts the result to that language.
func (c *conversationService) GetHistory(ctx context.Context, userID int64, locale string) ([]models.ConversationEntry, error) {
	filter := models.HistoryFilter{UserID: userID, Limit: HistoryLimit}

	if locale != "" {
		code, ok := c.localeService.Normalize(locale)
		if !ok {
			return nil, ErrUnknownLanguage
		}
		filter.Locale = code
	}

	entries, err := c.conversationRepository.GetEntries(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get conversation entries: %w", err)
	}
	if entries == nil {
		entries = []models.ConversationEntry{}
	}

	return entries, nil
}
