package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/calm-companion/internal/analysis"
	"github.com/MKhiriev/calm-companion/internal/classifier"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/mock"
	"github.com/MKhiriev/calm-companion/internal/store"
	"github.com/MKhiriev/calm-companion/internal/validators"
	"github.com/MKhiriev/calm-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestConversationService(t *testing.T) (ConversationService, *mock.MockConversationRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockConversationRepository(ctrl)
	locales := NewLocaleService(mock.NewMockProfileRepository(ctrl), logger.Nop())
	validator := validators.NewCompanionValidator(locales.IsSupported)

	svc := NewConversationValidationService(validator).
		Wrap(NewConversationService(repo, locales, NewMessageService(), logger.Nop()))
	return svc, repo
}

var entryTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// ─────────────────────────────────────────────
// SaveEntries
// ─────────────────────────────────────────────

func TestConversationService_SaveEntries_Enriches(t *testing.T) {
	svc, repo := newTestConversationService(t)

	entries := []models.ConversationEntry{
		{Sender: models.SenderUser, Message: "I feel so anxious", Timestamp: entryTime},
		{Sender: models.SenderAssistant, Message: "Let's breathe together", Language: "EN-in", Color: "#123456", Timestamp: entryTime.Add(time.Second)},
		{Sender: models.SenderUser, Message: "மனம் சரியில்லை", Timestamp: entryTime.Add(2 * time.Second)},
	}

	repo.EXPECT().SaveEntries(gomock.Any(), int64(4), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, userID int64, got ...models.ConversationEntry) error {
			require.Len(t, got, 3)
			for _, e := range got {
				assert.Equal(t, userID, e.UserID)
			}

			assert.Equal(t, models.LocaleEnglish, got[0].Language)
			assert.Equal(t, analysis.Color(models.SentimentAnxious), got[0].Color)
			assert.Equal(t, classifier.AnxietyReply, got[0].ExpectedReply)

			assert.Equal(t, models.LocaleEnglish, got[1].Language)
			assert.Equal(t, "#123456", got[1].Color)
			assert.Empty(t, got[1].ExpectedReply)

			assert.Equal(t, models.LocaleTamil, got[2].Language)
			assert.Equal(t, staticAssistantMessage, got[2].ExpectedReply)
			return nil
		})

	require.NoError(t, svc.SaveEntries(context.Background(), 4, entries))
}

func TestConversationService_SaveEntries_UnknownLanguage(t *testing.T) {
	svc, _ := newTestConversationService(t)

	entries := []models.ConversationEntry{
		{Sender: models.SenderUser, Message: "bonjour", Language: "fr-FR", Timestamp: entryTime},
	}

	err := svc.SaveEntries(context.Background(), 4, entries)

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrUnknownLanguage)
}

func TestConversationService_SaveEntries_InvalidBatch(t *testing.T) {
	svc, _ := newTestConversationService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.SaveEntries(ctx, 4, nil), validators.ErrEmptyEntries)
	assert.ErrorIs(t, svc.SaveEntries(ctx, 0, []models.ConversationEntry{{}}), validators.ErrInvalidUserID)

	bad := []models.ConversationEntry{{Sender: "robot", Message: "hi", Timestamp: entryTime}}
	assert.ErrorIs(t, svc.SaveEntries(ctx, 4, bad), validators.ErrInvalidSender)
}

func TestConversationService_SaveEntries_StorageError(t *testing.T) {
	svc, repo := newTestConversationService(t)
	repo.EXPECT().SaveEntries(gomock.Any(), int64(4), gomock.Any()).Return(store.ErrTransient)

	err := svc.SaveEntries(context.Background(), 4, []models.ConversationEntry{
		{Sender: models.SenderUser, Message: "hello", Timestamp: entryTime},
	})

	assert.ErrorIs(t, err, store.ErrTransient)
}

// ─────────────────────────────────────────────
// GetHistory
// ─────────────────────────────────────────────

func TestConversationService_GetHistory(t *testing.T) {
	svc, repo := newTestConversationService(t)

	stored := []models.ConversationEntry{{ID: 1, Message: "hi"}}
	repo.EXPECT().GetEntries(gomock.Any(), models.HistoryFilter{UserID: 4, Limit: HistoryLimit}).Return(stored, nil)

	got, err := svc.GetHistory(context.Background(), 4, "")

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestConversationService_GetHistory_FilterIsCanonicalised(t *testing.T) {
	svc, repo := newTestConversationService(t)

	repo.EXPECT().
		GetEntries(gomock.Any(), models.HistoryFilter{UserID: 4, Locale: models.LocaleHindi, Limit: HistoryLimit}).
		Return(nil, nil)

	got, err := svc.GetHistory(context.Background(), 4, "hi-in")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestConversationService_GetHistory_UnknownLocale(t *testing.T) {
	svc, _ := newTestConversationService(t)

	_, err := svc.GetHistory(context.Background(), 4, "xx-unknown-tag")

	assert.ErrorIs(t, err, ErrUnknownLanguage)
}
