package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/validators"
	"github.com/MKhiriev/calm-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisService(t *testing.T) {
	svc := NewAnalysisService(validators.NewCompanionValidator(nil))
	ctx := context.Background()

	res, err := svc.AnalyzeSentiment(ctx, "I feel so anxious and stressed")
	require.NoError(t, err)
	assert.Equal(t, models.SentimentAnxious, res.Sentiment)
	assert.NotEmpty(t, res.Color)

	lang, err := svc.DetectLanguage(ctx, "enna da romba tension")
	require.NoError(t, err)
	assert.Equal(t, models.LocaleTanglish, lang)

	_, err = svc.AnalyzeSentiment(ctx, "   ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyText)

	_, err = svc.DetectLanguage(ctx, strings.Repeat("a", validators.MaxTextBytes+1))
	assert.ErrorIs(t, err, validators.ErrTextTooLarge)
}

func TestTextService(t *testing.T) {
	svc := NewTextService(validators.NewCompanionValidator(nil))
	ctx := context.Background()

	out, err := svc.SentenceCase(ctx, "i AM fine. thanks")
	require.NoError(t, err)
	assert.Equal(t, "I am fine. Thanks", out)

	out, err = svc.Trim(ctx, "  so   much\tspace ")
	require.NoError(t, err)
	assert.Equal(t, "so much space", out)

	_, err = svc.Trim(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestMessageService(t *testing.T) {
	svc := NewMessageService()
	ctx := context.Background()

	assert.NotEmpty(t, svc.StaticMessage(ctx))
	assert.NotEmpty(t, svc.StaticAssistantMessage(ctx))
	assert.NotEqual(t, svc.StaticMessage(ctx), svc.StaticAssistantMessage(ctx))
}

func TestAppInfoService_GetVersion(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"), logger.Nop())

	assert.Equal(t, models.VersionInfo{Version: "1.2.3", Date: "2026-01-01", Commit: "abc123"}, svc.GetVersion(context.Background()))
}

func TestAppInfoService_GetVersion_Unset(t *testing.T) {
	svc := NewAppInfoService(models.AppBuildInfo{}, logger.Nop())

	assert.Equal(t, models.VersionInfo{Version: "N/A", Date: "N/A", Commit: "N/A"}, svc.GetVersion(context.Background()))
}
