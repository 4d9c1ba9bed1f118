package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/calm-companion/internal/analysis"
	"github.com/MKhiriev/calm-companion/internal/validators"
	"github.com/MKhiriev/calm-companion/models"
)

type analysisService struct {
	validator validators.Validator
}

func NewAnalysisService(validator validators.Validator) AnalysisService {
	return &analysisService{validator: validator}
}

func (a *analysisService) AnalyzeSentiment(ctx context.Context, text string) (models.SentimentResponse, error) {
	if err := a.validator.Validate(ctx, models.TextRequest{Text: text}); err != nil {
		return models.SentimentResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return analysis.Analyze(text), nil
}

func (a *analysisService) DetectLanguage(ctx context.Context, text string) (string, error) {
	if err := a.validator.Validate(ctx, models.TextRequest{Text: text}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return analysis.DetectLanguage(text), nil
}

type textService struct {
	validator validators.Validator
}

func NewTextService(validator validators.Validator) TextService {
	return &textService{validator: validator}
}

func (t *textService) SentenceCase(ctx context.Context, text string) (string, error) {
	if err := t.validator.Validate(ctx, models.TextRequest{Text: text}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return analysis.SentenceCase(text), nil
}

func (t *textService) Trim(ctx context.Context, text string) (string, error) {
	if err := t.validator.Validate(ctx, models.TextRequest{Text: text}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return analysis.Trim(text), nil
}
