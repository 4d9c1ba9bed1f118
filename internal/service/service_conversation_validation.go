package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/calm-companion/internal/validators"
	"github.com/MKhiriev/calm-companion/models"
)

// ConversationValidationService checks journal batches before they reach the
// wrapped ConversationService. The integrity hash is verified by the HTTP
// layer, so only the entries are validated here.
type ConversationValidationService struct {
	inner     ConversationService
	validator validators.Validator
}

func NewConversationValidationService(validator validators.Validator) ConversationServiceWrapper {
	return &ConversationValidationService{validator: validator}
}

func (v *ConversationValidationService) SaveEntries(ctx context.Context, userID int64, entries []models.ConversationEntry) error {
	if userID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}

	req := models.SaveEntriesRequest{Entries: entries}
	if err := v.validator.Validate(ctx, req, validators.FieldEntries); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.SaveEntries(ctx, userID, entries)
}

func (v *ConversationValidationService) GetHistory(ctx context.Context, userID int64, locale string) ([]models.ConversationEntry, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	return v.inner.GetHistory(ctx, userID, locale)
}

func (v *ConversationValidationService) Wrap(inner ConversationService) ConversationService {
	v.inner = inner
	return v
}
