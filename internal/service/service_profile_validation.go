package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/calm-companion/internal/validators"
	"github.com/MKhiriev/calm-companion/models"
)

// ProfileValidationService checks profiles before they reach the wrapped
// ProfileService.
type ProfileValidationService struct {
	inner     ProfileService
	validator validators.Validator
}

func NewProfileValidationService(validator validators.Validator) ProfileServiceWrapper {
	return &ProfileValidationService{validator: validator}
}

func (v *ProfileValidationService) GetProfile(ctx context.Context, userID int64) (models.UserProfile, error) {
	if userID <= 0 {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	return v.inner.GetProfile(ctx, userID)
}

func (v *ProfileValidationService) SaveProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	if err := v.validator.Validate(ctx, profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.SaveProfile(ctx, profile)
}

func (v *ProfileValidationService) Wrap(inner ProfileService) ProfileService {
	v.inner = inner
	return v
}
