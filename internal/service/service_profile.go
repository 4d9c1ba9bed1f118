package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/store"
	"github.com/MKhiriev/calm-companion/models"
)

type profileService struct {
	profileRepository store.ProfileRepository
	localeService     LocaleService

	logger *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, localeService LocaleService, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		localeService:     localeService,
		logger:            logger,
	}
}

func (p *profileService) GetProfile(ctx context.Context, userID int64) (models.UserProfile, error) {
	profile, err := p.profileRepository.GetProfile(ctx, userID)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// SaveProfile trims the name and stores the canonical form of the preferred
// language. An empty language clears the preference.
func (p *profileService) SaveProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	profile.Name = strings.TrimSpace(profile.Name)

	if code := strings.TrimSpace(profile.Language()); code == "" {
		profile.PreferredLanguage = nil
	} else {
		canonical, ok := p.localeService.Normalize(code)
		if !ok {
			log.Warn().Str("language", code).Int64("user_id", profile.UserID).Msg("unknown preferred language")
			return models.UserProfile{}, ErrUnknownLanguage
		}
		profile.PreferredLanguage = &canonical
	}

	saved, err := p.profileRepository.SaveProfile(ctx, profile)
	if err != nil {
		log.Err(err).Int64("user_id", profile.UserID).Msg("failed to save profile")
		return models.UserProfile{}, fmt.Errorf("save profile: %w", err)
	}

	return saved, nil
}
