package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/calm-companion/internal/adapter"
	"github.com/MKhiriev/calm-companion/internal/cache"
	"github.com/MKhiriev/calm-companion/models"
)

type clientProfileService struct {
	adapter adapter.ServerAdapter
	cache   *cache.QueryCache
}

func NewClientProfileService(serverAdapter adapter.ServerAdapter, queryCache *cache.QueryCache) ClientProfileService {
	return &clientProfileService{adapter: serverAdapter, cache: queryCache}
}

func (p *clientProfileService) GetProfile(ctx context.Context) (models.UserProfile, bool, error) {
	profile, err := cache.Fetch(ctx, p.cache, cache.KeyProfile, p.adapter.GetProfile)
	if errors.Is(err, adapter.ErrNotFound) {
		return models.UserProfile{}, false, nil
	}
	if err != nil {
		return models.UserProfile{}, false, mapAdapterError(err)
	}
	return profile, true, nil
}

func (p *clientProfileService) SaveProfile(ctx context.Context, profile models.UserProfile) error {
	profile.Name = strings.TrimSpace(profile.Name)
	if profile.Name == "" {
		return ErrEmptyName
	}
	if profile.PreferredLanguage != nil && *profile.PreferredLanguage == "" {
		profile.PreferredLanguage = nil
	}

	if err := p.adapter.SaveProfile(ctx, profile); err != nil {
		return mapAdapterError(err)
	}

	p.cache.Invalidate(cache.KeyProfile, cache.KeyCurrentLocale)
	return nil
}
