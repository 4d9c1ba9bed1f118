package service

import (
	"context"

	"github.com/MKhiriev/calm-companion/internal/adapter"
	"github.com/MKhiriev/calm-companion/internal/cache"
	"github.com/MKhiriev/calm-companion/models"
)

type clientLocaleService struct {
	adapter adapter.ServerAdapter
	cache   *cache.QueryCache
}

func NewClientLocaleService(serverAdapter adapter.ServerAdapter, queryCache *cache.QueryCache) ClientLocaleService {
	return &clientLocaleService{adapter: serverAdapter, cache: queryCache}
}

func (l *clientLocaleService) SupportedLocales(ctx context.Context) ([]models.Locale, error) {
	locales, err := cache.Fetch(ctx, l.cache, cache.KeyLocales, l.adapter.GetSupportedLocales)
	return locales, mapAdapterError(err)
}

func (l *clientLocaleService) CurrentLocale(ctx context.Context) (models.Locale, error) {
	locale, err := cache.Fetch(ctx, l.cache, cache.KeyCurrentLocale, l.adapter.GetCurrentLocale)
	return locale, mapAdapterError(err)
}

type clientRoleService struct {
	adapter adapter.ServerAdapter
	cache   *cache.QueryCache
}

func NewClientRoleService(serverAdapter adapter.ServerAdapter, queryCache *cache.QueryCache) ClientRoleService {
	return &clientRoleService{adapter: serverAdapter, cache: queryCache}
}

func (r *clientRoleService) GetRole(ctx context.Context) (models.RoleResponse, error) {
	role, err := cache.Fetch(ctx, r.cache, cache.KeyRole, r.adapter.GetRole)
	return role, mapAdapterError(err)
}

// History is never cached: the journal may have written since the last read.
type clientHistoryService struct {
	adapter adapter.ServerAdapter
}

func NewClientHistoryService(serverAdapter adapter.ServerAdapter) ClientHistoryService {
	return &clientHistoryService{adapter: serverAdapter}
}

func (h *clientHistoryService) GetHistory(ctx context.Context, locale string) ([]models.ConversationEntry, error) {
	entries, err := h.adapter.GetConversationHistory(ctx, locale)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return entries, nil
}

type clientAppInfoService struct {
	buildInfo models.AppBuildInfo
	adapter   adapter.ServerAdapter
}

func NewClientAppInfoService(buildInfo models.AppBuildInfo, serverAdapter adapter.ServerAdapter) ClientAppInfoService {
	return &clientAppInfoService{buildInfo: buildInfo, adapter: serverAdapter}
}

func (a *clientAppInfoService) ClientVersion() models.VersionInfo {
	return a.buildInfo.ToVersionInfo()
}

func (a *clientAppInfoService) ServerVersion(ctx context.Context) (models.VersionInfo, error) {
	info, err := a.adapter.Version(ctx)
	return info, mapAdapterError(err)
}
