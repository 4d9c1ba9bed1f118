package service

import (
	"github.com/MKhiriev/calm-companion/internal/adapter"
	"github.com/MKhiriev/calm-companion/internal/cache"
	"github.com/MKhiriev/calm-companion/internal/config"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/store"
	"github.com/MKhiriev/calm-companion/models"
)

type ClientServices struct {
	AuthService    ClientAuthService
	ProfileService ClientProfileService
	LocaleService  ClientLocaleService
	RoleService    ClientRoleService
	HistoryService ClientHistoryService
	AppInfoService ClientAppInfoService
	Chat           ChatSession
	Journal        ClientJournalJob
}

func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	cfg *config.ClientConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *ClientServices {
	queryCache := cache.New(cfg.App.CacheTTL)
	journal := NewClientJournalJob(serverAdapter, cfg.Workers.JournalEnabled, logger)

	return &ClientServices{
		AuthService:    NewClientAuthService(storages.SessionRepository, serverAdapter, queryCache, logger),
		ProfileService: NewClientProfileService(serverAdapter, queryCache),
		LocaleService:  NewClientLocaleService(serverAdapter, queryCache),
		RoleService:    NewClientRoleService(serverAdapter, queryCache),
		HistoryService: NewClientHistoryService(serverAdapter),
		AppInfoService: NewClientAppInfoService(buildInfo, serverAdapter),
		Chat:           NewChatSession(serverAdapter, queryCache, journal, cfg.App, logger),
		Journal:        journal,
	}
}
