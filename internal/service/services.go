package service

import (
	"github.com/MKhiriev/calm-companion/internal/config"
	"github.com/MKhiriev/calm-companion/internal/crypto"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/store"
	"github.com/MKhiriev/calm-companion/internal/validators"
	"github.com/MKhiriev/calm-companion/models"
)

type Services struct {
	AuthService         AuthService
	ProfileService      ProfileService
	RoleService         RoleService
	MessageService      MessageService
	LocaleService       LocaleService
	AnalysisService     AnalysisService
	TextService         TextService
	ConversationService ConversationService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	localeSvc := NewLocaleService(storages.ProfileRepository, logger)
	validator := validators.NewCompanionValidator(localeSvc.IsSupported)
	messageSvc := NewMessageService()

	profileSvc := NewProfileValidationService(validator).
		Wrap(NewProfileService(storages.ProfileRepository, localeSvc, logger))
	conversationSvc := NewConversationValidationService(validator).
		Wrap(NewConversationService(storages.ConversationRepository, localeSvc, messageSvc, logger))

	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, crypto.NewBcryptHasher(cfg.PasswordCost), validator, cfg, logger),
		ProfileService:      profileSvc,
		RoleService:         NewRoleService(storages.UserRepository, logger),
		MessageService:      messageSvc,
		LocaleService:       localeSvc,
		AnalysisService:     NewAnalysisService(validator),
		TextService:         NewTextService(validator),
		ConversationService: conversationSvc,
		AppInfoService:      NewAppInfoService(buildInfo, logger),
	}
}
