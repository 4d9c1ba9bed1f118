package service

import (
	"context"

	"github.com/MKhiriev/calm-companion/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService manages the one profile each user may have.
type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (models.UserProfile, error)
	SaveProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error)
}

type RoleService interface {
	GetRole(ctx context.Context, userID int64) (models.UserRole, error)
	AssignRole(ctx context.Context, userID int64, role models.UserRole) error
}

// MessageService serves the fixed texts the client shows in a chat.
type MessageService interface {
	StaticMessage(ctx context.Context) string
	StaticAssistantMessage(ctx context.Context) string
}

// LocaleService knows the supported languages and resolves locale codes.
type LocaleService interface {
	SupportedLocales(ctx context.Context) []models.Locale
	CurrentLocale(ctx context.Context, userID int64) (models.Locale, error)

	// Normalize maps a code to its canonical supported form. The second
	// result is false when the code is malformed or unsupported.
	Normalize(code string) (string, bool)
	IsSupported(code string) bool
}

type AnalysisService interface {
	AnalyzeSentiment(ctx context.Context, text string) (models.SentimentResponse, error)
	DetectLanguage(ctx context.Context, text string) (string, error)
}

type TextService interface {
	SentenceCase(ctx context.Context, text string) (string, error)
	Trim(ctx context.Context, text string) (string, error)
}

// ConversationService stores and lists journal entries.
type ConversationService interface {
	SaveEntries(ctx context.Context, userID int64, entries []models.ConversationEntry) error
	GetHistory(ctx context.Context, userID int64, locale string) ([]models.ConversationEntry, error)
}

type AppInfoService interface {
	GetVersion(ctx context.Context) models.VersionInfo
}
