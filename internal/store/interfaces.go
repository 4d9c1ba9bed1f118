package store

import (
	"context"

	"github.com/MKhiriev/calm-companion/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts. User.Password holds the password hash.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateRole(ctx context.Context, userID int64, role models.UserRole) error
}

// ProfileRepository persists user profiles, one per user.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID int64) (models.UserProfile, error)
	SaveProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error)
}

// ConversationRepository persists conversation history.
type ConversationRepository interface {
	SaveEntries(ctx context.Context, userID int64, entries ...models.ConversationEntry) error
	GetEntries(ctx context.Context, filter models.HistoryFilter) ([]models.ConversationEntry, error)
}

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
