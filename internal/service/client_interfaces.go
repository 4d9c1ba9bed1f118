package service

import (
	"context"
	"time"

	"github.com/MKhiriev/calm-companion/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService manages the client's login session. The bearer token is
// kept in the local session store so a restarted client stays logged in.
type ClientAuthService interface {
	// Register creates an account on the backend and persists the session.
	Register(ctx context.Context, user models.User) (models.Session, error)

	// Login authenticates against the backend and persists the session.
	Login(ctx context.Context, user models.User) (models.Session, error)

	// Restore loads the stored session and hands its token to the adapter.
	// It returns ErrNotAuthenticated when nobody is logged in.
	Restore(ctx context.Context) (models.Session, error)

	// Logout deletes the stored session, drops the token and clears the
	// query cache.
	Logout(ctx context.Context) error
}

// ClientProfileService reads and writes the caller's profile through the
// query cache.
type ClientProfileService interface {
	// GetProfile returns the profile and true, or a zero profile and false
	// when the caller has not created one yet.
	GetProfile(ctx context.Context) (models.UserProfile, bool, error)

	// SaveProfile stores the profile and invalidates the cached copy.
	SaveProfile(ctx context.Context, profile models.UserProfile) error
}

// ClientLocaleService lists the backend's languages.
type ClientLocaleService interface {
	SupportedLocales(ctx context.Context) ([]models.Locale, error)
	CurrentLocale(ctx context.Context) (models.Locale, error)
}

type ClientRoleService interface {
	GetRole(ctx context.Context) (models.RoleResponse, error)
}

// ClientHistoryService lists stored conversation entries.
type ClientHistoryService interface {
	// GetHistory returns entries oldest first. An empty locale means all
	// languages.
	GetHistory(ctx context.Context, locale string) ([]models.ConversationEntry, error)
}

type ClientAppInfoService interface {
	ClientVersion() models.VersionInfo
	ServerVersion(ctx context.Context) (models.VersionInfo, error)
}

// ChatSession holds the messages of one chat view in insertion order.
type ChatSession interface {
	// Welcome inserts the backend's welcome message, or a built-in greeting
	// when it cannot be fetched, as the first assistant message. It does
	// nothing when the session already has messages.
	Welcome(ctx context.Context) models.Message

	// Send trims text and appends it as a user message. It returns false
	// and appends nothing when text is blank or a reply is pending.
	Send(text string) (models.Message, bool)

	// Reply waits the simulated typing delay, then appends and returns the
	// canned reply to text. A cancelled ctx ends the wait with ctx.Err()
	// and appends nothing.
	Reply(ctx context.Context, text string) (models.Message, error)

	Messages() []models.Message
	Typing() bool
	LastAssistantMessage() (models.Message, bool)
	Reset()
}

// MessageRecorder receives every message appended to a chat session.
type MessageRecorder interface {
	Record(msg models.Message)
}

// ClientJournalJob mirrors chat messages to the backend history in batches.
type ClientJournalJob interface {
	MessageRecorder

	// Start launches the background flush loop. Any running loop is stopped
	// first.
	Start(ctx context.Context, interval time.Duration)

	// Stop ends the loop, waits for it and flushes what is still queued.
	Stop()

	// Flush uploads the queued entries now. On failure they stay queued.
	Flush(ctx context.Context) error

	// Discard drops everything still queued and reports how many entries
	// were lost. Called on logout so entries never move to another account.
	Discard() int

	Pending() int
}
