package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/calm-companion/internal/adapter"
	"github.com/MKhiriev/calm-companion/internal/cache"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/store"
	"github.com/MKhiriev/calm-companion/models"
)

type clientAuthService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	cache    *cache.QueryCache

	now    func() time.Time
	logger *logger.Logger
}

func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, queryCache *cache.QueryCache, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions: sessions,
		adapter:  serverAdapter,
		cache:    queryCache,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.Session, error) {
	return a.authenticate(ctx, user, a.adapter.Register)
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	return a.authenticate(ctx, user, a.adapter.Login)
}

func (a *clientAuthService) authenticate(
	ctx context.Context,
	user models.User,
	call func(context.Context, models.User) (models.Token, error),
) (models.Session, error) {
	user.Login = strings.TrimSpace(user.Login)
	if user.Login == "" || user.Password == "" {
		return models.Session{}, ErrCredentialsRequired
	}

	token, err := call(ctx, user)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	session := models.Session{
		UserID:    token.UserID,
		Login:     user.Login,
		Token:     token.SignedString,
		CreatedAt: a.now().UTC(),
	}

	// The adapter already holds the token, so a failed write only costs the
	// session on the next start.
	if err = a.sessions.SaveSession(ctx, session); err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.authenticate").
			Int64("user_id", session.UserID).Msg("failed to persist session")
	}
	a.cache.Clear()

	return session, nil
}

func (a *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.GetSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, ErrNotAuthenticated
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("read local session: %w", err)
	}
	if !session.Valid() {
		return models.Session{}, ErrNotAuthenticated
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	a.cache.Clear()

	if err := a.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete local session: %w", err)
	}
	return nil
}
