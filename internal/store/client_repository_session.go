package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveSession replaces the stored session.
func (s *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, saveSession, session.UserID, session.Login, session.Token, session.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Int64("user_id", session.UserID).
			Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetSession returns [ErrLocalSessionNotFound] when nobody is logged in.
func (s *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	var session models.Session

	err := s.DB.QueryRowContext(ctx, getSession).
		Scan(&session.UserID, &session.Login, &session.Token, &session.CreatedAt)
	switch {
	case err == nil:
		return session, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Session{}, ErrLocalSessionNotFound
	default:
		logger.FromContext(ctx).Err(err).Str("func", "sessionRepository.GetSession").Msg("failed to read session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (s *sessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, deleteSession); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionRepository.DeleteSession").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
