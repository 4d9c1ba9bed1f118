package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/calm-companion/internal/config"
	"github.com/MKhiriev/calm-companion/internal/logger"
)

// Storages groups the backend repositories over one PostgreSQL pool.
type Storages struct {
	UserRepository         UserRepository
	ProfileRepository      ProfileRepository
	ConversationRepository ConversationRepository

	db *DB
}

// NewStorages connects to cfg.DSN, migrates the schema and wires the
// repositories.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.MigratePostgres(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:         NewUserRepository(db, logger),
		ProfileRepository:      NewProfileRepository(db, logger),
		ConversationRepository: NewConversationRepository(db, logger),
		db:                     db,
	}
}

// Ping implements [HealthChecker].
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storages) Close() error {
	return s.db.Close()
}
