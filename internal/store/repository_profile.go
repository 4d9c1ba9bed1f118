package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/models"
	"github.com/jackc/pgerrcode"
)

type profileRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// GetProfile returns [ErrProfileNotFound] when the user has none yet.
func (r *profileRepository) GetProfile(ctx context.Context, userID int64) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	profile, err := scanProfile(r.db.QueryRowContext(ctx, getProfile, userID))
	switch {
	case err == nil:
		return profile, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.UserProfile{}, ErrProfileNotFound
	default:
		log.Err(err).Str("func", "*profileRepository.GetProfile").Int64("user_id", userID).Msg("profile lookup failed")
		return models.UserProfile{}, fmt.Errorf("unexpected DB error: %w", r.db.wrap(err))
	}
}

// SaveProfile creates or replaces the profile of profile.UserID.
func (r *profileRepository) SaveProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	var language sql.NullString
	if profile.PreferredLanguage != nil {
		language = sql.NullString{String: *profile.PreferredLanguage, Valid: true}
	}

	saved, err := scanProfile(r.db.QueryRowContext(ctx, saveProfile, profile.UserID, profile.Name, language))
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.SaveProfile").Int64("user_id", profile.UserID).Msg("profile upsert failed")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.UserProfile{}, ErrUserNotFound
		}
		return models.UserProfile{}, fmt.Errorf("unexpected DB error: %w", r.db.wrap(err))
	}

	return saved, nil
}

func scanProfile(row *sql.Row) (models.UserProfile, error) {
	var (
		profile  models.UserProfile
		language sql.NullString
	)

	if err := row.Scan(&profile.UserID, &profile.Name, &language, &profile.UpdatedAt); err != nil {
		return models.UserProfile{}, err
	}
	if language.Valid {
		profile.PreferredLanguage = &language.String
	}

	return profile, nil
}
