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

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the account and returns it with the server-assigned
// UserID, Role and CreatedAt. The returned user carries no password.
//
// A unique_violation on login becomes [ErrLoginTaken].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	role := user.Role
	if role == "" {
		role = models.RoleUser
	}

	row := r.db.QueryRowContext(ctx, createUser, user.Login, user.Password, role)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("login", user.Login).Msg("insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrLoginTaken
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", r.db.wrap(err))
		}
	}

	var created models.User
	if err := row.Scan(&created.UserID, &created.Login, &created.Role, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindUserByLogin returns the account including its password hash.
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByLogin", findUserByLogin, login)
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, fn, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&found.UserID, &found.Login, &found.Password, &found.Role, &found.CreatedAt)

	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, sql.ErrNoRows), postgresError(err) == pgerrcode.NoDataFound:
		log.Debug().Str("func", fn).Any("key", arg).Msg("user not found")
		return models.User{}, ErrUserNotFound
	default:
		log.Err(err).Str("func", fn).Any("key", arg).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", r.db.wrap(err))
	}
}

// UpdateRole sets the role of an existing user.
func (r *userRepository) UpdateRole(ctx context.Context, userID int64, role models.UserRole) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, updateUserRole, userID, role)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateRole").Int64("user_id", userID).Msg("update failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.wrap(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
