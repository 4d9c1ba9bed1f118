package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/store"
	"github.com/MKhiriev/calm-companion/models"
)

type roleService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewRoleService(userRepository store.UserRepository, logger *logger.Logger) RoleService {
	return &roleService{userRepository: userRepository, logger: logger}
}

// GetRole reads the role from the users table rather than the token, so a
// reassignment is visible before the token expires.
func (r *roleService) GetRole(ctx context.Context, userID int64) (models.UserRole, error) {
	user, err := r.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	return user.Role, nil
}

func (r *roleService) AssignRole(ctx context.Context, userID int64, role models.UserRole) error {
	if !role.Valid() {
		return ErrInvalidRole
	}

	if err := r.userRepository.UpdateRole(ctx, userID, role); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Str("role", string(role)).Msg("role update failed")
		return fmt.Errorf("update role: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", userID).Str("role", string(role)).Msg("role assigned")
	return nil
}
