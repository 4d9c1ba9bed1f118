package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/mock"
	"github.com/MKhiriev/calm-companion/internal/store"
	"github.com/MKhiriev/calm-companion/internal/validators"
	"github.com/MKhiriev/calm-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProfileService(t *testing.T) (ProfileService, *mock.MockProfileRepository) {
	t.Helper()
	repo := mock.NewMockProfileRepository(gomock.NewController(t))
	locales := NewLocaleService(repo, logger.Nop())
	validator := validators.NewCompanionValidator(locales.IsSupported)

	svc := NewProfileValidationService(validator).Wrap(NewProfileService(repo, locales, logger.Nop()))
	return svc, repo
}

// ─────────────────────────────────────────────
// SaveProfile
// ─────────────────────────────────────────────

func TestProfileService_SaveProfile_TrimsAndCanonicalises(t *testing.T) {
	svc, repo := newTestProfileService(t)

	repo.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.UserProfile) (models.UserProfile, error) {
			assert.Equal(t, "Asha Rao", p.Name)
			require.NotNil(t, p.PreferredLanguage)
			assert.Equal(t, models.LocaleTamil, *p.PreferredLanguage)
			return p, nil
		})

	saved, err := svc.SaveProfile(context.Background(), models.UserProfile{
		UserID: 5, Name: "  Asha Rao ", PreferredLanguage: strPtr("TA-in"),
	})

	require.NoError(t, err)
	assert.Equal(t, "AR", saved.Initials())
}

func TestProfileService_SaveProfile_EmptyLanguageClearsPreference(t *testing.T) {
	svc, repo := newTestProfileService(t)

	repo.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.UserProfile) (models.UserProfile, error) {
			assert.Nil(t, p.PreferredLanguage)
			return p, nil
		})

	_, err := svc.SaveProfile(context.Background(), models.UserProfile{UserID: 5, Name: "Asha", PreferredLanguage: strPtr("")})
	require.NoError(t, err)
}

func TestProfileService_SaveProfile_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		profile models.UserProfile
		wantErr error
	}{
		{name: "empty name", profile: models.UserProfile{UserID: 5, Name: "   "}, wantErr: validators.ErrEmptyName},
		{name: "unknown language", profile: models.UserProfile{UserID: 5, Name: "Asha", PreferredLanguage: strPtr("fr-FR")}, wantErr: validators.ErrUnknownLanguage},
		{name: "no user", profile: models.UserProfile{Name: "Asha"}, wantErr: validators.ErrInvalidUserID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestProfileService(t)

			_, err := svc.SaveProfile(context.Background(), tt.profile)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProfileService_SaveProfile_UserGone(t *testing.T) {
	svc, repo := newTestProfileService(t)
	repo.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).Return(models.UserProfile{}, store.ErrUserNotFound)

	_, err := svc.SaveProfile(context.Background(), models.UserProfile{UserID: 5, Name: "Asha"})

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

// ─────────────────────────────────────────────
// GetProfile
// ─────────────────────────────────────────────

func TestProfileService_GetProfile(t *testing.T) {
	svc, repo := newTestProfileService(t)
	repo.EXPECT().GetProfile(gomock.Any(), int64(5)).Return(models.UserProfile{UserID: 5, Name: "Asha"}, nil)

	profile, err := svc.GetProfile(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "Asha", profile.Name)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	svc, repo := newTestProfileService(t)
	repo.EXPECT().GetProfile(gomock.Any(), int64(5)).Return(models.UserProfile{}, store.ErrProfileNotFound)

	_, err := svc.GetProfile(context.Background(), 5)

	assert.ErrorIs(t, err, store.ErrProfileNotFound)
}

func TestProfileService_GetProfile_InvalidUser(t *testing.T) {
	svc, _ := newTestProfileService(t)

	_, err := svc.GetProfile(context.Background(), 0)

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// RoleService
// ─────────────────────────────────────────────

func TestRoleService_GetRole(t *testing.T) {
	repo := mock.NewMockUserRepository(gomock.NewController(t))
	svc := NewRoleService(repo, logger.Nop())

	repo.EXPECT().FindUserByID(gomock.Any(), int64(2)).Return(models.User{UserID: 2, Role: models.RoleGuest}, nil)

	role, err := svc.GetRole(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, models.RoleGuest, role)
}

func TestRoleService_GetRole_NotFound(t *testing.T) {
	repo := mock.NewMockUserRepository(gomock.NewController(t))
	svc := NewRoleService(repo, logger.Nop())

	repo.EXPECT().FindUserByID(gomock.Any(), int64(2)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetRole(context.Background(), 2)

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestRoleService_AssignRole(t *testing.T) {
	repo := mock.NewMockUserRepository(gomock.NewController(t))
	svc := NewRoleService(repo, logger.Nop())

	repo.EXPECT().UpdateRole(gomock.Any(), int64(2), models.RoleAdmin).Return(nil)

	require.NoError(t, svc.AssignRole(context.Background(), 2, models.RoleAdmin))
}

func TestRoleService_AssignRole_Invalid(t *testing.T) {
	repo := mock.NewMockUserRepository(gomock.NewController(t))
	svc := NewRoleService(repo, logger.Nop())

	assert.ErrorIs(t, svc.AssignRole(context.Background(), 2, "superuser"), ErrInvalidRole)
}

func TestRoleService_AssignRole_UnknownUser(t *testing.T) {
	repo := mock.NewMockUserRepository(gomock.NewController(t))
	svc := NewRoleService(repo, logger.Nop())

	repo.EXPECT().UpdateRole(gomock.Any(), int64(99), models.RoleUser).Return(store.ErrUserNotFound)

	assert.ErrorIs(t, svc.AssignRole(context.Background(), 99, models.RoleUser), store.ErrUserNotFound)
}
