package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/calm-companion/internal/config"
	"github.com/MKhiriev/calm-companion/internal/crypto"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/mock"
	"github.com/MKhiriev/calm-companion/internal/store"
	"github.com/MKhiriev/calm-companion/internal/utils"
	"github.com/MKhiriev/calm-companion/internal/validators"
	"github.com/MKhiriev/calm-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "calm-companion-test",
	TokenDuration: time.Hour,
}

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAuthService(repo, hasher, validators.NewCompanionValidator(nil), testAppConfig, logger.Nop())
	return svc, repo, hasher
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)
	ctx := context.Background()

	hasher.EXPECT().Hash("s3cret").Return("$2a$digest", nil)
	repo.EXPECT().
		CreateUser(ctx, models.User{Login: "asha", Password: "$2a$digest", Role: models.RoleUser}).
		Return(models.User{UserID: 7, Login: "asha", Password: "$2a$digest", Role: models.RoleUser}, nil)

	user, err := svc.RegisterUser(ctx, models.User{Login: "asha", Password: "s3cret", Role: models.RoleAdmin})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, models.RoleUser, user.Role, "self-registration never grants elevated roles")
	assert.Empty(t, user.Password)
}

func TestAuthService_RegisterUser_InvalidInput(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "asha"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyPassword)
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)

	hasher.EXPECT().Hash(gomock.Any()).Return("digest", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginTaken)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "asha", Password: "pw"})

	assert.ErrorIs(t, err, store.ErrLoginTaken)
}

func TestAuthService_RegisterUser_HashFails(t *testing.T) {
	svc, _, hasher := newTestAuthService(t)

	hasher.EXPECT().Hash("pw").Return("", crypto.ErrPasswordTooLong)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "asha", Password: "pw"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, crypto.ErrPasswordTooLong)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)

	repo.EXPECT().FindUserByLogin(gomock.Any(), "asha").
		Return(models.User{UserID: 3, Login: "asha", Password: "digest", Role: models.RoleAdmin}, nil)
	hasher.EXPECT().Compare("digest", "pw").Return(nil)

	user, err := svc.Login(context.Background(), models.User{Login: "asha", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.UserID)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Empty(t, user.Password)
}

func TestAuthService_Login_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)

	repo.EXPECT().FindUserByLogin(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(context.Background(), models.User{Login: "ghost", Password: "pw"})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)

	repo.EXPECT().FindUserByLogin(gomock.Any(), "asha").Return(models.User{UserID: 3, Password: "digest"}, nil)
	hasher.EXPECT().Compare("digest", "nope").Return(crypto.ErrMismatchedPassword)

	_, err := svc.Login(context.Background(), models.User{Login: "asha", Password: "nope"})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_BrokenDigest(t *testing.T) {
	svc, repo, hasher := newTestAuthService(t)
	broken := errors.New("hash too short")

	repo.EXPECT().FindUserByLogin(gomock.Any(), "asha").Return(models.User{UserID: 3, Password: "x"}, nil)
	hasher.EXPECT().Compare("x", "pw").Return(broken)

	_, err := svc.Login(context.Background(), models.User{Login: "asha", Password: "pw"})

	assert.ErrorIs(t, err, broken)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)

	repo.EXPECT().FindUserByLogin(gomock.Any(), "asha").Return(models.User{}, store.ErrTransient)

	_, err := svc.Login(context.Background(), models.User{Login: "asha", Password: "pw"})

	assert.ErrorIs(t, err, store.ErrTransient)
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 11, Role: models.RoleAdmin})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(11), parsed.UserID)
	assert.Equal(t, models.RoleAdmin, parsed.Role)
}

func TestAuthService_CreateToken_DefaultsRole(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 1})

	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, token.Role)
}

func TestAuthService_CreateToken_MissingConfig(t *testing.T) {
	svc := NewAuthService(nil, nil, validators.NewCompanionValidator(nil), config.App{}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	expired, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, 1, models.RoleUser, -time.Minute, testAppConfig.TokenSignKey)
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), expired.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	other, err := utils.GenerateJWTToken("someone-else", 1, models.RoleUser, time.Hour, testAppConfig.TokenSignKey)
	require.NoError(t, err)

	for _, raw := range []string{"", "not-a-jwt", other.SignedString} {
		_, err = svc.ParseToken(context.Background(), raw)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid, "token %q", raw)
	}
}
