package validators

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/calm-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator() Validator {
	supported := map[string]bool{"en-IN": true, "ta-IN": true, "hi-IN": true}
	return NewCompanionValidator(func(code string) bool { return supported[code] })
}

func strPtr(s string) *string { return &s }

func validEntry() models.ConversationEntry {
	return models.ConversationEntry{
		Sender:    models.SenderUser,
		Message:   "I feel a bit anxious today",
		Language:  "en-IN",
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := newTestValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_NilCheckerAcceptsAnyLanguage(t *testing.T) {
	v := NewCompanionValidator(nil)
	profile := models.UserProfile{UserID: 1, Name: "Asha", PreferredLanguage: strPtr("xx-YY")}
	assert.NoError(t, v.Validate(context.Background(), profile))
}

func TestValidate_User(t *testing.T) {
	tests := []struct {
		name    string
		user    models.User
		fields  []string
		wantErr error
	}{
		{name: "valid credentials", user: models.User{Login: "asha", Password: "secret"}},
		{name: "empty login", user: models.User{Password: "secret"}, wantErr: ErrEmptyLogin},
		{name: "blank login", user: models.User{Login: "   ", Password: "secret"}, wantErr: ErrEmptyLogin},
		{name: "empty password", user: models.User{Login: "asha"}, wantErr: ErrEmptyPassword},
		{name: "password too long", user: models.User{Login: "asha", Password: strings.Repeat("p", 73)}, wantErr: ErrPasswordTooLong},
		{name: "user id only", user: models.User{UserID: 7}, fields: []string{FieldUserID}},
		{name: "missing user id", user: models.User{}, fields: []string{FieldUserID}, wantErr: ErrInvalidUserID},
		{name: "unknown field", user: models.User{Login: "a"}, fields: []string{FieldText}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestValidator().Validate(context.Background(), tt.user, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_UserPointer(t *testing.T) {
	user := &models.User{Login: "asha"}
	assert.ErrorIs(t, newTestValidator().Validate(context.Background(), user), ErrEmptyPassword)
}

func TestValidate_Profile(t *testing.T) {
	tests := []struct {
		name    string
		profile models.UserProfile
		wantErr error
	}{
		{name: "valid without language", profile: models.UserProfile{UserID: 1, Name: "Asha"}},
		{name: "valid with language", profile: models.UserProfile{UserID: 1, Name: "Asha", PreferredLanguage: strPtr("ta-IN")}},
		{name: "missing user", profile: models.UserProfile{Name: "Asha"}, wantErr: ErrInvalidUserID},
		{name: "blank name", profile: models.UserProfile{UserID: 1, Name: "  "}, wantErr: ErrEmptyName},
		{name: "name too long", profile: models.UserProfile{UserID: 1, Name: strings.Repeat("அ", 101)}, wantErr: ErrNameTooLong},
		{name: "unknown language", profile: models.UserProfile{UserID: 1, Name: "Asha", PreferredLanguage: strPtr("fr-FR")}, wantErr: ErrUnknownLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestValidator().Validate(context.Background(), &tt.profile)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_ProfileNameOnly(t *testing.T) {
	err := newTestValidator().Validate(context.Background(), models.UserProfile{Name: "Asha"}, FieldName)
	assert.NoError(t, err)
}

func TestValidate_Entry(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *models.ConversationEntry)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.ConversationEntry) {}},
		{name: "assistant sender", mutate: func(e *models.ConversationEntry) { e.Sender = models.SenderAssistant }},
		{name: "empty language allowed", mutate: func(e *models.ConversationEntry) { e.Language = "" }},
		{name: "bad sender", mutate: func(e *models.ConversationEntry) { e.Sender = "bot" }, wantErr: ErrInvalidSender},
		{name: "empty message", mutate: func(e *models.ConversationEntry) { e.Message = " \n" }, wantErr: ErrEmptyMessage},
		{name: "message too large", mutate: func(e *models.ConversationEntry) { e.Message = strings.Repeat("a", MaxTextBytes+1) }, wantErr: ErrTextTooLarge},
		{name: "unknown language", mutate: func(e *models.ConversationEntry) { e.Language = "de-DE" }, wantErr: ErrUnknownLanguage},
		{name: "zero timestamp", mutate: func(e *models.ConversationEntry) { e.Timestamp = time.Time{} }, wantErr: ErrNoTimestamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := validEntry()
			tt.mutate(&entry)
			err := newTestValidator().Validate(context.Background(), entry)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_SaveEntries(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	t.Run("valid batch", func(t *testing.T) {
		req := models.SaveEntriesRequest{Entries: []models.ConversationEntry{validEntry(), validEntry()}, Hash: "abc"}
		assert.NoError(t, v.Validate(ctx, req))
	})

	t.Run("empty batch", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, models.SaveEntriesRequest{Hash: "abc"}), ErrEmptyEntries)
	})

	t.Run("too many entries", func(t *testing.T) {
		entries := make([]models.ConversationEntry, MaxEntriesInBatch+1)
		for i := range entries {
			entries[i] = validEntry()
		}
		assert.ErrorIs(t, v.Validate(ctx, models.SaveEntriesRequest{Entries: entries, Hash: "abc"}), ErrTooManyEntries)
	})

	t.Run("invalid entry reports its index", func(t *testing.T) {
		bad := validEntry()
		bad.Sender = "system"
		req := &models.SaveEntriesRequest{Entries: []models.ConversationEntry{validEntry(), bad}, Hash: "abc"}

		err := v.Validate(ctx, req)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidSender)
		assert.Contains(t, err.Error(), "entry 1")
	})

	t.Run("missing hash", func(t *testing.T) {
		req := models.SaveEntriesRequest{Entries: []models.ConversationEntry{validEntry()}}
		assert.ErrorIs(t, v.Validate(ctx, req), ErrInvalidHash)
	})

	t.Run("entries only skips hash", func(t *testing.T) {
		req := models.SaveEntriesRequest{Entries: []models.ConversationEntry{validEntry()}}
		assert.NoError(t, v.Validate(ctx, req, FieldEntries))
	})
}

func TestValidate_Text(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.TextRequest{Text: "hello"}))
	assert.ErrorIs(t, v.Validate(ctx, models.TextRequest{Text: "  "}), ErrEmptyText)
	assert.ErrorIs(t, v.Validate(ctx, &models.TextRequest{Text: strings.Repeat("x", MaxTextBytes+1)}), ErrTextTooLarge)
}

func TestValidate_Role(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.AssignRoleRequest{Role: models.RoleAdmin}))
	assert.NoError(t, v.Validate(ctx, &models.AssignRoleRequest{Role: models.RoleGuest}))
	assert.ErrorIs(t, v.Validate(ctx, models.AssignRoleRequest{Role: "root"}), ErrInvalidRole)
}
