package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/calm-companion/models"
)

// Field names accepted by [CompanionValidator.Validate].
const (
	FieldUserID            = "user_id"
	FieldLogin             = "login"
	FieldPassword          = "password"
	FieldName              = "name"
	FieldPreferredLanguage = "preferred_language"
	FieldSender            = "sender"
	FieldMessage           = "message"
	FieldLanguage          = "language"
	FieldTimestamp         = "timestamp"
	FieldEntries           = "entries"
	FieldHash              = "hash"
	FieldText              = "text"
	FieldRole              = "role"
)

const (
	MaxNameLength     = 100
	MaxTextBytes      = 16 << 10
	MaxPasswordBytes  = 72
	MaxEntriesInBatch = 500
)

// LanguageChecker reports whether a locale code is supported.
type LanguageChecker func(code string) bool

// CompanionValidator validates the request models of the backend.
type CompanionValidator struct {
	isSupportedLanguage LanguageChecker
}

// NewCompanionValidator returns a [Validator]. A nil checker accepts every
// language code.
func NewCompanionValidator(isSupportedLanguage LanguageChecker) Validator {
	if isSupportedLanguage == nil {
		isSupportedLanguage = func(string) bool { return true }
	}
	return &CompanionValidator{isSupportedLanguage: isSupportedLanguage}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// are accepted. With no fields a default set for the type is checked.
func (v *CompanionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.UserProfile:
		return v.validateProfile(value, fields...)
	case *models.UserProfile:
		return v.validateProfile(*value, fields...)

	case models.ConversationEntry:
		return v.validateEntry(value, fields...)
	case *models.ConversationEntry:
		return v.validateEntry(*value, fields...)

	case models.SaveEntriesRequest:
		return v.validateSaveEntries(ctx, value, fields...)
	case *models.SaveEntriesRequest:
		return v.validateSaveEntries(ctx, *value, fields...)

	case models.TextRequest:
		return v.validateText(value, fields...)
	case *models.TextRequest:
		return v.validateText(*value, fields...)

	case models.AssignRoleRequest:
		return v.validateRole(value, fields...)
	case *models.AssignRoleRequest:
		return v.validateRole(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CompanionValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(user.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
			if len(user.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		case FieldUserID:
			if user.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CompanionValidator) validateProfile(profile models.UserProfile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName, FieldPreferredLanguage}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if profile.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldName:
			name := strings.TrimSpace(profile.Name)
			if name == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(name) > MaxNameLength {
				return ErrNameTooLong
			}
		case FieldPreferredLanguage:
			if code := profile.Language(); code != "" && !v.isSupportedLanguage(code) {
				return ErrUnknownLanguage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CompanionValidator) validateEntry(entry models.ConversationEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSender, FieldMessage, FieldLanguage, FieldTimestamp}
	}

	for _, f := range fields {
		switch f {
		case FieldSender:
			if entry.Sender != models.SenderUser && entry.Sender != models.SenderAssistant {
				return ErrInvalidSender
			}
		case FieldMessage:
			if strings.TrimSpace(entry.Message) == "" {
				return ErrEmptyMessage
			}
			if len(entry.Message) > MaxTextBytes {
				return ErrTextTooLarge
			}
		case FieldLanguage:
			if entry.Language != "" && !v.isSupportedLanguage(entry.Language) {
				return ErrUnknownLanguage
			}
		case FieldTimestamp:
			if entry.Timestamp.IsZero() {
				return ErrNoTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CompanionValidator) validateSaveEntries(ctx context.Context, req models.SaveEntriesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntries, FieldHash}
	}

	for _, f := range fields {
		switch f {
		case FieldEntries:
			if len(req.Entries) == 0 {
				return ErrEmptyEntries
			}
			if len(req.Entries) > MaxEntriesInBatch {
				return ErrTooManyEntries
			}
			for i, entry := range req.Entries {
				if err := v.Validate(ctx, entry); err != nil {
					return fmt.Errorf("entry %d: %w", i, err)
				}
			}
		case FieldHash:
			if req.Hash == "" {
				return ErrInvalidHash
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CompanionValidator) validateText(req models.TextRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if strings.TrimSpace(req.Text) == "" {
				return ErrEmptyText
			}
			if len(req.Text) > MaxTextBytes {
				return ErrTextTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CompanionValidator) validateRole(req models.AssignRoleRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldRole:
			if !req.Role.Valid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
