package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrEmptyLogin      = errors.New("login is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrPasswordTooLong = errors.New("password is too long")
	ErrEmptyName       = errors.New("name is required")
	ErrNameTooLong     = errors.New("name is too long")
	ErrUnknownLanguage = errors.New("unknown language code")
	ErrInvalidSender   = errors.New("invalid sender")
	ErrEmptyMessage    = errors.New("message is required")
	ErrTextTooLarge    = errors.New("text is too large")
	ErrEmptyText       = errors.New("text is required")
	ErrNoTimestamp     = errors.New("timestamp is required")
	ErrEmptyEntries    = errors.New("entries list cannot be empty")
	ErrTooManyEntries  = errors.New("too many entries in one batch")
	ErrInvalidHash     = errors.New("invalid hash")
	ErrInvalidRole     = errors.New("invalid role")
)
