package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrUnknownLanguage = errors.New("unknown language code")
	ErrInvalidRole     = errors.New("invalid role")
)

// Client-side business errors.
var (
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrAccessDenied         = errors.New("access denied")
	ErrLoginTaken           = errors.New("login already taken")
	ErrUserNotFound         = errors.New("user not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrEmptyName            = errors.New("name is required")
	ErrCredentialsRequired  = errors.New("login and password are required")
	ErrIntegrityCheckFailed = errors.New("integrity check failed")
	ErrServerUnavailable    = errors.New("server unavailable")
	ErrRegisterOnServer     = errors.New("registration on server failed")
	ErrLoginOnServer        = errors.New("login on server failed")

	ErrReplyPending = errors.New("a reply is already pending")
	ErrEmptyMessage = errors.New("message is empty")
)
