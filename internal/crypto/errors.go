package crypto

import "errors"

var (
	ErrEmptyPassword      = errors.New("password is empty")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
	ErrMismatchedPassword = errors.New("password does not match")
)
