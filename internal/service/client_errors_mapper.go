// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/calm-companion/internal/adapter"
	"github.com/MKhiriev/calm-companion/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgEmptyName:
			return ErrEmptyName
		case app.MsgUnknownLanguage:
			return ErrUnknownLanguage
		case app.MsgInvalidRole:
			return ErrInvalidRole
		case app.MsgIntegrityCheckFailed:
			return ErrIntegrityCheckFailed
		}
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpired:
			return ErrTokenIsExpired
		case app.MsgTokenIsExpiredOrInvalid, app.MsgNoAuthorizationHeader:
			return ErrTokenIsExpiredOrInvalid
		}
		return ErrNotAuthenticated

	case errors.Is(err, adapter.ErrForbidden):
		return ErrAccessDenied

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgUserNotFound:
			return ErrUserNotFound
		case app.MsgProfileNotFound:
			return ErrProfileNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgLoginAlreadyExists {
			return ErrLoginTaken
		}

	case errors.Is(err, adapter.ErrBadGateway):
		switch msg {
		case app.MsgRegistrationFailed:
			return ErrRegisterOnServer
		case app.MsgLoginFailed:
			return ErrLoginOnServer
		}

	case errors.Is(err, adapter.ErrInternalServerError):
		if msg == app.MsgStorageUnavailable {
			return ErrServerUnavailable
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

// IsSessionError reports whether err means the stored session is no longer
// accepted by the backend.
func IsSessionError(err error) bool {
	return errors.Is(err, ErrNotAuthenticated) ||
		errors.Is(err, ErrTokenIsExpired) ||
		errors.Is(err, ErrTokenIsExpiredOrInvalid)
}
