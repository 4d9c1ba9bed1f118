// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/calm-companion/internal/app"
	"github.com/MKhiriev/calm-companion/internal/service"
)

var ErrUserQuit = errors.New("user quit")

// humanizeError turns a client service error into the text shown on the
// status line. fallback is used for anything without dedicated copy.
func humanizeError(err error, fallback string) string {
	switch {
	case err == nil:
		return ""
	case service.IsSessionError(err):
		return app.CopySessionExpired
	case errors.Is(err, service.ErrCredentialsRequired):
		return app.CopyCredentialsRequired
	case errors.Is(err, service.ErrWrongPassword), errors.Is(err, service.ErrUserNotFound):
		return app.CopyInvalidCredentials
	case errors.Is(err, service.ErrLoginTaken):
		return app.CopyLoginTaken
	case errors.Is(err, service.ErrEmptyName):
		return app.CopyProfileNameEmpty
	case errors.Is(err, service.ErrServerUnavailable), isNetworkError(err):
		return app.CopyServerUnavailable
	}

	return fallback
}

func isNetworkError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
