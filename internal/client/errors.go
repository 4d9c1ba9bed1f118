package client

import (
	"errors"

	"github.com/MKhiriev/calm-companion/internal/tui"
)

var (
	ErrNotConfigured = errors.New("client app needs services and a UI")

	// ErrUserQuit is returned by the UI when the user ended the program.
	ErrUserQuit = tui.ErrUserQuit
)
