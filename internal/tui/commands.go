package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/calm-companion/internal/app"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/service"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// cmdGate restores the stored session and routes to Welcome, Profile setup
// or Chat.
func cmdGate(ctx context.Context, services *service.ClientServices) tea.Cmd {
	return func() tea.Msg {
		if _, err := services.AuthService.Restore(ctx); err != nil {
			return NavigateTo{Page: pageWelcome}
		}
		return routeAuthenticated(ctx, services)
	}
}

func cmdRouteAuthenticated(ctx context.Context, services *service.ClientServices) tea.Cmd {
	return func() tea.Msg {
		return routeAuthenticated(ctx, services)
	}
}

// routeAuthenticated picks the first page of a logged-in user. A profile
// lookup that fails for reasons other than the session lands on Profile
// setup, since saving a profile overwrites whatever the backend holds.
func routeAuthenticated(ctx context.Context, services *service.ClientServices) tea.Msg {
	_, exists, err := services.ProfileService.GetProfile(ctx)
	switch {
	case err != nil && service.IsSessionError(err):
		return sessionExpiredMsg{}
	case err != nil:
		return NavigateTo{Page: pageProfile, Payload: statusNotice{text: humanizeError(err, app.CopyGenericFailure), isErr: true}}
	case !exists:
		return NavigateTo{Page: pageProfile}
	default:
		return NavigateTo{Page: pageChat}
	}
}

// cmdLogout makes one last journal upload and drops whatever is left, so
// entries recorded by this user are never sent under the next session.
func cmdLogout(ctx context.Context, services *service.ClientServices, notice statusNotice, log *logger.Logger) tea.Cmd {
	return func() tea.Msg {
		if services.Journal != nil {
			if err := services.Journal.Flush(ctx); err != nil {
				log.Warn().Err(err).Str("func", "cmdLogout").Msg("final journal flush failed")
			}
			if dropped := services.Journal.Discard(); dropped > 0 {
				log.Warn().Str("func", "cmdLogout").Int("dropped", dropped).
					Msg("journal entries discarded on logout")
			}
		}
		services.Chat.Reset()
		if err := services.AuthService.Logout(ctx); err != nil {
			log.Err(err).Str("func", "cmdLogout").Msg("failed to remove local session")
		}
		return loggedOutMsg{notice: notice}
	}
}

// sessionAware turns a session error into a logout and everything else into msg.
func sessionAware(err error, msg tea.Msg) tea.Msg {
	if err != nil && service.IsSessionError(err) {
		return sessionExpiredMsg{}
	}
	return msg
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}
