// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/calm-companion/internal/app"
	"github.com/MKhiriev/calm-companion/internal/service"
	"github.com/MKhiriev/calm-companion/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two text inputs
// (login and password) and dispatches an async login command on form submission.
// On success an [authDoneMsg] is produced and handled by [RootModel], which then
// routes the user through the profile check.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with pre-configured login and password inputs.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: newCredentialInputs(2),
	}
}

// Init implements [tea.Model]. It clears the form and starts the cursor blink.
func (m *LoginModel) Init() tea.Cmd {
	m.inputs = newCredentialInputs(2)
	m.focus = 0
	m.submitting = false
	m.errMsg = ""
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [authResultMsg] clears submitting state and shows the error, if any.
//   - esc goes back to Welcome.
//   - tab and shift+tab move the focus.
//   - enter validates and dispatches the login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authResultMsg); ok {
		m.submitting = false
		m.errMsg = humanizeError(result.err, app.CopyGenericFailure)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: pageWelcome} }
		case "tab":
			m.focus = focusNext(m.inputs, m.focus)
			return m, nil
		case "shift+tab":
			m.focus = focusPrev(m.inputs, m.focus)
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			login := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if login == "" || pass == "" {
				m.errMsg = app.CopyCredentialsRequired
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, cmdAuthenticate(m.ctx, m.auth.Login, models.User{Login: login, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Login     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Login]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("LOGIN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

type authFunc func(ctx context.Context, user models.User) (models.Session, error)

func cmdAuthenticate(ctx context.Context, auth authFunc, user models.User) tea.Cmd {
	return func() tea.Msg {
		session, err := auth(ctx, user)
		if err != nil {
			return authResultMsg{err: err}
		}
		return authDoneMsg{session: session}
	}
}

// newCredentialInputs returns a login input followed by n-1 masked password
// inputs. The first one is focused.
func newCredentialInputs(n int) []textinput.Model {
	inputs := make([]textinput.Model, n)

	inputs[0] = textinput.New()
	inputs[0].Placeholder = "login"
	inputs[0].CharLimit = 64
	inputs[0].Width = 40
	inputs[0].Focus()

	for i := 1; i < n; i++ {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = "password"
		inputs[i].CharLimit = 72
		inputs[i].Width = 40
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '*'
	}

	return inputs
}

func focusNext(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus + 1) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func focusPrev(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus - 1 + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}
