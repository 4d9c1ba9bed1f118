package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/calm-companion/internal/app"
	"github.com/MKhiriev/calm-companion/internal/service"
	"github.com/MKhiriev/calm-companion/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ProfileModel is the profile setup screen. The name is required; the
// preferred language is picked with left/right from the backend's locales
// and may stay unset.
type ProfileModel struct {
	ctx      context.Context
	profiles service.ClientProfileService
	locales  service.ClientLocaleService

	name       textinput.Model
	options    []models.Locale
	optionIdx  int
	submitting bool
	status     statusNotice
}

func NewProfileModel(ctx context.Context, profiles service.ClientProfileService, locales service.ClientLocaleService) *ProfileModel {
	m := &ProfileModel{ctx: ctx, profiles: profiles, locales: locales}
	m.reset()
	return m
}

func (m *ProfileModel) reset() {
	m.name = textinput.New()
	m.name.Placeholder = app.CopyProfileNameHint
	m.name.CharLimit = 64
	m.name.Width = 40
	m.name.Focus()

	m.options = nil
	m.optionIdx = 0
	m.submitting = false
	m.status = statusNotice{}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.reset()
	return tea.Batch(textinput.Blink, m.cmdLoadLocales())
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusNotice:
		m.status = msg
		return m, nil
	case localesLoadedMsg:
		if msg.err == nil {
			m.options = msg.locales
		}
		return m, nil
	case profileSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.status = statusNotice{text: humanizeError(msg.err, app.CopyProfileSaveFailed), isErr: true}
			return m, nil
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: pageChat, Payload: statusNotice{text: app.CopyProfileCreated}}
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.left):
			if m.optionIdx > 0 {
				m.optionIdx--
			}
			return m, nil
		case key.Matches(msg, keys.right):
			if m.optionIdx < len(m.options) {
				m.optionIdx++
			}
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}

			name := strings.TrimSpace(m.name.Value())
			if name == "" {
				m.status = statusNotice{text: app.CopyProfileNameEmpty, isErr: true}
				return m, nil
			}

			m.status = statusNotice{}
			m.submitting = true
			return m, m.cmdSave(models.UserProfile{Name: name, PreferredLanguage: m.selectedLanguage()})
		}
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m *ProfileModel) View() string {
	var b strings.Builder
	b.WriteString(app.CopyProfileDescription)
	b.WriteString("\n\n")
	b.WriteString(app.CopyProfileNameLabel)
	b.WriteString("\n[")
	b.WriteString(m.name.View())
	b.WriteString("]\n\n")
	b.WriteString("Preferred language: ◀ ")
	b.WriteString(m.selectedLabel())
	b.WriteString(" ▶\n")

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(app.CopySaving)
		b.WriteString("\n")
	}
	if status := renderStatus(m.status.split()); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
		b.WriteString("\n")
	}

	return renderPage(app.CopyProfileTitle, strings.TrimRight(b.String(), "\n"), "←/→: language │ enter: save")
}

// selectedLanguage returns nil for the "not set" option at index 0.
func (m *ProfileModel) selectedLanguage() *string {
	if m.optionIdx == 0 || m.optionIdx > len(m.options) {
		return nil
	}
	code := m.options[m.optionIdx-1].Code
	return &code
}

func (m *ProfileModel) selectedLabel() string {
	if m.optionIdx == 0 || m.optionIdx > len(m.options) {
		return app.CopyNoLanguage
	}
	l := m.options[m.optionIdx-1]
	return l.LanguageName + " (" + l.Code + ")"
}

func (m *ProfileModel) cmdLoadLocales() tea.Cmd {
	ctx := m.ctx
	locales := m.locales
	return func() tea.Msg {
		list, err := locales.SupportedLocales(ctx)
		return sessionAware(err, localesLoadedMsg{locales: list, err: err})
	}
}

func (m *ProfileModel) cmdSave(profile models.UserProfile) tea.Cmd {
	ctx := m.ctx
	profiles := m.profiles
	return func() tea.Msg {
		err := profiles.SaveProfile(ctx, profile)
		return sessionAware(err, profileSavedMsg{err: err})
	}
}
