package tui

import (
	"strings"

	"github.com/MKhiriev/calm-companion/internal/app"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// WelcomeModel is the landing page of an unauthenticated user.
type WelcomeModel struct {
	items  []string
	idx    int
	status statusNotice
}

func NewWelcomeModel() *WelcomeModel {
	return &WelcomeModel{items: []string{"Login", "Register"}}
}

func (m *WelcomeModel) Init() tea.Cmd {
	m.status = statusNotice{}
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(statusNotice); ok {
		m.status = notice
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.idx == 0 {
			return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageRegister} }
	case key.Matches(keyMsg, keys.about):
		return m, func() tea.Msg { return NavigateTo{Page: pageAbout} }
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *WelcomeModel) View() string {
	var b strings.Builder
	b.WriteString(app.CopyWelcomeSubtitle)
	b.WriteString("\n\n")
	for _, feature := range []string{app.CopyFeatureListen, app.CopyFeatureLanguages, app.CopyFeaturePrivacy} {
		b.WriteString("• ")
		b.WriteString(feature)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(app.CopyLoginPrompt)
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(item)
		b.WriteString("\n")
	}

	if status := renderStatus(m.status.split()); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(app.CopyCrisisFooter))

	return renderPage(app.CopyWelcomeTitle, b.String(), "enter: select │ v: about │ q: quit")
}

