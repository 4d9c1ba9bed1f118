package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/calm-companion/internal/app"
	"github.com/MKhiriev/calm-companion/internal/service"
	"github.com/MKhiriev/calm-companion/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const historyTimeLayout = "02 Jan 15:04"

// HistoryModel lists stored conversation entries, newest last, filtered by
// language. Tab cycles through "all" and every supported locale.
type HistoryModel struct {
	ctx     context.Context
	history service.ClientHistoryService
	locales service.ClientLocaleService

	filters   []models.Locale
	filterIdx int
	entries   []models.ConversationEntry
	loading   bool
	errMsg    string

	view viewport.Model
}

func NewHistoryModel(ctx context.Context, history service.ClientHistoryService, locales service.ClientLocaleService) *HistoryModel {
	return &HistoryModel{
		ctx:     ctx,
		history: history,
		locales: locales,
		view:    viewport.New(defaultChatWidth, defaultChatHeight),
	}
}

func (m *HistoryModel) Init() tea.Cmd {
	m.filterIdx = 0
	m.entries = nil
	m.errMsg = ""
	m.loading = true
	m.refresh()
	return tea.Batch(m.cmdLoadLocales(), m.cmdLoad(""))
}

func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view.Width = max(msg.Width-8, 20)
		m.view.Height = max(msg.Height-12, 4)
		m.refresh()
		return m, nil
	case localesLoadedMsg:
		if msg.err == nil {
			m.filters = msg.locales
		}
		return m, nil
	case historyLoadedMsg:
		// drop answers for a filter that is no longer selected
		if msg.locale != m.currentLocale() {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err, app.CopyHistoryFailed)
			m.entries = nil
		} else {
			m.errMsg = ""
			m.entries = msg.entries
		}
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageChat} }
		case key.Matches(msg, keys.tab):
			m.filterIdx = (m.filterIdx + 1) % (len(m.filters) + 1)
			m.loading = true
			m.refresh()
			return m, m.cmdLoad(m.currentLocale())
		case key.Matches(msg, keys.backtab):
			m.filterIdx = (m.filterIdx - 1 + len(m.filters) + 1) % (len(m.filters) + 1)
			m.loading = true
			m.refresh()
			return m, m.cmdLoad(m.currentLocale())
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m *HistoryModel) View() string {
	var b strings.Builder
	b.WriteString("Language: ")
	b.WriteString(titleStyle.Render(m.currentLabel()))
	b.WriteString("\n\n")
	b.WriteString(m.view.View())

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage("HISTORY", b.String(), "tab: next language │ ↑/↓: scroll │ esc: back")
}

// currentLocale is the code of the selected filter; "" means all languages.
func (m *HistoryModel) currentLocale() string {
	if m.filterIdx == 0 || m.filterIdx > len(m.filters) {
		return ""
	}
	return m.filters[m.filterIdx-1].Code
}

func (m *HistoryModel) currentLabel() string {
	if m.filterIdx == 0 || m.filterIdx > len(m.filters) {
		return app.CopyAllLanguages
	}
	return m.filters[m.filterIdx-1].LanguageName
}

func (m *HistoryModel) refresh() {
	switch {
	case m.loading:
		m.view.SetContent("Loading...")
	case len(m.entries) == 0 && m.errMsg == "":
		m.view.SetContent(app.CopyHistoryEmpty)
	default:
		m.view.SetContent(renderHistory(m.entries, m.view.Width))
	}
	m.view.GotoBottom()
}

func (m *HistoryModel) cmdLoadLocales() tea.Cmd {
	ctx := m.ctx
	locales := m.locales
	return func() tea.Msg {
		list, err := locales.SupportedLocales(ctx)
		return sessionAware(err, localesLoadedMsg{locales: list, err: err})
	}
}

func (m *HistoryModel) cmdLoad(locale string) tea.Cmd {
	ctx := m.ctx
	history := m.history
	return func() tea.Msg {
		entries, err := history.GetHistory(ctx, locale)
		return sessionAware(err, historyLoadedMsg{locale: locale, entries: entries, err: err})
	}
}

// renderHistory tints every entry with its sentiment colour.
func renderHistory(entries []models.ConversationEntry, width int) string {
	var b strings.Builder
	for i, e := range entries {
		style := lipgloss.NewStyle().Width(width)
		if e.Color != "" {
			style = style.Foreground(lipgloss.Color(e.Color))
		}

		who := "Companion"
		if e.Sender == models.SenderUser {
			who = "You"
		}

		line := helpStyle.Render(e.Timestamp.Local().Format(historyTimeLayout)) + " " + who + ": " + e.Message
		if e.Language != "" {
			line += helpStyle.Render(" [" + e.Language + "]")
		}
		b.WriteString(style.Render(line))
		if i < len(entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
