package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/calm-companion/internal/app"
	"github.com/MKhiriev/calm-companion/internal/service"
	"github.com/MKhiriev/calm-companion/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultChatWidth  = 80
	defaultChatHeight = 16
	inputHeight       = 3
)

// ChatModel is the conversation screen. Each visit gets its own context,
// cancelled by Leave, so a reply still pending when the user navigates away
// resolves to nothing.
type ChatModel struct {
	ctx      context.Context
	services *service.ClientServices

	viewCtx context.Context
	cancel  context.CancelFunc

	input      textarea.Model
	transcript viewport.Model
	spinner    spinner.Model

	initials  string
	width     int
	status    statusNotice
	statusSeq int
}

func NewChatModel(ctx context.Context, services *service.ClientServices) *ChatModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	m := &ChatModel{
		ctx:        ctx,
		services:   services,
		viewCtx:    ctx,
		cancel:     func() {},
		spinner:    s,
		transcript: viewport.New(defaultChatWidth, defaultChatHeight),
		width:      defaultChatWidth,
	}
	m.input = newChatInput(defaultChatWidth)
	return m
}

func newChatInput(width int) textarea.Model {
	input := textarea.New()
	input.Placeholder = app.CopyChatPlaceholder
	input.ShowLineNumbers = false
	input.CharLimit = 4000
	input.SetWidth(width)
	input.SetHeight(inputHeight)
	input.KeyMap.InsertNewline = keys.newline
	input.Focus()
	return input
}

func (m *ChatModel) Init() tea.Cmd {
	m.cancel()
	m.viewCtx, m.cancel = context.WithCancel(m.ctx)

	m.status = statusNotice{}
	m.input.Focus()
	m.refresh()

	cmds := []tea.Cmd{textarea.Blink, m.cmdWelcome(), m.cmdLoadProfile()}
	if m.services.Chat.Typing() {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Leave cancels the pending reply of this visit.
func (m *ChatModel) Leave() {
	m.cancel()
}

func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case statusNotice:
		return m, m.setStatus(msg)
	case welcomeLoadedMsg:
		m.refresh()
		return m, nil
	case profileLoadedMsg:
		if msg.err == nil && msg.exists {
			m.initials = msg.profile.Initials()
		}
		return m, nil
	case replyMsg:
		if isCanceled(msg.err) {
			return m, nil
		}
		m.refresh()
		if msg.err != nil {
			return m, m.setStatus(statusNotice{text: humanizeError(msg.err, app.CopyGenericFailure), isErr: true})
		}
		return m, nil
	case spinner.TickMsg:
		if !m.services.Chat.Typing() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd
	case copiedMsg:
		if msg.err != nil {
			return m, m.setStatus(statusNotice{text: app.CopyClipboardFailed, isErr: true})
		}
		return m, m.setStatus(statusNotice{text: app.CopyCopied})
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = statusNotice{}
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.enter):
			return m, m.send()
		case key.Matches(msg, keys.calm):
			return m, func() tea.Msg { return NavigateTo{Page: pageCalm} }
		case key.Matches(msg, keys.history),
			key.Matches(msg, keys.historyAlt) && m.input.Value() == "":
			return m, func() tea.Msg { return NavigateTo{Page: pageHistory} }
		case key.Matches(msg, keys.info):
			return m, func() tea.Msg { return NavigateTo{Page: pageAbout} }
		case key.Matches(msg, keys.copy):
			last, ok := m.services.Chat.LastAssistantMessage()
			if !ok {
				return m, m.setStatus(statusNotice{text: app.CopyNothingToCopy})
			}
			return m, cmdCopyToClipboard(last.Text)
		case key.Matches(msg, keys.logout):
			m.cancel()
			return m, func() tea.Msg { return logoutMsg{notice: statusNotice{text: app.CopyLoggedOut}} }
		// arrows belong to the input; the transcript scrolls with pgup/pgdown
		case msg.String() == "pgup", msg.String() == "pgdown":
			var cmd tea.Cmd
			m.transcript, cmd = m.transcript.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChatModel) send() tea.Cmd {
	sent, ok := m.services.Chat.Send(m.input.Value())
	if !ok {
		return nil
	}

	m.input.Reset()
	m.refresh()
	return tea.Batch(m.cmdReply(sent.Text), m.spinner.Tick)
}

func (m *ChatModel) View() string {
	var b strings.Builder

	header := titleStyle.Render("Calm Companion")
	if m.initials != "" {
		header = avatarStyle.Render(m.initials) + " " + header
	}
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(m.transcript.View())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if status := renderStatus(m.status.split()); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render(app.CopyCrisisFooter))

	return renderPage("CHAT", b.String(),
		"enter: send │ alt+enter: new line │ ctrl+b: calm mode │ ctrl+o: history │ ctrl+y: copy reply │ ctrl+g: about │ ctrl+l: logout")
}

func (m *ChatModel) resize(width, height int) {
	w := max(width-8, 20)
	m.width = w
	m.input.SetWidth(w)
	m.transcript.Width = w
	m.transcript.Height = max(height-inputHeight-14, 4)
	m.refresh()
}

// refresh re-renders the transcript and keeps it scrolled to the newest
// message.
func (m *ChatModel) refresh() {
	m.transcript.SetContent(renderTranscript(m.services.Chat.Messages(), m.typingLine(), m.width))
	m.transcript.GotoBottom()
}

func (m *ChatModel) typingLine() string {
	if !m.services.Chat.Typing() {
		return ""
	}
	return m.spinner.View() + " " + app.CopyTyping
}

func (m *ChatModel) setStatus(n statusNotice) tea.Cmd {
	m.statusSeq++
	m.status = n
	if n.text == "" {
		return nil
	}
	return cmdClearStatus(m.statusSeq)
}

func (m *ChatModel) cmdWelcome() tea.Cmd {
	ctx := m.viewCtx
	chat := m.services.Chat
	return func() tea.Msg {
		return welcomeLoadedMsg{msg: chat.Welcome(ctx)}
	}
}

func (m *ChatModel) cmdLoadProfile() tea.Cmd {
	ctx := m.ctx
	profiles := m.services.ProfileService
	return func() tea.Msg {
		profile, exists, err := profiles.GetProfile(ctx)
		return sessionAware(err, profileLoadedMsg{profile: profile, exists: exists, err: err})
	}
}

func (m *ChatModel) cmdReply(text string) tea.Cmd {
	ctx := m.viewCtx
	chat := m.services.Chat
	return func() tea.Msg {
		reply, err := chat.Reply(ctx, text)
		return replyMsg{msg: reply, err: err}
	}
}

func renderTranscript(messages []models.Message, typing string, width int) string {
	bubble := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	for _, msg := range messages {
		if msg.IsUser() {
			b.WriteString(bubble.Render(userBubbleStyle.Render("You: ") + msg.Text))
		} else {
			b.WriteString(bubble.Render(assistantBubbleStyle.Render("Companion: ") + msg.Text))
		}
		b.WriteString("\n\n")
	}
	if typing != "" {
		b.WriteString(helpStyle.Render(typing))
	}

	return strings.TrimRight(b.String(), "\n")
}
