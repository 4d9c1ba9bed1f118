package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/calm-companion/internal/app"
	"github.com/MKhiriev/calm-companion/internal/breathing"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// CalmModel is the guided-breathing screen. Ticks are scheduled with
// tea.Tick and carry the timer generation, so ticks left over from a paused
// or restarted run are dropped instead of rescheduled.
type CalmModel struct {
	timer    *breathing.Timer
	state    breathing.State
	interval time.Duration
}

func NewCalmModel() *CalmModel {
	t := breathing.NewTimer()
	return &CalmModel{timer: t, state: t.State(), interval: breathing.TickInterval}
}

func (m *CalmModel) Init() tea.Cmd {
	m.state = m.timer.Stop()
	return nil
}

// Leave stops the timer so that it is idle on the next visit.
func (m *CalmModel) Leave() {
	m.state = m.timer.Stop()
}

func (m *CalmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case breathTickMsg:
		state, ok := m.timer.TickGeneration(msg.generation)
		if !ok {
			return m, nil
		}
		m.state = state
		return m, m.cmdTick(state.Generation)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.toggle):
			m.state = m.timer.Toggle()
			if m.state.Running {
				return m, m.cmdTick(m.state.Generation)
			}
			return m, nil
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageChat} }
		}
	}

	return m, nil
}

func (m *CalmModel) View() string {
	var b strings.Builder
	b.WriteString(app.CopyCalmDescription)
	b.WriteString("\n\n")
	b.WriteString(renderBreathCircle(m.state))
	b.WriteString("\n\n")

	if m.state.Running {
		b.WriteString(app.CopyCalmFollow)
	} else {
		b.WriteString(app.CopyCalmPressStart)
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(breathing.Legend))
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render(app.CopyCrisisFooter))

	action := "space: start"
	if m.state.Running {
		action = "space: pause"
	}
	return renderPage(app.CopyCalmTitle, b.String(), action+" │ esc: close")
}

func (m *CalmModel) cmdTick(generation uint64) tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return breathTickMsg{generation: generation}
	})
}

// renderBreathCircle grows the circle while breathing in, keeps it during
// the hold and shrinks it while breathing out.
func renderBreathCircle(s breathing.State) string {
	size := 3
	if s.Running {
		total := s.Phase.Duration()
		elapsed := total - s.Countdown
		switch s.Phase {
		case breathing.Inhale:
			size = 3 + elapsed*2
		case breathing.Hold:
			size = 3 + total*2
		case breathing.Exhale:
			size = 3 + (total-elapsed)*4/3
		}
	}

	content := s.Label()
	if s.Running {
		content += "\n" + strconv.Itoa(s.Countdown)
	}

	return circleStyle.
		Width(max(size*2, len(content)+4)).
		Height(max(size/2, 2)).
		Render(content)
}
