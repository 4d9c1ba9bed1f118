package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// LoadingModel is shown while the stored session is being restored.
type LoadingModel struct {
	spinner spinner.Model
}

func NewLoadingModel() *LoadingModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &LoadingModel{spinner: s}
}

func (m *LoadingModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *LoadingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)
		return m, cmd
	}
	return m, nil
}

func (m *LoadingModel) View() string {
	return m.spinner.View() + " Connecting..."
}
