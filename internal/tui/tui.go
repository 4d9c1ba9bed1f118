package tui

import (
	"context"

	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) *TUI {
	return &TUI{services: services, logger: logger}
}

// Pages builds every screen of the client, keyed by page name.
func (t *TUI) Pages(ctx context.Context) map[string]tea.Model {
	s := t.services
	return map[string]tea.Model{
		pageLoading:  NewLoadingModel(),
		pageWelcome:  NewWelcomeModel(),
		pageLogin:    NewLoginModel(ctx, s.AuthService),
		pageRegister: NewRegisterModel(ctx, s.AuthService),
		pageProfile:  NewProfileModel(ctx, s.ProfileService, s.LocaleService),
		pageChat:     NewChatModel(ctx, s),
		pageCalm:     NewCalmModel(),
		pageHistory:  NewHistoryModel(ctx, s.HistoryService, s.LocaleService),
		pageAbout:    NewAboutModel(ctx, s.AppInfoService),
	}
}

// Run shows the client until the user quits. It returns [ErrUserQuit] when
// the program was ended with Ctrl+C.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.services, t.Pages(ctx), pageLoading, t.logger)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.QuitByUser() {
		return ErrUserQuit
	}
	return nil
}
