package tui

import (
	"context"

	"github.com/MKhiriev/calm-companion/internal/app"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) gates every successful login through the profile check
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx      context.Context
	services *service.ClientServices
	logger   *logger.Logger

	pages    map[string]tea.Model
	current  tea.Model
	name     string
	previous string

	// size is replayed to every page on arrival, since only the active
	// page sees resize events.
	size *tea.WindowSizeMsg

	quitByUser bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, services *service.ClientServices, pages map[string]tea.Model, startPage string, logger *logger.Logger) RootModel {
	return RootModel{
		ctx:      ctx,
		services: services,
		logger:   logger,
		pages:    pages,
		current:  pages[startPage],
		name:     startPage,
	}
}

func (r RootModel) Init() tea.Cmd {
	var cmd tea.Cmd
	if r.current != nil {
		cmd = r.current.Init()
	}
	return tea.Batch(cmd, cmdGate(r.ctx, r.services))
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		r.quitByUser = true
		return r, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.size = &msg
	case NavigateTo:
		return r.navigate(msg)
	case navigateBack:
		page := r.previous
		if page == "" || page == r.name {
			page = pageWelcome
		}
		return r.navigate(NavigateTo{Page: page})
	case authDoneMsg:
		r.logger.Info().Str("func", "RootModel.Update").
			Int64("user_id", msg.session.UserID).Msg("authenticated")
		return r, cmdRouteAuthenticated(r.ctx, r.services)
	case sessionExpiredMsg:
		return r, cmdLogout(r.ctx, r.services, statusNotice{text: app.CopySessionExpired, isErr: true}, r.logger)
	case logoutMsg:
		return r, cmdLogout(r.ctx, r.services, msg.notice, r.logger)
	case loggedOutMsg:
		return r.navigate(NavigateTo{Page: pageWelcome, Payload: msg.notice})
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.name] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.current == nil {
		return renderPage("Calm Companion", "", "")
	}
	return appStyle.Render(r.current.View())
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	if leaving, ok := r.current.(interface{ Leave() }); ok && nav.Page != r.name {
		leaving.Leave()
	}

	if nav.Page != r.name {
		r.previous = r.name
	}
	r.name = nav.Page
	r.current = next

	cmds := []tea.Cmd{r.current.Init()}
	if r.size != nil {
		size := *r.size
		cmds = append(cmds, func() tea.Msg { return size })
	}
	if nav.Payload != nil {
		payload := nav.Payload
		cmds = append(cmds, func() tea.Msg { return payload })
	}
	return r, tea.Batch(cmds...)
}

// QuitByUser reports whether the program ended with Ctrl+C.
func (r RootModel) QuitByUser() bool {
	return r.quitByUser
}

// Page returns the name of the active page.
func (r RootModel) Page() string {
	return r.name
}
