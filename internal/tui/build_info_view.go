// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/calm-companion/internal/app"
	"github.com/MKhiriev/calm-companion/internal/service"
	"github.com/MKhiriev/calm-companion/models"
	tea "github.com/charmbracelet/bubbletea"
)

// AboutModel shows the client build and, once fetched, the backend build.
type AboutModel struct {
	ctx  context.Context
	info service.ClientAppInfoService

	server    models.VersionInfo
	serverErr string
	loaded    bool
}

func NewAboutModel(ctx context.Context, info service.ClientAppInfoService) *AboutModel {
	return &AboutModel{ctx: ctx, info: info}
}

func (m *AboutModel) Init() tea.Cmd {
	m.loaded = false
	m.serverErr = ""

	ctx := m.ctx
	info := m.info
	return func() tea.Msg {
		v, err := info.ServerVersion(ctx)
		return versionLoadedMsg{info: v, err: err}
	}
}

func (m *AboutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case versionLoadedMsg:
		m.loaded = true
		m.server = msg.info
		m.serverErr = humanizeError(msg.err, app.CopyServerUnavailable)
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, func() tea.Msg { return navigateBack{} }
		}
	}
	return m, nil
}

func (m *AboutModel) View() string {
	return renderBuildInfoWindow(m.info.ClientVersion(), m.server, m.loaded, m.serverErr)
}

func renderBuildInfoWindow(client, server models.VersionInfo, loaded bool, serverErr string) string {
	var b strings.Builder

	b.WriteString("Client\n")
	writeVersion(&b, client)

	b.WriteString("\nServer\n")
	switch {
	case !loaded:
		b.WriteString("  Loading...\n")
	case serverErr != "":
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(serverErr))
		b.WriteString("\n")
	default:
		writeVersion(&b, server)
	}

	return renderPage(app.CopyAboutTitle, strings.TrimRight(b.String(), "\n"), "esc: back")
}

func writeVersion(b *strings.Builder, v models.VersionInfo) {
	b.WriteString("  Version: ")
	b.WriteString(valueOrNA(v.Version))
	b.WriteString("\n  Date:    ")
	b.WriteString(valueOrNA(v.Date))
	b.WriteString("\n  Commit:  ")
	b.WriteString(valueOrNA(v.Commit))
	b.WriteString("\n")
}
