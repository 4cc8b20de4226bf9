// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type settingsPage struct {
	base
}

func newSettingsPage(b base) Page {
	return &settingsPage{base: b}
}

func (p *settingsPage) ID() string { return "settings" }

func (p *settingsPage) Init() tea.Cmd { return nil }

func (p *settingsPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		return p, back
	}
	return p, nil
}

func (p *settingsPage) View(int, int) string {
	info := p.env.appInfo.BuildInfo()
	body := joinLines(
		fmt.Sprintf("API address:   %s", p.env.appInfo.APIAddress()),
		fmt.Sprintf("Local storage: %s", p.env.appInfo.StorageBackend()),
		"",
		fmt.Sprintf("Version:       %s", info.BuildVersion()),
		fmt.Sprintf("Build date:    %s", info.BuildDate()),
		fmt.Sprintf("Commit:        %s", info.BuildCommit()),
	)
	return renderPage("SETTINGS", body, "esc: back")
}
