// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type profilePage struct {
	base
}

func newProfilePage(b base) Page {
	return &profilePage{base: b}
}

func (p *profilePage) ID() string { return "profile" }

func (p *profilePage) Init() tea.Cmd { return nil }

func (p *profilePage) Update(msg tea.Msg) (Page, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch {
	case key.Matches(keyMsg, keys.esc):
		return p, back
	case key.Matches(keyMsg, keys.logout):
		return p, func() tea.Msg { return logoutMsg{} }
	}
	return p, nil
}

func (p *profilePage) View(int, int) string {
	user, _ := p.env.session.CurrentUser()

	status := "active"
	if !user.IsActive {
		status = "inactive"
	}
	expires := "unknown"
	if at := p.env.session.ExpiresAt(); !at.IsZero() {
		expires = at.Local().Format(time.DateTime)
	}

	body := joinLines(
		fmt.Sprintf("Name:    %s", user.DisplayName()),
		fmt.Sprintf("Email:   %s", user.Email),
		fmt.Sprintf("Status:  %s", status),
		fmt.Sprintf("Session: expires %s", expires),
	)
	return renderPage("PROFILE", body, "L: log out │ esc: back")
}
