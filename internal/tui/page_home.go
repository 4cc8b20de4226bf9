// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	label string
	cmd   tea.Cmd
}

type homePage struct {
	base
	items []menuItem
	idx   int
}

func newHomePage(b base) Page {
	p := &homePage{base: b}
	if b.env.session.IsAuthenticated() {
		p.items = []menuItem{
			{"Tournaments", navigate(PathTournaments)},
			{"New tournament", navigate(PathNewTournament)},
			{"Join by invite code", navigate(PathJoin)},
			{"Profile", navigate(PathProfile)},
			{"Settings", navigate(PathSettings)},
			{"Log out", func() tea.Msg { return logoutMsg{} }},
		}
	} else {
		p.items = []menuItem{
			{"Log in", navigate(PathLogin)},
			{"Register", navigate(PathRegister)},
			{"Join by invite code", navigate(PathJoin)},
		}
	}
	return p
}

func (p *homePage) ID() string { return "home" }

func (p *homePage) Init() tea.Cmd { return nil }

func (p *homePage) Update(msg tea.Msg) (Page, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if p.idx > 0 {
			p.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if p.idx < len(p.items)-1 {
			p.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return p, p.items[p.idx].cmd
	case key.Matches(keyMsg, keys.quit):
		return p, tea.Quit
	}
	return p, nil
}

func (p *homePage) View(int, int) string {
	var b strings.Builder

	width := lipgloss.Width("Action")
	for _, item := range p.items {
		if w := lipgloss.Width(item.label); w > width {
			width = w
		}
	}

	b.WriteString(fmt.Sprintf("    %-*s\n", width, "Action"))
	b.WriteString("  ──")
	b.WriteString(strings.Repeat("─", width+2))
	b.WriteString("\n")
	for i, item := range p.items {
		cursor := " "
		if i == p.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d %-*s\n", cursor, i+1, width, item.label))
	}

	return renderPage("MATCH POINT", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ q: quit")
}
