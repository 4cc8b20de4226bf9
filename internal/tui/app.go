// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/match-point/internal/router"
	"github.com/MKhiriev/match-point/internal/session"
)

const statusTTL = 3 * time.Second

// App is the root model. It owns the router: every navigation runs on the
// Bubble Tea event loop, and the matched route handler swaps in a fresh page.
// Messages of a superseded navigation are dropped here, so a slow response
// can never overwrite the page the user has moved on to.
type App struct {
	env    *env
	router *router.Router

	page    Page
	pending tea.Cmd

	width, height int

	status    string
	statusSeq int
}

// Init implements [tea.Model]. It returns the initial page's command; the
// router must have been started by then.
func (a *App) Init() tea.Cmd {
	return a.takePending()
}

// Update implements [tea.Model].
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if g, ok := msg.(generational); ok && !a.router.IsCurrent(g.generation()) {
		a.env.logger.Debug().
			Uint64("generation", g.generation()).
			Uint64("current", a.router.Generation()).
			Msg("dropping result of a superseded navigation")
		return a, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "alt+left":
			return a, a.goBack()
		case "alt+right":
			if err := a.router.Forward(); err != nil && !errors.Is(err, router.ErrNoHistory) {
				return a, a.fail(err)
			}
			return a, a.takePending()
		}

	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height

	case navigateMsg:
		return a, a.navigate(msg.path, msg.replace)

	case backMsg:
		return a, a.goBack()

	case logoutMsg:
		a.env.session.Logout()
		return a, tea.Batch(a.takePending(), a.showStatus("Logged out"))

	case sessionExpiredMsg:
		if !a.env.session.IsAuthenticated() {
			return a, nil
		}
		a.env.session.Logout()
		return a, tea.Batch(a.takePending(), a.showStatus("Session expired, please log in again"))

	case statusMsg:
		return a, a.showStatus(msg.text)

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.status = ""
		}
		return a, nil
	}

	if a.page == nil {
		return a, nil
	}
	var cmd tea.Cmd
	a.page, cmd = a.page.Update(msg)
	return a, cmd
}

// View implements [tea.Model].
func (a *App) View() string {
	var b strings.Builder
	if a.page != nil {
		b.WriteString(a.page.View(a.width, a.height))
	}
	b.WriteString("\n\n")
	b.WriteString(a.statusBar())
	return appStyle.Render(b.String())
}

func (a *App) statusBar() string {
	parts := []string{a.router.Current()}
	if user, ok := a.env.session.CurrentUser(); ok {
		parts = append(parts, user.DisplayName())
	}
	if a.router.CanGoBack() {
		parts = append(parts, "alt+←: back")
	}
	line := statusBarStyle.Render(strings.Join(parts, " │ "))
	if a.status != "" {
		line += "  " + okStyle.Render(a.status)
	}
	return line
}

// show makes page current. Route handlers call it.
func (a *App) show(page Page) {
	a.page = page
	a.pending = page.Init()
}

func (a *App) takePending() tea.Cmd {
	cmd := a.pending
	a.pending = nil
	return cmd
}

func (a *App) navigate(path string, replace bool) tea.Cmd {
	var err error
	if replace {
		err = a.router.Replace(path)
	} else {
		err = a.router.Navigate(path)
	}
	if err != nil {
		return tea.Batch(a.takePending(), a.fail(err))
	}
	return a.takePending()
}

// goBack returns to the previous page, or home when there is none.
func (a *App) goBack() tea.Cmd {
	err := a.router.Back()
	if errors.Is(err, router.ErrNoHistory) {
		return a.navigate(router.RootPath, false)
	}
	if err != nil {
		return tea.Batch(a.takePending(), a.fail(err))
	}
	return a.takePending()
}

func (a *App) fail(err error) tea.Cmd {
	a.env.logger.Warn().Err(err).Str("path", a.router.Current()).Msg("navigation failed")
	return a.showStatus(errorText(err))
}

func (a *App) showStatus(text string) tea.Cmd {
	a.statusSeq++
	a.status = text
	seq := a.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

var _ router.Authenticator = (*session.Store)(nil)
