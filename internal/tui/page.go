// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/match-point/internal/logger"
	"github.com/MKhiriev/match-point/internal/router"
	"github.com/MKhiriev/match-point/internal/service"
	"github.com/MKhiriev/match-point/internal/session"
	"github.com/MKhiriev/match-point/internal/validators"
)

// Page is one screen. A page is built by a route handler for a single
// navigation and replaced wholesale by the next one.
type Page interface {
	ID() string
	Init() tea.Cmd
	Update(msg tea.Msg) (Page, tea.Cmd)
	View(width, height int) string
}

// Clipboard is the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// env is what every page may use.
type env struct {
	ctx         context.Context
	session     *session.Store
	tournaments service.TournamentService
	appInfo     service.AppInfoService
	validator   validators.Validator
	clipboard   Clipboard
	logger      *logger.Logger
}

// base carries the navigation a page was built for.
type base struct {
	env *env
	req router.Request
}

func (b base) gen() uint64 {
	return b.req.Generation
}

// loader is the loading placeholder and inline error shared by pages that
// fetch on open.
type loader struct {
	spinner spinner.Model
	loading bool
	err     error
}

func newLoader() loader {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return loader{spinner: s, loading: true}
}

// start marks the loader busy and returns the spinner's first tick.
func (l *loader) start() tea.Cmd {
	l.loading = true
	l.err = nil
	return l.spinner.Tick
}

func (l *loader) done(err error) {
	l.loading = false
	l.err = err
}

func (l *loader) update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(spinner.TickMsg); !ok || !l.loading {
		return nil
	}
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// view renders the placeholder or the inline error. ok is true when the page
// should render its data instead.
func (l loader) view(what string) (string, bool) {
	switch {
	case l.loading:
		return l.spinner.View() + " Loading " + what + "...", false
	case l.err != nil:
		return errorStyle.Render("Error: " + errorText(l.err)), false
	default:
		return "", true
	}
}

func joinLines(lines ...string) string {
	return strings.Join(lines, "\n")
}
