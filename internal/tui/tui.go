// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the client in the terminal.
//
// Every screen is a page built by a route handler. Pages fetch through the
// services, show a spinner while waiting and an inline message when the fetch
// fails; navigation always goes back through the router.
package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/match-point/internal/logger"
	"github.com/MKhiriev/match-point/internal/router"
	"github.com/MKhiriev/match-point/internal/service"
	"github.com/MKhiriev/match-point/internal/session"
	"github.com/MKhiriev/match-point/internal/validators"
)

// Deps are the collaborators of the UI.
type Deps struct {
	Router   *router.Router
	Session  *session.Store
	Services *service.Services
	// Clipboard defaults to the system clipboard.
	Clipboard Clipboard
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

type TUI struct {
	app     *App
	program *tea.Program
}

// New builds the UI and registers its routes. The router is not started.
func New(ctx context.Context, deps Deps, log *logger.Logger) (*TUI, error) {
	clip := deps.Clipboard
	if clip == nil {
		clip = systemClipboard{}
	}

	app := &App{
		router: deps.Router,
		env: &env{
			ctx:         ctx,
			session:     deps.Session,
			tournaments: deps.Services.TournamentService,
			appInfo:     deps.Services.AppInfoService,
			validator:   validators.NewTournamentValidator(),
			clipboard:   clip,
			logger:      log.GetChildLogger("tui"),
		},
	}
	if err := app.registerRoutes(); err != nil {
		return nil, err
	}

	return &TUI{
		app:     app,
		program: tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)),
	}, nil
}

// Start opens path as the first page.
func (t *TUI) Start(path string) error {
	if err := t.app.router.Start(path); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}

// Run blocks until the user quits.
func (t *TUI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// Notice puts text in the status bar of the first page. Call it before Run.
func (t *TUI) Notice(text string) {
	t.app.status = text
}

// SessionExpired ends the session from the UI's event loop. It is meant as
// the session watcher's callback and may be called from any goroutine.
func (t *TUI) SessionExpired(err error) {
	t.program.Send(sessionExpiredMsg{err: err})
}
