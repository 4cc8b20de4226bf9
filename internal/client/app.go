// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/match-point/internal/adapter"
	"github.com/MKhiriev/match-point/internal/config"
	"github.com/MKhiriev/match-point/internal/logger"
	"github.com/MKhiriev/match-point/internal/session"
	"github.com/MKhiriev/match-point/internal/store"
	"github.com/MKhiriev/match-point/internal/tui"
	"github.com/MKhiriev/match-point/internal/workers"
)

const sessionExpiredNotice = "Session expired, please log in again"

type App struct {
	session   *session.Store
	storage   store.LocalStorage
	ui        *tui.TUI
	workers   *workers.Workers
	startPath string
	logger    *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp assembles the runtime. The session watcher re-validates the token
// through serverAdapter and reports an expired session to ui.
func NewApp(sess *session.Store, storage store.LocalStorage, serverAdapter adapter.ServerAdapter, ui *tui.TUI, cfg config.ClientConfig, log *logger.Logger) *App {
	watcher := workers.NewSessionWatcher(sess, serverAdapter, cfg.Workers.SessionCheckInterval, ui.SessionExpired, log)

	return &App{
		session:   sess,
		storage:   storage,
		ui:        ui,
		workers:   workers.NewWorkers(watcher),
		startPath: cfg.App.StartPath,
		logger:    log.GetChildLogger("client"),
	}
}

// Run restores the session, opens the start page and blocks until the UI
// exits. Storage is closed on return.
func (a *App) Run(ctx context.Context) error {
	defer a.shutdown()

	if err := a.session.Init(ctx); err != nil {
		if !errors.Is(err, session.ErrSessionExpired) {
			return fmt.Errorf("restore session: %w", err)
		}
		a.ui.Notice(sessionExpiredNotice)
	}

	if err := a.ui.Start(a.startPath); err != nil {
		return err
	}

	a.workers.Start(ctx)
	a.logger.Info().Str("start_path", a.startPath).Msg("client started")

	return a.ui.Run()
}

func (a *App) shutdown() {
	a.workers.Stop()
	a.session.Wait()

	if err := a.storage.Close(); err != nil {
		a.logger.Err(err).Msg("close storage")
	}
	a.logger.Info().Msg("client stopped")
}
