// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/match-point/internal/adapter"
	"github.com/MKhiriev/match-point/internal/apitest"
	"github.com/MKhiriev/match-point/internal/config"
	"github.com/MKhiriev/match-point/internal/logger"
	"github.com/MKhiriev/match-point/internal/router"
	"github.com/MKhiriev/match-point/internal/service"
	"github.com/MKhiriev/match-point/internal/session"
	"github.com/MKhiriev/match-point/internal/store"
	"github.com/MKhiriev/match-point/models"
)

// cmdTimeout bounds how long the driver waits for one command. Timers such
// as the status bar expiry never fire within it and are dropped.
const cmdTimeout = 300 * time.Millisecond

type fakeClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}

func (c *fakeClipboard) last() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// harness drives App without a terminal: commands run synchronously and
// only this package's messages are fed back, so cursor blinks and spinner
// ticks do not loop.
type harness struct {
	t        *testing.T
	api      *apitest.Server
	apiURL   string
	ui       *TUI
	app      *App
	session  *session.Store
	clip     *fakeClipboard
	services *service.Services
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	api, ts := apitest.Start(t)
	log := logger.Nop()

	cfg := config.ClientConfig{
		Adapter: config.ClientAdapter{HTTPAddress: ts.URL},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: "memory"}},
	}
	gateway, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	require.NoError(t, err)

	r := router.New(log)
	sess := session.New(gateway, store.NewMemoryLocalStorage(), r, log)
	t.Cleanup(sess.Wait)

	services := service.NewServices(gateway, models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"), cfg, log)
	clip := &fakeClipboard{}

	ui, err := New(context.Background(), Deps{Router: r, Session: sess, Services: services, Clipboard: clip}, log)
	require.NoError(t, err)

	return &harness{
		t:        t,
		api:      api,
		apiURL:   ts.URL,
		ui:       ui,
		app:      ui.app,
		session:  sess,
		clip:     clip,
		services: services,
	}
}

// start opens path and runs the first page's command.
func (h *harness) start(path string) {
	h.t.Helper()
	require.NoError(h.t, h.ui.Start(path))
	h.run(h.app.Init())
}

// login signs a fresh account in without going through the pages.
func (h *harness) login(email, password string) models.User {
	h.t.Helper()
	user := h.api.AddUser(email, password, "Player "+email)
	require.NoError(h.t, h.session.Login(context.Background(), email, password))
	return user
}

// ownerService returns a tournament service acting as email, independent
// of the session under test.
func (h *harness) ownerService(email string) service.TournamentService {
	h.t.Helper()
	gateway, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: h.apiURL}, logger.Nop())
	require.NoError(h.t, err)
	gateway.SetToken(h.api.IssueToken(email, time.Hour))
	return service.NewTournamentService(gateway, logger.Nop())
}

func (h *harness) send(msg tea.Msg) {
	_, cmd := h.app.Update(msg)
	h.run(cmd)
}

func (h *harness) run(cmd tea.Cmd) {
	for _, msg := range collect(cmd) {
		h.send(msg)
	}
}

func (h *harness) press(keys ...string) {
	for _, k := range keys {
		h.send(keyMsg(k))
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// collect runs cmd and returns the messages worth feeding back.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-ch:
	case <-time.After(cmdTimeout):
		return nil
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if !ours(msg) {
		return nil
	}
	return []tea.Msg{msg}
}

func ours(msg tea.Msg) bool {
	if _, ok := msg.(generational); ok {
		return true
	}
	switch msg.(type) {
	case navigateMsg, backMsg, logoutMsg, statusMsg, sessionExpiredMsg:
		return true
	}
	return false
}

func pageAs[P Page](t *testing.T, a *App) P {
	t.Helper()
	p, ok := a.page.(P)
	require.Truef(t, ok, "current page is %T", a.page)
	return p
}
