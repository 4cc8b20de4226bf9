// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"net/url"

	"github.com/MKhiriev/match-point/internal/router"
)

// Client paths.
const (
	PathHome           = router.RootPath
	PathLogin          = router.LoginPath
	PathRegister       = "/register"
	PathTournaments    = "/tournaments"
	PathNewTournament  = "/tournaments/new"
	PathTournament     = "/tournament/:id"
	PathEditTournament = "/tournament/:id/edit"
	PathNewParticipant = "/tournament/:id/participants/new"
	PathRecordResult   = "/tournament/:id/matches/:matchId/result"
	PathJoin           = "/join"
	PathJoinCode       = "/join/:code"
	PathProfile        = "/profile"
	PathSettings       = "/settings"
)

func tournamentPath(id string, rest ...string) string {
	p := "/tournament/" + url.PathEscape(id)
	for _, r := range rest {
		p += "/" + url.PathEscape(r)
	}
	return p
}

func joinPath(code string) string {
	return "/join/" + url.PathEscape(code)
}

// registerRoutes fills the route table. Pages behind the auth gate are only
// built for a signed-in user; the join page checks the session itself so it
// can remember the invite across the login.
func (a *App) registerRoutes() error {
	gate := func(h router.Handler) router.Handler {
		return a.router.RequireAuth(a.env.session, h)
	}

	routes := []struct {
		path    string
		handler router.Handler
	}{
		{PathHome, a.pageHandler(newHomePage)},
		{PathLogin, a.loginHandler},
		{PathRegister, a.pageHandler(newRegisterPage)},
		{PathTournaments, gate(a.pageHandler(newTournamentsPage))},
		{PathNewTournament, gate(a.pageHandler(newCreateTournamentPage))},
		{PathTournament, gate(a.pageHandler(newTournamentPage))},
		{PathEditTournament, gate(a.pageHandler(newEditTournamentPage))},
		{PathNewParticipant, gate(a.pageHandler(newParticipantPage))},
		{PathRecordResult, gate(a.pageHandler(newResultPage))},
		{PathJoin, a.pageHandler(newJoinCodePage)},
		{PathJoinCode, a.joinHandler},
		{PathProfile, gate(a.pageHandler(newProfilePage))},
		{PathSettings, gate(a.pageHandler(newSettingsPage))},
	}

	for _, rt := range routes {
		if err := a.router.Handle(rt.path, rt.handler); err != nil {
			return fmt.Errorf("register route %s: %w", rt.path, err)
		}
	}
	return nil
}

// pageHandler adapts a page constructor to a route handler.
func (a *App) pageHandler(build func(base) Page) router.Handler {
	return func(req router.Request) error {
		a.show(build(base{env: a.env, req: req}))
		return nil
	}
}

// loginHandler sends a signed-in user home instead of showing the form.
func (a *App) loginHandler(req router.Request) error {
	if a.env.session.IsAuthenticated() {
		return a.router.Replace(PathHome)
	}
	a.show(newLoginPage(base{env: a.env, req: req}))
	return nil
}

// joinHandler remembers the invite and asks for a login when no session is
// held. The login page comes back here once it succeeds.
func (a *App) joinHandler(req router.Request) error {
	if !a.env.session.IsAuthenticated() {
		if err := a.env.session.SetRedirectTarget(a.env.ctx, req.Path); err != nil {
			a.env.logger.Warn().Err(err).Msg("could not remember invite")
		}
		return a.router.Replace(PathLogin)
	}
	a.show(newJoinPage(base{env: a.env, req: req}))
	return nil
}
