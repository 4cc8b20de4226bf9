// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/match-point/internal/adapter"
	"github.com/MKhiriev/match-point/internal/app"
	"github.com/MKhiriev/match-point/internal/validators"
	"github.com/MKhiriev/match-point/models"
)

func TestAuthGate_RedirectsToLogin(t *testing.T) {
	for _, path := range []string{PathTournaments, PathProfile, tournamentPath("t1"), tournamentPath("t1", "edit")} {
		t.Run(path, func(t *testing.T) {
			h := newHarness(t)
			h.start(path)

			assert.Equal(t, PathLogin, h.app.router.Current())
			pageAs[*loginPage](t, h.app)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	h := newHarness(t)
	h.api.AddUser("ann@example.com", "secret", "Ann")
	h.start(PathLogin)

	p := pageAs[*loginPage](t, h.app)
	p.form.set(loginEmail, "ann@example.com")
	p.form.set(loginPassword, "secret")
	h.press("enter")

	assert.Equal(t, PathHome, h.app.router.Current())
	assert.True(t, h.session.IsAuthenticated())
	home := pageAs[*homePage](t, h.app)
	assert.Equal(t, "Log out", home.items[len(home.items)-1].label)
	assert.Contains(t, h.app.View(), "Ann")
}

func TestLogin_ShowsServerDetail(t *testing.T) {
	h := newHarness(t)
	h.api.AddUser("ann@example.com", "secret", "Ann")
	h.start(PathLogin)

	p := pageAs[*loginPage](t, h.app)
	p.form.set(loginEmail, "ann@example.com")
	p.form.set(loginPassword, "wrong")
	h.press("enter")

	assert.Equal(t, PathLogin, h.app.router.Current())
	assert.Equal(t, app.MsgIncorrectLogin, p.form.err)
	assert.False(t, p.form.submitting)
	assert.False(t, h.session.IsAuthenticated())
}

func TestLogin_InvalidInputNeverReachesServer(t *testing.T) {
	h := newHarness(t)
	h.start(PathLogin)

	p := pageAs[*loginPage](t, h.app)
	p.form.set(loginEmail, "not-an-email")
	p.form.set(loginPassword, "secret")
	h.press("enter")

	assert.Equal(t, validators.ErrInvalidEmail.Error(), p.form.err)
	assert.Empty(t, h.api.Requests())
}

func TestLoginRoute_SignedInGoesHome(t *testing.T) {
	h := newHarness(t)
	h.login("ann@example.com", "secret")
	h.start(PathLogin)

	assert.Equal(t, PathHome, h.app.router.Current())
	pageAs[*homePage](t, h.app)
}

func TestJoin_ResumesAfterLogin(t *testing.T) {
	h := newHarness(t)
	h.api.AddUser("owner@example.com", "pw", "Owner")
	h.api.AddUser("guest@example.com", "pw2", "Guest")

	tournament, err := h.ownerService("owner@example.com").Create(context.Background(), models.TournamentCreate{
		Name:   "Cup",
		Format: models.FormatRoundRobin,
		Type:   models.TypeSingle,
	})
	require.NoError(t, err)

	h.start(joinPath(tournament.InviteCode))
	assert.Equal(t, PathLogin, h.app.router.Current())

	login := pageAs[*loginPage](t, h.app)
	login.form.set(loginEmail, "guest@example.com")
	login.form.set(loginPassword, "pw2")
	h.press("enter")

	require.Equal(t, joinPath(tournament.InviteCode), h.app.router.Current())
	join := pageAs[*joinPage](t, h.app)
	assert.Equal(t, tournament.ID, join.tournament.ID)

	h.press("enter")

	assert.Equal(t, tournamentPath(tournament.ID), h.app.router.Current())
	assert.Equal(t, "Joined Cup", h.app.status)
	detail := pageAs[*tournamentPage](t, h.app)
	assert.Equal(t, "Cup", detail.tournament.Name)

	stored, ok := h.api.Tournament(tournament.ID)
	require.True(t, ok)
	require.Len(t, stored.Participants, 2)
	assert.Equal(t, "guest@example.com", stored.Participants[1].Email)

	_, ok = h.session.ConsumeRedirectTarget(context.Background())
	assert.False(t, ok, "redirect target is consumed by the login")
}

func TestJoin_UnknownCode(t *testing.T) {
	h := newHarness(t)
	h.login("ann@example.com", "secret")
	h.start(joinPath("nope"))

	p := pageAs[*joinPage](t, h.app)
	require.Error(t, p.loader.err)
	assert.Equal(t, app.MsgInviteNotFound, errorText(p.loader.err))
	assert.Contains(t, h.app.View(), app.MsgInviteNotFound)
}

func TestJoin_TypedCodeReachesServerEscapedOnce(t *testing.T) {
	h := newHarness(t)
	h.login("owner@example.com", "pw")
	tournament, err := h.services.TournamentService.Create(context.Background(), models.TournamentCreate{
		Name:   "Cup",
		Format: models.FormatRoundRobin,
		Type:   models.TypeSingle,
	})
	require.NoError(t, err)
	require.True(t, h.api.SetInviteCode(tournament.ID, "a b"))

	h.start(PathJoin)
	code := pageAs[*joinCodePage](t, h.app)
	code.form.set(0, "a b")
	h.press("enter")

	assert.Equal(t, "/join/a%20b", h.app.router.Current())
	join := pageAs[*joinPage](t, h.app)
	assert.Equal(t, "a b", join.code)
	require.NoError(t, join.loader.err)
	assert.Equal(t, tournament.ID, join.tournament.ID)

	reqs := h.api.Requests()
	assert.Equal(t, "/tournaments/by-invite/a%20b", reqs[len(reqs)-1].EscapedPath)
}

func TestStaleResultIsDropped(t *testing.T) {
	h := newHarness(t)
	h.login("ann@example.com", "secret")
	h.start(PathProfile)

	_, slow := h.app.Update(navigateMsg{path: PathTournaments})
	pageAs[*tournamentsPage](t, h.app)

	h.send(navigateMsg{path: PathProfile})
	h.run(slow)

	assert.Equal(t, PathProfile, h.app.router.Current())
	pageAs[*profilePage](t, h.app)

	h.send(navigateMsg{path: PathTournaments})
	list := pageAs[*tournamentsPage](t, h.app)
	assert.False(t, list.loader.loading)
	assert.NoError(t, list.loader.err)
}

func TestTournamentDetail_TabsAndClipboard(t *testing.T) {
	h := newHarness(t)
	h.login("owner@example.com", "pw")
	tournament, err := h.services.TournamentService.Create(context.Background(), models.TournamentCreate{
		Name:   "Cup",
		Format: models.FormatRoundRobin,
		Type:   models.TypeSingle,
	})
	require.NoError(t, err)

	h.start(tournamentPath(tournament.ID))
	p := pageAs[*tournamentPage](t, h.app)
	assert.Equal(t, tournament.ID, p.tournament.ID)
	require.Len(t, p.participants, 1)
	assert.Equal(t, "owner@example.com", p.participants[0].Email)

	h.press("c")
	assert.Equal(t, tournament.InvitationLink, h.clip.last())
	assert.Equal(t, "Invitation link copied", h.app.status)

	h.press("i")
	assert.Equal(t, tournament.ID, h.clip.last())

	h.press("tab")
	assert.Equal(t, tabMatches, p.tab)
	assert.False(t, p.tabs[tabMatches].loading)
	assert.NoError(t, p.tabs[tabMatches].err)
	assert.Empty(t, p.matches)

	h.press("g")
	assert.Equal(t, app.MsgNotEnoughParticipants, p.err)
}

func TestTournamentDetail_GenerateAndRecordResult(t *testing.T) {
	h := newHarness(t)
	h.login("owner@example.com", "pw")
	ctx := context.Background()
	svc := h.services.TournamentService

	tournament, err := svc.Create(ctx, models.TournamentCreate{Name: "Cup", Format: models.FormatRoundRobin, Type: models.TypeSingle})
	require.NoError(t, err)
	_, err = svc.AddParticipant(ctx, tournament.ID, models.ParticipantCreate{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	h.start(tournamentPath(tournament.ID))
	h.press("g")

	p := pageAs[*tournamentPage](t, h.app)
	assert.Equal(t, tabMatches, p.tab)
	require.Len(t, p.matches, 1)
	assert.Equal(t, "Matches generated", h.app.status)
	matchID := p.matches[0].ID

	h.press("enter")
	require.Equal(t, tournamentPath(tournament.ID, "matches", matchID, "result"), h.app.router.Current())
	result := pageAs[*resultPage](t, h.app)
	assert.Equal(t, matchID, result.match.ID)

	result.form.set(resultScore1, "3")
	result.form.set(resultScore2, "1")
	h.press("enter")

	assert.Equal(t, tournamentPath(tournament.ID), h.app.router.Current())
	pageAs[*tournamentPage](t, h.app)

	stored, ok := h.api.Tournament(tournament.ID)
	require.True(t, ok)
	m, ok := stored.Match(matchID)
	require.True(t, ok)
	assert.Equal(t, models.MatchCompleted, m.Status)
	assert.Equal(t, "3 - 1", m.Score())
}

func TestTournamentDetail_RemoveParticipantAsksFirst(t *testing.T) {
	h := newHarness(t)
	h.login("owner@example.com", "pw")
	ctx := context.Background()
	svc := h.services.TournamentService

	tournament, err := svc.Create(ctx, models.TournamentCreate{Name: "Cup", Format: models.FormatRoundRobin, Type: models.TypeSingle})
	require.NoError(t, err)
	_, err = svc.AddParticipant(ctx, tournament.ID, models.ParticipantCreate{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	h.start(tournamentPath(tournament.ID))
	p := pageAs[*tournamentPage](t, h.app)
	require.Len(t, p.participants, 2)

	h.press("down", "x")
	require.NotNil(t, p.confirm)
	assert.Contains(t, h.app.View(), `Remove "Bob"`)

	h.press("n")
	assert.Nil(t, p.confirm)
	stored, _ := h.api.Tournament(tournament.ID)
	assert.Len(t, stored.Participants, 2)

	h.press("x", "y")
	assert.Nil(t, p.confirm)
	assert.Len(t, p.participants, 1)
	stored, _ = h.api.Tournament(tournament.ID)
	assert.Len(t, stored.Participants, 1)
}

func TestTournamentDetail_Delete(t *testing.T) {
	h := newHarness(t)
	h.login("owner@example.com", "pw")
	tournament, err := h.services.TournamentService.Create(context.Background(), models.TournamentCreate{
		Name: "Cup", Format: models.FormatElimination, Type: models.TypeDouble,
	})
	require.NoError(t, err)

	h.start(tournamentPath(tournament.ID))
	h.press("D", "y")

	assert.Equal(t, PathTournaments, h.app.router.Current())
	_, ok := h.api.Tournament(tournament.ID)
	assert.False(t, ok)
}

func TestCreateTournament(t *testing.T) {
	h := newHarness(t)
	h.login("owner@example.com", "pw")
	h.start(PathNewTournament)

	p := pageAs[*tournamentFormPage](t, h.app)
	p.form.set(tournamentName, "Autumn cup")
	p.form.set(tournamentStart, "2026-10-01")
	p.form.set(tournamentEnd, "2026-10-05")
	p.format = 1
	h.press("enter")

	require.True(t, strings.HasPrefix(h.app.router.Current(), "/tournament/"), h.app.router.Current())
	detail := pageAs[*tournamentPage](t, h.app)
	assert.Equal(t, "Autumn cup", detail.tournament.Name)
	assert.Equal(t, models.FormatElimination, detail.tournament.Format)
	assert.Equal(t, "2026-10-01", dateOrDash(detail.tournament.StartDate))
}

func TestCreateTournament_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		start, end string
		want       string
	}{
		{name: "empty name", start: "", end: "", want: validators.ErrEmptyName.Error()},
		{name: "bad date", title: "Cup", start: "01/10/2026", want: "start date must look like 2006-01-02"},
		{name: "end before start", title: "Cup", start: "2026-10-05", end: "2026-10-01", want: validators.ErrInvalidDateRange.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.login("owner@example.com", "pw")
			h.start(PathNewTournament)

			p := pageAs[*tournamentFormPage](t, h.app)
			p.form.set(tournamentName, tt.title)
			p.form.set(tournamentStart, tt.start)
			p.form.set(tournamentEnd, tt.end)
			h.press("enter")

			assert.Equal(t, tt.want, p.form.err)
			assert.Equal(t, PathNewTournament, h.app.router.Current())
			for _, r := range h.api.Requests() {
				assert.NotEqual(t, http.MethodPost+" /tournaments/", r.Method+" "+r.Path)
			}
		})
	}
}

func TestEditTournament_LoadsAndSaves(t *testing.T) {
	h := newHarness(t)
	h.login("owner@example.com", "pw")
	tournament, err := h.services.TournamentService.Create(context.Background(), models.TournamentCreate{
		Name: "Cup", Format: models.FormatElimination, Type: models.TypeDouble,
	})
	require.NoError(t, err)

	h.start(tournamentPath(tournament.ID))
	h.press("e")

	p := pageAs[*tournamentFormPage](t, h.app)
	assert.Equal(t, "Cup", p.form.value(tournamentName))
	assert.Equal(t, 1, p.format)
	assert.Equal(t, 1, p.kind)

	p.form.set(tournamentName, "Cup 2")
	h.press("enter")

	assert.Equal(t, tournamentPath(tournament.ID), h.app.router.Current())
	stored, _ := h.api.Tournament(tournament.ID)
	assert.Equal(t, "Cup 2", stored.Name)
}

func TestAddParticipant(t *testing.T) {
	h := newHarness(t)
	h.login("owner@example.com", "pw")
	tournament, err := h.services.TournamentService.Create(context.Background(), models.TournamentCreate{
		Name: "Cup", Format: models.FormatRoundRobin, Type: models.TypeSingle,
	})
	require.NoError(t, err)

	h.start(tournamentPath(tournament.ID))
	h.press("a")

	p := pageAs[*participantPage](t, h.app)
	p.form.set(participantName, "Bob")
	p.form.set(participantEmail, "bob@example.com")
	p.form.set(participantRanking, "x")
	h.press("enter")
	assert.Equal(t, validators.ErrInvalidRanking.Error(), p.form.err)

	p.form.set(participantRanking, "2")
	h.press("enter")

	assert.Equal(t, tournamentPath(tournament.ID), h.app.router.Current())
	detail := pageAs[*tournamentPage](t, h.app)
	require.Len(t, detail.participants, 2)
	assert.Equal(t, "Bob", detail.participants[1].Name)
}

func TestSessionExpired_LogsOut(t *testing.T) {
	h := newHarness(t)
	h.login("ann@example.com", "secret")
	h.start(PathProfile)

	h.send(sessionExpiredMsg{err: adapter.ErrUnauthorized})

	assert.Equal(t, PathLogin, h.app.router.Current())
	assert.False(t, h.session.IsAuthenticated())
	assert.Equal(t, "Session expired, please log in again", h.app.status)

	h.send(sessionExpiredMsg{err: adapter.ErrUnauthorized})
	assert.Equal(t, PathLogin, h.app.router.Current())
}

func TestProfile_Logout(t *testing.T) {
	h := newHarness(t)
	h.login("ann@example.com", "secret")
	h.start(PathProfile)
	assert.Contains(t, h.app.View(), "ann@example.com")

	h.press("L")

	assert.Equal(t, PathLogin, h.app.router.Current())
	assert.False(t, h.session.IsAuthenticated())
	assert.Equal(t, "Logged out", h.app.status)
}

func TestBack_WithoutHistoryGoesHome(t *testing.T) {
	h := newHarness(t)
	h.login("ann@example.com", "secret")
	h.start(PathSettings)

	view := h.app.View()
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, h.apiURL)
	assert.Contains(t, view, "memory")

	h.press("esc")
	assert.Equal(t, PathHome, h.app.router.Current())
	pageAs[*homePage](t, h.app)
}
