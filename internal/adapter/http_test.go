// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/match-point/internal/apitest"
	"github.com/MKhiriev/match-point/internal/config"
	"github.com/MKhiriev/match-point/internal/logger"
	"github.com/MKhiriev/match-point/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

// ── construction ────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_Address(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "http://localhost:8001/", want: "http://localhost:8001"},
		{in: "localhost:8001", want: "http://localhost:8001"},
		{in: "  https://api.example.com  ", want: "https://api.example.com"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── Authorization header ────────────────────────────────────────────────────

func TestAuthorizationHeader(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, "[]")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	_, err := a.ListTournaments(ctx)
	require.NoError(t, err)

	a.SetToken("  t1 ")
	assert.Equal(t, "t1", a.Token())
	_, err = a.ListTournaments(ctx)
	require.NoError(t, err)

	a.SetToken("")
	_, err = a.ListTournaments(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"", "Bearer t1", ""}, got)
}

// ── error normalisation ─────────────────────────────────────────────────────

func TestErrorNormalisation(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		want     string
		sentinel error
	}{
		{"string detail", http.StatusUnauthorized, `{"detail":"Invalid credentials"}`, "Invalid credentials", ErrUnauthorized},
		{"no detail field", http.StatusInternalServerError, `{"error":"boom"}`, "HTTP 500", ErrInternalServerError},
		{"empty detail", http.StatusNotFound, `{"detail":""}`, "HTTP 404", ErrNotFound},
		{"null detail", http.StatusConflict, `{"detail":null}`, "HTTP 409", ErrConflict},
		{"validation list", http.StatusUnprocessableEntity, `{"detail":[{"msg":"field required"},{"msg":"too short"}]}`, "field required; too short", ErrUnprocessable},
		{"html body", http.StatusBadGateway, "<html>bad gateway</html>", NetworkErrorMessage, ErrBadGateway},
		{"empty body", http.StatusForbidden, "", NetworkErrorMessage, ErrForbidden},
		{"object detail", http.StatusBadRequest, `{"detail":{"code":7}}`, `{"code":7}`, ErrBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(respond(tc.status, tc.body))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).GetTournament(context.Background(), "t1")
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
			assert.ErrorIs(t, err, tc.sentinel)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.status, apiErr.StatusCode)
		})
	}
}

func TestUnmappedStatusHasNoSentinel(t *testing.T) {
	srv := httptest.NewServer(respond(http.StatusTeapot, `{"detail":"short and stout"}`))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListTournaments(context.Background())
	require.Error(t, err)
	assert.Equal(t, "short and stout", err.Error())
	assert.False(t, errors.Is(err, ErrBadRequest))
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(respond(http.StatusOK, "[]"))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).ListTournaments(context.Background())
	require.Error(t, err)
	assert.Equal(t, NetworkErrorMessage, err.Error())

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, "GET /tournaments/", netErr.Op)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestCancelledContext(t *testing.T) {
	srv := httptest.NewServer(respond(http.StatusOK, "[]"))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).ListTournaments(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── success bodies ──────────────────────────────────────────────────────────

func TestEmptySuccessBody(t *testing.T) {
	srv := httptest.NewServer(respond(http.StatusNoContent, ""))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	assert.NoError(t, a.DeleteTournament(context.Background(), "t1"))
	assert.NoError(t, a.RemoveParticipant(context.Background(), "t1", "p1"))

	tour, err := a.GetTournament(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, models.Tournament{}, tour)
}

func TestMalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(respond(http.StatusOK, "{not json"))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetCurrentUser(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode GET /users/me response")
}

// ── login wire format ───────────────────────────────────────────────────────

func TestLogin_FormEncoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/token", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "a@example.com", r.PostForm.Get("username"))
		assert.Equal(t, "pw", r.PostForm.Get("password"))
		_, _ = io.WriteString(w, `{"access_token":"t1","token_type":"bearer"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	tok, err := a.Login(context.Background(), "a@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "t1", tok.AccessToken)
	assert.Empty(t, a.Token(), "login must not store the token itself")
}

// ── full surface against the fake API ───────────────────────────────────────

func TestAgainstFakeAPI(t *testing.T) {
	api, srv := apitest.Start(t)
	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	user, err := a.Register(ctx, models.UserCreate{Email: "owner@example.com", Password: "pw", Name: "Owner"})
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", user.Email)

	_, err = a.Register(ctx, models.UserCreate{Email: "owner@example.com", Password: "pw"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email already registered")

	_, err = a.Login(ctx, "owner@example.com", "wrong")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Incorrect email or password", err.Error())

	tok, err := a.Login(ctx, "owner@example.com", "pw")
	require.NoError(t, err)
	a.SetToken(tok.AccessToken)

	me, err := a.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, me.ID)

	created, err := a.CreateTournament(ctx, models.TournamentCreate{
		Name: "Spring Cup", Type: models.TypeSingle, Format: models.FormatRoundRobin,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Len(t, created.Participants, 1, "owner joins automatically")

	for _, name := range []string{"Bob", "Cid", "Dan"} {
		_, err = a.AddParticipant(ctx, created.ID, models.ParticipantCreate{Name: name})
		require.NoError(t, err)
	}
	ps, err := a.ListParticipants(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, ps, 4)

	byCode, err := a.GetTournamentByInviteCode(ctx, created.InviteCode)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byCode.ID)

	gen, err := a.GenerateMatches(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, gen.Matches, 6)
	assert.Equal(t, 3, gen.TotalMatchdays)

	matches, err := a.ListMatches(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, matches, 6)

	for _, m := range matches {
		res, err := a.RecordMatchResult(ctx, created.ID, m.ID, models.MatchResult{
			Participant1Score: 2, Participant2Score: 1, WinnerID: *m.Participant1ID,
		})
		require.NoError(t, err)
		assert.Equal(t, models.MatchCompleted, res.Status)
	}

	standings, err := a.GetStandings(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, standings, 4)

	schedule, err := a.GetSchedule(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, schedule.Rounds(), 3)

	_, err = a.GetBracket(ctx, created.ID)
	assert.ErrorIs(t, err, ErrBadRequest)

	playoffs, err := a.GeneratePlayoffs(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, playoffs.PlayoffMatches, 2)

	updated, err := a.UpdateTournament(ctx, created.ID, models.TournamentCreate{
		Name: "Spring Cup 2", Type: models.TypeSingle, Format: models.FormatRoundRobin,
	})
	require.NoError(t, err)
	assert.Equal(t, "Spring Cup 2", updated.Name)

	list, err := a.ListTournaments(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, a.DeleteTournament(ctx, created.ID))
	_, err = a.GetTournament(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Tournament not found", err.Error())

	require.NoError(t, a.Logout(ctx, a.Token()))
	_, err = a.GetCurrentUser(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	for _, r := range api.Requests() {
		assert.NotEmpty(t, r.RequestID, "%s %s", r.Method, r.Path)
	}
}

func TestJoinTournament(t *testing.T) {
	api, srv := apitest.Start(t)
	ctx := context.Background()

	api.AddUser("owner@example.com", "pw", "Owner")
	api.AddUser("guest@example.com", "pw", "Guest")

	owner := newTestAdapter(t, srv.URL)
	owner.SetToken(api.IssueToken("owner@example.com", time.Hour))
	tour, err := owner.CreateTournament(ctx, models.TournamentCreate{Name: "Open", Format: models.FormatRoundRobin, Type: models.TypeSingle})
	require.NoError(t, err)

	guest := newTestAdapter(t, srv.URL)
	guest.SetToken(api.IssueToken("guest@example.com", time.Hour))

	p, err := guest.JoinTournament(ctx, tour.ID)
	require.NoError(t, err)
	assert.Equal(t, "Guest", p.Name)

	_, err = guest.JoinTournament(ctx, tour.ID)
	assert.ErrorIs(t, err, ErrBadRequest)

	err = guest.DeleteTournament(ctx, tour.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetTournamentByInviteCode_EscapesOnce(t *testing.T) {
	api, srv := apitest.Start(t)
	ctx := context.Background()

	api.AddUser("owner@example.com", "pw", "Owner")
	a := newTestAdapter(t, srv.URL)
	a.SetToken(api.IssueToken("owner@example.com", time.Hour))

	tour, err := a.CreateTournament(ctx, models.TournamentCreate{Name: "Open", Format: models.FormatRoundRobin, Type: models.TypeSingle})
	require.NoError(t, err)
	require.True(t, api.SetInviteCode(tour.ID, "a b/50%"))

	got, err := a.GetTournamentByInviteCode(ctx, "a b/50%")
	require.NoError(t, err)
	assert.Equal(t, tour.ID, got.ID)

	reqs := api.Requests()
	last := reqs[len(reqs)-1]
	assert.Equal(t, "/tournaments/by-invite/a%20b%2F50%25", last.EscapedPath)
}
