// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/match-point/internal/config"
	"github.com/MKhiriev/match-point/internal/logger"
	"github.com/MKhiriev/match-point/internal/utils"
	"github.com/MKhiriev/match-point/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates adapterCfg.HTTPAddress and
// applies adapterCfg.RequestTimeout; a zero timeout leaves requests unbounded.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetLogger(logger)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. Credentials are sent form-encoded as
// username/password to POST /token.
func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.Token, error) {
	var token models.Token

	req := h.authedRequest(ctx).
		SetFormData(map[string]string{
			"username": email,
			"password": password,
		})
	if err := h.send(req, http.MethodPost, "/token", &token); err != nil {
		return models.Token{}, err
	}

	return token, nil
}

// Register implements [ServerAdapter].
func (h *httpServerAdapter) Register(ctx context.Context, user models.UserCreate) (models.User, error) {
	var created models.User
	if err := h.send(h.jsonRequest(ctx, user), http.MethodPost, "/users/register", &created); err != nil {
		return models.User{}, err
	}
	return created, nil
}

// GetCurrentUser implements [ServerAdapter].
func (h *httpServerAdapter) GetCurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	if err := h.send(h.authedRequest(ctx), http.MethodGet, "/users/me", &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Logout implements [ServerAdapter].
func (h *httpServerAdapter) Logout(ctx context.Context, token string) error {
	req := h.client.R().
		SetContext(ctx).
		SetAuthToken(token)
	return h.send(req, http.MethodGet, "/users/logout", nil)
}

// ListTournaments implements [ServerAdapter].
func (h *httpServerAdapter) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	var tournaments []models.Tournament
	if err := h.send(h.authedRequest(ctx), http.MethodGet, "/tournaments/", &tournaments); err != nil {
		return nil, err
	}
	return tournaments, nil
}

// GetTournament implements [ServerAdapter].
func (h *httpServerAdapter) GetTournament(ctx context.Context, id string) (models.Tournament, error) {
	var t models.Tournament
	if err := h.send(h.authedRequest(ctx), http.MethodGet, tournamentPath(id), &t); err != nil {
		return models.Tournament{}, err
	}
	return t, nil
}

// GetTournamentByInviteCode implements [ServerAdapter].
func (h *httpServerAdapter) GetTournamentByInviteCode(ctx context.Context, code string) (models.Tournament, error) {
	var t models.Tournament
	if err := h.send(h.authedRequest(ctx), http.MethodGet, "/tournaments/by-invite/"+url.PathEscape(code), &t); err != nil {
		return models.Tournament{}, err
	}
	return t, nil
}

// CreateTournament implements [ServerAdapter].
func (h *httpServerAdapter) CreateTournament(ctx context.Context, t models.TournamentCreate) (models.Tournament, error) {
	var created models.Tournament
	if err := h.send(h.jsonRequest(ctx, t), http.MethodPost, "/tournaments/", &created); err != nil {
		return models.Tournament{}, err
	}
	return created, nil
}

// UpdateTournament implements [ServerAdapter].
func (h *httpServerAdapter) UpdateTournament(ctx context.Context, id string, t models.TournamentCreate) (models.Tournament, error) {
	var updated models.Tournament
	if err := h.send(h.jsonRequest(ctx, t), http.MethodPut, tournamentPath(id), &updated); err != nil {
		return models.Tournament{}, err
	}
	return updated, nil
}

// DeleteTournament implements [ServerAdapter].
func (h *httpServerAdapter) DeleteTournament(ctx context.Context, id string) error {
	return h.send(h.authedRequest(ctx), http.MethodDelete, tournamentPath(id), nil)
}

// AddParticipant implements [ServerAdapter].
func (h *httpServerAdapter) AddParticipant(ctx context.Context, tournamentID string, p models.ParticipantCreate) (models.Participant, error) {
	var created models.Participant
	if err := h.send(h.jsonRequest(ctx, p), http.MethodPost, tournamentPath(tournamentID, "participants", ""), &created); err != nil {
		return models.Participant{}, err
	}
	return created, nil
}

// ListParticipants implements [ServerAdapter].
func (h *httpServerAdapter) ListParticipants(ctx context.Context, tournamentID string) ([]models.Participant, error) {
	var participants []models.Participant
	if err := h.send(h.authedRequest(ctx), http.MethodGet, tournamentPath(tournamentID, "participants", ""), &participants); err != nil {
		return nil, err
	}
	return participants, nil
}

// RemoveParticipant implements [ServerAdapter].
func (h *httpServerAdapter) RemoveParticipant(ctx context.Context, tournamentID, participantID string) error {
	return h.send(h.authedRequest(ctx), http.MethodDelete, tournamentPath(tournamentID, "participants", participantID), nil)
}

// JoinTournament implements [ServerAdapter].
func (h *httpServerAdapter) JoinTournament(ctx context.Context, tournamentID string) (models.Participant, error) {
	var joined models.Participant
	if err := h.send(h.authedRequest(ctx), http.MethodPost, tournamentPath(tournamentID, "join_authenticated"), &joined); err != nil {
		return models.Participant{}, err
	}
	return joined, nil
}

// ListMatches implements [ServerAdapter].
func (h *httpServerAdapter) ListMatches(ctx context.Context, tournamentID string) ([]models.Match, error) {
	var matches []models.Match
	if err := h.send(h.authedRequest(ctx), http.MethodGet, tournamentPath(tournamentID, "matches"), &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// GenerateMatches implements [ServerAdapter].
func (h *httpServerAdapter) GenerateMatches(ctx context.Context, tournamentID string) (models.GenerateMatchesResponse, error) {
	var resp models.GenerateMatchesResponse
	if err := h.send(h.authedRequest(ctx), http.MethodPost, tournamentPath(tournamentID, "matches", "generate"), &resp); err != nil {
		return models.GenerateMatchesResponse{}, err
	}
	return resp, nil
}

// RecordMatchResult implements [ServerAdapter].
func (h *httpServerAdapter) RecordMatchResult(ctx context.Context, tournamentID, matchID string, result models.MatchResult) (models.Match, error) {
	var match models.Match
	path := tournamentPath(tournamentID, "matches", matchID, "result")
	if err := h.send(h.jsonRequest(ctx, result), http.MethodPost, path, &match); err != nil {
		return models.Match{}, err
	}
	return match, nil
}

// GeneratePlayoffs implements [ServerAdapter].
func (h *httpServerAdapter) GeneratePlayoffs(ctx context.Context, tournamentID string) (models.PlayoffsResponse, error) {
	var resp models.PlayoffsResponse
	if err := h.send(h.authedRequest(ctx), http.MethodPost, tournamentPath(tournamentID, "generate-playoffs"), &resp); err != nil {
		return models.PlayoffsResponse{}, err
	}
	return resp, nil
}

// GetBracket implements [ServerAdapter].
func (h *httpServerAdapter) GetBracket(ctx context.Context, tournamentID string) (models.MatchesView, error) {
	var view models.MatchesView
	if err := h.send(h.authedRequest(ctx), http.MethodGet, tournamentPath(tournamentID, "bracket"), &view); err != nil {
		return models.MatchesView{}, err
	}
	return view, nil
}

// GetSchedule implements [ServerAdapter].
func (h *httpServerAdapter) GetSchedule(ctx context.Context, tournamentID string) (models.MatchesView, error) {
	var view models.MatchesView
	if err := h.send(h.authedRequest(ctx), http.MethodGet, tournamentPath(tournamentID, "schedule"), &view); err != nil {
		return models.MatchesView{}, err
	}
	return view, nil
}

// GetStandings implements [ServerAdapter].
func (h *httpServerAdapter) GetStandings(ctx context.Context, tournamentID string) ([]models.Standing, error) {
	var resp models.StandingsResponse
	if err := h.send(h.authedRequest(ctx), http.MethodGet, tournamentPath(tournamentID, "standings"), &resp); err != nil {
		return nil, err
	}
	return resp.Standings, nil
}

// authedRequest starts a request carrying the bearer token, if any.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) jsonRequest(ctx context.Context, body any) *resty.Request {
	return h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

// send executes req and decodes a 2xx body into out. An empty body leaves
// out untouched; out may be nil when no value is expected.
func (h *httpServerAdapter) send(req *resty.Request, method, path string, out any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).
			Str("method", method).
			Str("path", path).
			Msg("request failed")
		return &NetworkError{Op: method + " " + path, Err: err}
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Str("request_id", req.Header.Get(utils.RequestIDHeader)).
			Msg("api error")
		return err
	}

	body := bytes.TrimSpace(resp.Body())
	if out == nil || len(body) == 0 {
		return nil
	}
	if err = json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}

	return nil
}

// tournamentPath builds /tournaments/{id}[/rest...], escaping every dynamic
// segment. A trailing "" produces a trailing slash.
func tournamentPath(id string, rest ...string) string {
	var b strings.Builder
	b.WriteString("/tournaments/")
	b.WriteString(url.PathEscape(id))
	for _, seg := range rest {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(seg))
	}
	return b.String()
}
