// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the API gateway of the match-point client: the single
// place that turns method calls into HTTP requests against the tournament
// REST API.
//
// Every request carries "Authorization: Bearer <token>" when a token is set
// and no Authorization header otherwise. Non-2xx answers become [*APIError]
// whose message is the server's detail text; transport failures become
// [*NetworkError]. Callers match status classes with [errors.Is] against the
// sentinels in errors.go (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/match-point/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the tournament API server.
// Implementations are safe for concurrent use.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	// An empty token removes the Authorization header.
	SetToken(token string)

	// Token returns the bearer token currently held, or "".
	Token() string

	// Login exchanges credentials for an access token (POST /token,
	// form-encoded username/password). The token is returned, not stored.
	Login(ctx context.Context, email, password string) (models.Token, error)

	// Register creates a new account (POST /users/register).
	Register(ctx context.Context, user models.UserCreate) (models.User, error)

	// GetCurrentUser fetches the profile of the token owner (GET /users/me).
	GetCurrentUser(ctx context.Context) (models.User, error)

	// Logout asks the server to revoke token (GET /users/logout). The token
	// is passed explicitly because the session forgets it before revoking.
	Logout(ctx context.Context, token string) error

	ListTournaments(ctx context.Context) ([]models.Tournament, error)
	GetTournament(ctx context.Context, id string) (models.Tournament, error)
	GetTournamentByInviteCode(ctx context.Context, code string) (models.Tournament, error)
	CreateTournament(ctx context.Context, t models.TournamentCreate) (models.Tournament, error)
	UpdateTournament(ctx context.Context, id string, t models.TournamentCreate) (models.Tournament, error)
	// DeleteTournament succeeds on an empty 2xx body.
	DeleteTournament(ctx context.Context, id string) error

	AddParticipant(ctx context.Context, tournamentID string, p models.ParticipantCreate) (models.Participant, error)
	ListParticipants(ctx context.Context, tournamentID string) ([]models.Participant, error)
	RemoveParticipant(ctx context.Context, tournamentID, participantID string) error
	// JoinTournament adds the token owner as a participant.
	JoinTournament(ctx context.Context, tournamentID string) (models.Participant, error)

	ListMatches(ctx context.Context, tournamentID string) ([]models.Match, error)
	GenerateMatches(ctx context.Context, tournamentID string) (models.GenerateMatchesResponse, error)
	RecordMatchResult(ctx context.Context, tournamentID, matchID string, result models.MatchResult) (models.Match, error)
	GeneratePlayoffs(ctx context.Context, tournamentID string) (models.PlayoffsResponse, error)

	GetBracket(ctx context.Context, tournamentID string) (models.MatchesView, error)
	GetSchedule(ctx context.Context, tournamentID string) (models.MatchesView, error)
	GetStandings(ctx context.Context, tournamentID string) ([]models.Standing, error)
}
