// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client's use cases on top of the API gateway.
//
// Pages talk to services, never to the gateway directly. The base
// implementation forwards to the gateway and logs; wrappers add behavior
// such as input validation.
package service

import (
	"context"

	"github.com/MKhiriev/match-point/models"
)

// TournamentService covers everything a signed-in user can do with
// tournaments, their participants and their matches.
type TournamentService interface {
	List(ctx context.Context) ([]models.Tournament, error)
	Get(ctx context.Context, id string) (models.Tournament, error)
	GetByInviteCode(ctx context.Context, code string) (models.Tournament, error)
	Create(ctx context.Context, in models.TournamentCreate) (models.Tournament, error)
	Update(ctx context.Context, id string, in models.TournamentCreate) (models.Tournament, error)
	Delete(ctx context.Context, id string) error

	AddParticipant(ctx context.Context, tournamentID string, in models.ParticipantCreate) (models.Participant, error)
	ListParticipants(ctx context.Context, tournamentID string) ([]models.Participant, error)
	RemoveParticipant(ctx context.Context, tournamentID, participantID string) error
	Join(ctx context.Context, tournamentID string) (models.Participant, error)

	ListMatches(ctx context.Context, tournamentID string) ([]models.Match, error)
	GenerateMatches(ctx context.Context, tournamentID string) (models.GenerateMatchesResponse, error)
	// RecordResult stores the result of match. The match itself is passed so
	// the result can be checked against its participants.
	RecordResult(ctx context.Context, tournamentID string, match models.Match, result models.MatchResult) (models.Match, error)
	GeneratePlayoffs(ctx context.Context, tournamentID string) (models.PlayoffsResponse, error)

	Bracket(ctx context.Context, tournamentID string) (models.MatchesView, error)
	Schedule(ctx context.Context, tournamentID string) (models.MatchesView, error)
	Standings(ctx context.Context, tournamentID string) ([]models.Standing, error)
}

// TournamentServiceWrapper decorates a TournamentService.
type TournamentServiceWrapper interface {
	Wrap(TournamentService) TournamentService
}

// AppInfoService describes the running client for the settings page.
type AppInfoService interface {
	BuildInfo() models.AppBuildInfo
	APIAddress() string
	StorageBackend() string
}
