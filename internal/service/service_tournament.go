// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/match-point/internal/adapter"
	"github.com/MKhiriev/match-point/internal/logger"
	"github.com/MKhiriev/match-point/models"
)

type tournamentService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewTournamentService returns the gateway-backed TournamentService. Errors
// are wrapped with the operation; the gateway error stays reachable with
// errors.As.
func NewTournamentService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) TournamentService {
	return &tournamentService{
		adapter: serverAdapter,
		logger:  logger.GetChildLogger("tournaments"),
	}
}

func (s *tournamentService) List(ctx context.Context) ([]models.Tournament, error) {
	tournaments, err := s.adapter.ListTournaments(ctx)
	if err != nil {
		return nil, s.fail(err, "list tournaments")
	}
	return tournaments, nil
}

func (s *tournamentService) Get(ctx context.Context, id string) (models.Tournament, error) {
	t, err := s.adapter.GetTournament(ctx, id)
	if err != nil {
		return models.Tournament{}, s.fail(err, "get tournament %s", id)
	}
	return t, nil
}

func (s *tournamentService) GetByInviteCode(ctx context.Context, code string) (models.Tournament, error) {
	t, err := s.adapter.GetTournamentByInviteCode(ctx, code)
	if err != nil {
		return models.Tournament{}, s.fail(err, "get tournament by invite code")
	}
	return t, nil
}

func (s *tournamentService) Create(ctx context.Context, in models.TournamentCreate) (models.Tournament, error) {
	t, err := s.adapter.CreateTournament(ctx, in)
	if err != nil {
		return models.Tournament{}, s.fail(err, "create tournament")
	}
	s.logger.Info().Str("tournament_id", t.ID).Msg("tournament created")
	return t, nil
}

func (s *tournamentService) Update(ctx context.Context, id string, in models.TournamentCreate) (models.Tournament, error) {
	t, err := s.adapter.UpdateTournament(ctx, id, in)
	if err != nil {
		return models.Tournament{}, s.fail(err, "update tournament %s", id)
	}
	return t, nil
}

func (s *tournamentService) Delete(ctx context.Context, id string) error {
	if err := s.adapter.DeleteTournament(ctx, id); err != nil {
		return s.fail(err, "delete tournament %s", id)
	}
	s.logger.Info().Str("tournament_id", id).Msg("tournament deleted")
	return nil
}

func (s *tournamentService) AddParticipant(ctx context.Context, tournamentID string, in models.ParticipantCreate) (models.Participant, error) {
	p, err := s.adapter.AddParticipant(ctx, tournamentID, in)
	if err != nil {
		return models.Participant{}, s.fail(err, "add participant to %s", tournamentID)
	}
	return p, nil
}

func (s *tournamentService) ListParticipants(ctx context.Context, tournamentID string) ([]models.Participant, error) {
	ps, err := s.adapter.ListParticipants(ctx, tournamentID)
	if err != nil {
		return nil, s.fail(err, "list participants of %s", tournamentID)
	}
	return ps, nil
}

func (s *tournamentService) RemoveParticipant(ctx context.Context, tournamentID, participantID string) error {
	if err := s.adapter.RemoveParticipant(ctx, tournamentID, participantID); err != nil {
		return s.fail(err, "remove participant %s from %s", participantID, tournamentID)
	}
	return nil
}

func (s *tournamentService) Join(ctx context.Context, tournamentID string) (models.Participant, error) {
	p, err := s.adapter.JoinTournament(ctx, tournamentID)
	if err != nil {
		return models.Participant{}, s.fail(err, "join tournament %s", tournamentID)
	}
	s.logger.Info().Str("tournament_id", tournamentID).Msg("joined tournament")
	return p, nil
}

func (s *tournamentService) ListMatches(ctx context.Context, tournamentID string) ([]models.Match, error) {
	ms, err := s.adapter.ListMatches(ctx, tournamentID)
	if err != nil {
		return nil, s.fail(err, "list matches of %s", tournamentID)
	}
	return ms, nil
}

func (s *tournamentService) GenerateMatches(ctx context.Context, tournamentID string) (models.GenerateMatchesResponse, error) {
	resp, err := s.adapter.GenerateMatches(ctx, tournamentID)
	if err != nil {
		return models.GenerateMatchesResponse{}, s.fail(err, "generate matches for %s", tournamentID)
	}
	s.logger.Info().Str("tournament_id", tournamentID).Int("matches", len(resp.Matches)).Msg("matches generated")
	return resp, nil
}

func (s *tournamentService) RecordResult(ctx context.Context, tournamentID string, match models.Match, result models.MatchResult) (models.Match, error) {
	if result.Status == "" {
		result.Status = models.MatchCompleted
	}
	m, err := s.adapter.RecordMatchResult(ctx, tournamentID, match.ID, result)
	if err != nil {
		return models.Match{}, s.fail(err, "record result of match %s", match.ID)
	}
	return m, nil
}

func (s *tournamentService) GeneratePlayoffs(ctx context.Context, tournamentID string) (models.PlayoffsResponse, error) {
	resp, err := s.adapter.GeneratePlayoffs(ctx, tournamentID)
	if err != nil {
		return models.PlayoffsResponse{}, s.fail(err, "generate playoffs for %s", tournamentID)
	}
	return resp, nil
}

func (s *tournamentService) Bracket(ctx context.Context, tournamentID string) (models.MatchesView, error) {
	v, err := s.adapter.GetBracket(ctx, tournamentID)
	if err != nil {
		return models.MatchesView{}, s.fail(err, "get bracket of %s", tournamentID)
	}
	return v, nil
}

func (s *tournamentService) Schedule(ctx context.Context, tournamentID string) (models.MatchesView, error) {
	v, err := s.adapter.GetSchedule(ctx, tournamentID)
	if err != nil {
		return models.MatchesView{}, s.fail(err, "get schedule of %s", tournamentID)
	}
	return v, nil
}

func (s *tournamentService) Standings(ctx context.Context, tournamentID string) ([]models.Standing, error) {
	st, err := s.adapter.GetStandings(ctx, tournamentID)
	if err != nil {
		return nil, s.fail(err, "get standings of %s", tournamentID)
	}
	return st, nil
}

func (s *tournamentService) fail(err error, format string, args ...any) error {
	op := fmt.Sprintf(format, args...)
	s.logger.Debug().Err(err).Msg(op + " failed")
	return fmt.Errorf("%s: %w", op, err)
}
