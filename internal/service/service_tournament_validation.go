// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/match-point/internal/validators"
	"github.com/MKhiriev/match-point/models"
)

// TournamentValidationService rejects malformed input before the wrapped
// service sends it to the API. Rejections are [*ValidationError].
type TournamentValidationService struct {
	inner     TournamentService
	validator validators.Validator
}

func NewTournamentValidationService() TournamentServiceWrapper {
	return &TournamentValidationService{
		validator: validators.NewTournamentValidator(),
	}
}

func (v *TournamentValidationService) Wrap(inner TournamentService) TournamentService {
	v.inner = inner
	return v
}

func (v *TournamentValidationService) List(ctx context.Context) ([]models.Tournament, error) {
	return v.inner.List(ctx)
}

func (v *TournamentValidationService) Get(ctx context.Context, id string) (models.Tournament, error) {
	if err := requireIDs(id); err != nil {
		return models.Tournament{}, err
	}
	return v.inner.Get(ctx, id)
}

func (v *TournamentValidationService) GetByInviteCode(ctx context.Context, code string) (models.Tournament, error) {
	if err := requireIDs(code); err != nil {
		return models.Tournament{}, err
	}
	return v.inner.GetByInviteCode(ctx, strings.TrimSpace(code))
}

func (v *TournamentValidationService) Create(ctx context.Context, in models.TournamentCreate) (models.Tournament, error) {
	if err := v.validate(ctx, in); err != nil {
		return models.Tournament{}, err
	}
	return v.inner.Create(ctx, in)
}

func (v *TournamentValidationService) Update(ctx context.Context, id string, in models.TournamentCreate) (models.Tournament, error) {
	if err := requireIDs(id); err != nil {
		return models.Tournament{}, err
	}
	if err := v.validate(ctx, in); err != nil {
		return models.Tournament{}, err
	}
	return v.inner.Update(ctx, id, in)
}

func (v *TournamentValidationService) Delete(ctx context.Context, id string) error {
	if err := requireIDs(id); err != nil {
		return err
	}
	return v.inner.Delete(ctx, id)
}

func (v *TournamentValidationService) AddParticipant(ctx context.Context, tournamentID string, in models.ParticipantCreate) (models.Participant, error) {
	if err := requireIDs(tournamentID); err != nil {
		return models.Participant{}, err
	}
	if err := v.validate(ctx, in); err != nil {
		return models.Participant{}, err
	}
	return v.inner.AddParticipant(ctx, tournamentID, in)
}

func (v *TournamentValidationService) ListParticipants(ctx context.Context, tournamentID string) ([]models.Participant, error) {
	if err := requireIDs(tournamentID); err != nil {
		return nil, err
	}
	return v.inner.ListParticipants(ctx, tournamentID)
}

func (v *TournamentValidationService) RemoveParticipant(ctx context.Context, tournamentID, participantID string) error {
	if err := requireIDs(tournamentID, participantID); err != nil {
		return err
	}
	return v.inner.RemoveParticipant(ctx, tournamentID, participantID)
}

func (v *TournamentValidationService) Join(ctx context.Context, tournamentID string) (models.Participant, error) {
	if err := requireIDs(tournamentID); err != nil {
		return models.Participant{}, err
	}
	return v.inner.Join(ctx, tournamentID)
}

func (v *TournamentValidationService) ListMatches(ctx context.Context, tournamentID string) ([]models.Match, error) {
	if err := requireIDs(tournamentID); err != nil {
		return nil, err
	}
	return v.inner.ListMatches(ctx, tournamentID)
}

func (v *TournamentValidationService) GenerateMatches(ctx context.Context, tournamentID string) (models.GenerateMatchesResponse, error) {
	if err := requireIDs(tournamentID); err != nil {
		return models.GenerateMatchesResponse{}, err
	}
	return v.inner.GenerateMatches(ctx, tournamentID)
}

func (v *TournamentValidationService) RecordResult(ctx context.Context, tournamentID string, match models.Match, result models.MatchResult) (models.Match, error) {
	if err := requireIDs(tournamentID); err != nil {
		return models.Match{}, err
	}
	if err := v.validate(ctx, validators.MatchResultInput{Match: match, Result: result}); err != nil {
		return models.Match{}, err
	}
	return v.inner.RecordResult(ctx, tournamentID, match, result)
}

func (v *TournamentValidationService) GeneratePlayoffs(ctx context.Context, tournamentID string) (models.PlayoffsResponse, error) {
	if err := requireIDs(tournamentID); err != nil {
		return models.PlayoffsResponse{}, err
	}
	return v.inner.GeneratePlayoffs(ctx, tournamentID)
}

func (v *TournamentValidationService) Bracket(ctx context.Context, tournamentID string) (models.MatchesView, error) {
	if err := requireIDs(tournamentID); err != nil {
		return models.MatchesView{}, err
	}
	return v.inner.Bracket(ctx, tournamentID)
}

func (v *TournamentValidationService) Schedule(ctx context.Context, tournamentID string) (models.MatchesView, error) {
	if err := requireIDs(tournamentID); err != nil {
		return models.MatchesView{}, err
	}
	return v.inner.Schedule(ctx, tournamentID)
}

func (v *TournamentValidationService) Standings(ctx context.Context, tournamentID string) ([]models.Standing, error) {
	if err := requireIDs(tournamentID); err != nil {
		return nil, err
	}
	return v.inner.Standings(ctx, tournamentID)
}

func (v *TournamentValidationService) validate(ctx context.Context, obj any) error {
	if err := v.validator.Validate(ctx, obj); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

func requireIDs(ids ...string) error {
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return &ValidationError{Err: validators.ErrEmptyID}
		}
	}
	return nil
}
