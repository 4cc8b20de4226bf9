// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/match-point/internal/adapter"
	"github.com/MKhiriev/match-point/internal/config"
	"github.com/MKhiriev/match-point/internal/logger"
	"github.com/MKhiriev/match-point/internal/mock"
	"github.com/MKhiriev/match-point/internal/validators"
	"github.com/MKhiriev/match-point/models"
)

func ptr[T any](v T) *T { return &v }

func newTestServices(t *testing.T) (TournamentService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svcs := NewServices(mockAdapter, models.NewAppBuildInfo("", "", ""), config.ClientConfig{}, logger.Nop())
	return svcs.TournamentService, mockAdapter
}

// ─────────────────────────────────────────────
// forwarding
// ─────────────────────────────────────────────

func TestTournamentService_Create(t *testing.T) {
	svc, mockAdapter := newTestServices(t)
	ctx := context.Background()
	in := models.TournamentCreate{Name: "Cup", Type: models.TypeSingle, Format: models.FormatElimination}

	mockAdapter.EXPECT().CreateTournament(ctx, in).Return(models.Tournament{ID: "t1", Name: "Cup"}, nil)

	got, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)
}

func TestTournamentService_ErrorKeepsServerDetail(t *testing.T) {
	svc, mockAdapter := newTestServices(t)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteTournament(ctx, "t1").
		Return(&adapter.APIError{StatusCode: 403, Detail: "Not authorized to modify this tournament"})

	err := svc.Delete(ctx, "t1")
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrForbidden)

	var apiErr *adapter.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Not authorized to modify this tournament", apiErr.Detail)
	assert.Contains(t, err.Error(), "delete tournament t1")
}

func TestTournamentService_RecordResultDefaultsStatus(t *testing.T) {
	svc, mockAdapter := newTestServices(t)
	ctx := context.Background()
	match := models.Match{ID: "m1", Participant1ID: ptr("p1"), Participant2ID: ptr("p2")}

	mockAdapter.EXPECT().
		RecordMatchResult(ctx, "t1", "m1", models.MatchResult{Participant1Score: 2, Participant2Score: 0, WinnerID: "p1", Status: models.MatchCompleted}).
		Return(models.Match{ID: "m1", Status: models.MatchCompleted}, nil)

	got, err := svc.RecordResult(ctx, "t1", match, models.MatchResult{Participant1Score: 2, Participant2Score: 0, WinnerID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, models.MatchCompleted, got.Status)
}

func TestTournamentService_ReadOperations(t *testing.T) {
	svc, mockAdapter := newTestServices(t)
	ctx := context.Background()

	mockAdapter.EXPECT().ListTournaments(ctx).Return([]models.Tournament{{ID: "t1"}}, nil)
	mockAdapter.EXPECT().GetTournament(ctx, "t1").Return(models.Tournament{ID: "t1"}, nil)
	mockAdapter.EXPECT().GetTournamentByInviteCode(ctx, "code").Return(models.Tournament{ID: "t1"}, nil)
	mockAdapter.EXPECT().ListParticipants(ctx, "t1").Return([]models.Participant{{ID: "p1"}}, nil)
	mockAdapter.EXPECT().ListMatches(ctx, "t1").Return([]models.Match{{ID: "m1"}}, nil)
	mockAdapter.EXPECT().GetBracket(ctx, "t1").Return(models.MatchesView{TournamentID: "t1"}, nil)
	mockAdapter.EXPECT().GetSchedule(ctx, "t1").Return(models.MatchesView{TournamentID: "t1"}, nil)
	mockAdapter.EXPECT().GetStandings(ctx, "t1").Return([]models.Standing{{Points: 3}}, nil)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.Get(ctx, "t1")
	require.NoError(t, err)
	_, err = svc.GetByInviteCode(ctx, "  code ")
	require.NoError(t, err)

	ps, err := svc.ListParticipants(ctx, "t1")
	require.NoError(t, err)
	assert.Len(t, ps, 1)

	ms, err := svc.ListMatches(ctx, "t1")
	require.NoError(t, err)
	assert.Len(t, ms, 1)

	_, err = svc.Bracket(ctx, "t1")
	require.NoError(t, err)
	_, err = svc.Schedule(ctx, "t1")
	require.NoError(t, err)

	st, err := svc.Standings(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 3, st[0].Points)
}

func TestTournamentService_WriteOperations(t *testing.T) {
	svc, mockAdapter := newTestServices(t)
	ctx := context.Background()
	update := models.TournamentCreate{Name: "Renamed", Type: models.TypeDouble, Format: models.FormatRoundRobin}
	participant := models.ParticipantCreate{Name: "Ann", Email: "ann@example.com"}

	mockAdapter.EXPECT().UpdateTournament(ctx, "t1", update).Return(models.Tournament{ID: "t1", Name: "Renamed"}, nil)
	mockAdapter.EXPECT().AddParticipant(ctx, "t1", participant).Return(models.Participant{ID: "p1"}, nil)
	mockAdapter.EXPECT().RemoveParticipant(ctx, "t1", "p1").Return(nil)
	mockAdapter.EXPECT().JoinTournament(ctx, "t1").Return(models.Participant{ID: "p2"}, nil)
	mockAdapter.EXPECT().GenerateMatches(ctx, "t1").Return(models.GenerateMatchesResponse{TotalMatchdays: 3}, nil)
	mockAdapter.EXPECT().GeneratePlayoffs(ctx, "t1").Return(models.PlayoffsResponse{Message: "ok"}, nil)

	got, err := svc.Update(ctx, "t1", update)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)

	p, err := svc.AddParticipant(ctx, "t1", participant)
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	require.NoError(t, svc.RemoveParticipant(ctx, "t1", "p1"))

	joined, err := svc.Join(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "p2", joined.ID)

	gen, err := svc.GenerateMatches(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 3, gen.TotalMatchdays)

	playoffs, err := svc.GeneratePlayoffs(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "ok", playoffs.Message)
}

// ─────────────────────────────────────────────
// validation
// ─────────────────────────────────────────────

// The mock has no expectations, so any call reaching the gateway fails the test.
func TestTournamentValidation_RejectsBeforeGateway(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	match := models.Match{ID: "m1", Participant1ID: ptr("p1"), Participant2ID: ptr("p2")}

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{"create without name", func() error {
			_, err := svc.Create(ctx, models.TournamentCreate{Type: models.TypeSingle, Format: models.FormatRoundRobin})
			return err
		}, validators.ErrEmptyName},
		{"create with unknown format", func() error {
			_, err := svc.Create(ctx, models.TournamentCreate{Name: "Cup", Type: models.TypeSingle, Format: "swiss"})
			return err
		}, validators.ErrInvalidFormat},
		{"update without id", func() error {
			_, err := svc.Update(ctx, " ", models.TournamentCreate{Name: "Cup", Type: models.TypeSingle, Format: models.FormatRoundRobin})
			return err
		}, validators.ErrEmptyID},
		{"participant with bad email", func() error {
			_, err := svc.AddParticipant(ctx, "t1", models.ParticipantCreate{Name: "Ann", Email: "ann"})
			return err
		}, validators.ErrInvalidEmail},
		{"remove without participant id", func() error {
			return svc.RemoveParticipant(ctx, "t1", "")
		}, validators.ErrEmptyID},
		{"result with outsider winner", func() error {
			_, err := svc.RecordResult(ctx, "t1", match, models.MatchResult{Participant1Score: 1, WinnerID: "p7"})
			return err
		}, validators.ErrInvalidWinner},
		{"result with negative score", func() error {
			_, err := svc.RecordResult(ctx, "t1", match, models.MatchResult{Participant1Score: -2})
			return err
		}, validators.ErrNegativeScore},
		{"standings without id", func() error {
			_, err := svc.Standings(ctx, "")
			return err
		}, validators.ErrEmptyID},
		{"invite without code", func() error {
			_, err := svc.GetByInviteCode(ctx, "")
			return err
		}, validators.ErrEmptyID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.want.Error(), err.Error())
		})
	}
}
