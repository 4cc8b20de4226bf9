// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/match-point/models"
)

func participants(n int) []models.Participant {
	out := make([]models.Participant, n)
	for i := range out {
		out[i] = models.Participant{ID: string(rune('a' + i)), Name: string(rune('A' + i))}
	}
	return out
}

func TestRoundRobin_EveryPairOnce(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 6} {
		s := New()
		matches := s.roundRobinLocked(participants(n))

		require.Len(t, matches, n*(n-1)/2, "n=%d", n)

		seen := make(map[[2]string]bool)
		for _, m := range matches {
			a, b := *m.Participant1ID, *m.Participant2ID
			if a > b {
				a, b = b, a
			}
			key := [2]string{a, b}
			assert.False(t, seen[key], "pair %v twice for n=%d", key, n)
			seen[key] = true
			assert.Equal(t, models.PhaseGroup, m.Phase)
			assert.Equal(t, models.MatchPending, m.Status)
		}
	}
}

func TestRoundRobin_NobodyPlaysTwicePerRound(t *testing.T) {
	s := New()
	matches := s.roundRobinLocked(participants(6))

	perRound := make(map[int]map[string]bool)
	for _, m := range matches {
		r := m.Round()
		if perRound[r] == nil {
			perRound[r] = make(map[string]bool)
		}
		for _, id := range []string{*m.Participant1ID, *m.Participant2ID} {
			assert.False(t, perRound[r][id], "%s twice in round %d", id, r)
			perRound[r][id] = true
		}
	}
	assert.Len(t, perRound, 5)
}

func TestCalculateStandings(t *testing.T) {
	ps := participants(3)
	score := func(v int) *int { return &v }
	id := func(v string) *string { return &v }

	tour := models.Tournament{
		Participants: ps,
		Matches: []models.Match{
			{Participant1ID: id("a"), Participant2ID: id("b"), Participant1Score: score(3), Participant2Score: score(1), Status: models.MatchCompleted, Phase: models.PhaseGroup},
			{Participant1ID: id("b"), Participant2ID: id("c"), Participant1Score: score(2), Participant2Score: score(2), Status: models.MatchCompleted, Phase: models.PhaseGroup},
			{Participant1ID: id("a"), Participant2ID: id("c"), Status: models.MatchPending, Phase: models.PhaseGroup},
		},
	}

	table := calculateStandings(tour)
	require.Len(t, table, 3)

	assert.Equal(t, "a", table[0].Participant.ID)
	assert.Equal(t, 3, table[0].Points)
	assert.Equal(t, 2, table[0].Difference())

	assert.Equal(t, "c", table[1].Participant.ID)
	assert.Equal(t, 1, table[1].Points)
	assert.Equal(t, 0, table[1].Difference())

	assert.Equal(t, "b", table[2].Participant.ID)
	assert.Equal(t, 1, table[2].Draws)
	assert.Equal(t, 1, table[2].Losses)
	assert.Equal(t, 2, table[2].Played)
}
