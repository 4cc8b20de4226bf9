// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MatchStatus is the lifecycle state of a match.
type MatchStatus string

const (
	MatchPending    MatchStatus = "pending"
	MatchInProgress MatchStatus = "in_progress"
	MatchCompleted  MatchStatus = "completed"
	MatchCancelled  MatchStatus = "cancelled"
)

// MatchPhase separates group-stage matches from playoff matches.
type MatchPhase string

const (
	PhaseGroup   MatchPhase = "group"
	PhasePlayoff MatchPhase = "playoff"
)

// Match is a single pairing inside a tournament.
type Match struct {
	ID                 string      `json:"id"`
	Participant1ID     *string     `json:"participant1_id,omitempty"`
	Participant2ID     *string     `json:"participant2_id,omitempty"`
	Participant1Score  *int        `json:"participant1_score,omitempty"`
	Participant2Score  *int        `json:"participant2_score,omitempty"`
	WinnerID           *string     `json:"winner_id,omitempty"`
	RoundNumber        *int        `json:"round_number,omitempty"`
	MatchNumber        *int        `json:"match_number,omitempty"`
	MatchNumberInRound *int        `json:"match_number_in_round,omitempty"`
	MatchDay           *int        `json:"match_day,omitempty"`
	Phase              MatchPhase  `json:"phase,omitempty"`
	StartTime          *time.Time  `json:"start_time,omitempty"`
	Status             MatchStatus `json:"status"`
}

// Round returns the round number, defaulting to 1 when the server omits it.
func (m Match) Round() int {
	if m.RoundNumber == nil {
		return 1
	}
	return *m.RoundNumber
}

// HasParticipant reports whether id plays in this match.
func (m Match) HasParticipant(id string) bool {
	return (m.Participant1ID != nil && *m.Participant1ID == id) ||
		(m.Participant2ID != nil && *m.Participant2ID == id)
}

// Score renders "a - b", or "-" before a result is recorded.
func (m Match) Score() string {
	if m.Participant1Score == nil || m.Participant2Score == nil {
		return "-"
	}
	return itoa(*m.Participant1Score) + " - " + itoa(*m.Participant2Score)
}

// MatchResult is the JSON body of
// POST /tournaments/{id}/matches/{matchId}/result.
type MatchResult struct {
	Participant1Score int         `json:"participant1_score"`
	Participant2Score int         `json:"participant2_score"`
	WinnerID          string      `json:"winner_id"`
	Status            MatchStatus `json:"status,omitempty"`
}
