// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// Standing is one row of GET /tournaments/{id}/standings.
type Standing struct {
	Participant  Participant `json:"participant"`
	Played       int         `json:"played"`
	Wins         int         `json:"wins"`
	Draws        int         `json:"draws"`
	Losses       int         `json:"losses"`
	ScoreFor     int         `json:"score_for"`
	ScoreAgainst int         `json:"score_against"`
	Points       int         `json:"points"`
}

// Difference is ScoreFor minus ScoreAgainst.
func (s Standing) Difference() int {
	return s.ScoreFor - s.ScoreAgainst
}

// StandingsResponse wraps the standings list the way the server sends it.
type StandingsResponse struct {
	Standings []Standing `json:"standings"`
}

// MatchesView is the body of the bracket and schedule endpoints.
type MatchesView struct {
	TournamentID   string  `json:"tournament_id"`
	Name           string  `json:"name"`
	Matches        []Match `json:"matches"`
	PlayoffMatches []Match `json:"playoff_matches,omitempty"`
}

// Rounds groups Matches by round number, preserving server order inside a
// round. The returned slice is indexed by round-1.
func (v MatchesView) Rounds() [][]Match {
	var rounds [][]Match
	for _, m := range v.Matches {
		r := m.Round()
		for len(rounds) < r {
			rounds = append(rounds, nil)
		}
		rounds[r-1] = append(rounds[r-1], m)
	}
	return rounds
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

// GenerateMatchesResponse is returned by the schedule generation endpoint.
type GenerateMatchesResponse struct {
	Message        string  `json:"message"`
	TournamentID   string  `json:"tournament_id"`
	TotalMatchdays int     `json:"total_matchdays"`
	Matches        []Match `json:"matches"`
}

// PlayoffsResponse is returned once the playoff bracket has been generated
// from the group stage.
type PlayoffsResponse struct {
	Message        string  `json:"message"`
	PlayoffMatches []Match `json:"playoff_matches"`
}
