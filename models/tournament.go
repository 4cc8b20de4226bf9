// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TournamentFormat selects how the server generates matches.
type TournamentFormat string

const (
	// FormatRoundRobin plays every participant against every other one and
	// produces a schedule and standings.
	FormatRoundRobin TournamentFormat = "round_robin"
	// FormatElimination plays single-elimination rounds and produces a bracket.
	FormatElimination TournamentFormat = "elimination"
)

// TournamentType distinguishes singles from doubles.
type TournamentType string

const (
	TypeSingle TournamentType = "single"
	TypeDouble TournamentType = "double"
)

// Tournament mirrors the server's tournament document as returned by
// GET /tournaments/{id}.
type Tournament struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Type           TournamentType   `json:"type"`
	Format         TournamentFormat `json:"format"`
	StartDate      *time.Time       `json:"start_date,omitempty"`
	EndDate        *time.Time       `json:"end_date,omitempty"`
	Participants   []Participant    `json:"participants"`
	Matches        []Match          `json:"matches"`
	InvitationLink string           `json:"invitation_link,omitempty"`
	InviteCode     string           `json:"invite_code,omitempty"`
	OwnerEmail     string           `json:"owner_email,omitempty"`
}

// Participant finds a participant by id.
func (t Tournament) Participant(id string) (Participant, bool) {
	for _, p := range t.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}

// Match finds a match by id.
func (t Tournament) Match(id string) (Match, bool) {
	for _, m := range t.Matches {
		if m.ID == id {
			return m, true
		}
	}
	return Match{}, false
}

// ParticipantName resolves a participant id to a display name, "TBD" for an
// empty slot and the raw id when the participant is unknown.
func (t Tournament) ParticipantName(id *string) string {
	if id == nil || *id == "" {
		return "TBD"
	}
	if p, ok := t.Participant(*id); ok {
		return p.Name
	}
	return *id
}

// TournamentCreate is the JSON body of POST /tournaments/ and
// PUT /tournaments/{id}.
type TournamentCreate struct {
	Name      string           `json:"name"`
	Type      TournamentType   `json:"type"`
	Format    TournamentFormat `json:"format"`
	StartDate *time.Time       `json:"start_date,omitempty"`
	EndDate   *time.Time       `json:"end_date,omitempty"`
}
