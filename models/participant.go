// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Participant is a player entered in a tournament.
type Participant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Ranking *int   `json:"ranking,omitempty"`
}

// ParticipantCreate is the JSON body of POST /tournaments/{id}/participants/.
type ParticipantCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Ranking *int   `json:"ranking,omitempty"`
}
