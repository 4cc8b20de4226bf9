// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/match-point/internal/app"
	"github.com/MKhiriev/match-point/internal/utils"
	"github.com/MKhiriev/match-point/models"
)

// lookupLocked returns the tournament named by the {id} URL parameter, writing a
// 404 when it does not exist. Callers must hold s.mu.
func (s *Server) lookupLocked(w http.ResponseWriter, r *http.Request) (*models.Tournament, bool) {
	t, ok := s.tournaments[chi.URLParam(r, "id")]
	if !ok {
		utils.WriteDetail(w, app.MsgTournamentNotFound, http.StatusNotFound)
		return nil, false
	}
	return t, true
}

func (s *Server) ownedLocked(w http.ResponseWriter, r *http.Request) (*models.Tournament, bool) {
	t, ok := s.lookupLocked(w, r)
	if !ok {
		return nil, false
	}
	if t.OwnerEmail != currentUser(r.Context()).Email {
		utils.WriteDetail(w, app.MsgNotTournamentOwner, http.StatusForbidden)
		return nil, false
	}
	return t, true
}

func (s *Server) listTournaments(w http.ResponseWriter, r *http.Request) {
	email := currentUser(r.Context()).Email

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Tournament, 0, len(s.order))
	for _, id := range s.order {
		t := s.tournaments[id]
		if t.OwnerEmail == email || hasParticipantEmail(*t, email) {
			out = append(out, *t)
		}
	}
	_, _ = utils.WriteJSON(w, out, http.StatusOK)
}

func (s *Server) getTournament(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.lookupLocked(w, r); ok {
		_, _ = utils.WriteJSON(w, t, http.StatusOK)
	}
}

func (s *Server) getByInvite(w http.ResponseWriter, r *http.Request) {
	// chi matches on the raw path when it differs from the decoded one.
	code, err := url.PathUnescape(chi.URLParam(r, "code"))
	if err != nil {
		utils.WriteDetail(w, app.MsgInviteNotFound, http.StatusNotFound)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		if t := s.tournaments[id]; t.InviteCode == code {
			_, _ = utils.WriteJSON(w, t, http.StatusOK)
			return
		}
	}
	utils.WriteDetail(w, app.MsgInviteNotFound, http.StatusNotFound)
}

func (s *Server) createTournament(w http.ResponseWriter, r *http.Request) {
	var in models.TournamentCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteDetail(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		_, _ = utils.WriteJSON(w, map[string]any{
			"detail": []map[string]string{{"msg": "name must not be empty"}},
		}, http.StatusUnprocessableEntity)
		return
	}

	owner := currentUser(r.Context())

	s.mu.Lock()
	defer s.mu.Unlock()

	code := uuid.NewString()
	t := &models.Tournament{
		ID:             s.newIDLocked("t"),
		Name:           in.Name,
		Type:           in.Type,
		Format:         in.Format,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		InviteCode:     code,
		InvitationLink: "/join/" + code,
		OwnerEmail:     owner.Email,
		Participants: []models.Participant{{
			ID:    s.newIDLocked("p"),
			Name:  owner.DisplayName(),
			Email: owner.Email,
		}},
		Matches: []models.Match{},
	}
	s.tournaments[t.ID] = t
	s.order = append(s.order, t.ID)

	_, _ = utils.WriteJSON(w, t, http.StatusCreated)
}

func (s *Server) updateTournament(w http.ResponseWriter, r *http.Request) {
	var in models.TournamentCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteDetail(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.ownedLocked(w, r)
	if !ok {
		return
	}
	t.Name, t.Type, t.Format = in.Name, in.Type, in.Format
	t.StartDate, t.EndDate = in.StartDate, in.EndDate

	_, _ = utils.WriteJSON(w, t, http.StatusOK)
}

func (s *Server) deleteTournament(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.ownedLocked(w, r)
	if !ok {
		return
	}
	delete(s.tournaments, t.ID)
	for i, id := range s.order {
		if id == t.ID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listParticipants(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.lookupLocked(w, r); ok {
		_, _ = utils.WriteJSON(w, t.Participants, http.StatusOK)
	}
}

func (s *Server) addParticipant(w http.ResponseWriter, r *http.Request) {
	var in models.ParticipantCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteDetail(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.ownedLocked(w, r)
	if !ok {
		return
	}
	if len(t.Matches) > 0 {
		utils.WriteDetail(w, app.MsgRegistrationClosed, http.StatusBadRequest)
		return
	}
	if in.Email != "" && hasParticipantEmail(*t, in.Email) {
		utils.WriteDetail(w, app.MsgDuplicateEmail, http.StatusBadRequest)
		return
	}

	p := models.Participant{ID: s.newIDLocked("p"), Name: in.Name, Email: in.Email, Ranking: in.Ranking}
	t.Participants = append(t.Participants, p)

	_, _ = utils.WriteJSON(w, p, http.StatusCreated)
}

func (s *Server) removeParticipant(w http.ResponseWriter, r *http.Request) {
	pid := chi.URLParam(r, "pid")

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.ownedLocked(w, r)
	if !ok {
		return
	}
	if len(t.Matches) > 0 {
		utils.WriteDetail(w, app.MsgRemoveAfterStart, http.StatusBadRequest)
		return
	}
	p, found := t.Participant(pid)
	if !found {
		utils.WriteDetail(w, app.MsgParticipantNotFound, http.StatusNotFound)
		return
	}
	if p.Email == t.OwnerEmail {
		utils.WriteDetail(w, app.MsgRemoveCreator, http.StatusBadRequest)
		return
	}

	kept := t.Participants[:0]
	for _, other := range t.Participants {
		if other.ID != pid {
			kept = append(kept, other)
		}
	}
	t.Participants = kept
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) join(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.lookupLocked(w, r)
	if !ok {
		return
	}
	if len(t.Matches) > 0 {
		utils.WriteDetail(w, app.MsgRegistrationClosed, http.StatusBadRequest)
		return
	}
	if hasParticipantEmail(*t, user.Email) {
		utils.WriteDetail(w, app.MsgAlreadyParticipant, http.StatusBadRequest)
		return
	}

	p := models.Participant{ID: s.newIDLocked("p"), Name: user.DisplayName(), Email: user.Email}
	t.Participants = append(t.Participants, p)

	_, _ = utils.WriteJSON(w, p, http.StatusOK)
}

func hasParticipantEmail(t models.Tournament, email string) bool {
	for _, p := range t.Participants {
		if p.Email != "" && strings.EqualFold(p.Email, email) {
			return true
		}
	}
	return false
}
