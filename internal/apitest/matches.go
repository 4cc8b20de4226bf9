// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/match-point/internal/app"
	"github.com/MKhiriev/match-point/internal/utils"
	"github.com/MKhiriev/match-point/models"
)

const (
	pointsWin  = 3
	pointsDraw = 1
)

func (s *Server) listMatches(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.lookupLocked(w, r); ok {
		_, _ = utils.WriteJSON(w, t.Matches, http.StatusOK)
	}
}

func (s *Server) generateMatches(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.ownedLocked(w, r)
	if !ok {
		return
	}
	if len(t.Participants) < 2 {
		utils.WriteDetail(w, app.MsgNotEnoughParticipants, http.StatusBadRequest)
		return
	}
	if t.Format != models.FormatRoundRobin {
		utils.WriteDetail(w, app.MsgOnlyRoundRobin, http.StatusBadRequest)
		return
	}
	if len(t.Matches) > 0 {
		utils.WriteDetail(w, app.MsgMatchesGenerated, http.StatusBadRequest)
		return
	}

	t.Matches = s.roundRobinLocked(t.Participants)

	_, _ = utils.WriteJSON(w, models.GenerateMatchesResponse{
		Message:        "Group stage matches generated",
		TournamentID:   t.ID,
		TotalMatchdays: lastRound(t.Matches),
		Matches:        t.Matches,
	}, http.StatusOK)
}

// roundRobinLocked pairs participants with the circle method. An odd field
// gets a bye each round, which produces no match.
func (s *Server) roundRobinLocked(participants []models.Participant) []models.Match {
	ids := make([]string, 0, len(participants)+1)
	for _, p := range participants {
		ids = append(ids, p.ID)
	}
	if len(ids)%2 == 1 {
		ids = append(ids, "")
	}

	n := len(ids)
	var matches []models.Match
	number := 0
	for round := 1; round < n; round++ {
		inRound := 0
		for i := 0; i < n/2; i++ {
			a, b := ids[i], ids[n-1-i]
			if a == "" || b == "" {
				continue
			}
			number++
			inRound++
			matches = append(matches, s.newMatchLocked(a, b, round, number, inRound, models.PhaseGroup))
		}
		// keep ids[0] fixed and rotate the rest by one
		last := ids[n-1]
		copy(ids[2:], ids[1:n-1])
		ids[1] = last
	}
	return matches
}

func (s *Server) newMatchLocked(a, b string, round, number, inRound int, phase models.MatchPhase) models.Match {
	return models.Match{
		ID:                 s.newIDLocked("m"),
		Participant1ID:     &a,
		Participant2ID:     &b,
		RoundNumber:        &round,
		MatchDay:           &round,
		MatchNumber:        &number,
		MatchNumberInRound: &inRound,
		Phase:              phase,
		Status:             models.MatchPending,
	}
}

func (s *Server) recordResult(w http.ResponseWriter, r *http.Request) {
	var in models.MatchResult
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteDetail(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	user := currentUser(r.Context())
	matchID := chi.URLParam(r, "matchID")

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.lookupLocked(w, r)
	if !ok {
		return
	}

	idx := -1
	for i := range t.Matches {
		if t.Matches[i].ID == matchID {
			idx = i
			break
		}
	}
	if idx < 0 {
		utils.WriteDetail(w, app.MsgMatchNotFound, http.StatusNotFound)
		return
	}
	m := &t.Matches[idx]

	if m.Participant1ID == nil || m.Participant2ID == nil {
		utils.WriteDetail(w, app.MsgByeMatch, http.StatusBadRequest)
		return
	}
	if t.OwnerEmail != user.Email && !s.playsInLocked(*t, *m, user.Email) {
		utils.WriteDetail(w, app.MsgNotMatchPlayer, http.StatusForbidden)
		return
	}
	if in.WinnerID != "" && !m.HasParticipant(in.WinnerID) {
		utils.WriteDetail(w, app.MsgWinnerNotInMatch, http.StatusBadRequest)
		return
	}

	p1, p2 := in.Participant1Score, in.Participant2Score
	m.Participant1Score, m.Participant2Score = &p1, &p2
	m.WinnerID = nil
	if in.WinnerID != "" {
		winner := in.WinnerID
		m.WinnerID = &winner
	}
	m.Status = models.MatchCompleted
	if in.Status != "" {
		m.Status = in.Status
	}

	_, _ = utils.WriteJSON(w, m, http.StatusOK)
}

func (s *Server) playsInLocked(t models.Tournament, m models.Match, email string) bool {
	for _, p := range t.Participants {
		if p.Email == email && m.HasParticipant(p.ID) {
			return true
		}
	}
	return false
}

func (s *Server) bracket(w http.ResponseWriter, r *http.Request) {
	s.matchesView(w, r, models.FormatElimination, "Bracket view is for elimination tournaments only.")
}

func (s *Server) schedule(w http.ResponseWriter, r *http.Request) {
	s.matchesView(w, r, models.FormatRoundRobin, "Schedule view is for round-robin tournaments only.")
}

func (s *Server) matchesView(w http.ResponseWriter, r *http.Request, format models.TournamentFormat, wrongFormat string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.lookupLocked(w, r)
	if !ok {
		return
	}
	if t.Format != format {
		utils.WriteDetail(w, wrongFormat, http.StatusBadRequest)
		return
	}

	_, _ = utils.WriteJSON(w, models.MatchesView{
		TournamentID: t.ID,
		Name:         t.Name,
		Matches:      t.Matches,
	}, http.StatusOK)
}

func (s *Server) standings(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.lookupLocked(w, r); ok {
		_, _ = utils.WriteJSON(w, models.StandingsResponse{Standings: calculateStandings(*t)}, http.StatusOK)
	}
}

func (s *Server) generatePlayoffs(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.ownedLocked(w, r)
	if !ok {
		return
	}

	group := 0
	for _, m := range t.Matches {
		switch {
		case m.Phase == models.PhasePlayoff:
			utils.WriteDetail(w, app.MsgPlayoffsGenerated, http.StatusBadRequest)
			return
		case m.Status != models.MatchCompleted:
			utils.WriteDetail(w, app.MsgGroupStageOpen, http.StatusBadRequest)
			return
		}
		group++
	}
	if group == 0 {
		utils.WriteDetail(w, app.MsgGroupStageOpen, http.StatusBadRequest)
		return
	}

	table := calculateStandings(*t)
	round := lastRound(t.Matches) + 1
	number := len(t.Matches)

	var pairs [][2]string
	switch {
	case len(table) >= 4:
		pairs = [][2]string{
			{table[0].Participant.ID, table[3].Participant.ID},
			{table[1].Participant.ID, table[2].Participant.ID},
		}
	default:
		pairs = [][2]string{{table[0].Participant.ID, table[1].Participant.ID}}
	}

	var playoff []models.Match
	for i, pair := range pairs {
		number++
		playoff = append(playoff, s.newMatchLocked(pair[0], pair[1], round, number, i+1, models.PhasePlayoff))
	}
	t.Matches = append(t.Matches, playoff...)

	_, _ = utils.WriteJSON(w, models.PlayoffsResponse{
		Message:        "Playoff bracket generated",
		PlayoffMatches: playoff,
	}, http.StatusOK)
}

// calculateStandings ranks participants on completed group matches by
// points, then score difference, then scores for.
func calculateStandings(t models.Tournament) []models.Standing {
	rows := make(map[string]*models.Standing, len(t.Participants))
	table := make([]*models.Standing, 0, len(t.Participants))
	for _, p := range t.Participants {
		row := &models.Standing{Participant: p}
		rows[p.ID] = row
		table = append(table, row)
	}

	for _, m := range t.Matches {
		if m.Phase == models.PhasePlayoff || m.Status != models.MatchCompleted ||
			m.Participant1ID == nil || m.Participant2ID == nil ||
			m.Participant1Score == nil || m.Participant2Score == nil {
			continue
		}
		a, b := rows[*m.Participant1ID], rows[*m.Participant2ID]
		if a == nil || b == nil {
			continue
		}
		sa, sb := *m.Participant1Score, *m.Participant2Score
		a.Played++
		b.Played++
		a.ScoreFor, a.ScoreAgainst = a.ScoreFor+sa, a.ScoreAgainst+sb
		b.ScoreFor, b.ScoreAgainst = b.ScoreFor+sb, b.ScoreAgainst+sa

		switch {
		case sa > sb:
			a.Wins++
			b.Losses++
			a.Points += pointsWin
		case sb > sa:
			b.Wins++
			a.Losses++
			b.Points += pointsWin
		default:
			a.Draws++
			b.Draws++
			a.Points += pointsDraw
			b.Points += pointsDraw
		}
	}

	sort.SliceStable(table, func(i, j int) bool {
		x, y := table[i], table[j]
		if x.Points != y.Points {
			return x.Points > y.Points
		}
		if x.Difference() != y.Difference() {
			return x.Difference() > y.Difference()
		}
		return x.ScoreFor > y.ScoreFor
	})

	out := make([]models.Standing, len(table))
	for i, row := range table {
		out[i] = *row
	}
	return out
}

func lastRound(matches []models.Match) int {
	last := 0
	for _, m := range matches {
		if r := m.Round(); r > last {
			last = r
		}
	}
	return last
}
