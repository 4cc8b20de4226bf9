// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/match-point/internal/validators"
	"github.com/MKhiriev/match-point/models"
)

const (
	resultScore1 = iota
	resultScore2
)

var errMatchNotInTournament = errors.New("match not found in this tournament")

// resultPage records the score of one match. The winner is chosen with
// ctrl+w, cycling through none, player one and player two.
type resultPage struct {
	base
	tournamentID string
	matchID      string

	loader     loader
	tournament models.Tournament
	match      models.Match
	winner     int
	form       form
}

func newResultPage(b base) Page {
	return &resultPage{
		base:         b,
		tournamentID: b.req.Param("id"),
		matchID:      b.req.Param("matchId"),
		loader:       newLoader(),
		form: newForm(
			field{label: "Score 1", placeholder: "0", limit: 4},
			field{label: "Score 2", placeholder: "0", limit: 4},
		),
	}
}

func (p *resultPage) ID() string { return "record-result" }

func (p *resultPage) Init() tea.Cmd {
	ctx, svc, id := p.env.ctx, p.env.tournaments, p.tournamentID
	return tea.Batch(p.loader.start(), load(p.gen(), func() (models.Tournament, error) {
		return svc.Get(ctx, id)
	}))
}

func (p *resultPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg[models.Tournament]:
		err := msg.err
		if err == nil {
			var ok bool
			if p.match, ok = msg.value.Match(p.matchID); !ok {
				err = errMatchNotInTournament
			}
			p.tournament = msg.value
		}
		p.loader.done(err)
		if err == nil {
			p.fill()
		}
		return p, textinput.Blink

	case doneMsg:
		p.form.submitting = false
		if msg.err != nil {
			p.form.err = errorText(msg.err)
			return p, nil
		}
		return p, tea.Batch(back, setStatus("Result saved"))

	case spinner.TickMsg:
		return p, p.loader.update(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return p, back
		case p.loader.loading || p.loader.err != nil:
			return p, nil
		case msg.String() == "ctrl+w":
			p.winner = (p.winner + 1) % 3
			return p, nil
		}
	}

	cmd, submit := p.form.handleKey(msg)
	if !submit || p.form.submitting {
		return p, cmd
	}

	result, err := p.result()
	if err == nil {
		err = p.env.validator.Validate(p.env.ctx, validators.MatchResultInput{Match: p.match, Result: result})
	}
	if err != nil {
		p.form.err = err.Error()
		return p, nil
	}

	p.form.err = ""
	p.form.submitting = true

	ctx, svc, id, match, gen := p.env.ctx, p.env.tournaments, p.tournamentID, p.match, p.gen()
	return p, func() tea.Msg {
		_, err := svc.RecordResult(ctx, id, match, result)
		return doneMsg{gen: gen, action: "record-result", err: err}
	}
}

// fill shows the recorded result, if any.
func (p *resultPage) fill() {
	if p.match.Participant1Score != nil {
		p.form.set(resultScore1, strconv.Itoa(*p.match.Participant1Score))
	}
	if p.match.Participant2Score != nil {
		p.form.set(resultScore2, strconv.Itoa(*p.match.Participant2Score))
	}
	switch {
	case p.match.WinnerID == nil || *p.match.WinnerID == "":
	case p.match.Participant1ID != nil && *p.match.WinnerID == *p.match.Participant1ID:
		p.winner = 1
	case p.match.Participant2ID != nil && *p.match.WinnerID == *p.match.Participant2ID:
		p.winner = 2
	}
}

func (p *resultPage) result() (models.MatchResult, error) {
	s1, err := strconv.Atoi(p.form.value(resultScore1))
	if err != nil {
		return models.MatchResult{}, errors.New("score 1 must be a number")
	}
	s2, err := strconv.Atoi(p.form.value(resultScore2))
	if err != nil {
		return models.MatchResult{}, errors.New("score 2 must be a number")
	}

	r := models.MatchResult{Participant1Score: s1, Participant2Score: s2}
	if id := p.winnerID(); id != nil {
		r.WinnerID = *id
	}
	return r, nil
}

func (p *resultPage) winnerID() *string {
	switch p.winner {
	case 1:
		return p.match.Participant1ID
	case 2:
		return p.match.Participant2ID
	default:
		return nil
	}
}

func (p *resultPage) View(int, int) string {
	if placeholder, ok := p.loader.view("match"); !ok {
		return renderPage("RECORD RESULT", placeholder, "esc: back")
	}

	winner := "derive from scores"
	if id := p.winnerID(); id != nil {
		winner = p.tournament.ParticipantName(id)
	}

	body := joinLines(
		fmt.Sprintf("%s vs %s", p.tournament.ParticipantName(p.match.Participant1ID), p.tournament.ParticipantName(p.match.Participant2ID)),
		fmt.Sprintf("Round %d · %s", p.match.Round(), p.match.Status),
		"",
		fmt.Sprintf("Winner: %s   (ctrl+w to change)", selectedStyle.Render(winner)),
		"",
		p.form.view("Save result"),
	)
	return renderPage("RECORD RESULT", body, "enter: submit │ tab: next field │ esc: back")
}
