// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/match-point/internal/validators"
	"github.com/MKhiriev/match-point/models"
)

const (
	participantName = iota
	participantEmail
	participantRanking
)

type participantPage struct {
	base
	tournamentID string
	form         form
}

func newParticipantPage(b base) Page {
	return &participantPage{
		base:         b,
		tournamentID: b.req.Param("id"),
		form: newForm(
			field{label: "Name", placeholder: "Jane Doe"},
			field{label: "Email", placeholder: "jane@example.com"},
			field{label: "Ranking", placeholder: "optional", limit: 6},
		),
	}
}

func (p *participantPage) ID() string { return "new-participant" }

func (p *participantPage) Init() tea.Cmd { return textinput.Blink }

func (p *participantPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		p.form.submitting = false
		if msg.err != nil {
			p.form.err = errorText(msg.err)
			return p, nil
		}
		return p, tea.Batch(back, setStatus("Participant added"))

	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) {
			return p, back
		}
	}

	cmd, submit := p.form.handleKey(msg)
	if !submit || p.form.submitting {
		return p, cmd
	}

	in := models.ParticipantCreate{
		Name:  p.form.value(participantName),
		Email: p.form.value(participantEmail),
	}
	if raw := p.form.value(participantRanking); raw != "" {
		rank, err := strconv.Atoi(raw)
		if err != nil {
			p.form.err = validators.ErrInvalidRanking.Error()
			return p, nil
		}
		in.Ranking = &rank
	}
	if err := p.env.validator.Validate(p.env.ctx, in); err != nil {
		p.form.err = err.Error()
		return p, nil
	}

	p.form.err = ""
	p.form.submitting = true

	ctx, svc, id, gen := p.env.ctx, p.env.tournaments, p.tournamentID, p.gen()
	return p, func() tea.Msg {
		_, err := svc.AddParticipant(ctx, id, in)
		return doneMsg{gen: gen, action: "add-participant", err: err}
	}
}

func (p *participantPage) View(int, int) string {
	return renderPage("ADD PARTICIPANT", p.form.view("Add"), "enter: submit │ tab: next field │ esc: back")
}
