// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/match-point/models"
)

const (
	tournamentName = iota
	tournamentStart
	tournamentEnd
)

var (
	formatChoices = []models.TournamentFormat{models.FormatRoundRobin, models.FormatElimination}
	typeChoices   = []models.TournamentType{models.TypeSingle, models.TypeDouble}
)

// tournamentFormPage creates a tournament, or edits one when id is set.
// Format and type are picked with ctrl+f and ctrl+t.
type tournamentFormPage struct {
	base
	id     string
	loader loader
	form   form
	format int
	kind   int
}

func newCreateTournamentPage(b base) Page {
	l := newLoader()
	l.loading = false
	return &tournamentFormPage{base: b, loader: l, form: newTournamentForm()}
}

func newEditTournamentPage(b base) Page {
	return &tournamentFormPage{base: b, id: b.req.Param("id"), loader: newLoader(), form: newTournamentForm()}
}

func newTournamentForm() form {
	return newForm(
		field{label: "Name", placeholder: "Spring open"},
		field{label: "Start date", placeholder: dateLayout, limit: len(dateLayout)},
		field{label: "End date", placeholder: dateLayout, limit: len(dateLayout)},
	)
}

func (p *tournamentFormPage) ID() string {
	if p.id != "" {
		return "edit-tournament"
	}
	return "new-tournament"
}

func (p *tournamentFormPage) Init() tea.Cmd {
	if p.id == "" {
		return textinput.Blink
	}
	ctx, svc, id := p.env.ctx, p.env.tournaments, p.id
	return tea.Batch(p.loader.start(), load(p.gen(), func() (models.Tournament, error) {
		return svc.Get(ctx, id)
	}))
}

func (p *tournamentFormPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg[models.Tournament]:
		p.loader.done(msg.err)
		if msg.err == nil {
			p.fill(msg.value)
		}
		return p, textinput.Blink

	case doneMsg:
		p.form.submitting = false
		if msg.err != nil {
			p.form.err = errorText(msg.err)
			return p, nil
		}
		if p.id != "" {
			return p, tea.Batch(back, setStatus("Tournament saved"))
		}
		return p, tea.Batch(replace(msg.next), setStatus("Tournament created"))

	case spinner.TickMsg:
		return p, p.loader.update(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return p, back
		case p.loader.loading || p.loader.err != nil:
			return p, nil
		case msg.String() == "ctrl+f":
			p.format = (p.format + 1) % len(formatChoices)
			return p, nil
		case msg.String() == "ctrl+t":
			p.kind = (p.kind + 1) % len(typeChoices)
			return p, nil
		}
	}

	cmd, submit := p.form.handleKey(msg)
	if !submit || p.form.submitting {
		return p, cmd
	}

	in, err := p.input()
	if err == nil {
		err = p.env.validator.Validate(p.env.ctx, in)
	}
	if err != nil {
		p.form.err = err.Error()
		return p, nil
	}

	p.form.err = ""
	p.form.submitting = true
	return p, p.submit(in)
}

func (p *tournamentFormPage) fill(t models.Tournament) {
	p.form.set(tournamentName, t.Name)
	if t.StartDate != nil {
		p.form.set(tournamentStart, t.StartDate.Format(dateLayout))
	}
	if t.EndDate != nil {
		p.form.set(tournamentEnd, t.EndDate.Format(dateLayout))
	}
	for i, f := range formatChoices {
		if f == t.Format {
			p.format = i
		}
	}
	for i, k := range typeChoices {
		if k == t.Type {
			p.kind = i
		}
	}
}

func (p *tournamentFormPage) input() (models.TournamentCreate, error) {
	start, err := parseDate(p.form.value(tournamentStart))
	if err != nil {
		return models.TournamentCreate{}, fmt.Errorf("start date must look like %s", dateLayout)
	}
	end, err := parseDate(p.form.value(tournamentEnd))
	if err != nil {
		return models.TournamentCreate{}, fmt.Errorf("end date must look like %s", dateLayout)
	}
	return models.TournamentCreate{
		Name:      p.form.value(tournamentName),
		Format:    formatChoices[p.format],
		Type:      typeChoices[p.kind],
		StartDate: start,
		EndDate:   end,
	}, nil
}

func (p *tournamentFormPage) submit(in models.TournamentCreate) tea.Cmd {
	ctx, svc, id, gen := p.env.ctx, p.env.tournaments, p.id, p.gen()

	return func() tea.Msg {
		var (
			t   models.Tournament
			err error
		)
		if id == "" {
			t, err = svc.Create(ctx, in)
		} else {
			t, err = svc.Update(ctx, id, in)
		}
		if err != nil {
			return doneMsg{gen: gen, action: "save", err: err}
		}
		return doneMsg{gen: gen, action: "save", next: tournamentPath(t.ID)}
	}
}

func (p *tournamentFormPage) View(int, int) string {
	title, label := "NEW TOURNAMENT", "Create"
	if p.id != "" {
		title, label = "EDIT TOURNAMENT", "Save"
	}
	if placeholder, ok := p.loader.view("tournament"); !ok {
		return renderPage(title, placeholder, "esc: back")
	}

	body := joinLines(
		fmt.Sprintf("Format: %s   (ctrl+f to change)", selectedStyle.Render(formatLabel(formatChoices[p.format]))),
		fmt.Sprintf("Type:   %s   (ctrl+t to change)", selectedStyle.Render(string(typeChoices[p.kind]))),
		"",
		p.form.view(label),
	)
	return renderPage(title, body, "enter: submit │ tab: next field │ esc: back")
}
