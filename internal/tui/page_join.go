// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/match-point/models"
)

var errEmptyInviteCode = errors.New("invite code is required")

// joinCodePage asks for an invite code and opens its join page.
type joinCodePage struct {
	base
	form form
}

func newJoinCodePage(b base) Page {
	return &joinCodePage{base: b, form: newForm(field{label: "Invite code", placeholder: "ABC123", limit: 64})}
}

func (p *joinCodePage) ID() string { return "join-code" }

func (p *joinCodePage) Init() tea.Cmd { return textinput.Blink }

func (p *joinCodePage) Update(msg tea.Msg) (Page, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		return p, back
	}

	cmd, submit := p.form.handleKey(msg)
	if !submit {
		return p, cmd
	}
	code := p.form.value(0)
	if code == "" {
		p.form.err = errEmptyInviteCode.Error()
		return p, nil
	}
	return p, navigate(joinPath(code))
}

func (p *joinCodePage) View(int, int) string {
	return renderPage("JOIN TOURNAMENT", p.form.view("Find"), "enter: find │ esc: back")
}

// joinPage previews the tournament behind an invite code and joins it.
type joinPage struct {
	base
	code       string
	loader     loader
	tournament models.Tournament
	joining    bool
	err        string
}

func newJoinPage(b base) Page {
	return &joinPage{base: b, code: b.req.Param("code"), loader: newLoader()}
}

func (p *joinPage) ID() string { return "join" }

func (p *joinPage) Init() tea.Cmd {
	return tea.Batch(p.loader.start(), p.fetch())
}

func (p *joinPage) fetch() tea.Cmd {
	ctx, svc, code := p.env.ctx, p.env.tournaments, p.code
	return load(p.gen(), func() (models.Tournament, error) {
		return svc.GetByInviteCode(ctx, code)
	})
}

func (p *joinPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg[models.Tournament]:
		p.loader.done(msg.err)
		p.tournament = msg.value
		return p, nil

	case doneMsg:
		p.joining = false
		if msg.err != nil {
			p.err = errorText(msg.err)
			return p, nil
		}
		return p, tea.Batch(replace(msg.next), setStatus("Joined "+p.tournament.Name))

	case spinner.TickMsg:
		return p, p.loader.update(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return p, back
		case p.loader.loading:
			return p, nil
		case key.Matches(msg, keys.refresh):
			return p, tea.Batch(p.loader.start(), p.fetch())
		case key.Matches(msg, keys.enter) && p.loader.err == nil && !p.joining:
			p.joining = true
			p.err = ""
			return p, p.join()
		}
	}
	return p, nil
}

func (p *joinPage) join() tea.Cmd {
	ctx, svc, id, gen := p.env.ctx, p.env.tournaments, p.tournament.ID, p.gen()
	return func() tea.Msg {
		_, err := svc.Join(ctx, id)
		return doneMsg{gen: gen, action: "join", err: err, next: tournamentPath(id)}
	}
}

func (p *joinPage) View(int, int) string {
	if placeholder, ok := p.loader.view("invitation"); !ok {
		return renderPage("JOIN TOURNAMENT", placeholder, "r: retry │ esc: back")
	}

	t := p.tournament
	lines := []string{
		t.Name,
		fmt.Sprintf("Format:  %s", formatLabel(t.Format)),
		fmt.Sprintf("Type:    %s", t.Type),
		fmt.Sprintf("Dates:   %s → %s", dateOrDash(t.StartDate), dateOrDash(t.EndDate)),
		fmt.Sprintf("Players: %d", len(t.Participants)),
	}
	if t.OwnerEmail != "" {
		lines = append(lines, "Owner:   "+t.OwnerEmail)
	}
	if p.joining {
		lines = append(lines, "", "[Joining...]")
	} else {
		lines = append(lines, "", "[Join]")
	}
	if p.err != "" {
		lines = append(lines, "", errorStyle.Render("Error: "+p.err))
	}
	return renderPage("JOIN TOURNAMENT", joinLines(lines...), "enter: join │ r: refresh │ esc: back")
}
