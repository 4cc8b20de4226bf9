// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/match-point/models"
)

type tournamentsPage struct {
	base
	loader      loader
	tournaments []models.Tournament
	table       table.Model
}

func newTournamentsPage(b base) Page {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 28},
			{Title: "Format", Width: 12},
			{Title: "Type", Width: 8},
			{Title: "Players", Width: 8},
			{Title: "Start", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	return &tournamentsPage{base: b, loader: newLoader(), table: t}
}

func (p *tournamentsPage) ID() string { return "tournaments" }

func (p *tournamentsPage) Init() tea.Cmd {
	return tea.Batch(p.loader.start(), p.fetch())
}

func (p *tournamentsPage) fetch() tea.Cmd {
	ctx, svc := p.env.ctx, p.env.tournaments
	return load(p.gen(), func() ([]models.Tournament, error) {
		return svc.List(ctx)
	})
}

func (p *tournamentsPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg[[]models.Tournament]:
		p.loader.done(msg.err)
		if msg.err == nil {
			p.tournaments = msg.value
			p.table.SetRows(tournamentRows(msg.value))
		}
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return p, back
		case key.Matches(msg, keys.refresh):
			return p, tea.Batch(p.loader.start(), p.fetch())
		case key.Matches(msg, keys.newItem):
			return p, navigate(PathNewTournament)
		case key.Matches(msg, keys.join):
			return p, navigate(PathJoin)
		case key.Matches(msg, keys.enter):
			if t, ok := p.selected(); ok {
				return p, navigate(tournamentPath(t.ID))
			}
			return p, nil
		}
	}

	if cmd := p.loader.update(msg); cmd != nil {
		return p, cmd
	}
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

func (p *tournamentsPage) selected() (models.Tournament, bool) {
	i := p.table.Cursor()
	if i < 0 || i >= len(p.tournaments) {
		return models.Tournament{}, false
	}
	return p.tournaments[i], true
}

func (p *tournamentsPage) View(int, int) string {
	const hotKeys = "enter: open │ n: new │ J: join by code │ r: refresh │ esc: back"

	if placeholder, ok := p.loader.view("tournaments"); !ok {
		return renderPage("TOURNAMENTS", placeholder, hotKeys)
	}
	if len(p.tournaments) == 0 {
		return renderPage("TOURNAMENTS", "No tournaments yet. Press n to create one.", hotKeys)
	}
	return renderPage("TOURNAMENTS", p.table.View(), hotKeys)
}

func tournamentRows(ts []models.Tournament) []table.Row {
	rows := make([]table.Row, 0, len(ts))
	for _, t := range ts {
		rows = append(rows, table.Row{
			fitText(t.Name, 28),
			formatLabel(t.Format),
			string(t.Type),
			strconv.Itoa(len(t.Participants)),
			dateOrDash(t.StartDate),
		})
	}
	return rows
}

func formatLabel(f models.TournamentFormat) string {
	switch f {
	case models.FormatRoundRobin:
		return "round robin"
	case models.FormatElimination:
		return "elimination"
	default:
		return string(f)
	}
}
