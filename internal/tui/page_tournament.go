// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/match-point/models"
)

type detailTab int

const (
	tabParticipants detailTab = iota
	tabMatches
	tabStandings
	tabBracket
	tabCount
)

type tabState struct {
	loading bool
	err     error
}

// tournamentPage shows one tournament with its participants, matches,
// standings and bracket or schedule, one tab at a time.
type tournamentPage struct {
	base
	id string

	loader     loader
	tournament models.Tournament

	tab    detailTab
	tabs   [tabCount]tabState
	cursor int

	participants []models.Participant
	matches      []models.Match
	standings    []models.Standing
	view         models.MatchesView

	confirm *confirmModel
	err     string
}

func newTournamentPage(b base) Page {
	return &tournamentPage{base: b, id: b.req.Param("id"), loader: newLoader()}
}

func (p *tournamentPage) ID() string { return "tournament" }

func (p *tournamentPage) Init() tea.Cmd {
	return tea.Batch(p.loader.start(), p.fetchTournament())
}

func (p *tournamentPage) fetchTournament() tea.Cmd {
	ctx, svc, id := p.env.ctx, p.env.tournaments, p.id
	return load(p.gen(), func() (models.Tournament, error) {
		return svc.Get(ctx, id)
	})
}

// fetchTab loads the data of tab.
func (p *tournamentPage) fetchTab(tab detailTab) tea.Cmd {
	ctx, svc, id, gen := p.env.ctx, p.env.tournaments, p.id, p.gen()
	p.tabs[tab] = tabState{loading: true}

	switch tab {
	case tabParticipants:
		return load(gen, func() ([]models.Participant, error) { return svc.ListParticipants(ctx, id) })
	case tabMatches:
		return load(gen, func() ([]models.Match, error) { return svc.ListMatches(ctx, id) })
	case tabStandings:
		return load(gen, func() ([]models.Standing, error) { return svc.Standings(ctx, id) })
	default:
		elimination := p.tournament.Format == models.FormatElimination
		return load(gen, func() (models.MatchesView, error) {
			if elimination {
				return svc.Bracket(ctx, id)
			}
			return svc.Schedule(ctx, id)
		})
	}
}

func (p *tournamentPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg[models.Tournament]:
		p.loader.done(msg.err)
		if msg.err != nil {
			return p, nil
		}
		p.tournament = msg.value
		return p, tea.Batch(p.loader.spinner.Tick, p.fetchTab(p.tab))

	case loadedMsg[[]models.Participant]:
		p.participants = msg.value
		p.tabs[tabParticipants] = tabState{err: msg.err}
		p.clampCursor()
		return p, nil

	case loadedMsg[[]models.Match]:
		p.matches = msg.value
		p.tabs[tabMatches] = tabState{err: msg.err}
		p.clampCursor()
		return p, nil

	case loadedMsg[[]models.Standing]:
		p.standings = msg.value
		p.tabs[tabStandings] = tabState{err: msg.err}
		return p, nil

	case loadedMsg[models.MatchesView]:
		p.view = msg.value
		p.tabs[tabBracket] = tabState{err: msg.err}
		return p, nil

	case doneMsg:
		return p, p.actionDone(msg)

	case tea.KeyMsg:
		if p.confirm != nil {
			return p, p.answer(msg)
		}
		return p, p.handleKey(msg)
	}

	if _, ok := msg.(spinner.TickMsg); ok && (p.loader.loading || p.tabs[p.tab].loading) {
		var cmd tea.Cmd
		p.loader.spinner, cmd = p.loader.spinner.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *tournamentPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.esc) {
		return back
	}
	if p.loader.loading || p.loader.err != nil {
		if key.Matches(msg, keys.refresh) {
			return tea.Batch(p.loader.start(), p.fetchTournament())
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.tab):
		return p.switchTab((p.tab + 1) % tabCount)
	case key.Matches(msg, keys.backtab):
		return p.switchTab((p.tab + tabCount - 1) % tabCount)
	case key.Matches(msg, keys.up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, keys.down):
		p.cursor++
		p.clampCursor()
	case key.Matches(msg, keys.refresh):
		return tea.Batch(p.loader.start(), p.fetchTournament())
	case key.Matches(msg, keys.add):
		return navigate(tournamentPath(p.id, "participants", "new"))
	case key.Matches(msg, keys.edit):
		return navigate(tournamentPath(p.id, "edit"))
	case key.Matches(msg, keys.copy):
		return p.copy(p.tournament.InvitationLink, "Invitation link copied")
	case key.Matches(msg, keys.copyID):
		return p.copy(p.tournament.ID, "Tournament id copied")
	case key.Matches(msg, keys.join):
		return p.run("join", "", func() error {
			_, err := p.env.tournaments.Join(p.env.ctx, p.id)
			return err
		})
	case key.Matches(msg, keys.generate):
		return p.run("generate", "", func() error {
			_, err := p.env.tournaments.GenerateMatches(p.env.ctx, p.id)
			return err
		})
	case key.Matches(msg, keys.playoffs):
		return p.run("playoffs", "", func() error {
			_, err := p.env.tournaments.GeneratePlayoffs(p.env.ctx, p.id)
			return err
		})
	case key.Matches(msg, keys.remove):
		if p.tab != tabParticipants || p.cursor >= len(p.participants) {
			return nil
		}
		participant := p.participants[p.cursor]
		p.confirm = &confirmModel{
			message: fmt.Sprintf("Remove %q", participant.Name),
			onYes: p.run("remove", "", func() error {
				return p.env.tournaments.RemoveParticipant(p.env.ctx, p.id, participant.ID)
			}),
		}
	case key.Matches(msg, keys.delete):
		p.confirm = &confirmModel{
			message: fmt.Sprintf("Delete tournament %q", p.tournament.Name),
			onYes: p.run("delete", PathTournaments, func() error {
				return p.env.tournaments.Delete(p.env.ctx, p.id)
			}),
		}
	case key.Matches(msg, keys.enter):
		if p.tab == tabMatches && p.cursor < len(p.matches) {
			return navigate(tournamentPath(p.id, "matches", p.matches[p.cursor].ID, "result"))
		}
	}
	return nil
}

func (p *tournamentPage) answer(msg tea.KeyMsg) tea.Cmd {
	c := p.confirm
	switch {
	case key.Matches(msg, keys.yes):
		p.confirm = nil
		return c.onYes
	case key.Matches(msg, keys.no):
		p.confirm = nil
	}
	return nil
}

func (p *tournamentPage) switchTab(tab detailTab) tea.Cmd {
	p.tab = tab
	p.cursor = 0
	if p.tabs[tab].loading {
		return nil
	}
	return tea.Batch(p.loader.spinner.Tick, p.fetchTab(tab))
}

// run performs a page action in the background. next is opened on success.
func (p *tournamentPage) run(action, next string, fn func() error) tea.Cmd {
	gen := p.gen()
	return func() tea.Msg {
		return doneMsg{gen: gen, action: action, err: fn(), next: next}
	}
}

func (p *tournamentPage) actionDone(msg doneMsg) tea.Cmd {
	if msg.err != nil {
		p.err = errorText(msg.err)
		return nil
	}
	p.err = ""

	switch msg.action {
	case "delete":
		return tea.Batch(replace(msg.next), setStatus("Tournament deleted"))
	case "generate":
		p.tab, p.cursor = tabMatches, 0
		return tea.Batch(setStatus("Matches generated"), p.fetchTournament())
	case "playoffs":
		p.tab, p.cursor = tabBracket, 0
		return tea.Batch(setStatus("Playoffs generated"), p.fetchTournament())
	case "join":
		return tea.Batch(setStatus("Joined tournament"), p.fetchTournament())
	case "remove":
		return tea.Batch(setStatus("Participant removed"), p.fetchTab(tabParticipants))
	}
	return nil
}

func (p *tournamentPage) copy(text, done string) tea.Cmd {
	if text == "" {
		p.err = "nothing to copy"
		return nil
	}
	if err := p.env.clipboard.WriteAll(text); err != nil {
		p.err = "copy to clipboard: " + err.Error()
		return nil
	}
	return setStatus(done)
}

func (p *tournamentPage) clampCursor() {
	n := 0
	switch p.tab {
	case tabParticipants:
		n = len(p.participants)
	case tabMatches:
		n = len(p.matches)
	}
	if p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *tournamentPage) name(id *string) string {
	if id != nil {
		for _, participant := range p.participants {
			if participant.ID == *id {
				return participant.Name
			}
		}
	}
	return p.tournament.ParticipantName(id)
}

func (p *tournamentPage) View(int, int) string {
	const hotKeys = "tab: next tab │ a: add player │ x: remove │ g: generate │ p: playoffs │ enter: result\n" +
		"J: join │ e: edit │ D: delete │ c: copy invite │ i: copy id │ r: refresh │ esc: back"

	if placeholder, ok := p.loader.view("tournament"); !ok {
		return renderPage("TOURNAMENT", placeholder, "r: retry │ esc: back")
	}

	var b strings.Builder
	t := p.tournament
	b.WriteString(fmt.Sprintf("%s · %s · %s\n", t.Name, formatLabel(t.Format), t.Type))
	b.WriteString(fmt.Sprintf("%s → %s", dateOrDash(t.StartDate), dateOrDash(t.EndDate)))
	if t.InviteCode != "" {
		b.WriteString("   invite: " + t.InviteCode)
	}
	b.WriteString("\n\n")
	b.WriteString(p.tabBar())
	b.WriteString("\n\n")
	b.WriteString(p.tabView())

	if p.err != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + p.err))
	}
	if p.confirm != nil {
		b.WriteString("\n\n")
		b.WriteString(p.confirm.View())
	}

	return renderPage("TOURNAMENT", b.String(), hotKeys)
}

func (p *tournamentPage) tabBar() string {
	labels := []string{"Participants", "Matches", "Standings", "Schedule"}
	if p.tournament.Format == models.FormatElimination {
		labels[tabBracket] = "Bracket"
	}
	out := make([]string, len(labels))
	for i, l := range labels {
		if detailTab(i) == p.tab {
			out[i] = activeTabStyle.Render(l)
		} else {
			out[i] = tabStyle.Render(l)
		}
	}
	return strings.Join(out, "  ")
}

func (p *tournamentPage) tabView() string {
	state := p.tabs[p.tab]
	switch {
	case state.loading:
		return p.loader.spinner.View() + " Loading..."
	case state.err != nil:
		return errorStyle.Render("Error: " + errorText(state.err))
	}

	switch p.tab {
	case tabParticipants:
		return p.participantsView()
	case tabMatches:
		return p.matchesView()
	case tabStandings:
		return standingsView(p.standings)
	default:
		return p.roundsView()
	}
}

func (p *tournamentPage) participantsView() string {
	if len(p.participants) == 0 {
		return "No participants yet. Press a to add one."
	}
	var b strings.Builder
	for i, participant := range p.participants {
		line := fmt.Sprintf("%-24s %-28s rank %s", fitText(participant.Name, 24), fitText(participant.Email, 28), intOrDash(participant.Ranking))
		b.WriteString(p.row(i, line))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *tournamentPage) matchesView() string {
	if len(p.matches) == 0 {
		return "No matches yet. Press g to generate the schedule."
	}
	var b strings.Builder
	for i, m := range p.matches {
		line := fmt.Sprintf("R%-2d %-20s vs %-20s %7s  %s",
			m.Round(), fitText(p.name(m.Participant1ID), 20), fitText(p.name(m.Participant2ID), 20), m.Score(), m.Status)
		b.WriteString(p.row(i, line))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *tournamentPage) row(i int, line string) string {
	if i == p.cursor {
		return selectedStyle.Render("> "+line) + "\n"
	}
	return "  " + line + "\n"
}

func (p *tournamentPage) roundsView() string {
	rounds := p.view.Rounds()
	if len(rounds) == 0 && len(p.view.PlayoffMatches) == 0 {
		return "Nothing scheduled yet."
	}

	label := "Matchday"
	if p.tournament.Format == models.FormatElimination {
		label = "Round"
	}

	var b strings.Builder
	for i, round := range rounds {
		b.WriteString(fmt.Sprintf("%s %d\n", label, i+1))
		for _, m := range round {
			b.WriteString("  " + p.pairing(m) + "\n")
		}
	}
	if len(p.view.PlayoffMatches) > 0 {
		b.WriteString("Playoffs\n")
		for _, m := range p.view.PlayoffMatches {
			b.WriteString("  " + p.pairing(m) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *tournamentPage) pairing(m models.Match) string {
	s := fmt.Sprintf("%s vs %s  %s", p.name(m.Participant1ID), p.name(m.Participant2ID), m.Score())
	if m.WinnerID != nil && *m.WinnerID != "" {
		s += "  winner: " + p.name(m.WinnerID)
	}
	return s
}

func standingsView(standings []models.Standing) string {
	if len(standings) == 0 {
		return "No results yet."
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-3s %-22s %3s %3s %3s %3s %4s %4s %5s %4s\n", "#", "Player", "P", "W", "D", "L", "SF", "SA", "Diff", "Pts"))
	for i, s := range standings {
		b.WriteString(fmt.Sprintf("%-3d %-22s %3d %3d %3d %3d %4d %4d %+5d %4d\n",
			i+1, fitText(s.Participant.Name, 22), s.Played, s.Wins, s.Draws, s.Losses, s.ScoreFor, s.ScoreAgainst, s.Difference(), s.Points))
	}
	return strings.TrimRight(b.String(), "\n")
}
