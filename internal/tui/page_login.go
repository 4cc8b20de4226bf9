// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/match-point/internal/validators"
)

const (
	loginEmail = iota
	loginPassword
)

type loginPage struct {
	base
	form form
}

func newLoginPage(b base) Page {
	return &loginPage{
		base: b,
		form: newForm(
			field{label: "Email", placeholder: "you@example.com"},
			field{label: "Password", placeholder: "password", password: true},
		),
	}
}

func (p *loginPage) ID() string { return "login" }

func (p *loginPage) Init() tea.Cmd { return textinput.Blink }

func (p *loginPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		p.form.submitting = false
		if msg.err != nil {
			p.form.err = errorText(msg.err)
			return p, nil
		}
		return p, replace(msg.next)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return p, back
		case msg.String() == "ctrl+r":
			return p, replace(PathRegister)
		}
	}

	cmd, submit := p.form.handleKey(msg)
	if !submit || p.form.submitting {
		return p, cmd
	}

	creds := validators.Credentials{Email: p.form.value(loginEmail), Password: p.form.raw(loginPassword)}
	if err := p.env.validator.Validate(p.env.ctx, creds); err != nil {
		p.form.err = err.Error()
		return p, nil
	}

	p.form.err = ""
	p.form.submitting = true
	return p, p.submit(creds)
}

// submit logs in and resolves where to go next: the remembered target, or
// home.
func (p *loginPage) submit(creds validators.Credentials) tea.Cmd {
	ctx, sess, gen := p.env.ctx, p.env.session, p.gen()

	return func() tea.Msg {
		if err := sess.Login(ctx, creds.Email, creds.Password); err != nil {
			return doneMsg{gen: gen, action: "login", err: err}
		}
		next := PathHome
		if target, ok := sess.ConsumeRedirectTarget(ctx); ok {
			next = target
		}
		return doneMsg{gen: gen, action: "login", next: next}
	}
}

func (p *loginPage) View(int, int) string {
	return renderPage("LOG IN", p.form.view("Log in"), "enter: submit │ tab: next field │ ctrl+r: register │ esc: back")
}
