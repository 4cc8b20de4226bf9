// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/match-point/internal/validators"
	"github.com/MKhiriev/match-point/models"
)

const (
	registerName = iota
	registerEmail
	registerPassword
	registerConfirm
)

type registerPage struct {
	base
	form form
}

func newRegisterPage(b base) Page {
	return &registerPage{
		base: b,
		form: newForm(
			field{label: "Name", placeholder: "display name"},
			field{label: "Email", placeholder: "you@example.com"},
			field{label: "Password", password: true},
			field{label: "Repeat password", password: true},
		),
	}
}

func (p *registerPage) ID() string { return "register" }

func (p *registerPage) Init() tea.Cmd { return textinput.Blink }

func (p *registerPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		p.form.submitting = false
		if msg.err != nil {
			p.form.err = errorText(msg.err)
			return p, nil
		}
		return p, tea.Batch(replace(msg.next), setStatus("Welcome!"))

	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) {
			return p, back
		}
	}

	cmd, submit := p.form.handleKey(msg)
	if !submit || p.form.submitting {
		return p, cmd
	}

	user := models.UserCreate{
		Name:     p.form.value(registerName),
		Email:    p.form.value(registerEmail),
		Password: p.form.raw(registerPassword),
	}
	err := p.env.validator.Validate(p.env.ctx, user, validators.FieldName, validators.FieldEmail, validators.FieldPassword)
	if err != nil {
		p.form.err = err.Error()
		return p, nil
	}
	if user.Password != p.form.raw(registerConfirm) {
		p.form.err = "passwords do not match"
		return p, nil
	}

	p.form.err = ""
	p.form.submitting = true
	return p, p.submit(user)
}

func (p *registerPage) submit(user models.UserCreate) tea.Cmd {
	ctx, sess, gen := p.env.ctx, p.env.session, p.gen()

	return func() tea.Msg {
		if err := sess.Register(ctx, user); err != nil {
			return doneMsg{gen: gen, action: "register", err: err}
		}
		next := PathHome
		if target, ok := sess.ConsumeRedirectTarget(ctx); ok {
			next = target
		}
		return doneMsg{gen: gen, action: "register", next: next}
	}
}

func (p *registerPage) View(int, int) string {
	return renderPage("REGISTER", p.form.view("Create account"), "enter: submit │ tab: next field │ esc: back")
}
