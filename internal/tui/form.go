// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type field struct {
	label       string
	placeholder string
	password    bool
	limit       int
}

// form is a column of text inputs with tab focus cycling.
type form struct {
	labels     []string
	inputs     []textinput.Model
	focus      int
	submitting bool
	err        string
}

func newForm(fields ...field) form {
	f := form{}
	for _, fd := range fields {
		in := textinput.New()
		in.Placeholder = fd.placeholder
		in.Width = 40
		in.CharLimit = 256
		if fd.limit > 0 {
			in.CharLimit = fd.limit
		}
		if fd.password {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		f.labels = append(f.labels, fd.label)
		f.inputs = append(f.inputs, in)
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// raw returns the input as typed; passwords are not trimmed.
func (f *form) raw(i int) string {
	return f.inputs[i].Value()
}

func (f *form) set(i int, v string) {
	f.inputs[i].SetValue(v)
}

// handleKey moves focus for tab and shift+tab and forwards everything else
// to the focused input. submit is true for enter.
func (f *form) handleKey(msg tea.Msg) (cmd tea.Cmd, submit bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab), keyMsg.String() == "down":
			f.focusNext()
			return nil, false
		case key.Matches(keyMsg, keys.backtab), keyMsg.String() == "up":
			f.focusPrev()
			return nil, false
		case key.Matches(keyMsg, keys.enter):
			return nil, true
		}
	}

	if len(f.inputs) == 0 {
		return nil, false
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd, false
}

func (f *form) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f form) view(submitLabel string) string {
	width := 0
	for _, l := range f.labels {
		if w := lipgloss.Width(l); w > width {
			width = w
		}
	}

	var b strings.Builder
	for i, in := range f.inputs {
		b.WriteString(fmt.Sprintf("%-*s │ [%s]\n", width, f.labels[i], in.View()))
	}

	if f.submitting {
		b.WriteString("\n[" + submitLabel + "...]\n")
	} else {
		b.WriteString("\n[" + submitLabel + "]\n")
	}

	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + f.err))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
