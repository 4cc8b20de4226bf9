// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import tea "github.com/charmbracelet/bubbletea"

// generational messages belong to one navigation. The root model drops them
// once the user has navigated elsewhere.
type generational interface {
	generation() uint64
}

type navigateMsg struct {
	path    string
	replace bool
}

type backMsg struct{}

type logoutMsg struct{}

type sessionExpiredMsg struct {
	err error
}

type statusMsg struct {
	text string
}

type clearStatusMsg struct {
	seq int
}

// loadedMsg carries the result of a fetch started by a page.
type loadedMsg[T any] struct {
	gen   uint64
	value T
	err   error
}

func (m loadedMsg[T]) generation() uint64 { return m.gen }

// doneMsg is the outcome of a page action such as a form submit.
type doneMsg struct {
	gen    uint64
	action string
	err    error
	// next is the path to open on success, "" to stay.
	next string
}

func (m doneMsg) generation() uint64 { return m.gen }

func navigate(path string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{path: path} }
}

func replace(path string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{path: path, replace: true} }
}

func back() tea.Msg {
	return backMsg{}
}

func setStatus(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

func load[T any](gen uint64, fetch func() (T, error)) tea.Cmd {
	return func() tea.Msg {
		v, err := fetch()
		return loadedMsg[T]{gen: gen, value: v, err: err}
	}
}
