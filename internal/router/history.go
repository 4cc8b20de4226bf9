// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

// History is an in-memory stack of visited paths with a cursor, the terminal
// counterpart of a browser's session history. It is not safe for concurrent
// use; [Router] guards it.
type History struct {
	entries []string
	index   int
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{index: -1}
}

// Push records path as the new current entry and drops every forward entry.
func (h *History) Push(path string) {
	h.entries = append(h.entries[:h.index+1], path)
	h.index = len(h.entries) - 1
}

// Replace overwrites the current entry, or pushes when history is empty.
func (h *History) Replace(path string) {
	if h.index < 0 {
		h.Push(path)
		return
	}
	h.entries[h.index] = path
}

// Back moves the cursor one entry back and returns that entry.
func (h *History) Back() (string, bool) {
	if h.index <= 0 {
		return "", false
	}
	h.index--
	return h.entries[h.index], true
}

// Forward moves the cursor one entry forward and returns that entry.
func (h *History) Forward() (string, bool) {
	if h.index >= len(h.entries)-1 {
		return "", false
	}
	h.index++
	return h.entries[h.index], true
}

// Location returns the current entry, or "" when history is empty.
func (h *History) Location() string {
	if h.index < 0 {
		return ""
	}
	return h.entries[h.index]
}

func (h *History) CanGoBack() bool {
	return h.index > 0
}

func (h *History) CanGoForward() bool {
	return h.index < len(h.entries)-1
}

// Len returns the number of entries, forward ones included.
func (h *History) Len() int {
	return len(h.entries)
}
