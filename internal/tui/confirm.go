// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import tea "github.com/charmbracelet/bubbletea"

// confirmModel asks a yes/no question before a destructive action.
type confirmModel struct {
	message string
	onYes   tea.Cmd
}

func (m confirmModel) View() string {
	content := m.message + "?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
