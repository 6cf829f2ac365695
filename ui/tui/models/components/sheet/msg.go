// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package sheet

import tea "github.com/charmbracelet/bubbletea"

type showMsg struct {
	Depth int
}

type dismissMsg struct{}

// Show presents the bottom sheet spawned by the screen at depth, replacing a
// visible one.
func Show(depth int) tea.Cmd {
	return func() tea.Msg { return showMsg{Depth: depth} }
}

// Dismiss hides the bottom sheet if one is visible.
func Dismiss() tea.Cmd {
	return func() tea.Msg { return dismissMsg{} }
}
