// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import tea "github.com/charmbracelet/bubbletea"

// StatusMsg carries a one-line notice for the footer.
type StatusMsg string

func StatusCmd(s string) tea.Cmd {
	return func() tea.Msg { return StatusMsg(s) }
}
