// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import tea "github.com/charmbracelet/bubbletea"

// Model is the component contract used inside the tabnav TUI. Unlike
// tea.Model, Update mutates in place and only returns a command.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	Focusable
}

// ModelPointer boxes v so several parents can share the same component.
func ModelPointer[T any, PT interface {
	*T
	Model
}](v PT) *Model {
	m := Model(v)
	return &m
}

// BorrowModelFunc calls fn with the concrete component behind m.
// It panics when m does not hold a PT.
func BorrowModelFunc[T any, PT interface {
	*T
	Model
}](m *Model, fn func(PT)) {
	t := (*m).(PT)
	fn(t)
	*m = Model(t)
}
