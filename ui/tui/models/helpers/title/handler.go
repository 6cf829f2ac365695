// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package windowtitle keeps the terminal window title in sync with the
// displayed screen.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

func NewHandler(base string, delimiter string) *TitleHandler {
	return &TitleHandler{
		Base:      base,
		Delimiter: delimiter,
	}
}

type TitleHandler struct {
	Base      string
	Delimiter string
	current   string
}

// Title returns the full title for the current suffix.
func (t TitleHandler) Title() string {
	if t.current != "" {
		return t.Base + t.Delimiter + t.current
	}
	return t.Base
}

func (t TitleHandler) Init() tea.Cmd {
	return tea.SetWindowTitle(t.Title())
}

// Sync sets suffix and returns a command only when the title changed.
func (t *TitleHandler) Sync(suffix string) tea.Cmd {
	if t.current == suffix {
		return nil
	}
	t.current = suffix
	return tea.SetWindowTitle(t.Title())
}
