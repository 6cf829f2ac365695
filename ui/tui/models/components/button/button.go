// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package button renders a focusable push button.
package button

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tabnav/ui/tui/models/helpers/theme"
)

type Button struct {
	Label string

	BlurredStyle lipgloss.Style
	FocusedStyle lipgloss.Style

	focused bool
}

func New(label string) *Button {
	return &Button{
		Label: label,
		BlurredStyle: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.ColorMuted),
		FocusedStyle: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.ColorAccent).
			Bold(true),
	}
}

func (b *Button) Focus()        { b.focused = true }
func (b *Button) Blur()         { b.focused = false }
func (b *Button) Focused() bool { return b.focused }

func (b *Button) View(width int) string {
	style := b.BlurredStyle
	if b.focused {
		style = b.FocusedStyle
	}
	if width > 2 {
		style = style.MaxWidth(width - 2)
	}
	return style.Render(b.Label)
}
