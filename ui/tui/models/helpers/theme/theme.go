// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package theme maps navigation styles onto terminal colors.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tabnav/internal/nav"
)

// Material baseline palette.
var (
	ColorPrimary          = lipgloss.Color("#6200EE")
	ColorOnPrimary        = lipgloss.Color("#FFFFFF")
	ColorSecondary        = lipgloss.Color("#03DAC6")
	ColorOnSecondary      = lipgloss.Color("#000000")
	ColorSecondaryVariant = lipgloss.Color("#018786")
	ColorMuted            = lipgloss.Color("240")
	ColorAccent           = lipgloss.Color("205")
)

// Screen returns the background style of a screen with the given role.
func Screen(style nav.Style) lipgloss.Style {
	switch style {
	case nav.StyleSecondary:
		return lipgloss.NewStyle().Background(ColorSecondary).Foreground(ColorOnSecondary)
	case nav.StyleSheet:
		return lipgloss.NewStyle().Background(ColorSecondaryVariant).Foreground(ColorOnPrimary)
	default:
		return lipgloss.NewStyle().Background(ColorPrimary).Foreground(ColorOnPrimary)
	}
}

// Background returns just the background color of a role.
func Background(style nav.Style) lipgloss.Color {
	switch style {
	case nav.StyleSecondary:
		return ColorSecondary
	case nav.StyleSheet:
		return ColorSecondaryVariant
	default:
		return ColorPrimary
	}
}
