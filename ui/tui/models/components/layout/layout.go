// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package layout arranges child components along one axis and hands each of
// them a tea.WindowSizeMsg for its share of the space.
package layout

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tabnav/ui/tui/util"
	"github.com/toeirei/tabnav/util/slicest"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

type Model struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int

	items         []Item
	size          util.Size
	focussedIndex int
}

type Item struct {
	Model      *util.Model
	SizeConfig SizeConfig
	size       int
	oldSize    int
}

func (l Model) Init() tea.Cmd {
	return tea.Batch(slicest.Map(l.items, func(item Item) tea.Cmd {
		return (*item.Model).Init()
	})...)
}

// Update forwards msg to every item. Components ignore keys while blurred.
func (l *Model) Update(msg tea.Msg) tea.Cmd {
	if l.size.Update(msg) {
		l.calculateItemSizes()
		return tea.Batch(l.resizeItems(true)...)
	}

	cmds := slicest.Map(l.items, func(item Item) tea.Cmd {
		return (*item.Model).Update(msg)
	})
	// items may change their preferred size after an update
	l.calculateItemSizes()
	cmds = append(cmds, l.resizeItems(false)...)
	return tea.Batch(cmds...)
}

func (l *Model) resizeItems(force bool) []tea.Cmd {
	var cmds []tea.Cmd
	for _, item := range l.items {
		if !force && item.size == item.oldSize {
			continue
		}
		msg := tea.WindowSizeMsg{Width: l.size.Width, Height: l.size.Height}
		if l.Orientation == Horizontal {
			msg.Width = item.size
		} else {
			msg.Height = item.size
		}
		cmds = append(cmds, (*item.Model).Update(msg))
	}
	return cmds
}

func (l Model) View() string {
	var joiner func(pos lipgloss.Position, strs ...string) string
	var styler func(size int, margin int) lipgloss.Style
	switch l.Orientation {
	case Vertical:
		joiner = lipgloss.JoinVertical
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.NewStyle().
				Width(l.size.Width).
				Height(size).
				MaxWidth(l.size.Width).
				MaxHeight(size + margin).
				MarginTop(margin)
		}
	case Horizontal:
		joiner = lipgloss.JoinHorizontal
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.NewStyle().
				Width(size).
				Height(l.size.Height).
				MaxWidth(size + margin).
				MaxHeight(l.size.Height).
				MarginLeft(margin)
		}
	}

	views := make([]string, 0, len(l.items))
	for i, item := range l.items {
		if item.size == 0 {
			continue
		}
		// no gap before the first item
		margin := l.Gap * min(i, 1)
		views = append(views, styler(item.size, margin).Render((*item.Model).View()))
	}
	return joiner(l.Align, views...)
}

func (l *Model) Focus() (tea.Cmd, help.KeyMap) {
	if len(l.items) == 0 {
		return nil, nil
	}
	return (*l.items[l.focussedIndex].Model).Focus()
}

func (l *Model) Blur() {
	if len(l.items) == 0 {
		return
	}
	(*l.items[l.focussedIndex].Model).Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
