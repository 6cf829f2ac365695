// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package sheet draws the bottom sheet layer above the tab content.
package sheet

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/tabnav/internal/nav"
	"github.com/toeirei/tabnav/ui/tui/util"
)

const (
	minHeight     int = 3
	heightDivisor int = 5
	heightFactor  int = 2
)

// Factory builds the view model of a sheet screen.
type Factory func(screen nav.Screen) util.Model

type Injector struct {
	child   *util.Model
	state   *nav.AppState
	factory Factory
	sheet   *util.Model
	size    util.Size
	focused bool
}

func NewInjector(state *nav.AppState, child *util.Model, factory Factory) *Injector {
	return &Injector{
		child:   child,
		state:   state,
		factory: factory,
	}
}

func (m Injector) Init() tea.Cmd {
	return (*m.child).Init()
}

func (m *Injector) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		cmd := (*m.child).Update(msg)
		if m.sheet != nil {
			return tea.Batch(cmd, (*m.sheet).Update(m.sheetSize()))
		}
		return cmd
	}

	switch msg := msg.(type) {
	case showMsg:
		return m.show(m.state.ShowSheet(msg.Depth))
	case dismissMsg:
		return m.dismiss()
	case tea.KeyMsg:
		return (*m.activeModel()).Update(msg)
	}

	cmd := (*m.child).Update(msg)
	if m.sheet != nil {
		cmd = tea.Batch(cmd, (*m.sheet).Update(msg))
	}
	return cmd
}

// Visible reports whether a sheet is drawn.
func (m *Injector) Visible() bool {
	return m.sheet != nil
}

func (m *Injector) sheetSize() tea.WindowSizeMsg {
	height := max(minHeight, m.size.Height*heightFactor/heightDivisor)
	return tea.WindowSizeMsg{
		Width:  max(m.size.Width-2, 0),
		Height: max(min(height, m.size.Height)-1, 0),
	}
}

// applyView splices v2 over the bottom lines of v1.
func (m *Injector) applyView(v1, v2 string) string {
	v1Width, v1Height := lipgloss.Size(v1)
	v2 = lipgloss.NewStyle().MaxWidth(v1Width).MaxHeight(v1Height).Render(v2)
	v2Width, v2Height := lipgloss.Size(v2)

	offsetLeft := (v1Width - v2Width) / 2
	offsetTop := v1Height - v2Height

	v1Lines := strings.Split(v1, "\n")
	v2Lines := strings.Split(v2, "\n")

	for i := range v2Lines {
		line := v1Lines[i+offsetTop]
		left := ansi.Truncate(line, offsetLeft, "")
		right := ansi.TruncateLeft(line, offsetLeft+v2Width, "")
		v1Lines[i+offsetTop] = left + v2Lines[i] + right
	}

	return strings.Join(v1Lines, "\n")
}

func (m Injector) View() string {
	childView := (*m.child).View()
	if m.sheet == nil || m.size.Width == 0 || m.size.Height == 0 {
		return childView
	}

	size := m.sheetSize()
	sheetView := lipgloss.
		NewStyle().
		Border(lipgloss.RoundedBorder(), true, true, false, true).
		Width(size.Width).
		Render((*m.sheet).View())

	childView = lipgloss.
		NewStyle().
		Foreground(lipgloss.AdaptiveColor{
			Light: "#DDDADA",
			Dark:  "#3C3C3C",
		}).
		Render(ansi.Strip(childView))

	return m.applyView(childView, sheetView)
}

func (m *Injector) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return (*m.activeModel()).Focus()
}

func (m *Injector) Blur() {
	m.focused = false
	(*m.activeModel()).Blur()
}

// *Injector implements util.Model
var _ util.Model = (*Injector)(nil)

func (m *Injector) show(screen nav.Screen) tea.Cmd {
	// blur whatever had focus, the child or the replaced sheet
	(*m.activeModel()).Blur()
	sheet := m.factory(screen)
	m.sheet = &sheet
	return tea.Batch(
		sheet.Init(),
		sheet.Update(m.sheetSize()),
		m.focusActiveModel(),
	)
}

func (m *Injector) dismiss() tea.Cmd {
	m.state.DismissSheet()
	if m.sheet == nil {
		return nil
	}
	(*m.sheet).Blur()
	m.sheet = nil
	return m.focusActiveModel()
}

func (m *Injector) activeModel() *util.Model {
	if m.sheet != nil {
		return m.sheet
	}
	return m.child
}

func (m *Injector) focusActiveModel() tea.Cmd {
	if !m.focused {
		return nil
	}
	return util.FocusCmd(*m.activeModel())
}
