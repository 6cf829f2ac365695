// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/tabnav/internal/nav"
)

// Controll lets a screen drive the router of the tab it lives in.
type Controll struct {
	tab nav.TabID
}

func (c Controll) Tab() nav.TabID {
	return c.tab
}

// Push asks the router to push a screen one level deeper.
func (c Controll) Push() tea.Cmd {
	return func() tea.Msg { return PushMsg{tab: c.tab} }
}

// Pop asks the router to go back count screens. The root stays.
func (c Controll) Pop(count int) tea.Cmd {
	return func() tea.Msg { return PopMsg{tab: c.tab, Count: count} }
}
