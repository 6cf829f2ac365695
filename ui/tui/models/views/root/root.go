// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/tabnav/internal/nav"
	"github.com/toeirei/tabnav/ui/tui/models/components/header"
	"github.com/toeirei/tabnav/ui/tui/models/components/layout"
	"github.com/toeirei/tabnav/ui/tui/models/components/router"
	"github.com/toeirei/tabnav/ui/tui/models/components/sheet"
	"github.com/toeirei/tabnav/ui/tui/models/components/tabbar"
	windowtitle "github.com/toeirei/tabnav/ui/tui/models/helpers/title"
	"github.com/toeirei/tabnav/ui/tui/models/views/bottomsheet"
	"github.com/toeirei/tabnav/ui/tui/models/views/footer"
	"github.com/toeirei/tabnav/ui/tui/models/views/screen"
	"github.com/toeirei/tabnav/ui/tui/models/views/tabs"
	"github.com/toeirei/tabnav/ui/tui/util"
)

type Model struct {
	state        *nav.AppState
	keyMap       KeyMap
	layout       *layout.Model
	injector     *sheet.Injector
	footer       *util.Model
	titleHandler *windowtitle.TitleHandler
}

func newScreen(s nav.Screen, rc router.Controll) util.Model {
	return screen.New(s, rc)
}

func newSheet(s nav.Screen) util.Model {
	return bottomsheet.New(s)
}

// New builds the UI tree around state. title is the fixed part of the
// window title.
func New(state *nav.AppState, title string) *Model {
	keyMap := BaseKeyMap()
	_tabbar := tabbar.New(state)
	_injector := sheet.NewInjector(state, util.ModelPointer(tabs.New(state, newScreen)), newSheet)
	_footer := footer.New(util.MergeKeyMaps(_tabbar.KeyMap, keyMap))

	// create model pointers for multiple references
	_footer_ptr := util.ModelPointer(_footer)

	return &Model{
		state:  state,
		keyMap: keyMap,
		layout: layout.New(
			layout.WithOrientation(layout.Vertical),
			layout.WithFocus(1),
			layout.WithItem(util.ModelPointer(header.New(state)), header.SizeConfig),
			layout.WithItem(util.ModelPointer(_injector), layout.VariableSize(1)),
			layout.WithItem(util.ModelPointer(_tabbar), tabbar.SizeConfig),
			layout.WithItem(_footer_ptr, footer.SizeConfig),
		),
		injector:     _injector,
		footer:       _footer_ptr,
		titleHandler: windowtitle.NewHandler(title, " | "),
	}
}

func (m Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.layout.Init()
	focusCmd := util.FocusCmd(m.layout)

	return tea.Sequence(titleCmd, initCmd, focusCmd, m.syncTitle())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keyMap.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Help):
			util.BorrowModelFunc(m.footer, func(_footer *footer.Model) {
				_footer.ToggleExpanded()
			})
			// the layout picks up the new footer height on the next update
		}
	}

	cmd := m.layout.Update(msg)
	return m, tea.Batch(cmd, m.syncTitle())
}

func (m *Model) syncTitle() tea.Cmd {
	d := m.state.Displayed()
	suffix := fmt.Sprintf("%s / %s", d.Tab.Key(), d.Screen.Key())
	if d.Sheet != nil {
		suffix += " / " + d.Sheet.Key()
	}
	return m.titleHandler.Sync(suffix)
}

// Title returns the current window title.
func (m Model) Title() string {
	return m.titleHandler.Title()
}

// SheetVisible reports whether the bottom sheet layer is drawn.
func (m Model) SheetVisible() bool {
	return m.injector.Visible()
}

func (m Model) View() string {
	return m.layout.View()
}

// Model implements tea.Model
var _ tea.Model = Model{}
