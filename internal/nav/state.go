// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package nav

import "github.com/toeirei/tabnav/internal/logging"

// AppState is the whole navigation state of a running app. It is created once
// at start and handed to the UI by pointer.
type AppState struct {
	tabs  *TabSet
	sheet *SheetLayer
}

func NewAppState(initial TabID) *AppState {
	return &AppState{
		tabs:  NewTabSet(initial),
		sheet: NewSheetLayer(),
	}
}

func (a *AppState) Tabs() *TabSet {
	return a.tabs
}

func (a *AppState) Sheet() *SheetLayer {
	return a.sheet
}

func (a *AppState) Current() TabID {
	return a.tabs.Current()
}

func (a *AppState) Stack(tab TabID) *Stack {
	return a.tabs.Stack(tab)
}

func (a *AppState) Select(tab TabID) bool {
	changed := a.tabs.Select(tab)
	if changed {
		logging.Debugf("nav: select %s", tab.Key())
	}
	return changed
}

// Push adds a nested screen to the stack owned by tab.
func (a *AppState) Push(tab TabID) (Screen, bool) {
	stack := a.tabs.Stack(tab)
	if stack == nil {
		return Screen{}, false
	}
	screen := stack.Push()
	logging.Debugf("nav: push %s (stack size %d)", screen.Key(), stack.Len())
	return screen, true
}

// Back pops the current tab's stack, as the host back gesture does.
func (a *AppState) Back() (Screen, bool) {
	return a.PopTab(a.tabs.Current())
}

// PopTab removes the top screen of tab's stack. The root screen stays.
func (a *AppState) PopTab(tab TabID) (Screen, bool) {
	stack := a.tabs.Stack(tab)
	if stack == nil {
		return Screen{}, false
	}
	popped, ok := stack.Pop()
	if ok {
		logging.Debugf("nav: back from %s", popped.Key())
	}
	return popped, ok
}

// ShowSheet shows the sheet spawned by the screen at depth.
func (a *AppState) ShowSheet(depth int) Screen {
	screen := SheetScreen(depth)
	a.sheet.Show(screen)
	logging.Debugf("nav: show %s", screen.Key())
	return screen
}

func (a *AppState) DismissSheet() bool {
	dismissed := a.sheet.Dismiss()
	if dismissed {
		logging.Debugf("nav: dismiss sheet")
	}
	return dismissed
}

// Display is what the user currently sees.
type Display struct {
	Tab    TabID
	Screen Screen
	Sheet  *Screen
}

func (a *AppState) Displayed() Display {
	d := Display{
		Tab:    a.tabs.Current(),
		Screen: a.tabs.Stack(a.tabs.Current()).Top(),
	}
	if sheet, ok := a.sheet.Current(); ok {
		d.Sheet = &sheet
	}
	return d
}

// Snapshot is a serializable rendering of AppState.
type Snapshot struct {
	CurrentTab string        `yaml:"current_tab" json:"current_tab"`
	Displayed  string        `yaml:"displayed" json:"displayed"`
	Sheet      string        `yaml:"sheet,omitempty" json:"sheet,omitempty"`
	Tabs       []TabSnapshot `yaml:"tabs" json:"tabs"`
}

type TabSnapshot struct {
	Tab   string           `yaml:"tab" json:"tab"`
	Stack []ScreenSnapshot `yaml:"stack" json:"stack"`
}

type ScreenSnapshot struct {
	Key   string `yaml:"key" json:"key"`
	Kind  string `yaml:"kind" json:"kind"`
	Depth int    `yaml:"depth" json:"depth"`
	Tab   int    `yaml:"tab" json:"tab"`
	Style string `yaml:"style" json:"style"`
}

func snapshotScreen(s Screen) ScreenSnapshot {
	return ScreenSnapshot{
		Key:   s.Key(),
		Kind:  s.Kind.String(),
		Depth: s.Depth,
		Tab:   int(s.TabID),
		Style: s.Style().String(),
	}
}

func (a *AppState) Snapshot() Snapshot {
	d := a.Displayed()
	snap := Snapshot{
		CurrentTab: d.Tab.Key(),
		Displayed:  d.Screen.Key(),
	}
	if d.Sheet != nil {
		snap.Sheet = d.Sheet.Key()
	}
	for _, tab := range Tabs() {
		ts := TabSnapshot{Tab: tab.Key()}
		for _, s := range a.tabs.Stack(tab).Screens() {
			ts.Stack = append(ts.Stack, snapshotScreen(s))
		}
		snap.Tabs = append(snap.Tabs, ts)
	}
	return snap
}
