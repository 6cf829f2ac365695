// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package nav

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownTab = errors.New("unknown tab")

// TabID identifies one of the fixed tabs.
type TabID int

const (
	Tab0 TabID = 0
	Tab1 TabID = 1
)

// Tabs returns the fixed tab ids in selector order.
func Tabs() []TabID {
	return []TabID{Tab0, Tab1}
}

func (t TabID) Valid() bool {
	return t == Tab0 || t == Tab1
}

// Key is the tab's stable identity, also used as its title.
func (t TabID) Key() string {
	return fmt.Sprintf("TabScreen%d", int(t))
}

// Icon is the glyph shown in the tab bar.
func (t TabID) Icon() string {
	if t%2 == 0 {
		return "⌂"
	}
	return "☎"
}

// Next returns the following tab, wrapping around.
func (t TabID) Next() TabID {
	return TabID((int(t) + 1) % len(Tabs()))
}

// Prev returns the preceding tab, wrapping around.
func (t TabID) Prev() TabID {
	n := len(Tabs())
	return TabID((int(t) - 1 + n) % n)
}

// ParseTabID accepts "0", "1" or a tab key such as "TabScreen1".
func ParseTabID(s string) (TabID, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "TabScreen")
	n, err := strconv.Atoi(raw)
	if err != nil || !TabID(n).Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTab, s)
	}
	return TabID(n), nil
}

// TabSet owns one navigation stack per fixed tab and the current selection.
type TabSet struct {
	current TabID
	stacks  map[TabID]*Stack
}

func NewTabSet(initial TabID) *TabSet {
	if !initial.Valid() {
		initial = Tab0
	}
	ts := &TabSet{
		current: initial,
		stacks:  make(map[TabID]*Stack, len(Tabs())),
	}
	for _, tab := range Tabs() {
		ts.stacks[tab] = NewStack(tab)
	}
	return ts
}

func (ts *TabSet) Current() TabID {
	return ts.current
}

// Select makes tab current. It reports whether the selection changed; stacks
// are never touched.
func (ts *TabSet) Select(tab TabID) bool {
	if !tab.Valid() || ts.current == tab {
		return false
	}
	ts.current = tab
	return true
}

// Stack returns the stack owned by tab, or nil for an invalid id.
func (ts *TabSet) Stack(tab TabID) *Stack {
	return ts.stacks[tab]
}
