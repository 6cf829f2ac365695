// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package nav

import "fmt"

// Kind tags the variant of a Screen.
type Kind int

const (
	KindRoot Kind = iota
	KindNested
	KindSheet
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindNested:
		return "nested"
	case KindSheet:
		return "sheet"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Style is the rendering role a screen asks for.
type Style int

const (
	StylePrimary Style = iota
	StyleSecondary
	StyleSheet
)

func (s Style) String() string {
	switch s {
	case StylePrimary:
		return "primary"
	case StyleSecondary:
		return "secondary"
	case StyleSheet:
		return "sheet"
	}
	return fmt.Sprintf("style(%d)", int(s))
}

// Screen is an immutable navigation entry. Root and nested screens belong to
// a tab; sheet screens have no tab affinity and carry the depth of the screen
// that spawned them.
type Screen struct {
	Kind  Kind
	Depth int
	TabID TabID
}

func RootScreen(tab TabID) Screen {
	return Screen{Kind: KindRoot, Depth: 0, TabID: tab}
}

func NestedScreen(depth int, tab TabID) Screen {
	return Screen{Kind: KindNested, Depth: depth, TabID: tab}
}

func SheetScreen(depth int) Screen {
	return Screen{Kind: KindSheet, Depth: depth}
}

// Key returns the stable identity of the screen.
func (s Screen) Key() string {
	if s.Kind == KindSheet {
		return fmt.Sprintf("BottomSheetScreen%d", s.Depth)
	}
	return fmt.Sprintf("NestedScreen%d+%d", s.Depth, s.TabID)
}

// Style depends only on the tab id parity, never on depth.
func (s Screen) Style() Style {
	if s.Kind == KindSheet {
		return StyleSheet
	}
	return StyleForTab(s.TabID)
}

func StyleForTab(tab TabID) Style {
	if tab%2 == 0 {
		return StylePrimary
	}
	return StyleSecondary
}

// CanNavigate reports whether the screen offers push and sheet actions.
func (s Screen) CanNavigate() bool {
	return s.Kind != KindSheet
}

func (s Screen) String() string {
	return s.Key()
}
