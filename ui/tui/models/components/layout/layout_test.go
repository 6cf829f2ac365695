// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package layout

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tabnav/internal/testutil"
	"github.com/toeirei/tabnav/ui/tui/util"
)

type box struct {
	size    util.Size
	msgs    int
	focused bool
}

func (b *box) Init() tea.Cmd {
	return nil
}

func (b *box) Update(msg tea.Msg) tea.Cmd {
	if !b.size.Update(msg) {
		b.msgs++
	}
	return nil
}

func (b *box) View() string {
	return "x"
}

func (b *box) Focus() (tea.Cmd, help.KeyMap) {
	b.focused = true
	return nil, nil
}

func (b *box) Blur() {
	b.focused = false
}

func TestVerticalSizes(t *testing.T) {
	top, middle, bottom := &box{}, &box{}, &box{}
	l := New(
		WithOrientation(Vertical),
		WithItem(util.ModelPointer(top), StaticSize(3)),
		WithItem(util.ModelPointer(middle), VariableSize(1)),
		WithItem(util.ModelPointer(bottom), StaticSize(2)),
	)

	testutil.Send(l.Update, tea.WindowSizeMsg{Width: 20, Height: 15})

	if top.size.Height != 3 || middle.size.Height != 10 || bottom.size.Height != 2 {
		t.Fatalf("unexpected heights %d/%d/%d", top.size.Height, middle.size.Height, bottom.size.Height)
	}
	if top.size.Width != 20 || middle.size.Width != 20 {
		t.Fatalf("items should span the full width")
	}
	if _, h := lipgloss.Size(l.View()); h != 15 {
		t.Fatalf("view should fill the height, got %d", h)
	}
}

func TestHorizontalWeightsAndGap(t *testing.T) {
	left, right := &box{}, &box{}
	l := New(
		WithGap(2),
		WithItem(util.ModelPointer(left), VariableSize(1)),
		WithItem(util.ModelPointer(right), VariableSize(3)),
	)
	testutil.Send(l.Update, tea.WindowSizeMsg{Width: 42, Height: 5})

	if left.size.Width != 10 || right.size.Width != 30 {
		t.Fatalf("unexpected widths %d/%d", left.size.Width, right.size.Width)
	}
}

func TestForwardsToAllAndFocusesOne(t *testing.T) {
	a, b := &box{}, &box{}
	l := New(
		WithFocus(1),
		WithItem(util.ModelPointer(a), StaticSize(1)),
		WithItem(util.ModelPointer(b), StaticSize(1)),
	)
	l.Update(testutil.Key("x"))
	if a.msgs != 1 || b.msgs != 1 {
		t.Fatalf("every item should see the message, got %d/%d", a.msgs, b.msgs)
	}

	l.Focus()
	if a.focused || !b.focused {
		t.Fatalf("only the configured item should be focused")
	}
	l.Blur()
	if b.focused {
		t.Fatalf("blur should reach the focused item")
	}
}

func TestFocusIndexIsClamped(t *testing.T) {
	a := &box{}
	l := New(WithFocus(7), WithItem(util.ModelPointer(a), StaticSize(1)))
	l.Focus()
	if !a.focused {
		t.Fatalf("out of range focus should clamp to the last item")
	}
}
