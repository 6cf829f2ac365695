// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/tabnav/internal/nav"
	"github.com/toeirei/tabnav/internal/testutil"
	"github.com/toeirei/tabnav/ui/tui/util"
)

type fakeScreen struct {
	screen  nav.Screen
	focused bool
	inits   int
	size    util.Size
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) tea.Cmd {
	f.size.Update(msg)
	return nil
}

func (f *fakeScreen) View() string {
	return f.screen.Key()
}

func (f *fakeScreen) Focus() (tea.Cmd, help.KeyMap) {
	f.focused = true
	return nil, nil
}

func (f *fakeScreen) Blur() {
	f.focused = false
}

type recorder struct {
	built []*fakeScreen
}

func (r *recorder) factory(screen nav.Screen, _ Controll) util.Model {
	f := &fakeScreen{screen: screen}
	r.built = append(r.built, f)
	return f
}

func TestNewMirrorsExistingStack(t *testing.T) {
	state := nav.NewAppState(nav.Tab0)
	state.Push(nav.Tab0)
	state.Push(nav.Tab0)

	rec := &recorder{}
	r, rc := New(state, nav.Tab0, rec.factory)
	if r.Depth() != 3 || len(rec.built) != 3 {
		t.Fatalf("expected 3 mirrored screens, got %d", r.Depth())
	}
	if rc.Tab() != nav.Tab0 || r.Tab() != nav.Tab0 {
		t.Fatalf("unexpected tab %v", rc.Tab())
	}
	if r.View() != "NestedScreen2+0" {
		t.Fatalf("expected the top screen to render, got %q", r.View())
	}
}

func TestPushAppendsAndFocusesTop(t *testing.T) {
	state := nav.NewAppState(nav.Tab1)
	rec := &recorder{}
	r, rc := New(state, nav.Tab1, rec.factory)
	testutil.Drain(r.Update, func() tea.Msg { return tea.WindowSizeMsg{Width: 30, Height: 8} })
	testutil.Drain(r.Update, util.FocusCmd(r))

	msgs := testutil.Drain(r.Update, rc.Push())

	if r.Depth() != 2 || state.Stack(nav.Tab1).Len() != 2 {
		t.Fatalf("expected depth 2, router %d state %d", r.Depth(), state.Stack(nav.Tab1).Len())
	}
	root, pushed := rec.built[0], rec.built[1]
	if root.focused || !pushed.focused {
		t.Fatalf("focus should move to the pushed screen")
	}
	if pushed.inits != 1 {
		t.Fatalf("pushed screen should be initialized once, got %d", pushed.inits)
	}
	if pushed.size.Width != 30 || pushed.size.Height != 8 {
		t.Fatalf("pushed screen should get the router size, got %+v", pushed.size)
	}
	if pushed.screen != nav.NestedScreen(1, nav.Tab1) {
		t.Fatalf("unexpected pushed screen %v", pushed.screen)
	}

	var changed *ChangedMsg
	for _, msg := range msgs {
		if c, ok := msg.(ChangedMsg); ok {
			changed = &c
		}
	}
	if changed == nil || changed.Tab != nav.Tab1 || changed.Top.Depth != 1 {
		t.Fatalf("expected ChangedMsg for the new top, got %+v", changed)
	}
}

func TestUnfocusedPushDoesNotFocus(t *testing.T) {
	state := nav.NewAppState(nav.Tab0)
	rec := &recorder{}
	r, rc := New(state, nav.Tab0, rec.factory)

	testutil.Drain(r.Update, rc.Push())
	if rec.built[1].focused {
		t.Fatalf("a blurred router must not focus its pushed screen")
	}
}

func TestIgnoresOtherTabs(t *testing.T) {
	state := nav.NewAppState(nav.Tab0)
	rec := &recorder{}
	r, _ := New(state, nav.Tab0, rec.factory)
	_, otherRC := New(state, nav.Tab1, rec.factory)

	testutil.Drain(r.Update, otherRC.Push())
	if r.Depth() != 1 || state.Stack(nav.Tab0).Len() != 1 {
		t.Fatalf("router of tab 0 handled a message for tab 1")
	}
	if state.Stack(nav.Tab1).Len() != 1 {
		t.Fatalf("nobody owns tab 1 here, its stack must stay put")
	}
}

func TestPopKeepsRoot(t *testing.T) {
	state := nav.NewAppState(nav.Tab0)
	rec := &recorder{}
	r, rc := New(state, nav.Tab0, rec.factory)
	testutil.Drain(r.Update, util.FocusCmd(r))
	testutil.Drain(r.Update, rc.Push())
	testutil.Drain(r.Update, rc.Push())
	testutil.Drain(r.Update, rc.Push())
	if r.Depth() != 4 {
		t.Fatalf("expected depth 4, got %d", r.Depth())
	}

	testutil.Drain(r.Update, rc.Pop(1))
	if r.Depth() != 3 || !rec.built[2].focused {
		t.Fatalf("pop should refocus the screen below, depth %d", r.Depth())
	}

	msgs := testutil.Drain(r.Update, rc.Pop(10))
	if r.Depth() != 1 || state.Stack(nav.Tab0).Len() != 1 {
		t.Fatalf("popping past the root must stop at the root, depth %d", r.Depth())
	}
	if !rec.built[0].focused {
		t.Fatalf("root should be focused again")
	}
	if !testutil.Has[ChangedMsg](msgs) {
		t.Fatalf("expected ChangedMsg after pop")
	}

	if msgs := testutil.Drain(r.Update, rc.Pop(1)); testutil.Has[ChangedMsg](msgs) {
		t.Fatalf("popping the root is a no-op")
	}
}
