// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type ping int

func TestDrainExpandsBatchAndSequence(t *testing.T) {
	emit := func(n int) tea.Cmd {
		return func() tea.Msg { return ping(n) }
	}
	cmd := tea.Sequence(emit(1), tea.Batch(emit(2), emit(3)), emit(4))

	var got []ping
	Drain(func(msg tea.Msg) tea.Cmd {
		got = append(got, msg.(ping))
		return nil
	}, cmd)

	if len(got) != 4 {
		t.Fatalf("expected 4 messages, got %v", got)
	}
	for i, p := range got {
		if int(p) != i+1 {
			t.Fatalf("expected messages in order, got %v", got)
		}
	}
}

func TestDrainFollowsReturnedCommands(t *testing.T) {
	var count int
	var update func(tea.Msg) tea.Cmd
	update = func(msg tea.Msg) tea.Cmd {
		count++
		if n := msg.(ping); n < 3 {
			return func() tea.Msg { return n + 1 }
		}
		return nil
	}
	msgs := Drain(update, func() tea.Msg { return ping(0) })
	if count != 4 || len(msgs) != 4 {
		t.Fatalf("expected a chain of 4 messages, got %d", count)
	}
}

func TestDrainStopsAtQuit(t *testing.T) {
	msgs := Drain(func(tea.Msg) tea.Cmd {
		t.Fatalf("quit must not be delivered")
		return nil
	}, tea.Quit)
	if !Has[tea.QuitMsg](msgs) {
		t.Fatalf("expected QuitMsg to be recorded")
	}
}

func TestKey(t *testing.T) {
	for _, s := range []string{"enter", "esc", "tab", "shift+tab", "up", "backspace", "ctrl+c", "p", "1"} {
		if got := Key(s).String(); got != s {
			t.Fatalf("Key(%q).String() = %q", s, got)
		}
	}
}
