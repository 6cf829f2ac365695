// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.

// Package testutil drives Bubble Tea models synchronously in tests.
package testutil

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
)

// maxMsgs bounds a single Drain so a command loop fails fast.
const maxMsgs = 1000

var cmdType = reflect.TypeOf(tea.Cmd(nil))

// Drain executes cmd, feeds every resulting message to update and keeps
// going with the commands update returns. Batches and sequences are
// expanded in order. All delivered messages are returned.
func Drain(update func(tea.Msg) tea.Cmd, cmd tea.Cmd) []tea.Msg {
	var seen []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 && len(seen) < maxMsgs {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if msg == nil {
			continue
		}
		if cmds, ok := expand(msg); ok {
			queue = append(cmds, queue...)
			continue
		}
		seen = append(seen, msg)
		if _, quit := msg.(tea.QuitMsg); quit {
			continue
		}
		queue = append(queue, update(msg))
	}
	return seen
}

// Send delivers msg to update and drains whatever follows.
func Send(update func(tea.Msg) tea.Cmd, msg tea.Msg) []tea.Msg {
	return Drain(update, update(msg))
}

// expand unwraps tea.BatchMsg and the sequence message, which is a slice of
// commands of an unexported type.
func expand(msg tea.Msg) ([]tea.Cmd, bool) {
	if batch, ok := msg.(tea.BatchMsg); ok {
		return batch, true
	}
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice || v.Type().Elem() != cmdType {
		return nil, false
	}
	cmds := make([]tea.Cmd, v.Len())
	for i := range cmds {
		cmds[i] = v.Index(i).Interface().(tea.Cmd)
	}
	return cmds, true
}

// Key builds the key message bubbletea would deliver for s, using the
// names key.Binding matches against ("enter", "shift+tab", "p").
func Key(s string) tea.KeyMsg {
	if t, ok := keyTypes[s]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var keyTypes = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"backspace": tea.KeyBackspace,
	"ctrl+c":    tea.KeyCtrlC,
	" ":         tea.KeySpace,
}

// Has reports whether msgs contains a message of type T.
func Has[T any](msgs []tea.Msg) bool {
	for _, msg := range msgs {
		if _, ok := msg.(T); ok {
			return true
		}
	}
	return false
}
