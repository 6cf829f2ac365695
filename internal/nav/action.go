// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package nav

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

var ErrUnknownAction = errors.New("unknown action")

type ActionType string

const (
	ActionPush    ActionType = "push"
	ActionSelect  ActionType = "select"
	ActionShow    ActionType = "show"
	ActionDismiss ActionType = "dismiss"
	ActionBack    ActionType = "back"
)

var actionTypes = []ActionType{ActionPush, ActionSelect, ActionShow, ActionDismiss, ActionBack}

// maxSuggestDistance is the largest edit distance still worth a hint.
const maxSuggestDistance = 2

// SuggestAction returns the action type closest to token, if any is close
// enough to be a likely typo.
func SuggestAction(token string) (ActionType, bool) {
	token = strings.ToLower(token)
	best, bestDist := ActionType(""), maxSuggestDistance+1
	for _, t := range actionTypes {
		if d := levenshtein.ComputeDistance(token, string(t)); d < bestDist {
			best, bestDist = t, d
		}
	}
	return best, best != ""
}

// Action is one user interaction, as a tap would trigger it.
type Action struct {
	Type ActionType
	Tab  TabID
}

func (a Action) String() string {
	if a.Type == ActionSelect {
		return fmt.Sprintf("%s %d", a.Type, int(a.Tab))
	}
	return string(a.Type)
}

// ParseAction parses "push", "show", "dismiss", "back" or "select <tab>".
// "select:1" and "select=1" are accepted too.
func ParseAction(s string) (Action, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == ' ' || r == '\t' || r == ':' || r == '='
	})
	if len(fields) == 0 {
		return Action{}, fmt.Errorf("%w: empty", ErrUnknownAction)
	}
	// verbs are case-insensitive, tab keys are not
	fields[0] = strings.ToLower(fields[0])

	switch t := ActionType(fields[0]); t {
	case ActionPush, ActionShow, ActionDismiss, ActionBack:
		if len(fields) != 1 {
			return Action{}, fmt.Errorf("%w: %q takes no argument", ErrUnknownAction, s)
		}
		return Action{Type: t}, nil
	case ActionSelect:
		if len(fields) != 2 {
			return Action{}, fmt.Errorf("%w: %q needs a tab", ErrUnknownAction, s)
		}
		tab, err := ParseTabID(fields[1])
		if err != nil {
			return Action{}, err
		}
		return Action{Type: t, Tab: tab}, nil
	}
	if hint, ok := SuggestAction(fields[0]); ok {
		return Action{}, fmt.Errorf("%w: %q, did you mean %q?", ErrUnknownAction, s, hint)
	}
	return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// ParseActions parses every entry, skipping blank ones and '#' comments.
func ParseActions(lines []string) ([]Action, error) {
	var actions []Action
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		a, err := ParseAction(line)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i+1, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// Apply runs actions against state in order. Push and show act on the screen
// currently displayed in the current tab.
func Apply(state *AppState, actions ...Action) {
	for _, a := range actions {
		switch a.Type {
		case ActionPush:
			state.Push(state.Current())
		case ActionSelect:
			state.Select(a.Tab)
		case ActionShow:
			state.ShowSheet(state.Displayed().Screen.Depth)
		case ActionDismiss:
			state.DismissSheet()
		case ActionBack:
			state.Back()
		}
	}
}
