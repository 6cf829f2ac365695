// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package nav

// Stack is the navigation history of a single tab. It always holds at least
// the root screen; depths run 0, 1, 2, ... bottom to top and every entry has
// the owner's tab id.
type Stack struct {
	owner   TabID
	screens []Screen
}

func NewStack(owner TabID) *Stack {
	return &Stack{
		owner:   owner,
		screens: []Screen{RootScreen(owner)},
	}
}

func (s *Stack) Owner() TabID {
	return s.owner
}

// Push appends a nested screen one level deeper than the current top and
// returns it. There is no depth limit.
func (s *Stack) Push() Screen {
	next := NestedScreen(s.Top().Depth+1, s.owner)
	s.screens = append(s.screens, next)
	return next
}

// Pop removes the top screen. The root screen is never removed; Pop reports
// false when only the root is left.
func (s *Stack) Pop() (Screen, bool) {
	if len(s.screens) <= 1 {
		return Screen{}, false
	}
	top := s.screens[len(s.screens)-1]
	s.screens = s.screens[:len(s.screens)-1]
	return top, true
}

func (s *Stack) Top() Screen {
	return s.screens[len(s.screens)-1]
}

func (s *Stack) Len() int {
	return len(s.screens)
}

// Screens returns a copy of the stack, bottom first.
func (s *Stack) Screens() []Screen {
	out := make([]Screen, len(s.screens))
	copy(out, s.screens)
	return out
}
