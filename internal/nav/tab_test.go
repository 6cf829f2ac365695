package nav

import (
	"errors"
	"testing"
)

func TestTabSetSelectIdempotent(t *testing.T) {
	ts := NewTabSet(Tab0)
	if ts.Select(Tab0) {
		t.Fatalf("selecting the current tab must not report a change")
	}
	if !ts.Select(Tab1) {
		t.Fatalf("expected change to tab 1")
	}
	ts.Stack(Tab1).Push()
	before0, before1 := ts.Stack(Tab0).Len(), ts.Stack(Tab1).Len()
	if ts.Select(Tab1) {
		t.Fatalf("second select must be a no-op")
	}
	if ts.Current() != Tab1 || ts.Stack(Tab0).Len() != before0 || ts.Stack(Tab1).Len() != before1 {
		t.Fatalf("idempotent select changed state")
	}
}

func TestTabSetRejectsInvalidTab(t *testing.T) {
	ts := NewTabSet(TabID(5))
	if ts.Current() != Tab0 {
		t.Fatalf("invalid initial tab should fall back to tab 0")
	}
	if ts.Select(TabID(-1)) || ts.Current() != Tab0 {
		t.Fatalf("invalid tab must be ignored")
	}
	if ts.Stack(TabID(3)) != nil {
		t.Fatalf("no stack for invalid tab")
	}
}

func TestTabCycle(t *testing.T) {
	if Tab0.Next() != Tab1 || Tab1.Next() != Tab0 {
		t.Fatalf("Next must wrap")
	}
	if Tab0.Prev() != Tab1 || Tab1.Prev() != Tab0 {
		t.Fatalf("Prev must wrap")
	}
}

func TestParseTabID(t *testing.T) {
	for in, want := range map[string]TabID{"0": Tab0, " 1 ": Tab1, "TabScreen1": Tab1} {
		got, err := ParseTabID(in)
		if err != nil || got != want {
			t.Fatalf("ParseTabID(%q) = %v, %v", in, got, err)
		}
	}
	for _, in := range []string{"", "2", "-1", "home"} {
		if _, err := ParseTabID(in); !errors.Is(err, ErrUnknownTab) {
			t.Fatalf("ParseTabID(%q): expected ErrUnknownTab, got %v", in, err)
		}
	}
}
