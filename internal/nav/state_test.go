package nav

import (
	"reflect"
	"testing"
)

func TestSwitchingTabsPreservesStacks(t *testing.T) {
	a := NewAppState(Tab0)
	for i := 0; i < 3; i++ {
		a.Push(Tab0)
	}
	a.Select(Tab1)
	a.Select(Tab0)
	if got := a.Stack(Tab0).Len(); got != 4 {
		t.Fatalf("expected 4 screens on tab 0, got %d", got)
	}
	if got := a.Stack(Tab1).Len(); got != 1 {
		t.Fatalf("expected untouched tab 1, got %d", got)
	}
}

func TestEndToEndScenario(t *testing.T) {
	a := NewAppState(Tab0)
	if a.Current() != Tab0 {
		t.Fatalf("expected tab 0 at start")
	}
	if !reflect.DeepEqual(a.Stack(Tab0).Screens(), []Screen{RootScreen(Tab0)}) {
		t.Fatalf("unexpected initial stack %v", a.Stack(Tab0).Screens())
	}

	a.Push(a.Current())
	a.Push(a.Current())
	want := []Screen{RootScreen(Tab0), NestedScreen(1, Tab0), NestedScreen(2, Tab0)}
	if !reflect.DeepEqual(a.Stack(Tab0).Screens(), want) {
		t.Fatalf("unexpected stack %v", a.Stack(Tab0).Screens())
	}

	a.ShowSheet(a.Displayed().Screen.Depth)
	d := a.Displayed()
	if d.Sheet == nil || d.Sheet.Key() != "BottomSheetScreen2" {
		t.Fatalf("expected sheet spawned by depth 2, got %v", d.Sheet)
	}

	a.Select(Tab1)
	d = a.Displayed()
	if d.Screen != RootScreen(Tab1) {
		t.Fatalf("expected tab 1 root, got %v", d.Screen)
	}
	if d.Sheet == nil {
		t.Fatalf("sheet has no tab affinity and must stay visible")
	}

	a.Select(Tab0)
	if got := a.Displayed().Screen; got != NestedScreen(2, Tab0) {
		t.Fatalf("expected depth 2 on tab 0, got %v", got)
	}
}

func TestBackPopsCurrentTabOnly(t *testing.T) {
	a := NewAppState(Tab1)
	a.Push(Tab0)
	a.Push(Tab1)
	if _, ok := a.Back(); !ok {
		t.Fatalf("expected pop on tab 1")
	}
	if _, ok := a.Back(); ok {
		t.Fatalf("root of tab 1 must stay")
	}
	if a.Stack(Tab0).Len() != 2 {
		t.Fatalf("tab 0 must be untouched")
	}
}

func TestPushInvalidTab(t *testing.T) {
	a := NewAppState(Tab0)
	if _, ok := a.Push(TabID(9)); ok {
		t.Fatalf("push on unknown tab must fail")
	}
}

func TestSnapshot(t *testing.T) {
	a := NewAppState(Tab0)
	a.Push(Tab0)
	a.ShowSheet(1)
	snap := a.Snapshot()
	if snap.CurrentTab != "TabScreen0" || snap.Displayed != "NestedScreen1+0" || snap.Sheet != "BottomSheetScreen1" {
		t.Fatalf("unexpected snapshot header %+v", snap)
	}
	if len(snap.Tabs) != 2 || len(snap.Tabs[0].Stack) != 2 || len(snap.Tabs[1].Stack) != 1 {
		t.Fatalf("unexpected snapshot tabs %+v", snap.Tabs)
	}
	if s := snap.Tabs[1].Stack[0]; s.Style != "secondary" || s.Kind != "root" {
		t.Fatalf("unexpected tab 1 root snapshot %+v", s)
	}
}
