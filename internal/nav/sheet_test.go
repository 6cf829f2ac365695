package nav

import "testing"

func TestSheetShowReplaces(t *testing.T) {
	l := NewSheetLayer()
	if l.Visible() {
		t.Fatalf("new layer must be empty")
	}
	l.Show(SheetScreen(1))
	l.Show(SheetScreen(4))
	got, ok := l.Current()
	if !ok || got.Depth != 4 {
		t.Fatalf("expected latest sheet visible, got %v %v", got, ok)
	}
}

func TestSheetDismiss(t *testing.T) {
	l := NewSheetLayer()
	for i := 0; i < 3; i++ {
		l.Show(SheetScreen(i))
	}
	if !l.Dismiss() {
		t.Fatalf("expected dismiss to report a visible sheet")
	}
	if _, ok := l.Current(); ok {
		t.Fatalf("no sheet must be visible after dismiss")
	}
	if l.Dismiss() {
		t.Fatalf("dismissing an empty layer reports nothing")
	}
}
