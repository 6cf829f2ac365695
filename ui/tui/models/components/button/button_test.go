package button

import (
	"strings"
	"testing"
)

func TestButtonFocusChangesStyle(t *testing.T) {
	b := New("Push")
	blurred := b.View(40)
	b.Focus()
	if !b.Focused() {
		t.Fatalf("expected focused button")
	}
	if !strings.Contains(b.View(40), "Push") || !strings.Contains(blurred, "Push") {
		t.Fatalf("label missing from view")
	}
	b.Blur()
	if b.Focused() {
		t.Fatalf("expected blurred button")
	}
}
