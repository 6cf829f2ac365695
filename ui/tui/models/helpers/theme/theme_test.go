package theme

import (
	"testing"

	"github.com/toeirei/tabnav/internal/nav"
)

func TestBackgroundFollowsStyle(t *testing.T) {
	if Background(nav.NestedScreen(3, nav.Tab0).Style()) != ColorPrimary {
		t.Fatalf("tab 0 screens use the primary color")
	}
	if Background(nav.NestedScreen(3, nav.Tab1).Style()) != ColorSecondary {
		t.Fatalf("tab 1 screens use the secondary color")
	}
	if Background(nav.SheetScreen(0).Style()) != ColorSecondaryVariant {
		t.Fatalf("sheets use the secondary variant color")
	}
	if Screen(nav.StylePrimary).GetBackground() != ColorPrimary {
		t.Fatalf("screen style must carry the background")
	}
}
