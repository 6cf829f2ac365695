// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package nav

// SheetLayer holds at most one visible bottom sheet.
type SheetLayer struct {
	screen  Screen
	visible bool
}

func NewSheetLayer() *SheetLayer {
	return &SheetLayer{}
}

// Show makes screen the visible sheet, replacing any previous one.
func (l *SheetLayer) Show(screen Screen) {
	l.screen = screen
	l.visible = true
}

// Dismiss hides the sheet. It reports whether a sheet was visible.
func (l *SheetLayer) Dismiss() bool {
	was := l.visible
	l.screen = Screen{}
	l.visible = false
	return was
}

func (l *SheetLayer) Current() (Screen, bool) {
	return l.screen, l.visible
}

func (l *SheetLayer) Visible() bool {
	return l.visible
}
