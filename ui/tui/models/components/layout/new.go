// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package layout

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tabnav/ui/tui/util"
)

type NewOpt = func(l *Model)

func New(opts ...NewOpt) *Model {
	l := Model{
		Orientation: Horizontal,
		Align:       lipgloss.Top,
	}
	for _, opt := range opts {
		opt(&l)
	}
	l.focussedIndex = util.Clamp(0, l.focussedIndex, len(l.items)-1)
	return &l
}

func WithOrientation(orientation Orientation) NewOpt {
	return func(l *Model) {
		l.Orientation = orientation
	}
}

func WithAlign(align lipgloss.Position) NewOpt {
	return func(l *Model) {
		l.Align = align
	}
}

func WithGap(gap int) NewOpt {
	return func(l *Model) {
		l.Gap = gap
	}
}

func WithItem(model *util.Model, sizeConfig SizeConfig) NewOpt {
	return func(l *Model) {
		l.items = append(l.items, Item{
			Model:      model,
			SizeConfig: sizeConfig,
		})
	}
}

func WithFocus(i int) NewOpt {
	return func(l *Model) {
		l.focussedIndex = i
	}
}
