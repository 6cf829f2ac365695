// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package layout

import (
	"math"
	"slices"

	"github.com/toeirei/tabnav/ui/tui/util"
	"github.com/toeirei/tabnav/util/slicest"
)

// SizeConfig decides how much of the main axis an item gets. Items with a
// lower priority are sized first.
type SizeConfig interface {
	Priority() int
	Calculate(model util.Model, remaining int, total int) int
}

type staticSize struct {
	Size int
}

type variableSize struct {
	Weight      int
	totalWeight int
}

func StaticSize(size int) SizeConfig     { return &staticSize{Size: size} }
func VariableSize(weight int) SizeConfig { return &variableSize{Weight: weight} }

func (sc *staticSize) Priority() int   { return 0 }
func (sc *variableSize) Priority() int { return math.MaxInt }

func (sc *staticSize) Calculate(_ util.Model, _ int, _ int) int {
	return sc.Size
}

func (sc *variableSize) Calculate(_ util.Model, remaining int, _ int) int {
	if sc.totalWeight == 0 {
		return remaining
	}
	// multiply first to keep integer precision
	return (remaining * sc.Weight) / sc.totalWeight
}

func (l *Model) mainAxis() int {
	if l.Orientation == Horizontal {
		return l.size.Width
	}
	return l.size.Height
}

func (l *Model) calculateItemSizes() {
	total := l.mainAxis()
	remaining := max(total-(l.Gap*(len(l.items)-1)), 0)

	sorted := make([]*Item, len(l.items))
	for i := range l.items {
		sorted[i] = &l.items[i]
	}
	slices.SortStableFunc(sorted, func(a, b *Item) int {
		return a.SizeConfig.Priority() - b.SizeConfig.Priority()
	})

	totalWeight := slicest.Reduce(l.items, func(item Item, sum int) int {
		if v, ok := item.SizeConfig.(*variableSize); ok {
			return sum + v.Weight
		}
		return sum
	})

	for _, item := range sorted {
		v, variable := item.SizeConfig.(*variableSize)
		if variable {
			v.totalWeight = totalWeight
		}

		size := min(item.SizeConfig.Calculate(*item.Model, remaining, total), remaining)

		if variable {
			totalWeight -= v.Weight
		}
		remaining -= size
		item.oldSize = item.size
		item.size = size
	}
}
