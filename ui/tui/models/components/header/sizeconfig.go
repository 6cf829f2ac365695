// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/toeirei/tabnav/ui/tui/models/components/layout"
	"github.com/toeirei/tabnav/ui/tui/util"
)

// logo, breadcrumb and border
const height = 3

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ layout.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

// the header gives way on very small terminals
func (s *sizeConfig) Calculate(_ util.Model, _ int, total int) int {
	if total >= 10+height {
		return height
	}
	return 0
}
