// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package tabbar

import (
	"github.com/toeirei/tabnav/ui/tui/models/components/layout"
	"github.com/toeirei/tabnav/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ layout.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 15 }

// one row of tabs below a border line
func (s *sizeConfig) Calculate(_ util.Model, _ int, _ int) int {
	return 2
}
