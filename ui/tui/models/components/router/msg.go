// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import "github.com/toeirei/tabnav/internal/nav"

// Controll invoked messages
// Model-Controll -> Router

type PushMsg struct {
	tab nav.TabID
}

type PopMsg struct {
	tab   nav.TabID
	Count int
}

func (m PushMsg) routerTab() nav.TabID { return m.tab }
func (m PopMsg) routerTab() nav.TabID  { return m.tab }

type RouterMsg interface {
	routerTab() nav.TabID
}

func IsRouterMsg(msg any) bool {
	_, ok := msg.(RouterMsg)
	return ok
}

// ChangedMsg is emitted after a router changed its stack.
type ChangedMsg struct {
	Tab nav.TabID
	Top nav.Screen
}
