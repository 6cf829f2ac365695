// Copyright (c) 2026 Tabnav Team
// Tabnav - tab and stack navigation demo
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// help.Model truncates merged key maps wrongly, so both views are rendered
// here. Parts that do not fit m.Width are replaced by the ellipsis.

// fit keeps as many parts as fit into width, ending with tail when some had
// to be dropped.
func fit(parts []string, tail string, width int) []string {
	var (
		out  []string
		used int
	)
	tailLen := lipgloss.Width(tail)
	for i, part := range parts {
		partLen := lipgloss.Width(part)
		last := i == len(parts)-1
		if (last && used+partLen <= width) || (!last && used+partLen+tailLen <= width) {
			used += partLen
			out = append(out, part)
			continue
		}
		if used+tailLen <= width {
			out = append(out, tail)
		}
		break
	}
	return out
}

// ShortHelpView returns a compact single-line help view.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)

	var items []string
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		var sep string
		if len(items) > 0 {
			sep = separator
		}
		items = append(items, sep+
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key)+" "+
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc))
	}

	return strings.Join(fit(items, tail, m.Width), "")
}

// FullHelpView returns the help view with one column per binding group.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)

	var cols []string
	for _, group := range groups {
		if !slices.ContainsFunc(group, key.Binding.Enabled) {
			// groups with only disabled bindings are skipped
			continue
		}
		var keys, descriptions []string
		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			keys = append(keys, binding.Help().Key)
			descriptions = append(descriptions, binding.Help().Desc)
		}
		var sep string
		if len(cols) > 0 {
			sep = separator
		}
		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, fit(cols, tail, m.Width)...)
}
