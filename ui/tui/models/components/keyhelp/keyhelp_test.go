package keyhelp

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/tabnav/ui/tui/util"
)

type keys []key.Binding

func (k keys) ShortHelp() []key.Binding  { return k }
func (k keys) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func bindings() keys {
	return keys{
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "push")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sheet")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled()),
	}
}

func TestShortHelpViewSkipsDisabled(t *testing.T) {
	m := help.New()
	m.Width = 80
	out := ShortHelpView(m, bindings())
	if !strings.Contains(out, "push") || !strings.Contains(out, "sheet") {
		t.Fatalf("missing bindings in %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("disabled binding rendered: %q", out)
	}
}

func TestShortHelpViewTruncates(t *testing.T) {
	m := help.New()
	m.Width = 8
	out := ShortHelpView(m, bindings())
	if strings.Contains(out, "sheet") {
		t.Fatalf("expected truncation, got %q", out)
	}
}

func TestModelShowsAnnouncedKeyMap(t *testing.T) {
	m := New()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 1})
	if m.View() != "" {
		t.Fatalf("no key map announced yet")
	}
	m.Update(util.AnnounceKeyMapMsg{KeyMap: bindings()})
	if !strings.Contains(m.View(), "push") {
		t.Fatalf("expected announced bindings, got %q", m.View())
	}
	m.ToggleExpanded()
	if !strings.Contains(m.View(), "sheet") {
		t.Fatalf("expected full help, got %q", m.View())
	}
}
