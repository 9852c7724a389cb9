// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package footer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hireu/hireu/ui/tui/util"
)

type quitKeys struct{ quit key.Binding }

func (k quitKeys) ShortHelp() []key.Binding  { return []key.Binding{k.quit} }
func (k quitKeys) FullHelp() [][]key.Binding { return [][]key.Binding{{k.quit}} }

func TestFooter_StatusAndBaseKeys(t *testing.T) {
	m := New(quitKeys{key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 3})
	m.Update(util.AnnounceKeyMapMsg{})

	if !strings.Contains(m.View(), "quit") {
		t.Fatalf("base bindings should always be shown:\n%s", m.View())
	}
	if got := SizeConfig.Calculate(m, 0, 0); got != 2 {
		t.Fatalf("expected height 2 without status, got %d", got)
	}

	cmd := SetStatus("saved #1", false)
	m.Update(cmd())
	if m.Status().Text != "saved #1" || !strings.Contains(m.View(), "saved #1") {
		t.Fatalf("status not rendered:\n%s", m.View())
	}
	if got := SizeConfig.Calculate(m, 0, 0); got != 3 {
		t.Fatalf("expected height 3 with status, got %d", got)
	}
}
