// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package root

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hireu/hireu/internal/i18n"
	"github.com/hireu/hireu/ui/tui/models/views/footer"
	"github.com/hireu/hireu/ui/tui/models/views/posting"
	"github.com/hireu/hireu/ui/tui/util"
)

func newRoot(t *testing.T) Model {
	t.Helper()
	i18n.Init("en")
	m := New(posting.Options{Currencies: []string{"USD", "INR"}, Currency: "INR"}, "no database")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func TestRoot_ExitAndHelp(t *testing.T) {
	m := newRoot(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}

	f, ok := (*m.footer).(*footer.Model)
	if !ok {
		t.Fatalf("unexpected footer type %T", *m.footer)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	if !f.Expanded() {
		t.Fatalf("f1 should expand the key help")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	if f.Expanded() {
		t.Fatalf("f1 should collapse the key help again")
	}
}

func TestRoot_ViewShowsEditorAndStatus(t *testing.T) {
	m := newRoot(t)
	m.Update(util.AnnounceKeyMapMsg{})
	m.Update(footer.StatusMsg{Text: "all good"})
	view := m.View()
	for _, want := range []string{"no database", i18n.T("posting.salary_min"), "all good", "ctrl+c"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view is missing %q:\n%s", want, view)
		}
	}
}
