// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package stack

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hireu/hireu/ui/tui/util"
)

type box struct {
	size    util.Size
	focused bool
	seen    int
}

func (b *box) Init() tea.Cmd { return nil }
func (b *box) Update(msg tea.Msg) tea.Cmd {
	if !b.size.Update(msg) {
		b.seen++
	}
	return nil
}
func (b *box) View() string                  { return "x" }
func (b *box) Focus() (tea.Cmd, help.KeyMap) { b.focused = true; return nil, nil }
func (b *box) Blur()                         { b.focused = false }

func TestStack_SplitsHeight(t *testing.T) {
	header, body, footer := &box{}, &box{}, &box{}
	s := New(
		WithOrientation(Vertical),
		WithFocus(FocusIndex(1)),
		WithItem(util.ModelPointer(header), StaticSize(2)),
		WithItem(util.ModelPointer(body), VariableSize(1)),
		WithItem(util.ModelPointer(footer), StaticSize(3)),
	)

	s.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	if header.size.Height != 2 || body.size.Height != 15 || footer.size.Height != 3 {
		t.Fatalf("unexpected heights %d/%d/%d", header.size.Height, body.size.Height, footer.size.Height)
	}
	if body.size.Width != 80 {
		t.Fatalf("vertical stack should pass full width, got %d", body.size.Width)
	}

	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if header.seen != 1 || body.seen != 1 || footer.seen != 1 {
		t.Fatalf("every item should see non-size messages")
	}

	s.Focus()
	if !body.focused || header.focused {
		t.Fatalf("only the focused index should be focused")
	}
	s.SetFocus(FocusAll())
	if !header.focused || !body.focused || !footer.focused {
		t.Fatalf("FocusAll should focus every item")
	}
}

func TestStack_VariableWeights(t *testing.T) {
	a, b := &box{}, &box{}
	s := New(
		WithGap(2),
		WithItem(util.ModelPointer(a), VariableSize(1)),
		WithItem(util.ModelPointer(b), VariableSize(3)),
	)
	s.Update(tea.WindowSizeMsg{Width: 42, Height: 5})
	if a.size.Width != 10 || b.size.Width != 30 {
		t.Fatalf("unexpected widths %d/%d", a.size.Width, b.size.Width)
	}
}
