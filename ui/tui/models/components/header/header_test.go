// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package header

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHeader_SizeAndView(t *testing.T) {
	m := New("sqlite: hireu.db")
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 5})
	if !strings.Contains(m.View(), "sqlite: hireu.db") {
		t.Fatalf("subtitle missing from view:\n%s", m.View())
	}
	if got := SizeConfig.Calculate(m, 0, 30); got != 5 {
		t.Fatalf("expected header height 5, got %d", got)
	}
	if got := SizeConfig.Calculate(m, 0, 10); got != 0 {
		t.Fatalf("header should collapse on short terminals, got %d", got)
	}
}
