// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

// Package footer shows the status line and the key help of the focused view.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hireu/hireu/ui/tui/models/components/keyhelp"
	"github.com/hireu/hireu/ui/tui/util"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// StatusMsg replaces the status line. An empty Text clears it.
type StatusMsg struct {
	Text  string
	Error bool
}

func SetStatus(text string, isError bool) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text, Error: isError} }
}

type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
	status     StatusMsg
}

func New(baseKeyMap help.KeyMap) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case util.AnnounceKeyMapMsg:
		// global bindings are always listed
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	case StatusMsg:
		m.status = msg
		return nil
	}

	m.size.Update(msg)
	return m.help.Update(msg)
}

// Status returns the current status line.
func (m Model) Status() StatusMsg { return m.status }

func (m Model) view() string {
	if m.status.Text == "" {
		return m.help.View()
	}
	style := statusStyle
	if m.status.Error {
		style = errorStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left, style.Render(m.status.Text), m.help.View())
}

func (m Model) View() string {
	hPos := lipgloss.Left
	if m.help.Expanded {
		hPos = lipgloss.Center
	}

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Render(lipgloss.Place(
			m.size.Width, max(m.size.Height-1, 0),
			hPos, lipgloss.Top,
			m.view(),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.help.Focus()
}

func (m *Model) Blur() {
	m.help.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m Model) Expanded() bool { return m.help.Expanded }

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}
