// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

// Package stack lays out child models in a row or column and splits the
// available space between them according to their SizeConfig.
package stack

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hireu/hireu/ui/tui/util"
	"github.com/hireu/hireu/util/slicest"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

type Model struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int

	items        []Item
	size         util.Size
	focusedIndex Focus
}

type Item struct {
	Model      *util.Model
	SizeConfig SizeConfig
	size       int
	oldSize    int
}

func (s Model) Init() tea.Cmd {
	return tea.Batch(slicest.Map(s.items, func(item Item) tea.Cmd {
		return (*item.Model).Init()
	})...)
}

// Update forwards msg to every item. Resizes are split between items
// first so each receives its own tea.WindowSizeMsg.
func (s *Model) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if s.size.Update(msg) {
		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(true)...)
	} else {
		cmds = append(cmds, slicest.Map(s.items, func(item Item) tea.Cmd {
			return (*item.Model).Update(msg)
		})...)

		// content may have changed height
		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(false)...)
	}

	return tea.Batch(cmds...)
}

func (s Model) View() string {
	var joiner func(pos lipgloss.Position, strs ...string) string
	var styler func(size int, margin int) lipgloss.Style
	switch s.Orientation {
	case Vertical:
		joiner = lipgloss.JoinVertical
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(s.size.Width).
				Height(size).
				MaxWidth(s.size.Width).
				MaxHeight(size + margin).
				MarginTop(margin)
		}
	case Horizontal:
		joiner = lipgloss.JoinHorizontal
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(size).
				Height(s.size.Height).
				MaxWidth(size + margin).
				MaxHeight(s.size.Height).
				MarginLeft(margin)
		}
	}

	return joiner(
		s.Align,
		slicest.MapI(s.items, func(i int, item Item) string {
			// no gap on first item
			margin := s.Gap * min(i, 1)
			if item.size == 0 {
				return ""
			}
			return styler(item.size, margin).Render((*item.Model).View())
		})...,
	)
}

func (s *Model) Focus() (tea.Cmd, help.KeyMap) {
	if len(s.items) == 0 {
		return nil, nil
	}
	if s.focusedIndex == FocusAll() {
		cmds := make([]tea.Cmd, len(s.items))
		keyMaps := make([]help.KeyMap, len(s.items))

		for i, item := range s.items {
			cmds[i], keyMaps[i] = (*item.Model).Focus()
		}

		return tea.Batch(cmds...), util.MergeKeyMaps(keyMaps...)
	}
	return (*s.items[s.focusedIndex].Model).Focus()
}

func (s *Model) Blur() {
	if len(s.items) == 0 {
		return
	}
	if s.focusedIndex == FocusAll() {
		for _, item := range s.items {
			(*item.Model).Blur()
		}
		return
	}
	(*s.items[s.focusedIndex].Model).Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// Focus selects which item receives focus; FocusAll focuses every item.
type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }

func (s *Model) SetFocus(focus Focus) (tea.Cmd, help.KeyMap) {
	s.Blur()
	s.focusedIndex = util.Clamp(FocusAll(), focus, Focus(len(s.items)-1))
	return s.Focus()
}

// Size returns the size the stack was last given.
func (s *Model) Size() util.Size { return s.size }
