// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package forminput

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hireu/hireu/ui/tui/models/helpers/form"
)

// Choice cycles through a fixed list of options with left and right.
// OnChange, when set, builds the command sent after the selection moved.
type Choice struct {
	Label    string
	Options  []string
	KeyMap   ChoiceKeyMap
	OnChange func(option string) tea.Cmd

	index   int
	initial int
	focused bool
}

type ChoiceKeyMap struct {
	Prev key.Binding
	Next key.Binding
	Done key.Binding
}

func (k ChoiceKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Prev, k.Next} }

func (k ChoiceKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Prev, k.Next, k.Done}} }

func NewChoice(label string, options []string, selected string) *Choice {
	c := &Choice{
		Label:   label,
		Options: options,
		KeyMap: ChoiceKeyMap{
			Prev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous option")),
			Next: key.NewBinding(key.WithKeys("right", "l", " "), key.WithHelp("→", "next option")),
			Done: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		},
	}
	if i := c.indexOf(selected); i >= 0 {
		c.index, c.initial = i, i
	}
	return c
}

func (c *Choice) indexOf(option string) int {
	return slices.IndexFunc(c.Options, func(o string) bool {
		return strings.EqualFold(o, option)
	})
}

// Selected returns the current option, or "" without options.
func (c *Choice) Selected() string {
	if len(c.Options) == 0 {
		return ""
	}
	return c.Options[c.index]
}

func (c *Choice) Focus() (tea.Cmd, help.KeyMap) {
	c.focused = true
	return nil, c.KeyMap
}

func (c *Choice) Blur() { c.focused = false }

func (c *Choice) Init() tea.Cmd { return nil }

func (c *Choice) Get() any { return c.Selected() }

func (c *Choice) Reset() {
	c.index = c.initial
}

func (c *Choice) Set(value any) {
	if s, ok := value.(string); ok {
		if i := c.indexOf(s); i >= 0 {
			c.index = i
		}
	}
}

func (c *Choice) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !c.focused || len(c.Options) == 0 {
		return nil, form.ActionNone
	}

	switch {
	case key.Matches(kmsg, c.KeyMap.Done):
		return nil, form.ActionNext
	case key.Matches(kmsg, c.KeyMap.Prev):
		return c.move(-1), form.ActionNone
	case key.Matches(kmsg, c.KeyMap.Next):
		return c.move(1), form.ActionNone
	}
	return nil, form.ActionNone
}

func (c *Choice) move(delta int) tea.Cmd {
	c.index = (c.index + delta + len(c.Options)) % len(c.Options)
	if c.OnChange != nil {
		return c.OnChange(c.Options[c.index])
	}
	return nil
}

func (c *Choice) View(width int) string {
	label := labelStyle.Width(width).Render(c.Label)
	value := c.Selected()
	if c.focused {
		label = focusedLabelStyle.Render(c.Label)
		value = "‹ " + selectionStyle.Render(value) + " ›"
	} else {
		value = "  " + value
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, lipgloss.NewStyle().MaxWidth(width).Render(value))
}

var _ form.FormInput = (*Choice)(nil)
