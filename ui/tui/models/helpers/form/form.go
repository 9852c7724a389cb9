// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/hireu/hireu/ui/tui/util"
	"github.com/hireu/hireu/util/slicest"
)

// FormInput is a single field of a Form. Update reports what the form should
// do next; Get returns nil for inputs that carry no value.
type FormInput interface {
	util.Focusable
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	Get() any
	View(width int) string
}

type formItem struct {
	id    string
	input FormInput
}

type formRow struct {
	items []int
}

// Form lays inputs out in rows and decodes their values into T with
// mapstructure. Key messages go to the active input only; every other
// message is broadcast so inputs can react to form-wide events.
type Form[T any] struct {
	OnSubmit         func(result T, err error) tea.Cmd
	OnCancel         func() tea.Cmd
	ResetAfterSubmit bool
	KeyMap           KeyMap

	items       []formItem
	rows        []formRow
	activeIndex int
	focused     bool
	size        util.Size
}

func (f Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f Form[T]) Update(msg tea.Msg) (Form[T], tea.Cmd) {
	// handle size updates
	if f.size.Update(msg) {
		return f, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, f.broadcast(msg)
	}
	if !f.focused || len(f.items) == 0 {
		return f, nil
	}

	switch {
	case key.Matches(kmsg, f.KeyMap.Next):
		return f, f.changeActiveIndex(1)
	case key.Matches(kmsg, f.KeyMap.Prev):
		return f, f.changeActiveIndex(-1)
	case key.Matches(kmsg, f.KeyMap.Cancel) && f.OnCancel != nil:
		return f, f.OnCancel()
	}

	// pass msg to active input
	return f, f.updateActiveInput(msg)
}

func (f Form[T]) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(f.rows, func(row formRow) string {
			width := f.size.Width / len(row.items)
			return lipgloss.NewStyle().MarginBottom(1).Render(lipgloss.JoinHorizontal(
				lipgloss.Top,
				slicest.Map(row.items, func(itemIndex int) string {
					return f.items[itemIndex].input.View(width)
				})...,
			))
		})...,
	)
}

func (f *Form[T]) Focus() (tea.Cmd, help.KeyMap) {
	f.focused = true
	if len(f.items) == 0 {
		return nil, f.KeyMap
	}
	cmd, keyMap := f.items[f.activeIndex].input.Focus()
	return cmd, util.MergeKeyMaps(keyMap, f.KeyMap)
}

func (f *Form[T]) Blur() {
	f.focused = false
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

// *Form implements util.Focusable
var _ util.Focusable = (*Form[any])(nil)

func (f *Form[T]) Focused() bool { return f.focused }

// ActiveID returns the id of the input that receives key messages.
func (f *Form[T]) ActiveID() string {
	if len(f.items) == 0 {
		return ""
	}
	return f.items[f.activeIndex].id
}

// Input returns the input registered under id, or nil.
func (f *Form[T]) Input(id string) FormInput {
	for _, item := range f.items {
		if item.id == id {
			return item.input
		}
	}
	return nil
}

// Reset clears every input and moves focus back to the first one.
func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}
	return f.changeActiveIndex(-f.activeIndex)
}

func (f *Form[T]) Submit() tea.Cmd {
	var resetCmd tea.Cmd
	data, err := f.Get()
	if f.ResetAfterSubmit {
		resetCmd = f.Reset()
	}
	var submitCmd tea.Cmd
	if f.OnSubmit != nil {
		submitCmd = f.OnSubmit(data, err)
	}
	return tea.Batch(resetCmd, submitCmd)
}

func (f *Form[T]) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(f.items))
	for i, item := range f.items {
		cmd, action := item.input.Update(msg)
		cmds = append(cmds, cmd)
		if i == f.activeIndex && f.focused {
			cmds = append(cmds, f.handleAction(action))
		}
	}
	return tea.Batch(cmds...)
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	updateCmd, action := f.items[f.activeIndex].input.Update(msg)
	return tea.Batch(updateCmd, f.handleAction(action))
}

func (f *Form[T]) handleAction(action Action) tea.Cmd {
	switch action {
	case ActionNext:
		return f.changeActiveIndex(1)
	case ActionPrev:
		return f.changeActiveIndex(-1)
	case ActionSubmit:
		return f.Submit()
	case ActionCancel:
		if f.OnCancel != nil {
			return f.OnCancel()
		}
	}
	return nil
}

func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	delta %= len(f.items)
	if delta != 0 {
		f.items[f.activeIndex].input.Blur()
		f.activeIndex = (f.activeIndex + delta + len(f.items)) % len(f.items)
	}
	if !f.focused {
		return nil
	}

	focusCmd, keyMap := f.items[f.activeIndex].input.Focus()
	return tea.Batch(focusCmd, util.AnnounceKeyMapCmd(keyMap, f.KeyMap))
}

// Get decodes the current input values into a T.
func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		if v := item.input.Get(); v != nil {
			values[item.id] = v
		}
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}

// Set distributes the fields of data to the inputs with matching ids.
func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for i := range f.items {
		if value, ok := values[f.items[i].id]; ok {
			f.items[i].input.Set(value)
		}
	}

	return nil
}
