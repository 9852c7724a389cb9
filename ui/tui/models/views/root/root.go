// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root assembles the header, the posting editor and the footer.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hireu/hireu/buildvars"
	"github.com/hireu/hireu/ui/tui/models/components/header"
	"github.com/hireu/hireu/ui/tui/models/components/stack"
	windowtitle "github.com/hireu/hireu/ui/tui/models/helpers/title"
	"github.com/hireu/hireu/ui/tui/models/views/footer"
	"github.com/hireu/hireu/ui/tui/models/views/posting"
	"github.com/hireu/hireu/ui/tui/util"
)

const title string = "HireU"

type Model struct {
	stack        *stack.Model
	footer       *util.Model
	titleHandler *windowtitle.TitleHandler
}

// New builds the root model. subtitle is shown under the logo.
func New(opts posting.Options, subtitle string) *Model {
	footerPtr := util.ModelPointer(footer.New(&BaseKeyMap))

	return &Model{
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.FocusIndex(1)),
			stack.WithItem(util.ModelPointer(header.New(subtitle)), header.SizeConfig),
			stack.WithItem(util.ModelPointer(posting.New(opts)), stack.VariableSize(1)),
			stack.WithItem(footerPtr, footer.SizeConfig),
		),
		footer:       footerPtr,
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", title, buildvars.VersionOrDefault("dev")), " | "),
	}
}

func (m Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, BaseKeyMap.Exit):
			return m, tea.Quit
		case key.Matches(msg, BaseKeyMap.Help):
			util.BorrowModelFunc(m.footer, func(f *footer.Model) {
				f.ToggleExpanded()
			})
			// the footer height changed
			return m, m.stack.Update(m.stackSize())
		}
		return m, m.stack.Update(msg)
	}

	if cmd, ok := m.titleHandler.Handle(msg); ok {
		return m, cmd
	}
	return m, m.stack.Update(msg)
}

func (m Model) stackSize() tea.WindowSizeMsg {
	size := m.stack.Size()
	return size.ToMsg()
}

func (m Model) View() string {
	return m.stack.View()
}

// Model implements tea.Model
var _ tea.Model = (*Model)(nil)
