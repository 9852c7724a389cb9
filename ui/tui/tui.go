// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hireu/hireu/internal/logging"
	"github.com/hireu/hireu/ui/tui/models/views/posting"
	"github.com/hireu/hireu/ui/tui/models/views/root"
)

// Run starts the posting editor in the alternate screen and blocks until
// the user quits.
func Run(opts posting.Options, subtitle string) error {
	logging.Debugf("tui: starting with currencies %v", opts.Currencies)
	_, err := tea.NewProgram(
		root.New(opts, subtitle),
		tea.WithAltScreen(),
	).Run()
	return err
}
