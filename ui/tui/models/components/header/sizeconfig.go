// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package header

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hireu/hireu/ui/tui/models/components/stack"
	"github.com/hireu/hireu/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

// Calculate hides the header on terminals too short for it and the form.
func (s *sizeConfig) Calculate(model util.Model, _ int, totalSize int) int {
	height := lipgloss.Height(logo) + 1
	if h, ok := model.(*Model); ok && h.Subtitle != "" {
		height++
	}
	if totalSize >= 16+height {
		return height
	}
	return 0
}
