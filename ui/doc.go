// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui groups the user interfaces of HireU: the cobra CLI in ui/cli
// and the bubbletea editor in ui/tui.
package ui
