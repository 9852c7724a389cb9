// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli implements the hireu command line using Cobra. It wires
// configuration, i18n and the draft store, exposes the salary formatting
// operations for scripting and launches the TUI when run without a
// subcommand.
package cli
