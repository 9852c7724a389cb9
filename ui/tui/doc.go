// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the terminal posting editor. Views live under
// models/views, reusable widgets under models/components and
// models/helpers; persistence is reached through internal/db only.
package tui
