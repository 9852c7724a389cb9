// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import "github.com/hireu/hireu/internal/logging"

func dbLogf(format string, v ...any) {
	logging.Debugf(format, v...)
}
