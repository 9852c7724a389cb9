// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package util

import "cmp"

// Clamp limits wanted to the closed range [lo, hi].
func Clamp[T cmp.Ordered](lo, wanted, hi T) T {
	return min(max(lo, wanted), hi)
}
