// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

// Package numinput converts between the canonical raw digit string of an
// amount field and its grouped display string, and keeps the caret on the
// same logical digit while the field is reformatted.
//
// Everything here is pure: no function keeps state between calls. The host
// widget owns the raw value and applies the returned caret position after it
// has committed the new display text to the visible control.
//
// Two filtering layers exist on purpose. AllowKey is an optional fast path
// for the input-capture layer; StripNonDigits inside ApplyEdit and
// ApplyPaste is the only guarantee that the raw value holds digits alone.
//
// Range checks (CheckMin) belong to blur or submit time. ApplyEdit accepts
// out-of-range values so that a partially typed amount stays editable.
package numinput
