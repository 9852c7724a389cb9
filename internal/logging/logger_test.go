// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// TestLoggingHelpers_WriteToBuffer swaps L for a buffer-backed logger and
// checks that every helper reaches it.
func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(clog.DebugLevel)
	defer func() { L = prev }()

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")
	With("field", "salary_min").Info("keyed")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E", "salary_min"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output; got: %s", want, out)
		}
	}
}

func TestSetDebug_GatesDebugOutput(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = newLogger(&buf)
	defer func() { L = prev }()

	Debugf("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("debug output leaked while disabled: %s", buf.String())
	}

	SetDebug(true)
	if !DebugEnabled() {
		t.Fatalf("expected debug to be enabled")
	}
	Debugf("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected debug output after SetDebug(true); got: %s", buf.String())
	}
	SetDebug(false)
	if DebugEnabled() {
		t.Fatalf("expected debug to be disabled")
	}
}
