// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFlattenYAML(t *testing.T) {
	keys := map[string]struct{}{}
	flattenYAML("", map[string]any{
		"posting": map[string]any{"title": "Title"},
		"cli.saved": "Saved %s",
	}, keys)
	for _, k := range []string{"posting.title", "cli.saved"} {
		if _, ok := keys[k]; !ok {
			t.Fatalf("expected %q in %v", k, keys)
		}
	}
}

func TestLint(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "a.go"), `package a
func f() {
	_ = i18n.T("posting.title")
	_ = i18n.T("posting.undefined", 1)
}`)
	// test files are not scanned
	writeFile(t, filepath.Join(dir, "src", "a_test.go"), `_ = i18n.T("only.in.tests")`)
	locales := filepath.Join(dir, "locales")
	writeFile(t, filepath.Join(locales, "active.en.yaml"), "posting.title: Title\nposting.unused: x\n")
	writeFile(t, filepath.Join(locales, "active.de.yaml"), "posting:\n  title: Titel\n")

	r, err := lint(filepath.Join(dir, "src"), locales)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if len(r.Undefined) != 1 || r.Undefined[0] != "posting.undefined" {
		t.Fatalf("unexpected undefined keys %v", r.Undefined)
	}
	if len(r.Orphaned) != 1 || r.Orphaned[0] != "posting.unused" {
		t.Fatalf("unexpected orphans %v", r.Orphaned)
	}
	if got := r.Missing["active.de.yaml"]; len(got) != 1 || got[0] != "posting.unused" {
		t.Fatalf("unexpected missing keys %v", got)
	}
	if !r.Failed() {
		t.Fatalf("expected the report to fail")
	}

	var buf bytes.Buffer
	printReport(&buf, r)
	for _, want := range []string{"undefined: posting.undefined", "missing in active.de.yaml: posting.unused", "orphaned: posting.unused"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Fatalf("report is missing %q:\n%s", want, buf.String())
		}
	}
}

func TestLint_ProjectLocalesAreConsistent(t *testing.T) {
	r, err := lint("../..", "../../internal/i18n/locales")
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if r.Failed() {
		var buf bytes.Buffer
		printReport(&buf, r)
		t.Fatalf("locales are inconsistent:\n%s", buf.String())
	}
}
