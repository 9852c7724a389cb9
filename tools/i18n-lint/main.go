// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-lint checks that every i18n.T key used in the source is defined in
// the primary locale and that every other locale defines the same keys.
// It exits non-zero when a key is missing anywhere.
//
// Usage:
//
//	go run ./tools/i18n-lint [-root .] [-locales internal/i18n/locales]
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/hireu/hireu/internal/logging"
	"gopkg.in/yaml.v3"
)

const primaryLocale = "active.en.yaml"

var usedKeyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

// Report is the result of one lint run. Key lists are sorted.
type Report struct {
	// Undefined keys are used in code but missing from the primary locale.
	Undefined []string
	// Missing maps a secondary locale file to the primary keys it lacks.
	Missing map[string][]string
	// Orphaned keys are defined in the primary locale but never used.
	Orphaned []string
}

// Failed reports whether the run found missing keys. Orphans only warn.
func (r Report) Failed() bool {
	if len(r.Undefined) > 0 {
		return true
	}
	for _, keys := range r.Missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

func main() {
	root := flag.String("root", ".", "source tree to scan")
	locales := flag.String("locales", "internal/i18n/locales", "directory holding active.*.yaml")
	flag.Parse()

	r, err := lint(*root, *locales)
	if err != nil {
		logging.Errorf("i18n-lint: %v", err)
		os.Exit(2)
	}
	printReport(os.Stdout, r)
	if r.Failed() {
		os.Exit(1)
	}
}

func lint(root, localesDir string) (Report, error) {
	r := Report{Missing: map[string][]string{}}

	used, err := findUsedKeys(root)
	if err != nil {
		return r, fmt.Errorf("scanning sources: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(localesDir, primaryLocale))
	if err != nil {
		return r, fmt.Errorf("loading %s: %w", primaryLocale, err)
	}

	r.Undefined = difference(used, primary)
	r.Orphaned = difference(primary, used)

	files, err := filepath.Glob(filepath.Join(localesDir, "*.yaml"))
	if err != nil {
		return r, err
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return r, fmt.Errorf("loading %s: %w", file, err)
		}
		r.Missing[filepath.Base(file)] = difference(primary, keys)
	}
	return r, nil
}

func printReport(w io.Writer, r Report) {
	for _, k := range r.Undefined {
		fmt.Fprintf(w, "undefined: %s\n", k)
	}
	for _, file := range slices.Sorted(maps.Keys(r.Missing)) {
		for _, k := range r.Missing[file] {
			fmt.Fprintf(w, "missing in %s: %s\n", file, k)
		}
	}
	for _, k := range r.Orphaned {
		fmt.Fprintf(w, "orphaned: %s\n", k)
	}
	if !r.Failed() && len(r.Orphaned) == 0 {
		fmt.Fprintln(w, "all translation files are consistent")
	}
}

// findUsedKeys collects the literal keys of i18n.T calls in non-test Go
// files below root. The tools directory is skipped.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := map[string]struct{}{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range usedKeyRe.FindAllStringSubmatch(string(content), -1) {
			keys[m[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := map[string]struct{}{}
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML adds the dot-joined path of every leaf below node to keys.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	v, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, val := range v {
		next := k
		if prefix != "" {
			next = prefix + "." + k
		}
		flattenYAML(next, val, keys)
	}
}

// difference returns the sorted keys of a that are not in b.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}
