// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"strings"

	"github.com/uptrace/bun"
)

// TokenizeSearchQuery splits a title search into lower-cased tokens.
// Returns nil for empty input.
func TokenizeSearchQuery(q string) []string {
	fields := strings.Fields(q)
	if len(fields) == 0 {
		return nil
	}
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, strings.ToLower(f))
	}
	return out
}

// escapeLike escapes the LIKE wildcards of s with '!', an escape character
// every supported dialect reads literally.
func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}

// applyTitleSearch narrows q to postings whose title contains every token,
// ignoring case.
func applyTitleSearch(q *bun.SelectQuery, query string) *bun.SelectQuery {
	for _, tok := range TokenizeSearchQuery(query) {
		q = q.Where("LOWER(title) LIKE ? ESCAPE '!'", "%"+escapeLike(tok)+"%")
	}
	return q
}
