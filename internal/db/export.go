// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hireu/hireu/internal/model"
	"github.com/klauspost/compress/zstd"
)

// ExportVersion is written into every export archive.
const ExportVersion = 1

// Export is the JSON document inside an export archive.
type Export struct {
	Version    int             `json:"version"`
	ExportedAt time.Time       `json:"exported_at"`
	Postings   []model.Posting `json:"postings"`
}

// ExportPostings writes every posting of s to w as zstd-compressed JSON and
// returns the number of postings written.
func ExportPostings(ctx context.Context, s Store, w io.Writer) (int, error) {
	postings, err := s.ListPostings(ctx, ListOptions{})
	if err != nil {
		return 0, fmt.Errorf("could not list postings: %w", err)
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return 0, fmt.Errorf("could not create zstd writer: %w", err)
	}
	doc := Export{Version: ExportVersion, ExportedAt: time.Now().UTC(), Postings: postings}
	if err := json.NewEncoder(zw).Encode(doc); err != nil {
		_ = zw.Close()
		return 0, fmt.Errorf("could not encode export: %w", err)
	}
	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("could not flush zstd writer: %w", err)
	}
	return len(postings), nil
}

// ImportPostings reads an archive written by ExportPostings and saves each
// posting as a new row. Postings that already exist (same title and
// currency) are skipped. It returns the number of postings imported.
func ImportPostings(ctx context.Context, s Store, r io.Reader) (int, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return 0, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zr.Close()

	var doc Export
	if err := json.NewDecoder(zr).Decode(&doc); err != nil {
		return 0, fmt.Errorf("could not decode json from zstd reader: %w", err)
	}
	if doc.Version != ExportVersion {
		return 0, fmt.Errorf("unsupported export version %d", doc.Version)
	}

	imported := 0
	for _, p := range doc.Postings {
		p.ID = 0
		if err := s.SavePosting(ctx, &p); err != nil {
			if errors.Is(err, ErrDuplicate) {
				dbLogf("db: import skipped duplicate posting %q (%s)", p.Title, p.Currency)
				continue
			}
			return imported, err
		}
		imported++
	}
	return imported, nil
}
