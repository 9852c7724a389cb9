// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"

	"github.com/hireu/hireu/internal/model"
	"github.com/uptrace/bun"
)

// ListOptions narrows ListPostings.
type ListOptions struct {
	// Currency keeps postings in this currency only when set.
	Currency string
	// Query keeps postings whose title contains every whitespace
	// separated word of it, ignoring case.
	Query string
	// Limit caps the number of rows; zero means no limit.
	Limit int
}

// Store defines the persistence operations for posting drafts.
type Store interface {
	SavePosting(ctx context.Context, p *model.Posting) error
	GetPosting(ctx context.Context, id int64) (*model.Posting, error)
	ListPostings(ctx context.Context, opts ListOptions) ([]model.Posting, error)
	DeletePosting(ctx context.Context, id int64) error
	BunDB() *bun.DB
	Close() error
}
