// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hireu/hireu/internal/model"
	"github.com/hireu/hireu/internal/numinput"
	"github.com/uptrace/bun"
)

// PostingModel is the bun mapping of the postings table.
type PostingModel struct {
	bun.BaseModel `bun:"table:postings"`
	ID            int64     `bun:"id,pk,autoincrement"`
	Title         string    `bun:"title"`
	Currency      string    `bun:"currency"`
	SalaryMin     string    `bun:"salary_min"`
	SalaryMax     string    `bun:"salary_max"`
	CreatedAt     time.Time `bun:"created_at"`
}

func postingModelToModel(pm PostingModel) model.Posting {
	return model.Posting{
		ID:        pm.ID,
		Title:     pm.Title,
		Currency:  pm.Currency,
		SalaryMin: pm.SalaryMin,
		SalaryMax: pm.SalaryMax,
		CreatedAt: pm.CreatedAt,
	}
}

// BunStore is the bun-backed Store used for every supported engine.
type BunStore struct {
	bun *bun.DB
}

// BunDB returns the underlying *bun.DB for advanced callers.
func (s *BunStore) BunDB() *bun.DB { return s.bun }

// Close closes the underlying connection pool.
func (s *BunStore) Close() error { return s.bun.Close() }

// SavePosting inserts p when p.ID is zero and updates it otherwise. Salary
// values must be raw digit strings; a new posting gets its ID and creation
// time filled in.
func (s *BunStore) SavePosting(ctx context.Context, p *model.Posting) error {
	for _, raw := range []string{p.SalaryMin, p.SalaryMax} {
		if raw == "" {
			continue
		}
		if _, err := numinput.Value(raw); err != nil {
			return fmt.Errorf("posting %q: %w", p.Title, err)
		}
	}

	pm := &PostingModel{
		ID:        p.ID,
		Title:     p.Title,
		Currency:  p.Currency,
		SalaryMin: p.SalaryMin,
		SalaryMax: p.SalaryMax,
		CreatedAt: p.CreatedAt,
	}

	if p.ID == 0 {
		if pm.CreatedAt.IsZero() {
			pm.CreatedAt = time.Now().UTC().Truncate(time.Second)
		}
		if _, err := s.bun.NewInsert().
			Model(pm).
			Column("title", "currency", "salary_min", "salary_max", "created_at").
			Returning("id").
			Exec(ctx); err != nil {
			return MapDBError(err)
		}
		p.ID, p.CreatedAt = pm.ID, pm.CreatedAt
		dbLogf("db: saved posting %d (%s)", p.ID, p.Title)
		return nil
	}

	res, err := s.bun.NewUpdate().
		Model(pm).
		Column("title", "currency", "salary_min", "salary_max").
		WherePK().
		Exec(ctx)
	if err != nil {
		return MapDBError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("posting %d: %w", p.ID, ErrNotFound)
	}
	dbLogf("db: updated posting %d", p.ID)
	return nil
}

// GetPosting returns the posting with id or ErrNotFound.
func (s *BunStore) GetPosting(ctx context.Context, id int64) (*model.Posting, error) {
	var pm PostingModel
	err := s.bun.NewSelect().Model(&pm).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("posting %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	p := postingModelToModel(pm)
	return &p, nil
}

// ListPostings returns postings newest first.
func (s *BunStore) ListPostings(ctx context.Context, opts ListOptions) ([]model.Posting, error) {
	var pms []PostingModel
	q := s.bun.NewSelect().Model(&pms).OrderExpr("created_at DESC, id DESC")
	if opts.Currency != "" {
		q = q.Where("currency = ?", opts.Currency)
	}
	q = applyTitleSearch(q, opts.Query)
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]model.Posting, 0, len(pms))
	for _, pm := range pms {
		out = append(out, postingModelToModel(pm))
	}
	return out, nil
}

// DeletePosting removes the posting with id or returns ErrNotFound.
func (s *BunStore) DeletePosting(ctx context.Context, id int64) error {
	res, err := s.bun.NewDelete().Model((*PostingModel)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("posting %d: %w", id, ErrNotFound)
	}
	dbLogf("db: deleted posting %d", id)
	return nil
}

var _ Store = (*BunStore)(nil)
