// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/hireu/hireu/internal/model"
)

// Cross-backend integration checks. These tests run only when the
// corresponding DSN environment variable is set.
func TestCrossBackend_Postgres(t *testing.T) {
	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_DSN not set; skipping Postgres integration test")
	}
	exercisePostingRoundTrip(t, "postgres", dsn)
}

func TestCrossBackend_MySQL(t *testing.T) {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		t.Skip("MYSQL_DSN not set; skipping MySQL integration test")
	}
	exercisePostingRoundTrip(t, "mysql", dsn)
}

func exercisePostingRoundTrip(t *testing.T, dbType, dsn string) {
	t.Helper()
	s, err := NewStoreFromDSN(dbType, dsn)
	if err != nil {
		t.Fatalf("%s NewStoreFromDSN failed: %v", dbType, err)
	}
	defer func() { _ = s.Close() }()

	ctx := context.Background()
	p := &model.Posting{
		Title:     fmt.Sprintf("cross-backend %d", time.Now().UnixNano()),
		Currency:  "INR",
		SalaryMin: "500000",
		SalaryMax: "999999999999999",
	}
	if err := s.SavePosting(ctx, p); err != nil {
		t.Fatalf("SavePosting: %v", err)
	}
	defer func() { _ = s.DeletePosting(ctx, p.ID) }()

	got, err := s.GetPosting(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetPosting: %v", err)
	}
	if got.SalaryMax != p.SalaryMax {
		t.Fatalf("salary changed in storage: %q", got.SalaryMax)
	}
	dup := &model.Posting{Title: p.Title, Currency: "INR", SalaryMin: "1"}
	if err := s.SavePosting(ctx, dup); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}
