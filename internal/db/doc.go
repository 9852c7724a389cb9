// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db stores job posting drafts for HireU.
//
// A single bun-backed Store serves SQLite (modernc), PostgreSQL (pgx) and
// MySQL. Schema changes ship as embedded per-dialect SQL files under
// migrations/ and are recorded in schema_migrations.
//
// Salary columns hold raw digit strings exactly as the salary field emits
// them; grouping is a display concern and never reaches the database.
//
// Testing notes
//   - Prefer `db.New("sqlite", ":memory:")` in tests that need real DB
//     semantics and migrations.
package db
