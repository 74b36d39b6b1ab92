// Package db provides PostgreSQL persistence for canonical company and job
// records.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate bootstraps the schema. Statements are idempotent so repeated runs
// are safe.
func (db *DB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS companies (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			name_normalized TEXT NOT NULL,
			website TEXT NOT NULL DEFAULT '',
			industry TEXT NOT NULL DEFAULT '',
			size TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			remote_policy TEXT NOT NULL DEFAULT '',
			benefits JSONB NOT NULL DEFAULT '[]',
			tech_stack JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_companies_name_normalized
			ON companies (name_normalized)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_companies_website
			ON companies (website) WHERE website <> ''`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			company_id UUID NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			requirements JSONB NOT NULL DEFAULT '[]',
			responsibilities JSONB NOT NULL DEFAULT '[]',
			location TEXT NOT NULL DEFAULT '',
			job_type TEXT NOT NULL DEFAULT '',
			skills JSONB NOT NULL DEFAULT '[]',
			application_url TEXT NOT NULL DEFAULT '',
			source_url TEXT NOT NULL DEFAULT '',
			posted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_source_url
			ON jobs (source_url) WHERE source_url <> ''`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_company_title
			ON jobs (company_id, lower(title))`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_company_id ON jobs (company_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
