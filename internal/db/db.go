// Package db provides PostgreSQL persistence for resume analyses.
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

// Migrate creates the analyses table if it does not exist. The store
// keeps structured results as JSONB and promotes the fields queried by
// listings and rankings to columns.
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS resume_analyses (
			id UUID PRIMARY KEY,
			filename TEXT NOT NULL,
			candidate_name TEXT NOT NULL DEFAULT '',
			candidate_email TEXT NOT NULL DEFAULT '',
			department TEXT NOT NULL DEFAULT '',
			classification_status TEXT NOT NULL DEFAULT '',
			ranking_score DOUBLE PRECISION NOT NULL DEFAULT 0,
			fraud_score DOUBLE PRECISION NOT NULL DEFAULT 0,
			experience_years DOUBLE PRECISION NOT NULL DEFAULT 0,
			personal_info JSONB NOT NULL,
			skills JSONB NOT NULL,
			experience JSONB NOT NULL,
			education JSONB NOT NULL,
			fraud JSONB NOT NULL,
			eligibility JSONB,
			decision JSONB,
			processing_time_ms BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_resume_analyses_department
			ON resume_analyses (department, ranking_score DESC);
		CREATE INDEX IF NOT EXISTS idx_resume_analyses_created_at
			ON resume_analyses (created_at DESC);
	`)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
