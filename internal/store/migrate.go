package store

import (
	"context"
	"fmt"
)

// Migrate creates the screener tables if they do not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,
		`CREATE TABLE IF NOT EXISTS match_runs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			job_description TEXT NOT NULL,
			mandatory_keywords TEXT[] NOT NULL,
			optional_keywords TEXT[] NOT NULL DEFAULT '{}',
			min_experience DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS match_results (
			run_id UUID NOT NULL REFERENCES match_runs(id) ON DELETE CASCADE,
			position INT NOT NULL,
			filename TEXT NOT NULL,
			score DOUBLE PRECISION NOT NULL,
			experience DOUBLE PRECISION,
			experience_met BOOLEAN NOT NULL,
			found_sections JSONB NOT NULL,
			PRIMARY KEY (run_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_match_results_run_id ON match_results(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
