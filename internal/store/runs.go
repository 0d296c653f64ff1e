package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-screener/internal/types"
)

// CreateMatchRun records a matching run and its results in one transaction
// and returns the run ID. Result rows carry their display position so the
// ranking order survives the round trip.
func (db *DB) CreateMatchRun(ctx context.Context, run *types.MatchRun, results []types.ResumeResult) (uuid.UUID, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO match_runs (job_description, mandatory_keywords, optional_keywords, min_experience)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		run.JobDescription, run.Mandatory, run.Optional, run.MinExperience,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create match run: %w", err)
	}

	for i, res := range results {
		sections, err := json.Marshal(res.FoundSections)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal found sections for %s: %w", res.Filename, err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO match_results (run_id, position, filename, score, experience, experience_met, found_sections)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			id, i, res.Filename, res.Score, res.Experience, res.ExperienceMet, sections,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to save result for %s: %w", res.Filename, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit match run: %w", err)
	}
	return id, nil
}

// GetMatchRun fetches one run by ID. Returns nil when the run does not exist.
func (db *DB) GetMatchRun(ctx context.Context, id uuid.UUID) (*types.MatchRun, error) {
	var run types.MatchRun
	err := db.pool.QueryRow(ctx,
		`SELECT r.id, r.job_description, r.mandatory_keywords, r.optional_keywords, r.min_experience, r.created_at,
		        (SELECT COUNT(*) FROM match_results WHERE run_id = r.id)
		 FROM match_runs r WHERE r.id = $1`,
		id,
	).Scan(&run.ID, &run.JobDescription, &run.Mandatory, &run.Optional, &run.MinExperience, &run.CreatedAt, &run.ResumeCount)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match run: %w", err)
	}
	return &run, nil
}

// ListMatchRuns returns runs ordered newest first, capped at limit.
func (db *DB) ListMatchRuns(ctx context.Context, limit int) ([]types.MatchRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT r.id, r.job_description, r.mandatory_keywords, r.optional_keywords, r.min_experience, r.created_at,
		        (SELECT COUNT(*) FROM match_results WHERE run_id = r.id)
		 FROM match_runs r ORDER BY r.created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list match runs: %w", err)
	}
	defer rows.Close()

	runs := make([]types.MatchRun, 0)
	for rows.Next() {
		var run types.MatchRun
		if err := rows.Scan(&run.ID, &run.JobDescription, &run.Mandatory, &run.Optional,
			&run.MinExperience, &run.CreatedAt, &run.ResumeCount); err != nil {
			return nil, fmt.Errorf("failed to scan match run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetMatchResults returns the stored results of a run in display order.
func (db *DB) GetMatchResults(ctx context.Context, runID uuid.UUID) ([]types.ResumeResult, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT filename, score, experience, experience_met, found_sections
		 FROM match_results WHERE run_id = $1 ORDER BY position`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get match results: %w", err)
	}
	defer rows.Close()

	results := make([]types.ResumeResult, 0)
	for rows.Next() {
		var res types.ResumeResult
		var sections []byte
		if err := rows.Scan(&res.Filename, &res.Score, &res.Experience, &res.ExperienceMet, &sections); err != nil {
			return nil, fmt.Errorf("failed to scan match result: %w", err)
		}
		if err := json.Unmarshal(sections, &res.FoundSections); err != nil {
			return nil, fmt.Errorf("failed to decode found sections for %s: %w", res.Filename, err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
