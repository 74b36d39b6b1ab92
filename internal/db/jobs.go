package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

const jobColumns = `id, company_id, title, description, requirements,
	responsibilities, location, job_type, skills, application_url, source_url,
	posted_at, created_at, updated_at`

// jsonList encodes a string slice for a JSONB column; nil becomes "[]" so
// stored lists are never SQL NULL.
func jsonList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func scanJob(row interface{ Scan(dest ...any) error }) (*Job, error) {
	var j Job
	err := row.Scan(&j.ID, &j.CompanyID, &j.Title, &j.Description,
		&j.Requirements, &j.Responsibilities, &j.Location, &j.JobType,
		&j.Skills, &j.ApplicationURL, &j.SourceURL, &j.PostedAt,
		&j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// ListJobs returns every persisted job. Used to seed the in-run dedup
// index at the start of an ingestion run.
func (db *DB) ListJobs(ctx context.Context) ([]Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

// CreateJob inserts a new job and returns the stored record.
func (db *DB) CreateJob(ctx context.Context, input JobInput) (*Job, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("job title cannot be empty")
	}
	if input.CompanyID == uuid.Nil {
		return nil, fmt.Errorf("job requires a company")
	}

	j, err := scanJob(db.pool.QueryRow(ctx,
		`INSERT INTO jobs (company_id, title, description, requirements,
			responsibilities, location, job_type, skills, application_url,
			source_url, posted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+jobColumns,
		input.CompanyID, input.Title, input.Description,
		jsonList(input.Requirements), jsonList(input.Responsibilities),
		input.Location, input.JobType, jsonList(input.Skills),
		input.ApplicationURL, input.SourceURL, input.PostedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return j, nil
}

// UpdateJob refreshes the mutable fields of an existing job.
func (db *DB) UpdateJob(ctx context.Context, id uuid.UUID, input JobInput) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE jobs SET
			description = $2,
			requirements = $3,
			responsibilities = $4,
			location = $5,
			job_type = $6,
			skills = $7,
			application_url = $8,
			updated_at = NOW()
		 WHERE id = $1`,
		id, input.Description, jsonList(input.Requirements),
		jsonList(input.Responsibilities), input.Location, input.JobType,
		jsonList(input.Skills), input.ApplicationURL,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}
