// Package pipeline drives the ingestion run: it sequences normalization,
// segmentation, extraction, and company resolution per export entry, and
// owns every create/update/skip decision against the persistent store.
package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/career-ingest/internal/db"
)

// CompanyStore is the company repository the pipeline persists through.
// *db.DB satisfies it; tests use in-memory fakes.
type CompanyStore interface {
	ListCompanies(ctx context.Context) ([]db.Company, error)
	CreateCompany(ctx context.Context, input db.CompanyInput) (*db.Company, error)
	UpdateCompany(ctx context.Context, id uuid.UUID, input db.CompanyInput) error
}

// JobStore is the job repository the pipeline persists through.
type JobStore interface {
	ListJobs(ctx context.Context) ([]db.Job, error)
	CreateJob(ctx context.Context, input db.JobInput) (*db.Job, error)
	UpdateJob(ctx context.Context, id uuid.UUID, input db.JobInput) error
}
