package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/career-ingest/internal/db"
	"github.com/jonathan/career-ingest/internal/extraction"
	"github.com/jonathan/career-ingest/internal/resolve"
)

// Outcome is the terminal state of one job candidate in the gateway's
// state machine.
type Outcome string

const (
	OutcomeCreated   Outcome = "created"
	OutcomeUpdated   Outcome = "updated"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeFailed    Outcome = "failed"
)

// Gateway owns the create/update/skip decision for resolved candidates and
// the only writes to the persistent store. In dry-run mode it makes every
// decision but issues no writes.
type Gateway struct {
	companies CompanyStore
	jobs      JobStore
	runCtx    *RunContext
	stats     *Stats
	dryRun    bool
}

// NewGateway wires a gateway to its stores and a seeded RunContext.
func NewGateway(companies CompanyStore, jobs JobStore, runCtx *RunContext, stats *Stats, dryRun bool) *Gateway {
	return &Gateway{
		companies: companies,
		jobs:      jobs,
		runCtx:    runCtx,
		stats:     stats,
		dryRun:    dryRun,
	}
}

// ResolveCompany maps a company candidate onto a stored company: an index
// hit by website or normalized name reuses the existing ID and refreshes
// its mutable fields; a miss creates the record and indexes it immediately
// so later entries in the same run collapse onto it.
func (g *Gateway) ResolveCompany(ctx context.Context, cand resolve.CompanyCandidate) (uuid.UUID, error) {
	input := db.CompanyInput{
		Name:         cand.Name,
		Website:      cand.Website,
		Industry:     cand.Industry,
		Size:         cand.Size,
		Location:     cand.Location,
		RemotePolicy: cand.RemotePolicy,
		Benefits:     cand.Benefits,
		TechStack:    cand.TechStack,
	}

	if id, ok := g.runCtx.lookupCompany(cand.Website, cand.Name); ok {
		if !g.dryRun {
			if err := g.companies.UpdateCompany(ctx, id, input); err != nil {
				g.stats.CompaniesFailed++
				return uuid.Nil, fmt.Errorf("failed to update company %q: %w", cand.Name, err)
			}
		}
		// A known name may surface a new website (or vice versa); index
		// both keys against the existing ID.
		g.runCtx.indexCompany(id, cand.Website, cand.Name)
		g.stats.CompaniesExisting++
		return id, nil
	}

	if g.dryRun {
		id := uuid.New()
		g.runCtx.indexCompany(id, cand.Website, cand.Name)
		g.stats.CompaniesCreated++
		return id, nil
	}

	created, err := g.companies.CreateCompany(ctx, input)
	if err != nil {
		g.stats.CompaniesFailed++
		return uuid.Nil, fmt.Errorf("failed to create company %q: %w", cand.Name, err)
	}
	g.runCtx.indexCompany(created.ID, created.Website, created.Name)
	g.stats.CompaniesCreated++
	return created.ID, nil
}

// PersistJob runs one job candidate through the dedup state machine:
// a fresh key creates; a key seeded from the store updates when the
// description changed and skips otherwise; a key created earlier in this
// run always skips.
func (g *Gateway) PersistJob(ctx context.Context, companyID uuid.UUID, cand extraction.JobCandidate) Outcome {
	key := g.runCtx.jobKey(cand.SourceURL, cand.Title, companyID)
	if key == "" || key == "|"+companyID.String() {
		g.stats.JobsFailed++
		return OutcomeFailed
	}

	input := db.JobInput{
		CompanyID:        companyID,
		Title:            cand.Title,
		Description:      cand.Description,
		Requirements:     cand.Requirements,
		Responsibilities: cand.Responsibilities,
		Location:         cand.Location,
		JobType:          cand.JobType,
		Skills:           cand.Skills,
		ApplicationURL:   cand.ApplicationURL,
		SourceURL:        cand.SourceURL,
		PostedAt:         cand.PostedAt,
	}

	if existing, seen := g.runCtx.jobs[key]; seen {
		if existing == nil || existing.Description == cand.Description {
			g.stats.JobsDuplicate++
			return OutcomeDuplicate
		}
		if !g.dryRun {
			if err := g.jobs.UpdateJob(ctx, existing.ID, input); err != nil {
				g.stats.JobsFailed++
				return OutcomeFailed
			}
		}
		existing.Description = cand.Description
		g.stats.JobsUpdated++
		return OutcomeUpdated
	}

	if !g.dryRun {
		if _, err := g.jobs.CreateJob(ctx, input); err != nil {
			g.stats.JobsFailed++
			return OutcomeFailed
		}
	}
	g.runCtx.jobs[key] = nil
	g.stats.JobsCreated++
	return OutcomeCreated
}
