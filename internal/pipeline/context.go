package pipeline

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-ingest/internal/db"
)

// KeyStrategy selects the job dedup key. The two crawler generations used
// different keys; a deployment must pick one and stick with it, since
// mixing strategies across runs produces inconsistent duplicate behavior.
type KeyStrategy string

const (
	// KeySourceURL keys a job on its canonicalized source URL (default).
	KeySourceURL KeyStrategy = "source_url"
	// KeyTitleCompany keys a job on lower-cased title plus company ID.
	KeyTitleCompany KeyStrategy = "title_company"
)

// Valid reports whether the strategy is one of the known values.
func (k KeyStrategy) Valid() bool {
	return k == KeySourceURL || k == KeyTitleCompany
}

// RunContext holds the in-run dedup indexes for one pipeline invocation.
// It is seeded from the persistent store when the run starts and updated on
// every create, so repeated candidates within a run collapse onto one
// record. A fresh RunContext per invocation keeps runs from leaking state
// into each other.
type RunContext struct {
	strategy KeyStrategy

	websites map[string]uuid.UUID // normalized website -> company ID
	names    map[string]uuid.UUID // normalized name -> company ID
	jobs     map[string]*db.Job   // dedup key -> seeded job (nil if created this run)
}

// NewRunContext builds an empty context for the given key strategy.
func NewRunContext(strategy KeyStrategy) *RunContext {
	return &RunContext{
		strategy: strategy,
		websites: make(map[string]uuid.UUID),
		names:    make(map[string]uuid.UUID),
		jobs:     make(map[string]*db.Job),
	}
}

// Seed loads existing companies and jobs into the indexes. The two listings
// are independent reads, so they run concurrently; everything after seeding
// is strictly sequential.
func (rc *RunContext) Seed(ctx context.Context, companies CompanyStore, jobs JobStore) error {
	g, gctx := errgroup.WithContext(ctx)

	var companyRows []db.Company
	var jobRows []db.Job

	g.Go(func() error {
		var err error
		companyRows, err = companies.ListCompanies(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		jobRows, err = jobs.ListJobs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	for _, c := range companyRows {
		rc.indexCompany(c.ID, c.Website, c.Name)
	}
	for i := range jobRows {
		j := jobRows[i]
		rc.jobs[rc.jobKey(j.SourceURL, j.Title, j.CompanyID)] = &j
	}
	return nil
}

func (rc *RunContext) indexCompany(id uuid.UUID, website, name string) {
	if w := normalizeWebsite(website); w != "" {
		rc.websites[w] = id
	}
	if n := db.NormalizeName(name); n != "" {
		rc.names[n] = id
	}
}

// lookupCompany returns the indexed company ID matching the candidate's
// website or normalized name, in that order.
func (rc *RunContext) lookupCompany(website, name string) (uuid.UUID, bool) {
	if w := normalizeWebsite(website); w != "" {
		if id, ok := rc.websites[w]; ok {
			return id, true
		}
	}
	if n := db.NormalizeName(name); n != "" {
		if id, ok := rc.names[n]; ok {
			return id, true
		}
	}
	return uuid.Nil, false
}

func (rc *RunContext) jobKey(sourceURL, title string, companyID uuid.UUID) string {
	if rc.strategy == KeyTitleCompany {
		return strings.ToLower(strings.TrimSpace(title)) + "|" + companyID.String()
	}
	return CanonicalURL(sourceURL)
}

func normalizeWebsite(website string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(website)), "/")
}

// CanonicalURL normalizes a source URL for use as a dedup key: lower-cased
// scheme and host, fragment dropped, tracking parameters removed, and the
// remaining query sorted deterministically.
func CanonicalURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	q := u.Query()
	for k := range q {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, "utm_") || lk == "gclid" || lk == "fbclid" || lk == "ref" {
			q.Del(k)
		}
	}
	for k := range q {
		sort.Strings(q[k])
	}
	u.RawQuery = q.Encode()

	return strings.TrimSuffix(u.String(), "/")
}
