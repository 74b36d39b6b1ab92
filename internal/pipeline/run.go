package pipeline

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/jonathan/career-ingest/internal/extraction"
	"github.com/jonathan/career-ingest/internal/ingestion"
	"github.com/jonathan/career-ingest/internal/resolve"
)

// Options configures a pipeline run.
type Options struct {
	Strategy KeyStrategy
	DryRun   bool
	Verbose  bool

	// Now overrides the clock in tests; nil means time.Now.
	Now func() time.Time
}

// Runner executes ingestion runs. One Runner may run multiple times; each
// Run seeds a fresh RunContext so no dedup state leaks between runs.
type Runner struct {
	companies CompanyStore
	jobs      JobStore
	extractor *extraction.Extractor
	opts      Options
}

// NewRunner wires a runner to its stores and extractor.
func NewRunner(companies CompanyStore, jobs JobStore, extractor *extraction.Extractor, opts Options) *Runner {
	if opts.Strategy == "" {
		opts.Strategy = KeySourceURL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Runner{companies: companies, jobs: jobs, extractor: extractor, opts: opts}
}

// Run processes every export entry sequentially and returns the run's
// statistics. Per-entry and per-job failures are logged and counted, never
// fatal; only a store failure while seeding the dedup indexes aborts.
func (r *Runner) Run(ctx context.Context, entries []ingestion.ExportEntry) (*Stats, error) {
	stats := &Stats{}
	runCtx := NewRunContext(r.opts.Strategy)
	if err := runCtx.Seed(ctx, r.companies, r.jobs); err != nil {
		return nil, err
	}
	gateway := NewGateway(r.companies, r.jobs, runCtx, stats, r.opts.DryRun)

	for i, entry := range entries {
		if !entry.Valid() {
			stats.EntriesInvalid++
			log.Printf("[entry %d] skipped: missing name or uri", i+1)
			continue
		}
		r.processEntry(ctx, gateway, entry, stats)
		stats.EntriesProcessed++
	}

	return stats, nil
}

func (r *Runner) processEntry(ctx context.Context, gateway *Gateway, entry ingestion.ExportEntry, stats *Stats) {
	company, jobs := r.extractEntry(entry)

	if r.opts.Verbose {
		log.Printf("[VERBOSE] entry %q: company=%q website=%q jobs=%d",
			entry.Name, company.Name, company.Website, len(jobs))
	}

	companyID, err := gateway.ResolveCompany(ctx, company)
	if err != nil {
		// No orphan jobs: everything extracted from this entry is skipped.
		log.Printf("[entry %q] company persist failed, skipping %d job(s): %v",
			entry.Name, len(jobs), err)
		stats.JobsFailed += len(jobs)
		return
	}

	for _, job := range jobs {
		outcome := gateway.PersistJob(ctx, companyID, job)
		if outcome != OutcomeFailed {
			stats.countSkills(job.Skills)
		}
		if r.opts.Verbose {
			log.Printf("[VERBOSE] job %q -> %s", job.Title, outcome)
		}
	}
}

// extractEntry converts one export entry into a company candidate and its
// job candidates. Extraction is total: malformed content degrades to fewer
// or emptier candidates, never an error.
func (r *Runner) extractEntry(entry ingestion.ExportEntry) (resolve.CompanyCandidate, []extraction.JobCandidate) {
	name := resolve.ResolveName(entry.Name)
	website := resolve.ResolveWebsite(entry.URI)

	content := extraction.StripHTML(entry.Content)
	jobs := r.extractJobs(content, name, entry.URI)

	now := r.opts.Now().UTC()
	techStack := make(map[string]bool)
	var stack []string
	for i := range jobs {
		jobs[i].ApplyDefaults(now)
		for _, skill := range jobs[i].Skills {
			if !techStack[skill] {
				techStack[skill] = true
				stack = append(stack, skill)
			}
		}
	}

	return resolve.CompanyCandidate{
		Name:      name,
		Website:   website,
		TechStack: stack,
	}, jobs
}

// extractJobs segments content and extracts per-section candidates. When
// segmentation degraded to the whole blob and no title can be read from
// it, the bare-title scan produces minimal candidates instead.
func (r *Runner) extractJobs(content, companyName, sourceURL string) []extraction.JobCandidate {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil
	}

	sections := extraction.Segment(content)

	if len(sections) == 1 && sections[0] == trimmed {
		cand := r.extractor.ExtractFromSection(sections[0], sourceURL)
		if cand.Title != "" {
			return []extraction.JobCandidate{cand}
		}
		return r.extractor.ExtractFromTitles(content, companyName, sourceURL)
	}

	var jobs []extraction.JobCandidate
	for _, section := range sections {
		cand := r.extractor.ExtractFromSection(section, sourceURL)
		if cand.Title == "" {
			if r.opts.Verbose {
				log.Printf("[VERBOSE] section without title skipped (%d chars)", len(section))
			}
			continue
		}
		jobs = append(jobs, cand)
	}
	return jobs
}
