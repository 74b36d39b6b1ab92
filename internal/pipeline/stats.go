package pipeline

import "fmt"

// Stats accumulates counters for one ingestion run. Scoped to the
// invocation and discarded after reporting.
type Stats struct {
	EntriesProcessed int
	EntriesInvalid   int

	CompaniesCreated  int
	CompaniesExisting int
	CompaniesFailed   int

	JobsCreated   int
	JobsUpdated   int
	JobsDuplicate int
	JobsFailed    int

	// SkillCounts tallies, per vocabulary skill, how many persisted
	// postings mentioned it.
	SkillCounts map[string]int
}

func (s *Stats) countSkills(skills []string) {
	if s.SkillCounts == nil {
		s.SkillCounts = make(map[string]int)
	}
	for _, skill := range skills {
		s.SkillCounts[skill]++
	}
}

// Summary renders the end-of-run report.
func (s *Stats) Summary() string {
	return fmt.Sprintf(
		"entries: %d processed, %d invalid\n"+
			"companies: %d new, %d existing, %d failed\n"+
			"jobs: %d new, %d updated, %d duplicate, %d failed",
		s.EntriesProcessed, s.EntriesInvalid,
		s.CompaniesCreated, s.CompaniesExisting, s.CompaniesFailed,
		s.JobsCreated, s.JobsUpdated, s.JobsDuplicate, s.JobsFailed,
	)
}
