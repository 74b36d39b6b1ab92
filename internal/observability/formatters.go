// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-ingest/internal/pipeline"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for run reporting.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRunSummary outputs the end-of-run statistics report.
func (p *Printer) PrintRunSummary(stats *pipeline.Stats, dryRun bool) {
	if stats == nil {
		return
	}

	var sb strings.Builder
	if dryRun {
		sb.WriteString("DRY RUN: no records were written\n\n")
	}

	sb.WriteString(fmt.Sprintf("Entries:    %d processed, %d invalid\n\n", stats.EntriesProcessed, stats.EntriesInvalid))
	sb.WriteString("Companies:\n")
	sb.WriteString(fmt.Sprintf("  • created:   %d\n", stats.CompaniesCreated))
	sb.WriteString(fmt.Sprintf("  • existing:  %d\n", stats.CompaniesExisting))
	if stats.CompaniesFailed > 0 {
		sb.WriteString(fmt.Sprintf("  • failed:    %d\n", stats.CompaniesFailed))
	}
	sb.WriteString("\nJobs:\n")
	sb.WriteString(fmt.Sprintf("  • created:   %d\n", stats.JobsCreated))
	sb.WriteString(fmt.Sprintf("  • updated:   %d\n", stats.JobsUpdated))
	sb.WriteString(fmt.Sprintf("  • duplicate: %d\n", stats.JobsDuplicate))
	if stats.JobsFailed > 0 {
		sb.WriteString(fmt.Sprintf("  • failed:    %d", stats.JobsFailed))
	}

	p.printBox("INGESTION RUN SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTopSkills outputs the most frequent skills seen across a run's
// extracted postings, capped at maxItemsToShow.
func (p *Printer) PrintTopSkills(counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	type skillCount struct {
		skill string
		n     int
	}
	ranked := make([]skillCount, 0, len(counts))
	for skill, n := range counts {
		ranked = append(ranked, skillCount{skill, n})
	}
	for i := 0; i < len(ranked); i++ {
		for j := i + 1; j < len(ranked); j++ {
			if ranked[j].n > ranked[i].n || (ranked[j].n == ranked[i].n && ranked[j].skill < ranked[i].skill) {
				ranked[i], ranked[j] = ranked[j], ranked[i]
			}
		}
	}

	var sb strings.Builder
	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("#%d  %s (%d postings)\n", i+1, ranked[i].skill, ranked[i].n))
	}
	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more", len(ranked)-maxItemsToShow))
	}

	p.printBox("TOP EXTRACTED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}
