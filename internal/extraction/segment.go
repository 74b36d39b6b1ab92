package extraction

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// titlePatterns are the ordered role-noun patterns used both to segment
// content into per-posting sections and as the title fallback. Kept as a
// data list so new patterns can be appended without touching the scanner.
var titlePatterns = []*regexp.Regexp{
	// "<Seniority>? <Noun>{0,3} <RoleNoun>". Noun tokens may carry an
	// inner dot ("Node.js") but not a trailing one, so sentence-ending
	// words do not glue onto a following title.
	regexp.MustCompile(`(?i)(?:(?:senior|sr\.?|junior|jr\.?|staff|principal|lead|head of|chief|associate|mid[- ]level|entry[- ]level)\s+)?(?:[A-Za-z][A-Za-z+#/-]*(?:\.[A-Za-z]+)?\s+){0,3}(?:engineer|developer|programmer|manager|designer|analyst|architect|scientist|consultant|specialist|administrator|director|intern)s?\b`),
	// "VP of X" / "Head of X" style titles
	regexp.MustCompile(`(?i)(?:vp|vice president|head)\s+of\s+(?:[A-Za-z][A-Za-z&/-]*\s*){1,3}`),
}

// sectionDelimiters are tried in order when no title split points are found.
var sectionDelimiters = []string{"---", "***", "•••", "___", "\n\n"}

// splitBoundary reports whether a title match starting at index i is a
// plausible section heading. Mid-sentence matches ("a software engineer")
// are rejected: the first non-blank character before the match must be
// start-of-string, a newline, or a list marker.
func splitBoundary(text string, i int) bool {
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:i])
		if r == ' ' || r == '\t' {
			i -= size
			continue
		}
		switch r {
		case '\n', '\r', '•', '-', '*', ',':
			return true
		}
		return false
	}
	return true
}

// titleMatchStarts collects accepted split-point indexes across all title
// patterns, sorted ascending and deduplicated.
func titleMatchStarts(text string) []int {
	seen := make(map[int]bool)
	var starts []int
	for _, re := range titlePatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if seen[loc[0]] {
				continue
			}
			if !splitBoundary(text, loc[0]) {
				continue
			}
			seen[loc[0]] = true
			starts = append(starts, loc[0])
		}
	}
	sort.Ints(starts)
	return starts
}

// Segment splits a content blob into candidate per-posting sections.
// Title-pattern split points are preferred; failing that the first known
// delimiter present in the text is used; failing that the whole text is
// returned as a single section. For any non-empty input the result is
// non-empty.
func Segment(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	if starts := titleMatchStarts(text); len(starts) > 0 {
		var sections []string
		for i, start := range starts {
			end := len(text)
			if i+1 < len(starts) {
				end = starts[i+1]
			}
			if s := strings.TrimSpace(text[start:end]); s != "" {
				sections = append(sections, s)
			}
		}
		if len(sections) > 0 {
			return sections
		}
	}

	for _, delim := range sectionDelimiters {
		if !strings.Contains(text, delim) {
			continue
		}
		var sections []string
		for _, piece := range strings.Split(text, delim) {
			if s := strings.TrimSpace(piece); s != "" {
				sections = append(sections, s)
			}
		}
		if len(sections) > 0 {
			return sections
		}
	}

	return []string{trimmed}
}

// TitleCandidates returns the distinct accepted title-pattern matches in
// the text, in order of appearance. Only matches that sit on a section
// boundary count, so it mirrors what Segment would split on.
func TitleCandidates(text string) []string {
	seen := make(map[string]bool)
	var titles []string
	for _, start := range titleMatchStarts(text) {
		for _, re := range titlePatterns {
			loc := re.FindStringIndex(text[start:])
			if loc == nil || loc[0] != 0 {
				continue
			}
			title := strings.TrimSpace(text[start : start+loc[1]])
			key := strings.ToLower(title)
			if title != "" && !seen[key] {
				seen[key] = true
				titles = append(titles, title)
			}
			break
		}
	}
	return titles
}

// BareTitles scans free-running prose for title-pattern matches without
// the boundary check. Used as the last resort when segmentation degraded
// to a single blob and no structured title could be pulled from it.
func BareTitles(text string) []string {
	seen := make(map[string]bool)
	var titles []string
	for _, re := range titlePatterns {
		for _, m := range re.FindAllString(text, -1) {
			title := strings.TrimSpace(m)
			key := strings.ToLower(title)
			if title != "" && !seen[key] {
				seen[key] = true
				titles = append(titles, title)
			}
		}
	}
	return titles
}
