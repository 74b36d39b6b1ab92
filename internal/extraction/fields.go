package extraction

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Field defaults applied when no pattern matched.
const (
	DefaultLocation   = "Remote"
	DefaultJobType    = "Full-time"
	MaxDescriptionLen = 1000

	maxTitleClauseLen = 80
	minTitleClauseLen = 3
)

// JobCandidate is one structured posting extracted from a content section.
// Extraction never fails: missing fields are zero values until ApplyDefaults
// runs.
type JobCandidate struct {
	Title            string
	Description      string
	Requirements     []string
	Responsibilities []string
	Location         string
	JobType          string
	Skills           []string
	ApplicationURL   string
	SourceURL        string
	PostedAt         time.Time
}

// ApplyDefaults fills absent optional fields. Kept as an explicit step so
// an empty extraction result stays distinguishable from a defaulted one
// until persistence.
func (j *JobCandidate) ApplyDefaults(now time.Time) {
	if j.Location == "" {
		j.Location = DefaultLocation
	}
	if j.JobType == "" {
		j.JobType = DefaultJobType
	}
	if j.ApplicationURL == "" {
		j.ApplicationURL = j.SourceURL
	}
	if j.PostedAt.IsZero() {
		j.PostedAt = now
	}
}

// Extractor derives structured job fields from content sections using the
// configured vocabulary.
type Extractor struct {
	vocab Vocabulary
}

// NewExtractor returns an Extractor backed by the given vocabulary.
func NewExtractor(vocab Vocabulary) *Extractor {
	return &Extractor{vocab: vocab}
}

var (
	urlRe = regexp.MustCompile(`https?://[^\s"'<>)\]]+`)

	locationLabelRe = regexp.MustCompile(`(?i)location\s*:\s*([^.|;•\n]+)`)
	jobTypeLabelRe  = regexp.MustCompile(`(?i)(?:job|employment)\s+type\s*:\s*([^.|;•\n]+)`)
	jobTypeWordRe   = regexp.MustCompile(`(?i)\b(full[- ]time|part[- ]time|contract(?:or)?|freelance|internship)\b`)
)

// ExtractFromSection extracts a JobCandidate from one segmented section.
// sourceURL is the page the section came from.
func (e *Extractor) ExtractFromSection(section, sourceURL string) JobCandidate {
	normalized := Normalize(section)
	title := e.ExtractTitle(normalized)

	job := JobCandidate{
		Title:            title,
		Description:      truncate(normalized, MaxDescriptionLen),
		Requirements:     e.ExtractRequirements(normalized, title),
		Responsibilities: e.ExtractResponsibilities(normalized, title),
		Location:         e.ExtractLocation(normalized),
		JobType:          ExtractJobType(normalized),
		Skills:           e.ExtractSkills(normalized),
		ApplicationURL:   ExtractApplicationURL(normalized),
		SourceURL:        sourceURL,
	}
	return job
}

// ExtractFromTitles produces one minimal JobCandidate per unique title
// found in free text. Used when segmentation yielded no usable sections;
// such candidates carry generated descriptions and default fields only.
func (e *Extractor) ExtractFromTitles(text, companyName, sourceURL string) []JobCandidate {
	var jobs []JobCandidate
	for _, title := range BareTitles(text) {
		jobs = append(jobs, JobCandidate{
			Title:       title,
			Description: fmt.Sprintf("Job opening for %s at %s", title, companyName),
			Location:    DefaultLocation,
			JobType:     DefaultJobType,
			SourceURL:   sourceURL,
		})
	}
	return jobs
}

// ExtractTitle derives a title from a section: the first clause before a
// period when it is short, does not start with a stop-word, and contains no
// URL; otherwise the first title-pattern match in the section. Empty when
// neither applies.
func (e *Extractor) ExtractTitle(section string) string {
	clause := section
	if i := strings.IndexByte(section, '.'); i >= 0 {
		clause = section[:i]
	}
	clause = strings.TrimSpace(strings.Trim(strings.TrimSpace(clause), "•*-"))

	if e.acceptableTitle(clause) {
		return clause
	}

	if titles := TitleCandidates(section); len(titles) > 0 {
		return titles[0]
	}
	return ""
}

func (e *Extractor) acceptableTitle(clause string) bool {
	if len(clause) < minTitleClauseLen || len(clause) > maxTitleClauseLen {
		return false
	}
	if strings.Contains(clause, "http://") || strings.Contains(clause, "https://") {
		return false
	}
	lower := strings.ToLower(clause)
	for _, stop := range e.vocab.TitleStopWords {
		if strings.HasPrefix(lower, stop) {
			return false
		}
	}
	return true
}

// ExtractLocation finds a location in a section: an explicit "Location:"
// label first, then remote keywords (normalized to "Remote"), then known
// city names. Empty string when nothing matched.
func (e *Extractor) ExtractLocation(section string) string {
	if m := locationLabelRe.FindStringSubmatch(section); m != nil {
		if loc := strings.TrimSpace(m[1]); loc != "" {
			return loc
		}
	}

	lower := strings.ToLower(section)
	for _, kw := range e.vocab.RemoteKeywords {
		if containsWord(lower, strings.ToLower(kw)) {
			return "Remote"
		}
	}

	for _, city := range e.vocab.Cities {
		if containsWord(lower, strings.ToLower(city)) {
			return city
		}
	}
	return ""
}

// ExtractJobType finds an employment type: an explicit label first, then a
// bare keyword. The result is normalized to Title-Case ("Full-time").
// Empty string when nothing matched.
func ExtractJobType(section string) string {
	if m := jobTypeLabelRe.FindStringSubmatch(section); m != nil {
		if t := normalizeJobType(m[1]); t != "" {
			return t
		}
	}
	if m := jobTypeWordRe.FindString(section); m != "" {
		return normalizeJobType(m)
	}
	return ""
}

func normalizeJobType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	t = strings.ReplaceAll(t, " ", "-")
	switch {
	case strings.HasPrefix(t, "full-time"):
		return "Full-time"
	case strings.HasPrefix(t, "part-time"):
		return "Part-time"
	case strings.HasPrefix(t, "contract"):
		return "Contract"
	case strings.HasPrefix(t, "freelance"):
		return "Freelance"
	case strings.HasPrefix(t, "internship"):
		return "Internship"
	}
	return ""
}

// ExtractSkills returns the vocabulary technologies present in the section,
// matched case-insensitively on word boundaries, in vocabulary order.
func (e *Extractor) ExtractSkills(section string) []string {
	lower := strings.ToLower(section)
	var skills []string
	for _, skill := range e.vocab.Skills {
		if containsWord(lower, strings.ToLower(skill)) {
			skills = append(skills, skill)
		}
	}
	return skills
}

// containsWord reports whether needle occurs in haystack bounded by
// non-alphanumeric characters. Both arguments must already be lower-cased.
// Plain strings.Contains would turn "Java" into a false positive inside
// "JavaScript".
func containsWord(haystack, needle string) bool {
	for from := 0; ; {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(needle)
		if boundaryAt(haystack, start-1) && boundaryAt(haystack, end) {
			return true
		}
		from = start + 1
	}
}

func boundaryAt(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	c := s[i]
	return !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9')
}

// ExtractApplicationURL returns the first URL in the section that looks
// like an application link (contains apply/job/career/position). Empty
// string when none; the caller falls back to the page's source URL.
func ExtractApplicationURL(section string) string {
	for _, raw := range urlRe.FindAllString(section, -1) {
		lower := strings.ToLower(raw)
		if strings.Contains(lower, "apply") || strings.Contains(lower, "job") ||
			strings.Contains(lower, "career") || strings.Contains(lower, "position") {
			return strings.TrimRight(raw, ".,;")
		}
	}
	return ""
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
