package extraction

import (
	"regexp"
	"strings"
)

// requirementHeaders and responsibilityHeaders are ordered: the first
// pattern that matches anywhere in the section wins.
var requirementHeaders = []*regexp.Regexp{
	regexp.MustCompile(`(?i)requirements?\s*:`),
	regexp.MustCompile(`(?i)qualifications?\s*:`),
	regexp.MustCompile(`(?i)what we(?:'|’)?re looking for\s*:`),
	regexp.MustCompile(`(?i)what you(?:'|’)?ll need\s*:`),
	regexp.MustCompile(`(?i)about you\s*:`),
	regexp.MustCompile(`(?i)must[- ]haves?\s*:`),
	regexp.MustCompile(`(?i)skills?(?: (?:and|&) experience)?\s*:`),
}

var responsibilityHeaders = []*regexp.Regexp{
	regexp.MustCompile(`(?i)responsibilit(?:y|ies)\s*:`),
	regexp.MustCompile(`(?i)what you(?:'|’)?ll do\s*:`),
	regexp.MustCompile(`(?i)what you will do\s*:`),
	regexp.MustCompile(`(?i)duties\s*:`),
	regexp.MustCompile(`(?i)(?:the|your) role\s*:`),
	regexp.MustCompile(`(?i)day[- ]to[- ]day\s*:`),
}

// allHeaders terminates a captured span: the next known section header of
// any kind ends the current one.
var allHeaders = regexp.MustCompile(`(?i)(?:requirements?|qualifications?|what we(?:'|’)?re looking for|what you(?:'|’)?ll need|what you(?:'|’)?ll do|what you will do|about you|about us|about the (?:role|company|team)|must[- ]haves?|skills?(?: (?:and|&) experience)?|nice to haves?|responsibilit(?:y|ies)|duties|(?:the|your) role|day[- ]to[- ]day|benefits|perks|compensation|salary|how to apply|why join)\s*:`)

// bulletItemRe splits a captured span into list items: bullet characters,
// dash markers, or "N." numbering.
var bulletItemRe = regexp.MustCompile(`(?:[•▪◦‣]|\s-\s|^\s*-\s|\s\*\s|(?:^|\s)\d{1,2}\.\s)`)

// extractHeaderSpan returns the text between the first matching header and
// the next known header (or end of text). The bool reports whether any
// header matched.
func extractHeaderSpan(section string, headers []*regexp.Regexp) (string, bool) {
	for _, re := range headers {
		loc := re.FindStringIndex(section)
		if loc == nil {
			continue
		}
		rest := section[loc[1]:]
		if next := allHeaders.FindStringIndex(rest); next != nil {
			rest = rest[:next[0]]
		}
		return strings.TrimSpace(rest), true
	}
	return "", false
}

// splitBullets breaks a span into trimmed bullet items. Returns nil when
// the span contains no bullet markers.
func splitBullets(span string) []string {
	if !bulletItemRe.MatchString(span) {
		return nil
	}
	var items []string
	for _, piece := range bulletItemRe.Split(span, -1) {
		if item := strings.TrimSpace(strings.Trim(strings.TrimSpace(piece), ".;")); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// listFromSpan converts a captured header span into list items: bullet
// items when present, otherwise the whole span as a single item.
func listFromSpan(span string) []string {
	if items := splitBullets(span); len(items) > 0 {
		return items
	}
	if span == "" {
		return nil
	}
	return []string{span}
}

// RoleCategory infers a coarse role category from a job title. Used to key
// the generic requirement/responsibility fallbacks.
func RoleCategory(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "engineer") || strings.Contains(t, "developer") || strings.Contains(t, "programmer"):
		return "engineering"
	case strings.Contains(t, "design"):
		return "design"
	case strings.Contains(t, "product"):
		return "product"
	case strings.Contains(t, "manager") || strings.Contains(t, "management") || strings.Contains(t, "director"):
		return "management"
	default:
		return "generic"
	}
}

// ExtractRequirements pulls requirement list items from a section. When no
// requirements header matches, generic statements keyed by the title's role
// category are returned, so the result is always non-empty.
func (e *Extractor) ExtractRequirements(section, title string) []string {
	if span, ok := extractHeaderSpan(section, requirementHeaders); ok {
		if items := listFromSpan(span); len(items) > 0 {
			return items
		}
	}
	return e.genericFallback(e.vocab.GenericRequirements, title)
}

// ExtractResponsibilities pulls responsibility list items from a section,
// with the same generic fallback behavior as ExtractRequirements.
func (e *Extractor) ExtractResponsibilities(section, title string) []string {
	if span, ok := extractHeaderSpan(section, responsibilityHeaders); ok {
		if items := listFromSpan(span); len(items) > 0 {
			return items
		}
	}
	return e.genericFallback(e.vocab.GenericResponsibilities, title)
}

func (e *Extractor) genericFallback(byCategory map[string][]string, title string) []string {
	if items, ok := byCategory[RoleCategory(title)]; ok && len(items) > 0 {
		return items
	}
	return byCategory["generic"]
}
