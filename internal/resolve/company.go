// Package resolve derives canonical company identity (display name and
// website) from crawled career-page metadata. Postings hosted on third-party
// applicant-tracking systems hide the employer's real domain, so the website
// resolution is a documented best-effort guess, not a verified lookup.
package resolve

import (
	"net/url"
	"regexp"
	"strings"
)

// CompanyCandidate is the resolved employer for one export entry.
type CompanyCandidate struct {
	Name         string
	Website      string
	Industry     string
	Size         string
	Location     string
	RemotePolicy string
	Benefits     []string
	TechStack    []string
}

// atsHosts maps known applicant-tracking-system apex domains to how the
// company slug is carried: in the first path segment or in a subdomain
// label.
var atsHosts = []string{
	"greenhouse.io",
	"lever.co",
	"workable.com",
	"recruitee.com",
	"ashbyhq.com",
	"breezy.hr",
	"applytojob.com",
}

// genericSubdomains never identify a company.
var genericSubdomains = map[string]bool{
	"www": true, "jobs": true, "careers": true, "boards": true,
	"apply": true, "app": true, "hire": true,
}

// noiseTokens are suffix/prefix words stripped from display names.
var noiseTokens = []string{
	"careers", "career", "jobs", "job openings", "openings", "vacancies",
	"join us", "join", "hiring", "we're hiring", "work with us", "job board",
}

// separator-delimited noise: "Acme | Careers", "Careers – Acme",
// "Careers at Acme".
var (
	separatorRe = regexp.MustCompile(`\s*\|\s*|\s+[–—\-:·]\s+`)
	atPrefixRe  = regexp.MustCompile(`(?i)^(?:careers?|jobs?|openings?|work(?:ing)?)\s+(?:at|with)\s+(.+)$`)
)

// ResolveName strips job-board noise from a display name:
// "Acme Inc | Careers" and "Careers at Acme Inc" both resolve to "Acme Inc".
// Falls back to the trimmed input when stripping would leave nothing.
func ResolveName(rawName string) string {
	name := strings.TrimSpace(rawName)
	if name == "" {
		return ""
	}

	if m := atPrefixRe.FindStringSubmatch(name); m != nil {
		name = strings.TrimSpace(m[1])
	}

	// Separator-delimited form: keep the first part that is not noise.
	if parts := separatorRe.Split(name, -1); len(parts) > 1 {
		for _, part := range parts {
			part = strings.TrimSpace(part)
			if part != "" && !isNoiseToken(part) {
				name = part
				break
			}
		}
	}

	// Bare trailing-token removal: "Acme Careers" -> "Acme".
	for {
		stripped := false
		for _, tok := range noiseTokens {
			lower := strings.ToLower(name)
			if lower != tok && strings.HasSuffix(lower, " "+tok) {
				name = strings.TrimSpace(name[:len(name)-len(tok)-1])
				stripped = true
			}
		}
		if !stripped {
			break
		}
	}

	if name == "" {
		return strings.TrimSpace(rawName)
	}
	return name
}

func isNoiseToken(s string) bool {
	lower := strings.ToLower(strings.TrimSpace(s))
	for _, tok := range noiseTokens {
		if lower == tok {
			return true
		}
	}
	return false
}

// ResolveWebsite derives a canonical https://<host> website from a source
// URI. For known ATS hosts the company slug (first path segment, else first
// non-generic subdomain label) is synthesized into https://<slug>.com, a
// best-effort guess that is wrong whenever the slug differs from the apex
// domain. Other hosts are returned directly. Empty string when the URI has
// no usable host.
func ResolveWebsite(uri string) string {
	u, err := url.Parse(strings.TrimSpace(uri))
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.ToLower(u.Hostname())

	if ats := matchATSHost(host); ats != "" {
		if slug := atsSlug(u, host, ats); slug != "" {
			return "https://" + slug + ".com"
		}
	}

	return "https://" + strings.TrimPrefix(host, "www.")
}

func matchATSHost(host string) string {
	for _, ats := range atsHosts {
		if host == ats || strings.HasSuffix(host, "."+ats) {
			return ats
		}
	}
	return ""
}

// atsSlug extracts the company slug from an ATS-hosted URL: the first path
// segment ("boards.greenhouse.io/acme/jobs/1" -> "acme"), or failing that
// the first non-generic subdomain label ("acme.recruitee.com" -> "acme").
func atsSlug(u *url.URL, host, ats string) string {
	for _, seg := range strings.Split(u.Path, "/") {
		if seg = strings.TrimSpace(seg); seg != "" {
			return sanitizeSlug(seg)
		}
	}

	sub := strings.TrimSuffix(host, ats)
	sub = strings.TrimSuffix(sub, ".")
	for _, label := range strings.Split(sub, ".") {
		if label != "" && !genericSubdomains[label] {
			return sanitizeSlug(label)
		}
	}
	return ""
}

var slugCleanRe = regexp.MustCompile(`[^a-z0-9-]`)

func sanitizeSlug(seg string) string {
	return slugCleanRe.ReplaceAllString(strings.ToLower(seg), "")
}
