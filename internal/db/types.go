package db

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Company is a canonical company record. Website and the normalized name
// are its dedup keys: at most one company exists per distinct website or
// normalized name.
type Company struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	NameNormalized string    `json:"name_normalized"`
	Website        string    `json:"website,omitempty"`
	Industry       string    `json:"industry,omitempty"`
	Size           string    `json:"size,omitempty"`
	Location       string    `json:"location,omitempty"`
	RemotePolicy   string    `json:"remote_policy,omitempty"`
	Benefits       []string  `json:"benefits,omitempty"`
	TechStack      []string  `json:"tech_stack,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Job is a persisted job posting tied to a company.
type Job struct {
	ID               uuid.UUID `json:"id"`
	CompanyID        uuid.UUID `json:"company_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	Requirements     []string  `json:"requirements,omitempty"`
	Responsibilities []string  `json:"responsibilities,omitempty"`
	Location         string    `json:"location,omitempty"`
	JobType          string    `json:"job_type,omitempty"`
	Skills           []string  `json:"skills,omitempty"`
	ApplicationURL   string    `json:"application_url,omitempty"`
	SourceURL        string    `json:"source_url,omitempty"`
	PostedAt         time.Time `json:"posted_at"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CompanyInput holds the writable fields for company create/update.
type CompanyInput struct {
	Name         string
	Website      string
	Industry     string
	Size         string
	Location     string
	RemotePolicy string
	Benefits     []string
	TechStack    []string
}

// JobInput holds the writable fields for job create/update.
type JobInput struct {
	CompanyID        uuid.UUID
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

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]`)

// NormalizeName converts a company name to its matching form.
// Example: "Affirm, Inc." -> "affirminc"
func NormalizeName(name string) string {
	return nonAlnumRe.ReplaceAllString(strings.ToLower(name), "")
}
