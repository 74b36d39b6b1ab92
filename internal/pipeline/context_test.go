package pipeline

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty input", "", ""},
		{"Plain URL unchanged", "https://acme.com/jobs/1", "https://acme.com/jobs/1"},
		{"Host lowercased", "https://ACME.com/Jobs/1", "https://acme.com/Jobs/1"},
		{"Fragment dropped", "https://acme.com/jobs/1#apply", "https://acme.com/jobs/1"},
		{"Trailing slash trimmed", "https://acme.com/jobs/1/", "https://acme.com/jobs/1"},
		{"Tracking params stripped", "https://acme.com/jobs/1?utm_source=x&utm_medium=y&gclid=z", "https://acme.com/jobs/1"},
		{"Fbclid and ref stripped", "https://acme.com/jobs/1?fbclid=a&ref=b", "https://acme.com/jobs/1"},
		{"Real params kept sorted", "https://acme.com/jobs?page=2&dept=eng", "https://acme.com/jobs?dept=eng&page=2"},
		{"Mixed params", "https://acme.com/jobs?utm_campaign=c&dept=eng", "https://acme.com/jobs?dept=eng"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalURL(tt.input))
		})
	}
}

func TestCanonicalURLCollapsesVariants(t *testing.T) {
	variants := []string{
		"https://acme.com/jobs/1",
		"https://ACME.com/jobs/1/",
		"https://acme.com/jobs/1?utm_source=linkedin",
		"https://acme.com/jobs/1#top",
	}
	want := CanonicalURL(variants[0])
	for _, v := range variants {
		assert.Equal(t, want, CanonicalURL(v), "variant %q", v)
	}
}

func TestKeyStrategyValid(t *testing.T) {
	assert.True(t, KeySourceURL.Valid())
	assert.True(t, KeyTitleCompany.Valid())
	assert.False(t, KeyStrategy("").Valid())
	assert.False(t, KeyStrategy("title").Valid())
}

func TestRunContextJobKey(t *testing.T) {
	companyID := uuid.New()

	t.Run("Source URL strategy canonicalizes", func(t *testing.T) {
		rc := NewRunContext(KeySourceURL)
		k1 := rc.jobKey("https://acme.com/jobs/1?utm_source=x", "Engineer", companyID)
		k2 := rc.jobKey("https://ACME.com/jobs/1", "Designer", uuid.New())
		assert.Equal(t, k1, k2)
	})

	t.Run("Title-company strategy ignores URL", func(t *testing.T) {
		rc := NewRunContext(KeyTitleCompany)
		k1 := rc.jobKey("https://acme.com/jobs/1", "  Senior Engineer ", companyID)
		k2 := rc.jobKey("https://acme.com/jobs/2", "senior engineer", companyID)
		assert.Equal(t, k1, k2)

		k3 := rc.jobKey("https://acme.com/jobs/1", "senior engineer", uuid.New())
		assert.NotEqual(t, k1, k3)
	})
}

func TestLookupCompanyPrefersWebsite(t *testing.T) {
	rc := NewRunContext(KeySourceURL)
	byWebsite := uuid.New()
	byName := uuid.New()

	rc.indexCompany(byWebsite, "https://acme.com", "Acme Labs")
	rc.indexCompany(byName, "", "Acme")

	id, ok := rc.lookupCompany("https://ACME.com/", "Acme")
	assert.True(t, ok)
	assert.Equal(t, byWebsite, id)

	id, ok = rc.lookupCompany("", "acme")
	assert.True(t, ok)
	assert.Equal(t, byName, id)

	_, ok = rc.lookupCompany("https://other.com", "Initech")
	assert.False(t, ok)
}
