package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleCategory(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Senior Software Engineer", "engineering"},
		{"Backend Developer", "engineering"},
		{"Engineering Manager", "engineering"},
		{"Product Designer", "design"},
		{"Product Manager", "product"},
		{"Director of Operations", "management"},
		{"Accountant", "generic"},
		{"", "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoleCategory(tt.title))
		})
	}
}

func TestExtractRequirements(t *testing.T) {
	e := NewExtractor(DefaultVocabulary())

	t.Run("Bulleted requirements header", func(t *testing.T) {
		section := "Backend Engineer Requirements: • 5 years Python • AWS experience Benefits: health insurance"
		assert.Equal(t, []string{"5 years Python", "AWS experience"},
			e.ExtractRequirements(section, "Backend Engineer"))
	})

	t.Run("Qualifications header", func(t *testing.T) {
		section := "Qualifications: • Strong SQL • Kind to teammates"
		assert.Equal(t, []string{"Strong SQL", "Kind to teammates"},
			e.ExtractRequirements(section, "Data Analyst"))
	})

	t.Run("Requirements header preferred over qualifications", func(t *testing.T) {
		section := "Qualifications: • A degree Requirements: • 3 years Go"
		assert.Equal(t, []string{"3 years Go"},
			e.ExtractRequirements(section, "Backend Engineer"))
	})

	t.Run("Span without bullets kept whole", func(t *testing.T) {
		section := "Requirements: 5+ years building distributed systems"
		assert.Equal(t, []string{"5+ years building distributed systems"},
			e.ExtractRequirements(section, "Backend Engineer"))
	})

	t.Run("No header falls back to role generics", func(t *testing.T) {
		got := e.ExtractRequirements("Come build great things with us", "Backend Engineer")
		assert.Equal(t, DefaultVocabulary().GenericRequirements["engineering"], got)
	})

	t.Run("Unknown role falls back to generic statements", func(t *testing.T) {
		got := e.ExtractRequirements("Come work with us", "Barista")
		assert.Equal(t, DefaultVocabulary().GenericRequirements["generic"], got)
		assert.NotEmpty(t, got)
	})
}

func TestExtractResponsibilities(t *testing.T) {
	e := NewExtractor(DefaultVocabulary())

	t.Run("Responsibilities header", func(t *testing.T) {
		section := "Responsibilities: • Build APIs • Review code Requirements: • Go"
		assert.Equal(t, []string{"Build APIs", "Review code"},
			e.ExtractResponsibilities(section, "Backend Engineer"))
	})

	t.Run("What you'll do header", func(t *testing.T) {
		section := "What you'll do: • Ship features weekly"
		assert.Equal(t, []string{"Ship features weekly"},
			e.ExtractResponsibilities(section, "Backend Engineer"))
	})

	t.Run("No header falls back to role generics", func(t *testing.T) {
		got := e.ExtractResponsibilities("Join a great team", "Product Designer")
		assert.Equal(t, DefaultVocabulary().GenericResponsibilities["design"], got)
	})
}

func TestSplitBullets(t *testing.T) {
	tests := []struct {
		name     string
		span     string
		expected []string
	}{
		{"Bullet characters", "• one • two • three", []string{"one", "two", "three"}},
		{"Dash markers", "first - second - third", []string{"first", "second", "third"}},
		{"Numbered list", "1. first thing 2. second thing", []string{"first thing", "second thing"}},
		{"No markers", "just a sentence", nil},
		{"Trailing punctuation trimmed", "• one. • two;", []string{"one", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitBullets(tt.span))
		})
	}
}
