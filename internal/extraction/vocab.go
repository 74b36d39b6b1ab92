package extraction

import (
	"encoding/json"
	"fmt"
	"os"
)

// Vocabulary holds the fixed word lists the field extractor matches against.
// The zero value is not useful; start from DefaultVocabulary and override
// fields as needed (or load overrides from a JSON file for testing).
type Vocabulary struct {
	// Skills is the technology vocabulary tested by word-boundary membership.
	Skills []string `json:"skills,omitempty"`

	// Cities are recognized location names, matched case-insensitively.
	Cities []string `json:"cities,omitempty"`

	// RemoteKeywords normalize to the location "Remote".
	RemoteKeywords []string `json:"remote_keywords,omitempty"`

	// TitleStopWords reject a leading clause as a job title.
	TitleStopWords []string `json:"title_stop_words,omitempty"`

	// GenericRequirements and GenericResponsibilities are fallback statements
	// keyed by coarse role category (engineering, design, product,
	// management, generic).
	GenericRequirements     map[string][]string `json:"generic_requirements,omitempty"`
	GenericResponsibilities map[string][]string `json:"generic_responsibilities,omitempty"`
}

// DefaultVocabulary returns the built-in vocabulary.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Skills: []string{
			// Languages
			"Go", "Python", "Java", "JavaScript", "TypeScript", "Ruby", "PHP",
			"C++", "C#", "Rust", "Kotlin", "Swift", "Scala", "Elixir", "SQL",
			// Frameworks
			"React", "Vue", "Angular", "Node.js", "Django", "Flask", "Rails",
			"Spring", "Laravel", "Next.js", ".NET", "GraphQL", "gRPC",
			// Datastores
			"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch",
			"Cassandra", "DynamoDB", "SQLite", "Kafka", "RabbitMQ",
			// Cloud and infrastructure
			"AWS", "GCP", "Azure", "Docker", "Kubernetes", "Terraform",
			"Ansible", "Linux", "CI/CD", "Git",
			// Methodologies
			"Agile", "Scrum", "TDD", "DevOps", "Microservices", "REST",
		},
		Cities: []string{
			"New York", "San Francisco", "Los Angeles", "Seattle", "Austin",
			"Boston", "Chicago", "Denver", "Atlanta", "Miami", "Toronto",
			"Vancouver", "London", "Berlin", "Amsterdam", "Paris", "Dublin",
			"Madrid", "Barcelona", "Lisbon", "Stockholm", "Zurich", "Sydney",
			"Melbourne", "Singapore", "Tokyo", "Bangalore", "Tel Aviv",
		},
		RemoteKeywords: []string{"remote", "worldwide", "anywhere", "distributed", "work from home"},
		TitleStopWords: []string{
			"about", "we are", "we're", "our", "apply", "join", "why",
			"who we are", "what we do", "welcome",
		},
		GenericRequirements: map[string][]string{
			"engineering": {
				"Experience with modern programming languages and frameworks",
				"Strong problem-solving and debugging skills",
				"Familiarity with version control and collaborative development",
			},
			"design": {
				"Portfolio demonstrating strong visual and interaction design",
				"Proficiency with modern design and prototyping tools",
				"Ability to iterate quickly on user feedback",
			},
			"product": {
				"Experience shipping products in cross-functional teams",
				"Strong analytical and prioritization skills",
				"Excellent written and verbal communication",
			},
			"management": {
				"Experience leading and growing teams",
				"Strong organizational and communication skills",
				"Track record of delivering projects on schedule",
			},
			"generic": {
				"Relevant professional experience in a similar role",
				"Strong communication and collaboration skills",
			},
		},
		GenericResponsibilities: map[string][]string{
			"engineering": {
				"Design, build, and maintain production systems",
				"Collaborate with the team on code reviews and technical design",
				"Contribute to improving engineering practices and tooling",
			},
			"design": {
				"Own design work from concept through polished delivery",
				"Partner with engineering and product on user experience",
			},
			"product": {
				"Define product requirements and drive execution",
				"Work with stakeholders to prioritize the roadmap",
			},
			"management": {
				"Lead, mentor, and support a team of direct reports",
				"Coordinate planning and delivery across functions",
			},
			"generic": {
				"Contribute to the team's goals and day-to-day operations",
				"Communicate progress and blockers proactively",
			},
		},
	}
}

// LoadVocabulary reads vocabulary overrides from a JSON file and applies
// them on top of the defaults. Only non-empty fields override.
func LoadVocabulary(path string) (Vocabulary, error) {
	vocab := DefaultVocabulary()

	data, err := os.ReadFile(path)
	if err != nil {
		return vocab, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	var overrides Vocabulary
	if err := json.Unmarshal(data, &overrides); err != nil {
		return vocab, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}

	if len(overrides.Skills) > 0 {
		vocab.Skills = overrides.Skills
	}
	if len(overrides.Cities) > 0 {
		vocab.Cities = overrides.Cities
	}
	if len(overrides.RemoteKeywords) > 0 {
		vocab.RemoteKeywords = overrides.RemoteKeywords
	}
	if len(overrides.TitleStopWords) > 0 {
		vocab.TitleStopWords = overrides.TitleStopWords
	}
	if len(overrides.GenericRequirements) > 0 {
		vocab.GenericRequirements = overrides.GenericRequirements
	}
	if len(overrides.GenericResponsibilities) > 0 {
		vocab.GenericResponsibilities = overrides.GenericResponsibilities
	}

	return vocab, nil
}
