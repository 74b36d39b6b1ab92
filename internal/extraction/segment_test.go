package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentTitleSplits(t *testing.T) {
	text := "Senior Backend Engineer\nBuild our APIs in Go.\nProduct Designer\nOwn the design system."

	sections := Segment(text)
	require.Len(t, sections, 2)
	assert.True(t, strings.HasPrefix(sections[0], "Senior Backend Engineer"))
	assert.Contains(t, sections[0], "Build our APIs")
	assert.True(t, strings.HasPrefix(sections[1], "Product Designer"))
	assert.Contains(t, sections[1], "design system")
}

func TestSegmentBulletedTitles(t *testing.T) {
	text := "Open roles:\n• Software Engineer\n• Product Designer"

	sections := Segment(text)
	require.Len(t, sections, 2)
	assert.Contains(t, sections[0], "Software Engineer")
	assert.Contains(t, sections[1], "Product Designer")
}

func TestSegmentRejectsMidSentenceTitles(t *testing.T) {
	// "engineer" appears only mid-sentence, so no split point is accepted
	// and the whole text comes back as one section.
	text := "We need a software engineer for our growing team"

	sections := Segment(text)
	require.Len(t, sections, 1)
	assert.Equal(t, text, sections[0])
}

func TestSegmentDelimiterFallback(t *testing.T) {
	text := "About our first opening\n---\nAbout our second opening"

	sections := Segment(text)
	require.Len(t, sections, 2)
	assert.Equal(t, "About our first opening", sections[0])
	assert.Equal(t, "About our second opening", sections[1])
}

func TestSegmentWholeTextFallback(t *testing.T) {
	text := "  Just some prose with nothing to split on.  "

	sections := Segment(text)
	require.Len(t, sections, 1)
	assert.Equal(t, "Just some prose with nothing to split on.", sections[0])
}

func TestSegmentEmptyInput(t *testing.T) {
	assert.Nil(t, Segment(""))
	assert.Nil(t, Segment("   \n\t  "))
}

// Any non-empty input yields at least one section.
func TestSegmentTotality(t *testing.T) {
	inputs := []string{
		"x",
		"•••",
		"--- --- ---",
		"Senior Backend Engineer",
		"no structure at all, just words",
		"---\nonly a leading delimiter",
	}
	for _, input := range inputs {
		sections := Segment(input)
		assert.NotEmpty(t, sections, "input %q", input)
		for _, s := range sections {
			assert.NotEmpty(t, strings.TrimSpace(s))
		}
	}
}

func TestTitleCandidates(t *testing.T) {
	t.Run("Boundary-accepted matches in order", func(t *testing.T) {
		text := "Senior Backend Engineer\nSome blurb.\nProduct Designer\nMore blurb."
		assert.Equal(t, []string{"Senior Backend Engineer", "Product Designer"}, TitleCandidates(text))
	})

	t.Run("Mid-sentence matches excluded", func(t *testing.T) {
		assert.Empty(t, TitleCandidates("Come build with us as a Senior Software Engineer today"))
	})

	t.Run("Duplicates collapse", func(t *testing.T) {
		text := "Software Engineer\nblurb\nSoftware Engineer\nother blurb"
		assert.Equal(t, []string{"Software Engineer"}, TitleCandidates(text))
	})
}

func TestBareTitles(t *testing.T) {
	t.Run("Finds titles in free prose", func(t *testing.T) {
		titles := BareTitles("Come build with us as a Senior Software Engineer today")
		require.NotEmpty(t, titles)
		assert.Contains(t, titles[0], "Software Engineer")
	})

	t.Run("Comma-separated role list", func(t *testing.T) {
		titles := BareTitles("Roles: Software Engineer, Product Manager, Data Scientist")
		assert.Equal(t, []string{"Software Engineer", "Product Manager", "Data Scientist"}, titles)
	})

	t.Run("No titles in plain prose", func(t *testing.T) {
		assert.Empty(t, BareTitles("We make widgets and we love what we do"))
	})
}
