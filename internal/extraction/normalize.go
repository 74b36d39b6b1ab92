// Package extraction turns raw career-page text into structured job
// candidates: whitespace normalization, posting segmentation, and heuristic
// field extraction against fixed vocabularies.
package extraction

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize collapses a raw content blob into a single-line searchable
// string: CR/LF become spaces, runs of whitespace collapse to one space,
// and the result is trimmed. It never fails.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.ReplaceAll(raw, "\r\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// noiseSelectors are markup elements that never carry posting content.
var noiseSelectors = []string{"script", "style", "noscript", "nav", "header", "footer", "iframe", "svg"}

// LooksLikeHTML reports whether content appears to be markup rather than
// plain text. Export files mix both, so this gates the goquery pass.
func LooksLikeHTML(content string) bool {
	lower := strings.ToLower(content)
	return strings.Contains(lower, "<html") ||
		strings.Contains(lower, "<body") ||
		strings.Contains(lower, "<div") ||
		strings.Contains(lower, "</p>") ||
		strings.Contains(lower, "<br")
}

// StripHTML extracts visible text from HTML-ish content, dropping script,
// style, and chrome elements. Block-level boundaries become newlines so the
// segmenter can still see list/heading structure. Returns the input
// unchanged if it does not look like markup or cannot be parsed.
func StripHTML(content string) string {
	if !LooksLikeHTML(content) {
		return content
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	// Insert newlines at block boundaries before flattening to text.
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, div, li, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	text := root.Text()
	if strings.TrimSpace(text) == "" {
		return content
	}
	return text
}
