// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"unicode"

	"github.com/pdiddy/docextract/pkg/types"
)

const (
	// headingMaxWords is the longest line still considered a heading
	// candidate.
	headingMaxWords = 10

	// maxHeadings and maxParagraphs cap the content_structure samples.
	maxHeadings   = 10
	maxParagraphs = 5
)

// buildResult assembles the output document from extracted pages: it
// computes document statistics and classifies lines into headings and
// paragraphs. Short lines in all-caps or title case read as headings;
// long lines read as body paragraphs.
func buildResult(filename string, pages []types.Page, method string) *types.Result {
	var full strings.Builder
	tableCount := 0
	for _, p := range pages {
		full.WriteString(p.Text)
		full.WriteByte('\n')
		tableCount += len(p.Tables)
	}
	fullText := full.String()

	headings := []string{}
	paragraphs := []string{}
	paragraphCount := 0
	for _, line := range strings.Split(fullText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words := len(strings.Fields(line))
		switch {
		case words <= headingMaxWords && (isUpperLine(line) || isTitleLine(line)):
			if len(headings) < maxHeadings {
				headings = append(headings, line)
			}
		case words > headingMaxWords:
			paragraphCount++
			if len(paragraphs) < maxParagraphs {
				paragraphs = append(paragraphs, line)
			}
		}
	}

	return &types.Result{
		Filename: filename,
		Pages:    pages,
		Stats: types.DocumentStats{
			TotalPages:     len(pages),
			WordCount:      len(strings.Fields(fullText)),
			CharacterCount: len([]rune(fullText)),
			ParagraphCount: paragraphCount,
			TableCount:     tableCount,
		},
		Structure: types.ContentStructure{
			Headings:   headings,
			Paragraphs: paragraphs,
		},
		Method: method,
	}
}

// isUpperLine reports whether the line contains letters and none of
// them are lowercase.
func isUpperLine(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

// isTitleLine reports whether every word starts with an uppercase letter
// and has no uppercase letters after the first.
func isTitleLine(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		first := true
		for _, r := range w {
			if !unicode.IsLetter(r) {
				continue
			}
			if first {
				if !unicode.IsUpper(r) {
					return false
				}
				first = false
			} else if unicode.IsUpper(r) {
				return false
			}
		}
	}
	return true
}
