// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docextract/pkg/types"
)

func TestBuildResult_StatsAndStructure(t *testing.T) {
	pages := []types.Page{
		{
			PageNumber: 1,
			Text: strings.Join([]string{
				"INTRODUCTION",
				"This opening paragraph has considerably more than ten words in it, which makes it body text.",
				"Methods And Materials",
			}, "\n"),
			Tables: []types.Table{{{"a", "b"}, {"c", "d"}}},
		},
		{
			PageNumber: 2,
			Text:       "A second long paragraph that also runs past the ten word threshold for classification purposes.",
			Tables:     []types.Table{},
		},
	}

	r := buildResult("doc.pdf", pages, "layout")

	require.Equal(t, "doc.pdf", r.Filename)
	require.Equal(t, "layout", r.Method)
	require.Equal(t, 2, r.Stats.TotalPages)
	require.Equal(t, 1, r.Stats.TableCount)
	require.Equal(t, 2, r.Stats.ParagraphCount)
	require.Equal(t, []string{"INTRODUCTION", "Methods And Materials"}, r.Structure.Headings)
	require.Len(t, r.Structure.Paragraphs, 2)
	require.Positive(t, r.Stats.WordCount)
	require.Positive(t, r.Stats.CharacterCount)
}

func TestBuildResult_CapsSamples(t *testing.T) {
	var lines []string
	for i := 0; i < 15; i++ {
		lines = append(lines, fmt.Sprintf("HEADING NUMBER %d", i))
		lines = append(lines, fmt.Sprintf("paragraph %d with enough trailing words to pass the ten word threshold easily here", i))
	}
	pages := []types.Page{{PageNumber: 1, Text: strings.Join(lines, "\n"), Tables: []types.Table{}}}

	r := buildResult("doc.pdf", pages, "layout")

	require.Len(t, r.Structure.Headings, maxHeadings)
	require.Len(t, r.Structure.Paragraphs, maxParagraphs)
	require.Equal(t, 15, r.Stats.ParagraphCount, "count keeps growing past the sample cap")
}

func TestBuildResult_EmptyPages(t *testing.T) {
	r := buildResult("empty.pdf", []types.Page{{PageNumber: 1, Tables: []types.Table{}}}, "plaintext")

	require.Equal(t, 1, r.Stats.TotalPages)
	require.Zero(t, r.Stats.WordCount)
	require.NotNil(t, r.Structure.Headings)
	require.NotNil(t, r.Structure.Paragraphs)
	require.Empty(t, r.Structure.Headings)
}

func TestLineClassifiers(t *testing.T) {
	tests := []struct {
		line  string
		upper bool
		title bool
	}{
		{"INTRODUCTION", true, false},
		{"Results And Discussion", false, true},
		{"plain lowercase text", false, false},
		{"Mixed CASE Words", false, false},
		{"SECTION 2.1", true, false},
		{"", false, false},
	}
	for _, tt := range tests {
		if got := isUpperLine(tt.line); got != tt.upper {
			t.Errorf("isUpperLine(%q) = %v, want %v", tt.line, got, tt.upper)
		}
		if got := isTitleLine(tt.line); got != tt.title {
			t.Errorf("isTitleLine(%q) = %v, want %v", tt.line, got, tt.title)
		}
	}
}
