// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures for the docextract
// pipeline: extraction results, error records, and stage configuration.
package types

// Table is detected tabular content: rows of cell strings.
type Table [][]string

// Page holds the extracted content of a single PDF page.
type Page struct {
	// PageNumber is the 1-based page index within the source document.
	PageNumber int `json:"page_number"`

	// Text is the extracted page text, reading order top-to-bottom.
	Text string `json:"text"`

	// Tables lists the tables detected on the page. Never nil; empty
	// when the page has no tabular content or the extraction method
	// does not support table detection.
	Tables []Table `json:"tables"`

	// Width and Height are the page media box dimensions in points.
	// Zero when the extraction method cannot determine them.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// DocumentStats summarizes the extracted content of a document.
type DocumentStats struct {
	// TotalPages is the number of pages in the source document.
	TotalPages int `json:"total_pages"`

	// WordCount counts whitespace-separated tokens across all pages.
	WordCount int `json:"word_count"`

	// CharacterCount is the total length of the extracted text.
	CharacterCount int `json:"character_count"`

	// ParagraphCount counts lines classified as paragraphs.
	ParagraphCount int `json:"paragraph_count"`

	// TableCount counts detected tables across all pages.
	TableCount int `json:"table_count"`
}

// ContentStructure holds the heuristic document outline: likely headings
// and a sample of body paragraphs.
type ContentStructure struct {
	// Headings lists up to the first ten lines classified as headings.
	Headings []string `json:"headings"`

	// Paragraphs lists up to the first five lines classified as paragraphs.
	Paragraphs []string `json:"paragraphs"`
}

// Result is a successful extraction of one PDF document.
type Result struct {
	// Filename is the base name of the source PDF.
	Filename string `json:"filename"`

	// Pages holds per-page content in document order.
	Pages []Page `json:"pages"`

	// Stats summarizes the extracted content.
	Stats DocumentStats `json:"document_stats"`

	// Structure is the heuristic outline of the document.
	Structure ContentStructure `json:"content_structure"`

	// Method names the extraction strategy that produced this result.
	Method string `json:"extraction_method"`
}

// ErrorRecord replaces a Result when every extraction strategy failed
// for a document. It is written to the output directory in place of the
// result so the operator sees the failure without reading logs.
type ErrorRecord struct {
	// Error is the human-readable failure description.
	Error string `json:"error"`

	// SourceFile is the base name of the PDF that failed.
	SourceFile string `json:"source_file"`
}

// Outcome is the terminal state of one extraction job: exactly one of
// Result or Err is set.
type Outcome struct {
	Result *Result
	Err    *ErrorRecord
}

// Failed reports whether the job ended with an error record.
func (o Outcome) Failed() bool {
	return o.Err != nil
}
