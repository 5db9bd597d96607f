// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/docextract/pkg/types"
)

func sampleResult() *types.Result {
	return &types.Result{
		Filename: "report.pdf",
		Pages: []types.Page{
			{
				PageNumber: 1,
				Text:       "Heading\nBody text.",
				Tables:     []types.Table{{{"a", "b"}, {"c", "d"}}},
				Width:      612,
				Height:     792,
			},
		},
		Stats: types.DocumentStats{
			TotalPages:     1,
			WordCount:      3,
			CharacterCount: 18,
			ParagraphCount: 0,
			TableCount:     1,
		},
		Structure: types.ContentStructure{
			Headings:   []string{"Heading"},
			Paragraphs: []string{},
		},
		Method: "layout",
	}
}

func TestWrite_Result(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(filepath.Join(dir, "out"))

	path, err := w.Write(types.Outcome{Result: sampleResult()})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if filepath.Base(path) != "report.json" {
		t.Errorf("output name = %s, want report.json", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc["filename"] != "report.pdf" {
		t.Errorf("filename = %v, want report.pdf", doc["filename"])
	}
	pages, ok := doc["pages"].([]any)
	if !ok || len(pages) != 1 {
		t.Fatalf("pages = %v, want one page", doc["pages"])
	}
	page := pages[0].(map[string]any)
	if page["text"] != "Heading\nBody text." {
		t.Errorf("page text = %v", page["text"])
	}
	if _, ok := page["tables"]; !ok {
		t.Error("page is missing the tables field")
	}
}

func TestWrite_ErrorRecord(t *testing.T) {
	w := NewWriter(t.TempDir())

	out := types.Outcome{Err: &types.ErrorRecord{
		Error:      "layout: bad xref; plaintext: not a pdf",
		SourceFile: "broken.pdf",
	}}
	path, err := w.Write(out)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if filepath.Base(path) != "broken.json" {
		t.Errorf("output name = %s, want broken.json", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc["source_file"] != "broken.pdf" {
		t.Errorf("source_file = %v", doc["source_file"])
	}
	if doc["error"] == "" {
		t.Error("error field is empty")
	}
	if _, ok := doc["pages"]; ok {
		t.Error("error record must not carry pages")
	}
}

func TestWrite_OverwriteAndIdempotence(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	path, err := w.Write(types.Outcome{Result: sampleResult()})
	if err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := w.Write(types.Outcome{Result: sampleResult()}); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("rerun output differs from the first run")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d entries in output dir, want 1 (no leftover temp files)", len(entries))
	}
}

func TestWrite_SchemaRejectsMalformedDocument(t *testing.T) {
	w := NewWriter(t.TempDir())

	bad := sampleResult()
	bad.Method = "ocr" // not a known extraction method

	_, err := w.Write(types.Outcome{Result: bad})
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("err = %v, want ErrWrite", err)
	}
}

func TestWrite_DirectoryCreatedLazily(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "out")
	w := NewWriter(dir)

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatal("output dir should not exist before the first write")
	}
	if _, err := w.Write(types.Outcome{Result: sampleResult()}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "report.json")); err != nil {
		t.Errorf("expected document in created dir: %v", err)
	}
}
