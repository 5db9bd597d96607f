// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/docextract/pkg/types"
)

func writeResult(t *testing.T, dir string, r *types.Result) string {
	t.Helper()
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "result.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTables(t *testing.T) {
	dir := t.TempDir()
	resultPath := writeResult(t, dir, &types.Result{
		Filename: "invoice.pdf",
		Pages: []types.Page{
			{PageNumber: 1, Text: "prose only", Tables: []types.Table{}},
			{PageNumber: 2, Tables: []types.Table{
				{{"Item", "Qty"}, {"Apples", "3"}},
				{{"Total", "4.50"}},
			}},
		},
		Method: "layout",
	})
	outPath := filepath.Join(dir, "invoice.xlsx")

	if err := Tables(resultPath, outPath); err != nil {
		t.Fatalf("Tables: %v", err)
	}

	wb, err := excelize.OpenFile(outPath)
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Page 2" {
		t.Fatalf("sheets = %v, want [Page 2]", sheets)
	}

	got, err := wb.GetCellValue("Page 2", "A1")
	if err != nil || got != "Item" {
		t.Errorf("A1 = %q (%v), want Item", got, err)
	}
	got, err = wb.GetCellValue("Page 2", "B2")
	if err != nil || got != "3" {
		t.Errorf("B2 = %q (%v), want 3", got, err)
	}
	// Second table starts after a separator row.
	got, err = wb.GetCellValue("Page 2", "A4")
	if err != nil || got != "Total" {
		t.Errorf("A4 = %q (%v), want Total", got, err)
	}
}

func TestTables_NoTables(t *testing.T) {
	dir := t.TempDir()
	resultPath := writeResult(t, dir, &types.Result{
		Filename: "plain.pdf",
		Pages:    []types.Page{{PageNumber: 1, Text: "just text", Tables: []types.Table{}}},
		Method:   "plaintext",
	})

	err := Tables(resultPath, filepath.Join(dir, "out.xlsx"))
	if !errors.Is(err, ErrNoTables) {
		t.Errorf("err = %v, want ErrNoTables", err)
	}
}

func TestTables_ErrorRecord(t *testing.T) {
	dir := t.TempDir()
	data, _ := json.Marshal(types.ErrorRecord{Error: "both strategies failed", SourceFile: "bad.pdf"})
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Tables(path, filepath.Join(dir, "out.xlsx")); err == nil {
		t.Error("exporting an error record should fail")
	}
}
