// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export converts the tables of an extraction result document
// into a spreadsheet workbook.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/docextract/pkg/types"
)

// ErrNoTables indicates the result document contains no tables to export.
var ErrNoTables = errors.New("document has no tables")

// Tables reads the result JSON at resultPath and writes its tables to
// an .xlsx workbook at outPath, one sheet per page that has tables,
// tables on the same page separated by a blank row. Error-record
// documents and documents without tables are rejected.
func Tables(resultPath, outPath string) error {
	data, err := os.ReadFile(resultPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", resultPath, err)
	}

	var errRec types.ErrorRecord
	if err := json.Unmarshal(data, &errRec); err == nil && errRec.Error != "" && errRec.SourceFile != "" {
		return fmt.Errorf("%s is an error record for %s, nothing to export", resultPath, errRec.SourceFile)
	}

	var result types.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("parsing %s: %w", resultPath, err)
	}

	wb := excelize.NewFile()
	defer wb.Close()

	wrote := false
	first := true
	for _, page := range result.Pages {
		if len(page.Tables) == 0 {
			continue
		}
		sheet := fmt.Sprintf("Page %d", page.PageNumber)
		if first {
			// Rename the default sheet instead of leaving it empty.
			if err := wb.SetSheetName(wb.GetSheetName(0), sheet); err != nil {
				return fmt.Errorf("naming sheet: %w", err)
			}
			first = false
		} else if _, err := wb.NewSheet(sheet); err != nil {
			return fmt.Errorf("adding sheet: %w", err)
		}

		rowIdx := 1
		for t, table := range page.Tables {
			if t > 0 {
				rowIdx++
			}
			for _, row := range table {
				for c, cell := range row {
					ref, err := excelize.CoordinatesToCellName(c+1, rowIdx)
					if err != nil {
						return fmt.Errorf("cell reference: %w", err)
					}
					if err := wb.SetCellValue(sheet, ref, cell); err != nil {
						return fmt.Errorf("setting %s!%s: %w", sheet, ref, err)
					}
				}
				rowIdx++
			}
			wrote = true
		}
	}

	if !wrote {
		return fmt.Errorf("%w: %s", ErrNoTables, resultPath)
	}

	if err := wb.SaveAs(outPath); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
