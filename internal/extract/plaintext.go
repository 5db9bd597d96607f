// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/dslipak/pdf"

	"github.com/pdiddy/docextract/pkg/types"
)

// PlaintextStrategy is the fallback extraction strategy. It pulls the
// whole document's text with github.com/dslipak/pdf and reports it as a
// single page without tables or dimensions.
type PlaintextStrategy struct{}

// Name implements Strategy.
func (PlaintextStrategy) Name() string { return "plaintext" }

// Extract implements Strategy.
func (PlaintextStrategy) Extract(path string) (*types.Result, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}

	reader, err := r.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("extracting plain text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return nil, fmt.Errorf("reading plain text: %w", err)
	}

	page := types.Page{
		PageNumber: 1,
		Text:       buf.String(),
		Tables:     []types.Table{},
	}
	return buildResult(filepath.Base(path), []types.Page{page}, "plaintext"), nil
}
