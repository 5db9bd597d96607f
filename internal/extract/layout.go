// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/docextract/pkg/types"
)

// LayoutStrategy is the primary extraction strategy. It reads positioned
// glyph runs with github.com/ledongthuc/pdf, reconstructs reading order
// from their coordinates, and detects tables from column alignment.
type LayoutStrategy struct{}

// Name implements Strategy.
func (LayoutStrategy) Name() string { return "layout" }

// Extract implements Strategy.
func (LayoutStrategy) Extract(path string) (*types.Result, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	numPages := r.NumPage()
	pages := make([]types.Page, 0, numPages)
	for i := 1; i <= numPages; i++ {
		p := r.Page(i)
		page := types.Page{PageNumber: i, Tables: []types.Table{}}
		if !p.V.IsNull() {
			rows := clusterRows(p.Content().Text)
			page.Text = rowsText(rows)
			page.Tables = detectTables(rows)
			page.Width, page.Height = pageSize(p)
		}
		pages = append(pages, page)
	}

	return buildResult(filepath.Base(path), pages, "layout"), nil
}

// pageSize reads the MediaBox dimensions, walking up the page tree when
// the page inherits it from an ancestor node.
func pageSize(p pdf.Page) (w, h float64) {
	v := p.V
	for depth := 0; depth < 16 && !v.IsNull(); depth++ {
		box := v.Key("MediaBox")
		if !box.IsNull() && box.Len() == 4 {
			w = math.Abs(box.Index(2).Float64() - box.Index(0).Float64())
			h = math.Abs(box.Index(3).Float64() - box.Index(1).Float64())
			return w, h
		}
		v = v.Key("Parent")
	}
	return 0, 0
}
