// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/docextract/pkg/types"
)

const (
	// rowTolerance is the vertical distance (points) within which glyph
	// runs are considered part of the same text row.
	rowTolerance = 2.0

	// cellGap is the horizontal gap (points) that splits a row into
	// separate table cells.
	cellGap = 14.0

	// colTolerance is how far (points) cell start positions may drift
	// between rows that still count as the same table column.
	colTolerance = 10.0

	// minTableRows and minTableCols are the smallest aligned block that
	// is reported as a table.
	minTableRows = 2
	minTableCols = 2
)

// span is one positioned glyph run on a page.
type span struct {
	x, y, w  float64
	fontSize float64
	text     string
}

// textRow is a horizontal line of spans, X-sorted.
type textRow struct {
	y     float64
	spans []span
}

// clusterRows groups positioned glyph runs into text rows ordered
// top-to-bottom. PDF coordinates grow upward, so higher Y comes first.
func clusterRows(texts []pdf.Text) []textRow {
	spans := make([]span, 0, len(texts))
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		spans = append(spans, span{x: t.X, y: t.Y, w: t.W, fontSize: t.FontSize, text: t.S})
	}
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].y != spans[j].y {
			return spans[i].y > spans[j].y
		}
		return spans[i].x < spans[j].x
	})

	var rows []textRow
	for _, s := range spans {
		if n := len(rows); n > 0 && math.Abs(rows[n-1].y-s.y) <= rowTolerance {
			rows[n-1].spans = append(rows[n-1].spans, s)
			continue
		}
		rows = append(rows, textRow{y: s.y, spans: []span{s}})
	}
	for i := range rows {
		sort.SliceStable(rows[i].spans, func(a, b int) bool {
			return rows[i].spans[a].x < rows[i].spans[b].x
		})
	}
	return rows
}

// rowsText renders rows as page text, one line per row, inserting a
// space wherever the horizontal gap between runs reads as word spacing.
func rowsText(rows []textRow) string {
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		prevEnd := math.Inf(-1)
		for _, s := range r.spans {
			if b.Len() > 0 && !math.IsInf(prevEnd, -1) && s.x-prevEnd > wordGap(s) {
				b.WriteByte(' ')
			}
			b.WriteString(s.text)
			prevEnd = s.x + s.w
		}
	}
	return strings.TrimSpace(b.String())
}

// wordGap is the horizontal distance treated as an intentional space,
// scaled to the run's font size.
func wordGap(s span) float64 {
	if s.fontSize > 0 {
		return 0.3 * s.fontSize
	}
	return 2.0
}

// rowCells splits a row into cells at large horizontal gaps, returning
// the cell texts and each cell's start position.
func rowCells(r textRow) (cells []string, starts []float64) {
	var cur strings.Builder
	var curStart float64
	prevEnd := math.Inf(-1)
	flush := func() {
		if cur.Len() > 0 {
			cells = append(cells, strings.TrimSpace(cur.String()))
			starts = append(starts, curStart)
			cur.Reset()
		}
	}
	for _, s := range r.spans {
		if cur.Len() == 0 {
			curStart = s.x
		} else if s.x-prevEnd > cellGap {
			flush()
			curStart = s.x
		} else if s.x-prevEnd > wordGap(s) {
			cur.WriteByte(' ')
		}
		cur.WriteString(s.text)
		prevEnd = s.x + s.w
	}
	flush()
	return cells, starts
}

// detectTables finds runs of consecutive rows that split into the same
// aligned columns and reports each run of at least minTableRows rows as
// a table.
func detectTables(rows []textRow) []types.Table {
	tables := []types.Table{}

	var current types.Table
	var currentStarts []float64
	flush := func() {
		if len(current) >= minTableRows {
			tables = append(tables, current)
		}
		current = nil
		currentStarts = nil
	}

	for _, r := range rows {
		cells, starts := rowCells(r)
		if len(cells) < minTableCols {
			flush()
			continue
		}
		if current != nil && !columnsAligned(currentStarts, starts) {
			flush()
		}
		current = append(current, cells)
		currentStarts = starts
	}
	flush()
	return tables
}

// columnsAligned reports whether two rows share the same column layout.
func columnsAligned(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > colTolerance {
			return false
		}
	}
	return true
}
