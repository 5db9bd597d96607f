// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract converts PDF files into structured text and table
// content. Extraction is delegated to library-backed strategies tried in
// order; the chain yields either the first successful result or an error
// record carrying every strategy's failure.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/docextract/pkg/types"
)

// Strategy converts a single PDF file into a Result. Implementations wrap
// one extraction library each and report failures as ordinary errors.
type Strategy interface {
	// Name identifies the strategy in logs and error records.
	Name() string

	// Extract reads the PDF at path and returns its content.
	Extract(path string) (*types.Result, error)
}

// Chain is an ordered list of strategies tried in sequence until one
// succeeds. A strategy's result is returned as-is; content is never
// validated, so an empty but successfully parsed document is a success.
type Chain struct {
	strategies []Strategy
}

// NewChain builds a fallback chain over the given strategies.
func NewChain(strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies}
}

// Default returns the production chain: layout-aware extraction first,
// plain-text extraction as the fallback.
func Default() *Chain {
	return NewChain(LayoutStrategy{}, PlaintextStrategy{})
}

// Run tries each strategy in order and returns the terminal outcome for
// the job: the first successful result, or an error record whose message
// lists every strategy's failure.
func (c *Chain) Run(path string) types.Outcome {
	failures := make([]string, 0, len(c.strategies))
	for _, s := range c.strategies {
		res, err := attempt(s, path)
		if err == nil {
			return types.Outcome{Result: res}
		}
		failures = append(failures, fmt.Sprintf("%s: %v", s.Name(), err))
	}
	return types.Outcome{Err: &types.ErrorRecord{
		Error:      strings.Join(failures, "; "),
		SourceFile: filepath.Base(path),
	}}
}

// attempt invokes a strategy, converting panics into errors. The
// rsc.io/pdf-derived parsers panic on malformed cross-reference tables
// and truncated streams, and a bad input file must not kill the batch.
func attempt(s Strategy, path string) (res *types.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("parser panic: %v", r)
		}
	}()
	return s.Extract(path)
}
