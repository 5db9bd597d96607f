// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch orchestrates a run: every discovered PDF goes through
// the extraction chain and its outcome document is written to the output
// directory. Per-job failures are recorded and never stop the batch.
package batch

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/pdiddy/docextract/internal/discover"
	"github.com/pdiddy/docextract/pkg/types"
)

// Extractor produces the terminal outcome for one job. Satisfied by
// *extract.Chain.
type Extractor interface {
	Run(path string) types.Outcome
}

// Sink persists one outcome document. Satisfied by *output.Writer.
type Sink interface {
	Write(out types.Outcome) (string, error)
}

// Recorder receives per-job outcomes for the optional run ledger.
type Recorder interface {
	RecordJob(sourceFile, status, method, message string, duration time.Duration) error
}

// BatchResult holds the outcome counts of a batch run.
type BatchResult struct {
	// Extracted counts jobs the primary strategy handled.
	Extracted int
	// Recovered counts jobs that succeeded via the fallback strategy.
	Recovered int
	// Errored counts jobs where every strategy failed; their output is
	// an error record, not a result.
	Errored int
	// WriteFailed counts jobs whose output document could not be
	// written at all.
	WriteFailed int
}

// Total returns the total number of jobs processed.
func (r BatchResult) Total() int {
	return r.Extracted + r.Recovered + r.Errored + r.WriteFailed
}

// HasFailures reports whether any job ended without a successful result
// document.
func (r BatchResult) HasFailures() bool {
	return r.Errored > 0 || r.WriteFailed > 0
}

// jobStatus tags the terminal state of one job.
type jobStatus int

const (
	statusExtracted jobStatus = iota
	statusRecovered
	statusErrored
	statusWriteFailed
)

// Run processes every job through the extractor and sink, printing
// per-file status lines and a final summary to w. workers > 1 fans the
// independent jobs out to that many goroutines; status output stays
// serialized. rec may be nil; recorder failures are logged and ignored
// so the ledger never blocks the batch.
func Run(jobs []string, ex Extractor, sink Sink, rec Recorder, workers int, w io.Writer) BatchResult {
	var mu sync.Mutex
	var result BatchResult

	process := func(path string) {
		status := runJob(path, ex, sink, rec, &mu, w)
		mu.Lock()
		switch status {
		case statusExtracted:
			result.Extracted++
		case statusRecovered:
			result.Recovered++
		case statusErrored:
			result.Errored++
		case statusWriteFailed:
			result.WriteFailed++
		}
		mu.Unlock()
	}

	if workers <= 1 {
		for _, path := range jobs {
			process(path)
		}
	} else {
		queue := make(chan string)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for path := range queue {
					process(path)
				}
			}()
		}
		for _, path := range jobs {
			queue <- path
		}
		close(queue)
		wg.Wait()
	}

	fmt.Fprintf(w, "\nBatch summary: %d extracted, %d recovered, %d errored, %d write-failed (total: %d)\n",
		result.Extracted, result.Recovered, result.Errored, result.WriteFailed, result.Total())
	return result
}

// runJob extracts one file and writes its outcome document. The mutex
// guards the status writer and the recorder, not the extraction itself.
func runJob(path string, ex Extractor, sink Sink, rec Recorder, mu *sync.Mutex, w io.Writer) jobStatus {
	base := discover.BaseName(path)
	start := time.Now()

	out := ex.Run(path)

	status := statusExtracted
	method := ""
	message := ""
	switch {
	case out.Failed():
		status = statusErrored
		message = out.Err.Error
	default:
		method = out.Result.Method
		if method != "layout" {
			status = statusRecovered
		}
	}

	_, writeErr := sink.Write(out)
	if writeErr != nil {
		status = statusWriteFailed
		message = writeErr.Error()
	}
	elapsed := time.Since(start)

	mu.Lock()
	defer mu.Unlock()

	switch status {
	case statusExtracted:
		fmt.Fprintf(w, "extracted: %s (%d pages)\n", base, len(out.Result.Pages))
	case statusRecovered:
		fmt.Fprintf(w, "recovered: %s (%s fallback)\n", base, method)
	case statusErrored:
		fmt.Fprintf(w, "failed:    %s (%s)\n", base, message)
	case statusWriteFailed:
		fmt.Fprintf(w, "write failed: %s (%s)\n", base, message)
	}

	if rec != nil {
		if err := rec.RecordJob(filepath.Base(path), statusName(status), method, message, elapsed); err != nil {
			fmt.Fprintf(w, "manifest: %v\n", err)
		}
	}
	return status
}

func statusName(s jobStatus) string {
	switch s {
	case statusExtracted:
		return "extracted"
	case statusRecovered:
		return "recovered"
	case statusErrored:
		return "error"
	case statusWriteFailed:
		return "write_failed"
	}
	return "unknown"
}
