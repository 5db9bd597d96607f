// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStore_RecordAndQuery(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if s.RunID() == "" {
		t.Fatal("run id should not be empty")
	}
	if _, err := os.Stat(filepath.Join(dir, "index", "extract.db")); err != nil {
		t.Fatalf("database file missing: %v", err)
	}

	records := []struct {
		file, status, method string
	}{
		{"a.pdf", "extracted", "layout"},
		{"b.pdf", "recovered", "plaintext"},
		{"c.pdf", "error", ""},
		{"d.pdf", "extracted", "layout"},
	}
	for _, r := range records {
		if err := s.RecordJob(r.file, r.status, r.method, "", 12*time.Millisecond); err != nil {
			t.Fatalf("RecordJob(%s): %v", r.file, err)
		}
	}

	counts, err := s.RunSummary(s.RunID())
	if err != nil {
		t.Fatalf("RunSummary: %v", err)
	}
	if counts["extracted"] != 2 || counts["recovered"] != 1 || counts["error"] != 1 {
		t.Errorf("counts = %v", counts)
	}

	jobs, err := s.Jobs(s.RunID())
	if err != nil {
		t.Fatalf("Jobs: %v", err)
	}
	if len(jobs) != 4 {
		t.Fatalf("got %d rows, want 4", len(jobs))
	}
	if jobs[0].SourceFile != "a.pdf" || jobs[3].SourceFile != "d.pdf" {
		t.Errorf("rows out of insertion order: %v", jobs)
	}
	if jobs[1].Method != "plaintext" {
		t.Errorf("method = %q, want plaintext", jobs[1].Method)
	}
}

func TestStore_RunsAreIsolated(t *testing.T) {
	dir := t.TempDir()

	first, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.RecordJob("a.pdf", "extracted", "layout", "", 0); err != nil {
		t.Fatal(err)
	}
	firstID := first.RunID()
	first.Close()

	second, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()
	if err := second.RecordJob("b.pdf", "error", "", "bad pdf", 0); err != nil {
		t.Fatal(err)
	}

	if firstID == second.RunID() {
		t.Fatal("runs should get distinct ids")
	}

	counts, err := second.RunSummary(second.RunID())
	if err != nil {
		t.Fatal(err)
	}
	if counts["extracted"] != 0 || counts["error"] != 1 {
		t.Errorf("second run counts = %v, should not include the first run", counts)
	}

	old, err := second.RunSummary(firstID)
	if err != nil {
		t.Fatal(err)
	}
	if old["extracted"] != 1 {
		t.Errorf("earlier run rows should survive reopening, got %v", old)
	}
}
