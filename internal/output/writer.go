// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output serializes extraction outcomes to JSON documents and
// writes them atomically into the output directory. Every document is
// validated against the embedded output schema before it reaches disk.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/pdiddy/docextract/pkg/types"
)

// ErrWrite indicates the output document could not be written. It aborts
// the affected job only; the batch keeps going.
var ErrWrite = errors.New("write failed")

// Writer persists outcome documents under a single output directory.
// Safe for concurrent use.
type Writer struct {
	dir string

	once    sync.Once
	initErr error
}

// NewWriter returns a Writer targeting dir. The directory is created on
// the first write, not at construction, so a run that fails during
// discovery leaves no partial output directory behind.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write serializes the outcome of one job and writes it to
// <dir>/<base>.json, overwriting any previous document of the same name.
// The write is atomic: the document is staged in a temp file and renamed
// into place, so readers never observe a partial JSON file.
func (w *Writer) Write(out types.Outcome) (string, error) {
	var doc any
	var source string
	if out.Failed() {
		doc = out.Err
		source = out.Err.SourceFile
	} else {
		doc = out.Result
		source = out.Result.Filename
	}

	data, err := encode(doc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}

	w.once.Do(func() {
		w.initErr = os.MkdirAll(w.dir, 0o755)
	})
	if w.initErr != nil {
		return "", fmt.Errorf("%w: creating %s: %v", ErrWrite, w.dir, w.initErr)
	}

	base := strings.TrimSuffix(source, filepath.Ext(source))
	final := filepath.Join(w.dir, base+".json")

	tmp, err := os.CreateTemp(w.dir, "."+base+".json.*")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := os.Rename(tmp.Name(), final); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return final, nil
}

var (
	schemaOnce sync.Once
	schemaErr  error
	docSchema  *jsonschema.Schema
)

// encode marshals the document with stable 2-space indentation and
// checks it against the output schema. Marshalling is deterministic for
// a given outcome, which keeps reruns byte-identical.
func encode(doc any) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	data = append(data, '\n')

	schemaOnce.Do(func() {
		s, err := compileSchema()
		if err != nil {
			schemaErr = err
			return
		}
		docSchema = s
	})
	if schemaErr != nil {
		return nil, schemaErr
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	if err := docSchema.Validate(v); err != nil {
		return nil, fmt.Errorf("document failed schema validation: %v", err)
	}
	return data, nil
}
