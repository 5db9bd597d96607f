// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discover lists candidate PDF files in an input directory.
package discover

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrDirectoryNotFound indicates the input path does not exist or is not
// a directory. It aborts the whole run; per-file problems never raise it.
var ErrDirectoryNotFound = errors.New("input directory not found")

// List returns the paths of all .pdf files (case-insensitive extension)
// directly inside dir, sorted by name. Subdirectories are not entered.
// An existing but empty directory yields an empty slice and no error.
func List(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrDirectoryNotFound, dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// BaseName returns the file name of path without its extension, used to
// derive the deterministic output name for a job.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
