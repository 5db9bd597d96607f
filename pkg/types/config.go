// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractConfig holds settings for the batch extraction stage.
type ExtractConfig struct {
	// InputDir is the directory scanned for .pdf files (non-recursive).
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir receives one .json document per input file. Created on
	// demand before the first write.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Workers is the number of concurrent extraction jobs (default 1,
	// sequential). Jobs are independent, so any value is safe.
	Workers int `json:"workers" yaml:"workers"`
}

// ManifestConfig holds settings for the optional run ledger.
type ManifestConfig struct {
	// Enabled turns on per-job outcome recording in the manifest database.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir is the base directory for the manifest (contains index/extract.db).
	// Defaults to the output directory.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// RunConfig groups all settings for a batch run.
type RunConfig struct {
	Extract  ExtractConfig  `json:"extract" yaml:"extract"`
	Manifest ManifestConfig `json:"manifest" yaml:"manifest"`

	// Report is an optional path for a YAML summary of the run.
	Report string `json:"report,omitempty" yaml:"report,omitempty"`
}
