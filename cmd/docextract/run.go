// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docextract/internal/batch"
	"github.com/pdiddy/docextract/internal/discover"
	"github.com/pdiddy/docextract/internal/extract"
	"github.com/pdiddy/docextract/internal/manifest"
	"github.com/pdiddy/docextract/internal/output"
	"github.com/pdiddy/docextract/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Extract every PDF in the input directory to JSON",
	Long: `Run processes all .pdf files directly inside the input directory.
Each file goes through layout-aware extraction first and plain-text
extraction on failure; the outcome is written to <output>/<name>.json.
Files that defeat both strategies produce an error-record document.

The exit code is zero whenever all discovered files were attempted,
regardless of per-file failures; only a missing input directory aborts
the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := runConfig()
		stderr := cmd.ErrOrStderr()

		jobs, err := discover.List(cfg.Extract.InputDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Found %d PDF files in %s\n", len(jobs), cfg.Extract.InputDir)

		sink := output.NewWriter(cfg.Extract.OutputDir)

		var rec batch.Recorder
		var store *manifest.Store
		if cfg.Manifest.Enabled {
			dir := cfg.Manifest.Dir
			if dir == "" {
				dir = cfg.Extract.OutputDir
			}
			store, err = manifest.Open(dir)
			if err != nil {
				fmt.Fprintf(stderr, "manifest disabled: %v\n", err)
			} else {
				defer store.Close()
				rec = store
				fmt.Fprintf(stderr, "Manifest run id: %s\n", store.RunID())
			}
		}

		result := batch.Run(jobs, extract.Default(), sink, rec, cfg.Extract.Workers, stderr)

		if cfg.Report != "" {
			if err := writeReport(cfg.Report, store, result); err != nil {
				fmt.Fprintf(stderr, "report: %v\n", err)
			}
		}
		return nil
	},
}

func init() {
	runCmd.Flags().String("input", "/app/input", "directory scanned for .pdf files")
	runCmd.Flags().String("output", "/app/output", "directory receiving .json documents")
	runCmd.Flags().Int("workers", 1, "number of concurrent extraction jobs")
	runCmd.Flags().Bool("manifest", false, "record per-job outcomes in a SQLite run ledger")
	runCmd.Flags().String("manifest-dir", "", "ledger base directory (default: output directory)")
	runCmd.Flags().String("report", "", "write a YAML run summary to this path")

	viper.BindPFlag("extract.input_dir", runCmd.Flags().Lookup("input"))
	viper.BindPFlag("extract.output_dir", runCmd.Flags().Lookup("output"))
	viper.BindPFlag("extract.workers", runCmd.Flags().Lookup("workers"))
	viper.BindPFlag("manifest.enabled", runCmd.Flags().Lookup("manifest"))
	viper.BindPFlag("manifest.dir", runCmd.Flags().Lookup("manifest-dir"))
	viper.BindPFlag("report", runCmd.Flags().Lookup("report"))

	rootCmd.AddCommand(runCmd)
}

// runConfig resolves the effective configuration: flags override
// environment variables, which override the config file.
func runConfig() types.RunConfig {
	return types.RunConfig{
		Extract: types.ExtractConfig{
			InputDir:  viper.GetString("extract.input_dir"),
			OutputDir: viper.GetString("extract.output_dir"),
			Workers:   viper.GetInt("extract.workers"),
		},
		Manifest: types.ManifestConfig{
			Enabled: viper.GetBool("manifest.enabled"),
			Dir:     viper.GetString("manifest.dir"),
		},
		Report: viper.GetString("report"),
	}
}

// runReport is the YAML shape of the --report summary.
type runReport struct {
	RunID       string `yaml:"run_id,omitempty"`
	Total       int    `yaml:"total"`
	Extracted   int    `yaml:"extracted"`
	Recovered   int    `yaml:"recovered"`
	Errored     int    `yaml:"errored"`
	WriteFailed int    `yaml:"write_failed"`
}

func writeReport(path string, store *manifest.Store, result batch.BatchResult) error {
	report := runReport{
		Total:       result.Total(),
		Extracted:   result.Extracted,
		Recovered:   result.Recovered,
		Errored:     result.Errored,
		WriteFailed: result.WriteFailed,
	}
	if store != nil {
		report.RunID = store.RunID()
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshalling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
