// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docextract CLI, a batch
// PDF-to-JSON extraction tool. Each operation is a subcommand: run,
// inspect, export, and version.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the docextract CLI.
var rootCmd = &cobra.Command{
	Use:   "docextract",
	Short: "Batch PDF text and table extraction to JSON",
	Long: `docextract reads PDF files from an input directory, extracts text and
table content through library-backed strategies with automatic fallback,
and writes one JSON document per input file into an output directory.

Per-file failures become error-record documents in the output instead of
stopping the batch; the process only aborts when the input directory
itself is missing.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docextract.yaml or ~/.config/docextract/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docextract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docextract"))
		}
	}

	viper.SetEnvPrefix("DOCEXTRACT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
