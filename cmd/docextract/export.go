// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docextract/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <result.json>",
	Short: "Export the tables of a result document to a spreadsheet",
	Long: `Export reads an extraction result document and writes its detected
tables to an .xlsx workbook, one sheet per page that has tables.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			out = base + ".xlsx"
		}
		if err := export.Tables(args[0], out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "exported: %s\n", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "", "output workbook path (default: <result>.xlsx)")

	rootCmd.AddCommand(exportCmd)
}
