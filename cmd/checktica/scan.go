// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// Scan-specific flag values.
var (
	scanFlags      detectionFlags
	scanExtensions []string
)

// scanCmd classifies every text file under the given paths.
var scanCmd = &cobra.Command{
	Use:   "scan <path>...",
	Short: "Classify text files and directories",
	Long: `Walk the given files and directories and classify each text file, one
request at a time. Directories are searched recursively for .txt and .md files
(see --extensions); hidden directories are skipped.

A rate-limit response stops the scan; the remaining files are reported as
skipped and the command exits 3. Use --fail-on-flag to exit 2 when any file is
flagged as machine generated.`,
	Example: `  checktica scan essays/
  checktica scan --format markdown -o report.md submissions/ late.txt
  checktica scan --threshold 0.8 --fail-on-flag docs/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	scanFlags.register(scanCmd)
	scanCmd.Flags().StringSliceVar(&scanExtensions, "extensions", nil, "file extensions picked up in directories (default .txt,.md)")
}

func runScan(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd, &scanFlags)
	if err != nil {
		return err
	}
	if len(scanExtensions) > 0 {
		s.Extensions = scanExtensions
	}

	sc, err := scannerFor(s)
	if err != nil {
		return err
	}

	inputs, err := sc.Collect(cmd.Context(), args)
	if err != nil {
		return exitError(ExitInvalidArgs, "checktica: %v", err)
	}
	if len(inputs) == 0 {
		return exitError(ExitInvalidArgs, "checktica: no matching files found (extensions: %v)", sc.Extensions)
	}
	slog.Info("scanning", "files", len(inputs), "method", s.Method)

	report := sc.Run(cmd.Context(), inputs)
	slog.Debug("scan finished", "duration", report.Duration)

	if err := writeReport(cmd, s, scanFlags.output, report); err != nil {
		return err
	}
	return reportExit(report, scanFlags.failOnFlag)
}
