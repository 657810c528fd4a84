// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/checktica/checktica-go/internal/scan"
)

// Detect-specific flag values.
var (
	detectFlags detectionFlags
	detectFile  string
)

// detectCmd classifies a single text.
var detectCmd = &cobra.Command{
	Use:   "detect [text]",
	Short: "Classify a single text",
	Long: `Send one text to the Checktica API and print the verdict.

The text is taken from the argument, from --file, or from stdin when neither
is given. Connection failures and malformed responses are retried up to three
times; a rate-limit response is reported at once with exit code 3.`,
	Example: `  checktica detect "The mitochondria is the powerhouse of the cell."
  checktica detect --file essay.txt --method fast --format json
  pbpaste | checktica detect --fail-on-flag`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetect,
}

func init() {
	detectFlags.register(detectCmd)
	detectCmd.Flags().StringVarP(&detectFile, "file", "F", "", "read the text from this file")
}

func runDetect(cmd *cobra.Command, args []string) error {
	in, err := detectInput(cmd, args)
	if err != nil {
		return err
	}

	s, err := resolveSettings(cmd, &detectFlags)
	if err != nil {
		return err
	}
	sc, err := scannerFor(s)
	if err != nil {
		return err
	}

	report := sc.Run(cmd.Context(), []scan.Input{in})
	if err := report.FirstError(); err != nil {
		return exitError(exitCodeFor(err), "%v", err)
	}
	if err := writeReport(cmd, s, detectFlags.output, report); err != nil {
		return err
	}
	return reportExit(report, detectFlags.failOnFlag)
}

// detectInput picks the text source. An argument and --file are mutually
// exclusive.
func detectInput(cmd *cobra.Command, args []string) (scan.Input, error) {
	switch {
	case len(args) == 1 && detectFile != "":
		return scan.Input{}, exitError(ExitInvalidArgs, "checktica: pass the text as an argument or with --file, not both")
	case len(args) == 1:
		return scan.Input{Source: "argument", Text: args[0]}, nil
	case detectFile != "":
		data, err := cmdFS.ReadFile(detectFile)
		if err != nil {
			return scan.Input{}, exitError(ExitInvalidArgs, "checktica: reading %s: %v", detectFile, err)
		}
		return scan.Input{Source: detectFile, Text: string(data)}, nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return scan.Input{}, exitError(ExitInvalidArgs, "checktica: reading stdin: %v", err)
		}
		return scan.Input{Source: "-", Text: string(data)}, nil
	}
}

