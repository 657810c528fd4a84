// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	checkticalog "github.com/checktica/checktica-go/internal/log"
)

// Global flag values.
var (
	verbose   bool
	quiet     bool
	noColor   bool
	logFormat string
)

// rootCmd is the base command for checktica.
var rootCmd = &cobra.Command{
	Use:   "checktica",
	Short: "Detect machine-generated text with the Checktica API",
	Long: `Checktica sends text to the Checktica detection API and reports whether
it appears to have been written by a language model, with a confidence score
and the service's remarks.

Run 'checktica detect' for a single text or 'checktica scan' for files and
directories. Set CHECKTICA_API_URL to target another deployment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if noColor {
			color.NoColor = true
		}
		if err := checkticalog.SetupWithFormat(verbose, quiet, logFormat); err != nil {
			return exitError(ExitInvalidArgs, "checktica: %v", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", checkticalog.FormatText, "log format on stderr (text, json)")

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(methodsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
