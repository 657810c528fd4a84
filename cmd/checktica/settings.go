// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/checktica/checktica-go"
	"github.com/checktica/checktica-go/internal/config"
	"github.com/checktica/checktica-go/internal/detector"
	"github.com/checktica/checktica-go/internal/output"
	"github.com/checktica/checktica-go/internal/scan"
)

// detectionFlags are the flags shared by detect and scan.
type detectionFlags struct {
	method     string
	format     string
	output     string
	threshold  float64
	timeout    time.Duration
	apiURL     string
	failOnFlag bool
}

func (f *detectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.method, "method", "m", "", "detection method (most_accurate, more_accurate, balanced, fast, fastest)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format (json, markdown, text)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().Float64Var(&f.threshold, "threshold", scan.DefaultThreshold, "flag generated text above this confidence (0.0-1.0)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "per-attempt request timeout (default 30s)")
	cmd.Flags().StringVar(&f.apiURL, "api-url", "", "Checktica API base URL")
	cmd.Flags().BoolVar(&f.failOnFlag, "fail-on-flag", false, "exit 2 when any input is flagged")
}

// newDetector builds the detector commands talk to. Tests replace it.
var newDetector = func(s config.Settings) (detector.Detector, error) {
	opts := append(s.ClientOptions(),
		checktica.WithLogger(slog.Default()),
		checktica.WithUserAgent("checktica-cli/"+Version),
	)
	return checktica.New(opts...)
}

// resolveSettings layers CLI flags over the environment and config files.
// Only flags the user actually set take part.
func resolveSettings(cmd *cobra.Command, f *detectionFlags) (config.Settings, error) {
	fileCfg, err := config.LoadLayered(".")
	if err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "checktica: loading config: %v", err)
	}
	if err := config.Validate(fileCfg); err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "checktica: %v", err)
	}

	cli := config.Settings{
		APIURL:       f.apiURL,
		Timeout:      f.timeout,
		OutputFormat: f.format,
	}
	if f.method != "" {
		m, err := checktica.ParseMethod(f.method)
		if err != nil {
			return config.Settings{}, exitError(ExitInvalidArgs, "%v", err)
		}
		cli.Method = m
	}
	if cmd.Flags().Changed("threshold") {
		if f.threshold < 0 || f.threshold > 1 {
			return config.Settings{}, exitError(ExitInvalidArgs,
				"checktica: --threshold must be between 0.0 and 1.0 (got %.2f)", f.threshold)
		}
		t := f.threshold
		cli.Threshold = &t
	}
	if f.timeout < 0 {
		return config.Settings{}, exitError(ExitInvalidArgs, "checktica: --timeout must be positive (got %s)", f.timeout)
	}

	s := config.Merge(fileCfg, cli).WithDefaults()
	if _, err := output.GetFormatter(s.OutputFormat); err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "checktica: %v", err)
	}
	return s, nil
}

// scannerFor builds a scanner from resolved settings.
func scannerFor(s config.Settings) (*scan.Scanner, error) {
	d, err := newDetector(s)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "%v", err)
	}
	sc := scan.New(d)
	sc.Method = s.Method
	sc.Threshold = *s.Threshold
	sc.Extensions = s.Extensions
	sc.FS = cmdFS
	sc.Logger = slog.Default()
	return sc, nil
}

// writeReport formats the report to --output or stdout.
func writeReport(cmd *cobra.Command, s config.Settings, path string, report *scan.Report) error {
	formatter, err := output.GetFormatter(s.OutputFormat)
	if err != nil {
		return exitError(ExitInvalidArgs, "checktica: %v", err)
	}

	if path == "" {
		return formatTo(formatter, report, cmd.OutOrStdout())
	}

	var buf bytes.Buffer
	if err := formatTo(formatter, report, &buf); err != nil {
		return err
	}
	if err := cmdFS.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return exitError(ExitInvalidArgs, "checktica: writing %s: %v", path, err)
	}
	slog.Info("report written", "path", path, "entries", len(report.Entries))
	return nil
}

func formatTo(f output.Formatter, report *scan.Report, w io.Writer) error {
	if err := f.Format(report, w); err != nil {
		return fmt.Errorf("checktica: formatting output: %w", err)
	}
	return nil
}

// reportExit turns a finished report into the command's exit status.
func reportExit(report *scan.Report, failOnFlag bool) error {
	sum := report.Summary()
	if report.RateLimited() {
		return exitError(ExitRateLimited, "checktica: rate limit reached; %d of %d inputs skipped", sum.Skipped, sum.Total)
	}
	if err := report.FirstError(); err != nil {
		return exitError(exitCodeFor(err), "checktica: %d of %d inputs failed; first error: %v", sum.Failed, sum.Total, err)
	}
	if sum.Skipped > 0 {
		return exitError(ExitAPIFailure, "checktica: interrupted; %d of %d inputs skipped", sum.Skipped, sum.Total)
	}
	if failOnFlag && sum.Flagged > 0 {
		return exitError(ExitFlagged, "checktica: %d of %d inputs flagged as machine generated", sum.Flagged, sum.Total)
	}
	return nil
}
