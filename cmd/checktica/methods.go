// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/checktica/checktica-go"
)

// methodsCmd lists the detection methods.
var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List detection methods",
	Long:  "List the detection methods from most accurate to fastest. The default is marked.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		w := cmd.OutOrStdout()
		def := color.New(color.FgGreen)
		for _, m := range checktica.Methods() {
			if m == checktica.DefaultMethod {
				_, _ = fmt.Fprintf(w, "%s %s\n", m, def.Sprint("(default)"))
				continue
			}
			_, _ = fmt.Fprintln(w, m)
		}
	},
}
