// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package cli assembles onereq's cobra.Command tree, one subcommand
// per recognized HTTP method, using a package-level rootCmd plus
// init()-registered subcommands.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "onereq",
	Short: "Fire a single one-shot HTTP request and print the result",
	Long: `onereq sends exactly one HTTP request and prints its result.

Each subcommand names an HTTP method (get, post, put, delete, patch,
head). A non-2xx status is printed like any other response, not
treated as a failure; only construction and transport errors set a
non-zero exit code.`,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	// reportErr already prints the failing Kind and message to stderr;
	// let it be the only thing that does.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	for _, method := range []string{"get", "post", "put", "delete", "patch", "head"} {
		rootCmd.AddCommand(newMethodCmd(method))
	}
}

// Execute runs the root command, exiting with status 1 if it failed.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
