// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command onereq is a per-method command-line client built on the
// onereq package: one subcommand per recognized HTTP method, printing
// the response status line, headers, and body to stdout.
package main

import "github.com/onereq/onereq/internal/cli"

func main() {
	cli.Execute()
}
