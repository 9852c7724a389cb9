// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for HireU.
//
// Usage:
//
//	go run . [flags]
//	./hireu [flags]
//
// Without a subcommand this launches the posting editor. See --help for
// options.
package main

import (
	"os"

	"github.com/hireu/hireu/internal/logging"
	"github.com/hireu/hireu/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
