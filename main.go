// relay - messages passed across time.
//
// Each run loads the chain left by every run before it, adds one message,
// and stores the result for whoever comes next.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	"github.com/jeranaias/relay/internal/cli"
	"github.com/jeranaias/relay/internal/config"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse(os.Args[1:])

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		// A broken config file should be visible but never fatal; the
		// defaults still point somewhere useful.
		fmt.Fprintf(os.Stderr, "relay: %v (using defaults)\n", err)
	}

	app := cli.NewApp(cfg, args)
	os.Exit(app.Run(cmd, args))
}
