// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - argument parsing and the usage text for relay.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command selects what a relay invocation does.
type Command int

const (
	// CmdRelay is the default: generate (or take) a message and append it.
	CmdRelay Command = iota
	CmdShow
	CmdSearch
	CmdHistory
	CmdSessions
	CmdNote
	CmdStats
	CmdExport
	CmdVersion
	CmdHelp
)

// DefaultShowLast is used when --last is given a value that does not parse.
const DefaultShowLast = 5

// DefaultSearchLimit caps how many matches --search prints.
const DefaultSearchLimit = 10

// Args holds the parsed command line.
type Args struct {
	// JSON switches output to the machine-readable envelope.
	JSON bool

	// Message is a custom chain message (first bare argument).
	Message string

	// Last limits --show / --last output; 0 means the whole chain.
	Last int

	// SearchTerm is the --search argument.
	SearchTerm string

	// Note is everything after --note, joined with spaces.
	Note string

	// ChainPath overrides the configured chain file when non-empty.
	ChainPath string

	// ExportPath and ExportFormat drive --export.
	ExportPath   string
	ExportFormat string
}

const usageText = `relay - messages passed across time

Each run reads the chain left by earlier runs, adds one message, and
persists the result for whoever comes next. Sessions group the runs of a
single shell.

Usage:
  relay [message]           add a message to the chain (generated if omitted)
  relay --show              show the entire chain
  relay --last N            show the last N messages
  relay --search <term>     find messages containing term (newest first)
  relay --history           show the chain grouped by day and by session
  relay --sessions          show session history
  relay --note <text>       add a note to the current session
  relay --stats             show chain and session statistics
  relay --export <path>     export the chain to a file
    --format md|json        export format (default: md)
  relay --chain <path>      use an alternate chain file
  relay --json              machine-readable output
  relay --version           print version information
  relay --help              this text

Examples:
  relay                     let this run speak for itself
  relay "remember the tests"
  relay --last 10
  relay --search pattern
  relay --note "left the branch half-merged"
  relay --export ./chain.md --format md

Version: %s
`

// PrintUsage prints the usage/help text.
func (a *App) PrintUsage() {
	fmt.Fprintf(a.out, usageText, Version)
}

// Parse interprets argv (without the program name). The first matching mode
// flag wins, mirroring how earlier versions of the tool resolved conflicting
// flags, so "relay --sessions --stats" shows sessions.
func Parse(argv []string) (Command, Args) {
	args := Args{}

	// Value-carrying flags are resolved first so their values are never
	// mistaken for a bare message.
	bare := extractFlags(argv, &args)

	for _, arg := range bare {
		if !strings.HasPrefix(arg, "--") && arg != "-h" {
			args.Message = arg
			break
		}
	}

	switch {
	case hasFlag(argv, "--sessions"):
		return CmdSessions, args
	case hasFlag(argv, "--note"):
		return CmdNote, args
	case hasFlag(argv, "--stats"):
		return CmdStats, args
	case hasFlag(argv, "--help") || hasFlag(argv, "-h"):
		return CmdHelp, args
	case hasFlag(argv, "--version"):
		return CmdVersion, args
	case hasFlag(argv, "--search"):
		return CmdSearch, args
	case hasFlag(argv, "--history"):
		return CmdHistory, args
	case hasFlag(argv, "--export"):
		return CmdExport, args
	case hasFlag(argv, "--show") || hasFlag(argv, "--last"):
		return CmdShow, args
	default:
		return CmdRelay, args
	}
}

func hasFlag(argv []string, flag string) bool {
	for _, a := range argv {
		if a == flag {
			return true
		}
	}
	return false
}

// extractFlags fills args from argv and returns the arguments that were
// neither a flag nor a flag value.
func extractFlags(argv []string, args *Args) []string {
	var bare []string

	for i := 0; i < len(argv); i++ {
		switch argv[i] {
		case "--json":
			args.JSON = true

		case "--last":
			// A missing or unparseable count falls back to a small
			// window instead of failing the run.
			args.Last = DefaultShowLast
			if i+1 < len(argv) {
				if n, err := strconv.Atoi(argv[i+1]); err == nil {
					args.Last = n
					i++
				}
			}

		case "--search":
			if i+1 < len(argv) {
				args.SearchTerm = argv[i+1]
				i++
			}

		case "--note":
			// Everything after --note is the note.
			args.Note = strings.Join(argv[i+1:], " ")
			i = len(argv)

		case "--chain":
			if i+1 < len(argv) {
				args.ChainPath = argv[i+1]
				i++
			}

		case "--export":
			if i+1 < len(argv) {
				args.ExportPath = argv[i+1]
				i++
			}

		case "--format":
			if i+1 < len(argv) {
				args.ExportFormat = argv[i+1]
				i++
			}

		case "--show", "--history", "--sessions", "--stats",
			"--help", "-h", "--version":
			// Mode flags with no value.

		default:
			bare = append(bare, argv[i])
		}
	}
	return bare
}
