// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses the relay command line and renders every command's
// output. Parsing is flag-driven rather than subcommand-driven: the first
// matching mode flag decides what runs, and a bare argument is a custom
// message for the chain.
//
// All human output goes through lipgloss styles that degrade to plain text
// when stdout is not a terminal or NO_COLOR is set; --json switches every
// command to a machine-readable envelope on stdout instead.
package cli
