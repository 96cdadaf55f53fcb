// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package query implements the read side of the chain: tailing, substring
// search, grouping by session and by calendar day, and aggregate statistics.
//
// Every operation works over an already-loaded chain and registry and has no
// persistence side effects. The word statistics are deliberately approximate:
// messages are split on whitespace, lowercased, and filtered to words longer
// than three characters, with no punctuation stripping. That exact rule is
// part of the contract — changing it changes the observable counts.
package query
