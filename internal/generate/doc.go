// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package generate composes the text of a new chain message from the chain
// length, the current time, and a description of the workspace.
//
// A message is two clauses joined by a single space: an opening (empty chain)
// or a response parameterized by the current chain length, followed by an
// addition parameterized by timestamp and workspace state. Each clause is
// picked uniformly at random from its catalog. The random source, clock, and
// workspace probe are injectable so generation is deterministic under test.
package generate
