// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks which terminal or agent run produced each
// invocation, correlated across processes by a parent-process-id key.
//
// The identity key is a heuristic, not an identity: every invocation spawned
// by the same parent process maps to the same session, and a parent restart
// starts a new one. The identity function is injectable so tests can simulate
// session boundaries deterministically.
//
// The registry is persisted as a single pretty-printed JSON object, separate
// from the chain file, with its own lifecycle. No transaction spans the two
// stores; an interruption between updating one and the other leaves them
// inconsistent, which is accepted rather than masked.
package session
