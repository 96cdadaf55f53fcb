// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the message chain and the
// session registry.
//
// The two persisted top-level values are:
//   - the chain: an append-only ordered slice of Entry, stored as a JSON array
//   - the registry: a Registry value holding every known Session plus a
//     pointer to the current one, stored as a single JSON object
//
// Entries reference sessions only by number. The reference is a label, not an
// ownership link: deleting or corrupting the registry never invalidates the
// chain.
package model
