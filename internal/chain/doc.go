// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chain persists the append-only message chain to a single JSON file.
//
// The chain file is a pretty-printed JSON array of entries. It is read fully
// into memory on every invocation and rewritten in full on every append;
// there is no incremental load and no delta write.
//
// Loading privileges availability over strict validation: a missing,
// unreadable, or malformed file loads as an empty chain rather than as an
// error. A crash mid-write may corrupt the file, which the next load then
// treats as empty. No locking or atomic-rename protection is layered on top
// of the plain full-file write; concurrent invocations racing on the same
// path are last-writer-wins by design.
package chain
