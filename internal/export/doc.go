// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export renders a snapshot of the chain and its sessions to a file
// outside the tool, as markdown for reading or JSON for machines. Each
// export gets a unique document ID so separately produced files can be told
// apart even when their content matches.
package export
