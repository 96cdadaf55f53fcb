// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// WorkspaceSentinel is the descriptor used when the workspace is absent.
const WorkspaceSentinel = "no workspace"

// DescribeWorkspace returns a WorkspaceFunc that summarizes the directory
// tree rooted at path as "K files in M directories". A missing or unreadable
// root yields the sentinel. The root itself is not counted as a directory.
func DescribeWorkspace(root string) func() string {
	return func() string {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			return WorkspaceSentinel
		}

		var files, dirs int
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // skip unreadable subtrees, keep counting
			}
			if path == root {
				return nil
			}
			if d.IsDir() {
				dirs++
			} else {
				files++
			}
			return nil
		})

		return fmt.Sprintf("%d files in %d directories", files, dirs)
	}
}
