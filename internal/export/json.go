// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONExporter writes the document as pretty-printed JSON.
type JSONExporter struct{}

// Extension returns "json".
func (e *JSONExporter) Extension() string { return "json" }

// Export writes the document as JSON to path.
func (e *JSONExporter) Export(doc Document, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
