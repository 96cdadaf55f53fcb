// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/relay/internal/model"
	"github.com/jeranaias/relay/internal/query"
)

// ============================================================================
// === DOCUMENT ===
// ============================================================================

// Document is the export payload: the full chain plus its sessions and
// precomputed statistics.
type Document struct {
	ID          string           `json:"id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Entries     []model.Entry    `json:"entries"`
	Sessions    []*model.Session `json:"sessions"`
	Stats       query.ChainStats `json:"stats"`
}

// BuildDocument assembles a Document from the loaded stores. The document
// ID is a fresh UUID.
func BuildDocument(entries []model.Entry, reg *model.Registry, now time.Time) Document {
	doc := Document{
		ID:          uuid.NewString(),
		GeneratedAt: now,
		Entries:     entries,
		Stats:       query.ChainStatistics(entries),
	}
	if reg != nil {
		doc.Sessions = reg.Sessions
	}
	return doc
}

// ============================================================================
// === EXPORTERS ===
// ============================================================================

// Exporter writes a Document to a file in one concrete format.
type Exporter interface {
	// Export writes the document to path, creating parent directories as
	// needed.
	Export(doc Document, path string) error

	// Extension returns the conventional file extension, without the dot.
	Extension() string
}

// ForFormat returns the exporter for a format name ("md" or "json").
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q (want md or json)", format)
	}
}
