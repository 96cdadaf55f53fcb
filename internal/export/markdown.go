// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/relay/internal/model"
)

// MarkdownExporter renders the chain as a readable markdown report.
type MarkdownExporter struct{}

// Extension returns "md".
func (e *MarkdownExporter) Extension() string { return "md" }

// Export writes the document as markdown to path.
func (e *MarkdownExporter) Export(doc Document, path string) error {
	var sb strings.Builder

	sb.WriteString("# relay chain export\n\n")
	fmt.Fprintf(&sb, "- export id: `%s`\n", doc.ID)
	fmt.Fprintf(&sb, "- generated: %s\n", doc.GeneratedAt.Format(model.TimeFormat))
	fmt.Fprintf(&sb, "- entries: %d\n", len(doc.Entries))
	fmt.Fprintf(&sb, "- sessions: %d\n\n", len(doc.Sessions))

	e.writeEntries(&sb, doc)
	e.writeSessions(&sb, doc)
	e.writeStats(&sb, doc)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

func (e *MarkdownExporter) writeEntries(sb *strings.Builder, doc Document) {
	sb.WriteString("## chain\n\n")
	if len(doc.Entries) == 0 {
		sb.WriteString("the chain is empty.\n\n")
		return
	}
	for _, entry := range doc.Entries {
		fmt.Fprintf(sb, "**#%d** · %s", entry.Run, entry.Time)
		if entry.HasSession() {
			fmt.Fprintf(sb, " · session %d", entry.Session)
		}
		fmt.Fprintf(sb, "\n\n> %s\n\n", entry.Message)
	}
}

func (e *MarkdownExporter) writeSessions(sb *strings.Builder, doc Document) {
	if len(doc.Sessions) == 0 {
		return
	}
	sb.WriteString("## sessions\n\n")
	for _, s := range doc.Sessions {
		fmt.Fprintf(sb, "### session %d (`%s`)\n\n", s.Number, s.ID)
		fmt.Fprintf(sb, "- started: %s\n", s.Started.Format(model.TimeFormat))
		fmt.Fprintf(sb, "- last active: %s\n", s.LastActive.Format(model.TimeFormat))
		fmt.Fprintf(sb, "- messages: %d\n", s.MessageCount)
		if len(s.Notes) > 0 {
			sb.WriteString("- notes:\n")
			for _, n := range s.Notes {
				fmt.Fprintf(sb, "  - %s: %s\n", n.Time.Format(model.TimeFormat), n.Text)
			}
		}
		sb.WriteString("\n")
	}
}

func (e *MarkdownExporter) writeStats(sb *strings.Builder, doc Document) {
	if doc.Stats.Count == 0 {
		return
	}
	sb.WriteString("## statistics\n\n")
	fmt.Fprintf(sb, "- first entry: %s\n", doc.Stats.First)
	fmt.Fprintf(sb, "- last entry: %s\n", doc.Stats.Last)
	fmt.Fprintf(sb, "- average message length: %.1f\n", doc.Stats.AvgLength)
	if len(doc.Stats.TopWords) > 0 {
		sb.WriteString("- top words:\n")
		for _, wc := range doc.Stats.TopWords {
			fmt.Fprintf(sb, "  - %s (%d)\n", wc.Word, wc.Count)
		}
	}
}
