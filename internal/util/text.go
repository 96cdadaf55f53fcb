// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Truncate shortens s to at most width display cells, appending "..." when
// anything was cut. Width is measured with runewidth so wide characters
// count as two cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// Wrap breaks s into lines of at most width display cells, splitting on
// word boundaries where possible. Words wider than the limit are split
// mid-word rather than overflowing.
func Wrap(s string, width int) []string {
	if width <= 0 || s == "" {
		return []string{s}
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}

	for _, word := range strings.Fields(s) {
		w := runewidth.StringWidth(word)

		// Oversized word: hard-split it across lines.
		if w > width {
			if lineWidth > 0 {
				flush()
			}
			for runewidth.StringWidth(word) > width {
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					// A single rune wider than the limit still
					// gets its own line; never stall here.
					_, size := utf8.DecodeRuneInString(word)
					head = word[:size]
				}
				lines = append(lines, head)
				word = word[len(head):]
			}
			line.WriteString(word)
			lineWidth = runewidth.StringWidth(word)
			continue
		}

		switch {
		case lineWidth == 0:
			line.WriteString(word)
			lineWidth = w
		case lineWidth+1+w <= width:
			line.WriteByte(' ')
			line.WriteString(word)
			lineWidth += 1 + w
		default:
			flush()
			line.WriteString(word)
			lineWidth = w
		}
	}
	if lineWidth > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}
