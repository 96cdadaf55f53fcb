// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Centralized styling for relay output.
//
// Colors are disabled automatically for non-TTY output (piped, redirected),
// respect the NO_COLOR environment variable (https://no-color.org/), and can
// be forced back on with FORCE_COLOR.
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// init configures lipgloss with the detected color profile so every style
// below degrades to plain text when colors are off.
func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// TitleStyle is used for command titles and headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")) // Cyan

	// RunStyle marks the [N] run marker of a chain entry
	RunStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82")) // Bright green

	// TimeStyle renders timestamps next to run markers
	TimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // Light gray

	// MessageStyle renders the message body of a chain entry
	MessageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Off-white

	// LabelStyle is used for field labels in summaries
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // Light gray

	// SuccessStyle is used for confirmations
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)

	// ErrorStyle is used for failures
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// DimStyle is used for secondary information and hints
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")) // Dim gray

	// SeparatorStyle is used for visual separators
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Dark gray
)

// =============================================================================
// HELPERS
// =============================================================================

// RenderSeparator renders a horizontal separator of the given rune repeated
// width times.
func RenderSeparator(ch string, width int) string {
	if width <= 0 {
		width = 50
	}
	return SeparatorStyle.Render(strings.Repeat(ch, width))
}
