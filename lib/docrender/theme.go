// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package docrender

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette of rendered documentation, in ANSI
// 256-color codes.
type Theme struct {
	Text    lipgloss.Color
	Faint   lipgloss.Color
	Heading lipgloss.Color
	Border  lipgloss.Color

	// Accent marks prop names and artifact section titles.
	Accent lipgloss.Color

	// Checked marks completed task list items.
	Checked lipgloss.Color

	// CodeStyle is the chroma style used for fenced code blocks.
	CodeStyle string
}

// DefaultTheme suits a dark 256-color terminal.
var DefaultTheme = Theme{
	Text:      lipgloss.Color("252"),
	Faint:     lipgloss.Color("244"),
	Heading:   lipgloss.Color("39"),
	Border:    lipgloss.Color("238"),
	Accent:    lipgloss.Color("214"),
	Checked:   lipgloss.Color("71"),
	CodeStyle: "monokai",
}
