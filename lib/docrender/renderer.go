// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package docrender

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWidth is used when Options.Width is not positive.
const DefaultWidth = 80

// minimumContentWidth bounds wrapping inside deeply nested blocks.
const minimumContentWidth = 10

// Options configures a Renderer.
type Options struct {
	// Width is the terminal width text is wrapped to.
	Width int

	// Profile is the color profile styles are rendered in. Use
	// termenv.Ascii for plain text.
	Profile termenv.Profile

	// Theme defaults to DefaultTheme when nil.
	Theme *Theme
}

// Renderer renders documentation for a terminal. It is safe for
// concurrent use.
type Renderer struct {
	width   int
	profile termenv.Profile
	theme   Theme
	styles  *lipgloss.Renderer
}

// New creates a Renderer from options.
func New(options Options) *Renderer {
	width := options.Width
	if width <= 0 {
		width = DefaultWidth
	}
	theme := DefaultTheme
	if options.Theme != nil {
		theme = *options.Theme
	}

	// lipgloss re-detects the profile from the environment unless it
	// is set explicitly.
	styles := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(options.Profile))
	styles.SetColorProfile(options.Profile)

	return &Renderer{
		width:   width,
		profile: options.Profile,
		theme:   theme,
		styles:  styles,
	}
}

// ForFile returns options for output written to file: its terminal
// width when file is a terminal, and the color profile detected from
// it and the environment (NO_COLOR, CLICOLOR_FORCE).
func ForFile(file *os.File) Options {
	options := Options{Profile: termenv.NewOutput(file).EnvColorProfile()}
	if term.IsTerminal(int(file.Fd())) {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil {
			options.Width = width
		}
	}
	return options
}

func (renderer *Renderer) style() lipgloss.Style {
	return renderer.styles.NewStyle()
}

// codeFormatter returns the chroma formatter matching the color
// profile, or "" when code should not be highlighted.
func (renderer *Renderer) codeFormatter() string {
	switch renderer.profile {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal16"
	default:
		return ""
	}
}
