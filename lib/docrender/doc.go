// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package docrender renders resolved component documentation for a
// terminal: markdown artifacts with reflowed paragraphs, highlighted
// code examples and aligned tables, and prop schemas as a table.
//
// A [Renderer] is configured once with a width and a color profile.
// With termenv.Ascii every style is a no-op, which is what the CLI
// uses when stdout is not a terminal.
package docrender
