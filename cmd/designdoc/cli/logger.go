// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// commandLevel is shared by every logger NewCommandLogger returns.
// [SourceFlags.Connect] sets it from the configured logging level.
var commandLevel slog.LevelVar

// NewCommandLogger creates a structured logger for CLI command
// operations. When stderr is a terminal it writes slog text lines; when
// stderr is piped (scripts, CI, MCP clients) it writes JSON lines.
//
// Callers scope the logger with command context via With():
//
//	logger = logger.With("command", "component/show", "component", name)
func NewCommandLogger() *slog.Logger {
	return newLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))
}

// SetLogLevel changes the minimum level of every command logger.
func SetLogLevel(level slog.Level) {
	commandLevel.Set(level)
}

func newLogger(writer io.Writer, terminal bool) *slog.Logger {
	options := &slog.HandlerOptions{Level: &commandLevel}
	if terminal {
		return slog.New(slog.NewTextHandler(writer, options))
	}
	return slog.New(slog.NewJSONHandler(writer, options))
}
