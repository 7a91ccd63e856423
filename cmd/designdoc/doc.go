// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Designdoc looks up design system component documentation. It
// provides subcommands for reading a component's documentation and
// prop schema (component), inspecting the configured documentation
// repository (source), and serving both to AI agents over the Model
// Context Protocol (mcp).
package main
