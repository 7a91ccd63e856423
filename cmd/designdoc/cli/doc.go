// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for designdoc.
//
// The central type is [Command], a named command with optional nested
// [Command.Subcommands], a flag set derived from a tagged params
// struct, and a Run function. Commands are assembled into a tree in
// cmd/designdoc/commands and dispatched via [Command.Execute], which
// handles flag parsing, subcommand routing, and help output.
//
// Commands that declare Params and Annotations double as MCP tools:
// [ParamsSchema] and [OutputSchema] reflect their structs into JSON
// Schema, and [ToolError] categories travel to MCP clients as
// structured error metadata.
//
// Unknown subcommands and flags get a "did you mean" suggestion when a
// known name is within three edits.
//
// [SourceFlags] loads the designdoc configuration and connects a
// [Session]: a component resolver backed by the GitHub contents API or
// by a local checkout.
package cli
