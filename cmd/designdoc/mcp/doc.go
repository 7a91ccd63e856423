// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package mcp implements a Model Context Protocol server that exposes
// designdoc CLI commands as MCP tools over newline-delimited JSON-RPC
// 2.0 on stdin/stdout.
//
// The server discovers tools by walking the CLI command tree and
// collecting commands that have a [cli.Command.Params] function. Each
// discovered command becomes an MCP tool with an inputSchema generated
// from the parameter struct's tags via [cli.ParamsSchema]. Commands
// that declare [cli.Command.Output] also get an outputSchema reflected
// from the output type via [cli.OutputSchema], and their results
// include structuredContent alongside the text content block.
//
// Tool names are underscore-joined command paths (e.g.,
// "designdoc_component_props" for "designdoc component props").
// Tool calls run the command in-process with JSON output forced and
// stdout captured.
//
// Resource providers add read-only resources. [ComponentProvider]
// serves component documentation under designdoc://components/.
//
// This package implements the 2025-11-25 MCP protocol specification.
package mcp
