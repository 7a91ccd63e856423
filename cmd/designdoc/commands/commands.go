// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete designdoc CLI command tree. The
// designdoc binary and the MCP server share it as the single source of
// truth for tool discovery.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/designdoc/cmd/designdoc/cli"
	componentcmd "github.com/bureau-foundation/designdoc/cmd/designdoc/component"
	mcpcmd "github.com/bureau-foundation/designdoc/cmd/designdoc/mcp"
	sourcecmd "github.com/bureau-foundation/designdoc/cmd/designdoc/source"
	"github.com/bureau-foundation/designdoc/lib/version"
)

// Root builds and returns the complete designdoc command tree. Tool
// discovery walks root.Subcommands, so the MCP command is added last
// (after the tree is constructed) and receives the root pointer for
// introspection.
func Root() *cli.Command {
	root := &cli.Command{
		Name: "designdoc",
		Description: `designdoc: design system component documentation lookup.

Resolve the description, props, and usage examples of design system
components from a documentation repository on GitHub or a local
checkout, for terminals and for AI agents over MCP.`,
		Subcommands: []*cli.Command{
			componentcmd.Command(),
			sourcecmd.Command(),
			versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "List documented components",
				Command:     "designdoc component list",
			},
			{
				Description: "Read a component's documentation",
				Command:     "designdoc component show Button",
			},
			{
				Description: "Show a component's props as JSON",
				Command:     "designdoc component props Button --json",
			},
			{
				Description: "Check which repository is configured",
				Command:     "designdoc source info",
			},
			{
				Description: "Serve the commands to an agent over MCP",
				Command:     "designdoc mcp serve",
			},
		},
	}

	// The MCP command walks the finished tree for tool discovery.
	root.Subcommands = append(root.Subcommands, mcpcmd.Command(root))

	return root
}

type versionParams struct {
	cli.JSONOutput
}

func versionCommand() *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:        "version",
		Summary:     "Print version information",
		Usage:       "designdoc version [--json]",
		Params:      func() any { return &params },
		Output:      func() any { return &version.Build{} },
		Annotations: cli.ReadOnly(),
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument %q", args[0])
			}
			if done, err := params.EmitJSON(version.Current()); done {
				return err
			}
			fmt.Printf("designdoc %s\n", version.Full())
			return nil
		},
	}
}
