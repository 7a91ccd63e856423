// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/designdoc/cmd/designdoc/cli"
	"github.com/bureau-foundation/designdoc/lib/config"
)

// Command returns the "mcp" command group. The root parameter is the
// top-level CLI command tree, used for tool discovery when the "serve"
// subcommand starts.
func Command(root *cli.Command) *cli.Command {
	return &cli.Command{
		Name:    "mcp",
		Summary: "Model Context Protocol server for agent access",
		Description: `MCP server that exposes designdoc commands as tools, and component
documentation as resources, over newline-delimited JSON-RPC 2.0 on
stdin/stdout.`,
		Subcommands: []*cli.Command{
			serveCommand(root),
		},
	}
}

// serveFlags are the flags of "mcp serve". The command deliberately
// has no Params so it is not itself discovered as a tool.
type serveFlags struct {
	cli.SourceFlags
	Tools       []string
	NoResources bool
}

func serveCommand(root *cli.Command) *cli.Command {
	var flags serveFlags

	return &cli.Command{
		Name:    "serve",
		Summary: "Start MCP server on stdin/stdout",
		Description: `Start a Model Context Protocol server that reads JSON-RPC 2.0
requests from stdin and writes responses to stdout.

Every designdoc command with typed parameters is exposed as a tool.
Tool names are underscore-joined command paths (e.g.,
designdoc_component_show). Use --tool to expose only some of them.

Component documentation is also exposed as resources:
designdoc://components/{name} and designdoc://components/{name}/props.

Tools read the configuration named by --config, or by
DESIGNDOC_CONFIG when --config is not given. Logs go to stderr.

This command is intended to be launched by MCP-capable clients as a
subprocess.`,
		Usage: "designdoc mcp serve [flags]",
		Examples: []cli.Example{
			{
				Description: "Start the MCP server",
				Command:     "designdoc mcp serve",
			},
			{
				Description: "Serve a local checkout, exposing only the props tool",
				Command:     "designdoc mcp serve --config ./designdoc.yaml --tool designdoc_component_props",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("serve", pflag.ContinueOnError)
			flags.AddFlags(flagSet)
			flagSet.StringSliceVar(&flags.Tools, "tool", nil, "expose only the named tool (repeatable)")
			flagSet.BoolVar(&flags.NoResources, "no-resources", false, "do not expose component documentation as resources")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument %q", args[0])
			}

			// Tools load their configuration from the environment on
			// every call.
			if flags.ConfigFile != "" {
				path, err := filepath.Abs(flags.ConfigFile)
				if err != nil {
					return cli.Validation("--config: %w", err)
				}
				if err := os.Setenv(config.EnvVar, path); err != nil {
					return cli.Internal("setting %s: %w", config.EnvVar, err)
				}
			}

			options := []ServerOption{WithLogger(logger), WithTools(flags.Tools...)}
			if !flags.NoResources {
				session, err := flags.Connect(ctx, logger)
				if err != nil {
					return err
				}
				options = append(options, WithResourceProvider(
					NewComponentProvider(session.Resolver, session.Lister, logger)))
			}

			server := NewServer(root, options...)
			logger.Info("mcp server starting", "tools", len(server.tools), "resources", !flags.NoResources)
			return server.Serve(ctx)
		},
	}
}
