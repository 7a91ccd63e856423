// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package component

import (
	"os"

	"github.com/bureau-foundation/designdoc/cmd/designdoc/cli"
	"github.com/bureau-foundation/designdoc/lib/docrender"
)

// Command returns the "component" subcommand group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "component",
		Summary: "Look up design system component documentation",
		Description: `Resolve documentation for design system components.

Each component is documented by up to six markdown artifacts: a
description, a props table, and a basic usage example, under either the
"components" or the "layouts" category root of the documentation
repository. Lookups fetch every candidate concurrently and report
whatever exists.`,
		Subcommands: []*cli.Command{
			showCommand(),
			propsCommand(),
			pathsCommand(),
			listCommand(),
		},
	}
}

// componentName takes the component name from the single positional
// argument, or from the params field when MCP filled it in.
func componentName(args []string, name *string, usage string) error {
	if len(args) == 1 {
		*name = args[0]
	} else if len(args) > 1 {
		return cli.Validation("expected 1 positional argument, got %d", len(args))
	}
	if *name == "" {
		return cli.Validation("component name is required\n\nUsage: %s", usage)
	}
	return nil
}

// stdoutRenderer returns a renderer sized and colored for stdout.
func stdoutRenderer() *docrender.Renderer {
	return docrender.New(docrender.ForFile(os.Stdout))
}
