// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package source

import "github.com/bureau-foundation/designdoc/cmd/designdoc/cli"

// Command returns the "source" subcommand group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "source",
		Summary: "Inspect the configured documentation source",
		Description: `Inspect the documentation repository designdoc reads from.

The source is configured by the "source" section of the designdoc
config: a GitHub repository, branch, and docs root, or a local checkout
via source.local_path.`,
		Subcommands: []*cli.Command{
			infoCommand(),
		},
	}
}
