// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package component

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/bureau-foundation/designdoc/cmd/designdoc/cli"
	"github.com/bureau-foundation/designdoc/lib/componentdoc"
)

type listParams struct {
	cli.SourceFlags
	cli.JSONOutput
	Category string `json:"category" flag:"category,c" desc:"list only one category root: components or layouts" enum:"components,layouts"`
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List documented components",
		Description: `List the component directories of the documentation tree, sorted by
name within each category root. A name listed here can be passed to
"designdoc component show" and "designdoc component props".`,
		Usage: "designdoc component list [flags]",
		Examples: []cli.Example{
			{
				Description: "List every documented component",
				Command:     "designdoc component list",
			},
			{
				Description: "List layouts only, as JSON",
				Command:     "designdoc component list --category layouts --json",
			},
		},
		Params:      func() any { return &params },
		Output:      func() any { return &[]componentdoc.CatalogEntry{} },
		Annotations: cli.RemoteReadOnly(),
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument %q", args[0])
			}

			var only []componentdoc.Category
			if params.Category != "" {
				category, err := componentdoc.ParseCategory(params.Category)
				if err != nil {
					return cli.Validation("--category: %w", err)
				}
				only = append(only, category)
			}

			session, err := params.Connect(ctx, logger)
			if err != nil {
				return err
			}

			entries, err := componentdoc.ListComponents(ctx, session.Lister, session.Source, only...)
			if err != nil {
				return cli.SourceError(err)
			}

			if done, err := params.EmitJSON(entries); done {
				return err
			}

			if len(entries) == 0 {
				fmt.Fprintf(os.Stderr, "No components documented under %s.\n", session.Source)
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(writer, "NAME\tCATEGORY\n")
			for _, entry := range entries {
				fmt.Fprintf(writer, "%s\t%s\n", entry.Name, entry.Category)
			}
			return writer.Flush()
		},
	}
}
