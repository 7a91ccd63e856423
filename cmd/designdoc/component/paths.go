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

type pathsParams struct {
	cli.SourceFlags
	cli.JSONOutput
	Name      string `json:"name" desc:"component name" required:"true"`
	PropsOnly bool   `json:"props_only" flag:"props-only" desc:"list only the props candidates"`
	Check     bool   `json:"check" flag:"check" desc:"fetch each location and report whether the artifact exists"`
}

// pathStatus is one row of paths output. Found is set only by --check.
type pathStatus struct {
	componentdoc.Candidate
	Found *bool `json:"found,omitempty"`
}

func pathsCommand() *cli.Command {
	var params pathsParams

	return &cli.Command{
		Name:    "paths",
		Summary: "List the candidate artifact locations of a component",
		Description: `Print the repository paths where documentation for a component is
looked up, in precedence order. Without --check nothing is fetched:
the paths are derived from the configured source alone, so this works
offline and shows exactly where to add documentation for a new
component.

With --check every location is retrieved once and marked present or
absent. When none of them exist the command exits with status 1 after
printing the table, which makes it usable as a documentation gate in
CI scripts.`,
		Usage: "designdoc component paths <name> [flags]",
		Examples: []cli.Example{
			{
				Description: "Show where Button documentation is looked up",
				Command:     "designdoc component paths Button",
			},
			{
				Description: "Show only the props locations",
				Command:     "designdoc component paths Button --props-only",
			},
			{
				Description: "Fail when Button has no documentation at all",
				Command:     "designdoc component paths Button --check",
			},
		},
		Params:      func() any { return &params },
		Output:      func() any { return &[]pathStatus{} },
		Annotations: cli.RemoteReadOnly(),
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := componentName(args, &params.Name, "designdoc component paths <name>"); err != nil {
				return err
			}

			source, err := params.Source()
			if err != nil {
				return err
			}

			candidates := source.Candidates(params.Name)
			if params.PropsOnly {
				candidates = source.PropsCandidates(params.Name)
			}

			rows := make([]pathStatus, len(candidates))
			for index, candidate := range candidates {
				rows[index] = pathStatus{Candidate: candidate}
			}

			present := 0
			if params.Check {
				session, err := params.Connect(ctx, logger)
				if err != nil {
					return err
				}
				for index, outcome := range session.Fetcher.Fetch(ctx, candidates) {
					found := outcome.Found
					rows[index].Found = &found
					if found {
						present++
					}
				}
				if err := ctx.Err(); err != nil {
					return cli.SourceError(err)
				}
			}

			if done, err := params.EmitJSON(rows); done {
				return err
			}

			writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			if params.Check {
				fmt.Fprintf(writer, "CATEGORY\tKIND\tPATH\tSTATUS\n")
			} else {
				fmt.Fprintf(writer, "CATEGORY\tKIND\tPATH\n")
			}
			for _, row := range rows {
				if row.Found == nil {
					fmt.Fprintf(writer, "%s\t%s\t%s\n", row.Category, row.Kind, row.Path)
					continue
				}
				status := "absent"
				if *row.Found {
					status = "present"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", row.Category, row.Kind, row.Path, status)
			}
			if err := writer.Flush(); err != nil {
				return err
			}

			if params.Check && present == 0 {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}
