// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package component

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/designdoc/cmd/designdoc/cli"
	"github.com/bureau-foundation/designdoc/lib/componentdoc"
)

type showParams struct {
	cli.SourceFlags
	cli.JSONOutput
	Name string `json:"name" desc:"component name, as it appears in the documentation tree (e.g. Button)" required:"true"`
	Kind string `json:"kind" flag:"kind,k" desc:"show only the first artifact of this kind" enum:"description,props,example"`
	Raw  bool   `json:"-" flag:"raw" desc:"print artifact markdown without rendering"`
}

func showCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show all documentation artifacts of a component",
		Description: `Fetch every documentation artifact of a component: description,
props, and basic usage example, from both the "components" and the
"layouts" category roots. Artifacts that do not exist are skipped; the
command fails only when none of the six exist.

The component name is used verbatim. Names are case-sensitive and must
match the directory name in the documentation tree.

With --kind, only the first artifact of that kind is shown: the
"components" one when both category roots have it.

With --json, the output is an object mapping each artifact's
repository path to its markdown content, in lookup order.`,
		Usage: "designdoc component show <name> [flags]",
		Examples: []cli.Example{
			{
				Description: "Show the Button documentation",
				Command:     "designdoc component show Button",
			},
			{
				Description: "Print the markdown source instead of rendering it",
				Command:     "designdoc component show Grid --raw",
			},
			{
				Description: "Show only the usage example",
				Command:     "designdoc component show Button --kind example",
			},
			{
				Description: "Show as JSON",
				Command:     "designdoc component show Button --json",
			},
		},
		Params:      func() any { return &params },
		Output:      func() any { return &map[string]string{} },
		Annotations: cli.RemoteReadOnly(),
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := componentName(args, &params.Name, "designdoc component show <name>"); err != nil {
				return err
			}
			var kind componentdoc.ArtifactKind
			if params.Kind != "" {
				parsed, err := componentdoc.ParseKind(params.Kind)
				if err != nil {
					return cli.Validation("%w", err)
				}
				kind = parsed
			}

			session, err := params.Connect(ctx, logger)
			if err != nil {
				return err
			}

			set, err := session.Resolver.ResolveDocument(ctx, params.Name)
			if err != nil {
				return cli.SourceError(err)
			}
			if kind != "" {
				artifact, ok := set.Kind(kind)
				if !ok {
					return cli.NotFound("component %q has no %s artifact", params.Name, kind).
						WithHint(fmt.Sprintf("Run 'designdoc component paths %s --check' to see which artifacts exist.", params.Name))
				}
				set = &componentdoc.ArtifactSet{Component: set.Component, Artifacts: []componentdoc.Artifact{artifact}}
			}

			if done, err := params.EmitJSON(set); done {
				return err
			}

			if params.Raw {
				for i, artifact := range set.Artifacts {
					if i > 0 {
						fmt.Println()
					}
					fmt.Printf("==> %s <==\n%s\n", artifact.Path, artifact.Content)
				}
				return nil
			}

			fmt.Println(stdoutRenderer().Document(set))
			return nil
		},
	}
}
