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

type propsParams struct {
	cli.SourceFlags
	cli.JSONOutput
	Name     string `json:"name" desc:"component name, as it appears in the documentation tree (e.g. Button)" required:"true"`
	Strategy string `json:"strategy" flag:"strategy" desc:"prop extraction strategy: auto, table, or declaration (default: resolution.strategy from config)" enum:"auto,table,declaration"`
}

// propsResult is the JSON output of "component props".
type propsResult struct {
	Component string `json:"component"`

	// Path is the props artifact the schema came from, omitted when
	// the component has none.
	Path string `json:"path,omitempty"`

	// Digest is the BLAKE3 digest of the schema, so callers can tell
	// whether a component's props changed without comparing them.
	Digest string `json:"digest"`

	Props *componentdoc.PropSchema `json:"props"`
}

// propsOutput mirrors the JSON shape of propsResult for the output
// schema: PropSchema encodes as an object keyed by prop name.
type propsOutput struct {
	Component string                                 `json:"component"`
	Path      string                                 `json:"path,omitempty"`
	Digest    string                                 `json:"digest"`
	Props     map[string]componentdoc.PropDescriptor `json:"props"`
}

func propsCommand() *cli.Command {
	var params propsParams

	return &cli.Command{
		Name:    "props",
		Summary: "Show the prop schema of a component",
		Description: `Extract the props of a component from its props artifact. The
"components" props artifact takes precedence over the "layouts" one.

A component without a props artifact, or whose props artifact cannot
be interpreted, has an empty schema; that is not an error.

Extraction strategies:
  table        read a markdown table of name, type, default, description
  declaration  read TypeScript interfaces whose name mentions "props"
  auto         table first, declaration when the table yields nothing`,
		Usage: "designdoc component props <name> [flags]",
		Examples: []cli.Example{
			{
				Description: "Show the props of Button",
				Command:     "designdoc component props Button",
			},
			{
				Description: "Read props from TypeScript declarations only",
				Command:     "designdoc component props Dialog --strategy declaration",
			},
			{
				Description: "Show as JSON",
				Command:     "designdoc component props Button --json",
			},
		},
		Params:      func() any { return &params },
		Output:      func() any { return &propsOutput{} },
		Annotations: cli.RemoteReadOnly(),
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if err := componentName(args, &params.Name, "designdoc component props <name>"); err != nil {
				return err
			}

			var extractor componentdoc.Extractor
			if params.Strategy != "" {
				strategy, err := componentdoc.ParseStrategy(params.Strategy)
				if err != nil {
					return cli.Validation("--strategy: %w", err)
				}
				extractor = componentdoc.NewExtractor(strategy)
			}

			session, err := params.Connect(ctx, logger)
			if err != nil {
				return err
			}
			resolver := session.Resolver
			if extractor != nil {
				resolver = resolver.WithExtractor(extractor)
			}

			resolution := resolver.ResolveProps(ctx, params.Name)
			if err := ctx.Err(); err != nil {
				return cli.SourceError(err)
			}

			if done, err := params.EmitJSON(propsResult{
				Component: resolution.Component,
				Path:      resolution.Path,
				Digest:    resolution.Schema.Digest().String(),
				Props:     resolution.Schema,
			}); done {
				return err
			}

			fmt.Println(stdoutRenderer().Props(resolution))
			return nil
		},
	}
}
