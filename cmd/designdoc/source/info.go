// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/bureau-foundation/designdoc/cmd/designdoc/cli"
	"github.com/bureau-foundation/designdoc/lib/componentdoc"
	"github.com/bureau-foundation/designdoc/lib/github"
)

type infoParams struct {
	cli.SourceFlags
	cli.JSONOutput
}

// infoResult is the JSON output of "source info".
type infoResult struct {
	Source componentdoc.Source `json:"source" desc:"documentation tree artifacts are read from"`

	Repository *github.Repository `json:"repository,omitempty" desc:"GitHub repository metadata"`
	RateLimit  *rateLimit         `json:"rate_limit,omitempty" desc:"GitHub API rate limit after the metadata request"`

	// BranchIsDefault reports whether the configured branch is the
	// repository's default branch. Omitted for local checkouts.
	BranchIsDefault *bool `json:"branch_is_default,omitempty" desc:"whether source.branch is the repository default branch"`
}

type rateLimit struct {
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
	Reset     string `json:"reset"`
}

func infoCommand() *cli.Command {
	var params infoParams

	return &cli.Command{
		Name:    "info",
		Summary: "Show the documentation source and its GitHub status",
		Description: `Show which documentation tree component lookups read from. For a
GitHub source, fetch the repository metadata, which checks that the
repository is reachable with the configured credentials, and report
the remaining API rate limit. Local checkouts make no network calls.`,
		Usage: "designdoc source info [flags]",
		Examples: []cli.Example{
			{
				Description: "Check the configured source",
				Command:     "designdoc source info",
			},
			{
				Description: "Check a different configuration",
				Command:     "designdoc source info --config ./designdoc.yaml --json",
			},
		},
		Params:      func() any { return &params },
		Output:      func() any { return &infoResult{} },
		Annotations: cli.RemoteReadOnly(),
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument %q", args[0])
			}

			session, err := params.Connect(ctx, logger)
			if err != nil {
				return err
			}

			result := infoResult{Source: session.Source}
			if !session.Local() {
				repository, err := session.GitHub.GetRepository(ctx, session.Source.Owner, session.Source.Repo)
				if err != nil {
					return cli.SourceError(err)
				}
				result.Repository = repository
				isDefault := repository.DefaultBranch == session.Source.Branch
				result.BranchIsDefault = &isDefault
				if limit, ok := session.GitHub.RateLimit(); ok {
					result.RateLimit = &rateLimit{
						Limit:     limit.Limit,
						Remaining: limit.Remaining,
						Reset:     limit.Reset.UTC().Format(time.RFC3339),
					}
				}
			}

			if done, err := params.EmitJSON(result); done {
				return err
			}
			return writeInfo(result)
		},
	}
}

func writeInfo(result infoResult) error {
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	docsRoot := result.Source.DocsRoot
	if docsRoot == "" {
		docsRoot = "(repository root)"
	}
	if result.Source.LocalPath != "" {
		fmt.Fprintf(writer, "Checkout:\t%s\n", result.Source.LocalPath)
	} else {
		fmt.Fprintf(writer, "Repository:\t%s/%s\n", result.Source.Owner, result.Source.Repo)
	}
	fmt.Fprintf(writer, "Branch:\t%s\n", result.Source.Branch)
	fmt.Fprintf(writer, "Docs root:\t%s\n", docsRoot)

	if repository := result.Repository; repository != nil {
		visibility := "public"
		if repository.Private {
			visibility = "private"
		}
		fmt.Fprintf(writer, "Visibility:\t%s\n", visibility)
		if repository.Description != "" {
			fmt.Fprintf(writer, "Description:\t%s\n", repository.Description)
		}
		fmt.Fprintf(writer, "URL:\t%s\n", repository.HTMLURL)
		if result.BranchIsDefault != nil && !*result.BranchIsDefault {
			fmt.Fprintf(writer, "Default branch:\t%s (configured branch differs)\n", repository.DefaultBranch)
		}
	}
	if limit := result.RateLimit; limit != nil {
		fmt.Fprintf(writer, "Rate limit:\t%d/%d remaining, resets %s\n", limit.Remaining, limit.Limit, limit.Reset)
	}
	return writer.Flush()
}
