// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/designdoc/lib/componentdoc"
	"github.com/bureau-foundation/designdoc/lib/config"
	"github.com/bureau-foundation/designdoc/lib/github"
)

// SourceFlags holds the shared flag for locating the designdoc
// configuration. Commands that read documentation embed it in their
// params struct; it binds its own flags and is left out of the MCP
// tool schema, so MCP tools always use the configuration named by
// DESIGNDOC_CONFIG.
//
// Usage pattern:
//
//	type showParams struct {
//	    cli.SourceFlags
//	    Name string `json:"name" desc:"component name" required:"true"`
//	}
//
//	Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
//	    session, err := params.Connect(ctx, logger)
//	    ...
//	}
type SourceFlags struct {
	// ConfigFile overrides DESIGNDOC_CONFIG when set.
	ConfigFile string
}

// AddFlags registers --config on flagSet.
func (flags *SourceFlags) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&flags.ConfigFile, "config", "", "path to a designdoc config file, YAML or JSONC (default: $"+config.EnvVar+", then built-in defaults)")
}

// Session is a configured connection to a documentation source.
type Session struct {
	// Config is the validated configuration the session was built from.
	Config *config.Config

	// Source locates the documentation tree.
	Source componentdoc.Source

	// Resolver is the resolution engine for Source.
	Resolver *componentdoc.Resolver

	// Fetcher retrieves arbitrary candidates from Source without
	// resolving them.
	Fetcher *componentdoc.Fetcher

	// Lister enumerates component directories of Source.
	Lister componentdoc.Lister

	// GitHub is the API client, or nil when the source is a local
	// checkout.
	GitHub *github.Client

	// Logger is the command logger, at the configured level.
	Logger *slog.Logger
}

// Local reports whether the session reads a local checkout.
func (session *Session) Local() bool {
	return session.GitHub == nil
}

// LoadConfig loads and validates the configuration selected by the
// flags. Configuration problems are validation errors.
func (flags *SourceFlags) LoadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.ConfigFile != "" {
		cfg, err = config.LoadFile(flags.ConfigFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, Validation("loading configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, Validation("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Source loads the configuration and returns the documentation tree it
// names, without connecting to it.
func (flags *SourceFlags) Source() (componentdoc.Source, error) {
	cfg, err := flags.LoadConfig()
	if err != nil {
		return componentdoc.Source{}, err
	}
	return sourceOf(cfg), nil
}

func sourceOf(cfg *config.Config) componentdoc.Source {
	return componentdoc.Source{
		Owner:     cfg.Source.Owner,
		Repo:      cfg.Source.Repo,
		Branch:    cfg.Source.Branch,
		DocsRoot:  cfg.Source.DocsRoot,
		LocalPath: cfg.Source.LocalPath,
	}
}

// Connect loads the configuration and builds a Session: a GitHub
// client and retriever, or a file system retriever when
// source.local_path is set.
func (flags *SourceFlags) Connect(ctx context.Context, logger *slog.Logger) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg, err := flags.LoadConfig()
	if err != nil {
		return nil, err
	}

	// Validate has already checked the level and strategy.
	level, _ := cfg.LogLevel()
	SetLogLevel(level)
	strategy, _ := componentdoc.ParseStrategy(cfg.Resolution.Strategy)

	session := &Session{
		Config: cfg,
		Source: sourceOf(cfg),
		Logger: logger,
	}

	var retriever componentdoc.Retriever
	if cfg.Source.LocalPath != "" {
		info, err := os.Stat(cfg.Source.LocalPath)
		if err != nil {
			return nil, Validation("source.local_path: %w", err)
		}
		if !info.IsDir() {
			return nil, Validation("source.local_path %s is not a directory", cfg.Source.LocalPath)
		}
		local := componentdoc.NewFSRetriever(os.DirFS(cfg.Source.LocalPath))
		retriever = local
		session.Lister = local
		logger.Debug("reading documentation from local checkout", "path", cfg.Source.LocalPath)
	} else {
		token, err := cfg.Token()
		if err != nil {
			return nil, Validation("%w", err)
		}
		timeout, _ := cfg.RequestTimeout()
		client, err := github.NewClient(github.Config{
			BaseURL:    cfg.GitHub.BaseURL,
			Token:      token,
			UserAgent:  cfg.GitHub.UserAgent,
			HTTPClient: &http.Client{Timeout: timeout},
			Logger:     logger,
		})
		if err != nil {
			return nil, Validation("creating GitHub client: %w", err)
		}
		session.GitHub = client
		retriever = componentdoc.NewGitHubRetriever(client, session.Source)
		session.Lister = componentdoc.NewGitHubLister(client, session.Source)
		logger.Debug("reading documentation from GitHub",
			"source", session.Source.String(),
			"authenticated", token != "",
		)
	}

	resolver, err := componentdoc.NewResolver(componentdoc.Config{
		Source:      session.Source,
		Retriever:   retriever,
		Extractor:   componentdoc.NewExtractor(strategy),
		Concurrency: cfg.Resolution.Concurrency,
		Logger:      logger,
	})
	if err != nil {
		return nil, Internal("creating resolver: %w", err)
	}
	session.Resolver = resolver
	session.Fetcher = componentdoc.NewFetcher(componentdoc.FetcherConfig{
		Retriever:   retriever,
		Concurrency: cfg.Resolution.Concurrency,
		Logger:      logger,
	})
	return session, nil
}

// SourceError categorizes an error from the documentation source so
// MCP clients can tell a missing repository from a rate limit. Errors
// that are already a *ToolError pass through unchanged.
func SourceError(err error) error {
	if err == nil {
		return nil
	}
	var toolErr *ToolError
	switch {
	case errors.As(err, &toolErr):
		return err
	case errors.Is(err, componentdoc.ErrNotFound):
		return NotFound("%w", err).WithHint("Run 'designdoc component list' to see documented components.")
	case github.IsRateLimited(err):
		return Transient("%w", err).WithHint("Configure github.token_file for a higher rate limit.")
	case github.IsUnauthorized(err):
		return Forbidden("%w", err).WithHint("Check the token in github.token_file.")
	case github.IsNotFound(err):
		return NotFound("%w", err).WithHint("Check source.owner, source.repo, and source.branch, or the token's access to a private repository.")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return Transient("%w", err)
	default:
		return Internal("%w", err)
	}
}
