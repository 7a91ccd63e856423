// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package componentdoc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bureau-foundation/designdoc/lib/clock"
)

// Config configures a Resolver.
type Config struct {
	// Source locates the documentation tree. Candidate paths are built
	// from it.
	Source Source

	// Retriever fetches individual artifacts. Required.
	Retriever Retriever

	// Extractor turns props artifact text into a schema. Defaults to
	// NewExtractor(StrategyAuto).
	Extractor Extractor

	// Concurrency bounds parallel retrievals per resolution call. Zero
	// selects DefaultConcurrency.
	Concurrency int

	// Clock is passed to the Fetcher. Defaults to clock.Real().
	Clock clock.Clock

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Resolver is the component metadata resolution engine. It holds only
// immutable configuration; every call builds its own candidates,
// outcomes, and results, so a Resolver is safe for concurrent use and
// no call observes another's data.
type Resolver struct {
	source    Source
	fetcher   *Fetcher
	extractor Extractor
	logger    *slog.Logger
}

// NewResolver creates a Resolver from config.
func NewResolver(config Config) (*Resolver, error) {
	if config.Retriever == nil {
		return nil, errors.New("componentdoc: Config.Retriever is required")
	}
	extractor := config.Extractor
	if extractor == nil {
		extractor = NewExtractor(StrategyAuto)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		source: config.Source,
		fetcher: NewFetcher(FetcherConfig{
			Retriever:   config.Retriever,
			Concurrency: config.Concurrency,
			Clock:       config.Clock,
			Logger:      logger,
		}),
		extractor: extractor,
		logger:    logger,
	}, nil
}

// Source returns the documentation tree the resolver reads from.
func (resolver *Resolver) Source() Source {
	return resolver.source
}

// WithExtractor returns a copy of the resolver that extracts prop
// schemas with extractor.
func (resolver *Resolver) WithExtractor(extractor Extractor) *Resolver {
	clone := *resolver
	clone.extractor = extractor
	return &clone
}

// ResolveDocument retrieves every documentation artifact of component
// that exists. It returns a *NotFoundError when no candidate location
// yields an artifact, including when ctx was cancelled before any
// retrieval succeeded.
func (resolver *Resolver) ResolveDocument(ctx context.Context, component string) (*ArtifactSet, error) {
	candidates := resolver.source.Candidates(component)
	artifacts := found(resolver.fetcher.Fetch(ctx, candidates))

	if len(artifacts) == 0 {
		resolver.logger.Info("component documentation not found",
			"component", component,
			"candidates", len(candidates),
		)
		return nil, &NotFoundError{Component: component, Source: resolver.source}
	}

	resolver.logger.Debug("component documentation resolved",
		"component", component,
		"found", len(artifacts),
		"candidates", len(candidates),
	)
	return &ArtifactSet{Component: component, Artifacts: artifacts}, nil
}

// PropsResolution is the result of props-only resolution.
type PropsResolution struct {
	// Component is the requested component name.
	Component string

	// Path is the location of the props artifact the schema was
	// extracted from, or "" when neither props candidate was found.
	Path string

	// Schema is the extracted schema. Empty, never nil, when no props
	// artifact was found or nothing in it could be interpreted.
	Schema *PropSchema
}

// ResolveProps retrieves the props artifacts of component and extracts
// a schema from the first one found in candidate order, so the
// component-category artifact takes precedence over the layout one.
// Absence is not an error: the schema is then empty.
func (resolver *Resolver) ResolveProps(ctx context.Context, component string) *PropsResolution {
	outcomes := resolver.fetcher.Fetch(ctx, resolver.source.PropsCandidates(component))

	resolution := &PropsResolution{Component: component}
	canonical := ""
	for _, outcome := range outcomes {
		if outcome.Found {
			resolution.Path = outcome.Candidate.Path
			canonical = outcome.Content
			break
		}
	}

	resolution.Schema = resolver.extractor.Extract(canonical)
	resolver.logger.Debug("component props resolved",
		"component", component,
		"path", resolution.Path,
		"props", resolution.Schema.Len(),
	)
	return resolution
}

// ResolvePropSchema returns the prop schema of component, which is
// empty when no props artifact exists.
func (resolver *Resolver) ResolvePropSchema(ctx context.Context, component string) *PropSchema {
	return resolver.ResolveProps(ctx, component).Schema
}
