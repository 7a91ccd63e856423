// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package componentdoc

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bureau-foundation/designdoc/lib/clock"
)

// Retriever retrieves the text of one documentation artifact by its
// repository-relative path. Any error means the artifact is not
// available: the fetcher does not distinguish a missing file from a
// network failure or a non-text payload.
type Retriever interface {
	Retrieve(ctx context.Context, path string) (string, error)
}

// RetrieverFunc adapts a function to the Retriever interface.
type RetrieverFunc func(ctx context.Context, path string) (string, error)

// Retrieve calls function(ctx, path).
func (function RetrieverFunc) Retrieve(ctx context.Context, path string) (string, error) {
	return function(ctx, path)
}

// Outcome is the result of retrieving one candidate. Found is false
// when the artifact is absent for any reason; Content is then empty.
type Outcome struct {
	Candidate Candidate
	Content   string
	Found     bool
}

// DefaultConcurrency is the number of retrievals a Fetcher issues at
// once when FetcherConfig.Concurrency is zero: enough to fetch every
// candidate of a full-document resolution in parallel.
const DefaultConcurrency = 6

// FetcherConfig configures a Fetcher.
type FetcherConfig struct {
	// Retriever performs individual retrievals. Required.
	Retriever Retriever

	// Concurrency bounds in-flight retrievals. Zero selects
	// DefaultConcurrency; 1 retrieves sequentially in candidate order.
	Concurrency int

	// Clock measures retrieval latency for logging. Defaults to
	// clock.Real().
	Clock clock.Clock

	// Logger receives one debug record per absent candidate. Defaults
	// to slog.Default().
	Logger *slog.Logger
}

// Fetcher retrieves candidate artifacts best-effort: every candidate
// is attempted exactly once, and the failure of one never prevents the
// others from being tried.
type Fetcher struct {
	retriever   Retriever
	concurrency int
	clock       clock.Clock
	logger      *slog.Logger
}

// NewFetcher creates a Fetcher. Panics if config.Retriever is nil.
func NewFetcher(config FetcherConfig) *Fetcher {
	if config.Retriever == nil {
		panic("componentdoc: FetcherConfig.Retriever is required")
	}
	concurrency := config.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	clk := config.Clock
	if clk == nil {
		clk = clock.Real()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		retriever:   config.Retriever,
		concurrency: concurrency,
		clock:       clk,
		logger:      logger,
	}
}

// Fetch retrieves every candidate and returns one Outcome per
// candidate, in candidate order regardless of completion order.
// Retrievals may run in parallel; each writes only its own slot, so
// precedence is always decided by candidate position. Cancelling ctx
// makes the remaining retrievals absent; Fetch itself never fails.
func (fetcher *Fetcher) Fetch(ctx context.Context, candidates Candidates) []Outcome {
	outcomes := make([]Outcome, len(candidates))

	group := new(errgroup.Group)
	group.SetLimit(fetcher.concurrency)
	for index, candidate := range candidates {
		group.Go(func() error {
			outcomes[index] = fetcher.fetchOne(ctx, candidate)
			return nil
		})
	}
	// No goroutine returns an error: absence is recorded in the outcome.
	_ = group.Wait()

	return outcomes
}

// fetchOne performs the single retrieval attempt for candidate.
func (fetcher *Fetcher) fetchOne(ctx context.Context, candidate Candidate) Outcome {
	outcome := Outcome{Candidate: candidate}
	if err := ctx.Err(); err != nil {
		fetcher.logAbsent(candidate, err, 0)
		return outcome
	}

	start := fetcher.clock.Now()
	content, err := fetcher.retriever.Retrieve(ctx, candidate.Path)
	if err != nil {
		fetcher.logAbsent(candidate, err, fetcher.clock.Since(start))
		return outcome
	}

	outcome.Content = content
	outcome.Found = true
	return outcome
}

func (fetcher *Fetcher) logAbsent(candidate Candidate, err error, elapsed time.Duration) {
	fetcher.logger.Debug("documentation artifact absent",
		"path", candidate.Path,
		"category", string(candidate.Category),
		"kind", string(candidate.Kind),
		"elapsed", elapsed,
		"error", err,
	)
}

// found returns the outcomes that were found, preserving order.
func found(outcomes []Outcome) []Artifact {
	var artifacts []Artifact
	for _, outcome := range outcomes {
		if outcome.Found {
			artifacts = append(artifacts, Artifact{
				Candidate: outcome.Candidate,
				Content:   outcome.Content,
			})
		}
	}
	return artifacts
}
