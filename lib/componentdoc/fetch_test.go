// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package componentdoc

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mapRetriever serves artifacts from a map and counts calls per path.
type mapRetriever struct {
	files map[string]string

	mu    sync.Mutex
	calls map[string]int
}

func newMapRetriever(files map[string]string) *mapRetriever {
	return &mapRetriever{files: files, calls: make(map[string]int)}
}

func (retriever *mapRetriever) Retrieve(ctx context.Context, path string) (string, error) {
	retriever.mu.Lock()
	retriever.calls[path]++
	retriever.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	content, ok := retriever.files[path]
	if !ok {
		return "", errors.New("404 Not Found")
	}
	return content, nil
}

func (retriever *mapRetriever) callCount(path string) int {
	retriever.mu.Lock()
	defer retriever.mu.Unlock()
	return retriever.calls[path]
}

func TestFetch_OutcomesInCandidateOrder(t *testing.T) {
	candidates := testSource.Candidates("Button")
	retriever := newMapRetriever(map[string]string{
		candidates[1].Path: "props",
		candidates[5].Path: "layout example",
	})
	fetcher := NewFetcher(FetcherConfig{Retriever: retriever})

	outcomes := fetcher.Fetch(context.Background(), candidates)

	if len(outcomes) != len(candidates) {
		t.Fatalf("len(outcomes) = %d, want %d", len(outcomes), len(candidates))
	}
	for i, outcome := range outcomes {
		if outcome.Candidate != candidates[i] {
			t.Errorf("outcome %d is for %s, want %s", i, outcome.Candidate.Path, candidates[i].Path)
		}
		wantFound := i == 1 || i == 5
		if outcome.Found != wantFound {
			t.Errorf("outcome %d Found = %v, want %v", i, outcome.Found, wantFound)
		}
		if !outcome.Found && outcome.Content != "" {
			t.Errorf("absent outcome %d has content %q", i, outcome.Content)
		}
		if got := retriever.callCount(candidates[i].Path); got != 1 {
			t.Errorf("candidate %d retrieved %d times, want 1", i, got)
		}
	}
}

func TestFetch_CompletionOrderDoesNotAffectResult(t *testing.T) {
	candidates := testSource.PropsCandidates("Grid")

	// The first candidate completes only after the second one has, so
	// completion order is the reverse of candidate order.
	secondDone := make(chan struct{})
	retriever := RetrieverFunc(func(ctx context.Context, path string) (string, error) {
		if path == candidates[0].Path {
			<-secondDone
			return "component props", nil
		}
		defer close(secondDone)
		return "layout props", nil
	})
	fetcher := NewFetcher(FetcherConfig{Retriever: retriever, Concurrency: 2})

	outcomes := fetcher.Fetch(context.Background(), candidates)

	got := []string{outcomes[0].Content, outcomes[1].Content}
	if diff := cmp.Diff([]string{"component props", "layout props"}, got); diff != "" {
		t.Errorf("outcome contents mismatch (-want +got):\n%s", diff)
	}
}

func TestFetch_ConcurrencyLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	retriever := RetrieverFunc(func(ctx context.Context, path string) (string, error) {
		current := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			previous := peak.Load()
			if current <= previous || peak.CompareAndSwap(previous, current) {
				break
			}
		}
		return path, nil
	})
	fetcher := NewFetcher(FetcherConfig{Retriever: retriever, Concurrency: 1})

	outcomes := fetcher.Fetch(context.Background(), testSource.Candidates("Stack"))

	if got := peak.Load(); got != 1 {
		t.Errorf("peak concurrency = %d, want 1", got)
	}
	for i, outcome := range outcomes {
		if !outcome.Found || outcome.Content != outcome.Candidate.Path {
			t.Errorf("outcome %d = %+v", i, outcome)
		}
	}
}

func TestFetch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	retriever := newMapRetriever(map[string]string{
		testSource.Candidates("Box")[0].Path: "description",
	})
	fetcher := NewFetcher(FetcherConfig{Retriever: retriever})

	for i, outcome := range fetcher.Fetch(ctx, testSource.Candidates("Box")) {
		if outcome.Found {
			t.Errorf("outcome %d found after cancellation", i)
		}
	}
}

func TestFetch_NoCandidates(t *testing.T) {
	fetcher := NewFetcher(FetcherConfig{Retriever: newMapRetriever(nil)})
	if outcomes := fetcher.Fetch(context.Background(), nil); len(outcomes) != 0 {
		t.Errorf("Fetch(nil) = %v, want empty", outcomes)
	}
}

func TestNewFetcher_RequiresRetriever(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewFetcher with nil Retriever did not panic")
		}
	}()
	NewFetcher(FetcherConfig{})
}
