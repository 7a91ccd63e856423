// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/bureau-foundation/designdoc/lib/clock"
)

// maxRateLimitWait bounds how long a request blocks waiting for an
// exhausted rate limit window. Anonymous clients get 60 requests per
// hour, so the window can be close to an hour away; a caller resolving
// documentation for an agent is better served by a prompt error.
const maxRateLimitWait = 2 * time.Minute

// RateLimit is a snapshot of the most recently observed rate limit.
type RateLimit struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// rateLimitTracker tracks GitHub API rate limit state from response
// headers and blocks requests preemptively while the window is
// exhausted.
type rateLimitTracker struct {
	mu    sync.Mutex
	state RateLimit
	known bool // true after the first response with rate limit headers
	clock clock.Clock
}

func newRateLimitTracker(clock clock.Clock) *rateLimitTracker {
	return &rateLimitTracker{clock: clock}
}

// update records rate limit state from HTTP response headers. Called
// after every API response.
func (tracker *rateLimitTracker) update(header http.Header) {
	remaining, err := strconv.Atoi(header.Get("X-RateLimit-Remaining"))
	if err != nil {
		return
	}
	resetUnix, err := strconv.ParseInt(header.Get("X-RateLimit-Reset"), 10, 64)
	if err != nil {
		return
	}
	limit, _ := strconv.Atoi(header.Get("X-RateLimit-Limit"))

	tracker.mu.Lock()
	defer tracker.mu.Unlock()

	tracker.state = RateLimit{
		Limit:     limit,
		Remaining: remaining,
		Reset:     time.Unix(resetUnix, 0),
	}
	tracker.known = true
}

// snapshot returns the last observed state and whether any response
// has carried rate limit headers yet.
func (tracker *rateLimitTracker) snapshot() (RateLimit, bool) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	return tracker.state, tracker.known
}

// wait blocks until the rate limit window resets if the tracker knows
// the limit is exhausted. Returns immediately if the limit is not
// exhausted, not yet known, or the reset time has passed. Returns an
// error without waiting when the reset is further away than
// maxRateLimitWait, and when ctx is cancelled while waiting.
func (tracker *rateLimitTracker) wait(ctx context.Context) error {
	tracker.mu.Lock()
	if !tracker.known || tracker.state.Remaining > 0 {
		tracker.mu.Unlock()
		return nil
	}
	reset := tracker.state.Reset
	sleepDuration := reset.Sub(tracker.clock.Now())
	tracker.mu.Unlock()

	if sleepDuration <= 0 {
		return nil
	}
	if sleepDuration > maxRateLimitWait {
		return fmt.Errorf("%w until %s", ErrRateLimitExhausted, reset.UTC().Format(time.RFC3339))
	}

	select {
	case <-tracker.clock.After(sleepDuration):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// retryAfter computes the backoff duration from a rate-limited response.
// Checks the Retry-After header first (secondary rate limits), then
// falls back to the X-RateLimit-Reset timestamp. Returns zero if no
// backoff information is available or the backoff exceeds
// maxRateLimitWait.
func (tracker *rateLimitTracker) retryAfter(header http.Header) time.Duration {
	var duration time.Duration
	if retryString := header.Get("Retry-After"); retryString != "" {
		if seconds, err := strconv.Atoi(retryString); err == nil && seconds > 0 {
			duration = time.Duration(seconds) * time.Second
		}
	}
	if duration == 0 {
		if resetString := header.Get("X-RateLimit-Reset"); resetString != "" {
			if resetUnix, err := strconv.ParseInt(resetString, 10, 64); err == nil {
				duration = time.Unix(resetUnix, 0).Sub(tracker.clock.Now())
			}
		}
	}
	if duration <= 0 || duration > maxRateLimitWait {
		return 0
	}
	return duration
}

// RateLimit returns the most recently observed rate limit. The boolean
// is false until a response carrying rate limit headers has been seen.
func (client *Client) RateLimit() (RateLimit, bool) {
	return client.rateLimit.snapshot()
}
