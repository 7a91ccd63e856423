// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction.
//
// The GitHub client waits for rate-limit windows and the resolution
// engine measures retrieval latency. Both take a Clock instead of
// calling the time package directly:
//
//	client, err := github.NewClient(github.Config{Clock: clock.Real()})
//
// In tests, Fake() returns a clock that advances only when Advance is
// called. Use WaitForTimers to block until a goroutine has registered
// its After call before advancing, which removes the race between
// timer registration and time advancement:
//
//	fakeClock := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	go func() { <-fakeClock.After(30 * time.Second) }()
//	fakeClock.WaitForTimers(1)
//	fakeClock.Advance(30 * time.Second)
package clock
