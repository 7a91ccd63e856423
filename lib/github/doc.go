// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package github provides a small typed client for the read-only parts
// of the GitHub REST API that designdoc needs: repository metadata,
// directory listings, and raw file contents.
//
// The client authenticates with an optional personal access token
// (public documentation repositories work anonymously, at a lower rate
// limit). It tracks X-RateLimit-* headers, waits out exhausted windows,
// retries once after a rate-limited response, and maps non-2xx
// responses to *APIError.
//
// All requests are made over HTTPS. The client refuses non-HTTPS base
// URLs. There is no response cache: every call reaches GitHub.
package github
