// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bureau-foundation/designdoc/lib/clock"
	"github.com/bureau-foundation/designdoc/lib/netutil"
)

// githubAPIVersion is the GitHub REST API version header. Pinning the
// version ensures consistent behavior as GitHub evolves the API.
const githubAPIVersion = "2022-11-28"

// defaultBaseURL is the base URL for the public GitHub API.
const defaultBaseURL = "https://api.github.com"

// defaultUserAgent is sent when Config.UserAgent is empty. GitHub
// rejects requests without a User-Agent header.
const defaultUserAgent = "designdoc"

// Media types accepted by the contents endpoints.
const (
	mediaTypeJSON = "application/vnd.github+json"
	mediaTypeRaw  = "application/vnd.github.raw+json"
)

// Config holds configuration for creating a GitHub API Client.
type Config struct {
	// BaseURL is the root URL for API requests. Defaults to
	// "https://api.github.com". Must use HTTPS.
	BaseURL string

	// Token is a personal access token or fine-grained token. Optional:
	// when empty, requests are anonymous.
	Token string

	// UserAgent is sent with every request. Defaults to "designdoc".
	UserAgent string

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Clock provides time operations. Defaults to clock.Real().
	// Inject clock.Fake() in tests for deterministic behavior.
	Clock clock.Clock

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is a typed GitHub REST API client with optional token
// authentication, rate limiting, and structured error handling.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	auth       authenticator
	rateLimit  *rateLimitTracker
	clock      clock.Clock
	logger     *slog.Logger
}

// response is a successful (2xx) API response with its body fully read.
type response struct {
	body   []byte
	header http.Header
}

// NewClient creates a GitHub API client from the given configuration.
// Returns an error if the base URL is not HTTPS.
func NewClient(config Config) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	if !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("github: API client requires HTTPS (got %q)", baseURL)
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	clk := config.Clock
	if clk == nil {
		clk = clock.Real()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var auth authenticator = anonymousAuth{}
	if config.Token != "" {
		auth = newTokenAuth(config.Token)
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: httpClient,
		auth:       auth,
		rateLimit:  newRateLimitTracker(clk),
		clock:      clk,
		logger:     logger,
	}, nil
}

// get executes a GET request against path (relative to the base URL,
// including any query string) with the given Accept media type.
// Handles rate limit waiting and one retry after a rate-limited
// response. On non-2xx responses, returns an *APIError.
func (client *Client) get(ctx context.Context, path, accept string) (*response, error) {
	return client.getWithRetry(ctx, path, accept, false)
}

// getOnce sends exactly one request for path: no rate limit wait and
// no retry. Any status other than 200 OK is an *APIError, including a
// rate-limited response.
func (client *Client) getOnce(ctx context.Context, path, accept string) (*response, error) {
	status, resp, err := client.send(ctx, path, accept)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, parseAPIErrorFromBody(status, resp.body)
	}
	return resp, nil
}

// getWithRetry is the implementation of get with a retry flag to
// prevent unbounded recursion on persistent rate limiting.
func (client *Client) getWithRetry(ctx context.Context, path, accept string, isRetry bool) (*response, error) {
	if err := client.rateLimit.wait(ctx); err != nil {
		return nil, err
	}

	status, resp, err := client.send(ctx, path, accept)
	if err != nil {
		return nil, err
	}

	if status < 200 || status >= 300 {
		// Rate limited: back off and retry once.
		if !isRetry && (status == http.StatusTooManyRequests ||
			(status == http.StatusForbidden && isRateLimitMessage(string(resp.body)))) {
			retryDuration := client.rateLimit.retryAfter(resp.header)
			if retryDuration > 0 {
				client.logger.Info("rate limited, backing off",
					"duration", retryDuration,
					"path", path,
				)

				select {
				case <-client.clock.After(retryDuration):
				case <-ctx.Done():
					return nil, ctx.Err()
				}

				return client.getWithRetry(ctx, path, accept, true)
			}
		}

		return nil, parseAPIErrorFromBody(status, resp.body)
	}

	return resp, nil
}

// send performs one HTTP round trip and records the rate limit headers.
// Error bodies are read best-effort: a truncated body still makes a
// useful error message.
func (client *Client) send(ctx context.Context, path, accept string) (int, *response, error) {
	url := client.baseURL + path
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("github: creating request: %w", err)
	}

	if header := client.auth.AuthorizationHeader(); header != "" {
		request.Header.Set("Authorization", header)
	}
	request.Header.Set("Accept", accept)
	request.Header.Set("User-Agent", client.userAgent)
	request.Header.Set("X-GitHub-Api-Version", githubAPIVersion)

	httpResponse, err := client.httpClient.Do(request)
	if err != nil {
		return 0, nil, fmt.Errorf("github: GET %s: %w", url, err)
	}
	defer httpResponse.Body.Close()

	client.rateLimit.update(httpResponse.Header)

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode >= 300 {
		body := netutil.ErrorBody(httpResponse.Body)
		return httpResponse.StatusCode, &response{body: []byte(body), header: httpResponse.Header}, nil
	}

	body, err := netutil.ReadResponse(httpResponse.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("github: reading response body: %w", err)
	}
	return httpResponse.StatusCode, &response{body: body, header: httpResponse.Header}, nil
}

// getJSON is a convenience method for GET requests that return a JSON
// document. Decodes the response into result.
func (client *Client) getJSON(ctx context.Context, path string, result any) error {
	resp, err := client.get(ctx, path, mediaTypeJSON)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.body, result); err != nil {
		return fmt.Errorf("github: decoding %s: %w", path, err)
	}
	return nil
}

// parseAPIErrorFromBody parses a GitHub API error from a status code
// and response body.
func parseAPIErrorFromBody(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode}

	var wireError struct {
		Message          string `json:"message"`
		DocumentationURL string `json:"documentation_url"`
	}
	if json.Unmarshal(body, &wireError) == nil && wireError.Message != "" {
		apiError.Message = wireError.Message
		apiError.DocumentationURL = wireError.DocumentationURL
	} else {
		apiError.Message = strings.TrimSpace(string(body))
	}

	return apiError
}
