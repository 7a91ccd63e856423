// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Repository is the subset of repository metadata designdoc reports.
type Repository struct {
	FullName      string `json:"full_name"`
	Description   string `json:"description"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
	HTMLURL       string `json:"html_url"`
}

// ContentEntry is one entry of a directory listing from the contents
// API.
type ContentEntry struct {
	// Type is "file", "dir", "symlink", or "submodule".
	Type string `json:"type"`
	Name string `json:"name"`
	Path string `json:"path"`
	SHA  string `json:"sha"`
	Size int64  `json:"size"`
}

// RawContent is a file body fetched with the raw media type.
type RawContent struct {
	// Body is the file content, exactly as stored in the repository.
	Body []byte

	// ContentType is the response Content-Type header. GitHub answers
	// raw-media requests for a directory with a JSON listing, which
	// callers can detect from this value.
	ContentType string
}

// GetRepository returns metadata for owner/repo.
func (client *Client) GetRepository(ctx context.Context, owner, repo string) (*Repository, error) {
	var repository Repository
	path := fmt.Sprintf("/repos/%s/%s", url.PathEscape(owner), url.PathEscape(repo))
	if err := client.getJSON(ctx, path, &repository); err != nil {
		return nil, fmt.Errorf("getting repository %s/%s: %w", owner, repo, err)
	}
	return &repository, nil
}

// ListDirectory returns the entries of the directory at path in
// owner/repo at ref. An empty ref selects the default branch.
func (client *Client) ListDirectory(ctx context.Context, owner, repo, path, ref string) ([]ContentEntry, error) {
	var entries []ContentEntry
	if err := client.getJSON(ctx, contentsPath(owner, repo, path, ref), &entries); err != nil {
		return nil, fmt.Errorf("listing %s in %s/%s: %w", path, owner, repo, err)
	}
	return entries, nil
}

// GetRawContent returns the raw body of the file at path in owner/repo
// at ref. An empty ref selects the default branch. A missing file
// produces an *APIError for which IsNotFound reports true.
//
// Exactly one request is sent: a rate-limited response is returned as
// an error rather than waited out, and only 200 OK is a success.
func (client *Client) GetRawContent(ctx context.Context, owner, repo, path, ref string) (*RawContent, error) {
	resp, err := client.getOnce(ctx, contentsPath(owner, repo, path, ref), mediaTypeRaw)
	if err != nil {
		return nil, fmt.Errorf("fetching %s from %s/%s: %w", path, owner, repo, err)
	}
	return &RawContent{
		Body:        resp.body,
		ContentType: resp.header.Get("Content-Type"),
	}, nil
}

// contentsPath builds /repos/{owner}/{repo}/contents/{path}?ref={ref}.
// Each path segment is escaped individually so that slashes keep their
// meaning as separators.
func contentsPath(owner, repo, path, ref string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "/repos/%s/%s/contents/%s",
		url.PathEscape(owner), url.PathEscape(repo), strings.Join(segments, "/"))
	if ref != "" {
		builder.WriteString("?ref=")
		builder.WriteString(url.QueryEscape(ref))
	}
	return builder.String()
}
