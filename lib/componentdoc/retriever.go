// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package componentdoc

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/bureau-foundation/designdoc/lib/github"
	"github.com/bureau-foundation/designdoc/lib/netutil"
)

// errNotText is returned by retrievers when an artifact exists but its
// payload is not usable text.
var errNotText = errors.New("payload is not text")

// RawContentGetter is the part of the GitHub client a GitHubRetriever
// needs. *github.Client implements it.
type RawContentGetter interface {
	GetRawContent(ctx context.Context, owner, repo, path, ref string) (*github.RawContent, error)
}

// GitHubRetriever retrieves artifacts from a GitHub repository through
// the contents API, on the branch named by its Source.
type GitHubRetriever struct {
	client RawContentGetter
	source Source
}

// NewGitHubRetriever creates a retriever reading from source through
// client.
func NewGitHubRetriever(client RawContentGetter, source Source) *GitHubRetriever {
	return &GitHubRetriever{client: client, source: source}
}

// Retrieve fetches the raw text at path. Non-2xx responses, transport
// failures, directory listings, and binary bodies are all errors.
func (retriever *GitHubRetriever) Retrieve(ctx context.Context, path string) (string, error) {
	content, err := retriever.client.GetRawContent(ctx, retriever.source.Owner, retriever.source.Repo, path, retriever.source.Branch)
	if err != nil {
		return "", err
	}
	if !netutil.IsTextPayload(content.ContentType, content.Body) {
		return "", fmt.Errorf("%s (%s): %w", path, content.ContentType, errNotText)
	}
	return string(content.Body), nil
}

// FSRetriever retrieves artifacts from a file system holding a checkout
// of the documentation repository, such as os.DirFS of a local clone.
type FSRetriever struct {
	fsys fs.FS
}

// NewFSRetriever creates a retriever reading from fsys. Paths are
// resolved relative to the root of fsys.
func NewFSRetriever(fsys fs.FS) *FSRetriever {
	return &FSRetriever{fsys: fsys}
}

// Retrieve reads the file at path. Paths that are not valid fs.FS
// paths, directories, and binary files are errors.
func (retriever *FSRetriever) Retrieve(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !fs.ValidPath(path) {
		return "", &fs.PathError{Op: "open", Path: path, Err: fs.ErrInvalid}
	}
	data, err := fs.ReadFile(retriever.fsys, path)
	if err != nil {
		return "", err
	}
	if !netutil.IsTextPayload("", data) {
		return "", fmt.Errorf("%s: %w", path, errNotText)
	}
	return string(data), nil
}
