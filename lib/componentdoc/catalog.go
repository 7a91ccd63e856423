// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package componentdoc

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/bureau-foundation/designdoc/lib/github"
)

// Lister lists the subdirectories of a documentation tree directory.
// A missing directory is reported with an error wrapping
// fs.ErrNotExist.
type Lister interface {
	List(ctx context.Context, dir string) ([]string, error)
}

// DirectoryReader is the part of the GitHub client a GitHubLister
// needs. *github.Client implements it.
type DirectoryReader interface {
	ListDirectory(ctx context.Context, owner, repo, path, ref string) ([]github.ContentEntry, error)
}

// GitHubLister lists directories of a GitHub repository through the
// contents API.
type GitHubLister struct {
	client DirectoryReader
	source Source
}

// NewGitHubLister creates a lister reading source through client.
func NewGitHubLister(client DirectoryReader, source Source) *GitHubLister {
	return &GitHubLister{client: client, source: source}
}

// List returns the names of the "dir" entries of dir.
func (lister *GitHubLister) List(ctx context.Context, dir string) ([]string, error) {
	entries, err := lister.client.ListDirectory(ctx, lister.source.Owner, lister.source.Repo, dir, lister.source.Branch)
	if err != nil {
		if github.IsNotFound(err) {
			return nil, fmt.Errorf("%s: %w", dir, fs.ErrNotExist)
		}
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.Type == "dir" {
			names = append(names, entry.Name)
		}
	}
	return names, nil
}

// List returns the names of the subdirectories of dir.
func (retriever *FSRetriever) List(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if dir == "" {
		dir = "."
	}
	entries, err := fs.ReadDir(retriever.fsys, dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// CatalogEntry is one documented component found by ListComponents.
type CatalogEntry struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// ListComponents lists the component directories under the given
// category roots of source, or under every category root when none is
// given. Entries are sorted by name within each category, and
// categories keep precedence order. A category root that does not
// exist contributes no entries.
func ListComponents(ctx context.Context, lister Lister, source Source, only ...Category) ([]CatalogEntry, error) {
	selected := categories
	if len(only) > 0 {
		selected = only
	}

	var entries []CatalogEntry
	for _, category := range selected {
		names, err := lister.List(ctx, source.CategoryPath(category))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", category, err)
		}
		slices.Sort(names)
		for _, name := range names {
			entries = append(entries, CatalogEntry{Name: name, Category: category})
		}
	}
	return entries, nil
}

// ParseCategory returns the category named by name: "components" or
// "layouts".
func ParseCategory(name string) (Category, error) {
	for _, category := range categories {
		if string(category) == name {
			return category, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (valid: %s, %s)", name, CategoryComponent, CategoryLayout)
}
