// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package componentdoc

import (
	"fmt"
	"strings"
)

// DefaultDocsRoot is the directory inside the documentation repository
// that holds the category roots.
const DefaultDocsRoot = "mui-design-system-docs/docs"

// Category is a content category root in the documentation tree.
type Category string

const (
	CategoryComponent Category = "components"
	CategoryLayout    Category = "layouts"
)

// categories lists the category roots in precedence order.
var categories = []Category{CategoryComponent, CategoryLayout}

// ArtifactKind identifies one documentation artifact of a component.
type ArtifactKind string

const (
	KindDescription ArtifactKind = "description"
	KindProps       ArtifactKind = "props"
	KindExample     ArtifactKind = "example"
)

// artifactKinds lists the artifact kinds in precedence order within a
// category.
var artifactKinds = []ArtifactKind{KindDescription, KindProps, KindExample}

// ParseKind returns the artifact kind named by name: "description",
// "props" or "example".
func ParseKind(name string) (ArtifactKind, error) {
	for _, kind := range artifactKinds {
		if string(kind) == name {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown artifact kind %q (valid: %s, %s, %s)", name, KindDescription, KindProps, KindExample)
}

// file returns the artifact's path relative to the component directory.
func (kind ArtifactKind) file() string {
	switch kind {
	case KindDescription:
		return "description.md"
	case KindProps:
		return "props.md"
	case KindExample:
		return "examples/basic-usage.md"
	default:
		panic(fmt.Sprintf("componentdoc: unknown artifact kind %q", string(kind)))
	}
}

// Source locates the documentation tree: which repository, which
// branch, and where inside it the category roots live. It is a plain
// value so callers can point the engine at a fork or a test fixture.
type Source struct {
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
	Branch string `json:"branch"`

	// DocsRoot is the repository-relative directory containing the
	// "components" and "layouts" roots. Empty means the repository
	// root.
	DocsRoot string `json:"docs_root"`

	// LocalPath is the directory of a local checkout when artifacts are
	// read from disk rather than from GitHub. Only String uses it:
	// candidate paths are repository-relative either way.
	LocalPath string `json:"local_path,omitempty"`
}

// String returns "owner/repo@branch", or "checkout <path>" for a local
// checkout.
func (source Source) String() string {
	if source.LocalPath != "" {
		return "checkout " + source.LocalPath
	}
	return fmt.Sprintf("%s/%s@%s", source.Owner, source.Repo, source.Branch)
}

// Candidate is one guessed location of a documentation artifact.
type Candidate struct {
	Category Category     `json:"category"`
	Kind     ArtifactKind `json:"kind"`

	// Path is the repository-relative location of the artifact.
	Path string `json:"path"`
}

// Candidates is an ordered candidate sequence. Order is precedence:
// earlier candidates win wherever one artifact must be chosen.
type Candidates []Candidate

// Paths returns the candidate paths in order.
func (candidates Candidates) Paths() []string {
	paths := make([]string, len(candidates))
	for i, candidate := range candidates {
		paths[i] = candidate.Path
	}
	return paths
}

// Candidates returns the six candidate locations for a component, in
// order: component description, props, example, then layout
// description, props, example. The name is interpolated verbatim, with
// no case folding or cleaning, and any string is accepted. No network
// access happens here.
func (source Source) Candidates(component string) Candidates {
	candidates := make(Candidates, 0, len(categories)*len(artifactKinds))
	for _, category := range categories {
		for _, kind := range artifactKinds {
			candidates = append(candidates, source.candidate(category, kind, component))
		}
	}
	return candidates
}

// PropsCandidates returns the two props candidate locations for a
// component: the component-category props artifact first, then the
// layout-category one.
func (source Source) PropsCandidates(component string) Candidates {
	candidates := make(Candidates, 0, len(categories))
	for _, category := range categories {
		candidates = append(candidates, source.candidate(category, KindProps, component))
	}
	return candidates
}

// CategoryPath returns the repository-relative directory of a category
// root, for listing the components it contains.
func (source Source) CategoryPath(category Category) string {
	return joinPath(source.DocsRoot, string(category))
}

func (source Source) candidate(category Category, kind ArtifactKind, component string) Candidate {
	return Candidate{
		Category: category,
		Kind:     kind,
		Path:     source.CategoryPath(category) + "/" + component + "/" + kind.file(),
	}
}

// joinPath joins slash-separated path elements, trimming separators
// and skipping empty elements.
func joinPath(elements ...string) string {
	parts := make([]string, 0, len(elements))
	for _, element := range elements {
		element = strings.Trim(element, "/")
		if element != "" {
			parts = append(parts, element)
		}
	}
	return strings.Join(parts, "/")
}
