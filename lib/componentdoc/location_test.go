// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package componentdoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testSource = Source{
	Owner:    "acme",
	Repo:     "design-docs",
	Branch:   "master",
	DocsRoot: DefaultDocsRoot,
}

func TestCandidates_Order(t *testing.T) {
	want := []string{
		"mui-design-system-docs/docs/components/Button/description.md",
		"mui-design-system-docs/docs/components/Button/props.md",
		"mui-design-system-docs/docs/components/Button/examples/basic-usage.md",
		"mui-design-system-docs/docs/layouts/Button/description.md",
		"mui-design-system-docs/docs/layouts/Button/props.md",
		"mui-design-system-docs/docs/layouts/Button/examples/basic-usage.md",
	}
	if diff := cmp.Diff(want, testSource.Candidates("Button").Paths()); diff != "" {
		t.Errorf("Candidates paths mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidates_CategoriesAndKinds(t *testing.T) {
	candidates := testSource.Candidates("Card")
	if len(candidates) != 6 {
		t.Fatalf("len(Candidates) = %d, want 6", len(candidates))
	}
	for i, candidate := range candidates {
		wantCategory := CategoryComponent
		if i >= 3 {
			wantCategory = CategoryLayout
		}
		wantKind := []ArtifactKind{KindDescription, KindProps, KindExample}[i%3]
		if candidate.Category != wantCategory || candidate.Kind != wantKind {
			t.Errorf("candidate %d = (%s, %s), want (%s, %s)",
				i, candidate.Category, candidate.Kind, wantCategory, wantKind)
		}
	}
}

func TestPropsCandidates(t *testing.T) {
	want := Candidates{
		{Category: CategoryComponent, Kind: KindProps, Path: "mui-design-system-docs/docs/components/Grid/props.md"},
		{Category: CategoryLayout, Kind: KindProps, Path: "mui-design-system-docs/docs/layouts/Grid/props.md"},
	}
	if diff := cmp.Diff(want, testSource.PropsCandidates("Grid")); diff != "" {
		t.Errorf("PropsCandidates mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidates_NameIsVerbatim(t *testing.T) {
	// Names are not normalized: case, spaces, and even the empty name
	// flow into the path unchanged.
	tests := []struct {
		name string
		want string
	}{
		{"button", "mui-design-system-docs/docs/components/button/props.md"},
		{"Date Picker", "mui-design-system-docs/docs/components/Date Picker/props.md"},
		{"", "mui-design-system-docs/docs/components//props.md"},
	}
	for _, test := range tests {
		got := testSource.PropsCandidates(test.name)[0].Path
		if got != test.want {
			t.Errorf("PropsCandidates(%q)[0] = %q, want %q", test.name, got, test.want)
		}
	}
}

func TestCategoryPath(t *testing.T) {
	tests := []struct {
		docsRoot string
		want     string
	}{
		{"", "layouts"},
		{"docs", "docs/layouts"},
		{"/docs/", "docs/layouts"},
		{"a/b/c", "a/b/c/layouts"},
	}
	for _, test := range tests {
		source := Source{DocsRoot: test.docsRoot}
		if got := source.CategoryPath(CategoryLayout); got != test.want {
			t.Errorf("CategoryPath with root %q = %q, want %q", test.docsRoot, got, test.want)
		}
	}
}

func TestSourceString(t *testing.T) {
	if got := testSource.String(); got != "acme/design-docs@master" {
		t.Errorf("String() = %q", got)
	}

	local := testSource
	local.LocalPath = "/src/design-docs"
	if got := local.String(); got != "checkout /src/design-docs" {
		t.Errorf("local String() = %q", got)
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range []ArtifactKind{KindDescription, KindProps, KindExample} {
		parsed, err := ParseKind(string(kind))
		if err != nil || parsed != kind {
			t.Errorf("ParseKind(%s) = %q, %v", kind, parsed, err)
		}
	}
	if _, err := ParseKind("examples/basic-usage.md"); err == nil {
		t.Error("ParseKind accepted a file name")
	}
}
