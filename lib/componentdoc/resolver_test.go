// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package componentdoc

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const buttonPropsTable = "| Name | Type | Default | Description |\n" +
	"|------|------|---------|-------------|\n" +
	"| color | string | \"primary\" | Button color |\n" +
	"| disabled | boolean |  | Disables the button |\n"

func newTestResolver(t *testing.T, retriever Retriever) *Resolver {
	t.Helper()
	resolver, err := NewResolver(Config{Source: testSource, Retriever: retriever})
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return resolver
}

func TestResolveDocument_AllAbsent(t *testing.T) {
	resolver := newTestResolver(t, newMapRetriever(nil))

	set, err := resolver.ResolveDocument(context.Background(), "Nonexistent")
	if set != nil {
		t.Errorf("ResolveDocument returned a set: %v", set.Paths())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error %T is not *NotFoundError", err)
	}
	if notFound.Component != "Nonexistent" {
		t.Errorf("NotFoundError.Component = %q", notFound.Component)
	}
	want := `component "Nonexistent" not found in documentation source acme/design-docs@master`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestResolveDocument_PartialSuccess(t *testing.T) {
	candidates := testSource.Candidates("Button")
	retriever := newMapRetriever(map[string]string{
		candidates[0].Path: "# Button",
		candidates[1].Path: buttonPropsTable,
		candidates[4].Path: "layout props",
	})
	resolver := newTestResolver(t, retriever)

	set, err := resolver.ResolveDocument(context.Background(), "Button")
	if err != nil {
		t.Fatalf("ResolveDocument: %v", err)
	}

	want := map[string]string{
		candidates[0].Path: "# Button",
		candidates[1].Path: buttonPropsTable,
		candidates[4].Path: "layout props",
	}
	got := make(map[string]string)
	for _, artifact := range set.Artifacts {
		got[artifact.Path] = artifact.Content
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("artifact set mismatch (-want +got):\n%s", diff)
	}
	wantPaths := []string{candidates[0].Path, candidates[1].Path, candidates[4].Path}
	if diff := cmp.Diff(wantPaths, set.Paths()); diff != "" {
		t.Errorf("artifact order mismatch (-want +got):\n%s", diff)
	}
	if _, ok := set.Content(candidates[2].Path); ok {
		t.Error("absent candidate present in the set")
	}
	if artifact, ok := set.Kind(KindProps); !ok || artifact.Category != CategoryComponent {
		t.Errorf("Kind(KindProps) = %+v, %v", artifact, ok)
	}
	for _, path := range candidates.Paths() {
		if got := retriever.callCount(path); got != 1 {
			t.Errorf("%s retrieved %d times, want 1", path, got)
		}
	}
}

func TestResolveDocument_JSONKeyedByPath(t *testing.T) {
	candidates := testSource.Candidates("Card")
	resolver := newTestResolver(t, newMapRetriever(map[string]string{
		candidates[3].Path: "layout description",
		candidates[2].Path: "example",
	}))

	set, err := resolver.ResolveDocument(context.Background(), "Card")
	if err != nil {
		t.Fatalf("ResolveDocument: %v", err)
	}
	encoded, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"` + candidates[2].Path + `":"example","` + candidates[3].Path + `":"layout description"}`
	if string(encoded) != want {
		t.Errorf("JSON = %s\nwant   %s", encoded, want)
	}
}

func TestResolveDocument_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	candidates := testSource.Candidates("Button")
	resolver := newTestResolver(t, newMapRetriever(map[string]string{
		candidates[0].Path: "# Button",
	}))

	_, err := resolver.ResolveDocument(ctx, "Button")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestResolvePropSchema_ComponentTakesPrecedence(t *testing.T) {
	candidates := testSource.PropsCandidates("Button")
	resolver := newTestResolver(t, newMapRetriever(map[string]string{
		candidates[0].Path: buttonPropsTable,
		candidates[1].Path: "| Name | Type | Default | Description |\n|---|---|---|---|\n| gap | number | 0 | Spacing |\n",
	}))

	resolution := resolver.ResolveProps(context.Background(), "Button")

	if resolution.Path != candidates[0].Path {
		t.Errorf("Path = %q, want %q", resolution.Path, candidates[0].Path)
	}
	if diff := cmp.Diff([]string{"color", "disabled"}, resolution.Schema.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestResolvePropSchema_LayoutFallback(t *testing.T) {
	candidates := testSource.PropsCandidates("Stack")
	resolver := newTestResolver(t, newMapRetriever(map[string]string{
		candidates[1].Path: "| Name | Type | Default | Description |\n|---|---|---|---|\n| gap | number | 0 | Spacing |\n",
	}))

	schema := resolver.ResolvePropSchema(context.Background(), "Stack")

	want := []PropDescriptor{{Name: "gap", Type: "number", DefaultValue: stringPointer("0"), Description: "Spacing"}}
	if diff := cmp.Diff(want, schema.Props()); diff != "" {
		t.Errorf("Props mismatch (-want +got):\n%s", diff)
	}
}

func TestResolvePropSchema_AbsentIsEmpty(t *testing.T) {
	retriever := newMapRetriever(nil)
	resolver := newTestResolver(t, retriever)

	resolution := resolver.ResolveProps(context.Background(), "Nonexistent")

	if resolution.Path != "" {
		t.Errorf("Path = %q, want empty", resolution.Path)
	}
	if resolution.Schema == nil || resolution.Schema.Len() != 0 {
		t.Errorf("Schema = %v, want empty", resolution.Schema)
	}
	// Only the props candidates are attempted.
	for _, candidate := range testSource.Candidates("Nonexistent") {
		want := 0
		if candidate.Kind == KindProps {
			want = 1
		}
		if got := retriever.callCount(candidate.Path); got != want {
			t.Errorf("%s retrieved %d times, want %d", candidate.Path, got, want)
		}
	}
}

func TestResolvePropSchema_Idempotent(t *testing.T) {
	candidates := testSource.PropsCandidates("Button")
	resolver := newTestResolver(t, newMapRetriever(map[string]string{
		candidates[0].Path: buttonPropsTable,
	}))

	first := resolver.ResolvePropSchema(context.Background(), "Button")
	second := resolver.ResolvePropSchema(context.Background(), "Button")

	if first.Digest() != second.Digest() {
		t.Errorf("digests differ: %s != %s", first.Digest(), second.Digest())
	}
	if first == second {
		t.Error("resolutions share a schema instance")
	}
}

func TestResolvePropSchema_DeclarationFallback(t *testing.T) {
	candidates := testSource.PropsCandidates("Avatar")
	content := "# Avatar\n\n```ts\ninterface AvatarProps {\n  /** Image source. */\n  src?: string;\n}\n```\n"
	retriever := newMapRetriever(map[string]string{candidates[0].Path: content})

	auto := newTestResolver(t, retriever).ResolvePropSchema(context.Background(), "Avatar")
	want := []PropDescriptor{{Name: "src", Type: "string", Description: "Image source."}}
	if diff := cmp.Diff(want, auto.Props()); diff != "" {
		t.Errorf("auto Props mismatch (-want +got):\n%s", diff)
	}

	tableOnly := newTestResolver(t, retriever).WithExtractor(NewExtractor(StrategyTable))
	if schema := tableOnly.ResolvePropSchema(context.Background(), "Avatar"); schema.Len() != 0 {
		t.Errorf("table strategy extracted %v from a declaration", schema.Names())
	}
}

func TestNewResolver_RequiresRetriever(t *testing.T) {
	if _, err := NewResolver(Config{Source: testSource}); err == nil {
		t.Error("NewResolver without a Retriever succeeded")
	}
}
