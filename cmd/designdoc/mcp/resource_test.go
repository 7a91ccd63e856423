// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/bureau-foundation/designdoc/lib/componentdoc"
)

func TestParseResourceURI(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    resourceURI
		wantErr string
	}{
		{name: "collection", uri: "designdoc://components", want: resourceURI{Collection: "components"}},
		{name: "component", uri: "designdoc://components/Button", want: resourceURI{Collection: "components", Name: "Button"}},
		{name: "props view", uri: "designdoc://components/Button/props", want: resourceURI{Collection: "components", Name: "Button", View: "props"}},
		{name: "trailing slash", uri: "designdoc://components/Button/", want: resourceURI{Collection: "components", Name: "Button"}},
		{name: "wrong scheme", uri: "https://components/Button", wantErr: "unsupported URI scheme"},
		{name: "empty path", uri: "designdoc://", wantErr: "empty resource path"},
		{name: "empty segment", uri: "designdoc://components//props", wantErr: "empty path segment"},
		{name: "too deep", uri: "designdoc://components/Button/props/extra", wantErr: "too many path segments"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseResourceURI(tc.uri)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("error = %v, want it to contain %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseResourceURI: %v", err)
			}
			if got != tc.want {
				t.Errorf("parseResourceURI = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func testProvider(t *testing.T) *ComponentProvider {
	t.Helper()
	checkout := fstest.MapFS{
		"docs/components/Button/description.md": {Data: []byte("# Button\n")},
		"docs/components/Button/props.md": {Data: []byte(
			"| Name | Type | Default | Description |\n|---|---|---|---|\n| size | string | medium | Size |\n")},
		"docs/layouts/Stack/description.md": {Data: []byte("# Stack\n")},
	}
	local := componentdoc.NewFSRetriever(checkout)
	logger := slog.New(slog.DiscardHandler)
	resolver, err := componentdoc.NewResolver(componentdoc.Config{
		Source:    componentdoc.Source{Owner: "acme", Repo: "design", Branch: "main", DocsRoot: "docs"},
		Retriever: local,
		Logger:    logger,
	})
	if err != nil {
		t.Fatal(err)
	}
	return NewComponentProvider(resolver, local, logger)
}

func TestComponentProvider_Handles(t *testing.T) {
	provider := testProvider(t)
	for uri, want := range map[string]bool{
		"designdoc://components/Button":       true,
		"designdoc://components/Button/props": true,
		"designdoc://layouts/Stack":           false,
		"https://components/Button":           false,
	} {
		if got := provider.Handles(uri); got != want {
			t.Errorf("Handles(%q) = %v, want %v", uri, got, want)
		}
	}
}

func TestComponentProvider_List(t *testing.T) {
	resources, templates := testProvider(t).List(context.Background())

	var uris []string
	for _, resource := range resources {
		uris = append(uris, resource.URI)
	}
	if diff := cmp.Diff([]string{"designdoc://components/Button", "designdoc://components/Stack"}, uris); diff != "" {
		t.Errorf("resource URIs mismatch (-want +got):\n%s", diff)
	}
	if len(templates) != 2 || templates[1].URITemplate != "designdoc://components/{name}/props" {
		t.Errorf("templates = %+v", templates)
	}
}

func TestComponentProvider_ReadDocument(t *testing.T) {
	contents, err := testProvider(t).Read(context.Background(), "designdoc://components/Stack")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(contents) != 1 || contents[0].MIMEType != "application/json" {
		t.Fatalf("contents = %+v", contents)
	}
	var document map[string]string
	if err := json.Unmarshal([]byte(contents[0].Text), &document); err != nil {
		t.Fatalf("decoding %q: %v", contents[0].Text, err)
	}
	if diff := cmp.Diff(map[string]string{"docs/layouts/Stack/description.md": "# Stack\n"}, document); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestComponentProvider_ReadProps(t *testing.T) {
	contents, err := testProvider(t).Read(context.Background(), "designdoc://components/Button/props")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := `{"size":{"type":"string","defaultValue":"medium","description":"Size"}}`
	if contents[0].Text != want {
		t.Errorf("props = %s, want %s", contents[0].Text, want)
	}
}

func TestComponentProvider_ReadErrors(t *testing.T) {
	provider := testProvider(t)

	if _, err := provider.Read(context.Background(), "designdoc://components/Missing"); !errors.Is(err, componentdoc.ErrNotFound) {
		t.Errorf("missing component error = %v, want ErrNotFound", err)
	}
	if _, err := provider.Read(context.Background(), "designdoc://components/Button/examples"); !errors.Is(err, errUnknownResource) {
		t.Errorf("unknown view error = %v, want errUnknownResource", err)
	}
	if _, err := provider.Read(context.Background(), "designdoc://components"); !errors.Is(err, errUnknownResource) {
		t.Errorf("bare collection error = %v, want errUnknownResource", err)
	}
}

func TestServer_Resources(t *testing.T) {
	server := NewServer(testCommandTree(), WithResourceProvider(testProvider(t)))
	responses := runSession(t, server, append(initMessages(),
		map[string]any{"jsonrpc": "2.0", "id": 1, "method": "resources/list"},
		map[string]any{"jsonrpc": "2.0", "id": 2, "method": "resources/templates/list"},
		map[string]any{"jsonrpc": "2.0", "id": 3, "method": "resources/read",
			"params": map[string]any{"uri": "designdoc://components/Button/props"}},
		map[string]any{"jsonrpc": "2.0", "id": 4, "method": "resources/read",
			"params": map[string]any{"uri": "designdoc://components/Missing"}},
		map[string]any{"jsonrpc": "2.0", "id": 5, "method": "resources/read",
			"params": map[string]any{"uri": "designdoc://other/thing"}},
		map[string]any{"jsonrpc": "2.0", "id": 6, "method": "resources/read"},
	)...)
	if len(responses) != 7 {
		t.Fatalf("got %d responses, want 7", len(responses))
	}

	var initialized initializeResult
	if err := json.Unmarshal(responses[0].Result, &initialized); err != nil {
		t.Fatal(err)
	}
	if initialized.Capabilities.Resources == nil {
		t.Error("resources capability not advertised")
	}

	var listed resourcesListResult
	if err := json.Unmarshal(responses[1].Result, &listed); err != nil {
		t.Fatal(err)
	}
	if len(listed.Resources) != 2 {
		t.Errorf("listed %d resources, want 2", len(listed.Resources))
	}

	var templates resourceTemplatesListResult
	if err := json.Unmarshal(responses[2].Result, &templates); err != nil {
		t.Fatal(err)
	}
	if len(templates.ResourceTemplates) != 2 {
		t.Errorf("listed %d templates, want 2", len(templates.ResourceTemplates))
	}

	var read resourcesReadResult
	if err := json.Unmarshal(responses[3].Result, &read); err != nil {
		t.Fatal(err)
	}
	if len(read.Contents) != 1 || !strings.Contains(read.Contents[0].Text, `"size"`) {
		t.Errorf("read = %+v", read)
	}

	for i, code := range map[int]int{4: codeResourceNotFound, 5: codeResourceNotFound, 6: codeInvalidParams} {
		if responses[i].Error == nil || responses[i].Error.Code != code {
			t.Errorf("response %d = %+v, want error code %d", i, responses[i], code)
		}
	}
}
