// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bureau-foundation/designdoc/cmd/designdoc/cli"
)

// ResourceProvider is the interface for a class of MCP resources. Each
// provider owns a set of URIs and knows how to list the resources
// available and read their content.
type ResourceProvider interface {
	// Handles returns true if this provider owns the given URI. The
	// server routes resources/read to the first provider that returns
	// true.
	Handles(uri string) bool

	// List returns concrete resource descriptions and URI templates
	// available from this provider.
	List(ctx context.Context) ([]resourceDescription, []resourceTemplate)

	// Read returns the current content of a resource. The URI has
	// already been accepted by Handles.
	Read(ctx context.Context, uri string) ([]resourceContent, error)
}

// errUnknownResource is returned by Read for a URI the provider
// handles but has nothing at.
var errUnknownResource = errors.New("unknown resource")

// resourceScheme prefixes every designdoc resource URI.
const resourceScheme = "designdoc://"

// resourceURI is a parsed designdoc:// resource URI:
//
//	"designdoc://components/Button"       → {Collection: "components", Name: "Button"}
//	"designdoc://components/Button/props" → {Collection: "components", Name: "Button", View: "props"}
type resourceURI struct {
	// Collection is the top-level resource collection.
	Collection string

	// Name is the component name, used verbatim.
	Name string

	// View selects a projection of the resource. Empty for the full
	// document.
	View string
}

// parseResourceURI parses a designdoc:// URI. Names never contain a
// slash, so a URI has at most three path segments.
func parseResourceURI(uri string) (resourceURI, error) {
	path, ok := strings.CutPrefix(uri, resourceScheme)
	if !ok {
		return resourceURI{}, fmt.Errorf("unsupported URI scheme: %s", uri)
	}
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return resourceURI{}, fmt.Errorf("empty resource path: %s", uri)
	}

	segments := strings.Split(path, "/")
	if len(segments) > 3 {
		return resourceURI{}, fmt.Errorf("too many path segments: %s", uri)
	}
	for _, segment := range segments {
		if segment == "" {
			return resourceURI{}, fmt.Errorf("empty path segment: %s", uri)
		}
	}

	parsed := resourceURI{Collection: segments[0]}
	if len(segments) > 1 {
		parsed.Name = segments[1]
	}
	if len(segments) > 2 {
		parsed.View = segments[2]
	}
	return parsed, nil
}

func (s *Server) handleResourcesList(ctx context.Context, encoder *json.Encoder, req *request) error {
	resources := []resourceDescription{}
	for _, provider := range s.providers {
		listed, _ := provider.List(ctx)
		resources = append(resources, listed...)
	}
	return writeResult(encoder, req.ID, resourcesListResult{Resources: resources})
}

func (s *Server) handleResourceTemplatesList(ctx context.Context, encoder *json.Encoder, req *request) error {
	templates := []resourceTemplate{}
	for _, provider := range s.providers {
		_, listed := provider.List(ctx)
		templates = append(templates, listed...)
	}
	return writeResult(encoder, req.ID, resourceTemplatesListResult{ResourceTemplates: templates})
}

func (s *Server) handleResourcesRead(ctx context.Context, encoder *json.Encoder, req *request) error {
	var params resourcesReadParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return writeError(encoder, req.ID, codeInvalidParams, "invalid resources/read params: "+err.Error())
		}
	}
	if params.URI == "" {
		return writeError(encoder, req.ID, codeInvalidParams, "uri required for resources/read")
	}

	for _, provider := range s.providers {
		if !provider.Handles(params.URI) {
			continue
		}
		contents, err := provider.Read(ctx, params.URI)
		if err != nil {
			s.logger.Debug("mcp resource read failed", "uri", params.URI, "error", err)
			if info := classifyError(err); errors.Is(err, errUnknownResource) || info.Category == string(cli.CategoryNotFound) {
				return writeError(encoder, req.ID, codeResourceNotFound, "unknown resource: "+params.URI+": "+err.Error())
			}
			return writeError(encoder, req.ID, codeInternalError, "reading "+params.URI+": "+err.Error())
		}
		return writeResult(encoder, req.ID, resourcesReadResult{Contents: contents})
	}
	return writeError(encoder, req.ID, codeResourceNotFound, "unknown resource: "+params.URI)
}
