// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/designdoc/lib/componentdoc"
)

// componentCollection is the resource collection of component
// documentation.
const componentCollection = "components"

// propsView selects the prop schema of a component resource.
const propsView = "props"

// ComponentProvider exposes component documentation as resources:
//
//	designdoc://components/{name}        every artifact, as {path: content}
//	designdoc://components/{name}/props  the prop schema
//
// resources/list enumerates the documented components of the source;
// the templates cover any name.
type ComponentProvider struct {
	resolver *componentdoc.Resolver
	lister   componentdoc.Lister
	logger   *slog.Logger
}

// NewComponentProvider creates a component resource provider.
// lister may be nil, in which case only the templates are listed.
func NewComponentProvider(resolver *componentdoc.Resolver, lister componentdoc.Lister, logger *slog.Logger) *ComponentProvider {
	return &ComponentProvider{resolver: resolver, lister: lister, logger: logger}
}

// Handles returns true for designdoc://components/ URIs.
func (p *ComponentProvider) Handles(uri string) bool {
	parsed, err := parseResourceURI(uri)
	return err == nil && parsed.Collection == componentCollection
}

// List returns one resource per documented component, plus the two
// templates. Listing failures are logged and yield the templates only.
func (p *ComponentProvider) List(ctx context.Context) ([]resourceDescription, []resourceTemplate) {
	templates := []resourceTemplate{
		{
			URITemplate: resourceScheme + componentCollection + "/{name}",
			Name:        "component-documentation",
			Title:       "Component documentation",
			Description: "Every documentation artifact of a design system component, as a JSON object mapping artifact path to markdown content.",
			MIMEType:    "application/json",
		},
		{
			URITemplate: resourceScheme + componentCollection + "/{name}/" + propsView,
			Name:        "component-props",
			Title:       "Component props",
			Description: "The prop schema of a design system component: a JSON object mapping prop name to type, default value, and description.",
			MIMEType:    "application/json",
		},
	}

	if p.lister == nil {
		return nil, templates
	}
	entries, err := componentdoc.ListComponents(ctx, p.lister, p.resolver.Source())
	if err != nil {
		p.logger.Warn("listing components for resources", "error", err)
		return nil, templates
	}

	resources := make([]resourceDescription, 0, len(entries))
	for _, entry := range entries {
		resources = append(resources, resourceDescription{
			URI:         resourceScheme + componentCollection + "/" + entry.Name,
			Name:        entry.Name,
			Description: fmt.Sprintf("Documentation of %s (%s).", entry.Name, entry.Category),
			MIMEType:    "application/json",
			Annotations: &resourceAnnotation{Audience: []string{"assistant"}, Priority: 0.5},
		})
	}
	return resources, templates
}

// Read resolves the component named by uri.
func (p *ComponentProvider) Read(ctx context.Context, uri string) ([]resourceContent, error) {
	parsed, err := parseResourceURI(uri)
	if err != nil {
		return nil, err
	}
	if parsed.Name == "" {
		return nil, fmt.Errorf("%w: component name required", errUnknownResource)
	}

	var value any
	switch parsed.View {
	case "":
		set, err := p.resolver.ResolveDocument(ctx, parsed.Name)
		if err != nil {
			return nil, err
		}
		value = set
	case propsView:
		resolution := p.resolver.ResolveProps(ctx, parsed.Name)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		value = resolution.Schema
	default:
		return nil, fmt.Errorf("%w: view %q", errUnknownResource, parsed.View)
	}

	text, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", uri, err)
	}
	return []resourceContent{{URI: uri, MIMEType: "application/json", Text: string(text)}}, nil
}
