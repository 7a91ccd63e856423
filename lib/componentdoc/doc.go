// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package componentdoc resolves documentation for a named UI component
// from a remote documentation tree and extracts its prop schema.
//
// A documentation tree keeps each component under one of two category
// roots, "components" and "layouts", with up to three artifacts per
// component:
//
//	<docs root>/components/Button/description.md
//	<docs root>/components/Button/props.md
//	<docs root>/components/Button/examples/basic-usage.md
//	<docs root>/layouts/Button/...
//
// Resolution is best-effort. [Source.Candidates] guesses every location
// an artifact could live at, the [Fetcher] tries each one exactly once
// and keeps whatever it finds, and the [Resolver] decides what the
// caller gets:
//
//   - [Resolver.ResolveDocument] returns every artifact that exists
//     and fails with [*NotFoundError] only when none does.
//   - [Resolver.ResolvePropSchema] reads the first props artifact found
//     (component before layout) and extracts a [PropSchema] from it.
//     Absence degrades to an empty schema, never an error.
//
// Props artifacts come in two formats. A markdown table
// ("| Name | Type | Default | Description |") is handled by
// [TableExtractor]; a TypeScript/TSX source declaration
// ("interface ButtonProps { ... }" with JSDoc comments), either bare or
// inside fenced code blocks of a markdown file, is handled by
// [DeclarationExtractor]. Both implement [Extractor] and never fail:
// content that cannot be interpreted yields an empty or partial schema.
//
// Nothing is cached. Every resolution call retrieves its artifacts
// afresh and returns values owned by the caller.
package componentdoc
