// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

// ToolAnnotations describes behavioral properties of a CLI command
// when exposed as a tool by the MCP server. The server translates
// these into protocol hints that help agents decide which tools are
// safe to call and which can be retried.
//
// All fields are pointers. A nil field means "unspecified" and the
// client applies the MCP defaults (not read-only, destructive, not
// idempotent, open-world).
type ToolAnnotations struct {
	// ReadOnly is true when the command never modifies state.
	ReadOnly *bool

	// Destructive is true when the command may irreversibly remove
	// or damage data.
	Destructive *bool

	// Idempotent is true when repeated calls with identical arguments
	// produce the same result.
	Idempotent *bool

	// OpenWorld is true when the command reaches systems outside the
	// process, such as the GitHub API.
	OpenWorld *bool
}

// ReadOnly returns annotations for commands that compute their result
// locally without side effects: paths, version.
func ReadOnly() *ToolAnnotations {
	return &ToolAnnotations{
		ReadOnly:    boolPtr(true),
		Destructive: boolPtr(false),
		Idempotent:  boolPtr(true),
		OpenWorld:   boolPtr(false),
	}
}

// RemoteReadOnly returns annotations for commands that read from the
// documentation source: show, props, list, info. They are idempotent
// only as far as the upstream repository does not change between
// calls.
func RemoteReadOnly() *ToolAnnotations {
	return &ToolAnnotations{
		ReadOnly:    boolPtr(true),
		Destructive: boolPtr(false),
		Idempotent:  boolPtr(true),
		OpenWorld:   boolPtr(true),
	}
}

func boolPtr(value bool) *bool {
	return &value
}
