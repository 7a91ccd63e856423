// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for designdoc.
//
// Configuration is loaded from a single file specified by either the
// DESIGNDOC_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no ~/.config discovery and no automatic
// file search. When neither names a file, [Load] returns [Default],
// which points at the public documentation repository.
//
// Files ending in .json or .jsonc are read as JSON with comments and
// trailing commas; every other file is read as YAML.
//
// The configuration file supports environment-specific sections
// (development, staging, production) that override base values when
// [Config].Environment matches. Production defaults are quieter:
// logging drops to warn unless the file says otherwise.
//
// Variable expansion is performed on path fields after loading:
// ${HOME} and ${VAR:-default} patterns are expanded. No other
// environment variables override config values.
//
// Key exports:
//
//   - [Config] -- master struct with Source, GitHub, Resolution, Logging
//   - [Default] -- returns a Config with development defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other designdoc packages.
package config
