// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides binary entrypoint helpers: fatal error
// reporting to stderr before or without the structured logger, and
// process exit with the code carried by a command's error.
package process
