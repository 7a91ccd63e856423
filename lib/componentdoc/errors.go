// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package componentdoc

import (
	"errors"
	"fmt"
)

// ErrNotFound matches any *NotFoundError with errors.Is.
var ErrNotFound = errors.New("component not found")

// NotFoundError reports that full-document resolution found no
// artifact at any candidate location.
type NotFoundError struct {
	// Component is the requested component name, verbatim.
	Component string

	// Source is the documentation tree that was searched.
	Source Source
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("component %q not found in documentation source %s", err.Component, err.Source)
}

// Is reports whether target is ErrNotFound.
func (err *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
