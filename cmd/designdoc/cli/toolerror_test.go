// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestToolError_ErrorWithoutHint(t *testing.T) {
	err := Validation("component name is required")
	if err.Error() != "component name is required" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestToolError_ErrorWithHint(t *testing.T) {
	err := NotFound("component %q not found", "Buton").
		WithHint("Run 'designdoc component list' to see documented components.")

	want := "component \"Buton\" not found\n\nRun 'designdoc component list' to see documented components."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Category != CategoryNotFound {
		t.Errorf("Category = %q, want %q", err.Category, CategoryNotFound)
	}
}

func TestToolError_WithHintReturnsReceiver(t *testing.T) {
	original := Validation("bad input")
	if original.WithHint("fix it") != original {
		t.Error("WithHint should return the same pointer")
	}
}

func TestToolError_Unwrap(t *testing.T) {
	sentinel := errors.New("rate limited")
	wrapped := fmt.Errorf("resolving: %w", Transient("fetching: %w", sentinel).WithHint("retry later"))

	var toolErr *ToolError
	if !errors.As(wrapped, &toolErr) {
		t.Fatal("errors.As should find ToolError in wrapped chain")
	}
	if toolErr.Category != CategoryTransient || toolErr.Hint != "retry later" {
		t.Errorf("ToolError = %+v", toolErr)
	}
	if !errors.Is(wrapped, sentinel) {
		t.Error("errors.Is should see through ToolError")
	}
}

func TestToolError_Constructors(t *testing.T) {
	cases := []struct {
		err  *ToolError
		want ErrorCategory
	}{
		{Validation("x"), CategoryValidation},
		{NotFound("x"), CategoryNotFound},
		{Forbidden("x"), CategoryForbidden},
		{Transient("x"), CategoryTransient},
		{Internal("x"), CategoryInternal},
	}
	for _, tc := range cases {
		if tc.err.Category != tc.want {
			t.Errorf("Category = %q, want %q", tc.err.Category, tc.want)
		}
	}
}
