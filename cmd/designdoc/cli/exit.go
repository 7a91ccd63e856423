// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError ends a command with a non-zero status after the command
// has printed its own report, such as "component paths --check" when
// no documentation exists. process.Exit uses Code and prints nothing.
type ExitError struct {
	Code int
}

func (err *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", err.Code)
}

// ExitCode implements the interface process.Exit checks for.
func (err *ExitError) ExitCode() int {
	return err.Code
}
