// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestCurrentUsesInjectedValues(t *testing.T) {
	saved := []string{GitCommit, GitDirty, BuildTime}
	t.Cleanup(func() { GitCommit, GitDirty, BuildTime = saved[0], saved[1], saved[2] })

	GitCommit, GitDirty, BuildTime = "abc1234", "true", "2026-10-19T00:00:00Z"

	build := Current()
	if build.Commit != "abc1234" || !build.Dirty || build.BuildTime != "2026-10-19T00:00:00Z" {
		t.Errorf("Current() = %+v", build)
	}
	if build.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %q", build.Platform)
	}
	if got := Info(); got != Version+" (abc1234-dirty, 2026-10-19T00:00:00Z)" {
		t.Errorf("Info() = %q", got)
	}
	if got := Full(); !strings.Contains(got, "Go: "+runtime.Version()) {
		t.Errorf("Full() = %q", got)
	}
}

func TestShortCommit(t *testing.T) {
	if got := shortCommit("0123456789abcdef"); got != "0123456" {
		t.Errorf("shortCommit = %q", got)
	}
	if got := shortCommit("abc"); got != "abc" {
		t.Errorf("shortCommit = %q", got)
	}
}

func TestUserAgent(t *testing.T) {
	if got := UserAgent("designdoc"); got != "designdoc/"+Version {
		t.Errorf("UserAgent = %q", got)
	}
}
