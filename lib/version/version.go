// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set via -ldflags at build time.
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// GitDirty indicates whether there were uncommitted changes.
	GitDirty = "false"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"
)

// Build is the machine-readable form of the build information.
type Build struct {
	Version   string `json:"version" desc:"semantic version"`
	Commit    string `json:"commit" desc:"git commit of the build"`
	Dirty     bool   `json:"dirty" desc:"whether the build had uncommitted changes"`
	BuildTime string `json:"build_time" desc:"UTC build timestamp"`
	GoVersion string `json:"go_version" desc:"Go toolchain version"`
	Platform  string `json:"platform" desc:"GOOS/GOARCH"`
}

// Current returns the build information of the running binary. When
// the commit was not injected with -ldflags, the VCS stamp recorded by
// the Go toolchain is used instead.
func Current() Build {
	build := Build{
		Version:   Version,
		Commit:    GitCommit,
		Dirty:     GitDirty == "true",
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if build.Commit != "unknown" {
		return build
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				build.Commit = shortCommit(setting.Value)
			case "vcs.modified":
				build.Dirty = setting.Value == "true"
			case "vcs.time":
				if build.BuildTime == "unknown" {
					build.BuildTime = setting.Value
				}
			}
		}
	}
	return build
}

func shortCommit(revision string) string {
	if len(revision) > 7 {
		return revision[:7]
	}
	return revision
}

// Info returns a formatted version string suitable for --version output.
func Info() string {
	build := Current()
	dirty := ""
	if build.Dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", build.Version, build.Commit, dirty, build.BuildTime)
}

// Full returns detailed version information including Go version.
func Full() string {
	build := Current()
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s", Info(), build.GoVersion, build.Platform)
}

// UserAgent returns the HTTP User-Agent for product, such as
// "designdoc/0.1.0-dev".
func UserAgent(product string) string {
	return product + "/" + Version
}
