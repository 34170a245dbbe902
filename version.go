// Package markcmd holds release metadata shared by the markcmd binaries.
package markcmd

import (
	_ "embed"
	"regexp"
	"runtime/debug"
	"strings"
)

var semverRE = regexp.MustCompile(`^v?(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var releaseVersion string

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Release is the version recorded in the VERSION file.
func Release() string {
	return strings.TrimSpace(releaseVersion)
}

// Version resolves the version to report. A linker-stamped value wins, then
// the module version from `go install`, then Release.
func Version(stamped string) string {
	if v := strings.TrimSpace(stamped); v != "" && v != "dev" {
		return strings.TrimPrefix(v, "v")
	}
	if info, ok := readBuildInfo(); ok && IsSemver(info.Main.Version) {
		return strings.TrimPrefix(info.Main.Version, "v")
	}
	return Release()
}

// IsSemver reports whether v is a SemVer 2.0.0 string, with or without a
// leading "v".
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
