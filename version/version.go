// Package version holds the program version.
package version

import "github.com/coreos/go-semver/semver"

// Version is the semantic version of ip-filter.
const Version = "1.2.0"

// Semver returns Version parsed as a semantic version.
func Semver() *semver.Version {
	return semver.New(Version)
}
