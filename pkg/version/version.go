//go:build release
// +build release

package version

const Version = "v0.4.0"

const VersionGitRef = "release"
