// Package version holds the build identity injected by the release
// pipeline via -ldflags.
package version

var (
	// Version is injected during build.
	Version = "dev"
	// Commit is injected during build.
	Commit = "none"
	// BuildDate is injected during build.
	BuildDate = "unknown"
)
