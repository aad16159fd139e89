package main

import "fmt"

var (
	// Set at build time via go build -ldflags
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// GetVersionInfo returns formatted version information
func GetVersionInfo() string {
	return fmt.Sprintf("Agent Segmenter v%s (commit: %s, built: %s)", Version, GitCommit, BuildTime)
}

// GetGitCommit returns the build-time commit hash
func GetGitCommit() string {
	return GitCommit
}

// GetBuildInfo returns detailed build information
func GetBuildInfo() string {
	return fmt.Sprintf("Agent Segmenter v%s\nCommit: %s\nBuild Time: %s", Version, GitCommit, BuildTime)
}
