package casekit

import (
	"fmt"
	"runtime"
)

var (
	// version, commit, and buildTime are set via ldflags during release builds.
	// For development builds they keep these defaults.
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or 'unknown'.
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or 'unknown'.
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the client identifier used by the MCP server.
func UserAgent() string {
	return fmt.Sprintf("casekit/%s", version)
}

// BuildInfo returns all build metadata as a multi-line string for
// `casekit version`.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}
