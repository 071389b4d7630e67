// Package version reports build information stamped in via ldflags.
package version

import "fmt"

// Set at build time via -ldflags "-X .../version.Commit=..."
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version line shown by farmhand --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, shortCommit(Commit), BuildTime)
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
