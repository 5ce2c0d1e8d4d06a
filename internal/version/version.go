// Package version provides build-time version information.
//
// Release builds set the variables with
//
//	go build -ldflags "-X face-metrics/internal/version.Version=1.2.0 \
//	  -X face-metrics/internal/version.GitCommit=$(git rev-parse --short HEAD) \
//	  -X face-metrics/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

import "fmt"

var (
	// Version is the semantic version
	Version = "0.1.0"

	// BuildTime is the UTC time when the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit hash
	GitCommit = "unknown"
)

// String returns the version with its commit and build time.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
