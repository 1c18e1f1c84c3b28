// Package version carries build information set via ldflags:
//
//	go build -ldflags "-X github.com/bluekompass/bluekompass/version.Version=1.2.0"
package version

import "fmt"

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersion returns the version string
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with commit and build date
func GetFullVersion() string {
	if Version == "dev" {
		return "bluekompass dev"
	}
	return fmt.Sprintf("bluekompass %s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
