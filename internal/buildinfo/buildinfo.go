// Package buildinfo carries version data stamped in at link time:
//
//	go build -ldflags "-X raytray/internal/buildinfo.Version=v0.3.0 -X raytray/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the most specific identifier available: a release version,
// else the commit, else "dev".
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String is the long form printed by `raytray version`.
func String() string {
	return fmt.Sprintf("raytray %s (commit %s, built %s)", Version, Commit, Date)
}
