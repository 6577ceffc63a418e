// Package buildinfo carries the version stamped into the triangulator binary.
//
// The variables are overridden at link time:
//
//	go build -ldflags "-X github.com/matzehuels/triangulator/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/triangulator/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/triangulator/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/triangulator
package buildinfo

import "fmt"

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the source revision.
	Commit = "none"

	// Date is the UTC build time.
	Date = "unknown"
)

// String returns the build information on three lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, built %s)\n", Version, Commit, Date)
}

// Dev reports whether the binary was built without a release version.
func Dev() bool {
	return Version == "" || Version == "dev"
}
