// Package version carries build metadata injected via ldflags:
//
//	go build -ldflags "-X github.com/swaykit/sway-session/internal/version.Version=v1.2.0"
package version

// Build-time variables (set via ldflags).
var (
	// Version is the semantic version.
	Version = "dev"

	// Commit is the git commit hash.
	Commit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)
