// Package version provides build version information for pathkit.
package version

import "runtime/debug"

var (
	// Version is the semantic version, overridable at build time via ldflags.
	Version = "0.1.0"

	// Revision is the VCS revision, resolved from build info when available.
	Revision = resolveRevision()
)

func resolveRevision() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}

	return "unknown"
}

// GetVersionString returns the version reported by the CLI.
func GetVersionString() string {
	return Version
}
