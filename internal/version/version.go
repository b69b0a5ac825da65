// Package version holds build-time version information.
// The variables are meant to be overridden via -ldflags at build time.
package version

// Build-time variables, overridden via -ldflags.
//
//nolint:gochecknoglobals // These are set by the linker at build time.
var (
	// Version is the semantic version of the application.
	Version = "1.0.0"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// BuildTime is when the binary was built.
	BuildTime = "unknown"
)

// Short returns the bare semantic version.
func Short() string {
	return Version
}

// Full returns the version together with commit and build time.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
