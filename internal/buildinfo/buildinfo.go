// Package buildinfo provides version and build information for vdrproxy.
// The variables are set at link-time to identify the build.
package buildinfo

// Name is the program name shown in help and version output.
const Name = "vdrproxy"

// Version is set at link-time with –ldflags.
var Version = "0.1.0"

// Commit is set at link-time with –ldflags.
// Default is "unknown" so tests and "go run ." still work.
var Commit = "unknown"
