// Package version holds the labfolder-go release version.
package version

// Version is overridden via -ldflags for release builds; the default marks
// development builds.
var Version = "0.3.0-dev"
