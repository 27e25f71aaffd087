// Package version holds the application version, overridable at link time
// with -ldflags "-X .../internal/version.Version=v1.2.3".
package version

var Version = "1.0.0"
