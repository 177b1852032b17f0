// internal/version/version.go
package version

// Version is the toolkit release string, overridable at link time.
var Version = "0.3.0"
