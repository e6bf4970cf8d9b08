// internal/version/version.go
package version

// Version is stamped at release; overridable with -ldflags -X.
var Version = "0.1.0"
