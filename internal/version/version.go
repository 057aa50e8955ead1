// Package version holds the build version of quotient.
package version

// Version is set at build time with
// -ldflags "-X github.com/custodia-labs/quotient/internal/version.Version=v1.2.3".
var Version = "dev"

// UserAgent returns the default User-Agent header, quotient/<version>.
func UserAgent() string {
	return "quotient/" + Version
}
