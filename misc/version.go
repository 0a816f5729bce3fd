// Package misc keeps build time information.
package misc

// Set by the linker: -ldflags "-X repmark/misc.version=... -X repmark/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
	appName = "repmark"
)

// GetVersion returns program version string.
func GetVersion() string {
	return version
}

// GetGitHash returns git commit the program was built from.
func GetGitHash() string {
	return gitHash
}

// GetAppName returns name of the program.
func GetAppName() string {
	return appName
}
