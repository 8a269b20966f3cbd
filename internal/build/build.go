// Package build holds build-time information set through linker flags.
package build

// Version is the modkit release, "dev" for local builds.
var Version = "dev"

// Commit is the source revision the binary was built from, empty when unknown.
var Commit = ""

// String returns the version followed by the short commit when one is known.
func String() string {
	if len(Commit) > 7 {
		return Version + "+" + Commit[:7]
	}
	if Commit != "" {
		return Version + "+" + Commit
	}
	return Version
}
