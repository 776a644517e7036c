// SPDX-License-Identifier: MIT
//
// Package build holds build metadata embedded into the binary at compile
// time via linker flags, for example:
//
//	go build -ldflags "-X audiovis/internal/build.buildName=audiovis -X audiovis/internal/build.buildVersion=0.1.0"
//
// During development the fields keep their "dev" defaults.
package build

type ldFlags struct {
	Name    string // Application name
	Time    string // Build timestamp
	Commit  string // Git commit hash
	Version string // Semantic version
}

// Package-level variables populated by -ldflags during compilation.
var (
	buildName    string
	buildTime    string
	buildCommit  string
	buildVersion string
	buildFlags   = &ldFlags{
		Name:    "audiovis",
		Time:    "dev",
		Commit:  "dev",
		Version: "dev",
	}
)

// Initialize copies any build information set through ldflags into the
// buildFlags struct. Unset flags keep their development defaults.
func Initialize() {
	if buildName != "" {
		buildFlags.Name = buildName
	}
	if buildTime != "" {
		buildFlags.Time = buildTime
	}
	if buildCommit != "" {
		buildFlags.Commit = buildCommit
	}
	if buildVersion != "" {
		buildFlags.Version = buildVersion
	}
}

// GetBuildFlags returns the current build information.
func GetBuildFlags() *ldFlags {
	return buildFlags
}
