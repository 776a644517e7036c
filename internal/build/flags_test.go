// SPDX-License-Identifier: MIT
package build

import (
	"os"
	"testing"
)

var (
	origName    string
	origTime    string
	origCommit  string
	origVersion string
	origFlags   ldFlags
)

func TestMain(m *testing.M) {
	origName = buildName
	origTime = buildTime
	origCommit = buildCommit
	origVersion = buildVersion
	origFlags = *buildFlags

	exitCode := m.Run()

	buildName = origName
	buildTime = origTime
	buildCommit = origCommit
	buildVersion = origVersion
	*buildFlags = origFlags

	os.Exit(exitCode)
}

func resetFlags() {
	buildFlags = &ldFlags{
		Name:    "audiovis",
		Time:    "dev",
		Commit:  "dev",
		Version: "dev",
	}
}

func TestInitializeKeepsDevDefaults(t *testing.T) {
	resetFlags()
	buildName, buildTime, buildCommit, buildVersion = "", "", "", ""

	Initialize()

	flags := GetBuildFlags()
	if flags.Name != "audiovis" || flags.Version != "dev" {
		t.Errorf("unset ldflags should keep dev defaults, got %+v", flags)
	}
}

func TestInitializeAppliesLdflags(t *testing.T) {
	resetFlags()
	buildName = "testapp"
	buildTime = "2025-04-13"
	buildCommit = "abcdef123"
	buildVersion = "v1.0.0"

	Initialize()

	flags := GetBuildFlags()
	if flags.Name != "testapp" {
		t.Errorf("buildFlags.Name = %v, want testapp", flags.Name)
	}
	if flags.Time != "2025-04-13" {
		t.Errorf("buildFlags.Time = %v, want 2025-04-13", flags.Time)
	}
	if flags.Commit != "abcdef123" {
		t.Errorf("buildFlags.Commit = %v, want abcdef123", flags.Commit)
	}
	if flags.Version != "v1.0.0" {
		t.Errorf("buildFlags.Version = %v, want v1.0.0", flags.Version)
	}
}

func TestInitializePartialLdflags(t *testing.T) {
	resetFlags()
	buildName, buildTime, buildCommit = "", "", ""
	buildVersion = "v2.0.0"

	Initialize()

	flags := GetBuildFlags()
	if flags.Version != "v2.0.0" {
		t.Errorf("buildFlags.Version = %v, want v2.0.0", flags.Version)
	}
	if flags.Name != "audiovis" {
		t.Errorf("buildFlags.Name = %v, want audiovis default", flags.Name)
	}
}
