package shared

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	launcherVersion = "1.0.0-SNAPSHOT"
	buildVersion    = "_TAG_"
)

// minDeploymentTarget is the oldest iOS release whose document picker
// accepts UTType filters.
var minDeploymentTarget = semver.MustParse("14.0")

func init() {
	if buildVersion != ("_" + "TAG" + "_") {
		// not running in a development environment
		launcherVersion = buildVersion
	}
}

// GetLauncherVersion returns the current launcher version
func GetLauncherVersion() string {
	return launcherVersion
}

// GetLauncherVersionSemver returns a semver-friendly version string.
// Release tags are typically like "v1.2.0-rc1"; some consumers expect "1.2.0-rc1".
// Tags that do not parse as semver are returned trimmed but otherwise unchanged.
func GetLauncherVersionSemver() string {
	raw := strings.TrimPrefix(GetLauncherVersion(), "v")
	v, err := semver.NewVersion(raw)
	if err != nil {
		return raw
	}
	return v.String()
}

// DeploymentTarget returns the iOS deployment target to build the native
// shim for, formatted as "major.minor". Missing or unparsable values fall
// back to the minimum, and older targets are raised to it.
func DeploymentTarget(raw string) string {
	v, err := semver.NewVersion(strings.TrimSpace(raw))
	if err != nil || v.LessThan(minDeploymentTarget) {
		v = minDeploymentTarget
	}
	return strings.Join([]string{
		strconv.FormatUint(v.Major(), 10),
		strconv.FormatUint(v.Minor(), 10),
	}, ".")
}
