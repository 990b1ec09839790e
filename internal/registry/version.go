package registry

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// NewestVersion returns the highest semantic version in versions. ok is false
// when the list is empty or any entry fails to parse, since no meaningful
// comparison exists then.
func NewestVersion(versions []string) (newest string, ok bool) {
	var best *semver.Version
	for _, v := range versions {
		sv, err := parseSemver(v)
		if err != nil {
			return "", false
		}
		if best == nil || sv.GreaterThan(best) {
			best, newest = sv, v
		}
	}
	return newest, best != nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
