package domain

import (
	"regexp"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

var nonVersionChars = regexp.MustCompile(`[^0-9.]`)

// NormalizeVersion strips every character that is not a digit or a dot,
// turning a dependency range such as "^1.2.3-beta" into "1.2.3".
func NormalizeVersion(raw string) string {
	return nonVersionChars.ReplaceAllString(raw, "")
}

// ValidateVersion checks that a normalized version can name a release tag.
func ValidateVersion(version string) error {
	if version == "" {
		return zerr.With(ErrLibraryVersionInvalid, "version", version)
	}
	if _, err := semver.NewVersion(version); err != nil {
		return zerr.With(zerr.Wrap(err, ErrLibraryVersionInvalid.Error()), "version", version)
	}
	return nil
}

// ReleaseRef returns the extension ref of the release tagged with version.
func ReleaseRef(version string) string {
	return "tags/v" + version
}
