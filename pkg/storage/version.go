package storage

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/mod/semver"
)

// StoreVersion is the on-disk format version of persistent stores.
const StoreVersion = "v1.0.0"

// ErrIncompatibleVersion is returned when a store was written by another major version.
var ErrIncompatibleVersion = errors.New("incompatible store version")

// IsCompatibleVersion reports whether data written at version can be read at current.
// Major versions must match; minor and patch may differ.
func IsCompatibleVersion(version, current string) (bool, error) {
	if !semver.IsValid(version) {
		return false, errors.Newf("invalid store version: %s", version)
	}
	if !semver.IsValid(current) {
		return false, errors.Newf("invalid current version: %s", current)
	}

	return semver.Major(version) == semver.Major(current), nil
}
