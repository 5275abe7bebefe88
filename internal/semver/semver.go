// Package semver handles the three-part version numbers used by extension
// manifests. Only plain MAJOR.MINOR.PATCH versions are supported; prerelease
// and build suffixes are rejected as unparseable.
package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Part identifies which component of a version to increment.
type Part string

const (
	PartPatch Part = "patch"
	PartMinor Part = "minor"
	PartMajor Part = "major"
)

// ParsePart converts a user-supplied string into a Part.
func ParsePart(s string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "patch":
		return PartPatch, nil
	case "minor":
		return PartMinor, nil
	case "major":
		return PartMajor, nil
	}
	return "", fmt.Errorf("unknown version part %q (expected patch, minor or major)", s)
}

// Version is a semantic version triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse parses a "MAJOR.MINOR.PATCH" string. Each component must be a
// non-negative integer; anything else is an error.
func Parse(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version %q: expected three dot-separated components", s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version %q: component %q is not an integer", s, p)
		}
		if n < 0 {
			return Version{}, fmt.Errorf("invalid version %q: negative component %d", s, n)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String renders the version back into "MAJOR.MINOR.PATCH" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Bump returns a new version with the given part incremented. Incrementing
// minor resets patch; incrementing major resets both minor and patch.
func (v Version) Bump(part Part) Version {
	switch part {
	case PartMajor:
		return Version{Major: v.Major + 1}
	case PartMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	default:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	}
}
