package model

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"golang.org/x/mod/semver"
)

// Version is a major.minor.fix triple. The zero value is 0.0.0.
type Version struct {
	Major int
	Minor int
	Fix   int
}

// tagPattern accepts an optional "v" and up to three dot separated integer
// groups. A trailing "*" stands for fix 0.
var tagPattern = regexp.MustCompile(`^v?(\d+)(?:\.(\d+))?(?:\.(\d+|\*))?$`)

// ParseTag converts a tag name such as "v1.2.3" into a Version. It never
// fails: a name that does not look like a version yields 0.0.0.
func ParseTag(name string) Version {
	v, _ := LookupTag(name)
	return v
}

// LookupTag is ParseTag that also reports whether the name matched the
// version pattern. A false result means the returned 0.0.0 is a fallback,
// not a real v0.0.0 tag. Numbers that cannot be bumped without overflow do
// not match.
func LookupTag(name string) (Version, bool) {
	m := tagPattern.FindStringSubmatch(name)
	if m == nil {
		return Version{}, false
	}

	var fields [3]int
	for i, group := range m[1:] {
		if group == "" || group == "*" {
			continue
		}
		n, err := strconv.Atoi(group)
		if err != nil || n == math.MaxInt {
			// out of int range, or would overflow on bump
			return Version{}, false
		}
		fields[i] = n
	}

	return Version{Major: fields[0], Minor: fields[1], Fix: fields[2]}, true
}

// String renders "major.minor.fix" without the "v" prefix
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Fix)
}

// Tag renders the version as a tag name, "v" + String()
func (v Version) Tag() string {
	return "v" + v.String()
}

// Bump returns the version that follows v for the given kind. Lower fields
// are reset. Unknown kinds bump the fix number.
func (v Version) Bump(kind BumpKind) Version {
	switch kind {
	case BumpMajor:
		return Version{Major: v.Major + 1}
	case BumpMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	default:
		return Version{Major: v.Major, Minor: v.Minor, Fix: v.Fix + 1}
	}
}

// Compare returns -1, 0 or +1 as v is lower than, equal to or higher than other
func (v Version) Compare(other Version) int {
	return semver.Compare(v.Tag(), other.Tag())
}
