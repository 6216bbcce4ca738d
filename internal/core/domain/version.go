package domain

import (
	"cmp"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// AutoIncPlaceholder replaces an AUTOINC marker and everything after it.
const AutoIncPlaceholder = "X"

var (
	autoIncPattern = regexp.MustCompile(`(?i)AUTOINC.*`)
	coercePattern  = regexp.MustCompile(`^[vV]?0?(\d+)(?:\.0?(\d+)(?:\.0?(\d+))?)?`)
)

// Normalize collapses build noise in a raw version string. An AUTOINC marker
// (any case) and all trailing text become AutoIncPlaceholder.
func Normalize(raw string) string {
	return autoIncPattern.ReplaceAllLiteralString(raw, AutoIncPlaceholder)
}

// SplitEpoch separates an optional "epoch:" prefix from a version string.
// Everything before the first colon is the epoch; the remainder is normalized.
func SplitEpoch(raw string) (epoch, version string) {
	before, after, found := strings.Cut(raw, ":")
	if !found {
		return "", Normalize(raw)
	}
	return before, Normalize(after)
}

// BaseToken returns the portion of a version before the first '+' or '-'.
func BaseToken(version string) string {
	if i := strings.IndexAny(version, "+-"); i >= 0 {
		return version[:i]
	}
	return version
}

// Triple is a coerced (major, minor, patch) version.
type Triple struct {
	Major int
	Minor int
	Patch int
}

// Compare orders two triples lexicographically, returning -1, 0 or 1.
func (t Triple) Compare(o Triple) int {
	switch {
	case t.Major != o.Major:
		return cmp.Compare(t.Major, o.Major)
	case t.Minor != o.Minor:
		return cmp.Compare(t.Minor, o.Minor)
	default:
		return cmp.Compare(t.Patch, o.Patch)
	}
}

// String renders the triple as MAJOR.MINOR.PATCH.
func (t Triple) String() string {
	return fmt.Sprintf("%d.%d.%d", t.Major, t.Minor, t.Patch)
}

// Coerce extracts a leading numeric (major, minor, patch) run from a version.
// A leading 'v' or 'V' and a single zero pad per component are tolerated;
// missing minor and patch default to 0. When no numeric run leads the string,
// ok is false and remainder is the whole input.
func Coerce(version string) (t Triple, remainder string, ok bool) {
	m := coercePattern.FindStringSubmatchIndex(version)
	if m == nil {
		return Triple{}, version, false
	}

	parts := [3]int{}
	for i := range parts {
		start, end := m[2+2*i], m[3+2*i]
		if start < 0 {
			continue
		}
		n, err := strconv.Atoi(version[start:end])
		if err != nil {
			return Triple{}, version, false
		}
		parts[i] = n
	}

	return Triple{Major: parts[0], Minor: parts[1], Patch: parts[2]}, version[m[1]:], true
}
