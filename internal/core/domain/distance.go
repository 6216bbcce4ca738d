package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// DistanceBudget bounds how far an older catalog version may trail the local
// version and still count as a close match. Only the most significant
// non-zero component is active: Major over Minor over Patch.
type DistanceBudget struct {
	Major int
	Minor int
	Patch int
}

// ParseDistanceBudget parses a dotted MAJOR.MINOR.PATCH string such as "0.1.0".
// Missing trailing components default to 0. The empty string is the zero budget.
func ParseDistanceBudget(s string) (DistanceBudget, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DistanceBudget{}, nil
	}

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return DistanceBudget{}, zerr.With(ErrInvalidDistanceBudget, "value", s)
	}

	var vals [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return DistanceBudget{}, zerr.With(ErrInvalidDistanceBudget, "value", s)
		}
		vals[i] = n
	}

	return DistanceBudget{Major: vals[0], Minor: vals[1], Patch: vals[2]}, nil
}

// IsZero reports whether numeric distance matching is disabled.
func (b DistanceBudget) IsZero() bool {
	return b.Major == 0 && b.Minor == 0 && b.Patch == 0
}

// Allows reports whether candidate is an acceptable close match for local.
// The candidate must not be newer than local, and the gap along the active
// axis must be within budget.
func (b DistanceBudget) Allows(local, candidate Triple) bool {
	if b.IsZero() || candidate.Compare(local) > 0 {
		return false
	}

	switch {
	case b.Major > 0:
		return local.Major-candidate.Major <= b.Major
	case b.Minor > 0:
		return local.Major == candidate.Major &&
			local.Minor-candidate.Minor <= b.Minor
	default:
		return local.Major == candidate.Major &&
			local.Minor == candidate.Minor &&
			local.Patch-candidate.Patch <= b.Patch
	}
}

// String renders the budget in its configuration form.
func (b DistanceBudget) String() string {
	return Triple(b).String()
}
