// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import "strings"

// VersionConstraint is either a single soft preferred version (no
// brackets: "1.5") or a union of one or more hard VersionRanges
// ("[1.0,2.0),[3.0,)"). A soft constraint places no restriction on the
// version actually selected; it exists only to express the declarer's
// preference when no range narrows the choice further.
type VersionConstraint struct {
	raw string

	// preferred is set when the constraint is a bare, bracket-free
	// version, e.g. "1.5". ranges is set when the constraint is one or
	// more comma-separated bracketed ranges. Exactly one of the two is
	// populated for any valid constraint.
	preferred *Version
	ranges    []VersionRange
}

// ParseConstraint parses s as a VersionConstraint.
func ParseConstraint(s string) (*VersionConstraint, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, invalid(s, "empty constraint")
	}
	if trimmed[0] != '[' && trimmed[0] != '(' {
		v, err := ParseVersion(trimmed)
		if err != nil {
			return nil, err
		}
		return &VersionConstraint{raw: s, preferred: v}, nil
	}

	ranges, err := splitRanges(s, trimmed)
	if err != nil {
		return nil, err
	}
	return &VersionConstraint{raw: s, ranges: ranges}, nil
}

// splitRanges splits a comma-separated union of bracketed ranges,
// respecting bracket nesting depth so that the comma inside "[1.0,2.0)"
// is not mistaken for the union separator between ranges.
func splitRanges(spec, s string) ([]VersionRange, error) {
	var ranges []VersionRange
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
			if depth < 0 {
				return nil, invalid(spec, "unbalanced brackets in %q", s)
			}
		case ',':
			if depth == 0 {
				rg, err := parseRange(spec, strings.TrimSpace(s[start:i]))
				if err != nil {
					return nil, err
				}
				ranges = append(ranges, rg)
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, invalid(spec, "unbalanced brackets in %q", s)
	}
	rg, err := parseRange(spec, strings.TrimSpace(s[start:]))
	if err != nil {
		return nil, err
	}
	ranges = append(ranges, rg)
	return ranges, nil
}

// IsSoft reports whether c is a bare preferred-version constraint rather
// than a hard range union.
func (c *VersionConstraint) IsSoft() bool { return c.preferred != nil }

// PreferredVersion returns the preferred version for a soft constraint, or
// nil if c is a hard range union.
func (c *VersionConstraint) PreferredVersion() *Version { return c.preferred }

// Ranges returns the union of ranges for a hard constraint, or nil if c is
// soft.
func (c *VersionConstraint) Ranges() []VersionRange { return c.ranges }

// Contains reports whether v satisfies c. A soft constraint contains only
// its own exact preferred version; a hard constraint contains v if any of
// its union member ranges does.
func (c *VersionConstraint) Contains(v *Version) bool {
	if c.IsSoft() {
		return c.preferred.Equal(v)
	}
	for _, r := range c.ranges {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// String returns the original constraint text.
func (c *VersionConstraint) String() string { return c.raw }

// UnionVersionRange merges a and b into the smallest set of
// VersionRanges whose union equals the union of a and b's memberships,
// merging overlapping or touching ranges. A nil bound dominates: if either
// operand is unbounded on a side, the merged range is unbounded on that
// side too.
func UnionVersionRange(a, b []VersionRange) []VersionRange {
	all := append(append([]VersionRange{}, a...), b...)
	if len(all) == 0 {
		return nil
	}
	// Partition into those with a defined lower bound (sorted by it) and
	// those without, since an open-lower range merges with everything.
	var openLo []VersionRange
	var bounded []VersionRange
	for _, r := range all {
		if r.Lo.Version == nil {
			openLo = append(openLo, r)
		} else {
			bounded = append(bounded, r)
		}
	}
	sortRangesByLo(bounded)

	merged := append([]VersionRange{}, openLo...)
	merged = append(merged, bounded...)
	if len(merged) == 0 {
		return nil
	}

	// Collapse any ranges with an open lower bound into the single widest
	// one up front: open-lo dominates, so only the one with the
	// highest/open upper bound among them survives independently; the
	// rest are subsumed once sorted together with the bounded set below.
	result := []VersionRange{merged[0]}
	for _, cur := range merged[1:] {
		last := &result[len(result)-1]
		if rangesOverlapOrTouch(*last, cur) {
			*last = mergeTwo(*last, cur)
		} else {
			result = append(result, cur)
		}
	}
	return result
}

func sortRangesByLo(rs []VersionRange) {
	for i := 1; i < len(rs); i++ {
		for j := i; j > 0 && lessLo(rs[j], rs[j-1]); j-- {
			rs[j], rs[j-1] = rs[j-1], rs[j]
		}
	}
}

func lessLo(a, b VersionRange) bool {
	if a.Lo.Version == nil {
		return b.Lo.Version != nil
	}
	if b.Lo.Version == nil {
		return false
	}
	return a.Lo.Version.Compare(b.Lo.Version) < 0
}

// rangesOverlapOrTouch reports whether b's lower bound falls within or
// immediately adjacent to a's span, assuming a and b are already ordered
// by lower bound (a before or equal to b).
func rangesOverlapOrTouch(a, b VersionRange) bool {
	if a.Hi.Version == nil {
		return true // a is unbounded above: everything overlaps it.
	}
	if b.Lo.Version == nil {
		return true // b is unbounded below: it overlaps everything at/after a's start.
	}
	c := b.Lo.Version.Compare(a.Hi.Version)
	if c < 0 {
		return true
	}
	if c == 0 {
		return a.Hi.Inclusive || b.Lo.Inclusive
	}
	return false
}

func mergeTwo(a, b VersionRange) VersionRange {
	out := VersionRange{Lo: a.Lo}
	if b.Lo.Version == nil {
		out.Lo = b.Lo
	} else if a.Lo.Version != nil {
		c := a.Lo.Version.Compare(b.Lo.Version)
		if c > 0 || (c == 0 && b.Lo.Inclusive && !a.Lo.Inclusive) {
			out.Lo = b.Lo
		}
	}
	out.Hi = a.Hi
	if a.Hi.Version == nil {
		out.Hi = a.Hi
	} else if b.Hi.Version == nil {
		out.Hi = b.Hi
	} else {
		c := a.Hi.Version.Compare(b.Hi.Version)
		if c < 0 || (c == 0 && b.Hi.Inclusive && !a.Hi.Inclusive) {
			out.Hi = b.Hi
		}
	}
	return out
}
