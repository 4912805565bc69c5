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

// Version is a parsed, comparable version under the Generic Version
// Scheme. The zero Version is not valid; construct one with ParseVersion.
type Version struct {
	raw  string
	segs []segment
	tl   tail
}

// ParseVersion parses s under the Generic Version Scheme. It never returns
// an error for syntactically unrestricted input: any string is a valid
// version, since unrecognized characters simply become STRING segments.
// The only parse failures are an empty string, a malformed numeric run,
// and a trailing bare delimiter.
func ParseVersion(s string) (*Version, error) {
	segs, tl, err := tokenize(s)
	if err != nil {
		return nil, err
	}
	return &Version{raw: s, segs: segs, tl: tl}, nil
}

// MustParseVersion is ParseVersion, panicking on error. Intended for tests
// and for range/constraint literals embedded in code, not for untrusted
// input.
func MustParseVersion(s string) *Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the original text the Version was parsed from.
func (v *Version) String() string { return v.raw }

// Canon returns the canonical form of v: trailing zero segments are
// dropped position by position from the end, and each remaining segment is
// rendered in its normalized form (qualifier aliases expanded, leading
// zeros in numeric segments removed).
func (v *Version) Canon() string {
	segs := trimTrailingZeros(v.segs)
	if len(segs) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, s := range segs {
		if i > 0 {
			if s.sepImplicit {
				// Implicit digit/non-digit transitions render with no
				// separator character, matching how they were read.
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString(canonSegmentText(s))
	}
	switch v.tl {
	case tailMin:
		b.WriteString(".min")
	case tailMax:
		b.WriteString(".max")
	}
	return b.String()
}

func canonSegmentText(s segment) string {
	switch s.kind {
	case kindNumeric:
		return s.num.String()
	case kindQualifier:
		return canonicalQualifierName(s.qrank)
	default:
		return s.raw
	}
}

func canonicalQualifierName(rank int8) string {
	switch rank {
	case 0:
		return "alpha"
	case 1:
		return "beta"
	case 2:
		return "milestone"
	case 3:
		return "rc"
	case 4:
		return "snapshot"
	case 5:
		return "ga"
	case 6:
		return "sp"
	default:
		return ""
	}
}

// trimTrailingZeros drops zero segments from the end of segs, one at a
// time, stopping at the first non-zero trailing segment. This mirrors the
// Generic Version Scheme's rule that "1.0.0", "1.0" and "1" are equal and
// canonicalize to "1".
func trimTrailingZeros(segs []segment) []segment {
	end := len(segs)
	for end > 0 && segs[end-1].isZero() {
		end--
	}
	return segs[:end]
}

// kindRankOf orders segment kinds for cross-kind comparison: a qualifier
// segment is always less than a string segment, which is always less than
// a numeric segment, regardless of position.
func kindRankOf(k kind) int {
	switch k {
	case kindQualifier:
		return 0
	case kindString:
		return 1
	case kindNumeric:
		return 2
	}
	return -1
}

// Compare returns -1, 0, or 1 as v is less than, equal to, or greater than
// other, under the Generic Version Scheme's total order.
func (v *Version) Compare(other *Version) int {
	if v == other {
		return 0
	}
	a := trimTrailingZeros(v.segs)
	b := trimTrailingZeros(other.segs)
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		var sa, sb segment
		if i < len(a) {
			sa = a[i]
		} else {
			sa = neutralPad(b[i].kind)
		}
		if i < len(b) {
			sb = b[i]
		} else {
			sb = neutralPad(a[i].kind)
		}
		if c := compareSegment(sa, sb); c != 0 {
			return c
		}
	}
	return compareTail(v.tl, other.tl)
}

func compareSegment(a, b segment) int {
	if a.kind != b.kind {
		return sgnInt(kindRankOf(a.kind) - kindRankOf(b.kind))
	}
	switch a.kind {
	case kindNumeric:
		return a.num.Cmp(b.num)
	case kindQualifier:
		return sgnInt(int(a.qrank) - int(b.qrank))
	default: // kindString
		return strings.Compare(a.raw, b.raw)
	}
}

func compareTail(a, b tail) int { return sgnInt(int(a) - int(b)) }

func sgnInt(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Equal reports whether v and other compare equal.
func (v *Version) Equal(other *Version) bool { return v.Compare(other) == 0 }

// IsSnapshot reports whether v carries a "snapshot" qualifier segment, e.g.
// "1.0-SNAPSHOT" or "2-snapshot-rc1". The resolver's snapshot-filter
// configuration uses this to decide whether a candidate version is eligible
// to win a conflict group.
func (v *Version) IsSnapshot() bool {
	for _, s := range v.segs {
		if s.kind == kindQualifier && s.qrank == qualifierSnapshot {
			return true
		}
	}
	return false
}
