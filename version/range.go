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

// Bound is one side of a VersionRange: a version plus whether it is
// included in the range. A nil Version means the bound is open (unbounded
// on that side).
type Bound struct {
	Version   *Version
	Inclusive bool
}

// VersionRange is a single bracketed Maven range, e.g. "[1.0,2.0)",
// "[1.5,)", "(,1.0]". Both bounds may be open, but a range with both
// bounds open ("(,)") is rejected at parse time as meaningless.
type VersionRange struct {
	Lo, Hi Bound
}

// Contains reports whether v falls within r.
func (r VersionRange) Contains(v *Version) bool {
	if r.Lo.Version != nil {
		c := v.Compare(r.Lo.Version)
		if c < 0 || (c == 0 && !r.Lo.Inclusive) {
			return false
		}
	}
	if r.Hi.Version != nil {
		c := v.Compare(r.Hi.Version)
		if c > 0 || (c == 0 && !r.Hi.Inclusive) {
			return false
		}
	}
	return true
}

// String renders r back to Maven bracket syntax.
func (r VersionRange) String() string {
	var b strings.Builder
	if r.Lo.Inclusive {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	if r.Lo.Version != nil {
		b.WriteString(r.Lo.Version.String())
	}
	b.WriteByte(',')
	if r.Hi.Version != nil {
		b.WriteString(r.Hi.Version.String())
	}
	if r.Hi.Inclusive {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}

// parseRange parses the body of a single bracketed range, including its
// enclosing bracket characters, e.g. "[1.0,2.0)". A range with exactly one
// version and no comma, e.g. "[1.0]", is the "exactly this version" range
// (Lo == Hi, both inclusive).
func parseRange(spec, s string) (VersionRange, error) {
	if len(s) < 2 {
		return VersionRange{}, invalid(spec, "range %q too short", s)
	}
	open := s[0]
	closeCh := s[len(s)-1]
	var loInclusive, hiInclusive bool
	switch open {
	case '[':
		loInclusive = true
	case '(':
		loInclusive = false
	default:
		return VersionRange{}, invalid(spec, "range %q must open with '[' or '('", s)
	}
	switch closeCh {
	case ']':
		hiInclusive = true
	case ')':
		hiInclusive = false
	default:
		return VersionRange{}, invalid(spec, "range %q must close with ']' or ')'", s)
	}

	body := s[1 : len(s)-1]
	if !strings.Contains(body, ",") {
		// "[1.0]" style: exact version, both bounds inclusive regardless
		// of the brackets used, per the Generic Version Scheme.
		if body == "" {
			return VersionRange{}, invalid(spec, "range %q has no version", s)
		}
		v, err := ParseVersion(body)
		if err != nil {
			return VersionRange{}, err
		}
		return VersionRange{
			Lo: Bound{Version: v, Inclusive: true},
			Hi: Bound{Version: v, Inclusive: true},
		}, nil
	}

	parts := strings.SplitN(body, ",", 2)
	if strings.Contains(parts[1], ",") {
		return VersionRange{}, invalid(spec, "range %q has more than one comma", s)
	}
	loText, hiText := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])

	var lo, hi Bound
	lo.Inclusive, hi.Inclusive = loInclusive, hiInclusive
	if loText != "" {
		v, err := ParseVersion(loText)
		if err != nil {
			return VersionRange{}, err
		}
		lo.Version = v
	}
	if hiText != "" {
		v, err := ParseVersion(hiText)
		if err != nil {
			return VersionRange{}, err
		}
		hi.Version = v
	}
	if lo.Version == nil && hi.Version == nil {
		return VersionRange{}, invalid(spec, "range %q has both bounds open", s)
	}
	if lo.Version != nil && hi.Version != nil && hi.Version.Compare(lo.Version) < 0 {
		return VersionRange{}, invalid(spec, "range %q has upper bound below lower bound", s)
	}
	return VersionRange{Lo: lo, Hi: hi}, nil
}
