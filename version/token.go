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

import (
	"math/big"
	"strings"
)

// kind identifies the ordered category of a segment: QUALIFIER < STRING <
// NUMERIC. MIN and MAX are not segment kinds; they are represented by the
// Version's tail marker, since they are only ever valid as the trailing
// element of a version.
type kind int8

const (
	kindQualifier kind = iota
	kindString
	kindNumeric
)

// tail marks a trailing min/max sentinel on a Version, used to express the
// absolute minimum or maximum of a prefix line, e.g. rewriting [1.2.*] to
// [1.2.min, 1.2.max].
type tail int8

const (
	tailNone tail = 0
	tailMin  tail = -1
	tailMax  tail = 1
)

// qualifierRank returns the ascending rank of a recognized qualifier name,
// and whether it was recognized. followedByDigit reports whether the next
// segment is a numeric segment joined by an implicit (digit-transition)
// delimiter, which is required for the single-letter abbreviations "a",
// "b", and "m" to count as alpha/beta/milestone.
func qualifierRank(s string, followedByDigit bool) (rank int8, ok bool) {
	switch strings.ToLower(s) {
	case "alpha":
		return 0, true
	case "a":
		return 0, followedByDigit
	case "beta":
		return 1, true
	case "b":
		return 1, followedByDigit
	case "milestone":
		return 2, true
	case "m":
		return 2, followedByDigit
	case "rc", "cr": // cr is a discouraged alias for rc.
		return 3, true
	case "snapshot":
		return qualifierSnapshot, true
	case "ga", "final", "release", "":
		return 5, true
	case "sp":
		return 6, true
	default:
		return 0, false
	}
}

// qualifierGA is the rank of the neutral "ga"/"final"/"release" qualifier:
// the zero segment that an absent trailing qualifier is padded with when
// comparing versions of different lengths.
const qualifierGA int8 = 5

// qualifierSnapshot is the rank of the "snapshot" qualifier. Version.IsSnapshot
// checks for it directly rather than comparing against the literal string,
// since "snapshot" segments are case-folded and aliased during tokenization.
const qualifierSnapshot int8 = 4

// segment is one tokenized component of a version string.
type segment struct {
	kind kind
	raw  string // original text; used for STRING comparison and Canon.

	num   *big.Int // set iff kind == kindNumeric.
	qrank int8     // set iff kind == kindQualifier.

	// sepImplicit reports whether this segment was introduced by an
	// implicit digit/non-digit transition rather than an explicit '.', '-'
	// or '_'. Canon uses it to render such a segment with no separator.
	sepImplicit bool
	// sep is the explicit delimiter preceding this segment, or 0 for the
	// first segment or an implicit transition.
	sep byte
}

func (s segment) isZero() bool {
	switch s.kind {
	case kindNumeric:
		return s.num.Sign() == 0
	case kindQualifier:
		return s.qrank == qualifierGA
	case kindString:
		return s.raw == ""
	}
	return false
}

// neutralPad returns the zero segment of the given kind, used to extend the
// shorter of two versions being compared so the comparison proceeds
// position by position.
func neutralPad(k kind) segment {
	switch k {
	case kindNumeric:
		return segment{kind: kindNumeric, num: big.NewInt(0)}
	case kindQualifier:
		return segment{kind: kindQualifier, qrank: qualifierGA}
	default:
		return segment{kind: kindString, raw: ""}
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isDelimiter(r rune) bool { return r == '.' || r == '-' || r == '_' }

// tokenize splits a version string into segments plus a trailing min/max
// marker, and classifies each segment as numeric, qualifier or string.
// Classifying the single-letter qualifier abbreviations looks ahead to the
// next raw token to see whether it is a digit run joined by an implicit
// delimiter.
func tokenize(s string) ([]segment, tail, error) {
	if s == "" {
		return nil, tailNone, invalid(s, "empty version string")
	}

	type rawTok struct {
		text        string
		sep         byte
		sepImplicit bool
	}
	var toks []rawTok

	runes := []rune(s)
	i := 0
	first := true
	for i < len(runes) {
		var sep byte
		sepImplicit := false
		if isDelimiter(runes[i]) {
			sep = byte(runes[i])
			i++
			if i >= len(runes) {
				return nil, tailNone, invalid(s, "trailing delimiter")
			}
		} else if !first {
			// No explicit delimiter: we only get here at an implicit
			// digit/non-digit boundary (enforced by the scan below), or at
			// the very first character.
			sepImplicit = true
		}
		start := i
		digitRun := isDigit(runes[i])
		for i < len(runes) && !isDelimiter(runes[i]) && isDigit(runes[i]) == digitRun {
			i++
		}
		toks = append(toks, rawTok{text: string(runes[start:i]), sep: sep, sepImplicit: sepImplicit})
		first = false
	}

	segs := make([]segment, 0, len(toks))
	tl := tailNone
	for idx, t := range toks {
		// Reserved trailing min/max marker.
		if idx == len(toks)-1 {
			switch strings.ToLower(t.text) {
			case "min":
				tl = tailMin
				continue
			case "max":
				tl = tailMax
				continue
			}
		}

		if t.text == "" {
			// Empty component, e.g. consecutive delimiters; treated as the
			// zero qualifier (a zero segment, cf. Canonicalization).
			segs = append(segs, segment{kind: kindQualifier, qrank: qualifierGA, sep: t.sep, sepImplicit: t.sepImplicit})
			continue
		}

		if isDigit([]rune(t.text)[0]) {
			n, ok := new(big.Int).SetString(t.text, 10)
			if !ok {
				return nil, tailNone, invalid(s, "invalid numeric segment %q", t.text)
			}
			segs = append(segs, segment{kind: kindNumeric, raw: t.text, num: n, sep: t.sep, sepImplicit: t.sepImplicit})
			continue
		}

		nextIsImplicitDigit := idx+1 < len(toks) && toks[idx+1].sepImplicit && len(toks[idx+1].text) > 0 && isDigit([]rune(toks[idx+1].text)[0])
		if rank, ok := qualifierRank(t.text, nextIsImplicitDigit); ok {
			segs = append(segs, segment{kind: kindQualifier, raw: t.text, qrank: rank, sep: t.sep, sepImplicit: t.sepImplicit})
			continue
		}
		segs = append(segs, segment{kind: kindString, raw: t.text, sep: t.sep, sepImplicit: t.sepImplicit})
	}
	return segs, tl, nil
}
