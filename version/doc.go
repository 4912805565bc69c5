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

/*
Package version implements the Generic Version Scheme used by the Maven
dependency resolver: version parsing, canonicalization, total ordering,
and range/constraint evaluation.

A version string is tokenized into segments, split on the explicit
delimiters '.', '-', '_' and on every implicit transition between an
ASCII digit run and a non-digit run. Each segment is classified as
NUMERIC, a recognized QUALIFIER (alpha, beta, milestone, rc, snapshot,
ga, sp, with ga/final/release treated as equivalent, and a handful of
abbreviations), or an unrecognized STRING, which sorts above all known
qualifiers but below any numeric segment. A version may end in the
reserved "min" or "max" segment, representing the absolute minimum or
maximum of the version's prefix line, used when a range bound needs to
express "every version starting with 1.2".

Ranges use Maven's classic bracket syntax: '[' and ']' are inclusive
bounds, '(' and ')' exclusive, a missing bound is open, and a
constraint is a comma-separated union of ranges, or, if it contains no
brackets at all, a single soft preferred version.
*/
package version
