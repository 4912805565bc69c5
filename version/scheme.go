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

// Scheme is the entry point external callers use to parse versions,
// ranges, and constraints under the Generic Version Scheme. It owns a
// parse cache, so callers should share one Scheme across a resolution run
// rather than constructing one per call.
type Scheme struct {
	cache *parseCache
}

// NewScheme returns a Scheme whose version parse cache holds up to
// cacheSize distinct strings. A cacheSize of 0 selects a sensible default.
func NewScheme(cacheSize int) *Scheme {
	return &Scheme{cache: newParseCache(cacheSize)}
}

// ParseVersion parses s, sharing results across calls through the
// Scheme's cache.
func (s *Scheme) ParseVersion(spec string) (*Version, error) {
	return s.cache.parse(spec)
}

// ParseRange parses the single bracketed range s, e.g. "[1.0,2.0)".
func (s *Scheme) ParseRange(spec string) (VersionRange, error) {
	return parseRange(spec, spec)
}

// ParseConstraint parses s as a VersionConstraint: either a bare soft
// preferred version or a comma-separated union of bracketed ranges.
func (s *Scheme) ParseConstraint(spec string) (*VersionConstraint, error) {
	return ParseConstraint(spec)
}

// Compare parses both a and b and compares them. It returns an error if
// either fails to parse.
func (s *Scheme) Compare(a, b string) (int, error) {
	va, err := s.ParseVersion(a)
	if err != nil {
		return 0, err
	}
	vb, err := s.ParseVersion(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}
