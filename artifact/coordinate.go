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

// Package artifact defines the immutable artifact coordinate that
// identifies a dependency across the resolver, independent of graph
// position.
package artifact

import "fmt"

// Key identifies an artifact's conflict group: the (groupId, artifactId,
// extension, classifier) tuple, deliberately excluding the version.
// Two Coordinates with the same Key are candidates for the same conflict
// group during resolution.
type Key struct {
	GroupID    string
	ArtifactID string
	Extension  string
	Classifier string
}

// String renders k in Maven's colon-separated coordinate form.
func (k Key) String() string {
	return fmt.Sprintf("%s:%s:%s:%s", k.GroupID, k.ArtifactID, k.Extension, k.Classifier)
}

// Properties carries the small set of per-coordinate metadata the resolver
// cares about. LocalPath is meaningful only when the owning Dependency's
// scope is "system".
type Properties struct {
	LocalPath string
}

// IsZero reports whether p carries no properties.
func (p Properties) IsZero() bool { return p == Properties{} }

// Coordinate is an immutable artifact identity plus a version string. The
// version string is kept unparsed here; callers parse it through a
// version.Scheme when they need to compare or range-test it, so that
// Coordinate itself never imports the version package's parse cache.
type Coordinate struct {
	GroupID    string
	ArtifactID string
	Extension  string
	Classifier string
	Version    string
	Properties Properties
}

// Key returns c's conflict-identity key.
func (c Coordinate) Key() Key {
	return Key{
		GroupID:    c.GroupID,
		ArtifactID: c.ArtifactID,
		Extension:  c.Extension,
		Classifier: c.Classifier,
	}
}

// String renders c in Maven's colon-separated coordinate form, including
// the version.
func (c Coordinate) String() string {
	return fmt.Sprintf("%s:%s:%s:%s:%s", c.GroupID, c.ArtifactID, c.Extension, c.Classifier, c.Version)
}

// WithVersion returns a copy of c with Version replaced.
func (c Coordinate) WithVersion(v string) Coordinate {
	c.Version = v
	return c
}

// WithLocalPath returns a copy of c with Properties.LocalPath set.
func (c Coordinate) WithLocalPath(path string) Coordinate {
	c.Properties.LocalPath = path
	return c
}
