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

// Package collector builds the raw, possibly cyclic and duplicate-laden
// dependency tree that resolve.Resolve consumes, by recursively walking a
// Source's declared dependencies through a selector.Selector and a
// manage.Manager.
package collector

import (
	"deps.dev/util/mvnresolve/artifact"
	"deps.dev/util/mvnresolve/graph"
	"deps.dev/util/mvnresolve/manage"
	"deps.dev/util/mvnresolve/scope"
)

// DeclaredDependency is one edge a Project declares.
type DeclaredDependency struct {
	Artifact          artifact.Key
	VersionConstraint string
	Scope             scope.Id
	Optional          bool
	Exclusions        map[graph.Exclusion]bool
}

// ManagementRule is one <dependencyManagement>-style entry a Project
// contributes, naming the artifact it overrides and the override itself.
type ManagementRule struct {
	Artifact artifact.Key
	Rule     manage.Rule
}

// Project is everything Collect needs about one resolved (groupId,
// artifactId, version): its direct dependencies and its own management
// rules.
type Project struct {
	Dependencies []DeclaredDependency
	Management   []ManagementRule
}

// Source is the minimal in-memory "universe" abstraction Collect walks. A
// real client would back this with repository metadata and POM parsing;
// Source deliberately knows nothing about either.
type Source interface {
	// Versions returns every known version string for (groupID,
	// artifactID), in no particular order, used to resolve a hard
	// VersionConstraint range to a concrete candidate.
	Versions(groupID, artifactID string) []string
	// Project returns the declared dependencies and management rules for
	// one exact (groupID, artifactID, version), or ok=false if unknown.
	Project(groupID, artifactID, version string) (Project, bool)
}

// LocalSource is an in-memory Source backed by a fixed map, suitable for
// tests and the cmd/mvnresolve example CLI.
type LocalSource struct {
	projects map[artifact.Coordinate]Project
	versions map[artifact.Key][]string
}

// NewLocalSource returns an empty LocalSource.
func NewLocalSource() *LocalSource {
	return &LocalSource{
		projects: map[artifact.Coordinate]Project{},
		versions: map[artifact.Key][]string{},
	}
}

// Add registers p as the project for coord, and records coord's version
// among the known versions for its conflict group.
func (s *LocalSource) Add(coord artifact.Coordinate, p Project) {
	s.projects[coord] = p
	k := coord.Key()
	s.versions[k] = append(s.versions[k], coord.Version)
}

func (s *LocalSource) Versions(groupID, artifactID string) []string {
	return s.versions[artifact.Key{GroupID: groupID, ArtifactID: artifactID, Extension: "jar"}]
}

func (s *LocalSource) Project(groupID, artifactID, version string) (Project, bool) {
	p, ok := s.projects[artifact.Coordinate{GroupID: groupID, ArtifactID: artifactID, Extension: "jar", Version: version}]
	return p, ok
}
