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

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"deps.dev/util/mvnresolve/artifact"
	"deps.dev/util/mvnresolve/collector"
	"deps.dev/util/mvnresolve/graph"
	"deps.dev/util/mvnresolve/scope"
)

// Parse reads a tiny block-structured universe description, modeled on
// the "-- universe"/"-- end" shape used elsewhere in this family of
// resolvers but simplified to one block kind:
//
//	-- project g:foo:1.0
//	g:bar@1.0 compile
//	g:baz@[1,2] compile optional
//	-- project g:bar:1.0
//	g:jaz@1.0 compile
//
// Each dependency line is "groupId:artifactId@versionConstraint" followed
// by an optional scope token (default "compile") and the literal word
// "optional". The artifact extension is always "jar". The first project
// block in the file is the resolve root unless overridden by the caller.
func Parse(r io.Reader) (*collector.LocalSource, artifact.Coordinate, error) {
	src := collector.NewLocalSource()
	var root artifact.Coordinate
	haveRoot := false

	sc := bufio.NewScanner(r)
	var cur artifact.Coordinate
	var curDeps []collector.DeclaredDependency
	haveCur := false

	flush := func() {
		if haveCur {
			src.Add(cur, collector.Project{Dependencies: curDeps})
			if !haveRoot {
				root = cur
				haveRoot = true
			}
		}
	}

	for line := 1; sc.Scan(); line++ {
		l := strings.TrimSpace(sc.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		if rest, ok := strings.CutPrefix(l, "-- project "); ok {
			flush()
			c, err := parseCoordinate(strings.TrimSpace(rest))
			if err != nil {
				return nil, artifact.Coordinate{}, fmt.Errorf("line %d: %w", line, err)
			}
			cur = c
			curDeps = nil
			haveCur = true
			continue
		}
		if !haveCur {
			return nil, artifact.Coordinate{}, fmt.Errorf("line %d: dependency line outside any project block", line)
		}
		d, err := parseDependencyLine(l)
		if err != nil {
			return nil, artifact.Coordinate{}, fmt.Errorf("line %d: %w", line, err)
		}
		curDeps = append(curDeps, d)
	}
	if err := sc.Err(); err != nil {
		return nil, artifact.Coordinate{}, err
	}
	flush()
	if !haveRoot {
		return nil, artifact.Coordinate{}, fmt.Errorf("no project blocks found")
	}
	return src, root, nil
}

func parseCoordinate(s string) (artifact.Coordinate, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return artifact.Coordinate{}, fmt.Errorf("want groupId:artifactId:version, got %q", s)
	}
	return artifact.Coordinate{GroupID: parts[0], ArtifactID: parts[1], Extension: "jar", Version: parts[2]}, nil
}

func parseDependencyLine(l string) (collector.DeclaredDependency, error) {
	fields := strings.Fields(l)
	if len(fields) == 0 {
		return collector.DeclaredDependency{}, fmt.Errorf("empty dependency line")
	}
	ga, constraint, ok := strings.Cut(fields[0], "@")
	if !ok {
		return collector.DeclaredDependency{}, fmt.Errorf("want groupId:artifactId@constraint, got %q", fields[0])
	}
	gaParts := strings.Split(ga, ":")
	if len(gaParts) != 2 {
		return collector.DeclaredDependency{}, fmt.Errorf("want groupId:artifactId, got %q", ga)
	}

	d := collector.DeclaredDependency{
		Artifact:          artifact.Key{GroupID: gaParts[0], ArtifactID: gaParts[1], Extension: "jar"},
		VersionConstraint: constraint,
		Scope:             scope.Compile,
	}
	for _, tok := range fields[1:] {
		switch tok {
		case "optional":
			d.Optional = true
		default:
			d.Scope = scope.Id(tok)
		}
	}
	return d, nil
}

// excludeOf turns "groupId:artifactId" exclusion tokens from the CLI flag
// into the map shape selector.ExclusionFilter and graph.Dependency expect.
func excludeOf(patterns []string) map[graph.Exclusion]bool {
	if len(patterns) == 0 {
		return nil
	}
	out := make(map[graph.Exclusion]bool, len(patterns))
	for _, p := range patterns {
		ga := strings.Split(p, ":")
		if len(ga) != 2 {
			continue
		}
		out[graph.Exclusion{GroupID: ga[0], ArtifactID: ga[1]}] = true
	}
	return out
}
