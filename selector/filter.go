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

package selector

import (
	"strings"

	"deps.dev/util/mvnresolve/artifact"
	"deps.dev/util/mvnresolve/graph"
	"deps.dev/util/mvnresolve/scope"
)

// Filter is a simple, depth-independent predicate over a dependency,
// composable with And/Or/Not. Unlike Selector, a Filter never needs to be
// derived per recursion depth; it is used for one-shot membership tests
// such as exclusion-pattern matching.
type Filter interface {
	Accept(dep *graph.Dependency) bool
}

type filterFunc func(dep *graph.Dependency) bool

func (f filterFunc) Accept(dep *graph.Dependency) bool { return f(dep) }

// And returns a Filter accepting a dependency only if every filter does.
// And of zero filters accepts everything.
func And(filters ...Filter) Filter {
	return filterFunc(func(dep *graph.Dependency) bool {
		for _, f := range filters {
			if !f.Accept(dep) {
				return false
			}
		}
		return true
	})
}

// Or returns a Filter accepting a dependency if any filter does. Or of
// zero filters rejects everything.
func Or(filters ...Filter) Filter {
	return filterFunc(func(dep *graph.Dependency) bool {
		for _, f := range filters {
			if f.Accept(dep) {
				return true
			}
		}
		return false
	})
}

// Not inverts f.
func Not(f Filter) Filter {
	return filterFunc(func(dep *graph.Dependency) bool { return !f.Accept(dep) })
}

// ScopeFilter accepts a dependency whose scope is a member of included (or
// included is empty, meaning unrestricted) and not a member of excluded.
func ScopeFilter(included, excluded []scope.Id) Filter {
	inc := NewScopeSet(included...)
	exc := NewScopeSet(excluded...)
	return filterFunc(func(dep *graph.Dependency) bool {
		if dep == nil {
			return true
		}
		if inc != nil && !inc.contains(dep.Scope) {
			return false
		}
		if exc != nil && exc.contains(dep.Scope) {
			return false
		}
		return true
	})
}

// ExclusionFilter accepts a dependency whose artifact key is not named by
// exclusions, a set of (groupId, artifactId) pairs where either field may
// be "*" as a wildcard, matching Maven's classic exclusion syntax
// ("groupId:artifactId", "groupId:*", "*:artifactId", "*:*").
func ExclusionFilter(exclusions map[graph.Exclusion]bool) Filter {
	return filterFunc(func(dep *graph.Dependency) bool {
		if dep == nil || len(exclusions) == 0 {
			return true
		}
		return !isExcluded(exclusions, dep.Artifact.Key())
	})
}

func isExcluded(exclusions map[graph.Exclusion]bool, k artifact.Key) bool {
	if exclusions[graph.Exclusion{GroupID: "*", ArtifactID: "*"}] {
		return true
	}
	if exclusions[graph.Exclusion{GroupID: k.GroupID, ArtifactID: k.ArtifactID}] {
		return true
	}
	if exclusions[graph.Exclusion{GroupID: k.GroupID, ArtifactID: "*"}] {
		return true
	}
	if exclusions[graph.Exclusion{GroupID: "*", ArtifactID: k.ArtifactID}] {
		return true
	}
	return false
}

// PatternFilter accepts a dependency whose "groupId:artifactId" does not
// match any of patterns. Each pattern is itself "groupId:artifactId" with
// either half allowed to be "*".
func PatternFilter(patterns []string) Filter {
	parsed := make(map[graph.Exclusion]bool, len(patterns))
	for _, p := range patterns {
		parts := strings.SplitN(p, ":", 2)
		if len(parts) != 2 {
			continue
		}
		parsed[graph.Exclusion{GroupID: parts[0], ArtifactID: parts[1]}] = true
	}
	return ExclusionFilter(parsed)
}
