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

// Package manage implements the transitive dependency manager: the
// component that accumulates <dependencyManagement>-style override rules
// while walking down the tree and applies them to each dependency it
// sees.
package manage

import (
	"deps.dev/util/mvnresolve/artifact"
	"deps.dev/util/mvnresolve/graph"
	"deps.dev/util/mvnresolve/scope"
)

// Rule is one management override declared by a node: any zero field
// means "no override for that property" except Exclusions, whose
// presence is tested via len().
type Rule struct {
	Version    string
	Scope      scope.Id
	Optional   *bool
	LocalPath  string
	Exclusions map[graph.Exclusion]bool
}

// Management summarizes the overrides ManageDependency found for one
// dependency; a false Has* flag (or a nil *Management itself) means no
// override was present for that property.
type Management struct {
	Version    string
	HasVersion bool

	Scope    scope.Id
	HasScope bool

	Optional    *bool
	HasOptional bool

	LocalPath    string
	HasLocalPath bool

	RemoveLocalPath bool

	Exclusions    map[graph.Exclusion]bool
	HasExclusions bool
}

// IsZero reports whether m carries no overrides at all.
func (m *Management) IsZero() bool {
	return m == nil || (!m.HasVersion && !m.HasScope && !m.HasOptional && !m.HasLocalPath && !m.RemoveLocalPath && !m.HasExclusions)
}

// Manager is the transitive dependency manager. It is immutable once
// constructed; DeriveChild returns a new Manager rather than mutating the
// receiver, so a Manager may be shared across collector goroutines.
type Manager struct {
	depth       int
	deriveUntil int
	applyFrom   int

	managedVersions   map[artifact.Key]string
	managedScopes     map[artifact.Key]scope.Id
	managedOptionals  map[artifact.Key]*bool
	managedLocalPaths map[artifact.Key]string
	managedExclusions map[artifact.Key]map[graph.Exclusion]bool
}

// New returns the root (depth 0) Manager. deriveUntil bounds how many
// levels of <dependencyManagement> accumulation are honored; applyFrom is
// the depth at which accumulated rules start being applied to
// dependencies.
func New(deriveUntil, applyFrom int) *Manager {
	return &Manager{deriveUntil: deriveUntil, applyFrom: applyFrom}
}

// ManagedDependency is one entry a node may contribute to the manager
// while it is being derived into: a rule keyed by the artifact it
// manages.
type ManagedDependency struct {
	Key  artifact.Key
	Rule Rule
}

// DeriveChild returns the Manager to use for the current node's own
// children, after folding in contributed, not-yet-seen management
// entries from contributed (first wins per key, matching the semantics
// of an inherited <dependencyManagement> block: the nearest declaration
// wins).
func (m *Manager) DeriveChild(contributed []ManagedDependency) *Manager {
	child := &Manager{
		depth:             m.depth + 1,
		deriveUntil:       m.deriveUntil,
		applyFrom:         m.applyFrom,
		managedVersions:   cloneMap(m.managedVersions),
		managedScopes:     cloneMap(m.managedScopes),
		managedOptionals:  cloneMap(m.managedOptionals),
		managedLocalPaths: cloneMap(m.managedLocalPaths),
		managedExclusions: cloneExclusionMap(m.managedExclusions),
	}
	if m.depth >= m.deriveUntil {
		return child
	}
	for _, c := range contributed {
		if _, ok := child.managedVersions[c.Key]; !ok && c.Rule.Version != "" {
			if child.managedVersions == nil {
				child.managedVersions = map[artifact.Key]string{}
			}
			child.managedVersions[c.Key] = c.Rule.Version
		}
		// scope and optional stop deriving below the root: they are
		// transformation-time properties, not pre-bakeable management
		// state (§4.M).
		if m.depth == 0 {
			if _, ok := child.managedScopes[c.Key]; !ok && c.Rule.Scope != "" {
				if child.managedScopes == nil {
					child.managedScopes = map[artifact.Key]scope.Id{}
				}
				child.managedScopes[c.Key] = c.Rule.Scope
			}
			if _, ok := child.managedOptionals[c.Key]; !ok && c.Rule.Optional != nil {
				if child.managedOptionals == nil {
					child.managedOptionals = map[artifact.Key]*bool{}
				}
				child.managedOptionals[c.Key] = c.Rule.Optional
			}
		}
		if _, ok := child.managedLocalPaths[c.Key]; !ok && c.Rule.LocalPath != "" {
			if child.managedLocalPaths == nil {
				child.managedLocalPaths = map[artifact.Key]string{}
			}
			child.managedLocalPaths[c.Key] = c.Rule.LocalPath
		}
		if _, ok := child.managedExclusions[c.Key]; !ok && len(c.Rule.Exclusions) > 0 {
			if child.managedExclusions == nil {
				child.managedExclusions = map[artifact.Key]map[graph.Exclusion]bool{}
			}
			child.managedExclusions[c.Key] = c.Rule.Exclusions
		}
	}
	return child
}

// ManageDependency looks up accumulated rules for k and returns the
// overrides to apply, or nil if depth has not yet reached applyFrom or no
// rule matches k. A scope override to "system" carries the managed
// LocalPath along with it; an override away from "system" clears any
// LocalPath, per §4.M.
func (m *Manager) ManageDependency(k artifact.Key) *Management {
	if m.depth < m.applyFrom {
		return nil
	}
	var out Management
	if v, ok := m.managedVersions[k]; ok {
		out.Version, out.HasVersion = v, true
	}
	if s, ok := m.managedScopes[k]; ok {
		out.Scope, out.HasScope = s, true
		if s == scope.System {
			if lp, ok := m.managedLocalPaths[k]; ok {
				out.LocalPath, out.HasLocalPath = lp, true
			}
		} else {
			out.RemoveLocalPath = true
		}
	} else if lp, ok := m.managedLocalPaths[k]; ok {
		out.LocalPath, out.HasLocalPath = lp, true
	}
	if o, ok := m.managedOptionals[k]; ok {
		out.Optional, out.HasOptional = o, true
	}
	if ex, ok := m.managedExclusions[k]; ok {
		out.Exclusions, out.HasExclusions = ex, true
	}
	if out.IsZero() {
		return nil
	}
	return &out
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneExclusionMap(m map[artifact.Key]map[graph.Exclusion]bool) map[artifact.Key]map[graph.Exclusion]bool {
	if m == nil {
		return nil
	}
	out := make(map[artifact.Key]map[graph.Exclusion]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
