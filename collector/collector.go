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

package collector

import (
	"fmt"

	"deps.dev/util/mvnresolve/artifact"
	"deps.dev/util/mvnresolve/graph"
	"deps.dev/util/mvnresolve/manage"
	"deps.dev/util/mvnresolve/selector"
	"deps.dev/util/mvnresolve/version"
)

// Collect builds the raw dependency graph for root, recursively resolving
// each DeclaredDependency through sel and mgr. The returned graph may
// still contain cycles and duplicate conflict-group occurrences; it is
// meant to be handed to resolve.Resolve, not consumed directly.
func Collect(src Source, scheme *version.Scheme, root artifact.Coordinate, sel selector.Selector, mgr *manage.Manager) (*graph.Graph, error) {
	g := graph.New()
	rootVersion, err := scheme.ParseVersion(root.Version)
	if err != nil {
		return nil, fmt.Errorf("collector: root version %q: %w", root.Version, err)
	}
	rootID := g.AddNode(graph.Node{Artifact: &root, Version: rootVersion})
	g.Root = rootID

	proj, ok := src.Project(root.GroupID, root.ArtifactID, root.Version)
	if !ok {
		return nil, fmt.Errorf("collector: unknown project %s", root)
	}

	c := &collector{src: src, scheme: scheme, g: g}
	mgr = mgr.DeriveChild(toManagedDependencies(proj.Management))
	ancestors := map[artifact.Key]graph.NodeID{root.Key(): rootID}
	if err := c.walk(rootID, proj.Dependencies, sel, mgr, ancestors); err != nil {
		return nil, err
	}
	return g, nil
}

type collector struct {
	src    Source
	scheme *version.Scheme
	g      *graph.Graph
}

// walk resolves deps as parent's children, recursing into each one that
// sel.Select accepts. ancestors maps a conflict id to the NodeID of its
// occurrence on the current path, letting a dependency that resolves back
// to an artifact already being expanded close a cycle (an index
// self-reference) instead of recursing forever.
func (c *collector) walk(parent graph.NodeID, deps []DeclaredDependency, sel selector.Selector, mgr *manage.Manager, ancestors map[artifact.Key]graph.NodeID) error {
	var children []graph.NodeID
	for _, d := range deps {
		childID, err := c.resolveOne(parent, d, sel, mgr, ancestors)
		if err != nil {
			return err
		}
		if childID != graph.InvalidNodeID {
			children = append(children, childID)
		}
	}
	c.g.Node(parent).Children = append(c.g.Node(parent).Children, children...)
	return nil
}

func (c *collector) resolveOne(parent graph.NodeID, d DeclaredDependency, sel selector.Selector, mgr *manage.Manager, ancestors map[artifact.Key]graph.NodeID) (graph.NodeID, error) {
	dep := &graph.Dependency{
		Artifact: artifact.Coordinate{
			GroupID: d.Artifact.GroupID, ArtifactID: d.Artifact.ArtifactID,
			Extension: d.Artifact.Extension, Classifier: d.Artifact.Classifier,
		},
		Scope:      d.Scope,
		Exclusions: d.Exclusions,
	}
	opt := d.Optional
	dep.Optional = &opt

	constraintSpec := d.VersionConstraint
	premanaged := graph.Premanaged{Version: constraintSpec, Scope: d.Scope, Optional: dep.Optional, Exclusions: d.Exclusions}
	managedBits := graph.ManagedBits(0)

	if m := mgr.ManageDependency(d.Artifact); m != nil {
		if m.HasVersion {
			constraintSpec = m.Version
			managedBits |= graph.ManagedVersion
		}
		if m.HasScope {
			dep.Scope = m.Scope
			managedBits |= graph.ManagedScope
		}
		if m.HasOptional {
			dep.Optional = m.Optional
			managedBits |= graph.ManagedOptional
		}
		if m.HasExclusions {
			dep.Exclusions = mergeExclusions(dep.Exclusions, m.Exclusions)
			managedBits |= graph.ManagedExclusions
		}
		if m.HasLocalPath {
			dep.Artifact.Properties.LocalPath = m.LocalPath
			managedBits |= graph.ManagedProperties
		} else if m.RemoveLocalPath {
			dep.Artifact.Properties.LocalPath = ""
		}
	}

	if !sel.Select(dep) {
		return graph.InvalidNodeID, nil
	}

	constraint, err := c.scheme.ParseConstraint(constraintSpec)
	if err != nil {
		return graph.InvalidNodeID, fmt.Errorf("collector: %s: %w", d.Artifact, err)
	}
	resolvedVersion, err := c.pickVersion(d.Artifact, constraint)
	if err != nil {
		return graph.InvalidNodeID, err
	}
	dep.Artifact.Version = resolvedVersion.String()

	if existing, cyclic := ancestors[d.Artifact]; cyclic {
		return existing, nil
	}

	coord := dep.Artifact
	childID := c.g.AddNode(graph.Node{
		Dependency:        dep,
		Artifact:          &coord,
		VersionConstraint: constraint,
		Version:           resolvedVersion,
		Premanaged:        premanaged,
		ManagedBits:       managedBits,
	})

	proj, ok := c.src.Project(coord.GroupID, coord.ArtifactID, coord.Version)
	if !ok {
		// No further declarations known for this artifact; it is a leaf
		// as far as this Source is concerned.
		return childID, nil
	}

	childSel := sel.DeriveChild(selector.Context{Dependency: dep})
	childMgr := mgr.DeriveChild(toManagedDependencies(proj.Management))

	childAncestors := make(map[artifact.Key]graph.NodeID, len(ancestors)+1)
	for k, v := range ancestors {
		childAncestors[k] = v
	}
	childAncestors[d.Artifact] = childID

	if err := c.walk(childID, proj.Dependencies, childSel, childMgr, childAncestors); err != nil {
		return graph.InvalidNodeID, err
	}
	return childID, nil
}

// pickVersion resolves constraint to a concrete version: a soft
// constraint's preferred version is used directly, while a hard
// constraint's highest satisfying known version is picked, mirroring a
// real client's range-resolution-against-repository-metadata step.
func (c *collector) pickVersion(key artifact.Key, constraint *version.VersionConstraint) (*version.Version, error) {
	if constraint.IsSoft() {
		return constraint.PreferredVersion(), nil
	}
	var best *version.Version
	for _, s := range c.src.Versions(key.GroupID, key.ArtifactID) {
		v, err := c.scheme.ParseVersion(s)
		if err != nil {
			continue
		}
		if !constraint.Contains(v) {
			continue
		}
		if best == nil || v.Compare(best) > 0 {
			best = v
		}
	}
	if best == nil {
		return nil, fmt.Errorf("collector: no known version of %s satisfies %s", key, constraint)
	}
	return best, nil
}

func mergeExclusions(a, b map[graph.Exclusion]bool) map[graph.Exclusion]bool {
	if len(a) == 0 {
		return b
	}
	out := make(map[graph.Exclusion]bool, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func toManagedDependencies(rules []ManagementRule) []manage.ManagedDependency {
	out := make([]manage.ManagedDependency, len(rules))
	for i, r := range rules {
		out[i] = manage.ManagedDependency{Key: r.Artifact, Rule: r.Rule}
	}
	return out
}
