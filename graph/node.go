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

// Package graph implements the dependency-graph data model: an
// arena-indexed graph of DependencyNodes, the mutation API the collector
// and transformation pipeline use, and the pre/post-order visitor
// protocol.
//
// Nodes live in a single Graph's arena and are addressed by NodeID, a
// slice index. This sidesteps the need for weak references or reference
// counting when the graph is cyclic during collection: a cycle is just an
// index appearing in its own ancestry, and breaking it is a slice edit on
// the parent's Children, not a pointer rewrite.
package graph

import (
	"deps.dev/util/mvnresolve/artifact"
	"deps.dev/util/mvnresolve/scope"
	"deps.dev/util/mvnresolve/version"
)

// NodeID indexes into a Graph's Nodes slice. The zero value is a valid
// index (the root is conventionally node 0); use InvalidNodeID for "no
// node".
type NodeID int

// InvalidNodeID is never a valid index into any Graph.
const InvalidNodeID NodeID = -1

// ManagedBits is a bitset recording which fields of a node were last
// touched by the dependency manager or the conflict resolver, and whether
// the node is the recorded winner of its conflict group.
type ManagedBits uint32

const (
	ManagedScope ManagedBits = 1 << iota
	ManagedOptional
	ManagedVersion
	ManagedExclusions
	ManagedProperties
	Winner
)

// Has reports whether all bits in mask are set in b.
func (b ManagedBits) Has(mask ManagedBits) bool { return b&mask == mask }

// Exclusion names a (groupId, artifactId) pair to prune from a
// dependency's transitive closure.
type Exclusion struct {
	GroupID    string
	ArtifactID string
}

// Dependency is the declared edge into a node: the artifact it names, the
// scope it was declared with, its optional flag (nil means "not stated"),
// and its exclusion set.
type Dependency struct {
	Artifact   artifact.Coordinate
	Scope      scope.Id
	Optional   *bool
	Exclusions map[Exclusion]bool
}

// IsExcluded reports whether k is named by d's exclusion set.
func (d *Dependency) IsExcluded(k artifact.Key) bool {
	if d == nil || len(d.Exclusions) == 0 {
		return false
	}
	return d.Exclusions[Exclusion{GroupID: k.GroupID, ArtifactID: k.ArtifactID}]
}

// IsOptional reports d's optional flag, defaulting to false when unset.
func (d *Dependency) IsOptional() bool {
	return d != nil && d.Optional != nil && *d.Optional
}

// Premanaged records the pre-override value of a field the dependency
// manager rewrote, kept for diagnostics.
type Premanaged struct {
	Version    string
	Scope      scope.Id
	Optional   *bool
	Exclusions map[Exclusion]bool
}

// Node is a single vertex of the dependency graph. The root node may have
// a nil Dependency when resolving a bare POM; every other node's
// Dependency describes the edge that reached it.
type Node struct {
	Dependency *Dependency
	Artifact   *artifact.Coordinate
	Children   []NodeID

	VersionConstraint *version.VersionConstraint
	Version           *version.Version

	Premanaged Premanaged

	Relocations    []artifact.Coordinate
	Aliases        []artifact.Coordinate
	Repositories   []string
	RequestContext string

	ManagedBits ManagedBits

	data map[any]any
}

// SetArtifact sets n's resolved artifact coordinate.
func (n *Node) SetArtifact(a artifact.Coordinate) { n.Artifact = &a }

// SetScope sets the scope of n's incoming Dependency. It is a no-op on a
// node with a nil Dependency (the root).
func (n *Node) SetScope(s scope.Id) {
	if n.Dependency != nil {
		n.Dependency.Scope = s
	}
}

// SetOptional sets the optional flag of n's incoming Dependency. It is a
// no-op on a node with a nil Dependency.
func (n *Node) SetOptional(v bool) {
	if n.Dependency != nil {
		n.Dependency.Optional = &v
	}
}

// SetChildren replaces n's child list.
func (n *Node) SetChildren(children []NodeID) { n.Children = children }

// SetVersion sets n's resolved Version.
func (n *Node) SetVersion(v *version.Version) { n.Version = v }

// SetVersionConstraint sets n's VersionConstraint.
func (n *Node) SetVersionConstraint(c *version.VersionConstraint) { n.VersionConstraint = c }

// GetManagedBits returns n's ManagedBits.
func (n *Node) GetManagedBits() ManagedBits { return n.ManagedBits }

// SetManagedBits sets n's ManagedBits to mask, replacing any previous
// value.
func (n *Node) SetManagedBits(mask ManagedBits) { n.ManagedBits = mask }

// AddManagedBits ORs mask into n's existing ManagedBits.
func (n *Node) AddManagedBits(mask ManagedBits) { n.ManagedBits |= mask }

// SetData attaches an arbitrary value to n under key, for use by the
// transformation pipeline's per-node annotations (e.g. the winner
// pointer, original-scope diagnostics).
func (n *Node) SetData(key, value any) {
	if n.data == nil {
		n.data = make(map[any]any)
	}
	n.data[key] = value
}

// GetData retrieves a value previously attached with SetData.
func (n *Node) GetData(key any) (any, bool) {
	if n.data == nil {
		return nil, false
	}
	v, ok := n.data[key]
	return v, ok
}
