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

// Package transform implements the graph transformers that run ahead of
// conflict resolution proper: marking each node with its conflict group
// id, and producing a topological ordering of those ids for the resolver
// to process in.
package transform

import (
	"deps.dev/util/mvnresolve/artifact"
	"deps.dev/util/mvnresolve/graph"
)

// dataKey is an unexported type for graph.Node.SetData keys, so this
// package's annotations never collide with another package's keys that
// happen to share an underlying string.
type dataKey string

// ConflictIDKey is the graph.Node data key under which MarkConflictIDs
// records a node's conflict group id.
const ConflictIDKey dataKey = "conflict-id"

// MarkConflictIDs tags every node in g reachable from root with its
// conflict group id: the (groupId, artifactId, extension, classifier) key
// of its artifact. Nodes with no artifact yet (unresolved placeholders)
// are left unmarked.
func MarkConflictIDs(g *graph.Graph, root graph.NodeID) {
	var walk func(id graph.NodeID, seen map[graph.NodeID]bool)
	walk = func(id graph.NodeID, seen map[graph.NodeID]bool) {
		if id == graph.InvalidNodeID || seen[id] {
			return
		}
		seen[id] = true
		n := g.Node(id)
		if n.Artifact != nil {
			n.SetData(ConflictIDKey, n.Artifact.Key())
		}
		for _, c := range n.Children {
			walk(c, seen)
		}
	}
	walk(root, make(map[graph.NodeID]bool))
}

// ConflictID returns the conflict group id MarkConflictIDs attached to
// the node at id, or the zero Key if it was never marked.
func ConflictID(g *graph.Graph, id graph.NodeID) artifact.Key {
	if v, ok := g.Node(id).GetData(ConflictIDKey); ok {
		return v.(artifact.Key)
	}
	return artifact.Key{}
}
