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

package resolve

import (
	"deps.dev/util/mvnresolve/artifact"
	"deps.dev/util/mvnresolve/graph"
	"deps.dev/util/mvnresolve/scope"
)

// occurrence is one node's position in a conflict group: its identity,
// its parent, how far it is from the root, the order in which the walk
// first reached it (for stable nearest-wins tie-breaking), and the scope
// and optional flag derived along the single path that reaches it.
type occurrence struct {
	node            graph.NodeID
	parent          graph.NodeID
	depth           int
	seq             int
	derivedScope    scope.Id
	derivedOptional bool
}

// enumerateOccurrences walks g from root, skipping root itself, and
// returns every node tagged with conflictID, along with its path-derived
// scope and optional flag. The walk uses an on-stack guard so a
// still-cyclic graph (collection-time cycles not yet broken) does not
// recurse forever; a back edge simply is not descended into again.
func enumerateOccurrences(g *graph.Graph, root graph.NodeID, conflictID artifact.Key, deriver scope.Deriver) []occurrence {
	var occs []occurrence
	seq := 0
	onStack := map[graph.NodeID]bool{root: true}

	var walk func(id, parent graph.NodeID, depth int, derivedScope scope.Id, derivedOptional bool)
	walk = func(id, parent graph.NodeID, depth int, derivedScope scope.Id, derivedOptional bool) {
		n := g.Node(id)
		if n.Artifact != nil && n.Artifact.Key() == conflictID {
			occs = append(occs, occurrence{
				node: id, parent: parent, depth: depth, seq: seq,
				derivedScope: derivedScope, derivedOptional: derivedOptional,
			})
			seq++
		}
		for _, c := range n.Children {
			if onStack[c] {
				continue
			}
			cn := g.Node(c)
			childDeclared := scope.Compile
			childOptional := derivedOptional
			if cn.Dependency != nil {
				childDeclared = cn.Dependency.Scope
				childOptional = derivedOptional || cn.Dependency.IsOptional()
			}
			childScope := deriver.Derive(derivedScope, childDeclared)

			onStack[c] = true
			walk(c, id, depth+1, childScope, childOptional)
			delete(onStack, c)
		}
	}
	walk(root, graph.InvalidNodeID, 0, scope.Compile, false)
	return occs
}
