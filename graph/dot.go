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

package graph

import (
	"fmt"
	"io"
)

// Dot writes a Graphviz "dot" rendering of g, reachable from root, to w.
// It is a debugging aid, not part of the resolution algorithm: pipe the
// output through `dot -Tpng` to inspect a resolved or intermediate graph.
func Dot(w io.Writer, g *Graph, root NodeID) error {
	if _, err := fmt.Fprintln(w, "digraph {"); err != nil {
		return err
	}
	seen := make(map[NodeID]bool)
	var nodes []NodeID
	var walk func(id NodeID)
	walk = func(id NodeID) {
		if id == InvalidNodeID || seen[id] {
			return
		}
		seen[id] = true
		nodes = append(nodes, id)
		for _, c := range g.Node(id).Children {
			walk(c)
		}
	}
	walk(root)

	for _, id := range nodes {
		n := g.Node(id)
		label := fmt.Sprintf("node %d", id)
		if n.Artifact != nil {
			label = n.Artifact.String()
		}
		attrs := ""
		if n.ManagedBits.Has(Winner) {
			attrs = `,color="green",penwidth=2`
		}
		if _, err := fmt.Fprintf(w, "  %d [label=%q%s];\n", id, label, attrs); err != nil {
			return err
		}
	}
	for _, id := range nodes {
		for _, c := range g.Node(id).Children {
			edgeLabel := ""
			if dep := g.Node(c).Dependency; dep != nil {
				edgeLabel = string(dep.Scope)
			}
			if _, err := fmt.Fprintf(w, "  %d -> %d [label=%q];\n", id, c, edgeLabel); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
