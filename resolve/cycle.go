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

import "deps.dev/util/mvnresolve/graph"

type color int

const (
	white color = iota // not yet visited.
	gray               // on the current DFS path.
	black              // fully explored.
)

// breakCycles runs a standard DFS coloring pass over g from root and
// removes every back edge to a gray (on-path) ancestor from its parent's
// Children slice. It must run after every conflict group has been
// resolved, since removing losing occurrences can itself remove edges
// that close a cycle.
func breakCycles(g *graph.Graph, root graph.NodeID) {
	colors := map[graph.NodeID]color{}

	var visit func(id graph.NodeID)
	visit = func(id graph.NodeID) {
		if id == graph.InvalidNodeID {
			return
		}
		colors[id] = gray
		n := g.Node(id)
		kept := n.Children[:0:0]
		for _, c := range n.Children {
			if colors[c] == gray {
				continue // back edge: drop it.
			}
			kept = append(kept, c)
			if colors[c] == white {
				visit(c)
			}
		}
		n.Children = kept
		colors[id] = black
	}
	visit(root)
}
