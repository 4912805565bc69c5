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

package visit

import (
	"testing"

	"deps.dev/util/mvnresolve/artifact"
	"deps.dev/util/mvnresolve/graph"

	"github.com/stretchr/testify/require"
)

func node(g *graph.Graph, id string, children ...graph.NodeID) graph.NodeID {
	return g.AddNode(graph.Node{
		Artifact: &artifact.Coordinate{GroupID: "g", ArtifactID: id},
		Children: children,
	})
}

func ids(g *graph.Graph, order []graph.NodeID) []string {
	out := make([]string, len(order))
	for i, id := range order {
		out[i] = g.Node(id).Artifact.ArtifactID
	}
	return out
}

func TestPreOrderDiamondDedup(t *testing.T) {
	g := graph.New()
	d := node(g, "d")
	b := node(g, "b", d)
	c := node(g, "c", d)
	a := node(g, "a", b, c)

	require.Equal(t, []string{"a", "b", "d", "c"}, ids(g, PreOrder(g, a)))
}

func TestPostOrderDiamondDedup(t *testing.T) {
	g := graph.New()
	d := node(g, "d")
	b := node(g, "b", d)
	c := node(g, "c", d)
	a := node(g, "a", b, c)

	require.Equal(t, []string{"d", "b", "c", "a"}, ids(g, PostOrder(g, a)))
}

func TestEachStopsEarly(t *testing.T) {
	g := graph.New()
	c := node(g, "c")
	b := node(g, "b", c)
	a := node(g, "a", b)

	var visited []string
	Each(g, a, func(id graph.NodeID) bool {
		visited = append(visited, g.Node(id).Artifact.ArtifactID)
		return id != b
	})
	require.Equal(t, []string{"a", "b"}, visited)
}
