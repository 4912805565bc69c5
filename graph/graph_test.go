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
	"strings"
	"testing"

	"deps.dev/util/mvnresolve/artifact"

	"github.com/stretchr/testify/require"
)

func buildChain(g *Graph) (root, mid, leaf NodeID) {
	leaf = g.AddNode(Node{Artifact: &artifact.Coordinate{ArtifactID: "leaf"}})
	mid = g.AddNode(Node{Artifact: &artifact.Coordinate{ArtifactID: "mid"}, Children: []NodeID{leaf}})
	root = g.AddNode(Node{Artifact: &artifact.Coordinate{ArtifactID: "root"}, Children: []NodeID{mid}})
	g.Root = root
	return
}

type recordingVisitor struct {
	entered, left []NodeID
}

func (r *recordingVisitor) VisitEnter(g *Graph, id NodeID) bool {
	r.entered = append(r.entered, id)
	return true
}

func (r *recordingVisitor) VisitLeave(g *Graph, id NodeID) bool {
	r.left = append(r.left, id)
	return true
}

func TestWalkOrder(t *testing.T) {
	g := New()
	root, mid, leaf := buildChain(g)

	rv := &recordingVisitor{}
	Walk(g, g.Root, rv)

	require.Equal(t, []NodeID{root, mid, leaf}, rv.entered)
	require.Equal(t, []NodeID{leaf, mid, root}, rv.left)
}

func TestWalkStopsDescentWhenEnterReturnsFalse(t *testing.T) {
	g := New()
	_, mid, _ := buildChain(g)

	var entered []NodeID
	v := visitorFunc{
		enter: func(g *Graph, id NodeID) bool {
			entered = append(entered, id)
			return id != mid // don't descend into mid's children.
		},
		leave: func(g *Graph, id NodeID) bool { return true },
	}
	Walk(g, g.Root, v)
	require.NotContains(t, entered, NodeID(0)) // leaf never entered.
}

type visitorFunc struct {
	enter func(g *Graph, id NodeID) bool
	leave func(g *Graph, id NodeID) bool
}

func (v visitorFunc) VisitEnter(g *Graph, id NodeID) bool { return v.enter(g, id) }
func (v visitorFunc) VisitLeave(g *Graph, id NodeID) bool { return v.leave(g, id) }

func TestSetDataGetData(t *testing.T) {
	n := &Node{}
	_, ok := n.GetData("k")
	require.False(t, ok)

	n.SetData("k", 42)
	v, ok := n.GetData("k")
	require.True(t, ok)
	require.Equal(t, 42, v)
}

func TestManagedBitsHas(t *testing.T) {
	var b ManagedBits
	require.False(t, b.Has(Winner))
	b |= Winner | ManagedScope
	require.True(t, b.Has(Winner))
	require.True(t, b.Has(ManagedScope))
	require.False(t, b.Has(ManagedVersion))
}

func TestCloneDeepCopiesMutableFields(t *testing.T) {
	g := New()
	opt := true
	id := g.AddNode(Node{
		Dependency: &Dependency{Scope: "compile", Optional: &opt, Exclusions: map[Exclusion]bool{{GroupID: "g", ArtifactID: "a"}: true}},
		Children:   []NodeID{5},
	})
	clone := g.Clone(id)

	g.Node(clone).Dependency.Scope = "test"
	require.Equal(t, scopeOf(g, id), "compile")

	g.Node(clone).Children[0] = 9
	require.Equal(t, NodeID(5), g.Node(id).Children[0])
}

func scopeOf(g *Graph, id NodeID) string { return string(g.Node(id).Dependency.Scope) }

func TestDotRendersReachableNodes(t *testing.T) {
	g := New()
	buildChain(g)

	var buf strings.Builder
	require.NoError(t, Dot(&buf, g, g.Root))
	out := buf.String()
	require.Contains(t, out, "digraph {")
	require.Contains(t, out, "root")
	require.Contains(t, out, "mid")
	require.Contains(t, out, "leaf")
}
