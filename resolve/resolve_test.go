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
	"testing"

	"deps.dev/util/mvnresolve/artifact"
	"deps.dev/util/mvnresolve/graph"
	"deps.dev/util/mvnresolve/scope"
	"deps.dev/util/mvnresolve/version"

	"github.com/stretchr/testify/require"
)

// depNode adds a node for a declared dependency edge: artifactID at ver,
// under the given scope and optional flag, with children.
func depNode(t *testing.T, g *graph.Graph, artifactID, ver string, s scope.Id, optional bool, children ...graph.NodeID) graph.NodeID {
	t.Helper()
	v := version.MustParseVersion(ver)
	c, err := version.ParseConstraint(ver)
	require.NoError(t, err)
	coord := artifact.Coordinate{GroupID: "g", ArtifactID: artifactID, Extension: "jar", Version: ver}
	opt := optional
	return g.AddNode(graph.Node{
		Dependency:        &graph.Dependency{Artifact: coord, Scope: s, Optional: &opt},
		Artifact:          &coord,
		Version:           v,
		VersionConstraint: c,
		Children:          children,
	})
}

// rangeNode is like depNode but with an explicit hard range constraint
// distinct from the concrete resolved version (e.g. "C[1..2]" resolving to
// version 2).
func rangeNode(t *testing.T, g *graph.Graph, artifactID, resolvedVer, rangeSpec string, s scope.Id, children ...graph.NodeID) graph.NodeID {
	t.Helper()
	v := version.MustParseVersion(resolvedVer)
	c, err := version.ParseConstraint(rangeSpec)
	require.NoError(t, err)
	coord := artifact.Coordinate{GroupID: "g", ArtifactID: artifactID, Extension: "jar", Version: resolvedVer}
	return g.AddNode(graph.Node{
		Dependency:        &graph.Dependency{Artifact: coord, Scope: s},
		Artifact:          &coord,
		Version:           v,
		VersionConstraint: c,
		Children:          children,
	})
}

func rootNode(g *graph.Graph, artifactID string, children ...graph.NodeID) graph.NodeID {
	coord := artifact.Coordinate{GroupID: "g", ArtifactID: artifactID, Extension: "jar"}
	return g.AddNode(graph.Node{Artifact: &coord, Children: children})
}

// rootNodeVersioned is rootNode with an explicit root version, needed to
// exercise the snapshot-filter configuration's root-is-snapshot branch.
func rootNodeVersioned(g *graph.Graph, artifactID, ver string, children ...graph.NodeID) graph.NodeID {
	v := version.MustParseVersion(ver)
	coord := artifact.Coordinate{GroupID: "g", ArtifactID: artifactID, Extension: "jar", Version: ver}
	return g.AddNode(graph.Node{Artifact: &coord, Version: v, Children: children})
}

func children(g *graph.Graph, id graph.NodeID) []string {
	n := g.Node(id)
	out := make([]string, len(n.Children))
	for i, c := range n.Children {
		out[i] = g.Node(c).Artifact.ArtifactID
	}
	return out
}

func TestResolveNoConflict(t *testing.T) {
	g := graph.New()
	bar := depNode(t, g, "bar", "1.0", scope.Compile, false)
	foo := rootNode(g, "foo", bar)
	g.Root = foo

	err := Resolve(g, DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, []string{"bar"}, children(g, foo))
}

func TestResolveVersionClashNearest(t *testing.T) {
	g := graph.New()
	bazUnderBar := depNode(t, g, "baz", "2.0", scope.Compile, false)
	bar := depNode(t, g, "bar", "1.0", scope.Compile, false, bazUnderBar)
	bazDirect := depNode(t, g, "baz", "1.0", scope.Compile, false)
	foo := rootNode(g, "foo", bar, bazDirect)
	g.Root = foo

	err := Resolve(g, DefaultConfig())
	require.NoError(t, err)

	require.Equal(t, []string{"bar", "baz"}, children(g, foo))
	require.Empty(t, g.Node(bar).Children)
	require.Equal(t, "1.0", g.Node(bazDirect).Version.String())
}

func TestResolveRangeClashAscendingVerbosityNone(t *testing.T) {
	g := graph.New()
	cUnderB := rangeNode(t, g, "C", "1", "[1,2]", scope.Compile)
	b := depNode(t, g, "B", "1.0", scope.Compile, false, cUnderB)
	cDirect := rangeNode(t, g, "C", "2", "[1,2]", scope.Compile)
	a := rootNode(g, "A", b, cDirect)
	g.Root = a

	cfg := DefaultConfig()
	cfg.VersionSelector = Highest
	cfg.Verbosity = None
	err := Resolve(g, cfg)
	require.NoError(t, err)

	require.Equal(t, []string{"B", "C"}, children(g, a))
	require.Empty(t, g.Node(b).Children)
	winnerID := g.Node(a).Children[1]
	require.Equal(t, "2", g.Node(winnerID).Version.String())
}

func TestResolveRangeClashAscendingVerbosityStandard(t *testing.T) {
	g := graph.New()
	cUnderB := rangeNode(t, g, "C", "1", "[1,2]", scope.Compile)
	b := depNode(t, g, "B", "1.0", scope.Compile, false, cUnderB)
	cDirect := rangeNode(t, g, "C", "2", "[1,2]", scope.Compile)
	a := rootNode(g, "A", b, cDirect)
	g.Root = a

	cfg := DefaultConfig()
	cfg.VersionSelector = Highest
	cfg.Verbosity = Standard
	err := Resolve(g, cfg)
	require.NoError(t, err)

	require.Equal(t, []string{"B", "C"}, children(g, a))
	// B's loser child "C:1" survives under Standard verbosity, tagged with
	// a pointer to the winner.
	require.Equal(t, []string{"C"}, children(g, b))
	v, ok := g.Node(cUnderB).GetData(winnerKey)
	require.True(t, ok)
	require.Equal(t, g.Node(a).Children[1], v)
}

func TestResolveScopeDerivation(t *testing.T) {
	// jaz is reached two ways: through bar, declared test, and through
	// baz, declared compile. Before any conflict is resolved, each path
	// derives its own scope independently; this is what feeds both the
	// diagnostic annotations in verbose mode and the ScopeSelector's
	// input set.
	g := graph.New()
	jazUnderBar := depNode(t, g, "jaz", "1.0", scope.Compile, false)
	bar := depNode(t, g, "bar", "1.0", scope.Test, false, jazUnderBar)
	jazUnderBaz := depNode(t, g, "jaz", "1.0", scope.Compile, false)
	baz := depNode(t, g, "baz", "1.0", scope.Compile, false, jazUnderBaz)
	foo := rootNode(g, "foo", bar, baz)
	g.Root = foo

	occs := enumerateOccurrences(g, foo, artifact.Key{GroupID: "g", ArtifactID: "jaz", Extension: "jar"}, scope.DefaultDeriver{})
	require.Len(t, occs, 2)
	byParent := map[graph.NodeID]occurrence{}
	for _, o := range occs {
		byParent[o.parent] = o
	}
	require.Equal(t, scope.Test, byParent[bar].derivedScope)
	require.Equal(t, scope.Compile, byParent[baz].derivedScope)

	err := Resolve(g, DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, []string{"bar", "baz"}, children(g, foo))
}

func TestResolveOptionality(t *testing.T) {
	g := graph.New()
	jazUnderBar := depNode(t, g, "jaz", "1.0", scope.Compile, false)
	bar := depNode(t, g, "bar", "1.0", scope.Compile, true, jazUnderBar)
	jazUnderBaz := depNode(t, g, "jaz", "1.0", scope.Compile, false)
	baz := depNode(t, g, "baz", "1.0", scope.Compile, false, jazUnderBaz)
	foo := rootNode(g, "foo", bar, baz)
	g.Root = foo

	err := Resolve(g, DefaultConfig())
	require.NoError(t, err)

	// bar is discovered before baz, so the nearest-wins tie break picks
	// jazUnderBar as the winner; its optional flag must still come out
	// false, since baz's occurrence reaches jaz along a non-optional path.
	require.Equal(t, []string{"jaz"}, children(g, bar))
	winnerJaz := g.Node(bar).Children[0]
	require.False(t, g.Node(winnerJaz).Dependency.IsOptional())
	require.Empty(t, g.Node(baz).Children)
}

func TestResolveCycle(t *testing.T) {
	g := graph.New()
	baz := depNode(t, g, "baz", "1.0", scope.Compile, false)
	bar := depNode(t, g, "bar", "1.0", scope.Compile, false, baz)
	g.Node(baz).Children = []graph.NodeID{bar}
	foo := rootNode(g, "foo", bar)
	g.Root = foo

	err := Resolve(g, DefaultConfig())
	require.NoError(t, err)

	require.Equal(t, []string{"bar"}, children(g, foo))
	require.Equal(t, []string{"baz"}, children(g, bar))
	require.Empty(t, g.Node(baz).Children)
}

func TestResolveSnapshotFilterBansSnapshotByDefaultWhenRootIsRelease(t *testing.T) {
	g := graph.New()
	snap := depNode(t, g, "bar", "2.0-SNAPSHOT", scope.Compile, false)
	release := depNode(t, g, "bar", "1.0", scope.Compile, false)
	foo := rootNodeVersioned(g, "foo", "1.0", snap, release)
	g.Root = foo

	cfg := DefaultConfig()
	cfg.VersionSelector = Highest
	err := Resolve(g, cfg)
	require.NoError(t, err)

	require.Equal(t, []string{"bar"}, children(g, foo))
	winner := g.Node(foo).Children[0]
	require.Equal(t, "1.0", g.Node(winner).Version.String())
}

func TestResolveSnapshotFilterAllowsSnapshotWhenRootIsSnapshot(t *testing.T) {
	g := graph.New()
	snap := depNode(t, g, "bar", "2.0-SNAPSHOT", scope.Compile, false)
	release := depNode(t, g, "bar", "1.0", scope.Compile, false)
	foo := rootNodeVersioned(g, "foo", "1.0-SNAPSHOT", snap, release)
	g.Root = foo

	cfg := DefaultConfig()
	cfg.VersionSelector = Highest
	err := Resolve(g, cfg)
	require.NoError(t, err)

	winner := g.Node(foo).Children[0]
	require.Equal(t, "2.0-SNAPSHOT", g.Node(winner).Version.String())
}

func TestResolveSnapshotFilterAlwaysBansWhenConfigured(t *testing.T) {
	g := graph.New()
	snap := depNode(t, g, "bar", "2.0-SNAPSHOT", scope.Compile, false)
	release := depNode(t, g, "bar", "1.0", scope.Compile, false)
	foo := rootNodeVersioned(g, "foo", "1.0-SNAPSHOT", snap, release)
	g.Root = foo

	cfg := DefaultConfig()
	cfg.VersionSelector = Highest
	cfg.SnapshotFilter = true
	err := Resolve(g, cfg)
	require.NoError(t, err)

	winner := g.Node(foo).Children[0]
	require.Equal(t, "1.0", g.Node(winner).Version.String())
}

func TestResolveUnsolvable(t *testing.T) {
	g := graph.New()
	low := rangeNode(t, g, "C", "1", "[1,2]", scope.Compile)
	high := rangeNode(t, g, "C", "5", "[5,6]", scope.Compile)
	foo := rootNode(g, "foo", low, high)
	g.Root = foo

	err := Resolve(g, DefaultConfig())
	require.Error(t, err)
	var uvc *UnsolvableVersionConflict
	require.ErrorAs(t, err, &uvc)
}
