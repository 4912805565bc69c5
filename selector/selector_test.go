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

package selector

import (
	"testing"

	"deps.dev/util/mvnresolve/artifact"
	"deps.dev/util/mvnresolve/graph"
	"deps.dev/util/mvnresolve/scope"

	"github.com/stretchr/testify/require"
)

func mkArtifact(groupID, artifactID string) artifact.Coordinate {
	return artifact.Coordinate{GroupID: groupID, ArtifactID: artifactID}
}

func compileDep() *graph.Dependency    { return &graph.Dependency{Scope: scope.Compile} }
func testDep() *graph.Dependency       { return &graph.Dependency{Scope: scope.Test} }
func optionalDep(v bool) *graph.Dependency {
	return &graph.Dependency{Scope: scope.Compile, Optional: &v}
}

func TestScopeDependencySelectorDirectAcceptsAndRejects(t *testing.T) {
	s := NewScopeDependencySelector(0, Infinite, NewScopeSet(scope.Compile), nil, false)
	require.True(t, s.Select(compileDep()))
	require.False(t, s.Select(testDep()))
}

func TestScopeDependencySelectorDeriveChildStillRejectsTransitiveTest(t *testing.T) {
	s := NewScopeDependencySelector(0, Infinite, NewScopeSet(scope.Compile), nil, false)
	child := s.DeriveChild(Context{Dependency: compileDep()})
	require.False(t, child.Select(testDep()))
}

func TestScopeDependencySelectorOutOfRangeAlwaysAccepts(t *testing.T) {
	s := NewScopeDependencySelector(5, 10, NewScopeSet(scope.Compile), nil, false)
	require.True(t, s.Select(testDep())) // depth 0 < applyFrom 5.
}

func TestScopeDependencySelectorExcluded(t *testing.T) {
	s := NewScopeDependencySelector(0, Infinite, nil, NewScopeSet(scope.Test), false)
	require.True(t, s.Select(compileDep()))
	require.False(t, s.Select(testDep()))
}

func TestLegacyShiftsApplyFromOnlyAtNullRoot(t *testing.T) {
	legacy := Legacy(nil, nil)
	require.Equal(t, 1, legacy.applyFrom)

	child := legacy.DeriveChild(Context{Dependency: nil}).(*ScopeDependencySelector)
	require.Equal(t, 2, child.applyFrom) // shifted: root had a nil dependency.
	require.Equal(t, 1, child.depth)

	grandchild := child.DeriveChild(Context{Dependency: compileDep()}).(*ScopeDependencySelector)
	require.Equal(t, 2, grandchild.applyFrom) // no further shift past depth 0.
	require.Equal(t, 2, grandchild.depth)
}

func TestLegacyNoShiftWhenRootHasDependency(t *testing.T) {
	legacy := Legacy(nil, nil)
	child := legacy.DeriveChild(Context{Dependency: compileDep()}).(*ScopeDependencySelector)
	require.Equal(t, 1, child.applyFrom) // unchanged: root was itself a dependency.
}

func TestOptionalDependencySelectorRejectsTransitiveOfDirect(t *testing.T) {
	s := NewOptionalDependencySelector(1)
	require.True(t, s.Select(optionalDep(true))) // depth 0 < applyFrom.

	child := s.DeriveChild(Context{})
	require.False(t, child.Select(optionalDep(true)))
	require.True(t, child.Select(optionalDep(false)))
}

func TestFilterAndOrNot(t *testing.T) {
	alwaysTrue := filterFunc(func(*graph.Dependency) bool { return true })
	alwaysFalse := filterFunc(func(*graph.Dependency) bool { return false })

	require.True(t, And().Accept(nil))
	require.False(t, Or().Accept(nil))
	require.False(t, And(alwaysTrue, alwaysFalse).Accept(nil))
	require.True(t, Or(alwaysFalse, alwaysTrue).Accept(nil))
	require.True(t, Not(alwaysFalse).Accept(nil))
}

func TestScopeFilter(t *testing.T) {
	f := ScopeFilter([]scope.Id{scope.Compile}, nil)
	require.True(t, f.Accept(compileDep()))
	require.False(t, f.Accept(testDep()))
}

func TestExclusionFilterWildcards(t *testing.T) {
	dep := &graph.Dependency{Artifact: mkArtifact("com.example", "foo")}

	require.False(t, ExclusionFilter(map[graph.Exclusion]bool{{GroupID: "com.example", ArtifactID: "foo"}: true}).Accept(dep))
	require.False(t, ExclusionFilter(map[graph.Exclusion]bool{{GroupID: "com.example", ArtifactID: "*"}: true}).Accept(dep))
	require.False(t, ExclusionFilter(map[graph.Exclusion]bool{{GroupID: "*", ArtifactID: "*"}: true}).Accept(dep))
	require.True(t, ExclusionFilter(map[graph.Exclusion]bool{{GroupID: "com.other", ArtifactID: "foo"}: true}).Accept(dep))
}

func TestPatternFilter(t *testing.T) {
	dep := &graph.Dependency{Artifact: mkArtifact("com.example", "foo")}
	require.False(t, PatternFilter([]string{"com.example:*"}).Accept(dep))
	require.True(t, PatternFilter([]string{"com.other:*"}).Accept(dep))
}
