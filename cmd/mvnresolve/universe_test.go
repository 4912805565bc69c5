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

package main

import (
	"strings"
	"testing"

	"deps.dev/util/mvnresolve/artifact"
	"deps.dev/util/mvnresolve/scope"

	"github.com/stretchr/testify/require"
)

const sampleUniverse = `
-- project g:foo:1.0
g:bar@1.0 compile
g:baz@[1,2] compile optional
-- project g:bar:1.0
g:jaz@1.0 test
-- project g:baz:2.0
-- project g:jaz:1.0
`

func TestParseUniverseRootIsFirstBlock(t *testing.T) {
	src, root, err := Parse(strings.NewReader(sampleUniverse))
	require.NoError(t, err)
	require.Equal(t, artifact.Coordinate{GroupID: "g", ArtifactID: "foo", Extension: "jar", Version: "1.0"}, root)

	proj, ok := src.Project("g", "foo", "1.0")
	require.True(t, ok)
	require.Len(t, proj.Dependencies, 2)
	require.Equal(t, "1.0", proj.Dependencies[0].VersionConstraint)
	require.Equal(t, scope.Compile, proj.Dependencies[0].Scope)
	require.False(t, proj.Dependencies[0].Optional)

	require.Equal(t, "[1,2]", proj.Dependencies[1].VersionConstraint)
	require.True(t, proj.Dependencies[1].Optional)
}

func TestParseUniverseDependencyScope(t *testing.T) {
	src, _, err := Parse(strings.NewReader(sampleUniverse))
	require.NoError(t, err)

	proj, ok := src.Project("g", "bar", "1.0")
	require.True(t, ok)
	require.Len(t, proj.Dependencies, 1)
	require.Equal(t, scope.Test, proj.Dependencies[0].Scope)
}

func TestParseUniverseRejectsDependencyOutsideBlock(t *testing.T) {
	_, _, err := Parse(strings.NewReader("g:bar@1.0 compile\n"))
	require.Error(t, err)
}

func TestParseUniverseRejectsEmptyFile(t *testing.T) {
	_, _, err := Parse(strings.NewReader(""))
	require.Error(t, err)
}

func TestExcludeOfParsesGroupArtifactPairs(t *testing.T) {
	m := excludeOf([]string{"com.example:foo", "*:bar"})
	require.Len(t, m, 2)
}
