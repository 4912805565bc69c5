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

package artifact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyIgnoresVersion(t *testing.T) {
	a := Coordinate{GroupID: "com.example", ArtifactID: "foo", Extension: "jar", Version: "1.0"}
	b := Coordinate{GroupID: "com.example", ArtifactID: "foo", Extension: "jar", Version: "2.0"}
	require.Equal(t, a.Key(), b.Key())
}

func TestKeyDistinguishesClassifier(t *testing.T) {
	a := Coordinate{GroupID: "com.example", ArtifactID: "foo", Extension: "jar"}
	b := Coordinate{GroupID: "com.example", ArtifactID: "foo", Extension: "jar", Classifier: "sources"}
	require.NotEqual(t, a.Key(), b.Key())
}

func TestWithVersionDoesNotMutateReceiver(t *testing.T) {
	a := Coordinate{GroupID: "g", ArtifactID: "a", Version: "1.0"}
	b := a.WithVersion("2.0")
	require.Equal(t, "1.0", a.Version)
	require.Equal(t, "2.0", b.Version)
}

func TestWithLocalPath(t *testing.T) {
	a := Coordinate{GroupID: "g", ArtifactID: "a"}
	b := a.WithLocalPath("/opt/lib/a.jar")
	require.True(t, a.Properties.IsZero())
	require.Equal(t, "/opt/lib/a.jar", b.Properties.LocalPath)
}
