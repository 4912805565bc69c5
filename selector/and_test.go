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

	"github.com/stretchr/testify/require"
)

func TestAndSelectorsRequiresAll(t *testing.T) {
	scopeSel := NewScopeDependencySelector(0, Infinite, NewScopeSet(), nil, false)
	optSel := NewOptionalDependencySelector(1)
	combined := AndSelectors(scopeSel, optSel)

	require.True(t, combined.Select(optionalDep(true))) // depth 0, optional selector not yet active.

	child := combined.DeriveChild(Context{})
	require.False(t, child.Select(optionalDep(true)))
	require.True(t, child.Select(optionalDep(false)))
}

func TestAndSelectorsEmptyAcceptsEverything(t *testing.T) {
	require.True(t, AndSelectors().Select(nil))
}
