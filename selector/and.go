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

import "deps.dev/util/mvnresolve/graph"

// AndSelector composes several Selectors, descending into a dependency
// only when every one of them would. Maven runs its scope, optional, and
// exclusion selectors together this way rather than picking just one.
type AndSelector struct {
	selectors []Selector
}

// AndSelectors returns a Selector accepting a dependency only if every one
// of selectors does. AndSelectors of zero selectors accepts everything.
func AndSelectors(selectors ...Selector) Selector {
	return AndSelector{selectors: selectors}
}

func (a AndSelector) Select(dep *graph.Dependency) bool {
	for _, s := range a.selectors {
		if !s.Select(dep) {
			return false
		}
	}
	return true
}

func (a AndSelector) DeriveChild(ctx Context) Selector {
	children := make([]Selector, len(a.selectors))
	for i, s := range a.selectors {
		children[i] = s.DeriveChild(ctx)
	}
	return AndSelector{selectors: children}
}
