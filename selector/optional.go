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

// OptionalDependencySelector rejects optional dependencies once depth has
// reached applyFrom: an optional dependency may always be walked into at
// shallow depths (typically depth 0, the direct dependencies), but an
// optional transitive dependency below applyFrom is pruned.
type OptionalDependencySelector struct {
	applyFrom int
	depth     int
}

// NewOptionalDependencySelector constructs the root (depth 0) selector.
func NewOptionalDependencySelector(applyFrom int) *OptionalDependencySelector {
	return &OptionalDependencySelector{applyFrom: applyFrom}
}

func (s *OptionalDependencySelector) Select(dep *graph.Dependency) bool {
	return s.depth < s.applyFrom || !dep.IsOptional()
}

func (s *OptionalDependencySelector) DeriveChild(ctx Context) Selector {
	child := *s
	child.depth = s.depth + 1
	return &child
}
