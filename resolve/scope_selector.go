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

import "deps.dev/util/mvnresolve/scope"

// selectScope picks the single scope to give the winner of a conflict
// group. A direct (depth-1) occurrence's own declared scope dominates,
// since a project's own explicit direct dependency always overrides
// whatever a transitive path would otherwise have derived; absent a
// direct occurrence, the highest-priority scope among every path's
// derived scope wins.
func selectScope(strategy scope.PriorityStrategy, occs []occurrence) scope.Id {
	for _, o := range occs {
		if o.depth == 1 {
			return o.derivedScope
		}
	}
	scopes := make([]scope.Id, len(occs))
	for i, o := range occs {
		scopes[i] = o.derivedScope
	}
	return scope.Highest(strategy, scopes)
}
