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

// selectOptional picks the winner's optional flag: it is non-optional if
// any occurrence in the group reaches it along a non-optional path, since
// a single mandatory route to an artifact means the build genuinely needs
// it regardless of how many optional routes also lead there.
func selectOptional(occs []occurrence) bool {
	for _, o := range occs {
		if !o.derivedOptional {
			return false
		}
	}
	return true
}
