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

package scope

// PriorityStrategy names one of the two built-in scope-priority orderings
// used when a conflict group's paths derive to different scopes and a
// single scope must be picked for the winner.
type PriorityStrategy string

const (
	Application PriorityStrategy = "application"
	TestFirst   PriorityStrategy = "test"
)

// applicationPriority ranks test lowest: a production build prefers the
// widest-reaching scope a dependency is used with.
var applicationPriority = map[Id]int{
	Test:     0,
	Runtime:  1,
	Provided: 2,
	Compile:  3,
	System:   4,
}

// testPriority ranks test highest: a test-focused build treats the
// presence of any test usage as dominant.
var testPriority = map[Id]int{
	Runtime:  0,
	Provided: 1,
	Compile:  2,
	Test:     3,
	System:   4,
}

// Priority returns the relative priority of scope s under strategy:
// higher wins. Unknown scopes rank below every known one.
func Priority(strategy PriorityStrategy, s Id) int {
	table := applicationPriority
	if strategy == TestFirst {
		table = testPriority
	}
	if p, ok := table[s]; ok {
		return p
	}
	return -1
}

// Highest returns the scope among scopes with the highest Priority under
// strategy. scopes must be non-empty.
func Highest(strategy PriorityStrategy, scopes []Id) Id {
	best := scopes[0]
	bestP := Priority(strategy, best)
	for _, s := range scopes[1:] {
		if p := Priority(strategy, s); p > bestP {
			best, bestP = s, p
		}
	}
	return best
}
