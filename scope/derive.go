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

// deriveTable implements the parent/child scope derivation table. System
// scope is preserved unconditionally regardless of parent, since it is
// tied to a local path rather than a repository coordinate.
var deriveTable = map[Id]map[Id]Id{
	Compile:  {Compile: Compile, Runtime: Runtime, Provided: Provided, Test: Test},
	Runtime:  {Compile: Runtime, Runtime: Runtime, Provided: Provided, Test: Test},
	Provided: {Compile: Provided, Runtime: Provided, Provided: Provided, Test: Test},
	Test:     {Compile: Test, Runtime: Test, Provided: Test, Test: Test},
}

// Deriver computes a path's derived scope from a parent's already-derived
// scope and a child's declared scope.
type Deriver interface {
	Derive(parentDerived, childDeclared Id) Id
}

// DefaultDeriver implements the §4.R.3 table: system dominates
// unconditionally, and otherwise the parent/child pair is looked up in the
// fixed table, falling back to the child's own declared scope for any
// scope the table does not know about (so custom scope ids degrade to
// "use what was declared" rather than silently becoming empty).
type DefaultDeriver struct{}

func (DefaultDeriver) Derive(parentDerived, childDeclared Id) Id {
	if childDeclared == System {
		return System
	}
	if row, ok := deriveTable[parentDerived]; ok {
		if s, ok := row[childDeclared]; ok {
			return s
		}
	}
	return childDeclared
}
