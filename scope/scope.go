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

// Package scope defines dependency scopes, the scope-manager collaborator
// the resolver consults for system-scope and transitivity questions, and
// the scope derivation/selection tables used during conflict resolution.
package scope

// Id is a dependency scope name. The core treats scopes as opaque strings
// except for the five well-known ones below and whatever a ScopeManager
// reports as the system scope.
type Id string

const (
	Compile  Id = "compile"
	Runtime  Id = "runtime"
	Provided Id = "provided"
	Test     Id = "test"
	System   Id = "system"
)

// Manager is the external collaborator supplying scope semantics the core
// cannot assume: which scope is tied to a local filesystem path, and
// whether a given scope propagates to transitive dependencies.
type Manager interface {
	// SystemScope returns the scope id meaning "resolved from a local
	// path, not a repository".
	SystemScope() Id
	// IsTransitive reports whether a dependency declared with scope s
	// should be walked into when collecting its own dependencies.
	IsTransitive(s Id) bool
}

// manager is the default Manager: the five well-known Maven scopes, with
// provided, test and system non-transitive.
type manager struct{}

// Default is the built-in ScopeManager implementing the classic Maven
// scope set: compile and runtime are transitive; provided, test and
// system are not.
var Default Manager = manager{}

func (manager) SystemScope() Id { return System }

func (manager) IsTransitive(s Id) bool {
	switch s {
	case Compile, Runtime:
		return true
	default:
		return false
	}
}
