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

// Package selector implements the dependency selectors and composite
// filters the collector consults while walking declared dependencies.
// Every selector is an immutable value: deriving a child selector returns
// a new instance rather than mutating the receiver, so selectors can be
// shared freely across collector goroutines.
package selector

import "deps.dev/util/mvnresolve/graph"

// Context is what a selector needs to know about the node being
// descended into in order to derive its child selector: principally
// whether that node carries a declared Dependency at all (the root of a
// bare-POM resolution does not).
type Context struct {
	Dependency *graph.Dependency
}

// Selector decides whether to walk into a declared dependency, and how to
// derive the selector instance used one level deeper. Implementations
// must be comparable (safe to use as, or build, a map key) so that
// recursion-tracking data structures can use a Selector as a visited-set
// member alongside a node identity.
type Selector interface {
	// Select reports whether dep should be walked into.
	Select(dep *graph.Dependency) bool
	// DeriveChild returns the Selector to use for dep's own declared
	// dependencies, given ctx describing dep's node.
	DeriveChild(ctx Context) Selector
}
