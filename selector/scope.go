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
	"math"

	"deps.dev/util/mvnresolve/graph"
	"deps.dev/util/mvnresolve/scope"
)

// Infinite is the sentinel applyTo value meaning "no upper depth bound".
const Infinite = math.MaxInt

// scopeSet is an immutable, comparable (by pointer identity) set of scope
// ids. Constructing one with NewScopeSet and sharing the resulting
// pointer across every derived selector keeps ScopeDependencySelector
// itself a plain comparable struct, satisfying the requirement that
// selector equality/hashing work via ordinary Go equality.
type scopeSet struct {
	m map[scope.Id]bool
}

// NewScopeSet returns a set containing ids. A nil *scopeSet (as returned
// by a nil ids slice) means "unset": every scope is a member.
func NewScopeSet(ids ...scope.Id) *scopeSet {
	if len(ids) == 0 {
		return nil
	}
	s := &scopeSet{m: make(map[scope.Id]bool, len(ids))}
	for _, id := range ids {
		s.m[id] = true
	}
	return s
}

// contains reports plain set membership; a nil set contains nothing.
// Callers decide what a nil set means (unrestricted vs. empty) at the
// call site, since "included" and "excluded" treat nil oppositely.
func (s *scopeSet) contains(id scope.Id) bool {
	if s == nil {
		return false
	}
	return s.m[id]
}

// ScopeDependencySelector implements the §4.F scope selector: a
// dependency is rejected only when the current depth falls within
// [applyFrom, applyTo] and its scope fails the included/excluded test.
type ScopeDependencySelector struct {
	applyFrom       int
	applyTo         int
	included        *scopeSet
	excluded        *scopeSet
	shiftIfRootNull bool
	depth           int
}

// NewScopeDependencySelector constructs the root (depth 0) selector for
// the given configuration. A nil included or excluded scopeSet (from
// NewScopeSet with no ids) means "no restriction" on that side.
func NewScopeDependencySelector(applyFrom, applyTo int, included, excluded *scopeSet, shiftIfRootNull bool) *ScopeDependencySelector {
	return &ScopeDependencySelector{
		applyFrom:       applyFrom,
		applyTo:         applyTo,
		included:        included,
		excluded:        excluded,
		shiftIfRootNull: shiftIfRootNull,
	}
}

// Legacy returns the selector configured exactly as Maven's legacy scope
// filter: shiftIfRootNull=true, applyFrom=1, applyTo=Infinite.
func Legacy(included, excluded *scopeSet) *ScopeDependencySelector {
	return NewScopeDependencySelector(1, Infinite, included, excluded, true)
}

func (s *ScopeDependencySelector) Select(dep *graph.Dependency) bool {
	if s.depth < s.applyFrom || s.depth > s.applyTo {
		return true
	}
	if dep == nil {
		return true
	}
	includedOK := s.included == nil || s.included.contains(dep.Scope)
	excludedOK := s.excluded == nil || !s.excluded.contains(dep.Scope)
	return includedOK && excludedOK
}

func (s *ScopeDependencySelector) DeriveChild(ctx Context) Selector {
	child := *s
	child.depth = s.depth + 1
	if s.depth == 0 && s.shiftIfRootNull && ctx.Dependency == nil {
		child.applyFrom = s.applyFrom + 1
	}
	return &child
}
