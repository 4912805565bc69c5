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

// Package resolve implements the conflict resolver: the end-to-end
// reduction of a collected, possibly cyclic and duplicate-laden
// dependency tree into a single resolved graph with one winning node per
// conflict group, a consistent derived scope and optional flag, and no
// cycles.
package resolve

import (
	"deps.dev/util/mvnresolve/scope"

	log "github.com/sirupsen/logrus"
)

// Verbosity controls how much of a conflict group's losing occurrences
// survive into the output graph.
type Verbosity int

const (
	// None removes every losing occurrence outright.
	None Verbosity = iota
	// Standard keeps at most one losing occurrence per distinct parent,
	// annotated with a pointer to the winner.
	Standard
	// Full keeps every original occurrence, annotated with a pointer to
	// the winner wherever it lost.
	Full
)

// Strategy names the built-in version-selection strategies.
type Strategy int

const (
	Nearest Strategy = iota
	Highest
)

// Config is the resolver's immutable configuration, built once per
// Resolve call.
type Config struct {
	VersionSelector Strategy
	ScopePriority   scope.PriorityStrategy
	ScopeDeriver    scope.Deriver
	Verbosity       Verbosity

	// SnapshotFilter controls whether a snapshot-qualified version may win
	// a conflict group. If true, snapshots are always ineligible. If
	// false, a snapshot is ineligible unless the root artifact's own
	// version is itself a snapshot, matching a release build's refusal to
	// pull in unreleased dependencies while a snapshot build tolerates
	// them.
	SnapshotFilter bool

	// Log receives structured progress events from the resolve pipeline.
	// A nil Log disables logging.
	Log *log.Entry
}

// DefaultConfig returns the conventional configuration: nearest-wins
// version selection, application scope priority, the default scope
// derivation table, no verbose annotation, and snapshot eligibility tied
// to whether the root artifact is itself a snapshot.
func DefaultConfig() Config {
	return Config{
		VersionSelector: Nearest,
		ScopePriority:   scope.Application,
		ScopeDeriver:    scope.DefaultDeriver{},
		Verbosity:       None,
		SnapshotFilter:  false,
	}
}

func (c Config) logger() *log.Entry {
	if c.Log != nil {
		return c.Log
	}
	return log.NewEntry(log.StandardLogger())
}
