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

import (
	"deps.dev/util/mvnresolve/artifact"
	"deps.dev/util/mvnresolve/graph"
	"deps.dev/util/mvnresolve/scope"
	"deps.dev/util/mvnresolve/transform"

	"github.com/hashicorp/go-multierror"
)

// dataKey is an unexported type for graph.Node.SetData keys, kept
// distinct from transform's own dataKey type so the two packages' node
// annotations never collide.
type dataKey string

const (
	// originalScopeKey records the winner's declared scope when
	// applyWinner overrides it with the group's selected scope. It is set
	// at every verbosity.
	originalScopeKey dataKey = "original-scope"
	// originalOptionalKey is originalScopeKey's counterpart for the
	// optional flag.
	originalOptionalKey dataKey = "original-optional"
	// winnerKey points a loser at the NodeID that won its conflict group.
	winnerKey dataKey = "winner"
)

// Resolve reduces g, in place, to satisfy the package's core invariants:
// one winning node per conflict group, a scope and optional flag derived
// consistently with cfg's ScopeDeriver and ScopePriority, and no cycles.
// g.Root is unchanged; g's Nodes arena is mutated, and node ids already
// held by the caller for nodes that survive remain valid.
//
// Resolve does not stop at the first UnsolvableVersionConflict. It keeps
// processing the remaining conflict groups and returns every failure it
// encountered, aggregated with go-multierror, so a caller can report
// every problem found in one pass.
func Resolve(g *graph.Graph, cfg Config) error {
	log := cfg.logger()

	transform.MarkConflictIDs(g, g.Root)
	order := transform.SortConflictIDs(g, g.Root)
	for _, id := range order.Cyclic {
		log.WithField("group", id.String()).Warn("conflict id participates in an id-level cycle; its processing order is unspecified")
	}

	ids := append(append([]artifact.Key{}, order.Sorted...), order.Cyclic...)

	rootVersion := g.Node(g.Root).Version
	rootIsSnapshot := rootVersion != nil && rootVersion.IsSnapshot()
	banSnapshots := cfg.SnapshotFilter || !rootIsSnapshot

	var agg *multierror.Error
	for _, id := range ids {
		occs := enumerateOccurrences(g, g.Root, id, cfg.ScopeDeriver)
		if len(occs) == 0 {
			continue
		}

		winner, err := selectVersion(g, id, occs, cfg.VersionSelector, banSnapshots)
		if err != nil {
			log.WithField("group", id.String()).WithError(err).Warn("unsolvable version conflict")
			agg = appendError(agg, err)
			continue
		}

		winnerScope := selectScope(cfg.ScopePriority, occs)
		winnerOptional := selectOptional(occs)
		log.WithFields(map[string]interface{}{
			"group":   id.String(),
			"version": g.Node(winner.node).Version.String(),
			"scope":   string(winnerScope),
		}).Debug("conflict group resolved")

		applyWinner(g, winner.node, winnerScope, winnerOptional)
		rewriteLosers(g, winner.node, occs, cfg.Verbosity)
	}

	breakCycles(g, g.Root)
	return agg.ErrorOrNil()
}

// applyWinner sets the winner's effective scope and optional flag, and
// marks it as the Winner of its conflict group. It records the node's
// pre-resolution values first so verbose rewriting can report what
// changed.
func applyWinner(g *graph.Graph, winner graph.NodeID, winnerScope scope.Id, winnerOptional bool) {
	n := g.Node(winner)
	n.AddManagedBits(graph.Winner)

	var declaredScope scope.Id
	var declaredOptional bool
	if n.Dependency != nil {
		declaredScope = n.Dependency.Scope
		declaredOptional = n.Dependency.IsOptional()
	}

	if declaredScope != winnerScope {
		n.SetData(originalScopeKey, declaredScope)
		n.SetScope(winnerScope)
		n.AddManagedBits(graph.ManagedScope)
	}
	if declaredOptional != winnerOptional {
		n.SetData(originalOptionalKey, declaredOptional)
		n.SetOptional(winnerOptional)
		n.AddManagedBits(graph.ManagedOptional)
	}
}

// rewriteLosers removes or annotates every non-winning occurrence's node
// per verbosity:
//
//   - None: every loser is dropped from its parent's Children.
//   - Standard: at most one loser per distinct parent survives, tagged
//     with winnerKey; any additional losers sharing that same parent are
//     dropped.
//   - Full: every loser survives, each tagged with winnerKey.
func rewriteLosers(g *graph.Graph, winner graph.NodeID, occs []occurrence, verbosity Verbosity) {
	keptForParent := map[graph.NodeID]bool{}
	for _, o := range occs {
		if o.node == winner {
			continue
		}
		switch verbosity {
		case None:
			removeChild(g, o.parent, o.node)
		case Standard:
			if keptForParent[o.parent] {
				removeChild(g, o.parent, o.node)
				continue
			}
			keptForParent[o.parent] = true
			tagLoser(g, o.node, winner)
		case Full:
			tagLoser(g, o.node, winner)
		}
	}
}

func tagLoser(g *graph.Graph, loser, winner graph.NodeID) {
	g.Node(loser).SetData(winnerKey, winner)
}

// removeChild deletes child from parent's Children slice, if present.
func removeChild(g *graph.Graph, parent, child graph.NodeID) {
	if parent == graph.InvalidNodeID {
		return
	}
	n := g.Node(parent)
	out := n.Children[:0:0]
	for _, c := range n.Children {
		if c != child {
			out = append(out, c)
		}
	}
	n.Children = out
}
