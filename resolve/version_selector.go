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
	"sort"

	"deps.dev/util/mvnresolve/artifact"
	"deps.dev/util/mvnresolve/graph"
)

// hardConstraints collects every occurrence's hard (bracketed)
// VersionConstraint; soft, preference-only constraints place no
// restriction on the winner and are ignored here.
func hardConstraints(g *graph.Graph, occs []occurrence) []*graph.Node {
	var nodes []*graph.Node
	for _, o := range occs {
		n := g.Node(o.node)
		if n.VersionConstraint != nil && !n.VersionConstraint.IsSoft() {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// satisfiesAll reports whether every hard constraint in constrained
// contains v, and, when banSnapshots is set, that v is not itself a
// snapshot version.
func satisfiesAll(v *graph.Node, constrained []*graph.Node, banSnapshots bool) bool {
	if v.Version == nil {
		return false
	}
	if banSnapshots && v.Version.IsSnapshot() {
		return false
	}
	for _, c := range constrained {
		if !c.VersionConstraint.Contains(v.Version) {
			return false
		}
	}
	return true
}

// selectVersion picks the winning occurrence for a conflict group per cfg's
// Strategy, or returns an UnsolvableVersionConflict if no occurrence's
// version satisfies the intersection of every hard constraint contributed
// by the group. banSnapshots additionally excludes snapshot-qualified
// versions from candidacy, per Config.SnapshotFilter.
func selectVersion(g *graph.Graph, id artifact.Key, occs []occurrence, strategy Strategy, banSnapshots bool) (occurrence, error) {
	constrained := hardConstraints(g, occs)

	switch strategy {
	case Highest:
		best := -1
		for i, o := range occs {
			n := g.Node(o.node)
			if !satisfiesAll(n, constrained, banSnapshots) {
				continue
			}
			if best == -1 || n.Version.Compare(g.Node(occs[best].node).Version) > 0 {
				best = i
			}
		}
		if best == -1 {
			return occurrence{}, &UnsolvableVersionConflict{Group: id, Candidates: candidateStrings(g, occs)}
		}
		return occs[best], nil

	default: // Nearest
		ordered := append([]occurrence{}, occs...)
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].depth != ordered[j].depth {
				return ordered[i].depth < ordered[j].depth
			}
			return ordered[i].seq < ordered[j].seq
		})
		for _, o := range ordered {
			n := g.Node(o.node)
			if satisfiesAll(n, constrained, banSnapshots) {
				return o, nil
			}
		}
		return occurrence{}, &UnsolvableVersionConflict{Group: id, Candidates: candidateStrings(g, occs)}
	}
}

func candidateStrings(g *graph.Graph, occs []occurrence) []string {
	var out []string
	seen := map[string]bool{}
	for _, o := range occs {
		n := g.Node(o.node)
		if n.Version == nil {
			continue
		}
		s := n.Version.String()
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
