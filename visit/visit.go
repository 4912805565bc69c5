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

// Package visit provides deduplicated pre/post-order traversals over a
// resolved graph.Graph, built on top of graph.Walk's raw, non-deduplicating
// protocol.
package visit

import "deps.dev/util/mvnresolve/graph"

// dedup wraps a plain node callback with the bookkeeping graph.Walk itself
// leaves out: visiting each node at most once even when multiple parents
// still point at it, and recording pre/post order. Setting stop to true
// from within pre halts the traversal at the next opportunity.
type dedup struct {
	pre, post func(graph.NodeID)
	seen      map[graph.NodeID]bool
	left      map[graph.NodeID]bool
	stop      bool
}

func (d *dedup) VisitEnter(g *graph.Graph, id graph.NodeID) bool {
	if d.stop || d.seen[id] {
		return false
	}
	d.seen[id] = true
	if d.pre != nil {
		d.pre(id)
	}
	return !d.stop
}

// VisitLeave fires once per id even though graph.Walk calls it on every
// recursive visit, including ones VisitEnter skipped as already-seen: a
// diamond's shared node is "left" only the first time, right after the
// subtree that actually descended into it finishes.
func (d *dedup) VisitLeave(g *graph.Graph, id graph.NodeID) bool {
	if d.left == nil {
		d.left = map[graph.NodeID]bool{}
	}
	if !d.left[id] {
		d.left[id] = true
		if d.post != nil {
			d.post(id)
		}
	}
	return !d.stop
}

// PreOrder returns every node reachable from root exactly once, in
// pre-order: a node appears before its children, and before any sibling
// subtree reached after it.
func PreOrder(g *graph.Graph, root graph.NodeID) []graph.NodeID {
	var order []graph.NodeID
	d := &dedup{seen: map[graph.NodeID]bool{}, pre: func(id graph.NodeID) {
		order = append(order, id)
	}}
	graph.Walk(g, root, d)
	return order
}

// PostOrder returns every node reachable from root exactly once, in
// post-order: a node appears only after every node in its (deduplicated)
// subtree that this walk actually descended into.
func PostOrder(g *graph.Graph, root graph.NodeID) []graph.NodeID {
	var order []graph.NodeID
	d := &dedup{seen: map[graph.NodeID]bool{}, post: func(id graph.NodeID) {
		order = append(order, id)
	}}
	graph.Walk(g, root, d)
	return order
}

// Each calls fn once per node reachable from root, in pre-order, stopping
// early if fn returns false.
func Each(g *graph.Graph, root graph.NodeID, fn func(graph.NodeID) bool) {
	d := &dedup{seen: map[graph.NodeID]bool{}}
	d.pre = func(id graph.NodeID) {
		if !fn(id) {
			d.stop = true
		}
	}
	graph.Walk(g, root, d)
}
