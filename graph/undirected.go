// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package graph

// UndirectedGraph composes a DirectedGraph, writing both directions on
// Connect, rather than inheriting its storage and overriding one method —
// the two graphs share a node/edge representation but have genuinely
// different connection semantics, and composition keeps that explicit.
type UndirectedGraph[T comparable] struct {
	*DirectedGraph[T]
}

// NewUndirected returns an empty undirected graph.
func NewUndirected[T comparable]() *UndirectedGraph[T] {
	return &UndirectedGraph[T]{DirectedGraph: NewDirected[T]()}
}

// Connect adds the edge u-v in both directions.
func (g *UndirectedGraph[T]) Connect(u, v T) {
	g.DirectedGraph.Connect(u, v)
	g.DirectedGraph.Connect(v, u)
}

// Degree returns the number of neighbors of v.
func (g *UndirectedGraph[T]) Degree(v T) int {
	return len(g.Successors(v))
}

// IndependentSet returns a set of nodes with degree <= k, pairwise
// non-adjacent, excluding avoid. It greedily picks a candidate, adds it to
// the result, and removes it and its neighbors from further
// consideration, repeating until no eligible candidate remains.
//
// For Kirkpatrick's hierarchy k defaults to 8: a planar-graph theorem
// guarantees a constant fraction of vertices has degree <= 8 in any planar
// triangulation, which bounds the hierarchy's depth at O(log n). avoid
// must contain the three vertices of the outer bounding triangle so the
// frame is never peeled.
func (g *UndirectedGraph[T]) IndependentSet(k int, avoid map[T]struct{}) []T {
	g.mu.RLock()
	candidates := make(map[T]struct{})
	for v, nbrs := range g.edges {
		if len(nbrs) <= k {
			candidates[v] = struct{}{}
		}
	}
	g.mu.RUnlock()

	for v := range avoid {
		delete(candidates, v)
	}

	var result []T
	for len(candidates) > 0 {
		var v T
		for cand := range candidates {
			v = cand
			break
		}
		result = append(result, v)
		delete(candidates, v)
		for _, nbr := range g.Successors(v) {
			delete(candidates, nbr)
		}
	}
	return result
}
