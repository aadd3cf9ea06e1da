// Package mst implements C2 of the hdbscan pipeline: building the minimum
// spanning tree of the mutual-reachability matrix with Prim's algorithm,
// using the same dense O(n^2) scan that reachability.Compute already pays
// for — a priority queue would only add overhead on top of O(n^2) storage
// we already have to touch once per iteration.
package mst

import (
	"errors"

	"github.com/katalvlaran/hdbscan/core"
	"github.com/katalvlaran/hdbscan/reachability"
)

// ErrTooFewPoints indicates Build was called with fewer than 2 points —
// there is no spanning tree to build.
var ErrTooFewPoints = errors.New("mst: need at least 2 points")

// Build computes the n-1 edges of the minimum spanning tree of m using
// Prim's algorithm, growing from vertex 0. Ties among unvisited vertices
// with equal best_weight break toward the smallest index, which is what
// makes the output deterministic and therefore testable.
//
// Edges are returned in the order Prim discovered them; hierarchy.Build
// resorts them by descending weight before use.
func Build(m *reachability.Matrix) ([]core.Edge, error) {
	n := m.N()
	if n < 2 {
		return nil, ErrTooFewPoints
	}

	visited := make([]bool, n)
	bestWeight := make([]float64, n)
	bestFrom := make([]int, n)
	for v := 1; v < n; v++ {
		bestWeight[v] = m.At(0, v)
		bestFrom[v] = 0
	}
	visited[0] = true

	edges := make([]core.Edge, 0, n-1)
	for k := 0; k < n-1; k++ {
		// Pick the unvisited vertex with smallest bestWeight, breaking
		// ties toward the smallest index.
		next := -1
		for v := 0; v < n; v++ {
			if visited[v] {
				continue
			}
			if next == -1 || bestWeight[v] < bestWeight[next] {
				next = v
			}
		}

		edges = append(edges, core.Edge{U: bestFrom[next], V: next, W: bestWeight[next]})
		visited[next] = true

		// Relax every remaining unvisited vertex against the row for
		// the vertex just admitted.
		for v := 0; v < n; v++ {
			if visited[v] {
				continue
			}
			w := m.At(next, v)
			if w < bestWeight[v] {
				bestWeight[v] = w
				bestFrom[v] = next
			}
		}
	}

	return edges, nil
}
