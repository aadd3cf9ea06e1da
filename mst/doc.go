// Package mst implements C2: computing the minimum spanning tree of the
// mutual-reachability matrix produced by reachability.Compute.
//
// Build grows the tree from vertex 0 using Prim's algorithm with an
// explicit O(n^2) dense scan per iteration, for O(n^2) total time and O(n)
// extra memory beyond the input matrix. Ties among candidate vertices
// break toward the smallest index, so Build's output is fully
// deterministic for a given matrix — a property the hierarchy stage and
// the engine's own determinism tests both rely on.
package mst
