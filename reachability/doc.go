// Package reachability implements C1 of the hdbscan pipeline.
//
// Compute(points, minSamples) produces the n×n mutual-reachability matrix:
//
//	M[i][j] = max(dist(i,j), core(i), core(j))
//
// where dist is true Euclidean distance and core(i) is the distance from
// point i to its k-th nearest neighbor, k = min(minSamples-1, n-2). The
// result is symmetric, nonnegative, and never smaller than the raw
// pairwise distance — mst.Build consumes it directly.
//
// Complexity: O(n^2 log n) time (an O(n log n) neighbor sort per point)
// and O(n^2) memory for the resulting Matrix, which mst.Build's dense
// O(n^2) Prim scan is sized to match; a sparse k-NN front end would need a
// different MST algorithm (Borůvka, or Prim with a heap) downstream.
package reachability
