// Package core is the shared model underneath the hdbscan pipeline.
//
// What lives here:
//
//	Edge      — a weighted, undirected (u, v, w) triple produced by mst.Build
//	Cluster   — a node of the single-linkage hierarchy, arena-allocated
//	Tree      — the flat arena that owns every Cluster
//	UnionFind — disjoint-set helper used by hierarchy.Build to split clusters
//
// Why an arena instead of parent-pointer trees: every Cluster is created
// once, during hierarchy.Build, and never mutated structurally afterward
// (extract.Walk only ever touches Stability). A flat, append-only slice of
// pointers makes the whole tree trivially walkable and serializable without
// any cyclic ownership to reason about.
//
// core intentionally carries no mutex: the pipeline that builds and reads
// a Tree is single-threaded and synchronous end to end (a Tree is built
// and read inside a single Fit call), so a lock here would guard against a
// hazard that cannot occur.
package core
