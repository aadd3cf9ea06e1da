// Package extract implements C5: the stability-based selection walk that
// turns a condensed hierarchy into a flat clustering.
//
// Selection starts at the root and works down. At each cluster it compares
// that cluster's own stability against the summed stability of its
// qualifying children: if the cluster wins (strictly — an exact tie is
// resolved in favor of recursing into the children, not keeping the
// parent) or it has no qualifying children left, the cluster is selected
// and its subtree is abandoned; otherwise the walk continues into each
// child independently. This is the well-known HDBSCAN* excess-of-mass
// rule, applied here against hierarchy.Build's own Left/Right pointers
// instead of a re-derived parent/child relation.
//
// Every cluster visited during the walk has its Stability field
// overwritten with the value the formula computes here — this is the
// pipeline's single source of truth for stability, independent of
// whatever hierarchy.Build set on persisting or dying clusters while
// constructing the tree.
package extract
