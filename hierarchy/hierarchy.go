// Package hierarchy implements C3 of the hdbscan pipeline: turning the
// minimum spanning tree into a rooted binary tree of clusters by cutting
// MST edges in descending weight order, one at a time.
package hierarchy

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/hdbscan/core"
)

// ErrEmptyInput indicates Build was called with n <= 0.
var ErrEmptyInput = errors.New("hierarchy: n must be > 0")

// Build consumes the n-1 MST edges produced by mst.Build and returns the
// arena holding every cluster created while cutting them in descending
// weight order, per spec.md §4.3.
//
// Every point starts out owned by the root cluster (id 0, members
// {0,...,n-1}). Build tracks, for each point, which cluster owns it (the
// leaf it was last assigned to, or, for a point that fell out of a
// persisting cluster, that now non-leaf cluster); an O(1) owner lookup
// replaces the "search the
// hierarchy list from newest to oldest" scan spec.md describes, since
// both give the same answer (the smallest cluster currently containing a
// point is exactly the cluster it's most recently been assigned to).
func Build(edges []core.Edge, n int, minClusterSize int) (*core.Tree, error) {
	if n <= 0 {
		return nil, ErrEmptyInput
	}

	adj := buildAdjacency(edges, n)

	e := make([]core.Edge, len(edges))
	copy(e, edges)
	sort.SliceStable(e, func(i, j int) bool { return e[i].W > e[j].W })

	tree := &core.Tree{}
	owner := make([]*core.Cluster, n)

	root := tree.NewCluster()
	root.Members = make([]int, n)
	for i := range root.Members {
		root.Members[i] = i
		owner[i] = root
	}
	if len(e) > 0 {
		root.BirthDistance = e[0].W
	}
	populateEps(root, adj)

	uf := core.NewUnionFind(n)

	for i, edge := range e {
		parent := owner[edge.U]
		if parent == nil || owner[edge.V] == nil {
			return nil, fmt.Errorf("hierarchy: edge (%d,%d) has no owning cluster: %w", edge.U, edge.V, core.ErrInvariantViolation)
		}
		if owner[edge.V] != parent {
			return nil, fmt.Errorf("hierarchy: edge (%d,%d) endpoints split across clusters %d/%d: %w",
				edge.U, edge.V, parent.ID, owner[edge.V].ID, core.ErrInvariantViolation)
		}
		if !parent.IsLeaf() {
			// Already handled transitively by an earlier, heavier edge.
			continue
		}

		active := activeMembers(parent, owner)
		if len(active) < 2 {
			continue
		}

		comps, err := split(parent, active, e[i+1:], owner, uf)
		if err != nil {
			return nil, err
		}
		a, b := comps[0], comps[1]

		aBig := len(a) >= minClusterSize
		bBig := len(b) >= minClusterSize

		switch {
		case aBig && bBig:
			left := newChild(tree, adj, a, edge.W)
			right := newChild(tree, adj, b, edge.W)
			parent.Left, parent.Right = left, right
			assignOwner(owner, a, left)
			assignOwner(owner, b, right)

		case aBig != bBig:
			survivor := a
			if bBig {
				survivor = b
			}
			// The continuing lineage keeps every point parent ever
			// accumulated, not just the surviving side: a sub-floor
			// component hasn't earned its own cluster, but its points
			// are still part of this cluster's identity until some
			// later, genuine split separates them for good. Only the
			// survivor's ownership moves forward, though — the fallen
			// side stays pinned to parent (now a non-leaf), which is
			// exactly what keeps it out of every later split's active set.
			child := newChild(tree, adj, parent.Members, edge.W)
			parent.Left = child
			parent.Stability = 0
			assignOwner(owner, survivor, child)

		default:
			left := newChild(tree, adj, a, edge.W)
			right := newChild(tree, adj, b, edge.W)
			parent.Left, parent.Right = left, right
			parent.Stability = 0
			assignOwner(owner, a, left)
			assignOwner(owner, b, right)
		}
	}

	return tree, nil
}

// activeMembers returns the subset of c.Members still actually owned by c —
// for a persisting cluster, c.Members is the full lineage it inherited, but
// only the points nobody has peeled off yet are eligible for further
// splitting.
func activeMembers(c *core.Cluster, owner []*core.Cluster) []int {
	active := make([]int, 0, len(c.Members))
	for _, p := range c.Members {
		if owner[p] == c {
			active = append(active, p)
		}
	}

	return active
}

// split partitions parent's active members into the (exactly two, by the
// tree property of removing one internal edge) connected components left
// behind once edge e and every heavier edge are gone, using a disjoint set
// built only from the remaining, lighter edges whose endpoints both still
// belong to parent.
func split(parent *core.Cluster, active []int, remaining []core.Edge, owner []*core.Cluster, uf *core.UnionFind) ([][]int, error) {
	uf.Reset()
	for _, e2 := range remaining {
		if owner[e2.U] == parent && owner[e2.V] == parent {
			uf.Union(e2.U, e2.V)
		}
	}

	groups := make(map[int][]int, 2)
	for _, p := range active {
		r := uf.Find(p)
		groups[r] = append(groups[r], p)
	}
	if len(groups) != 2 {
		return nil, fmt.Errorf("hierarchy: splitting cluster %d produced %d components (want 2): %w",
			parent.ID, len(groups), core.ErrInvariantViolation)
	}

	comps := make([][]int, 0, 2)
	for _, g := range groups {
		comps = append(comps, g)
	}
	sort.Slice(comps, func(i, j int) bool { return min(comps[i]) < min(comps[j]) })

	return comps, nil
}

func min(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}

	return m
}

func assignOwner(owner []*core.Cluster, members []int, c *core.Cluster) {
	for _, p := range members {
		owner[p] = c
	}
}

func newChild(tree *core.Tree, adj [][]core.Edge, members []int, birth float64) *core.Cluster {
	c := tree.NewCluster()
	c.Members = members
	c.BirthDistance = birth
	populateEps(c, adj)

	return c
}

// buildAdjacency indexes every MST edge by both of its endpoints so
// populateEps can look up a point's incident edges in O(degree).
func buildAdjacency(edges []core.Edge, n int) [][]core.Edge {
	adj := make([][]core.Edge, n)
	for _, e := range edges {
		adj[e.U] = append(adj[e.U], e)
		adj[e.V] = append(adj[e.V], e)
	}

	return adj
}

// populateEps computes MinReach for every member of c and derives
// LeaveEdgeWeight (ε_min) as the largest of them, per spec.md §4.3's
// "per-cluster ε computation (performed in createCluster)".
func populateEps(c *core.Cluster, adj [][]core.Edge) {
	inCluster := make(map[int]bool, len(c.Members))
	for _, p := range c.Members {
		inCluster[p] = true
	}

	c.MinReach = make(map[int]float64, len(c.Members))
	var maxMin float64
	for _, p := range c.Members {
		best := math.Inf(1)
		for _, e := range adj[p] {
			other := e.U
			if other == p {
				other = e.V
			}
			if inCluster[other] && e.W < best {
				best = e.W
			}
		}
		if math.IsInf(best, 1) {
			best = 0
		}
		c.MinReach[p] = best
		if best > maxMin {
			maxMin = best
		}
	}
	c.LeaveEdgeWeight = maxMin
}
