// Package extract implements C5 of the hdbscan pipeline: walking the
// condensed hierarchy top-down to pick the stability-optimal frontier of
// flat clusters, then turning that selection into per-point labels and
// membership probabilities.
package extract

import "github.com/katalvlaran/hdbscan/core"

// Walk selects flat clusters from tree and returns a label and a
// probability for each of the n points. Labels run 0..K-1 in the order
// clusters were selected; unselected points get label -1 and probability
// 0. selected is returned for callers that want to inspect the winning
// clusters directly.
//
// skipRoot mirrors the skip_root_cluster option (default true per
// spec.md §6): when set, the root's stability is forced to 0 regardless
// of what the formula would compute, so the root never wins a stability
// comparison against its children. A root with no qualifying children is
// still selected, as any such cluster is.
//
// Per the design notes, this walks core.Cluster's Left/Right pointers
// directly with an explicit stack rather than re-deriving "children" from
// a subset/birth_distance scan over a flat condensed list — the two are
// equivalent here because every cluster hierarchy.Build creates in its
// "big enough" branches already has Size() >= minClusterSize by
// construction, so filtering Left/Right by size reproduces exactly the
// condensed children spec.md §4.5 describes.
func Walk(n int, tree *core.Tree, minClusterSize int, skipRoot bool) (labels []int, probs []float64, selected []*core.Cluster) {
	labels = make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	probs = make([]float64, n)

	root := tree.Root()
	if root == nil || root.Size() < minClusterSize {
		return labels, probs, nil
	}

	for _, c := range walkStack(root, minClusterSize, skipRoot) {
		selected = append(selected, c)
	}

	for label, c := range selected {
		for _, p := range c.Members {
			labels[p] = label
			probs[p] = probability(c, p)
		}
	}

	return labels, probs, selected
}

// walkStack performs the selection walk with an explicit stack instead of
// native recursion, so extraction over a deep hierarchy can't exhaust the
// call stack.
func walkStack(root *core.Cluster, minClusterSize int, skipRoot bool) []*core.Cluster {
	var selected []*core.Cluster
	stack := []*core.Cluster{root}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children := qualifyingChildren(current, minClusterSize)

		var childSum float64
		for _, ch := range children {
			ch.Stability = stabilityOf(ch)
			childSum += ch.Stability
		}

		var curStability float64
		if !(skipRoot && current == root) {
			curStability = stabilityOf(current)
		}
		current.Stability = curStability

		// Select current when it beats the sum of its children's
		// stability, or when no child could carry the split forward.
		// Ties go to the children (recurse), not the parent.
		if len(children) == 0 || curStability > childSum {
			selected = append(selected, current)
			continue
		}

		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return selected
}

// qualifyingChildren returns current's direct children that individually
// meet the minimum-size floor — the condensed-hierarchy children spec.md
// §4.5 describes, reached here via the tree's own Left/Right pointers.
func qualifyingChildren(c *core.Cluster, minClusterSize int) []*core.Cluster {
	var out []*core.Cluster
	if c.Left != nil && c.Left.Size() >= minClusterSize {
		out = append(out, c.Left)
	}
	if c.Right != nil && c.Right.Size() >= minClusterSize {
		out = append(out, c.Right)
	}

	return out
}

// stabilityOf computes S(C) = |members| * (1/ε_min - 1/ε_max). A
// degenerate ε_min or ε_max of 0 contributes zero stability rather than
// dividing by zero.
func stabilityOf(c *core.Cluster) float64 {
	if c.LeaveEdgeWeight <= 0 || c.BirthDistance <= 0 {
		return 0
	}

	return float64(c.Size()) * (1/c.LeaveEdgeWeight - 1/c.BirthDistance)
}

// probability returns 1 - min_reach_C(p)/ε_max(C), clamped to [0, 1]. A
// cluster born at distance 0 (every member identical) is fully
// characteristic of its points, so it reports probability 1 rather than
// dividing by zero.
func probability(c *core.Cluster, p int) float64 {
	if c.BirthDistance <= 0 {
		return 1
	}

	prob := 1 - c.MinReach[p]/c.BirthDistance
	switch {
	case prob < 0:
		return 0
	case prob > 1:
		return 1
	default:
		return prob
	}
}
