// Package condense implements C4 of the hdbscan pipeline: filtering the
// flat hierarchy produced by hierarchy.Build down to the clusters that
// meet the minimum-size floor.
package condense

import "github.com/katalvlaran/hdbscan/core"

// Filter returns the subset of tree.Nodes whose member count is at least
// minClusterSize, preserving creation order so the root stays first
// whenever it qualifies (it always does unless n < minClusterSize).
func Filter(tree *core.Tree, minClusterSize int) []*core.Cluster {
	out := make([]*core.Cluster, 0, len(tree.Nodes))
	for _, c := range tree.Nodes {
		if c.Size() >= minClusterSize {
			out = append(out, c)
		}
	}

	return out
}
