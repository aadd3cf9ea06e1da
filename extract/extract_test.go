package extract_test

import (
	"testing"

	"github.com/katalvlaran/hdbscan/core"
	"github.com/katalvlaran/hdbscan/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk_ChildrenWinSelectsBothLeaves(t *testing.T) {
	tree := &core.Tree{}
	root := tree.NewCluster()
	root.Members = []int{0, 1, 2, 3}
	root.BirthDistance = 10
	root.LeaveEdgeWeight = 2 // stability 4*(0.5-0.1) = 1.6

	left := tree.NewCluster()
	left.Members = []int{0, 1}
	left.BirthDistance = 10
	left.LeaveEdgeWeight = 1 // stability 2*(1-0.1) = 1.8
	left.MinReach = map[int]float64{0: 1, 1: 4}

	right := tree.NewCluster()
	right.Members = []int{2, 3}
	right.BirthDistance = 10
	right.LeaveEdgeWeight = 5 // stability 2*(0.2-0.1) = 0.2
	right.MinReach = map[int]float64{2: 0, 3: 5}

	root.Left, root.Right = left, right

	labels, probs, selected := extract.Walk(4, tree, 2, true)
	require.Len(t, selected, 2)
	assert.Same(t, left, selected[0])
	assert.Same(t, right, selected[1])

	assert.Equal(t, []int{0, 0, 1, 1}, labels)
	// left member 0: 1 - 1/10 = 0.9
	assert.InDelta(t, 0.9, probs[0], 1e-9)
	// left member 1: min_reach 4 exceeds left's LeaveEdgeWeight 1, which a
	// real tree would never produce, but the formula still applies:
	// 1 - 4/10 = 0.6
	assert.InDelta(t, 0.6, probs[1], 1e-9)
	// right member 3: min_reach 5 is half of birth_distance 10: 1 - 5/10 = 0.5
	assert.InDelta(t, 0.5, probs[3], 1e-9)

	assert.InDelta(t, 1.8, left.Stability, 1e-9)
	assert.InDelta(t, 0.2, right.Stability, 1e-9)
}

func TestWalk_ParentWinsSelectsRootOnly(t *testing.T) {
	tree := &core.Tree{}
	root := tree.NewCluster()
	root.Members = []int{0, 1, 2, 3}
	root.BirthDistance = 10
	root.LeaveEdgeWeight = 9 // stability 4*(1/9-1/10) ~= 0.0444

	left := tree.NewCluster()
	left.Members = []int{0, 1}
	left.BirthDistance = 10
	left.LeaveEdgeWeight = 9.5

	right := tree.NewCluster()
	right.Members = []int{2, 3}
	right.BirthDistance = 10
	right.LeaveEdgeWeight = 9.9

	root.Left, root.Right = left, right
	root.Left.MinReach = map[int]float64{0: 0, 1: 0}
	root.Right.MinReach = map[int]float64{2: 0, 3: 0}

	labels, _, selected := extract.Walk(4, tree, 2, false)
	require.Len(t, selected, 1)
	assert.Same(t, root, selected[0])
	assert.Equal(t, []int{0, 0, 0, 0}, labels)
}

func TestWalk_LeafWithNoChildrenAlwaysSelected(t *testing.T) {
	tree := &core.Tree{}
	root := tree.NewCluster()
	root.Members = []int{0, 1, 2}
	root.MinReach = map[int]float64{0: 0, 1: 0, 2: 0}
	// stability is 0 (no BirthDistance set) but a leaf always wins since
	// there's no viable split to prefer instead.

	labels, _, selected := extract.Walk(3, tree, 2, true)
	require.Len(t, selected, 1)
	assert.Same(t, root, selected[0])
	assert.Equal(t, []int{0, 0, 0}, labels)
}

func TestWalk_RootNeverSelectedWhenSkipRootTrue(t *testing.T) {
	tree := &core.Tree{}
	root := tree.NewCluster()
	root.Members = []int{0, 1, 2, 3}
	root.BirthDistance = 10
	root.LeaveEdgeWeight = 1 // a large formula stability, irrelevant once forced to 0

	left := tree.NewCluster()
	left.Members = []int{0, 1}
	left.MinReach = map[int]float64{0: 0, 1: 0}

	right := tree.NewCluster()
	right.Members = []int{2, 3}
	right.MinReach = map[int]float64{2: 0, 3: 0}

	root.Left, root.Right = left, right

	_, _, selected := extract.Walk(4, tree, 2, true)
	require.Len(t, selected, 2)
	assert.NotContains(t, selected, root)
	assert.Zero(t, root.Stability)
}

func TestWalk_RootSelectableWhenSkipRootFalse(t *testing.T) {
	tree := &core.Tree{}
	root := tree.NewCluster()
	root.Members = []int{0, 1, 2, 3}
	root.BirthDistance = 10
	root.LeaveEdgeWeight = 9 // small but nonzero stability, beats weak children

	left := tree.NewCluster()
	left.Members = []int{0, 1}
	left.BirthDistance = 10
	left.LeaveEdgeWeight = 9.99

	right := tree.NewCluster()
	right.Members = []int{2, 3}
	right.BirthDistance = 10
	right.LeaveEdgeWeight = 9.99

	root.Left, root.Right = left, right
	root.Left.MinReach = map[int]float64{0: 0, 1: 0}
	root.Right.MinReach = map[int]float64{2: 0, 3: 0}

	_, _, selected := extract.Walk(4, tree, 2, false)
	require.Len(t, selected, 1)
	assert.Same(t, root, selected[0])
}

func TestWalk_RootBelowFloorProducesAllNoise(t *testing.T) {
	tree := &core.Tree{}
	root := tree.NewCluster()
	root.Members = []int{0}

	labels, probs, selected := extract.Walk(1, tree, 5, true)
	assert.Equal(t, []int{-1}, labels)
	assert.Equal(t, []float64{0}, probs)
	assert.Empty(t, selected)
}
