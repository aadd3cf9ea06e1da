// Package reachability computes the mutual-reachability distance matrix
// that HDBSCAN uses in place of raw Euclidean distance: it inflates the
// distance between two points to at least each point's own "core
// distance", making the algorithm robust to noise around sparse points.
package reachability

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptyPoints indicates Compute was called with zero points.
var ErrEmptyPoints = errors.New("reachability: points must be non-empty")

// ErrRaggedPoints indicates the input points do not all share the same
// dimensionality.
var ErrRaggedPoints = errors.New("reachability: points must share one dimensionality")

// ErrInvalidMinSamples indicates minSamples was not a positive integer.
var ErrInvalidMinSamples = errors.New("reachability: minSamples must be > 0")

// euclidean returns the true (unsquared) Euclidean distance between a and
// b. HDBSCAN's core-distance/mutual-reachability construction is only
// consistent under the true distance — squared distance silently breaks
// the "M[i][j] >= dist(i,j)" guarantee.
func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}

// coreDistances returns, for every point i, the distance from i to its
// k-th nearest neighbor (k = min(minSamples-1, n-2), excluding i itself).
// For n == 1 there is no neighbor to measure against, so coreDistances
// returns a single zero.
func coreDistances(points [][]float64, minSamples int) []float64 {
	n := len(points)
	core := make([]float64, n)
	if n == 1 {
		return core
	}

	k := minSamples - 1
	if k > n-2 {
		k = n - 2
	}
	if k < 0 {
		k = 0
	}

	row := make([]float64, 0, n-1)
	for i := 0; i < n; i++ {
		row = row[:0]
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			row = append(row, euclidean(points[i], points[j]))
		}
		sort.Float64s(row)
		core[i] = row[k]
	}

	return core
}

// Compute returns the n×n mutual-reachability matrix M, where
// M[i][j] = max(dist(i,j), core(i), core(j)) and M[i][i] = core(i).
//
// minSamples must be >= 1; k for the core-distance computation is
// min(minSamples-1, n-2), clamped to 0 when n <= 2. For n == 1, Compute
// returns the 1x1 zero matrix.
func Compute(points [][]float64, minSamples int) (*Matrix, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrEmptyPoints
	}
	if minSamples <= 0 {
		return nil, ErrInvalidMinSamples
	}
	dim := len(points[0])
	for _, p := range points {
		if len(p) != dim {
			return nil, ErrRaggedPoints
		}
	}

	core := coreDistances(points, minSamples)
	m := NewMatrix(n)
	if n == 1 {
		return m, nil
	}

	for i := 0; i < n; i++ {
		m.Set(i, i, core[i])
		for j := i + 1; j < n; j++ {
			d := euclidean(points[i], points[j])
			mr := d
			if core[i] > mr {
				mr = core[i]
			}
			if core[j] > mr {
				mr = core[j]
			}
			m.Set(i, j, mr)
			m.Set(j, i, mr)
		}
	}

	return m, nil
}
