package mst_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hdbscan/mst"
	"github.com/katalvlaran/hdbscan/reachability"
)

// BenchmarkBuild measures Build's dense O(n^2) Prim scan on a 500-point
// random matrix, mirroring the teacher's prim_kruskal benchmark shape.
func BenchmarkBuild(b *testing.B) {
	n := 500
	r := rand.New(rand.NewSource(42))
	m := reachability.NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := r.Float64() * 100
			m.Set(i, j, w)
			m.Set(j, i, w)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mst.Build(m)
	}
}
