// Package fixtures generates small, deterministic synthetic point clouds
// for use in tests and benchmarks: Gaussian blobs around fixed centers,
// optionally salted with uniform background noise.
package fixtures

import "math/rand"

// defaults for the blob generator, kept file-local since nothing outside
// this package needs to see them.
const (
	defSigma       = 0.3 // default per-axis Gaussian spread
	defNoiseFactor = 0.0 // default fraction of extra background noise points
)

// config holds the resolved knobs for Blobs, populated via Option.
type config struct {
	seed        int64
	sigma       float64
	noiseFactor float64
}

// Option configures a Blobs call. Options are resolved in order, so a
// later option overrides an earlier one.
type Option func(*config)

// WithSeed fixes the RNG seed so a given (centers, perCenter, options)
// call always produces the same point cloud.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithSigma sets the per-axis standard deviation of the Gaussian spread
// around each center. Zero collapses every blob to its center; a negative
// value spreads points as its absolute value would, but also shrinks the
// background-noise box that WithNoiseFactor draws from.
func WithSigma(sigma float64) Option {
	return func(c *config) { c.sigma = sigma }
}

// WithNoiseFactor adds extra uniformly-scattered background points: the
// count is factor * (len(centers) * perCenter), rounded down. Background
// points are bounded by the blobs' own coordinate range padded by a few
// sigma, so they land near the clusters rather than arbitrarily far away.
func WithNoiseFactor(factor float64) Option {
	return func(c *config) { c.noiseFactor = factor }
}

func newConfig(opts ...Option) config {
	c := config{sigma: defSigma, noiseFactor: defNoiseFactor}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Blobs returns perCenter Gaussian-distributed points around each of
// centers, plus ground-truth labels (the index into centers each point
// was drawn from; noise points get label -1). Every center must have the
// same dimensionality; Blobs panics otherwise since mismatched dimensions
// indicate a caller bug in test setup, not recoverable input.
//
// Generation is deterministic for a fixed seed: centers are visited in
// order, and within each center points are drawn in order, so two calls
// with identical arguments produce byte-identical output.
func Blobs(centers [][]float64, perCenter int, opts ...Option) (points [][]float64, labels []int) {
	if len(centers) == 0 || perCenter <= 0 {
		return nil, nil
	}
	dim := len(centers[0])
	for _, c := range centers {
		if len(c) != dim {
			panic("fixtures: all centers must share the same dimensionality")
		}
	}

	cfg := newConfig(opts...)
	rng := rand.New(rand.NewSource(cfg.seed))

	points = make([][]float64, 0, len(centers)*perCenter)
	labels = make([]int, 0, len(centers)*perCenter)

	for label, center := range centers {
		for i := 0; i < perCenter; i++ {
			p := make([]float64, dim)
			for d := 0; d < dim; d++ {
				p[d] = center[d] + rng.NormFloat64()*cfg.sigma
			}
			points = append(points, p)
			labels = append(labels, label)
		}
	}

	noiseCount := int(cfg.noiseFactor * float64(len(points)))
	if noiseCount > 0 {
		lo, hi := bounds(centers, cfg.sigma)
		for i := 0; i < noiseCount; i++ {
			p := make([]float64, dim)
			for d := 0; d < dim; d++ {
				p[d] = lo[d] + rng.Float64()*(hi[d]-lo[d])
			}
			points = append(points, p)
			labels = append(labels, -1)
		}
	}

	return points, labels
}

// bounds returns a per-axis [lo, hi] box covering every center padded by
// 4 sigma, used to keep background noise near the blobs rather than
// scattered over an unbounded range.
func bounds(centers [][]float64, sigma float64) (lo, hi []float64) {
	dim := len(centers[0])
	lo = make([]float64, dim)
	hi = make([]float64, dim)
	copy(lo, centers[0])
	copy(hi, centers[0])

	for _, c := range centers[1:] {
		for d := 0; d < dim; d++ {
			if c[d] < lo[d] {
				lo[d] = c[d]
			}
			if c[d] > hi[d] {
				hi[d] = c[d]
			}
		}
	}
	pad := 4 * sigma
	for d := 0; d < dim; d++ {
		lo[d] -= pad
		hi[d] += pad
	}

	return lo, hi
}
