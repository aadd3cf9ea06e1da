// Package hdbscan computes a density-based hierarchical clustering over a
// set of points and extracts a flat, noise-aware labeling from it.
//
// A Clusterer is configured once via functional options and reused across
// Fit calls; each Fit runs the full pipeline — mutual-reachability
// distances, a minimum spanning tree, a single-linkage condensed
// hierarchy, and a stability-based cluster selection — and replaces
// whatever results the previous call produced.
package hdbscan

import (
	"fmt"

	"github.com/katalvlaran/hdbscan/condense"
	"github.com/katalvlaran/hdbscan/core"
	"github.com/katalvlaran/hdbscan/extract"
	"github.com/katalvlaran/hdbscan/hierarchy"
	"github.com/katalvlaran/hdbscan/mst"
	"github.com/katalvlaran/hdbscan/reachability"
)

// Clusterer runs the hdbscan pipeline over batches of points. The zero
// value is not usable; construct one with NewClusterer.
type Clusterer struct {
	cfg config

	tree      *core.Tree
	condensed []*core.Cluster
	labels    []int
	probs     []float64
}

// NewClusterer validates opts against the defaults (min_cluster_size=5,
// min_samples=min_cluster_size, skip_root_cluster=true, debug_mode=false)
// and returns a ready-to-use Clusterer, or an error wrapping
// ErrInvalidMinClusterSize/ErrInvalidMinSamples if the resolved
// configuration is out of range.
func NewClusterer(opts ...Option) (*Clusterer, error) {
	cfg, err := resolve(opts...)
	if err != nil {
		return nil, err
	}

	return &Clusterer{cfg: cfg}, nil
}

// Fit runs the full pipeline over points and stores the result. On
// success, Labels/Probabilities/Clusters reflect this call; on error, they
// are left exactly as they were before the call (possibly unset, if this
// was the first Fit).
//
// Internal bugs — detected by a downstream stage rather than by Fit's own
// input validation — surface wrapped in core.ErrInvariantViolation;
// callers can match it with errors.Is.
func (c *Clusterer) Fit(points [][]float64) error {
	n := len(points)
	c.cfg.logger.Printf("fit: %d points in", n)

	matrix, err := reachability.Compute(points, c.cfg.minSamples)
	if err != nil {
		return fmt.Errorf("hdbscan: fit: %w", err)
	}

	var edges []core.Edge
	if n >= 2 {
		edges, err = mst.Build(matrix)
		if err != nil {
			return fmt.Errorf("hdbscan: fit: %w", err)
		}
	}
	c.cfg.logger.Printf("fit: mst built with %d edges", len(edges))

	tree, err := hierarchy.Build(edges, n, c.cfg.minClusterSize)
	if err != nil {
		return fmt.Errorf("hdbscan: fit: %w", err)
	}
	c.cfg.logger.Printf("fit: hierarchy built with %d clusters", len(tree.Nodes))

	condensed := condense.Filter(tree, c.cfg.minClusterSize)
	c.cfg.logger.Printf("fit: condensed to %d clusters", len(condensed))

	labels, probs, selected := extract.Walk(n, tree, c.cfg.minClusterSize, c.cfg.skipRoot)
	c.cfg.logger.Printf("fit: selected %d clusters", len(selected))

	c.tree = tree
	c.condensed = condensed
	c.labels = labels
	c.probs = probs

	return nil
}

// Labels returns the most recent Fit's per-point cluster labels: 0..K-1
// for clustered points, -1 for noise. It is nil before the first
// successful Fit.
func (c *Clusterer) Labels() []int {
	return c.labels
}

// Probabilities returns the most recent Fit's per-point membership
// probabilities in [0, 1]; noise points report 0. It is nil before the
// first successful Fit.
func (c *Clusterer) Probabilities() []float64 {
	return c.probs
}

// Clusters returns the condensed hierarchy (every cluster meeting the
// minimum-size floor, not just the ones ultimately selected) from the most
// recent Fit, by reference — callers must not mutate it. It is nil before
// the first successful Fit.
func (c *Clusterer) Clusters() []*core.Cluster {
	return c.condensed
}
