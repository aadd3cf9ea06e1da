package hdbscan

import (
	"errors"
	"fmt"
)

// Default values for an unconfigured Clusterer, matching the package's
// documented defaults.
const (
	defMinClusterSize = 5
	defSkipRoot       = true
	defDebugMode      = false
)

// ErrInvalidMinClusterSize is returned by NewClusterer when min_cluster_size
// is not strictly positive.
var ErrInvalidMinClusterSize = errors.New("hdbscan: min_cluster_size must be > 0")

// ErrInvalidMinSamples is returned by NewClusterer when min_samples is not
// strictly positive.
var ErrInvalidMinSamples = errors.New("hdbscan: min_samples must be > 0")

// config holds the resolved knobs for a Clusterer. minSamplesSet records
// whether WithMinSamples was called, so an explicit value can be told
// apart from "unset" when resolve applies the default (value of
// min_cluster_size).
type config struct {
	minClusterSize int
	minSamples     int
	minSamplesSet  bool
	skipRoot       bool
	debugMode      bool
	logger         Logger
	loggerSet      bool
}

// Option configures a Clusterer before construction.
type Option func(*config)

// WithMinClusterSize sets the minimum member count for a cluster to be a
// candidate selection. Must be > 0.
func WithMinClusterSize(n int) Option {
	return func(c *config) { c.minClusterSize = n }
}

// WithMinSamples sets k for the core-distance computation. Must be > 0.
// If never set, it defaults to min_cluster_size once NewClusterer resolves
// the final configuration.
func WithMinSamples(k int) Option {
	return func(c *config) {
		c.minSamples = k
		c.minSamplesSet = true
	}
}

// WithSkipRootCluster controls whether the root cluster's stability is
// forced to 0, so the root never wins a stability comparison against its
// children. A root with no qualifying children is still selected.
func WithSkipRootCluster(skip bool) Option {
	return func(c *config) { c.skipRoot = skip }
}

// WithDebugMode toggles diagnostic traces at each pipeline stage boundary.
// It never changes Fit's outputs.
func WithDebugMode(on bool) Option {
	return func(c *config) { c.debugMode = on }
}

// WithLogger sets the sink debug_mode traces are written to. It only takes
// effect when debug_mode is on; without WithDebugMode(true), Fit never
// writes to it.
func WithLogger(l Logger) Option {
	return func(c *config) {
		c.logger = l
		c.loggerSet = true
	}
}

// resolve applies opts over the package defaults and validates the result.
func resolve(opts ...Option) (config, error) {
	cfg := config{
		minClusterSize: defMinClusterSize,
		skipRoot:       defSkipRoot,
		debugMode:      defDebugMode,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.minSamplesSet {
		cfg.minSamples = cfg.minClusterSize
	}

	// debug_mode is the sole gate on trace emission: WithLogger only
	// chooses where traces go once debug_mode is on, it never turns them
	// on by itself, and turning debug_mode off always silences whatever
	// logger was configured.
	switch {
	case !cfg.debugMode:
		cfg.logger = noopLogger{}
	case cfg.loggerSet && cfg.logger != nil:
		// keep the caller's logger
	default:
		cfg.logger = DefaultLogger()
	}

	if cfg.minClusterSize <= 0 {
		return config{}, fmt.Errorf("hdbscan: min_cluster_size=%d: %w", cfg.minClusterSize, ErrInvalidMinClusterSize)
	}
	if cfg.minSamples <= 0 {
		return config{}, fmt.Errorf("hdbscan: min_samples=%d: %w", cfg.minSamples, ErrInvalidMinSamples)
	}

	return cfg, nil
}
