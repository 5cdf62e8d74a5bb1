// Package builder provides internal configuration types and functional options
// for graph constructors. It centralizes common settings such as random number
// generator, vertex ID scheme, and edge weight distribution to keep builder
// implementations DRY and consistent.
//
// The key type is BuilderOption, a function that mutates a builderConfig.
// builderConfig holds the RNG, vertex ID scheme, and edge weight generator
// shared by Cycle/Complete/RandomSparse.
//
// Use newBuilderConfig to obtain a config with sensible defaults, then apply
// any number of BuilderOption in order. Later options override earlier ones.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) extra space.
package builder

import (
	"math/rand"
)

// BuilderOption customizes the behavior of a graph constructor.
// It mutates the builderConfig before graph construction begins.
//
// As a rule, option constructors VALIDATE and PANIC on meaningless inputs
// (nil functions, out-of-range parameters); algorithms themselves must not.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the configurable parameters for graph builders:
//   - rng:      source of randomness (nil means deterministic).
//   - idFn:     function mapping index->vertex ID (IDFn).
//   - weightFn: function mapping rng->edge weight (WeightFn).
//
// builderConfig is not safe for concurrent mutation; each builder invocation
// should create its own config via newBuilderConfig.
type builderConfig struct {
	rng      *rand.Rand // optional RNG; nil means deterministic behavior
	idFn     IDFn       // function to generate vertex IDs from indices
	weightFn WeightFn   // function to generate edge weights
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. If opts is empty, returns
// defaults: nil RNG, DefaultIDFn, DefaultWeightFn.
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		rng:      nil,             // no RNG → deterministic ID and weight functions
		idFn:     DefaultIDFn,     // decimal IDs "0","1",…
		weightFn: DefaultWeightFn, // constant DefaultEdgeWeight
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
