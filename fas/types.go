package fas

import "github.com/arcweave/minfas/core"

// Arc is a reported feedback-set member: a directed edge that points
// backwards against the computed order, carrying its original
// (pre-normalization) weight.
type Arc struct {
	From   string
	To     string
	Weight int64
}

// Result is the outcome of a single Run.
type Result struct {
	// Order is the computed linear vertex order, S_L followed by S_R.
	Order []string

	// Violators holds every arc whose head precedes its tail in Order.
	Violators []Arc

	// ViolatorFraction is len(Violators) / total arc count.
	ViolatorFraction float64

	// ViolatorWeightFraction is the sum of violators' original weights
	// divided by the sum of all arcs' original weights.
	ViolatorWeightFraction float64

	// DAG is the input graph with every violator arc removed.
	DAG *core.Graph
}

// options collects the resolved configuration for a Run.
type options struct {
	weighted bool
}

// Option configures a Run.
type Option func(*options)

// WithWeighted selects the weighted scoring mode: scores are derived from
// per-destination normalized arc weight rather than raw degree counts.
func WithWeighted(weighted bool) Option {
	return func(o *options) { o.weighted = weighted }
}

func resolveOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
