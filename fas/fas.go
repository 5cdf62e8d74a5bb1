// File: fas.go
// Role: top-level orchestration — wires the Score Initializer, Bucket
// Array, Greedy Eliminator, Order Assembler, and Violator Extractor into
// a single Run call per the data flow in §2.
package fas

import "github.com/arcweave/minfas/core"

// Run computes an approximate minimum feedback arc set for g.
//
// In unweighted mode (the default) vertices are scored by residual
// in-degree minus out-degree; WithWeighted(true) switches to the
// normalized-weight scoring described in §4.B. Run never mutates g.
//
// Returns ErrDegenerateGraph if g has no vertices or every vertex is
// isolated, ErrNegativeWeight if any arc carries a negative weight, or
// ErrInternalInconsistency if the post-run cycle-detection gate fails.
func Run(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrDegenerateGraph
	}
	o := resolveOptions(opts...)

	snap, err := buildSnapshot(g)
	if err != nil {
		return nil, err
	}

	states, err := initScores(snap, o.weighted)
	if err != nil {
		// DegenerateGraph recovery: an empty order and an empty DAG, no violators.
		return &Result{DAG: g.CloneEmpty()}, err
	}

	sL, sR, err := eliminate(snap, states, o.weighted)
	if err != nil {
		return nil, err
	}
	order := assembleOrder(sL, sR)

	violators, dag, totalArcs, totalWeight, err := extractViolators(g, order)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Order:     order,
		Violators: violators,
		DAG:       dag,
	}
	if totalArcs > 0 {
		res.ViolatorFraction = float64(len(violators)) / float64(totalArcs)
	}
	if totalWeight > 0 {
		var violatorWeight float64
		for _, a := range violators {
			violatorWeight += float64(a.Weight)
		}
		res.ViolatorWeightFraction = violatorWeight / totalWeight
	}

	return res, nil
}
