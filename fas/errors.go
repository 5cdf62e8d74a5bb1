// Package fas computes an approximate minimum feedback arc set on a
// directed, optionally weighted core.Graph.
//
// The engine follows the Eades-Lin-Smyth greedy heuristic in unweighted
// mode and the Simpson-Srinivasan-Thomo generalization in weighted mode:
// vertices are scored by residual in-degree minus out-degree, drained from
// the extremes (pure sources and pure sinks) and otherwise evicted from the
// minimum-score bucket, until every vertex has been placed into a linear
// order. Arcs that point backwards against that order are the feedback arc
// set; removing them yields the returned acyclic graph.
package fas

import "errors"

// ErrDegenerateGraph is returned when the input graph has no vertices, or
// every vertex is isolated (no incident arcs at all).
var ErrDegenerateGraph = errors.New("fas: degenerate graph")

// ErrDuplicateVertexKey is returned when the adapter supplies ambiguous,
// colliding vertex keys to the underlying graph.
var ErrDuplicateVertexKey = errors.New("fas: duplicate vertex key")

// ErrNegativeWeight is returned when a weighted arc carries a negative
// weight; weights must be finite and non-negative.
var ErrNegativeWeight = errors.New("fas: negative arc weight")

// ErrInternalInconsistency is returned when the post-run correctness gate
// finds a cycle in the output graph, or an internal invariant is violated.
// It indicates an implementation bug, not a property of the input.
var ErrInternalInconsistency = errors.New("fas: internal inconsistency")
