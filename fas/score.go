// File: score.go
// Role: component B, Score Initializer — computes each vertex's initial
// delta score (residual in-degree minus out-degree, unweighted, or the
// floored normalized weighted sum) and snapshots the graph's arcs into a
// side table the Greedy Eliminator can mutate without touching core.Graph.
//
// Grounded on core's own adjacency style (methods_adjacent.go's
// Neighbors/NeighborIDs) for enumeration, but snapshots into private slices
// per the mutation-during-iteration design note: elimination never calls
// back into core.Graph once this snapshot is built.
package fas

import (
	"math"

	"github.com/arcweave/minfas/core"
)

// slotKind tags which bucket, if any, a vertex currently occupies.
type slotKind int

const (
	slotInterior slotKind = iota
	slotSource
	slotSink
	slotRemoved
)

// neighborArc is one endpoint of a snapshot arc: the other vertex, the
// arc's original (pre-normalization) weight, and — in weighted mode — its
// normalized weight (original weight divided by the arc's destination's
// total incoming mass, fixed once at initialization).
type neighborArc struct {
	id         string
	weight     int64
	normWeight float64
}

// vertexState is the mutable per-vertex record the Eliminator updates in
// place; it never touches core.Graph.
type vertexState struct {
	id          string
	score       int
	residualIn  int
	residualOut int
	normIn      float64 // residual normalized in-mass (weighted mode only)
	normOut     float64 // residual normalized out-mass (weighted mode only)
	kind        slotKind
}

// snapshot is the private, read-only-after-construction arc catalog the
// Eliminator consumes instead of re-querying core.Graph.
type snapshot struct {
	order    []string               // all vertex IDs, as returned by core.Graph (stable order)
	inArcs   map[string][]neighborArc
	outArcs  map[string][]neighborArc
	arcCount int
}

// buildSnapshot copies g's vertex and arc catalog into private slices.
func buildSnapshot(g *core.Graph) (*snapshot, error) {
	verts := g.Vertices()
	edges := g.Edges()

	s := &snapshot{
		order:   verts,
		inArcs:  make(map[string][]neighborArc, len(verts)),
		outArcs: make(map[string][]neighborArc, len(verts)),
	}
	for _, e := range edges {
		if e.Weight < 0 {
			return nil, ErrNegativeWeight
		}
		s.outArcs[e.From] = append(s.outArcs[e.From], neighborArc{id: e.To, weight: e.Weight})
		s.inArcs[e.To] = append(s.inArcs[e.To], neighborArc{id: e.From, weight: e.Weight})
		s.arcCount++
	}

	return s, nil
}

// initScores computes the starting vertexState for every vertex in s, per
// §4.B: unweighted scores are in_deg - out_deg; weighted scores normalize
// each arc's weight by its head's total incoming mass before summing.
//
// Returns ErrDegenerateGraph if s has no vertices, or if it has no arcs at
// all (every vertex is isolated).
func initScores(s *snapshot, weighted bool) (map[string]*vertexState, error) {
	if len(s.order) == 0 || s.arcCount == 0 {
		return nil, ErrDegenerateGraph
	}

	states := make(map[string]*vertexState, len(s.order))
	for _, id := range s.order {
		states[id] = &vertexState{
			id:          id,
			residualIn:  len(s.inArcs[id]),
			residualOut: len(s.outArcs[id]),
		}
	}

	if !weighted {
		for _, v := range states {
			v.score = v.residualIn - v.residualOut
		}

		return states, nil
	}

	// Weighted mode: W_in(v) = total raw incoming weight at v.
	wIn := make(map[string]float64, len(s.order))
	for _, id := range s.order {
		var total float64
		for _, a := range s.inArcs[id] {
			total += float64(a.weight)
		}
		wIn[id] = total
	}

	// Fix each arc's normalized weight once: weight(u->v) / W_in(v). This
	// divisor never changes as vertices are later removed — normalization
	// is a property of the original graph, not of the residual structure.
	for id, arcs := range s.inArcs {
		for i := range arcs {
			arcs[i].normWeight = arcs[i].normalize(wIn[id])
		}
	}
	for id := range s.outArcs {
		arcs := s.outArcs[id]
		for i := range arcs {
			arcs[i].normWeight = arcs[i].normalize(wIn[arcs[i].id])
		}
	}

	// w_in(v) = sum of normalized incoming weight (= 1 whenever v has any
	// incoming arc); w_out(v) = sum of v's outgoing arcs' normalized weight.
	for _, id := range s.order {
		v := states[id]
		var win float64
		for _, a := range s.inArcs[id] {
			win += a.normWeight
		}
		var wout float64
		for _, a := range s.outArcs[id] {
			wout += a.normWeight
		}
		v.normIn = win
		v.normOut = wout
		v.score = floorScore(win - wout)
	}

	return states, nil
}

// normalize returns a.weight / divisor, or 0 if divisor is non-positive
// (an arc whose destination has no positive incoming mass cannot exist in
// a consistent snapshot, but the zero guard keeps this total).
func (a neighborArc) normalize(divisor float64) float64 {
	if divisor <= 0 {
		return 0
	}

	return float64(a.weight) / divisor
}

// floorScore truncates a real-valued delta score to the integer bucket
// index convention used throughout §4: ⌊w_in - w_out⌋.
func floorScore(delta float64) int {
	return int(math.Floor(delta))
}
