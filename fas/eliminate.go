// File: eliminate.go
// Role: component D, Greedy Eliminator — the main loop. Drains sinks to
// the right-prepend accumulator, drains sources to the left-append
// accumulator, then evicts the minimum-score interior vertex and repeats,
// applying the neighbor-update protocol after every removal.
//
// Grounded on the original MinArc.py's main elimination loop and its
// update_neighbours method (original_source/MinArc.py); the mutation is
// reshaped here to act on the private snapshot/vertexState side tables
// instead of the graph itself, per the mutation-during-iteration design
// note.
package fas

import "fmt"

// eliminate runs the greedy loop to completion, returning the left
// (append) and right (prepend, collected here in natural drain order and
// reversed by the Order Assembler) accumulators.
func eliminate(s *snapshot, states map[string]*vertexState, weighted bool) (sL, sR []string, err error) {
	n := len(s.order)
	arr, isolated := newBucketArray(n, s.order, states)
	sL = append(sL, isolated...)
	removed := len(isolated)

	for removed < n {
		for {
			v, ok := arr.drainSink()
			if !ok {
				break
			}
			sR = append(sR, v)
			states[v].kind = slotRemoved
			removed++
			updateNeighbors(s, states, arr, v, weighted)
		}

		for {
			v, ok := arr.drainSource()
			if !ok {
				break
			}
			sL = append(sL, v)
			states[v].kind = slotRemoved
			removed++
			updateNeighbors(s, states, arr, v, weighted)
		}

		if removed == n {
			break
		}

		v, ok := arr.evictMin(states)
		if !ok {
			return nil, nil, fmt.Errorf("%w: no bucket candidate with %d vertices remaining", ErrInternalInconsistency, n-removed)
		}
		sL = append(sL, v)
		states[v].kind = slotRemoved
		removed++
		updateNeighbors(s, states, arr, v, weighted)
	}

	return sL, sR, nil
}

// updateNeighbors applies the neighbor-update protocol for freshly removed
// vertex v: every still-interior neighbor has its residual degree and
// score adjusted and is relocated to its new bucket.
//
// Incoming neighbors are processed before outgoing ones: a vertex that is
// both an in- and out-neighbor of v (a mutual pair) and has no other
// residual arcs then resolves to the sink pile, matching the documented
// "becomes isolated -> sink" convention, since once it is moved to the sink
// pile here it is absorbing and the outgoing pass skips it.
func updateNeighbors(s *snapshot, states map[string]*vertexState, arr *bucketArray, v string, weighted bool) {
	for _, a := range s.inArcs[v] {
		u := states[a.id]
		if u.kind != slotInterior {
			continue
		}
		arr.removeInterior(u.id, u.score)
		u.residualOut--
		if weighted {
			u.normOut -= a.normWeight
			u.score = floorScore(u.normIn - u.normOut)
		} else {
			u.score++
		}
		if u.residualIn > 0 && u.residualOut > 0 {
			arr.insertInterior(u.id, u.score)
		} else {
			u.kind = slotSink
			arr.insertSink(u.id)
		}
	}

	for _, a := range s.outArcs[v] {
		w := states[a.id]
		if w.kind != slotInterior {
			continue
		}
		arr.removeInterior(w.id, w.score)
		w.residualIn--
		if weighted {
			w.normIn -= a.normWeight
			w.score = floorScore(w.normIn - w.normOut)
		} else {
			w.score--
		}
		if w.residualIn > 0 && w.residualOut > 0 {
			arr.insertInterior(w.id, w.score)
		} else {
			w.kind = slotSource
			arr.insertSource(w.id)
		}
	}
}
