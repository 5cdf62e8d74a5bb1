// File: violators.go
// Role: component F, Violator Extractor — traverses the undirected
// projection of the graph, component by component, collecting every arc
// whose head precedes its tail in the computed order. Builds the acyclic
// output graph and runs the post-run cycle-detection gate.
//
// The traversal walks core.Graph's InEdges/OutEdges directly with a plain
// queue and visited map, so it follows arcs in both directions and works on
// weighted and unweighted digraphs alike.
package fas

import (
	"fmt"
	"sort"

	"github.com/arcweave/minfas/core"
	"github.com/arcweave/minfas/dfs"
)

// extractViolators walks g's undirected projection once per connected
// component, classifying every arc by the order π and building the
// resulting acyclic graph. It returns the violator list (sorted for
// determinism), the DAG, and the raw totals needed for fraction reporting.
func extractViolators(g *core.Graph, order []string) (violators []Arc, dag *core.Graph, totalArcs int, totalWeight float64, err error) {
	position := make(map[string]int, len(order))
	for i, id := range order {
		position[id] = i
	}

	visitedVertex := make(map[string]bool, len(order))
	visitedEdge := make(map[string]bool)
	violatorEdgeIDs := make(map[string]bool)
	var violatorWeight float64

	classify := func(e *core.Edge) {
		if visitedEdge[e.ID] {
			return
		}
		visitedEdge[e.ID] = true
		totalArcs++
		totalWeight += float64(e.Weight)
		if position[e.To] < position[e.From] {
			violators = append(violators, Arc{From: e.From, To: e.To, Weight: e.Weight})
			violatorEdgeIDs[e.ID] = true
			violatorWeight += float64(e.Weight)
		}
	}

	for _, root := range g.Vertices() {
		if visitedVertex[root] {
			continue
		}
		queue := []string{root}
		visitedVertex[root] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]

			outE, outErr := g.OutEdges(id)
			if outErr != nil {
				return nil, nil, 0, 0, fmt.Errorf("fas: OutEdges(%q): %w", id, outErr)
			}
			for _, e := range outE {
				classify(e)
				if !visitedVertex[e.To] {
					visitedVertex[e.To] = true
					queue = append(queue, e.To)
				}
			}

			inE, inErr := g.InEdges(id)
			if inErr != nil {
				return nil, nil, 0, 0, fmt.Errorf("fas: InEdges(%q): %w", id, inErr)
			}
			for _, e := range inE {
				classify(e)
				if !visitedVertex[e.From] {
					visitedVertex[e.From] = true
					queue = append(queue, e.From)
				}
			}
		}
	}

	sort.Slice(violators, func(i, j int) bool {
		if violators[i].From != violators[j].From {
			return violators[i].From < violators[j].From
		}

		return violators[i].To < violators[j].To
	})

	dag = g.CloneEmpty()
	for _, id := range g.Vertices() {
		if err := dag.AddVertex(id); err != nil {
			return nil, nil, 0, 0, fmt.Errorf("fas: rebuilding DAG vertex %q: %w", id, err)
		}
	}
	for _, e := range g.Edges() {
		if violatorEdgeIDs[e.ID] {
			continue
		}
		if _, err := dag.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, nil, 0, 0, fmt.Errorf("fas: rebuilding DAG edge %s->%s: %w", e.From, e.To, err)
		}
	}

	if cyclic, _, cerr := dfs.DetectCycles(dag); cerr != nil {
		return nil, nil, 0, 0, fmt.Errorf("fas: cycle check: %w", cerr)
	} else if cyclic {
		return nil, nil, 0, 0, fmt.Errorf("%w: output graph retains a cycle after violator removal", ErrInternalInconsistency)
	}

	return violators, dag, totalArcs, totalWeight, nil
}
