// Package minfas computes an approximate minimum feedback arc set (FAS) on
// a directed, optionally weighted graph: a linear vertex ordering, the set
// of arcs that point backwards against it, and the acyclic graph left once
// those arcs are removed.
//
// It implements the Eades–Lin–Smyth greedy heuristic for unweighted graphs
// and the Simpson–Srinivasan–Thomo generalization for weighted graphs,
// after Tintelnot et al.'s production-network application of both.
//
// Organized as:
//
//	core/       — the Graph, Vertex, Edge container (github.com/katalvlaran/lvlath's core, adapted)
//	dfs/        — depth-first traversal and cycle detection, used to verify acyclicity
//	builder/    — synthetic graph constructors, used to generate FAS benchmark instances
//	fas/        — the elimination engine: bucketed scores, greedy eviction, violator extraction
//	csvio/      — CSV ingestion/emission adapter
//	cmd/minfas/ — command-line entry point
//
// Quick usage:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	g.AddEdge("A", "B", 2)
//	g.AddEdge("B", "A", 1)
//	res, err := fas.Run(g, fas.WithWeighted(true))
//	// res.Order, res.Violators, res.DAG
package minfas
