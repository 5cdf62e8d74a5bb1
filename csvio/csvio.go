// Package csvio is the CSV adapter for minfas: it is not part of the core
// elimination engine (component G of the system overview), only its
// external collaborator. It loads the on-disk trade-edge format into a
// core.Graph and emits the two result files the CLI writes per run.
//
// Grounded on the original's csv2graph/graph2csv/partial2csv
// (original_source/utils.go) for the wire format, reshaped into Go's
// encoding/csv idiom the way ja7ad-consumption/cmd/consumption/main.go
// drives its own CSV output.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/arcweave/minfas/core"
	"github.com/arcweave/minfas/fas"
)

// ErrMalformedRow is returned when an ingestion row does not have exactly
// four fields, or its weight field does not parse as a number.
var ErrMalformedRow = errors.New("csvio: malformed row")

// ErrBadTimestamp is returned when a row's timestamp field does not parse,
// even though its value is otherwise discarded.
var ErrBadTimestamp = errors.New("csvio: bad timestamp")

type pairKey struct{ from, to string }

// Load reads path as `target,source,timestamp,weight` rows (header
// skipped), sums duplicate (source,target) weights, drops self-loops, and
// returns the resulting core.Graph. The graph is always constructed with
// core.WithWeighted() and every edge carries its real (rounded) summed
// weight: the CSV `trade` column is an inherent property of the graph,
// independent of fas.WithWeighted, which controls only the elimination
// engine's scoring mode, not what weight ends up on an edge.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvio: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	sums := make(map[pairKey]float64)
	var order []pairKey

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvio: read %s: %w", path, err)
	}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) != 4 {
			return nil, fmt.Errorf("%w: row %d: expected 4 fields, got %d", ErrMalformedRow, i, len(row))
		}
		target, source, timestamp, weightStr := row[0], row[1], row[2], row[3]

		if _, terr := strconv.ParseFloat(timestamp, 64); terr != nil {
			return nil, fmt.Errorf("%w: row %d: %q: %v", ErrBadTimestamp, i, timestamp, terr)
		}

		weight, werr := strconv.ParseFloat(weightStr, 64)
		if werr != nil {
			return nil, fmt.Errorf("%w: row %d: bad weight %q: %v", ErrMalformedRow, i, weightStr, werr)
		}

		if source == target {
			continue // self-loops dropped at ingestion
		}

		key := pairKey{from: source, to: target}
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] += weight
	}

	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())

	for _, key := range order {
		w := int64(math.Round(sums[key]))
		if _, err := g.AddEdge(key.from, key.to, w); err != nil {
			return nil, fmt.Errorf("csvio: adding edge %s->%s: %w", key.from, key.to, err)
		}
	}

	return g, nil
}

// WriteDAG writes the DAG file: header `source,target,trade`, one row per
// arc of g whose (From, To) pair does not appear in violators, carrying
// the arc's original weight.
func WriteDAG(path string, g *core.Graph, violators []fas.Arc) error {
	skip := make(map[pairKey]bool, len(violators))
	for _, v := range violators {
		skip[pairKey{from: v.From, to: v.To}] = true
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvio: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"source", "target", "trade"}); err != nil {
		return fmt.Errorf("csvio: write header: %w", err)
	}

	edges := g.Edges()
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })
	for _, e := range edges {
		if skip[pairKey{from: e.From, to: e.To}] {
			continue
		}
		row := []string{e.From, e.To, strconv.FormatInt(e.Weight, 10)}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csvio: write row %s->%s: %w", e.From, e.To, err)
		}
	}

	return w.Error()
}

// WritePartialOrder writes the partial-order file: header `node`, one row
// per vertex in order.
func WritePartialOrder(path string, order []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvio: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"node"}); err != nil {
		return fmt.Errorf("csvio: write header: %w", err)
	}
	for _, id := range order {
		if err := w.Write([]string{id}); err != nil {
			return fmt.Errorf("csvio: write node %s: %w", id, err)
		}
	}

	return w.Error()
}
