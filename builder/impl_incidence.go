// SPDX-License-Identifier: MIT
// Package: textnet/builder
//
// impl_incidence.go: Incidence(wm): the bipartite document–term graph.
//
// Contract:
//   • Vertices: every row label tagged NodeDoc (row order), then every column
//     label tagged NodeTerm (column order).
//   • Edges: one doc–term edge per cell selected by cfg.edges, weight = cell value.
//   • A label present on both axes yields ErrIDCollision.
//
// Determinism:
//   • Edges are emitted from one row-major scan that records (source, target,
//     weight) triples; AddEdge then consumes the triples in the same order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/textnet/core"
	"github.com/katalvlaran/textnet/matrix"
)

const methodIncidence = "Incidence"

// triple is one edge to be inserted.
type triple struct {
	src, dst string
	w        float64
}

// Incidence returns a Constructor that adds the bipartite graph of wm.
//
// Complexity: O(D·T) time for the scan, O(D + T + E) space.
func Incidence(wm *matrix.Labeled) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if wm == nil {
			return fmt.Errorf("%s: %w", methodIncidence, ErrNilMatrix)
		}
		docs, terms := wm.Rows(), wm.Cols()
		for _, t := range terms {
			if _, clash := wm.RowIndex(t); clash {
				return fmt.Errorf("%s: %q: %w", methodIncidence, t, ErrIDCollision)
			}
		}

		for _, d := range docs {
			if err := g.AddVertex(d, core.WithType(core.NodeDoc)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodIncidence, d, err)
			}
		}
		for _, t := range terms {
			if err := g.AddVertex(t, core.WithType(core.NodeTerm)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodIncidence, t, err)
			}
		}

		var edges []triple
		err := wm.EachCell(cfg.edges == NonzeroEdges, func(i, j int, w float64) error {
			edges = append(edges, triple{src: docs[i], dst: terms[j], w: w})
			return nil
		})
		if err != nil {
			return fmt.Errorf("%s: EachCell: %w", methodIncidence, err)
		}

		for _, e := range edges {
			if _, err := g.AddEdge(e.src, e.dst, e.w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodIncidence, e.src, e.dst, e.w, err)
			}
		}

		return nil
	}
}
