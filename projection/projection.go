// Package projection derives one-mode graphs from the bipartite
// document–term graph.
//
// Two vertices of the chosen class are joined when they share at least one
// neighbor of the other class. The edge weight is then overwritten from the
// Gram matrix of the weight matrix: A·Aᵀ for documents, Aᵀ·A for terms.
//
// Every vertex of the chosen class is kept, isolated ones included, with its
// ID, type and attribute bag. Edge IDs follow the order (u by insertion
// position, then v by insertion position), so equal inputs give equal graphs.
package projection

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/textnet/core"
	"github.com/katalvlaran/textnet/matrix"
)

// ErrInvalidNodeType indicates a projection class other than doc or term.
var ErrInvalidNodeType = errors.New("projection: node type must be doc or term")

// ErrNilInput indicates a nil graph or weight matrix.
var ErrNilInput = errors.New("projection: nil graph or matrix")

// Project returns the one-mode graph of g over node class nt, weighted by the
// Gram matrix of wm.
//
// Complexity: O(n²·k) for the Gram product plus O(Σ_x deg(x)²) for the
// shared-neighbor scan.
func Project(g *core.Graph, wm *matrix.Labeled, nt core.NodeType) (*core.Graph, error) {
	var axis matrix.Axis
	switch nt {
	case core.NodeDoc:
		axis = matrix.ByRow
	case core.NodeTerm:
		axis = matrix.ByColumn
	default:
		return nil, fmt.Errorf("Project(%v): %w", nt, ErrInvalidNodeType)
	}
	if g == nil || wm == nil {
		return nil, fmt.Errorf("Project(%v): %w", nt, ErrNilInput)
	}

	w, err := wm.Gram(axis)
	if err != nil {
		return nil, fmt.Errorf("Project(%v): %w", nt, err)
	}

	out := core.InducedSubgraph(g, func(v *core.Vertex) bool { return v.Type == nt }, false)
	for _, u := range out.VertexIDs() {
		partners, err := sharedNeighbors(g, u)
		if err != nil {
			return nil, fmt.Errorf("Project(%v): %w", nt, err)
		}
		for _, v := range partners {
			weight, err := w.Value(u, v)
			if err != nil {
				return nil, fmt.Errorf("Project(%v): %s–%s: %w", nt, u, v, err)
			}
			if _, err := out.AddEdge(u, v, weight); err != nil {
				return nil, fmt.Errorf("Project(%v): AddEdge(%s,%s): %w", nt, u, v, err)
			}
		}
	}

	return out, nil
}

// sharedNeighbors returns the vertices two hops from u that come later than u
// in insertion order, ordered by that position.
func sharedNeighbors(g *core.Graph, u string) ([]string, error) {
	self, err := g.IndexOf(u)
	if err != nil {
		return nil, err
	}
	hop1, err := g.NeighborIDs(u)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var out []string
	for _, x := range hop1 {
		hop2, err := g.NeighborIDs(x)
		if err != nil {
			return nil, err
		}
		for _, v := range hop2 {
			if v == u || seen[v] {
				continue
			}
			idx, err := g.IndexOf(v)
			if err != nil {
				return nil, err
			}
			if idx > self {
				seen[v] = true
				out = append(out, v)
			}
		}
	}

	return sortByIndex(g, out), nil
}

func sortByIndex(g *core.Graph, ids []string) []string {
	pos := make(map[string]int, len(ids))
	for _, id := range ids {
		pos[id], _ = g.IndexOf(id)
	}
	sort.Slice(ids, func(a, b int) bool { return pos[ids[a]] < pos[ids[b]] })

	return ids
}
