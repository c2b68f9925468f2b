// Package bfs splits a core.Graph into connected components by breadth-first
// search.
//
// Edge weights are ignored except through the Follow filter. Neighbors are
// expanded in vertex insertion order, so results are deterministic.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/textnet/core"
)

// walker encapsulates mutable BFS state. visited is shared across walks so
// every vertex lands in exactly one component.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []string
	visited map[string]bool
}

// Components returns the connected components of g. Components are ordered by
// their first vertex in insertion order; members follow BFS visit order.
// The Follow filter applies, so e.g. WithinCommunity yields the connected
// pieces of each cluster.
//
// Returns ErrGraphNil, ErrNeighbors or the context error.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[string]bool, g.VertexCount()),
	}

	out := [][]string{}
	for _, id := range g.VertexIDs() {
		if w.visited[id] {
			continue
		}
		order, err := w.walk(id)
		if err != nil {
			return nil, err
		}
		out = append(out, order)
	}

	return out, nil
}

// walk explores from start and returns the visit order.
func (w *walker) walk(start string) ([]string, error) {
	order := []string{}
	w.queue = append(w.queue[:0], start)
	w.visited[start] = true

	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		order = append(order, id)

		edges, err := w.graph.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, id, err)
		}
		for _, e := range edges {
			nbr := e.Other(id)
			if w.visited[nbr] || !w.opts.Follow(id, nbr, e.Weight) {
				continue
			}
			w.visited[nbr] = true
			w.queue = append(w.queue, nbr)
		}
	}

	return order, nil
}
