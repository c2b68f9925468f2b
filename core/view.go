// SPDX-License-Identifier: MIT
// File: view.go
// Role: Non-mutating graph views (cloning topology with altered properties).
// Determinism:
//   - Preserves vertex IDs, types, insertion order and edge IDs.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.

package core

import "sync/atomic"

// EdgelessView returns a new Graph with the same vertices (IDs, types, copied
// attribute bags, insertion order) and no edges. The input graph is not mutated.
//
// Complexity: O(V). Concurrency: read lock only on source.
func EdgelessView(g *Graph) *Graph {
	return InducedSubgraph(g, func(*Vertex) bool { return true }, false)
}

// InducedSubgraph returns a new Graph over the vertices accepted by keep.
// With withEdges, every edge whose endpoints are both kept is copied with its
// ID and weight; otherwise the view carries vertices only.
// Each kept vertex gets its own copy of the attribute map, so writes through
// the view never reach g. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func InducedSubgraph(g *Graph, keep func(*Vertex) bool, withEdges bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()

	for _, id := range g.vorder {
		v := g.vertices[id]
		if keep(v) {
			attrs := make(map[string]interface{}, len(v.Attrs))
			for k, x := range v.Attrs {
				attrs[k] = x
			}
			addVertexLocked(out, &Vertex{ID: v.ID, Type: v.Type, Attrs: attrs})
		}
	}
	if !withEdges {
		return out
	}

	for _, eid := range g.eorder {
		e := g.edges[eid]
		_, okFrom := out.vertices[e.From]
		_, okTo := out.vertices[e.To]
		if !okFrom || !okTo {
			continue
		}
		out.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight}
		out.eorder = append(out.eorder, eid)
		out.adjacency[e.From][e.To] = eid
		out.adjacency[e.To][e.From] = eid
	}
	// Carry over the edge ID counter so future AddEdge() calls cannot collide with copied IDs.
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	return out
}
