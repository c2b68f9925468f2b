// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
// Determinism:
//   - Both return results ordered by the neighbor's insertion position.
// Concurrency:
//   - Read lock only.

package core

import "sort"

// NeighborIDs returns the IDs adjacent to id, ordered by vertex insertion position.
// A self-loop lists id itself once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(bucket))
	for nbr := range bucket {
		out = append(out, nbr)
	}
	sort.Slice(out, func(i, j int) bool { return g.vindex[out[i]] < g.vindex[out[j]] })

	return out, nil
}

// Neighbors returns the edges incident to id, ordered like NeighborIDs.
// Returned pointers are live catalog edges; treat them as read-only.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	ids, err := g.NeighborIDs(id)
	if err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(ids))
	for i, nbr := range ids {
		out[i] = g.edges[g.adjacency[id][nbr]]
	}

	return out, nil
}
