// SPDX-License-Identifier: MIT

// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and VertexIDs() return vertices in insertion order.
//
// Concurrency:
//   - Catalog protected by g.mu (write lock for mutation, read lock for queries).
package core

import "fmt"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, check presence. An existing vertex is left
//     untouched unless opts would change its NodeType (ErrTypeConflict).
//   - Stage 3: Allocate the Vertex, apply opts, register it at the end of the
//     insertion order and bootstrap its adjacency bucket.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrTypeConflict: if the vertex exists with a different, non-zero type.
//
// Complexity:
//   - Time O(len(opts)) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	// Build the candidate outside the lock; options are pure.
	v := &Vertex{ID: id, Attrs: make(map[string]interface{})}
	for _, opt := range opts {
		opt(v)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if existing, ok := g.vertices[id]; ok {
		if v.Type != NodeUntyped && existing.Type != NodeUntyped && existing.Type != v.Type {
			return fmt.Errorf("AddVertex(%s): %s vs %s: %w", id, existing.Type, v.Type, ErrTypeConflict)
		}
		if existing.Type == NodeUntyped {
			existing.Type = v.Type // vertex was auto-created by AddEdge
		}
		return nil
	}

	addVertexLocked(g, v)

	return nil
}

// addVertexLocked registers v; caller holds the write lock and has checked absence.
func addVertexLocked(g *Graph, v *Vertex) {
	g.vertices[v.ID] = v
	g.vindex[v.ID] = len(g.vorder)
	g.vorder = append(g.vorder, v.ID)
	g.adjacency[v.ID] = make(map[string]string)
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the live vertex record for id.
// The returned pointer is read-only by convention; use SetAttr to mutate attributes.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// SetAttr sets (or overwrites) the named attribute of vertex id.
// A nil value is stored as-is: the attribute is present but missing.
func (g *Graph) SetAttr(id, name string, value interface{}) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Attrs[name] = value

	return nil
}

// Vertices returns the vertex records in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Vertex, len(g.vorder))
	for i, id := range g.vorder {
		out[i] = g.vertices[id]
	}

	return out
}

// VertexIDs returns vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) VertexIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.vorder))
	copy(out, g.vorder)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vorder)
}

// Types returns the NodeType of every vertex, aligned with VertexIDs().
func (g *Graph) Types() []NodeType {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]NodeType, len(g.vorder))
	for i, id := range g.vorder {
		out[i] = g.vertices[id].Type
	}

	return out
}

// IndexOf returns the insertion position of id.
func (g *Graph) IndexOf(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.vindex[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return i, nil
}
