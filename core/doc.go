// Package core provides the in-memory, thread-safe, undirected weighted Graph
// shared by every textnet package.
//
// The Graph G = (V,E) is the common currency between the bipartite builder,
// the projector and the community optimiser:
//
//   - Typed vertices: every Vertex carries a NodeType tag (NodeDoc / NodeTerm)
//     and an open attribute bag (Attrs) for externally supplied data.
//   - Float weights: Edge.Weight is a float64 (TF-IDF weights, similarities).
//   - Simple graphs: no parallel edges, no self-loops.
//   - Insertion order: Vertices(), Edges() and NeighborIDs() enumerate in the
//     order items were inserted, so the row/column order of the weight matrix
//     survives graph construction.
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …).
//   - A single sync.RWMutex guards the whole catalog; queries take the read
//     lock, mutations the write lock.
//
// Vertex options (VertexOption):
//
//	– WithType(t NodeType)             tag the vertex class
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, opts ...VertexOption) error   // O(1), idempotent
//	HasVertex(id string) bool                          // O(1)
//	Vertex(id string) (*Vertex, error)                 // O(1)
//	SetAttr(id, name string, value any) error          // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(1)
//	HasEdge(from, to string) bool                                       // O(1)
//	EdgeBetween(from, to string) (*Edge, error)                          // O(1)
//
//	// Query
//	Vertices() []*Vertex, VertexIDs() []string    // O(V), insertion order
//	Edges() []*Edge                               // O(E), insertion order
//	NeighborIDs(id string) ([]string, error)      // O(d log d), insertion order
//	Types() []NodeType                            // O(V)
//
//	// Views
//	InducedSubgraph(g, keep, withEdges) *Graph    // O(V+E), attribute maps copied
//	EdgelessView(g) *Graph                        // O(V)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – NaN or ±Inf weight
//	ErrLoopNotAllowed      – self-loop (from == to)
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
//	ErrTypeConflict        – re-adding a vertex with a different NodeType
//	ErrUnknownNodeType     – ParseNodeType input outside {doc, term}
package core
