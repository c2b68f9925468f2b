// Package builder constructs the weighted bipartite document–term graph from a
// weight matrix, in the functional-options style used across textnet.
//
// The package offers:
//
//   - BuildGraph: one orchestrator that creates a core.Graph, resolves the
//     builderConfig from BuilderOption values and runs Constructors in order.
//   - Constructors:
//     – Incidence(wm):       doc vertices (row order), term vertices (column
//     order) and one doc–term edge per selected cell.
//     – DocAttributes(a):    copies external document attributes onto doc
//     vertices; missing documents get a nil value.
//   - Bipartite(wm, attrs, opts...): the two constructors composed.
//   - Options:
//     – WithNonzeroEdges():  derive edges from non-zero weights instead of the
//     support mask (the default keeps retained zero-weight pairs).
//
// Guarantees:
//
//   - Every edge joins a NodeDoc and a NodeTerm vertex.
//   - Edges and their weights come out of a single row-major scan of the matrix
//     as (source, target, weight) triples; edge IDs e1, e2, ... follow that scan.
//   - Same matrix and options ⇒ identical graph, including IDs and order.
//   - Runtime errors are sentinels wrapped with %w; option constructors panic
//     on meaningless values.
package builder
