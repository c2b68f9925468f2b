// Package community partitions a graph with a multiplex Leiden optimiser over
// Constant Potts Model layers.
//
// A Layer is a graph over a shared vertex set with per-vertex sizes, a layer
// weight λ and a resolution γ. The optimiser maximises
//
//	Q = Σ_l λ_l Σ_c ( w^l_c − γ_l · P^l_c )
//
// where w^l_c is the internal edge weight of cluster c in layer l and P^l_c
// the sum of size products over distinct vertex pairs of c.
//
// BipartiteLayers derives the three layers of the bipartite CPM from the
// vertex types of a document–term graph: the graph itself (λ = +1, every size
// 1) and two edgeless exclusion layers (λ = −1) whose sizes count documents
// or terms only. With a shared γ this reduces to
//
//	Q = Σ_c ( w_c − γ · docs_c · terms_c )
//
// so same-class clusters cost nothing and cross-class clusters pay for every
// doc–term pair they contain.
//
// Nondeterminism: the optimiser visits vertices in random order and picks
// refinement targets at random. Without WithSeed it seeds itself from the
// clock, so two runs on the same input may return different partitions of
// comparable quality. Pass WithSeed for reproducible results.
//
// Edge weights are ignored by default (every edge counts 1); WithEdgeWeights
// makes the optimiser use them.
package community
