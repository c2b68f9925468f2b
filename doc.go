// Package textnet turns a tidy table of per-document term counts into a
// weighted bipartite document–term network and derives three analyses from it.
//
// What is in the box?
//
//	A small, thread-safe pipeline that brings together:
//		• TF-IDF weighting with a document-frequency floor (tfidf/)
//		• A labeled document × term weight matrix on gonum (matrix/)
//		• The bipartite graph, built in one ordered pass (builder/, core/)
//		• One-mode projections weighted by A·Aᵀ or Aᵀ·A (projection/)
//		• A joint doc+term partition via multiplex Leiden / bipartite CPM (community/)
//		• A crisp formal context via alpha-cut and reduction (fca/)
//		• Breadth-first traversal and connected components (bfs/)
//
// The Textnet type owns the weight matrix and the bipartite graph, both built
// once in New. Node types, the partition and the formal context are computed
// on first access and memoized; a mutex makes concurrent first access safe.
//
//	counts ──tfidf──▶ WeightMatrix ──builder──▶ BipartiteGraph
//	                      │   │                     │
//	                      │   └──── projection ◀────┤
//	                      │                         └──▶ community
//	                      └──▶ fca
//
// The community optimiser is randomized: use WithSeed for reproducible
// partitions. Tokenization is not part of textnet; callers supply counts.
//
//	go get github.com/katalvlaran/textnet
package textnet
