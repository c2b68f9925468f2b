// Package matrix provides Labeled, the document × term weight matrix shared by
// the textnet pipeline.
//
// A Labeled matrix is a dense gonum mat.Dense with unique row labels
// (documents) and unique column labels (terms), plus a support mask recording
// which cells were observed in the source table. It is the single source of
// truth from which the bipartite graph, the one-mode projections and the formal
// context are all derived:
//
//   - EachCell scans supported cells in row-major order (graph construction).
//   - Gram computes A·Aᵀ (ByRow) or Aᵀ·A (ByColumn) as a symmetric matrix.
//   - AlphaCut binarizes the matrix at a threshold (fuzzy → crisp relation).
//
// Labeled values are immutable after construction; every accessor copies or
// reads. Empty shapes (zero rows or zero columns) are legal and behave as
// all-zero matrices.
package matrix
