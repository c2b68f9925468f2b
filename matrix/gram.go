// SPDX-License-Identifier: MIT
// Package: matrix
//
// gram.go: Gram products and the alpha-cut of a Labeled matrix.
//
// Contract:
//   • Gram(ByRow) = A·Aᵀ over row labels, Gram(ByColumn) = Aᵀ·A over column labels.
//   • The result is a gonum SymDense, so W[a,b] == W[b,a] holds by construction.
//   • AlphaCut never mutates the receiver.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Axis selects which labeled dimension a Gram product runs over.
type Axis int

const (
	// ByRow yields the row × row product A·Aᵀ (document similarity).
	ByRow Axis = iota
	// ByColumn yields the column × column product Aᵀ·A (term co-occurrence).
	ByColumn
)

// String returns "rows" or "cols".
func (a Axis) String() string {
	switch a {
	case ByRow:
		return "rows"
	case ByColumn:
		return "cols"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Symmetric is a labeled symmetric matrix produced by Gram.
type Symmetric struct {
	labels []string
	index  map[string]int
	data   *mat.SymDense // nil when len(labels) == 0
}

// Gram computes the symmetric product of the matrix with its transpose.
//
// Implementation:
//   - Stage 1: Pick the labels for axis (ErrBadAxis otherwise).
//   - Stage 2: SymOuterK(1, A) for rows, SymOuterK(1, Aᵀ) for columns.
//     A matrix with labels but an empty inner dimension yields all zeros.
//
// Complexity: O(n²·k) where n is the axis length and k the other dimension.
func (m *Labeled) Gram(axis Axis) (*Symmetric, error) {
	var labels []string
	var idx map[string]int
	switch axis {
	case ByRow:
		labels, idx = m.rows, m.rowIdx
	case ByColumn:
		labels, idx = m.cols, m.colIdx
	default:
		return nil, fmt.Errorf("Gram(%v): %w", axis, ErrBadAxis)
	}

	s := &Symmetric{
		labels: append([]string(nil), labels...),
		index:  idx,
	}
	n := len(labels)
	if n == 0 {
		return s, nil
	}
	if m.data == nil {
		s.data = mat.NewSymDense(n, nil)
		return s, nil
	}

	var sym mat.SymDense
	if axis == ByRow {
		sym.SymOuterK(1, m.data)
	} else {
		sym.SymOuterK(1, m.data.T())
	}
	s.data = &sym

	return s, nil
}

// Len returns the order of the matrix.
func (s *Symmetric) Len() int { return len(s.labels) }

// Labels returns a copy of the labels.
func (s *Symmetric) Labels() []string { return append([]string(nil), s.labels...) }

// At returns W[i,j].
func (s *Symmetric) At(i, j int) (float64, error) {
	n := len(s.labels)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("At(%d,%d) in %dx%d: %w", i, j, n, n, ErrOutOfRange)
	}

	return s.data.At(i, j), nil
}

// Value returns W[a,b] addressed by labels.
func (s *Symmetric) Value(a, b string) (float64, error) {
	i, ok := s.index[a]
	if !ok {
		return 0, fmt.Errorf("Value: %q: %w", a, ErrUnknownLabel)
	}
	j, ok := s.index[b]
	if !ok {
		return 0, fmt.Errorf("Value: %q: %w", b, ErrUnknownLabel)
	}

	return s.data.At(i, j), nil
}

// AlphaCut binarizes the matrix: cell (i, j) is true iff its value is ≥ alpha.
// The result has one slice per row, each of length Cols.
func (m *Labeled) AlphaCut(alpha float64) [][]bool {
	r, c := len(m.rows), len(m.cols)
	out := make([][]bool, r)
	for i := 0; i < r; i++ {
		out[i] = make([]bool, c)
		for j := 0; j < c; j++ {
			out[i][j] = m.data.At(i, j) >= alpha
		}
	}

	return out
}
