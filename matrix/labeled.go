// SPDX-License-Identifier: MIT
// Package: matrix
//
// labeled.go: Labeled: a row/column-labeled dense matrix backed by gonum.
//
// Contract:
//   • Row labels and column labels are non-empty and unique per axis.
//   • Values are finite (NaN/±Inf rejected at construction).
//   • The support mask marks cells observed in the source table; when omitted,
//     a cell is supported iff its value is non-zero.
//   • Zero rows or zero columns are legal: the gonum backing store is nil and
//     every read behaves as an all-zero matrix.
//
// Determinism:
//   • EachCell visits supported cells in row-major order (i asc, then j asc).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Labeled is an immutable document × term matrix with labeled axes.
type Labeled struct {
	rows, cols     []string
	rowIdx, colIdx map[string]int
	data           *mat.Dense // nil when either dimension is zero
	support        []bool     // row-major, len == len(rows)*len(cols)
}

// New builds a Labeled matrix from row labels, column labels and row-major data.
// support may be nil, in which case non-zero cells are supported.
//
// Errors:
//   - ErrEmptyLabel / ErrDuplicateLabel on bad labels.
//   - ErrBadShape if len(data) or len(support) differs from rows×cols.
//   - ErrNaNInf on non-finite values.
//
// Complexity: O(r·c) time and memory (data is copied).
func New(rows, cols []string, data []float64, support []bool) (*Labeled, error) {
	rowIdx, err := indexLabels("rows", rows)
	if err != nil {
		return nil, err
	}
	colIdx, err := indexLabels("cols", cols)
	if err != nil {
		return nil, err
	}

	r, c := len(rows), len(cols)
	if len(data) != r*c {
		return nil, fmt.Errorf("New: data has %d values for %dx%d: %w", len(data), r, c, ErrBadShape)
	}
	if support != nil && len(support) != r*c {
		return nil, fmt.Errorf("New: support has %d cells for %dx%d: %w", len(support), r, c, ErrBadShape)
	}

	m := &Labeled{
		rows:    append([]string(nil), rows...),
		cols:    append([]string(nil), cols...),
		rowIdx:  rowIdx,
		colIdx:  colIdx,
		support: make([]bool, r*c),
	}
	for k, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("New: cell (%d,%d): %w", k/c, k%c, ErrNaNInf)
		}
		if support != nil {
			m.support[k] = support[k]
		} else {
			m.support[k] = v != 0
		}
	}
	if r > 0 && c > 0 {
		// mat.NewDense aliases its slice; copy to keep the caller's buffer independent.
		m.data = mat.NewDense(r, c, append([]float64(nil), data...))
	}

	return m, nil
}

// indexLabels validates labels and returns label → position.
func indexLabels(axis string, labels []string) (map[string]int, error) {
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("New: %s[%d]: %w", axis, i, ErrEmptyLabel)
		}
		if _, dup := idx[l]; dup {
			return nil, fmt.Errorf("New: %s %q: %w", axis, l, ErrDuplicateLabel)
		}
		idx[l] = i
	}

	return idx, nil
}

// Dims returns the number of rows and columns.
func (m *Labeled) Dims() (r, c int) {
	return len(m.rows), len(m.cols)
}

// Rows returns a copy of the row labels.
func (m *Labeled) Rows() []string {
	return append([]string(nil), m.rows...)
}

// Cols returns a copy of the column labels.
func (m *Labeled) Cols() []string {
	return append([]string(nil), m.cols...)
}

// RowIndex returns the position of a row label.
func (m *Labeled) RowIndex(label string) (int, bool) {
	i, ok := m.rowIdx[label]
	return i, ok
}

// ColIndex returns the position of a column label.
func (m *Labeled) ColIndex(label string) (int, bool) {
	j, ok := m.colIdx[label]
	return j, ok
}

// At returns the value at (i, j).
func (m *Labeled) At(i, j int) (float64, error) {
	if err := m.bounds(i, j); err != nil {
		return 0, err
	}

	return m.data.At(i, j), nil
}

// Value returns the value at (row, col) addressed by labels.
func (m *Labeled) Value(row, col string) (float64, error) {
	i, ok := m.rowIdx[row]
	if !ok {
		return 0, fmt.Errorf("Value: row %q: %w", row, ErrUnknownLabel)
	}
	j, ok := m.colIdx[col]
	if !ok {
		return 0, fmt.Errorf("Value: col %q: %w", col, ErrUnknownLabel)
	}

	return m.data.At(i, j), nil
}

// Supported reports whether cell (i, j) was observed in the source table.
func (m *Labeled) Supported(i, j int) (bool, error) {
	if err := m.bounds(i, j); err != nil {
		return false, err
	}

	return m.support[i*len(m.cols)+j], nil
}

func (m *Labeled) bounds(i, j int) error {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= len(m.cols) {
		return fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, len(m.rows), len(m.cols), ErrOutOfRange)
	}

	return nil
}

// EachCell calls fn for every cell selected by nonzero, in row-major order:
// with nonzero=false the support mask selects cells, with nonzero=true any
// non-zero value does. The scan stops at the first error returned by fn.
//
// Complexity: O(r·c).
func (m *Labeled) EachCell(nonzero bool, fn func(i, j int, w float64) error) error {
	c := len(m.cols)
	for i := range m.rows {
		for j := 0; j < c; j++ {
			w := m.data.At(i, j)
			if nonzero && w == 0 || !nonzero && !m.support[i*c+j] {
				continue
			}
			if err := fn(i, j, w); err != nil {
				return err
			}
		}
	}

	return nil
}

// Dense returns a copy of the backing gonum matrix, or nil for an empty shape.
func (m *Labeled) Dense() *mat.Dense {
	if m.data == nil {
		return nil
	}

	return mat.DenseCopyOf(m.data)
}

// Validate checks the non-negativity precondition of a weight matrix.
func (m *Labeled) Validate() error {
	var bad error
	_ = m.EachCell(true, func(i, j int, w float64) error {
		if w < 0 {
			bad = fmt.Errorf("Validate: (%s,%s)=%g: %w", m.rows[i], m.cols[j], w, ErrNegative)
		}
		return bad
	})

	return bad
}

// String implements fmt.Stringer for debugging.
func (m *Labeled) String() string {
	if m.data == nil {
		return fmt.Sprintf("%dx%d []", len(m.rows), len(m.cols))
	}

	return fmt.Sprintf("rows=%v cols=%v\n%v", m.rows, m.cols, mat.Formatted(m.data))
}
