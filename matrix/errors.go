// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with method context
// via %w); tests check them with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when the flat data or mask length does not match rows×cols.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDuplicateLabel indicates a repeated row or column label.
	ErrDuplicateLabel = errors.New("matrix: duplicate label")

	// ErrEmptyLabel indicates an empty row or column label.
	ErrEmptyLabel = errors.New("matrix: empty label")

	// ErrUnknownLabel indicates a lookup by a label that is not present.
	ErrUnknownLabel = errors.New("matrix: unknown label")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative entry where weights must be non-negative.
	ErrNegative = errors.New("matrix: negative entry")

	// ErrBadAxis indicates an Axis value other than ByRow / ByColumn.
	ErrBadAxis = errors.New("matrix: unknown axis")
)
