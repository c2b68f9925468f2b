// SPDX-License-Identifier: MIT
// Package: textnet/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrNilMatrix indicates a constructor received a nil weight matrix.
var ErrNilMatrix = errors.New("builder: nil weight matrix")

// ErrIDCollision indicates a label used both as a document and as a term.
// Document and term vertices share one ID space, so such input cannot be
// represented as a bipartite graph.
var ErrIDCollision = errors.New("builder: document and term share an id")

// ErrConstructFailed indicates the orchestrator could not run a constructor
// (e.g., a nil Constructor was passed).
var ErrConstructFailed = errors.New("builder: construction failed")
