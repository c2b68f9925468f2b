package community

import "errors"

var (
	// ErrNilGraph indicates a nil graph was passed.
	ErrNilGraph = errors.New("community: nil graph")

	// ErrNoLayers indicates Leiden was called without layers.
	ErrNoLayers = errors.New("community: no layers")

	// ErrLayerMismatch indicates layers whose vertex sets (or orders) differ.
	ErrLayerMismatch = errors.New("community: layers disagree on vertices")

	// ErrBadSizes indicates a size vector of wrong length or with a negative,
	// NaN or infinite entry.
	ErrBadSizes = errors.New("community: invalid vertex sizes")

	// ErrBadLayer indicates a NaN or infinite layer weight or resolution.
	ErrBadLayer = errors.New("community: invalid layer parameters")

	// ErrBadResolution indicates a bipartite resolution that is not a finite value > 0.
	ErrBadResolution = errors.New("community: resolution must be > 0")

	// ErrUntypedVertex indicates a vertex that is neither a document nor a term.
	ErrUntypedVertex = errors.New("community: vertex is neither doc nor term")
)
