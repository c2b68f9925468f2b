package community

import (
	"fmt"
	"math"

	"github.com/katalvlaran/textnet/core"
)

// Partitioner produces one cluster assignment covering every vertex of g.
// Implementations may be randomized; see the package documentation.
type Partitioner interface {
	Partition(g *core.Graph) (*Partition, error)
}

// BipartiteCPM is the default Partitioner: multiplex Leiden over the
// bipartite CPM layers of a document–term graph.
type BipartiteCPM struct {
	opts []Option
}

// NewBipartiteCPM returns a BipartiteCPM with the given options
// (resolution 0.5 and 100 passes unless overridden).
func NewBipartiteCPM(opts ...Option) *BipartiteCPM {
	return &BipartiteCPM{opts: append([]Option(nil), opts...)}
}

// Partition clusters documents and terms jointly.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrBadResolution if the resolution is not a finite value > 0.
//   - ErrUntypedVertex if a vertex is neither a document nor a term.
func (b *BipartiteCPM) Partition(g *core.Graph) (*Partition, error) {
	cfg := newConfig(b.opts...)
	if !(cfg.resolution > 0) || math.IsInf(cfg.resolution, 0) {
		return nil, fmt.Errorf("Partition: γ=%g: %w", cfg.resolution, ErrBadResolution)
	}
	layers, err := BipartiteLayers(g, cfg.resolution)
	if err != nil {
		return nil, fmt.Errorf("Partition: %w", err)
	}
	p, err := Leiden(layers, b.opts...)
	if err != nil {
		return nil, fmt.Errorf("Partition: %w", err)
	}

	return p, nil
}
