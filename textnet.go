package textnet

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/textnet/bfs"
	"github.com/katalvlaran/textnet/builder"
	"github.com/katalvlaran/textnet/community"
	"github.com/katalvlaran/textnet/core"
	"github.com/katalvlaran/textnet/fca"
	"github.com/katalvlaran/textnet/matrix"
	"github.com/katalvlaran/textnet/projection"
	"github.com/katalvlaran/textnet/tfidf"
)

// Textnet is a document–term network built from term counts.
//
// The weight matrix and the bipartite graph are fixed at construction.
// NodeTypes, Clusters and Context are computed once, on first call, under a
// mutex. Every call returns a fresh copy of the memoized value, so callers may
// modify what they get back.
type Textnet struct {
	cfg     config
	rows    []tfidf.Weighted
	weights *matrix.Labeled
	graph   *core.Graph

	mu        sync.Mutex
	nodeTypes []bool
	partition *community.Partition
	context   *fca.Context
}

// New weighs counts, pivots them into the weight matrix and builds the
// bipartite graph. Failures from any stage are returned wrapped.
func New(counts []tfidf.Count, opts ...Option) (*Textnet, error) {
	cfg := newConfig(opts...)

	wm, rows, err := tfidf.Build(counts, cfg.weighting...)
	if err != nil {
		return nil, fmt.Errorf("textnet: %w", err)
	}
	g, err := builder.Bipartite(wm, cfg.docAttrs, cfg.building...)
	if err != nil {
		return nil, fmt.Errorf("textnet: %w", err)
	}

	return &Textnet{cfg: cfg, rows: rows, weights: wm, graph: g}, nil
}

// Weights returns the document × term weight matrix.
func (t *Textnet) Weights() *matrix.Labeled { return t.weights }

// Rows returns a copy of the retained weighted rows.
func (t *Textnet) Rows() []tfidf.Weighted {
	return append([]tfidf.Weighted(nil), t.rows...)
}

// Graph returns the bipartite graph. Treat it as read-only: the projections
// and the partition are derived from it.
func (t *Textnet) Graph() *core.Graph { return t.graph }

// NodeTypes reports, per vertex in graph order, whether it is a term.
func (t *Textnet) NodeTypes() []bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.nodeTypes == nil {
		types := t.graph.Types()
		t.nodeTypes = make([]bool, len(types))
		for i, nt := range types {
			t.nodeTypes[i] = nt == core.NodeTerm
		}
	}

	return append([]bool(nil), t.nodeTypes...)
}

// Project returns the one-mode graph over documents or terms.
// Any other node type yields projection.ErrInvalidNodeType.
func (t *Textnet) Project(nt core.NodeType) (*core.Graph, error) {
	return projection.Project(t.graph, t.weights, nt)
}

// Components returns the connected components of the bipartite graph, each
// in BFS order from its earliest vertex. The walk stops with ctx.Err() once
// ctx is done.
func (t *Textnet) Components(ctx context.Context) ([][]string, error) {
	return bfs.Components(t.graph, bfs.WithContext(ctx))
}

// Clusters returns a copy of the joint document+term partition. Errors are
// not memoized.
func (t *Textnet) Clusters() (*community.Partition, error) {
	p, err := t.clusters()
	if err != nil {
		return nil, err
	}

	return p.Clone(), nil
}

// clusters returns the memoized partition itself; callers must not modify it.
func (t *Textnet) clusters() (*community.Partition, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.partition == nil {
		p, err := t.cfg.partitioner.Partition(t.graph)
		if err != nil {
			return nil, fmt.Errorf("Clusters: %w", err)
		}
		t.partition = p
	}

	return t.partition, nil
}

// Context returns a copy of the formal context at the configured alpha.
func (t *Textnet) Context() (*fca.Context, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.context == nil {
		ctx, err := fca.Extract(t.weights, t.cfg.alpha)
		if err != nil {
			return nil, fmt.Errorf("Context: %w", err)
		}
		t.context = ctx
	}

	return t.context.Clone(), nil
}
