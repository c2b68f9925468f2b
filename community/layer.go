package community

import (
	"fmt"
	"math"

	"github.com/katalvlaran/textnet/core"
)

// Layer is one graph of a multiplex network.
type Layer struct {
	// Graph supplies the vertices and edges. All layers of one run must list
	// the same vertex IDs in the same insertion order.
	Graph *core.Graph
	// Sizes holds one size per vertex, aligned with Graph.VertexIDs().
	// Nil means every vertex has size 1.
	Sizes []float64
	// Weight is the layer weight λ; negative values penalise the layer.
	Weight float64
	// Resolution is the CPM resolution γ of the layer.
	Resolution float64
}

// BipartiteLayers returns the three layers of the bipartite CPM for g:
// g itself with λ = +1, then the document and term exclusion layers with
// λ = −1. Every vertex of g must be typed NodeDoc or NodeTerm.
func BipartiteLayers(g *core.Graph, resolution float64) ([]Layer, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	types := g.Types()
	docs := make([]float64, len(types))
	terms := make([]float64, len(types))
	for i, t := range types {
		switch t {
		case core.NodeDoc:
			docs[i] = 1
		case core.NodeTerm:
			terms[i] = 1
		default:
			return nil, fmt.Errorf("BipartiteLayers: vertex %d: %w", i, ErrUntypedVertex)
		}
	}
	empty := core.EdgelessView(g)

	return []Layer{
		{Graph: g, Weight: 1, Resolution: resolution},
		{Graph: empty, Sizes: docs, Weight: -1, Resolution: resolution},
		{Graph: empty, Sizes: terms, Weight: -1, Resolution: resolution},
	}, nil
}

type layerParam struct {
	weight, gamma float64
}

type arc struct {
	to int
	w  float64
}

type edge struct {
	u, v int
	w    float64
}

// level is the multiplex graph the optimiser works on: the original vertices
// or an aggregate of them.
type level struct {
	n    int
	arcs [][][]arc   // [layer][node], both directions, no self arcs
	size [][]float64 // [layer][node]
}

// network is the validated input of one Leiden run.
type network struct {
	nodes  []string
	params []layerParam
	base   *level
	edges  [][]edge // [layer], each edge once, self-loops included
}

func newNetwork(layers []Layer, weighted bool) (*network, error) {
	if len(layers) == 0 {
		return nil, ErrNoLayers
	}
	for l, ly := range layers {
		if ly.Graph == nil {
			return nil, fmt.Errorf("layer %d: %w", l, ErrNilGraph)
		}
	}

	nodes := layers[0].Graph.VertexIDs()
	n := len(nodes)
	net := &network{
		nodes:  nodes,
		params: make([]layerParam, len(layers)),
		base: &level{
			n:    n,
			arcs: make([][][]arc, len(layers)),
			size: make([][]float64, len(layers)),
		},
		edges: make([][]edge, len(layers)),
	}

	for l, ly := range layers {
		if !finite(ly.Weight) || !finite(ly.Resolution) {
			return nil, fmt.Errorf("layer %d: λ=%g γ=%g: %w", l, ly.Weight, ly.Resolution, ErrBadLayer)
		}
		net.params[l] = layerParam{weight: ly.Weight, gamma: ly.Resolution}

		ids := ly.Graph.VertexIDs()
		if len(ids) != n {
			return nil, fmt.Errorf("layer %d: %d vertices, want %d: %w", l, len(ids), n, ErrLayerMismatch)
		}
		for i := range ids {
			if ids[i] != nodes[i] {
				return nil, fmt.Errorf("layer %d: vertex %d is %q, want %q: %w", l, i, ids[i], nodes[i], ErrLayerMismatch)
			}
		}

		sizes, err := layerSizes(ly.Sizes, n)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", l, err)
		}
		net.base.size[l] = sizes

		arcs := make([][]arc, n)
		for _, e := range ly.Graph.Edges() {
			u, err := ly.Graph.IndexOf(e.From)
			if err != nil {
				return nil, fmt.Errorf("layer %d: %w", l, err)
			}
			v, err := ly.Graph.IndexOf(e.To)
			if err != nil {
				return nil, fmt.Errorf("layer %d: %w", l, err)
			}
			w := 1.0
			if weighted {
				w = e.Weight
			}
			net.edges[l] = append(net.edges[l], edge{u: u, v: v, w: w})
			if u != v {
				arcs[u] = append(arcs[u], arc{to: v, w: w})
				arcs[v] = append(arcs[v], arc{to: u, w: w})
			}
		}
		net.base.arcs[l] = arcs
	}

	return net, nil
}

func layerSizes(sizes []float64, n int) ([]float64, error) {
	out := make([]float64, n)
	if sizes == nil {
		for i := range out {
			out[i] = 1
		}
		return out, nil
	}
	if len(sizes) != n {
		return nil, fmt.Errorf("%d sizes for %d vertices: %w", len(sizes), n, ErrBadSizes)
	}
	for i, s := range sizes {
		if !finite(s) || s < 0 {
			return nil, fmt.Errorf("size[%d]=%g: %w", i, s, ErrBadSizes)
		}
		out[i] = s
	}

	return out, nil
}

// quality evaluates Q for a membership of the original vertices.
func (net *network) quality(memb []int) float64 {
	k := 0
	for _, c := range memb {
		if c+1 > k {
			k = c + 1
		}
	}

	q := 0.0
	for l, p := range net.params {
		internal := 0.0
		for _, e := range net.edges[l] {
			if memb[e.u] == memb[e.v] {
				internal += e.w
			}
		}
		sum := make([]float64, k)
		sq := make([]float64, k)
		for v, c := range memb {
			s := net.base.size[l][v]
			sum[c] += s
			sq[c] += s * s
		}
		pairs := 0.0
		for c := range sum {
			pairs += (sum[c]*sum[c] - sq[c]) / 2
		}
		q += p.weight * (internal - p.gamma*pairs)
	}

	return q
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
