package textnet

import (
	"fmt"

	"github.com/katalvlaran/textnet/core"
)

// Node is the visualization view of one vertex.
type Node struct {
	ID      string                 `json:"id"`
	Type    core.NodeType          `json:"type"`
	Cluster int                    `json:"cluster"`
	Attrs   map[string]interface{} `json:"attrs,omitempty"`
}

// Link is the visualization view of one edge.
type Link struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// Network is everything a renderer needs: ids, classes, clusters, weights.
type Network struct {
	Nodes []Node `json:"nodes"`
	Edges []Link `json:"edges"`
}

// Export flattens the bipartite graph together with its partition.
// It triggers Clusters on first use.
func (t *Textnet) Export() (*Network, error) {
	p, err := t.clusters()
	if err != nil {
		return nil, fmt.Errorf("Export: %w", err)
	}

	return ExportGraph(t.graph, p.Of), nil
}

// ExportGraph flattens any graph, e.g. a projection; every node gets its
// cluster from the lookup, or -1 when the lookup has none (or is nil).
func ExportGraph(g *core.Graph, cluster func(id string) (int, bool)) *Network {
	out := &Network{Nodes: []Node{}, Edges: []Link{}}
	for _, v := range g.Vertices() {
		c := -1
		if cluster != nil {
			if id, ok := cluster(v.ID); ok {
				c = id
			}
		}
		var attrs map[string]interface{}
		if len(v.Attrs) > 0 {
			attrs = make(map[string]interface{}, len(v.Attrs))
			for k, x := range v.Attrs {
				attrs[k] = x
			}
		}
		out.Nodes = append(out.Nodes, Node{ID: v.ID, Type: v.Type, Cluster: c, Attrs: attrs})
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, Link{Source: e.From, Target: e.To, Weight: e.Weight})
	}

	return out
}
