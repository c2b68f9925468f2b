package community_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/textnet/bfs"
	"github.com/katalvlaran/textnet/community"
	"github.com/katalvlaran/textnet/core"
)

// bipartite builds a typed graph: docs first, then terms, then edges.
func bipartite(t *testing.T, docs, terms []string, edges [][2]string, w float64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, d := range docs {
		require.NoError(t, g.AddVertex(d, core.WithType(core.NodeDoc)))
	}
	for _, term := range terms {
		require.NoError(t, g.AddVertex(term, core.WithType(core.NodeTerm)))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], w)
		require.NoError(t, err)
	}

	return g
}

// twoBicliques is K2,2 ∪ K2,2 plus an isolated document.
func twoBicliques(t *testing.T, w float64) *core.Graph {
	return bipartite(t,
		[]string{"d1", "d2", "d3", "d4", "d5"},
		[]string{"t1", "t2", "t3", "t4"},
		[][2]string{
			{"d1", "t1"}, {"d1", "t2"}, {"d2", "t1"}, {"d2", "t2"},
			{"d3", "t3"}, {"d3", "t4"}, {"d4", "t3"}, {"d4", "t4"},
		}, w)
}

// bipartiteQuality recomputes Σ_c (w_c − γ·docs_c·terms_c) with unit weights.
func bipartiteQuality(t *testing.T, g *core.Graph, p *community.Partition, gamma float64) float64 {
	t.Helper()
	k := p.NumClusters()
	internal := make([]float64, k)
	docs := make([]float64, k)
	terms := make([]float64, k)
	for _, v := range g.Vertices() {
		c, ok := p.Of(v.ID)
		require.True(t, ok)
		if v.Type == core.NodeDoc {
			docs[c]++
		} else {
			terms[c]++
		}
	}
	for _, e := range g.Edges() {
		a, _ := p.Of(e.From)
		b, _ := p.Of(e.To)
		if a == b {
			internal[a]++
		}
	}
	q := 0.0
	for c := 0; c < k; c++ {
		q += internal[c] - gamma*docs[c]*terms[c]
	}

	return q
}

func TestBipartiteCPM_FindsBicliques(t *testing.T) {
	g := twoBicliques(t, 1)
	for seed := int64(1); seed <= 6; seed++ {
		p, err := community.NewBipartiteCPM(community.WithSeed(seed)).Partition(g)
		require.NoError(t, err)

		assert.Equal(t, g.VertexIDs(), p.Nodes)
		assert.Equal(t, 3, p.NumClusters(), "seed %d", seed)
		assert.InDelta(t, 4.0, p.Quality, 1e-9, "seed %d", seed)

		assert.Equal(t, [][]string{
			{"d1", "d2", "t1", "t2"},
			{"d3", "d4", "t3", "t4"},
			{"d5"},
		}, p.Communities(), "seed %d", seed)

		pieces, err := bfs.Components(g, bfs.WithinCommunity(p.Of))
		require.NoError(t, err)
		assert.Len(t, pieces, p.NumClusters(), "communities are connected")
	}
}

func TestBipartiteCPM_QualityMatchesDefinition(t *testing.T) {
	g := bipartite(t,
		[]string{"a", "b", "c", "d"},
		[]string{"w", "x", "y", "z"},
		[][2]string{
			{"a", "w"}, {"a", "x"}, {"b", "x"}, {"b", "y"},
			{"c", "y"}, {"c", "z"}, {"d", "z"}, {"d", "w"}, {"a", "y"},
		}, 1)

	for _, gamma := range []float64{0.2, 0.5, 0.9} {
		p, err := community.NewBipartiteCPM(
			community.WithSeed(7),
			community.WithResolution(gamma),
		).Partition(g)
		require.NoError(t, err)
		assert.InDelta(t, bipartiteQuality(t, g, p, gamma), p.Quality, 1e-9, "γ=%g", gamma)
		assert.GreaterOrEqual(t, p.Quality, 0.0, "never worse than singletons")
		assert.Len(t, p.Membership, g.VertexCount())
		for _, c := range p.Membership {
			assert.True(t, c >= 0 && c < p.NumClusters())
		}
	}
}

func TestBipartiteCPM_MorePassesNeverLoseQuality(t *testing.T) {
	g := bipartite(t,
		[]string{"a", "b", "c", "d", "e"},
		[]string{"v", "w", "x", "y", "z"},
		[][2]string{
			{"a", "v"}, {"a", "w"}, {"b", "w"}, {"b", "x"}, {"c", "x"},
			{"c", "y"}, {"d", "y"}, {"d", "z"}, {"e", "z"}, {"e", "v"},
			{"a", "x"}, {"c", "z"},
		}, 1)

	for seed := int64(1); seed <= 8; seed++ {
		one, err := community.NewBipartiteCPM(
			community.WithSeed(seed),
			community.WithIterations(1),
		).Partition(g)
		require.NoError(t, err)
		many, err := community.NewBipartiteCPM(
			community.WithSeed(seed),
			community.WithIterations(50),
		).Partition(g)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, many.Quality, one.Quality-1e-9, "seed %d", seed)
		assert.InDelta(t, bipartiteQuality(t, g, many, community.DefaultResolution), many.Quality, 1e-9, "seed %d", seed)
	}
}

func TestBipartiteCPM_SeedIsReproducible(t *testing.T) {
	g := twoBicliques(t, 1)
	a, err := community.NewBipartiteCPM(community.WithSeed(42)).Partition(g)
	require.NoError(t, err)
	b, err := community.NewBipartiteCPM(community.WithSeed(42)).Partition(g)
	require.NoError(t, err)
	assert.Equal(t, a.Membership, b.Membership)
}

func TestBipartiteCPM_EdgeWeights(t *testing.T) {
	g := twoBicliques(t, 0.1)

	unit, err := community.NewBipartiteCPM(community.WithSeed(3)).Partition(g)
	require.NoError(t, err)
	assert.Equal(t, 3, unit.NumClusters(), "weights ignored by default")

	weighted, err := community.NewBipartiteCPM(community.WithSeed(3), community.WithEdgeWeights()).Partition(g)
	require.NoError(t, err)
	assert.Equal(t, g.VertexCount(), weighted.NumClusters(), "0.1 never pays for γ=0.5")
	assert.InDelta(t, 0.0, weighted.Quality, 1e-12)
}

func TestBipartiteCPM_Empty(t *testing.T) {
	p, err := community.NewBipartiteCPM().Partition(core.NewGraph())
	require.NoError(t, err)
	assert.Zero(t, p.NumClusters())
	assert.Empty(t, p.Communities())
	_, ok := p.Of("x")
	assert.False(t, ok)
}

func TestBipartiteCPM_Errors(t *testing.T) {
	g := twoBicliques(t, 1)
	for _, gamma := range []float64{0, -1} {
		_, err := community.NewBipartiteCPM(community.WithResolution(gamma)).Partition(g)
		assert.ErrorIs(t, err, community.ErrBadResolution)
	}

	_, err := community.NewBipartiteCPM().Partition(nil)
	assert.ErrorIs(t, err, community.ErrNilGraph)

	untyped := core.NewGraph()
	_, err = untyped.AddEdge("a", "b", 1)
	require.NoError(t, err)
	_, err = community.NewBipartiteCPM().Partition(untyped)
	assert.ErrorIs(t, err, community.ErrUntypedVertex)

	assert.Panics(t, func() { community.WithIterations(0) })
}

func TestLeiden_SingleLayerCPM(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"a1", "a2"}, {"a2", "a3"}, {"a1", "a3"},
		{"b1", "b2"}, {"b2", "b3"}, {"b1", "b3"},
		{"a3", "b1"},
	} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	p, err := community.Leiden(
		[]community.Layer{{Graph: g, Weight: 1, Resolution: 0.5}},
		community.WithSeed(11),
	)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, p.Quality, 1e-9)
	a, _ := p.Of("a1")
	b, _ := p.Of("b1")
	assert.NotEqual(t, a, b)
	for _, id := range []string{"a2", "a3"} {
		c, _ := p.Of(id)
		assert.Equal(t, a, c)
	}
	for _, id := range []string{"b2", "b3"} {
		c, _ := p.Of(id)
		assert.Equal(t, b, c)
	}
}

func TestLeiden_LayerValidation(t *testing.T) {
	_, err := community.Leiden(nil)
	assert.ErrorIs(t, err, community.ErrNoLayers)

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	other := core.NewGraph()
	require.NoError(t, other.AddVertex("b"))
	require.NoError(t, other.AddVertex("a"))

	_, err = community.Leiden([]community.Layer{
		{Graph: g, Weight: 1, Resolution: 1},
		{Graph: other, Weight: 1, Resolution: 1},
	})
	assert.ErrorIs(t, err, community.ErrLayerMismatch)

	_, err = community.Leiden([]community.Layer{{Graph: g, Sizes: []float64{1}, Weight: 1, Resolution: 1}})
	assert.ErrorIs(t, err, community.ErrBadSizes)

	_, err = community.Leiden([]community.Layer{{Graph: g, Sizes: []float64{1, -2}, Weight: 1, Resolution: 1}})
	assert.ErrorIs(t, err, community.ErrBadSizes)

	_, err = community.Leiden([]community.Layer{{Graph: nil}})
	assert.ErrorIs(t, err, community.ErrNilGraph)
}

func TestBipartiteLayers(t *testing.T) {
	g := twoBicliques(t, 1)
	layers, err := community.BipartiteLayers(g, 0.5)
	require.NoError(t, err)
	require.Len(t, layers, 3)

	assert.Same(t, g, layers[0].Graph)
	assert.Equal(t, []float64{1, -1, -1}, []float64{layers[0].Weight, layers[1].Weight, layers[2].Weight})
	assert.Zero(t, layers[1].Graph.EdgeCount())
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 0, 0, 0, 0}, layers[1].Sizes)
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 1, 1, 1, 1}, layers[2].Sizes)
	for _, l := range layers {
		assert.Equal(t, 0.5, l.Resolution)
	}
}

func TestNewPartition_RenumbersBySize(t *testing.T) {
	memb := []int{5, 7, 7, 9}
	p := community.NewPartition([]string{"a", "b", "c", "d"}, memb, 1.5)
	assert.Equal(t, []int{1, 0, 0, 2}, p.Membership)
	assert.Equal(t, []int{5, 7, 7, 9}, memb, "input untouched")
	assert.Equal(t, 3, p.NumClusters())
	assert.Equal(t, [][]string{{"b", "c"}, {"a"}, {"d"}}, p.Communities())
	c, ok := p.Of("d")
	assert.True(t, ok)
	assert.Equal(t, 2, c)
	assert.Equal(t, 1.5, p.Quality)
}

func TestPartition_Clone(t *testing.T) {
	p := community.NewPartition([]string{"a", "b", "c"}, []int{0, 0, 1}, 2)
	c := p.Clone()
	assert.Equal(t, p, c)
	assert.NotSame(t, p, c)

	c.Membership[0] = 7
	c.Nodes[1] = "z"
	assert.Equal(t, []int{0, 0, 1}, p.Membership)
	assert.Equal(t, []string{"a", "b", "c"}, p.Nodes)
	got, ok := p.Of("a")
	assert.True(t, ok)
	assert.Equal(t, 0, got)
}
