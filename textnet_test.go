package textnet_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/textnet"
	"github.com/katalvlaran/textnet/bfs"
	"github.com/katalvlaran/textnet/community"
	"github.com/katalvlaran/textnet/core"
	"github.com/katalvlaran/textnet/fca"
	"github.com/katalvlaran/textnet/projection"
	"github.com/katalvlaran/textnet/tfidf"
)

func corpus() []tfidf.Count {
	return []tfidf.Count{
		{Doc: "A", Term: "apple", N: 3},
		{Doc: "A", Term: "banana", N: 2},
		{Doc: "A", Term: "cherry", N: 1},
		{Doc: "B", Term: "apple", N: 1},
		{Doc: "B", Term: "banana", N: 4},
		{Doc: "C", Term: "dog", N: 2},
		{Doc: "C", Term: "eel", N: 3},
		{Doc: "C", Term: "fox", N: 1},
		{Doc: "D", Term: "dog", N: 1},
		{Doc: "D", Term: "eel", N: 2},
		{Doc: "D", Term: "fox", N: 2},
	}
}

func TestNew_TwoDocumentScenario(t *testing.T) {
	counts := []tfidf.Count{
		{Doc: "D1", Term: "the", N: 2},
		{Doc: "D1", Term: "cat", N: 3},
		{Doc: "D2", Term: "the", N: 1},
		{Doc: "D2", Term: "dog", N: 4},
	}

	tn, err := textnet.New(counts, textnet.WithSublinear(false), textnet.WithMinDocs(2))
	require.NoError(t, err)

	r, c := tn.Weights().Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 1, c)
	g := tn.Graph()
	assert.Equal(t, []string{"D1", "D2", "the"}, g.VertexIDs())
	assert.Equal(t, []bool{false, false, true}, tn.NodeTypes())
	require.Equal(t, 2, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.Zero(t, e.Weight)
	}

	strict, err := textnet.New(counts, textnet.WithSublinear(false), textnet.WithNonzeroEdges())
	require.NoError(t, err)
	assert.Equal(t, 3, strict.Graph().VertexCount())
	assert.Zero(t, strict.Graph().EdgeCount())
}

func TestTextnet_FilteredTermsAreAbsent(t *testing.T) {
	tn, err := textnet.New(corpus())
	require.NoError(t, err)
	assert.NotContains(t, tn.Weights().Cols(), "cherry")
	assert.False(t, tn.Graph().HasVertex("cherry"))
	for _, row := range tn.Rows() {
		assert.NotEqual(t, "cherry", row.Term)
		assert.GreaterOrEqual(t, row.TFIDF, 0.0)
	}
}

func TestTextnet_Clusters(t *testing.T) {
	tn, err := textnet.New(corpus(), textnet.WithSeed(5))
	require.NoError(t, err)

	p, err := tn.Clusters()
	require.NoError(t, err)
	again, err := tn.Clusters()
	require.NoError(t, err)
	assert.Equal(t, p, again, "memoized")
	assert.NotSame(t, p, again, "each call gets its own copy")

	of := func(id string) int {
		c, ok := p.Of(id)
		require.True(t, ok, id)
		return c
	}
	assert.Equal(t, 0, of("C"), "largest cluster first")
	for _, id := range []string{"D", "dog", "eel", "fox"} {
		assert.Equal(t, of("C"), of(id), id)
	}
	for _, id := range []string{"B", "apple", "banana"} {
		assert.Equal(t, of("A"), of(id), id)
	}
	assert.NotEqual(t, of("A"), of("C"))

	pieces, err := bfs.Components(tn.Graph(), bfs.WithinCommunity(p.Of))
	require.NoError(t, err)
	assert.Len(t, pieces, p.NumClusters(), "every cluster is connected")
}

func TestTextnet_Components(t *testing.T) {
	tn, err := textnet.New(corpus())
	require.NoError(t, err)
	comps, err := tn.Components(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"A", "apple", "banana", "B"},
		{"C", "dog", "eel", "fox", "D"},
	}, comps)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tn.Components(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTextnet_ConcurrentFirstAccess(t *testing.T) {
	tn, err := textnet.New(corpus(), textnet.WithSeed(1))
	require.NoError(t, err)

	var wg sync.WaitGroup
	parts := make([]*community.Partition, 8)
	ctxs := make([]*fca.Context, 8)
	for i := range parts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			parts[i], _ = tn.Clusters()
			ctxs[i], _ = tn.Context()
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(parts); i++ {
		assert.Equal(t, parts[0], parts[i])
		assert.NotSame(t, parts[0], parts[i])
		assert.Equal(t, ctxs[0], ctxs[i])
		assert.NotSame(t, ctxs[0], ctxs[i])
	}
}

func TestTextnet_ResultsAreCopies(t *testing.T) {
	tn, err := textnet.New(corpus(), textnet.WithSeed(2))
	require.NoError(t, err)

	part, err := tn.Clusters()
	require.NoError(t, err)
	want := append([]int(nil), part.Membership...)
	part.Membership[0] = 99
	part.Nodes[0] = "Z"

	again, err := tn.Clusters()
	require.NoError(t, err)
	assert.Equal(t, want, again.Membership)
	c, ok := again.Of("A")
	require.True(t, ok)
	assert.Equal(t, want[0], c)

	network, err := tn.Export()
	require.NoError(t, err)
	assert.Equal(t, "A", network.Nodes[0].ID)
	assert.Equal(t, want[0], network.Nodes[0].Cluster)

	ctx, err := tn.Context()
	require.NoError(t, err)
	require.NotEmpty(t, ctx.Incidence)
	first := ctx.Incidence[0][0]
	ctx.Incidence[0][0] = !first
	ctx.Objects[0] = "Z"

	fresh, err := tn.Context()
	require.NoError(t, err)
	assert.Equal(t, first, fresh.Incidence[0][0])
	assert.NotEqual(t, "Z", fresh.Objects[0])

	docs, err := tn.Project(core.NodeDoc)
	require.NoError(t, err)
	require.NoError(t, docs.SetAttr("A", "year", 2024))
	a, err := tn.Graph().Vertex("A")
	require.NoError(t, err)
	_, present := a.Attr("year")
	assert.False(t, present)
}

func TestTextnet_Context(t *testing.T) {
	tn, err := textnet.New(corpus())
	require.NoError(t, err)
	ctx, err := tn.Context()
	require.NoError(t, err)
	require.NotEmpty(t, ctx.Objects)
	for _, row := range ctx.Incidence {
		assert.Contains(t, row, true)
	}

	bad, err := textnet.New(corpus(), textnet.WithAlpha(2))
	require.NoError(t, err)
	_, err = bad.Context()
	assert.ErrorIs(t, err, fca.ErrAlphaOutOfRange)
}

func TestTextnet_Project(t *testing.T) {
	tn, err := textnet.New(corpus())
	require.NoError(t, err)

	docs, err := tn.Project(core.NodeDoc)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, docs.VertexIDs())
	assert.True(t, docs.HasEdge("A", "B"))
	assert.False(t, docs.HasEdge("A", "C"))

	_, err = tn.Project(core.NodeUntyped)
	assert.ErrorIs(t, err, projection.ErrInvalidNodeType)
}

func TestTextnet_Export(t *testing.T) {
	attrs := map[string]map[string]interface{}{"year": {"A": 1999}}
	tn, err := textnet.New(corpus(), textnet.WithSeed(2), textnet.WithDocAttrs(attrs))
	require.NoError(t, err)

	net, err := tn.Export()
	require.NoError(t, err)
	assert.Len(t, net.Nodes, tn.Graph().VertexCount())
	assert.Len(t, net.Edges, tn.Graph().EdgeCount())
	for _, n := range net.Nodes {
		assert.GreaterOrEqual(t, n.Cluster, 0)
	}
	assert.Equal(t, 1999, net.Nodes[0].Attrs["year"])

	raw, err := json.Marshal(net)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"term"`)
	assert.Contains(t, string(raw), `"id":"apple"`)

	flat := textnet.ExportGraph(tn.Graph(), nil)
	assert.Equal(t, -1, flat.Nodes[0].Cluster)
}

// allInOne puts every vertex into a single cluster.
type allInOne struct{}

func (allInOne) Partition(g *core.Graph) (*community.Partition, error) {
	ids := g.VertexIDs()
	return community.NewPartition(ids, make([]int, len(ids)), 0), nil
}

func TestTextnet_CustomPartitioner(t *testing.T) {
	tn, err := textnet.New(corpus(), textnet.WithPartitioner(allInOne{}))
	require.NoError(t, err)
	p, err := tn.Clusters()
	require.NoError(t, err)
	assert.Equal(t, 1, p.NumClusters())

	assert.Panics(t, func() { textnet.WithPartitioner(nil) })
}

func TestNew_PropagatesInputErrors(t *testing.T) {
	_, err := textnet.New([]tfidf.Count{{Doc: "A", Term: "x", N: -3}})
	assert.ErrorIs(t, err, tfidf.ErrNegativeCount)
}
