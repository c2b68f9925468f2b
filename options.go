package textnet

import (
	"github.com/katalvlaran/textnet/builder"
	"github.com/katalvlaran/textnet/community"
	"github.com/katalvlaran/textnet/fca"
	"github.com/katalvlaran/textnet/tfidf"
)

type config struct {
	weighting   []tfidf.Option
	building    []builder.BuilderOption
	clustering  []community.Option
	docAttrs    map[string]map[string]interface{}
	alpha       float64
	partitioner community.Partitioner
}

// Option configures a Textnet.
type Option func(*config)

// WithSublinear toggles 1+log10(n) term frequency (default true).
func WithSublinear(on bool) Option {
	return func(c *config) { c.weighting = append(c.weighting, tfidf.WithSublinear(on)) }
}

// WithMinDocs sets the document-frequency floor (default 2). Panics if k < 1.
func WithMinDocs(k int) Option {
	opt := tfidf.WithMinDocs(k)
	return func(c *config) { c.weighting = append(c.weighting, opt) }
}

// WithDocAttrs attaches external attributes (name → document → value) to
// document nodes.
func WithDocAttrs(attrs map[string]map[string]interface{}) Option {
	return func(c *config) { c.docAttrs = attrs }
}

// WithNonzeroEdges derives bipartite edges from non-zero weights only, so
// retained pairs whose weight is 0 get no edge.
func WithNonzeroEdges() Option {
	return func(c *config) { c.building = append(c.building, builder.WithNonzeroEdges()) }
}

// WithResolution sets the bipartite CPM resolution (default 0.5).
func WithResolution(gamma float64) Option {
	return func(c *config) { c.clustering = append(c.clustering, community.WithResolution(gamma)) }
}

// WithSeed seeds the community optimiser.
func WithSeed(seed int64) Option {
	return func(c *config) { c.clustering = append(c.clustering, community.WithSeed(seed)) }
}

// WithIterations caps the optimiser passes (default 100). Panics if n < 1.
func WithIterations(n int) Option {
	opt := community.WithIterations(n)
	return func(c *config) { c.clustering = append(c.clustering, opt) }
}

// WithEdgeWeights makes the optimiser use edge weights.
func WithEdgeWeights() Option {
	return func(c *config) { c.clustering = append(c.clustering, community.WithEdgeWeights()) }
}

// WithAlpha sets the formal-context cut level (default 0.3). Values outside
// [0, 1] surface as fca.ErrAlphaOutOfRange from Context.
func WithAlpha(alpha float64) Option {
	return func(c *config) { c.alpha = alpha }
}

// WithPartitioner replaces the community optimiser; options given through
// WithResolution, WithSeed, WithIterations and WithEdgeWeights are then
// ignored. Panics on nil.
func WithPartitioner(p community.Partitioner) Option {
	if p == nil {
		panic("textnet: WithPartitioner(nil)")
	}
	return func(c *config) { c.partitioner = p }
}

func newConfig(opts ...Option) config {
	cfg := config{alpha: fca.DefaultAlpha}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.partitioner == nil {
		cfg.partitioner = community.NewBipartiteCPM(cfg.clustering...)
	}

	return cfg
}
