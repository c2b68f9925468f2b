package tfidf

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/thoas/go-funk"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/textnet/matrix"
)

var (
	// ErrNegativeCount indicates a count row with n < 0.
	ErrNegativeCount = errors.New("tfidf: negative count")
	// ErrEmptyLabel indicates an empty document or term label.
	ErrEmptyLabel = errors.New("tfidf: empty label")
	// ErrDuplicatePair indicates a (document, term) pair seen twice.
	ErrDuplicatePair = errors.New("tfidf: duplicate document/term pair")
)

// DefaultMinDocs is the document-frequency floor applied when WithMinDocs is absent.
const DefaultMinDocs = 2

// Count is one row of the tidy input table.
type Count struct {
	Doc  string `json:"doc" yaml:"doc"`
	Term string `json:"term" yaml:"term"`
	N    int    `json:"n" yaml:"n"`
}

// Weighted is a retained row with its weighting components.
type Weighted struct {
	Doc   string  `json:"doc"`
	Term  string  `json:"term"`
	N     int     `json:"n"`
	TF    float64 `json:"tf"`
	IDF   float64 `json:"idf"`
	TFIDF float64 `json:"tf_idf"`
}

type config struct {
	sublinear bool
	minDocs   int
}

// Option configures Weigh.
type Option func(*config)

// WithSublinear toggles 1+log10(n) term frequency (default true).
func WithSublinear(on bool) Option {
	return func(c *config) { c.sublinear = on }
}

// WithMinDocs sets the document-frequency floor. Panics if k < 1.
func WithMinDocs(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("tfidf: WithMinDocs(%d): must be >= 1", k))
	}
	return func(c *config) { c.minDocs = k }
}

func newConfig(opts ...Option) config {
	cfg := config{sublinear: true, minDocs: DefaultMinDocs}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Documents returns the distinct document labels of counts, sorted ascending.
func Documents(counts []Count) []string {
	docs := make([]string, len(counts))
	for i, c := range counts {
		docs[i] = c.Doc
	}
	docs = funk.UniqString(docs)
	sort.Strings(docs)

	return docs
}

// Weigh computes TF-IDF for every row and drops rows whose term has
// document-frequency below the configured floor. Retained rows keep input order.
//
// Complexity: O(R) time and memory for R input rows.
func Weigh(counts []Count, opts ...Option) ([]Weighted, error) {
	cfg := newConfig(opts...)

	perDoc := make(map[string][]float64)
	df := make(map[string]int)
	for i, c := range counts {
		if c.Doc == "" || c.Term == "" {
			return nil, fmt.Errorf("Weigh: row %d: %w", i, ErrEmptyLabel)
		}
		if c.N < 0 {
			return nil, fmt.Errorf("Weigh: row %d (%s,%s)=%d: %w", i, c.Doc, c.Term, c.N, ErrNegativeCount)
		}
		perDoc[c.Doc] = append(perDoc[c.Doc], float64(c.N))
		df[c.Term]++
	}

	totals := make(map[string]float64, len(perDoc))
	for doc, ns := range perDoc {
		totals[doc] = floats.Sum(ns)
	}
	nDocs := float64(len(perDoc))

	out := make([]Weighted, 0, len(counts))
	for _, c := range counts {
		if df[c.Term] < cfg.minDocs {
			continue
		}
		tf := termFrequency(cfg.sublinear, c.N, totals[c.Doc])
		idf := math.Log10(nDocs / float64(df[c.Term]))
		out = append(out, Weighted{
			Doc:   c.Doc,
			Term:  c.Term,
			N:     c.N,
			TF:    tf,
			IDF:   idf,
			TFIDF: tf * idf,
		})
	}

	return out, nil
}

func termFrequency(sublinear bool, n int, total float64) float64 {
	switch {
	case n == 0:
		return 0
	case sublinear:
		return 1 + math.Log10(float64(n))
	case total == 0:
		return 0
	default:
		return float64(n) / total
	}
}

// Pivot builds the document × term weight matrix. Rows are docs together with
// any document appearing in rows, sorted ascending; columns are the distinct
// terms of rows, sorted ascending. Absent pairs are 0 and unsupported.
//
// Complexity: O(D·T + R) time and memory.
func Pivot(rows []Weighted, docs []string) (*matrix.Labeled, error) {
	all := append([]string(nil), docs...)
	terms := make([]string, 0, len(rows))
	for _, r := range rows {
		all = append(all, r.Doc)
		terms = append(terms, r.Term)
	}
	all = funk.UniqString(all)
	terms = funk.UniqString(terms)
	sort.Strings(all)
	sort.Strings(terms)

	ri := make(map[string]int, len(all))
	for i, d := range all {
		if d == "" {
			return nil, fmt.Errorf("Pivot: document %d: %w", i, ErrEmptyLabel)
		}
		ri[d] = i
	}
	ci := make(map[string]int, len(terms))
	for j, t := range terms {
		if t == "" {
			return nil, fmt.Errorf("Pivot: term %d: %w", j, ErrEmptyLabel)
		}
		ci[t] = j
	}

	c := len(terms)
	data := make([]float64, len(all)*c)
	support := make([]bool, len(all)*c)
	for _, r := range rows {
		k := ri[r.Doc]*c + ci[r.Term]
		if support[k] {
			return nil, fmt.Errorf("Pivot: (%s,%s): %w", r.Doc, r.Term, ErrDuplicatePair)
		}
		support[k] = true
		data[k] = r.TFIDF
	}

	wm, err := matrix.New(all, terms, data, support)
	if err != nil {
		return nil, fmt.Errorf("Pivot: %w", err)
	}

	return wm, nil
}

// Build runs Weigh then Pivot over every input document.
func Build(counts []Count, opts ...Option) (*matrix.Labeled, []Weighted, error) {
	rows, err := Weigh(counts, opts...)
	if err != nil {
		return nil, nil, err
	}
	wm, err := Pivot(rows, Documents(counts))
	if err != nil {
		return nil, nil, err
	}

	return wm, rows, nil
}
