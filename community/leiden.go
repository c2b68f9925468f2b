// Multiplex Leiden optimiser.
//
// One pass works level by level, starting from the original vertices:
//  1. fast local moves: vertices leave their cluster for the neighbouring
//     (or an empty) cluster with the largest strictly positive gain;
//  2. refinement: inside every cluster, singleton vertices that are well
//     connected to it merge into refined sub-clusters, chosen at random with
//     probability ∝ exp(gain/θ) among non-negative gains;
//  3. aggregation: refined sub-clusters become the vertices of the next
//     level and inherit the cluster of their members.
//
// Passes always run up to the iteration cap. Only strictly improving moves
// are taken, so Q never drops from one pass to the next.
package community

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
)

const (
	// randomness is θ in the refinement selection probability.
	randomness = 0.01
	// minGain is the smallest gain that counts as an improvement.
	minGain = 1e-10
)

// Leiden optimises a partition of the vertices shared by layers.
//
// Complexity: roughly O(iterations · (V + E) · log V) in practice.
func Leiden(layers []Layer, opts ...Option) (*Partition, error) {
	cfg := newConfig(opts...)
	net, err := newNetwork(layers, cfg.weighted)
	if err != nil {
		return nil, err
	}

	o := &optimiser{params: net.params, rng: cfg.rng()}
	memb := make([]int, net.base.n)
	for i := range memb {
		memb[i] = i
	}

	q := net.quality(memb)
	for it := 0; it < cfg.iterations && net.base.n > 0; it++ {
		o.pass(net.base, memb)
		q = net.quality(memb)
	}

	return NewPartition(net.nodes, memb, q), nil
}

type optimiser struct {
	params []layerParam
	rng    *rand.Rand
}

// pass runs one move/refine/aggregate cascade and writes the resulting
// membership of the original vertices into memb.
func (o *optimiser) pass(base *level, memb []int) {
	lv := base
	cur := append([]int(nil), memb...)
	compact(cur)
	mapping := make([]int, base.n)
	for i := range mapping {
		mapping[i] = i
	}

	for {
		o.moveNodes(lv, cur)
		k := compact(cur)
		refined := o.refine(lv, cur)
		m := compact(refined)

		for i := range memb {
			memb[i] = cur[mapping[i]]
		}
		if m >= lv.n || lv.n <= k {
			return
		}

		next, nextMemb := aggregate(lv, refined, m, cur)
		for i := range mapping {
			mapping[i] = refined[mapping[i]]
		}
		lv, cur = next, nextMemb
	}
}

// scratch accumulates per-layer edge weight from one vertex to clusters.
type scratch struct {
	k       [][]float64 // [layer][cluster]
	seen    []bool
	touched []int
}

func newScratch(layers, n int) *scratch {
	s := &scratch{k: make([][]float64, layers), seen: make([]bool, n)}
	for l := range s.k {
		s.k[l] = make([]float64, n)
	}

	return s
}

func (s *scratch) add(l, c int, w float64) {
	if !s.seen[c] {
		s.seen[c] = true
		s.touched = append(s.touched, c)
	}
	s.k[l][c] += w
}

func (s *scratch) reset() {
	for _, c := range s.touched {
		s.seen[c] = false
		for l := range s.k {
			s.k[l][c] = 0
		}
	}
	s.touched = s.touched[:0]
}

// affinity is Σ_l λ_l (k^l_{v,c} − γ_l s^l_v S^l_c), where S^l_c is taken
// from total and excludes v when own is set.
func (o *optimiser) affinity(lv *level, v, c int, sc *scratch, total [][]float64, own bool) float64 {
	a := 0.0
	for l, p := range o.params {
		s := lv.size[l][v]
		S := total[l][c]
		if own {
			S -= s
		}
		a += p.weight * (sc.k[l][c] - p.gamma*s*S)
	}

	return a
}

// clusterSizes sums vertex sizes per cluster and layer.
func clusterSizes(lv *level, memb []int) [][]float64 {
	out := make([][]float64, len(lv.size))
	for l := range out {
		out[l] = make([]float64, lv.n)
		for v, c := range memb {
			out[l][c] += lv.size[l][v]
		}
	}

	return out
}

// moveNodes performs queue-based fast local moving. memb holds cluster ids
// in 0..lv.n-1 and is updated in place.
func (o *optimiser) moveNodes(lv *level, memb []int) {
	n := lv.n
	total := clusterSizes(lv, memb)
	count := make([]int, n)
	for _, c := range memb {
		count[c]++
	}
	var empty []int
	for c := n - 1; c >= 0; c-- {
		if count[c] == 0 {
			empty = append(empty, c)
		}
	}

	queue := permRange(n, o.rng)
	queued := make([]bool, n)
	for i := range queued {
		queued[i] = true
	}
	sc := newScratch(len(o.params), n)

	for head := 0; head < len(queue); head++ {
		v := queue[head]
		queued[v] = false
		from := memb[v]

		sc.reset()
		for l := range lv.arcs {
			for _, e := range lv.arcs[l][v] {
				sc.add(l, memb[e.to], e.w)
			}
		}
		stay := o.affinity(lv, v, from, sc, total, true)

		best, bestGain := from, minGain
		for _, c := range sc.touched {
			if c == from {
				continue
			}
			if g := o.affinity(lv, v, c, sc, total, false) - stay; g > bestGain {
				best, bestGain = c, g
			}
		}
		if count[from] > 1 && len(empty) > 0 && -stay > bestGain {
			best = empty[len(empty)-1]
		}
		if best == from {
			continue
		}

		if count[best] == 0 {
			empty = empty[:len(empty)-1]
		}
		for l := range total {
			total[l][from] -= lv.size[l][v]
			total[l][best] += lv.size[l][v]
		}
		count[from]--
		count[best]++
		if count[from] == 0 {
			empty = append(empty, from)
		}
		memb[v] = best

		for l := range lv.arcs {
			for _, e := range lv.arcs[l][v] {
				if u := e.to; !queued[u] && memb[u] != best {
					queued[u] = true
					queue = append(queue, u)
				}
			}
		}
	}
}

// refine splits every cluster of memb into refined sub-clusters. Only
// singletons move, only within their cluster, and only when they are well
// connected to it. The returned labels are vertex indices of sub-cluster seeds.
func (o *optimiser) refine(lv *level, memb []int) []int {
	n := lv.n
	refined := make([]int, n)
	rcount := make([]int, n)
	rsize := make([][]float64, len(lv.size))
	for l := range rsize {
		rsize[l] = append([]float64(nil), lv.size[l]...)
	}
	for v := range refined {
		refined[v] = v
		rcount[v] = 1
	}
	total := clusterSizes(lv, memb)
	sc := newScratch(len(o.params), n)

	var cands []int
	var gains []float64
	for _, v := range permRange(n, o.rng) {
		self := refined[v]
		if rcount[self] != 1 {
			continue
		}
		c := memb[v]

		sc.reset()
		wc := 0.0
		for l, p := range o.params {
			inside := 0.0
			for _, e := range lv.arcs[l][v] {
				if memb[e.to] == c {
					inside += e.w
					sc.add(l, refined[e.to], e.w)
				}
			}
			s := lv.size[l][v]
			wc += p.weight * (inside - p.gamma*s*(total[l][c]-s))
		}
		if wc < 0 {
			continue
		}

		cands, gains = cands[:0], gains[:0]
		for _, r := range sc.touched {
			if r == self {
				continue
			}
			if g := o.affinity(lv, v, r, sc, rsize, false); g >= 0 {
				cands = append(cands, r)
				gains = append(gains, g)
			}
		}
		if len(cands) == 0 {
			continue
		}

		r := o.pick(cands, gains)
		for l := range rsize {
			rsize[l][self] -= lv.size[l][v]
			rsize[l][r] += lv.size[l][v]
		}
		rcount[self]--
		rcount[r]++
		refined[v] = r
	}

	return refined
}

// pick draws one candidate with probability ∝ exp(gain/θ).
func (o *optimiser) pick(cands []int, gains []float64) int {
	top := floats.Max(gains)
	weights := make([]float64, len(gains))
	for i, g := range gains {
		weights[i] = math.Exp((g - top) / randomness)
	}

	x := o.rng.Float64() * floats.Sum(weights)
	for i, w := range weights {
		x -= w
		if x < 0 {
			return cands[i]
		}
	}

	return cands[len(cands)-1]
}

// aggregate collapses lv by the compact labels refined (m sub-clusters).
// Each aggregate vertex inherits the memb cluster of its members; the
// returned membership is compact.
func aggregate(lv *level, refined []int, m int, memb []int) (*level, []int) {
	out := &level{
		n:    m,
		arcs: make([][][]arc, len(lv.arcs)),
		size: make([][]float64, len(lv.size)),
	}
	for l := range lv.arcs {
		out.size[l] = make([]float64, m)
		acc := make([]map[int]float64, m)
		for v := 0; v < lv.n; v++ {
			rv := refined[v]
			out.size[l][rv] += lv.size[l][v]
			for _, e := range lv.arcs[l][v] {
				ru := refined[e.to]
				if ru == rv {
					continue
				}
				if acc[rv] == nil {
					acc[rv] = make(map[int]float64)
				}
				acc[rv][ru] += e.w
			}
		}

		out.arcs[l] = make([][]arc, m)
		for r, nbrs := range acc {
			keys := make([]int, 0, len(nbrs))
			for u := range nbrs {
				keys = append(keys, u)
			}
			sort.Ints(keys)
			for _, u := range keys {
				out.arcs[l][r] = append(out.arcs[l][r], arc{to: u, w: nbrs[u]})
			}
		}
	}

	next := make([]int, m)
	for v, r := range refined {
		next[r] = memb[v]
	}
	compact(next)

	return out, next
}
