package community

import "sort"

// Partition assigns every vertex a cluster id in 0..NumClusters()-1.
// Cluster 0 is the largest; ties go to the cluster holding the earlier vertex.
type Partition struct {
	// Nodes lists vertex IDs in graph insertion order.
	Nodes []string
	// Membership[i] is the cluster of Nodes[i].
	Membership []int
	// Quality is the objective value of this assignment.
	Quality float64

	index map[string]int
	k     int
}

// NewPartition wraps an assignment produced elsewhere (e.g. by a custom
// Partitioner). membership is copied and renumbered by decreasing cluster
// size; it must have one non-negative entry per node.
func NewPartition(nodes []string, membership []int, quality float64) *Partition {
	memb := append([]int(nil), membership...)
	k := renumberBySize(memb)
	index := make(map[string]int, len(nodes))
	for i, id := range nodes {
		index[id] = i
	}

	return &Partition{
		Nodes:      append([]string(nil), nodes...),
		Membership: memb,
		Quality:    quality,
		index:      index,
		k:          k,
	}
}

// Clone returns a deep copy of p.
func (p *Partition) Clone() *Partition {
	index := make(map[string]int, len(p.index))
	for id, i := range p.index {
		index[id] = i
	}

	return &Partition{
		Nodes:      append([]string(nil), p.Nodes...),
		Membership: append([]int(nil), p.Membership...),
		Quality:    p.Quality,
		index:      index,
		k:          p.k,
	}
}

// Of returns the cluster of vertex id.
func (p *Partition) Of(id string) (int, bool) {
	i, ok := p.index[id]
	if !ok {
		return 0, false
	}

	return p.Membership[i], true
}

// NumClusters returns the number of non-empty clusters.
func (p *Partition) NumClusters() int { return p.k }

// Communities returns the members of every cluster, indexed by cluster id,
// each in vertex insertion order.
func (p *Partition) Communities() [][]string {
	out := make([][]string, p.k)
	for i, c := range p.Membership {
		out[c] = append(out[c], p.Nodes[i])
	}

	return out
}

// compact renumbers labels in place to 0..k-1 by first appearance and
// returns k.
func compact(labels []int) int {
	ids := make(map[int]int)
	for i, c := range labels {
		id, ok := ids[c]
		if !ok {
			id = len(ids)
			ids[c] = id
		}
		labels[i] = id
	}

	return len(ids)
}

// renumberBySize relabels memb so that cluster 0 is the largest, breaking
// ties by the first vertex of each cluster. Returns the cluster count.
func renumberBySize(memb []int) int {
	k := compact(memb)
	count := make([]int, k)
	for _, c := range memb {
		count[c]++
	}
	// compact numbers clusters by first vertex, so id order is the tie-break.
	order := make([]int, k)
	for c := range order {
		order[c] = c
	}
	sort.SliceStable(order, func(a, b int) bool { return count[order[a]] > count[order[b]] })
	rank := make([]int, k)
	for r, c := range order {
		rank[c] = r
	}
	for i, c := range memb {
		memb[i] = rank[c]
	}

	return k
}
