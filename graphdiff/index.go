package graphdiff

import (
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LabelIndex partitions a LabeledGraph's vertices into per-label buckets, per
// §4.1. BaselineEnumerator consults it to enumerate label-consistent
// candidates: a vertex of G1 may only ever be mapped to a vertex of G2 (or to
// a placeholder) carrying the same label. AnnealingSearch does not use it; it
// keeps its own per-label buckets of dense indices in its indexer.
//
// cache is an LRU of padTo results keyed by (label, size). Only padTo and
// extendWith read or fill it; neither engine calls them.
type LabelIndex struct {
	buckets map[int][]Vertex // label -> vertices carrying it, occurrence-ascending
	cache   *lru.Cache[padKey, []Vertex]
}

type padKey struct {
	label int
	size  int
}

// buildLabelIndex groups g's vertices by label.
func buildLabelIndex(g *LabeledGraph) *LabelIndex {
	buckets := make(map[int][]Vertex)
	for _, l := range g.Labels() {
		buckets[l] = g.VerticesWithLabel(l)
	}
	cache, _ := lru.New[padKey, []Vertex](256)
	return &LabelIndex{buckets: buckets, cache: cache}
}

// Labels returns every label present in the index, ascending.
func (idx *LabelIndex) Labels() []int {
	out := make([]int, 0, len(idx.buckets))
	for l := range idx.buckets {
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}

// Bucket returns a copy of the vertices carrying label, or an empty slice if
// label is absent.
func (idx *LabelIndex) Bucket(label int) []Vertex {
	b := idx.buckets[label]
	out := make([]Vertex, len(b))
	copy(out, b)
	return out
}

// Size returns the number of vertices carrying label.
func (idx *LabelIndex) Size(label int) int { return len(idx.buckets[label]) }

// padTo returns label's bucket padded on the right with placeholder vertices
// until it has exactly size entries. If the bucket already has >= size real
// vertices, it is returned unpadded (truncation is never performed: callers
// are expected to only ever pad towards a larger peer bucket, per §9's
// note on label-bucket padding being one-directional).
//
// Results are cached per (label, size) pair in the index's LRU.
func (idx *LabelIndex) padTo(label, size int) []Vertex {
	key := padKey{label: label, size: size}
	if v, ok := idx.cache.Get(key); ok {
		out := make([]Vertex, len(v))
		copy(out, v)
		return out
	}

	base := idx.buckets[label]
	if len(base) >= size {
		out := make([]Vertex, len(base))
		copy(out, base)
		idx.cache.Add(key, out)
		return out
	}

	out := make([]Vertex, size)
	copy(out, base)
	for i := len(base); i < size; i++ {
		out[i] = Placeholder(label)
	}
	idx.cache.Add(key, out)
	return out
}

// extendWith returns other's bucket for label, padded with placeholders up to
// the size of idx's bucket for that label when idx has more vertices (§4.1:
// the candidate target set for a G1 vertex of a given label is G2's bucket
// for that label, extended with as many placeholders as G1's bucket has extra
// real vertices). BaselineEnumerator does not call it; it walks the union of
// both indices' labels instead.
func (idx *LabelIndex) extendWith(other *LabelIndex, label int) []Vertex {
	mine := len(idx.buckets[label])
	theirs := other.buckets[label]
	if mine <= len(theirs) {
		out := make([]Vertex, len(theirs))
		copy(out, theirs)
		return out
	}
	return other.padTo(label, mine)
}
