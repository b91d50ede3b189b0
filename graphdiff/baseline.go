package graphdiff

import (
	"context"
	"sort"
	"strconv"
	"strings"
)

// defaultCandidateCeiling bounds BaselineEnumerator.ConstructDiff's Cartesian
// product of label-local assignments, per §7 ResourceExhausted. The original
// algorithm has no such ceiling; this redesign adds one so a caller cannot
// accidentally hand the exact enumerator a graph pair that never returns.
const defaultCandidateCeiling uint64 = 200_000

// BaselineOption configures a BaselineEnumerator.
type BaselineOption func(*BaselineEnumerator)

// WithCandidateCeiling overrides the maximum size of the Cartesian product of
// label-local assignments ConstructDiff is willing to build. Exceeding it
// returns ErrResourceExhausted before any candidate is scored.
func WithCandidateCeiling(n uint64) BaselineOption {
	return func(be *BaselineEnumerator) { be.ceiling = n }
}

// WithCancel installs a cooperative cancellation predicate, polled once per
// scored candidate (§5). When it returns true, ConstructDiff stops exploring
// further candidates and returns the best one scored so far.
func WithCancel(shouldStop func() bool) BaselineOption {
	return func(be *BaselineEnumerator) { be.shouldStop = shouldStop }
}

// BaselineEnumerator computes the exact argmax GraphMapping by materializing
// every label-consistent partial injection between two graphs, per §4.3. It
// is exponential in the combined size of the graphs' label buckets and is
// intended as a correctness oracle for small inputs, not a scalable solver.
type BaselineEnumerator struct {
	ceiling      uint64
	shouldStop   func() bool
	instrumented bool
}

// NewBaselineEnumerator builds a BaselineEnumerator with defaultCandidateCeiling
// and no cancellation predicate, then applies opts.
func NewBaselineEnumerator(opts ...BaselineOption) *BaselineEnumerator {
	be := &BaselineEnumerator{ceiling: defaultCandidateCeiling}
	for _, opt := range opts {
		opt(be)
	}
	return be
}

// ConstructDiff enumerates every label-consistent partial injection between
// g1 and g2 and returns one attaining the maximum lexicographic (edges,
// vertices) score, ties broken by first-seen.
func (be *BaselineEnumerator) ConstructDiff(g1, g2 *LabeledGraph) (GraphMapping, error) {
	if g1 == nil || g2 == nil {
		return GraphMapping{}, ErrNilGraph
	}
	_, endSpan := startBaselineSpan(be.instrumented, g1.Len(), g2.Len())
	defer endSpan()

	idx1 := buildLabelIndex(g1)
	idx2 := buildLabelIndex(g2)
	labels := unionLabels(idx1, idx2)

	assignSets := make([][]map[Vertex]Vertex, len(labels))
	total := uint64(1)
	for i, l := range labels {
		assigns := labelLocalAssignments(idx1.Bucket(l), idx2.Bucket(l))
		assignSets[i] = assigns
		if n := uint64(len(assigns)); n > 0 {
			total *= n
		}
		if total > be.ceiling {
			return GraphMapping{}, ErrResourceExhausted
		}
	}

	if be.shouldStop != nil && be.shouldStop() {
		return GraphMapping{}, ErrCancelled
	}

	scorer := newScorer(g1, g2)
	pairs := make(map[Vertex]Vertex)
	var best GraphMapping
	haveBest := false
	scoredAny := false
	cancelled := false

	var walk func(i int)
	walk = func(i int) {
		if cancelled {
			return
		}
		if i == len(assignSets) {
			sc := scorer.Score(pairs)
			scoredAny = true
			if be.instrumented {
				candidatesScoredCounter.Add(context.Background(), 1)
			}
			if !haveBest || best.score.Less(sc) {
				best = newGraphMapping(pairs, sc)
				haveBest = true
			}
			if be.shouldStop != nil && be.shouldStop() {
				cancelled = true
			}
			return
		}
		for _, a := range assignSets[i] {
			for k, v := range a {
				pairs[k] = v
			}
			walk(i + 1)
			for k := range a {
				delete(pairs, k)
			}
			if cancelled {
				return
			}
		}
	}
	walk(0)

	if cancelled && !scoredAny {
		return GraphMapping{}, ErrCancelled
	}
	if !haveBest {
		return newGraphMapping(pairs, Score{}), nil
	}
	return best, nil
}

// unionLabels returns every label present in either index, ascending.
func unionLabels(idx1, idx2 *LabelIndex) []int {
	seen := make(map[int]struct{})
	for _, l := range idx1.Labels() {
		seen[l] = struct{}{}
	}
	for _, l := range idx2.Labels() {
		seen[l] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}

// labelLocalAssignments enumerates every way to pair each position of T with
// either a distinct, as-yet-unused element of S or a placeholder, per §4.3
// step 3, deduplicated by the resulting set of real (s, T[i]) pairs (step 5).
// Positions assigned a placeholder contribute nothing to a pair set, so
// distinct leftover-vertex choices collapse to the same entry for free.
func labelLocalAssignments(S, T []Vertex) []map[Vertex]Vertex {
	used := make([]bool, len(S))
	current := make(map[Vertex]Vertex, len(T))
	seen := make(map[string]struct{})
	var result []map[Vertex]Vertex

	var rec func(pos int)
	rec = func(pos int) {
		if pos == len(T) {
			key := pairSetKey(current)
			if _, ok := seen[key]; ok {
				return
			}
			seen[key] = struct{}{}
			cp := make(map[Vertex]Vertex, len(current))
			for k, v := range current {
				cp[k] = v
			}
			result = append(result, cp)
			return
		}
		// T[pos] left unmatched.
		rec(pos + 1)
		// T[pos] paired with some unused element of S.
		for i, s := range S {
			if used[i] {
				continue
			}
			used[i] = true
			current[s] = T[pos]
			rec(pos + 1)
			delete(current, s)
			used[i] = false
		}
	}
	rec(0)
	return result
}

// pairSetKey builds a deterministic string encoding of a pair set, used to
// dedup label-local assignments by pair-set equality.
func pairSetKey(pairs map[Vertex]Vertex) string {
	type kv struct{ from, to Vertex }
	arr := make([]kv, 0, len(pairs))
	for k, v := range pairs {
		arr = append(arr, kv{k, v})
	}
	sort.Slice(arr, func(i, j int) bool {
		if arr[i].from.Label != arr[j].from.Label {
			return arr[i].from.Label < arr[j].from.Label
		}
		return arr[i].from.Occurrence < arr[j].from.Occurrence
	})
	var b strings.Builder
	for _, e := range arr {
		b.WriteString(strconv.Itoa(e.from.Label))
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(e.from.Occurrence))
		b.WriteByte('>')
		b.WriteString(strconv.Itoa(e.to.Label))
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(e.to.Occurrence))
		b.WriteByte(';')
	}
	return b.String()
}
