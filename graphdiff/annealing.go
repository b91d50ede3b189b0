package graphdiff

import (
	"context"
	"math"
	"math/rand"
)

// annealingState tracks the lifecycle described in §4.4: idle, then
// configured once SetInitial has been called, then running for the duration
// of ConstructDiff, then halted once a result has been published. halted is
// reusable: ConstructDiff clears the stored initial mapping and transitions
// straight back to running on the next call.
type annealingState int

const (
	stateIdle annealingState = iota
	stateConfigured
	stateRunning
	stateHalted
)

const (
	defaultTemperature0  = 100.0
	defaultMaxIterations = 10000
	defaultStallLimit    = 200
	swapRetryLimit       = 10
)

// AnnealingOption configures an AnnealingSearch.
type AnnealingOption func(*AnnealingSearch)

// WithRNG injects a deterministic PRNG source. Without it, ConstructDiff uses
// a clock-seeded default (§5).
func WithRNG(rng *rand.Rand) AnnealingOption {
	return func(as *AnnealingSearch) { as.rng = rng }
}

// WithTemperature0 overrides T0 in the temperature schedule T_k = T0/k.
func WithTemperature0(t0 float64) AnnealingOption {
	return func(as *AnnealingSearch) { as.t0 = t0 }
}

// WithMaxIterations overrides the iteration cap (default 10000).
func WithMaxIterations(n int) AnnealingOption {
	return func(as *AnnealingSearch) { as.maxIterations = n }
}

// WithStallLimit overrides the consecutive-no-improvement cap (default 200).
func WithStallLimit(n int) AnnealingOption {
	return func(as *AnnealingSearch) { as.stallLimit = n }
}

// WithProgress installs a callback invoked once per outer iteration with the
// iteration number and the best energy seen so far, carried in Score.Edges
// (Score.Vertices is left zero). Engines never log; this is
// the only visibility hook into a long run.
func WithProgress(fn func(iteration int, best Score)) AnnealingOption {
	return func(as *AnnealingSearch) { as.progress = fn }
}

// WithCancelPredicate installs a cooperative cancellation predicate, polled
// once per outer iteration (§5). When it returns true, ConstructDiff stops
// and returns the best assignment found so far.
func WithCancelPredicate(fn func() bool) AnnealingOption {
	return func(as *AnnealingSearch) { as.shouldStop = fn }
}

// AnnealingSearch performs Metropolis-style simulated annealing over
// label-consistent total assignments, per §4.4. An instance may be reused
// across calls to ConstructDiff; SetInitial must be called again before each
// call whose initial solution should differ from the greedy default.
type AnnealingSearch struct {
	rng           *rand.Rand
	t0            float64
	maxIterations int
	stallLimit    int
	progress      func(iteration int, best Score)
	shouldStop    func() bool

	state        annealingState
	initMapping  *GraphMapping
	instrumented bool
}

// NewAnnealingSearch builds an AnnealingSearch with the defaults from §4.4
// (T0=100, 10000 iterations, 200-iteration stall limit) and a clock-seeded
// RNG, then applies opts.
func NewAnnealingSearch(opts ...AnnealingOption) *AnnealingSearch {
	as := &AnnealingSearch{
		t0:            defaultTemperature0,
		maxIterations: defaultMaxIterations,
		stallLimit:    defaultStallLimit,
		state:         stateIdle,
	}
	for _, opt := range opts {
		opt(as)
	}
	if as.rng == nil {
		as.rng = rngFromSeed(clockSeed())
	}
	return as
}

// SetInitial records an initial mapping to seed the next ConstructDiff call.
// It is validated against the graphs once ConstructDiff receives them, since
// a GraphMapping is only meaningful relative to a specific (G1, G2) pair.
func (as *AnnealingSearch) SetInitial(m GraphMapping) (*AnnealingSearch, error) {
	cp := m
	as.initMapping = &cp
	as.state = stateConfigured
	return as, nil
}

// ConstructDiff runs simulated annealing over g1, g2 and returns the
// best-scoring GraphMapping found, per §4.4.
func (as *AnnealingSearch) ConstructDiff(g1, g2 *LabeledGraph) (GraphMapping, error) {
	if g1 == nil || g2 == nil {
		return GraphMapping{}, ErrNilGraph
	}
	_, endSpan := startAnnealingSpan(as.instrumented, g1.Len(), g2.Len())
	defer endSpan()
	as.state = stateRunning

	origG1, origG2 := g1, g2
	swapped := false
	if g1.Len() > g2.Len() {
		g1, g2 = g2, g1
		swapped = true
	}

	idx := newIndexer(g1, g2)

	var A []int
	if as.initMapping != nil {
		translated, err := idx.assignmentFromMapping(*as.initMapping, swapped)
		if err != nil {
			as.initMapping = nil
			as.state = stateHalted
			return GraphMapping{}, err
		}
		A = translated
	} else {
		A = idx.greedyInitialSolution()
	}

	cur := append([]int(nil), A...)
	energy := idx.score(cur)
	best := append([]int(nil), cur...)
	bestEnergy := energy

	sameScore := 0
	for k := 1; k <= as.maxIterations; k++ {
		if as.shouldStop != nil && as.shouldStop() {
			break
		}
		if as.instrumented {
			annealingIterationsCounter.Add(context.Background(), 1)
		}
		sameScore++
		if bestEnergy < energy {
			best = append([]int(nil), cur...)
			bestEnergy = energy
			sameScore = 0
		}
		if as.progress != nil {
			as.progress(k, Score{Edges: bestEnergy})
		}
		if sameScore == as.stallLimit {
			break
		}

		x, xEnergy, moved := idx.takeStep(cur, energy, as.rng)
		if moved {
			t := as.t0 / float64(k)
			alpha := as.rng.Float64()
			// Maximizing variant of the Metropolis rule: the exponent is
			// current minus candidate energy, so any improvement is accepted
			// and a worsening move is accepted with probability
			// exp(-(E_cur - E_new) / T_k), the reverse of the textbook
			// minimizing form.
			if alpha < math.Exp(-(float64(energy)-float64(xEnergy))/t) {
				cur = x
				energy = xEnergy
			}
		}
	}
	if bestEnergy < energy {
		best = append([]int(nil), cur...)
		bestEnergy = energy
	}

	mapping := idx.assignmentToMapping(best, swapped, origG1, origG2)

	as.initMapping = nil
	as.state = stateHalted
	return mapping, nil
}

// indexer holds the dense-index view of a graph pair used internally by
// AnnealingSearch: per-vertex forward/reverse adjacency sets, keyed by
// position in a stable vertex ordering, plus G2's label buckets.
type indexer struct {
	vertices1, vertices2 []Vertex
	vIndex1, vIndex2     map[Vertex]int
	edges1, edges2       []map[int]struct{}
	inv1, inv2           []map[int]struct{}
	labelBucket2         map[int][]int
}

func newIndexer(g1, g2 *LabeledGraph) *indexer {
	v1, v2 := g1.Vertices(), g2.Vertices()
	idx := &indexer{
		vertices1:    v1,
		vertices2:    v2,
		vIndex1:      make(map[Vertex]int, len(v1)),
		vIndex2:      make(map[Vertex]int, len(v2)),
		edges1:       make([]map[int]struct{}, len(v1)),
		edges2:       make([]map[int]struct{}, len(v2)),
		inv1:         make([]map[int]struct{}, len(v1)),
		inv2:         make([]map[int]struct{}, len(v2)),
		labelBucket2: make(map[int][]int),
	}
	for i, v := range v1 {
		idx.vIndex1[v] = i
		idx.edges1[i] = make(map[int]struct{})
		idx.inv1[i] = make(map[int]struct{})
	}
	for i, v := range v2 {
		idx.vIndex2[v] = i
		idx.edges2[i] = make(map[int]struct{})
		idx.inv2[i] = make(map[int]struct{})
		idx.labelBucket2[v.Label] = append(idx.labelBucket2[v.Label], i)
	}
	for i, v := range v1 {
		for _, to := range g1.OutNeighbors(v) {
			j := idx.vIndex1[to]
			idx.edges1[i][j] = struct{}{}
			idx.inv1[j][i] = struct{}{}
		}
	}
	for i, v := range v2 {
		for _, to := range g2.OutNeighbors(v) {
			j := idx.vIndex2[to]
			idx.edges2[i][j] = struct{}{}
			idx.inv2[j][i] = struct{}{}
		}
	}
	return idx
}

// greedyInitialSolution assigns each G1 vertex the last available G2 index
// sharing its label, per §4.4's initial-solution rule.
func (idx *indexer) greedyInitialSolution() []int {
	buckets := make(map[int][]int, len(idx.labelBucket2))
	for l, b := range idx.labelBucket2 {
		cp := make([]int, len(b))
		copy(cp, b)
		buckets[l] = cp
	}
	A := make([]int, len(idx.vertices1))
	for i, v := range idx.vertices1 {
		b := buckets[v.Label]
		if len(b) == 0 {
			A[i] = -1
			continue
		}
		A[i] = b[len(b)-1]
		buckets[v.Label] = b[:len(b)-1]
	}
	return A
}

// score computes energy(A) = the number of G1 edges preserved by A, per §4.4.
func (idx *indexer) score(A []int) int {
	energy := 0
	for i := range A {
		j := A[i]
		if j < 0 {
			continue
		}
		for u := range idx.edges1[i] {
			if A[u] < 0 {
				continue
			}
			if _, ok := idx.edges2[j][A[u]]; ok {
				energy++
			}
		}
	}
	return energy
}

// contrib sums the matched-edge contribution of vertex x under solution:
// forward edges1[x] checked against edges2[solution[x]], plus reverse
// inv1[x] checked against inv2[solution[x]]. When useExclude is set, the
// position exclude is skipped, so the (p, q) edge between the two swapped
// positions is not counted twice across the two contrib calls a swap makes.
// A self-loop on x is counted once, in the forward pass only.
func (idx *indexer) contrib(solution []int, x, exclude int, useExclude bool) int {
	tx := solution[x]
	if tx < 0 {
		return 0
	}
	c := 0
	for j := range idx.edges1[x] {
		if useExclude && j == exclude {
			continue
		}
		tj := solution[j]
		if tj < 0 {
			continue
		}
		if _, ok := idx.edges2[tx][tj]; ok {
			c++
		}
	}
	for j := range idx.inv1[x] {
		if j == x || (useExclude && j == exclude) {
			continue
		}
		tj := solution[j]
		if tj < 0 {
			continue
		}
		if _, ok := idx.inv2[tx][tj]; ok {
			c++
		}
	}
	return c
}

// takeStep attempts one swap move (§4.4), retrying up to swapRetryLimit
// times if the randomly chosen label bucket or target position is
// unsuitable. moved is false if every retry failed, in which case solution
// and energy are returned unchanged (a null move).
func (idx *indexer) takeStep(solution []int, energy int, rng *rand.Rand) ([]int, int, bool) {
	for attempt := 0; attempt < swapRetryLimit; attempt++ {
		p := rng.Intn(len(solution))
		label := idx.vertices1[p].Label
		choice := idx.labelBucket2[label]
		if len(choice) < 2 {
			continue
		}
		target := choice[rng.Intn(len(choice))]

		q := -1
		for i, x := range solution {
			if x == target {
				q = i
				break
			}
		}
		if q == -1 || q == p {
			continue
		}

		next := append([]int(nil), solution...)
		e := energy
		e -= idx.contrib(next, p, -1, false)
		e -= idx.contrib(next, q, p, true)

		next[p], next[q] = next[q], next[p]

		e += idx.contrib(next, p, -1, false)
		e += idx.contrib(next, q, p, true)

		return next, e, true
	}
	return solution, energy, false
}

// assignmentFromMapping translates a client-supplied GraphMapping (expressed
// in terms of the graphs as originally passed to ConstructDiff) into an
// internal assignment vector over the possibly graph-swapped indexer.
func (idx *indexer) assignmentFromMapping(m GraphMapping, swapped bool) ([]int, error) {
	A := make([]int, len(idx.vertices1))
	for i := range A {
		A[i] = -1
	}

	for _, pr := range m.Pairs() {
		from, to := pr.From, pr.To
		if swapped {
			if to.IsPlaceholder() {
				// No internal G1 (originally G2) vertex corresponds to an
				// unmatched original-G1 vertex; nothing to translate.
				continue
			}
			from, to = to, from
		} else if to.IsPlaceholder() {
			fi, ok := idx.vIndex1[from]
			if !ok || from.Label != idx.vertices1[fi].Label {
				return nil, ErrIncompatibleInitialMapping
			}
			continue
		}

		fi, ok := idx.vIndex1[from]
		if !ok {
			return nil, ErrIncompatibleInitialMapping
		}
		ti, ok := idx.vIndex2[to]
		if !ok {
			return nil, ErrIncompatibleInitialMapping
		}
		if from.Label != to.Label {
			return nil, ErrIncompatibleInitialMapping
		}
		A[fi] = ti
	}
	return A, nil
}

// assignmentToMapping converts an internal assignment vector back into a
// GraphMapping over the graphs as originally passed to ConstructDiff,
// inverting the swap performed in preprocessing if one occurred (§8
// property 8: the domain of the returned mapping is always a subset of the
// original G1, never the internally swapped graph).
func (idx *indexer) assignmentToMapping(A []int, swapped bool, origG1, origG2 *LabeledGraph) GraphMapping {
	pairs := make(map[Vertex]Vertex, len(A))
	for i, j := range A {
		v1 := idx.vertices1[i]
		if j < 0 {
			pairs[v1] = Placeholder(v1.Label)
			continue
		}
		pairs[v1] = idx.vertices2[j]
	}

	if swapped {
		rev := make(map[Vertex]Vertex, len(pairs))
		for v1, v2 := range pairs {
			if !v2.IsPlaceholder() {
				rev[v2] = v1
			}
		}
		inverted := make(map[Vertex]Vertex, len(origG1.Vertices()))
		for _, v := range origG1.Vertices() {
			if img, ok := rev[v]; ok {
				inverted[v] = img
			} else {
				inverted[v] = Placeholder(v.Label)
			}
		}
		pairs = inverted
	}

	sc := newScorer(origG1, origG2).Score(pairs)
	return newGraphMapping(pairs, sc)
}
