package graphdiff

import "sort"

// GraphMapping is a partial, label-preserving injection from G1's vertices to
// G2's vertices, together with the Score it attains under a Scorer. Once
// constructed, a GraphMapping is immutable: both engines build one internally
// while searching and only ever hand the caller a finished copy.
type GraphMapping struct {
	pairs map[Vertex]Vertex // G1 vertex -> G2 vertex or placeholder
	score Score
}

// Score is the lexicographic objective from §4.2: Edges is compared first,
// Vertices only breaks ties.
type Score struct {
	Edges    int
	Vertices int
}

// Less reports whether s is strictly worse than other under the lexicographic
// (Edges, Vertices) ordering §4.2 defines.
func (s Score) Less(other Score) bool {
	if s.Edges != other.Edges {
		return s.Edges < other.Edges
	}
	return s.Vertices < other.Vertices
}

// newGraphMapping builds a GraphMapping from a set of pairs (target either a
// G2 vertex or a placeholder) and a precomputed score, copying pairs. It is
// the only constructor. AnnealingSearch calls it once per search with one
// entry per G1 vertex; BaselineEnumerator calls it each time it finds a new
// best candidate, whose pairs hold only the matched G1 vertices.
func newGraphMapping(pairs map[Vertex]Vertex, score Score) GraphMapping {
	cp := make(map[Vertex]Vertex, len(pairs))
	for k, v := range pairs {
		cp[k] = v
	}
	return GraphMapping{pairs: cp, score: score}
}

// Apply returns the vertex of G2 that v (a vertex of G1) is mapped to, and
// whether v participates in the mapping at all (it may be entirely absent
// from a partial mapping produced by BaselineEnumerator when G1 has more
// vertices of some label than G2).
func (m GraphMapping) Apply(v Vertex) (Vertex, bool) {
	to, ok := m.pairs[v]
	return to, ok
}

// Matched reports whether v is mapped to a real (non-placeholder) vertex.
func (m GraphMapping) Matched(v Vertex) bool {
	to, ok := m.pairs[v]
	return ok && !to.IsPlaceholder()
}

// Score returns the mapping's (edges, vertices) score.
func (m GraphMapping) Score() Score { return m.score }

// Pairs returns every (G1 vertex, G2 vertex or placeholder) pair, ordered by
// the G1 vertex's (Label, Occurrence).
func (m GraphMapping) Pairs() []Edge {
	keys := make([]Vertex, 0, len(m.pairs))
	for k := range m.pairs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Label != keys[j].Label {
			return keys[i].Label < keys[j].Label
		}
		return keys[i].Occurrence < keys[j].Occurrence
	})
	out := make([]Edge, len(keys))
	for i, k := range keys {
		out[i] = Edge{From: k, To: m.pairs[k]}
	}
	return out
}
