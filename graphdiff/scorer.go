package graphdiff

// Scorer computes a mapping's Score against a fixed pair of graphs, per §4.2:
// Vertices counts how many G1 vertices are mapped to a real G2 vertex; Edges
// counts how many of G1's directed edges (u, v) have both endpoints matched
// and the image edge (m(u), m(v)) present in G2.
type Scorer struct {
	g1, g2 *LabeledGraph
}

// newScorer binds a Scorer to a fixed pair of graphs.
func newScorer(g1, g2 *LabeledGraph) *Scorer {
	return &Scorer{g1: g1, g2: g2}
}

// Score computes the full (edges, vertices) score of pairs against the
// scorer's bound graphs from scratch. BaselineEnumerator calls it for every
// candidate it enumerates; AnnealingSearch tracks energy incrementally during
// the search and calls it once, on the mapping it returns.
func (sc *Scorer) Score(pairs map[Vertex]Vertex) Score {
	var s Score
	for _, to := range pairs {
		if !to.IsPlaceholder() {
			s.Vertices++
		}
	}
	for _, u := range sc.g1.Vertices() {
		tu, ok := pairs[u]
		if !ok || tu.IsPlaceholder() {
			continue
		}
		for _, v := range sc.g1.OutNeighbors(u) {
			tv, ok := pairs[v]
			if !ok || tv.IsPlaceholder() {
				continue
			}
			if sc.g2.HasEdge(tu, tv) {
				s.Edges++
			}
		}
	}
	return s
}
