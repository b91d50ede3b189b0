// Package testgraphs builds small LabeledGraph fixtures used only by tests
// and benchmarks (graphdiff's and gonumview's): a handful of deterministic
// shapes (single edge, reversed edge, repeated-label pair, single vertex,
// same-label bucket, cycle) referenced directly by name in §8's concrete
// scenarios, rather than re-derived ad hoc in every test file.
package testgraphs

import "github.com/alexander-bzikadze/graph-diff/graphdiff"

// SingleEdge returns a two-vertex graph (label lFrom, occurrence 1) ->
// (label lTo, occurrence 1), rooted at the first vertex.
func SingleEdge(lFrom, lTo int) *graphdiff.LabeledGraph {
	from := graphdiff.Vertex{Label: lFrom, Occurrence: 1}
	to := graphdiff.Vertex{Label: lTo, Occurrence: 1}
	g, err := graphdiff.NewLabeledGraph(
		[]graphdiff.Vertex{from, to},
		from,
		[]graphdiff.Edge{{From: from, To: to}},
	)
	if err != nil {
		panic(err)
	}
	return g
}

// RepeatedPair returns two vertices sharing label, with an edge from the
// first occurrence to the second, rooted at the first.
func RepeatedPair(label int) *graphdiff.LabeledGraph {
	v1 := graphdiff.Vertex{Label: label, Occurrence: 1}
	v2 := graphdiff.Vertex{Label: label, Occurrence: 2}
	g, err := graphdiff.NewLabeledGraph(
		[]graphdiff.Vertex{v1, v2},
		v1,
		[]graphdiff.Edge{{From: v1, To: v2}},
	)
	if err != nil {
		panic(err)
	}
	return g
}

// SingleVertex returns a one-vertex, edge-free graph carrying label.
func SingleVertex(label int) *graphdiff.LabeledGraph {
	v := graphdiff.Vertex{Label: label, Occurrence: 1}
	g, err := graphdiff.NewLabeledGraph([]graphdiff.Vertex{v}, v, nil)
	if err != nil {
		panic(err)
	}
	return g
}

// LabelBucket returns n edge-free vertices all carrying label, rooted at
// occurrence 1. Used for placeholder-absorption scenarios.
func LabelBucket(label, n int) *graphdiff.LabeledGraph {
	vertices := make([]graphdiff.Vertex, n)
	for i := 0; i < n; i++ {
		vertices[i] = graphdiff.Vertex{Label: label, Occurrence: i + 1}
	}
	g, err := graphdiff.NewLabeledGraph(vertices, vertices[0], nil)
	if err != nil {
		panic(err)
	}
	return g
}

// Cycle returns an n-vertex directed cycle (n >= 3) with distinct labels
// 1..n and edges i -> (i+1)%n, rooted at label 1.
func Cycle(n int) *graphdiff.LabeledGraph {
	if n < 3 {
		panic("testgraphs: Cycle requires n >= 3")
	}
	vertices := make([]graphdiff.Vertex, n)
	for i := 0; i < n; i++ {
		vertices[i] = graphdiff.Vertex{Label: i + 1, Occurrence: 1}
	}
	edges := make([]graphdiff.Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = graphdiff.Edge{From: vertices[i], To: vertices[(i+1)%n]}
	}
	g, err := graphdiff.NewLabeledGraph(vertices, vertices[0], edges)
	if err != nil {
		panic(err)
	}
	return g
}

// ReversedEdge returns a two-vertex graph (labels lFrom, lTo) with a single
// edge lTo -> lFrom: the label-consistent vertex mapping to SingleEdge's
// graph exists, but the single edge points the opposite way.
func ReversedEdge(lFrom, lTo int) *graphdiff.LabeledGraph {
	from := graphdiff.Vertex{Label: lFrom, Occurrence: 1}
	to := graphdiff.Vertex{Label: lTo, Occurrence: 1}
	g, err := graphdiff.NewLabeledGraph(
		[]graphdiff.Vertex{from, to},
		to,
		[]graphdiff.Edge{{From: to, To: from}},
	)
	if err != nil {
		panic(err)
	}
	return g
}
