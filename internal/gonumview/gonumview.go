// Package gonumview exposes a *graphdiff.LabeledGraph through gonum's
// graph.Node and graph.Line types, with methods named after gonum's directed
// multigraph (Has, Nodes, From, To, HasEdgeBetween, HasEdgeFromTo, Lines).
// Those methods take graph.Node arguments and return slices, so View does
// not satisfy the graph.Directed or graph.DirectedMultigraph interfaces of
// the gonum version this module requires, which address nodes by int64 ID
// and return iterators; gonum's own algorithms cannot take a View directly.
// The view is read-only: it never mutates the wrapped LabeledGraph, and
// nothing in graphdiff's own engines depends on it.
package gonumview

import (
	"github.com/alexander-bzikadze/graph-diff/graphdiff"
	"gonum.org/v1/gonum/graph"
)

// node wraps a graphdiff.Vertex with the dense int64 identity gonum requires.
type node struct {
	id int64
	v  graphdiff.Vertex
}

func (n node) ID() int64 { return n.id }

// line is the directed edge type View.Lines returns. Parallel edges are
// disallowed in a LabeledGraph (§3), so every line carries id 0: it is the
// only line ever returned between a given (from, to) pair.
type line struct {
	from, to node
}

func (l line) From() graph.Node         { return l.from }
func (l line) To() graph.Node           { return l.to }
func (l line) ReversedEdge() graph.Edge { return line{from: l.to, to: l.from} }
func (l line) ID() int64                { return 0 }

// View is a read-only, gonum-style directed multigraph view over a
// LabeledGraph (see the package comment for how it differs from gonum's
// interfaces).
type View struct {
	g      *graphdiff.LabeledGraph
	nodeOf map[graphdiff.Vertex]node
	vtxOf  map[int64]graphdiff.Vertex
	order  []graph.Node
}

// New builds a View over g, assigning each vertex a dense int64 ID in g's
// stable (Label, Occurrence) iteration order.
func New(g *graphdiff.LabeledGraph) *View {
	vertices := g.Vertices()
	v := &View{
		g:      g,
		nodeOf: make(map[graphdiff.Vertex]node, len(vertices)),
		vtxOf:  make(map[int64]graphdiff.Vertex, len(vertices)),
		order:  make([]graph.Node, len(vertices)),
	}
	for i, vertex := range vertices {
		n := node{id: int64(i), v: vertex}
		v.nodeOf[vertex] = n
		v.vtxOf[n.id] = vertex
		v.order[i] = n
	}
	return v
}

// Has reports whether n identifies a vertex of the wrapped graph.
func (v *View) Has(n graph.Node) bool {
	_, ok := v.vtxOf[n.ID()]
	return ok
}

// Nodes returns every vertex of the wrapped graph, in its stable order.
func (v *View) Nodes() []graph.Node {
	out := make([]graph.Node, len(v.order))
	copy(out, v.order)
	return out
}

// From returns the nodes directly reachable from n.
func (v *View) From(n graph.Node) []graph.Node {
	vertex, ok := v.vtxOf[n.ID()]
	if !ok {
		return nil
	}
	neighbors := v.g.OutNeighbors(vertex)
	out := make([]graph.Node, len(neighbors))
	for i, nb := range neighbors {
		out[i] = v.nodeOf[nb]
	}
	return out
}

// To returns the nodes that reach n directly.
func (v *View) To(n graph.Node) []graph.Node {
	target, ok := v.vtxOf[n.ID()]
	if !ok {
		return nil
	}
	var out []graph.Node
	for _, vertex := range v.g.Vertices() {
		if v.g.HasEdge(vertex, target) {
			out = append(out, v.nodeOf[vertex])
		}
	}
	return out
}

// HasEdgeBetween reports whether an edge exists between x and y in either direction.
func (v *View) HasEdgeBetween(x, y graph.Node) bool {
	return v.HasEdgeFromTo(x, y) || v.HasEdgeFromTo(y, x)
}

// HasEdgeFromTo reports whether a directed edge u -> t exists.
func (v *View) HasEdgeFromTo(u, t graph.Node) bool {
	uv, ok1 := v.vtxOf[u.ID()]
	tv, ok2 := v.vtxOf[t.ID()]
	if !ok1 || !ok2 {
		return false
	}
	return v.g.HasEdge(uv, tv)
}

// Lines returns the (single, since parallel edges are disallowed) line from
// u to t if one exists, nil otherwise.
func (v *View) Lines(u, t graph.Node) []graph.Line {
	if !v.HasEdgeFromTo(u, t) {
		return nil
	}
	uv := v.vtxOf[u.ID()]
	tv := v.vtxOf[t.ID()]
	return []graph.Line{line{from: v.nodeOf[uv], to: v.nodeOf[tv]}}
}
