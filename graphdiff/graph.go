package graphdiff

import (
	"sort"
	"strconv"

	"github.com/alexander-bzikadze/graph-diff/core"
)

// Vertex identifies a node by (Label, Occurrence), per the data model in §3:
// Label is a non-negative integer tag that may repeat within a graph;
// Occurrence disambiguates repeated labels and is in {1, ..., k} for the k
// vertices carrying Label in a given graph. Occurrence == 0 denotes a
// placeholder: an "unmatched slot" for Label that never participates in a
// real edge and never belongs to a LabeledGraph's vertex set.
type Vertex struct {
	Label      int
	Occurrence int
}

// Placeholder returns the sentinel vertex for label, meaning "unmatched slot".
func Placeholder(label int) Vertex { return Vertex{Label: label, Occurrence: 0} }

// IsPlaceholder reports whether v is a placeholder (Occurrence == 0).
func (v Vertex) IsPlaceholder() bool { return v.Occurrence == 0 }

// id encodes v as a core.Graph vertex ID. The colon separator is safe because
// strconv.Itoa never emits one.
func (v Vertex) id() string {
	return strconv.Itoa(v.Label) + ":" + strconv.Itoa(v.Occurrence)
}

func vertexFromID(id string) Vertex {
	for i := 0; i < len(id); i++ {
		if id[i] == ':' {
			label, _ := strconv.Atoi(id[:i])
			occ, _ := strconv.Atoi(id[i+1:])
			return Vertex{Label: label, Occurrence: occ}
		}
	}
	return Vertex{}
}

// LabeledGraph is a finite directed multigraph (self-loops permitted,
// parallel edges disallowed) whose real vertices carry integer labels that
// may repeat, plus a distinguished root, per §3.
//
// LabeledGraph is immutable after NewLabeledGraph returns successfully: the
// two matching engines treat it as a read-only input for the duration of a
// search. Internally it is backed by a *core.Graph keyed on the string
// encoding of each Vertex's (Label, Occurrence) pair, reusing core's
// adjacency bookkeeping (and, in particular, its ErrMultiEdgeNotAllowed
// rejection of a second AddEdge between the same endpoints) to enforce the
// "no parallel edges" invariant.
type LabeledGraph struct {
	g        *core.Graph
	root     Vertex
	vertices []Vertex // stable order: sorted by (Label, Occurrence)
	byLabel  map[int][]Vertex
}

// Edge is a directed pair of vertices. NewLabeledGraph takes edges between
// real vertices as input, and GraphMapping.Pairs reuses the type for its
// (G1 vertex, target) pairs. LabeledGraph itself exposes edges through
// OutNeighbors and HasEdge.
type Edge struct {
	From Vertex
	To   Vertex
}

// NewLabeledGraph validates vertices, root and edges against §3's invariants
// and, on success, returns an immutable LabeledGraph.
//
// Validation order: placeholder vertices in vertices (ErrPlaceholderVertex),
// duplicate identities (ErrDuplicateVertex), non-dense occurrences per label
// (ErrNonDenseOccurrence), root membership (ErrRootNotFound), edge endpoints
// known to the graph (ErrUnknownEdgeEndpoint), parallel edges
// (ErrParallelEdge, surfaced from core.ErrMultiEdgeNotAllowed).
func NewLabeledGraph(vertices []Vertex, root Vertex, edges []Edge) (*LabeledGraph, error) {
	byLabel := make(map[int][]Vertex, len(vertices))
	seen := make(map[Vertex]struct{}, len(vertices))

	g := core.NewGraph(core.WithDirected(true), core.WithLoops())

	for _, v := range vertices {
		if v.IsPlaceholder() {
			return nil, ErrPlaceholderVertex
		}
		if _, dup := seen[v]; dup {
			return nil, ErrDuplicateVertex
		}
		seen[v] = struct{}{}
		byLabel[v.Label] = append(byLabel[v.Label], v)
		if err := g.AddVertex(v.id()); err != nil {
			return nil, err
		}
	}

	for label, bucket := range byLabel {
		occs := make(map[int]struct{}, len(bucket))
		for _, v := range bucket {
			occs[v.Occurrence] = struct{}{}
		}
		for k := 1; k <= len(bucket); k++ {
			if _, ok := occs[k]; !ok {
				return nil, ErrNonDenseOccurrence
			}
		}
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].Occurrence < bucket[j].Occurrence })
		byLabel[label] = bucket
	}

	if _, ok := seen[root]; !ok {
		return nil, ErrRootNotFound
	}

	for _, e := range edges {
		if _, ok := seen[e.From]; !ok {
			return nil, ErrUnknownEdgeEndpoint
		}
		if _, ok := seen[e.To]; !ok {
			return nil, ErrUnknownEdgeEndpoint
		}
		if _, err := g.AddEdge(e.From.id(), e.To.id()); err != nil {
			if err == core.ErrMultiEdgeNotAllowed {
				return nil, ErrParallelEdge
			}
			return nil, err
		}
	}

	ordered := make([]Vertex, len(vertices))
	copy(ordered, vertices)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Label != ordered[j].Label {
			return ordered[i].Label < ordered[j].Label
		}
		return ordered[i].Occurrence < ordered[j].Occurrence
	})

	return &LabeledGraph{g: g, root: root, vertices: ordered, byLabel: byLabel}, nil
}

// Vertices returns every real vertex, in stable (Label, Occurrence) order.
func (lg *LabeledGraph) Vertices() []Vertex {
	out := make([]Vertex, len(lg.vertices))
	copy(out, lg.vertices)
	return out
}

// Len returns the number of real vertices.
func (lg *LabeledGraph) Len() int { return len(lg.vertices) }

// Root returns the graph's distinguished root vertex.
func (lg *LabeledGraph) Root() Vertex { return lg.root }

// VerticesWithLabel returns every real vertex carrying label, in occurrence order.
func (lg *LabeledGraph) VerticesWithLabel(label int) []Vertex {
	bucket := lg.byLabel[label]
	out := make([]Vertex, len(bucket))
	copy(out, bucket)
	return out
}

// Labels returns every label present in the graph, ascending.
func (lg *LabeledGraph) Labels() []int {
	out := make([]int, 0, len(lg.byLabel))
	for l := range lg.byLabel {
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}

// OutNeighbors returns the real vertices reachable by one outgoing edge from v.
func (lg *LabeledGraph) OutNeighbors(v Vertex) []Vertex {
	edges, err := lg.g.Neighbors(v.id())
	if err != nil {
		return nil
	}
	out := make([]Vertex, 0, len(edges))
	for _, e := range edges {
		if e.From != v.id() {
			continue
		}
		out = append(out, vertexFromID(e.To))
	}
	return out
}

// HasEdge reports whether a real edge from -> to exists in the graph.
func (lg *LabeledGraph) HasEdge(from, to Vertex) bool {
	return lg.g.HasEdge(from.id(), to.id())
}
