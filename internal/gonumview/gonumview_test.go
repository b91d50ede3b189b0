package gonumview_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexander-bzikadze/graph-diff/graphdiff"
	"github.com/alexander-bzikadze/graph-diff/internal/gonumview"
	"github.com/alexander-bzikadze/graph-diff/internal/testgraphs"
)

func TestView_NodesAllRecognizedByHas(t *testing.T) {
	require := require.New(t)

	g := testgraphs.SingleEdge(1, 2)
	view := gonumview.New(g)

	nodes := view.Nodes()
	require.Len(nodes, 2)
	for _, n := range nodes {
		require.True(view.Has(n))
	}
}

func TestView_HasEdgeFromToRespectsDirection(t *testing.T) {
	require := require.New(t)

	g := testgraphs.SingleEdge(1, 2)
	view := gonumview.New(g)
	nodes := view.Nodes()
	require.Len(nodes, 2)

	var a, c int
	for i, n := range nodes {
		if len(view.From(n)) == 1 {
			a = i
		} else {
			c = i
		}
	}
	require.True(view.HasEdgeFromTo(nodes[a], nodes[c]))
	require.False(view.HasEdgeFromTo(nodes[c], nodes[a]))
	require.True(view.HasEdgeBetween(nodes[c], nodes[a]))
}

func TestView_LinesReturnsSingleLine(t *testing.T) {
	require := require.New(t)

	g := testgraphs.SingleEdge(3, 4)
	view := gonumview.New(g)
	nodes := view.Nodes()

	var from, to int
	for i, n := range nodes {
		if len(view.From(n)) == 1 {
			from, to = i, 1-i
		}
	}
	lines := view.Lines(nodes[from], nodes[to])
	require.Len(lines, 1)
	require.Equal(nodes[from].ID(), lines[0].From().ID())
	require.Equal(nodes[to].ID(), lines[0].To().ID())

	require.Nil(view.Lines(nodes[to], nodes[from]))
}

func TestView_NoEdgeBetweenDisjointVertices(t *testing.T) {
	require := require.New(t)

	g := testgraphs.LabelBucket(5, 2)
	view := gonumview.New(g)
	nodes := view.Nodes()
	require.Len(nodes, 2)
	require.False(view.HasEdgeBetween(nodes[0], nodes[1]))
	require.Empty(view.Lines(nodes[0], nodes[1]))
}

var _ = graphdiff.Vertex{}
