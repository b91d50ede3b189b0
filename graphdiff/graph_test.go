// Package graphdiff_test verifies LabeledGraph construction and query
// contracts.
package graphdiff_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexander-bzikadze/graph-diff/graphdiff"
)

func TestNewLabeledGraph_Basic(t *testing.T) {
	require := require.New(t)

	v1 := graphdiff.Vertex{Label: 1, Occurrence: 1}
	v2 := graphdiff.Vertex{Label: 2, Occurrence: 1}
	g, err := graphdiff.NewLabeledGraph(
		[]graphdiff.Vertex{v1, v2},
		v1,
		[]graphdiff.Edge{{From: v1, To: v2}},
	)
	require.NoError(err)
	require.Equal(2, g.Len())
	require.Equal(v1, g.Root())
	require.True(g.HasEdge(v1, v2))
	require.False(g.HasEdge(v2, v1))
	require.ElementsMatch([]graphdiff.Vertex{v2}, g.OutNeighbors(v1))
}

func TestNewLabeledGraph_RejectsPlaceholderVertex(t *testing.T) {
	v1 := graphdiff.Vertex{Label: 1, Occurrence: 0}
	_, err := graphdiff.NewLabeledGraph([]graphdiff.Vertex{v1}, v1, nil)
	require.ErrorIs(t, err, graphdiff.ErrPlaceholderVertex)
}

func TestNewLabeledGraph_RejectsDuplicateVertex(t *testing.T) {
	v1 := graphdiff.Vertex{Label: 1, Occurrence: 1}
	_, err := graphdiff.NewLabeledGraph([]graphdiff.Vertex{v1, v1}, v1, nil)
	require.ErrorIs(t, err, graphdiff.ErrDuplicateVertex)
}

func TestNewLabeledGraph_RejectsNonDenseOccurrence(t *testing.T) {
	v1 := graphdiff.Vertex{Label: 1, Occurrence: 1}
	v3 := graphdiff.Vertex{Label: 1, Occurrence: 3}
	_, err := graphdiff.NewLabeledGraph([]graphdiff.Vertex{v1, v3}, v1, nil)
	require.ErrorIs(t, err, graphdiff.ErrNonDenseOccurrence)
}

func TestNewLabeledGraph_RejectsRootNotInGraph(t *testing.T) {
	v1 := graphdiff.Vertex{Label: 1, Occurrence: 1}
	other := graphdiff.Vertex{Label: 9, Occurrence: 1}
	_, err := graphdiff.NewLabeledGraph([]graphdiff.Vertex{v1}, other, nil)
	require.ErrorIs(t, err, graphdiff.ErrRootNotFound)
}

func TestNewLabeledGraph_RejectsUnknownEdgeEndpoint(t *testing.T) {
	v1 := graphdiff.Vertex{Label: 1, Occurrence: 1}
	ghost := graphdiff.Vertex{Label: 2, Occurrence: 1}
	_, err := graphdiff.NewLabeledGraph(
		[]graphdiff.Vertex{v1},
		v1,
		[]graphdiff.Edge{{From: v1, To: ghost}},
	)
	require.ErrorIs(t, err, graphdiff.ErrUnknownEdgeEndpoint)
}

func TestNewLabeledGraph_RejectsParallelEdge(t *testing.T) {
	v1 := graphdiff.Vertex{Label: 1, Occurrence: 1}
	v2 := graphdiff.Vertex{Label: 2, Occurrence: 1}
	_, err := graphdiff.NewLabeledGraph(
		[]graphdiff.Vertex{v1, v2},
		v1,
		[]graphdiff.Edge{{From: v1, To: v2}, {From: v1, To: v2}},
	)
	require.ErrorIs(t, err, graphdiff.ErrParallelEdge)
}

func TestLabeledGraph_VerticesWithLabelAndLabels(t *testing.T) {
	require := require.New(t)

	v1 := graphdiff.Vertex{Label: 5, Occurrence: 1}
	v2 := graphdiff.Vertex{Label: 5, Occurrence: 2}
	v3 := graphdiff.Vertex{Label: 9, Occurrence: 1}
	g, err := graphdiff.NewLabeledGraph([]graphdiff.Vertex{v1, v2, v3}, v1, nil)
	require.NoError(err)

	require.Equal([]int{5, 9}, g.Labels())
	require.Equal([]graphdiff.Vertex{v1, v2}, g.VerticesWithLabel(5))
	require.Equal([]graphdiff.Vertex{v3}, g.VerticesWithLabel(9))
}

func TestVertex_Placeholder(t *testing.T) {
	p := graphdiff.Placeholder(3)
	require.True(t, p.IsPlaceholder())
	require.Equal(t, 0, p.Occurrence)
	require.Equal(t, 3, p.Label)

	real := graphdiff.Vertex{Label: 3, Occurrence: 1}
	require.False(t, real.IsPlaceholder())
}

func TestLabeledGraph_SelfLoopAllowed(t *testing.T) {
	v1 := graphdiff.Vertex{Label: 1, Occurrence: 1}
	g, err := graphdiff.NewLabeledGraph(
		[]graphdiff.Vertex{v1},
		v1,
		[]graphdiff.Edge{{From: v1, To: v1}},
	)
	require.NoError(t, err)
	require.True(t, g.HasEdge(v1, v1))
}
