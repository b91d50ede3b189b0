// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts for the
// adjacency surface actually exercised by this module: vertex insertion,
// edge insertion under directed/undirected and loop policies, membership
// queries, and neighbor enumeration.

package core_test

import (
	"errors"
	"testing"

	"github.com/alexander-bzikadze/graph-diff/core"
)

func mustErrorIs(t *testing.T, err, target error, op string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
	}
}

func mustNoError(t *testing.T, err error, op string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", op, err)
	}
}

// TestGraph_AddVertex verifies the empty-ID rejection and idempotency
// contracts of AddVertex.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	mustErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID, "AddVertex(empty)")
	mustNoError(t, g.AddVertex("A"), "AddVertex(A)")
	// Re-adding an existing vertex is a no-op, not an error.
	mustNoError(t, g.AddVertex("A"), "AddVertex(A) again")
}

// TestGraph_AddEdge_DirectedDefault verifies that a directed graph stores
// only the forward adjacency entry.
func TestGraph_AddEdge_DirectedDefault(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))

	eid, err := g.AddEdge("A", "B")
	mustNoError(t, err, "AddEdge(A,B)")
	if eid == "" {
		t.Fatalf("AddEdge(A,B): got empty edge ID")
	}
	if !g.HasEdge("A", "B") {
		t.Fatalf("HasEdge(A,B): want true")
	}
	if g.HasEdge("B", "A") {
		t.Fatalf("HasEdge(B,A): want false for a directed edge")
	}
}

// TestGraph_AddEdge_UndirectedMirrorsAdjacency verifies that an undirected
// graph makes HasEdge symmetric.
func TestGraph_AddEdge_UndirectedMirrorsAdjacency(t *testing.T) {
	g := core.NewGraph(core.WithDirected(false))

	_, err := g.AddEdge("A", "B")
	mustNoError(t, err, "AddEdge(A,B)")
	if !g.HasEdge("A", "B") || !g.HasEdge("B", "A") {
		t.Fatalf("HasEdge: want both directions true for an undirected edge")
	}
}

// TestGraph_AddEdge_LoopPolicy verifies that self-loops are rejected unless
// WithLoops is set.
func TestGraph_AddEdge_LoopPolicy(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "A")
	mustErrorIs(t, err, core.ErrLoopNotAllowed, "AddEdge(A,A) without WithLoops")

	gl := core.NewGraph(core.WithDirected(true), core.WithLoops())
	_, err = gl.AddEdge("A", "A")
	mustNoError(t, err, "AddEdge(A,A) with WithLoops")
	if !gl.HasEdge("A", "A") {
		t.Fatalf("HasEdge(A,A): want true after a self-loop")
	}
}

// TestGraph_AddEdge_RejectsParallelEdge verifies that a second edge between
// the same ordered pair is rejected, regardless of graph configuration.
func TestGraph_AddEdge_RejectsParallelEdge(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))

	_, err := g.AddEdge("A", "B")
	mustNoError(t, err, "AddEdge(A,B) first")

	_, err = g.AddEdge("A", "B")
	mustErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "AddEdge(A,B) second")
}

// TestGraph_AddEdge_EmptyEndpoint verifies that an empty endpoint ID is
// rejected before any vertex is created.
func TestGraph_AddEdge_EmptyEndpoint(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("", "B")
	mustErrorIs(t, err, core.ErrEmptyVertexID, "AddEdge(empty,B)")
}

// TestGraph_Neighbors_DirectedOutgoingOnly verifies that Neighbors on a
// directed graph returns only outgoing edges, sorted by Edge.ID.
func TestGraph_Neighbors_DirectedOutgoingOnly(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))

	mustNoError(t, g.AddVertex("A"), "AddVertex(A)")
	_, err := g.AddEdge("A", "B")
	mustNoError(t, err, "AddEdge(A,B)")
	_, err = g.AddEdge("C", "A")
	mustNoError(t, err, "AddEdge(C,A)")

	nbs, err := g.Neighbors("A")
	mustNoError(t, err, "Neighbors(A)")
	if len(nbs) != 1 || nbs[0].To != "B" {
		t.Fatalf("Neighbors(A): got %+v, want exactly one outgoing edge to B", nbs)
	}
}

// TestGraph_Neighbors_UnknownVertex verifies the sentinel error contract for
// Neighbors on a non-existent vertex.
func TestGraph_Neighbors_UnknownVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("ghost")
	mustErrorIs(t, err, core.ErrVertexNotFound, "Neighbors(ghost)")
}

// TestGraph_NextEdgeID_Monotonic verifies that successive edges receive
// distinct, increasing textual IDs.
func TestGraph_NextEdgeID_Monotonic(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))

	first, err := g.AddEdge("A", "B")
	mustNoError(t, err, "AddEdge(A,B)")
	second, err := g.AddEdge("A", "C")
	mustNoError(t, err, "AddEdge(A,C)")

	if first == second {
		t.Fatalf("edge IDs must be unique: got %q twice", first)
	}
	if second <= first {
		t.Fatalf("edge IDs must increase: got %q then %q", first, second)
	}
}
