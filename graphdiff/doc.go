// Package graphdiff computes an approximate maximum common labeled subgraph
// mapping between two directed graphs whose vertices carry integer labels
// that may repeat.
//
// Given two LabeledGraph values G1 and G2, the package produces a
// GraphMapping: a partial injective correspondence between vertices of G1
// and G2 that preserves labels and maximizes a lexicographic objective of
// (edges preserved, vertices matched). Two independent engines compute this
// mapping:
//
//   - BaselineEnumerator enumerates every label-consistent partial injection
//     and returns the exact argmax. It is exponential in the size of the
//     largest label bucket and is intended as a correctness oracle for small
//     graphs.
//   - AnnealingSearch performs a simulated-annealing local search over
//     label-consistent total assignments, rescoring incrementally after each
//     swap move. It is randomized and best-effort, but runs in O(|V|+|E|)
//     memory and scales to much larger graphs.
//
// Both engines share the same data model (LabeledGraph, Vertex) and score
// the mappings they return with the same function (Scorer), so their results
// are directly comparable. BaselineEnumerator groups vertices with
// LabelIndex; AnnealingSearch keeps its own per-label buckets of dense
// indices.
//
// # Vertex identity
//
// Every vertex is identified by a (Label, Occurrence) pair. Occurrence
// disambiguates repeated labels within one graph; Occurrence == 0 is
// reserved for placeholder vertices, which only ever appear as the targets
// of unmatched slots inside a GraphMapping or a LabelIndex bucket — never as
// members of a LabeledGraph's vertex set.
//
// # Scope
//
// Graph construction, rendering/visualization, synthetic workflow
// generation, and any persisted or wire representation of a GraphMapping are
// explicitly out of scope: callers supply LabeledGraph values and consume a
// GraphMapping value. See internal/testgraphs for graph builders used only
// by this package's own tests, and internal/gonumview for an optional
// read-only view of a LabeledGraph built on gonum's graph.Node and
// graph.Line types (it does not implement gonum's graph interfaces).
package graphdiff
