// Sentinel errors returned by the graphdiff package. See doc.go for the
// package overview and the vertex-identity model.
//
// Errors:
//
//	ErrNilGraph                   - a nil *LabeledGraph was supplied.
//	ErrRootNotFound               - the declared root is not among the graph's vertices.
//	ErrPlaceholderVertex          - a vertex with Occurrence == 0 was found in a graph's vertex set.
//	ErrNonDenseOccurrence         - a label's occurrence numbers are not exactly {1..k}.
//	ErrParallelEdge               - two edges share the same (From, To) pair.
//	ErrIncompatibleInitialMapping - an initial mapping references a vertex absent from the supplied graphs, or whose labels disagree.
//	ErrResourceExhausted          - baseline enumeration exceeded its configured candidate ceiling.
//	ErrCancelled                  - a cooperative cancellation fired before any candidate was scored.
package graphdiff

import "errors"

// Validation errors (construction-time; §7 InvalidGraph family).
var (
	// ErrNilGraph indicates a nil *LabeledGraph was passed where a graph was required.
	ErrNilGraph = errors.New("graphdiff: graph is nil")

	// ErrRootNotFound indicates the graph's declared root is not among its vertices.
	ErrRootNotFound = errors.New("graphdiff: root vertex not found among graph vertices")

	// ErrPlaceholderVertex indicates a vertex with Occurrence == 0 (a placeholder)
	// was found in a graph's real vertex set; placeholders may never be members of V.
	ErrPlaceholderVertex = errors.New("graphdiff: placeholder vertex present in graph vertex set")

	// ErrNonDenseOccurrence indicates that, for some label, the set of occurrence
	// values present is not exactly {1, ..., k}.
	ErrNonDenseOccurrence = errors.New("graphdiff: vertex occurrences are not dense")

	// ErrDuplicateVertex indicates the same (label, occurrence) identity was supplied twice.
	ErrDuplicateVertex = errors.New("graphdiff: duplicate vertex identity")

	// ErrParallelEdge indicates two supplied edges share the same (From, To) endpoints.
	ErrParallelEdge = errors.New("graphdiff: parallel edge not allowed")

	// ErrUnknownEdgeEndpoint indicates an edge references a vertex absent from the graph.
	ErrUnknownEdgeEndpoint = errors.New("graphdiff: edge endpoint not in graph")
)

// Initial-mapping validation errors (annealing-specific; §7 IncompatibleInitialMapping).
var (
	// ErrIncompatibleInitialMapping indicates SetInitial was given a GraphMapping that
	// references a vertex not present in the graphs subsequently passed to ConstructDiff,
	// or whose mapped pair disagrees on label.
	ErrIncompatibleInitialMapping = errors.New("graphdiff: initial mapping incompatible with graphs")
)

// Runtime / governance errors (§7 ResourceExhausted and Cancelled).
var (
	// ErrResourceExhausted indicates BaselineEnumerator's Cartesian-product enumeration
	// would exceed its configured candidate-count ceiling.
	ErrResourceExhausted = errors.New("graphdiff: candidate enumeration exceeded configured ceiling")

	// ErrCancelled indicates a cooperative cancellation fired before any candidate
	// mapping was scored.
	ErrCancelled = errors.New("graphdiff: cancelled before any candidate was scored")
)
