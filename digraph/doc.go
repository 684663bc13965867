// Package digraph defines the integer-keyed adjacency digraph used by the
// matching engines, together with its Edge and Vertex value types and the two
// structural transformations blossom handling relies on: contracting an odd
// cycle into a pseudo-vertex and lifting a pseudo-vertex back into its
// interior.
//
// Model:
//
//   - Vertex ids are non-negative ints. A Graph built with New(n) accepts
//     original ids in [0, n) and reserves [n, 2n) for pseudo-vertices created
//     by ContractCycle.
//   - Arcs are ordered (Tail, Head, Weight≥0). Undirected graphs store both
//     directions; AddUndirected does that in one call.
//   - A Vertex is a tagged variant: KindSimple (no interior) or KindPseudo
//     (an odd cycle of member ids, the arcs witnessing the cycle, and enough
//     saved state to restore the members exactly).
//
// Snapshots:
//
//	ContractCycle, LiftCycle and Clone never mutate the receiver; they return
//	a fresh *Graph. Vertex values are immutable once created and are shared
//	between snapshots. AddVertex/AddEdge mutate in place and are meant for the
//	owner of a snapshot while building it. There is no internal locking: a
//	snapshot must not be mutated while another goroutine reads it.
//
// Input:
//
//	ParseLine, ReadEdges and Parse accept the line-oriented "TAIL HEAD WEIGHT" format, one arc
//	per line; unseen ids are created on first reference.
//
// Errors:
//
//	ErrNegativeWeight    - arc weight below zero.
//	ErrVertexOutOfRange  - id outside the graph's id space.
//	ErrVertexNotFound    - id not live in this snapshot.
//	ErrLoopNotAllowed    - self-loop without WithLoops().
//	ErrInvalidCycle      - even, short, repeated or non-closed cycle.
//	ErrNotPseudo         - LiftCycle on a simple vertex.
//	ErrCapacityExhausted - no free pseudo-vertex id left.
//	ErrMalformedLine     - text input not of the form "TAIL HEAD WEIGHT".
package digraph
