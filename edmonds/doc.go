// Package edmonds computes a maximum-cardinality matching on a general
// (non-bipartite) graph with Edmonds' blossom algorithm, and derives the
// Gallai–Edmonds decomposition of a maximum matching.
//
// What:
//
//   - Run / MaxMatching: one stage per exposed root u, in ascending id order.
//     A stage rebuilds the auxiliary arc set A and the exposed witnesses from
//     the current matching, then grows an alternating tree from u by BFS:
//     S (outer) nodes are scanned, T (inner) vertices are stepped over to
//     their mates in one hop, and an arc closing an odd cycle between two
//     S nodes contracts that cycle into a blossom. As soon as an S node has
//     an exposed neighbour the path back to u is expanded through every
//     blossom it crosses and handed to matching.Augment.
//   - Decompose: runs the same search from every exposed vertex at once
//     and classifies vertices as Outer (even), Inner (odd) or Rest.
//
// Why:
//
//   - A vertex with no augmenting path never gains one after later
//     augmentations, so each root needs a single stage and the whole run
//     is O(V·E) per stage, O(V²·E) overall.
//   - All scratch state lives in a per-stage search context; blossoms are
//     dissolved when the stage ends, so an Engine carries nothing but
//     counters between stages.
//
// Options:
//
//   - WithLogger(zerolog.Logger)    stage, blossom and augment tracing
//   - WithStageLimit(n)             stop after n stages with ErrStageLimit
//   - WithAdmissible(func(Edge) bool) restrict the search to a subgraph
//
// Input:
//
//	Arcs are read as undirected edges: an arc a→b without a reverse arc is
//	still usable in both directions. Self-loops and live pseudo-vertices
//	(ids at or above Order()) are ignored.
//
// Errors:
//
//   - ErrGraphNil        nil graph.
//   - ErrSizeMismatch    starting matching does not cover Order() ids.
//   - ErrForeignPair     starting matching pairs two non-adjacent vertices.
//   - ErrStageLimit      stage budget exhausted; the partial matching is
//     returned alongside.
//   - ErrNotMaximum      Decompose found an augmenting path.
//
// Internal consistency failures panic with *InvariantError naming the
// offending vertex or blossom id.
package edmonds
