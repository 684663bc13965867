// SPDX-License-Identifier: MIT

// Package builder assembles deterministic synthetic graphs for tests,
// benchmarks and the lvmatch CLI.
//
// A Constructor adds one topology to a *digraph.Graph; BuildGraph creates the
// graph, resolves the functional options into a builderConfig and applies
// the constructors in order. Vertex ids are plain ints starting at the
// configured offset (see Shift), so several constructors can be composed into
// disjoint components of one graph.
//
// Topologies:
//
//   - Path(n), Cycle(n), Complete(n), Star(n), Wheel(n)
//   - CompleteBipartite(a, b), Grid(rows, cols)
//   - SharedTriangles(k): k triangles chained through shared corners
//   - RandomSparse(n, p): every pair independently with probability p
//
// Edges are undirected (one arc each way) unless WithDirected is given.
// Weights come from the configured WeightFn: constant 1 by default,
// WithConstantWeight, WithWeightRange(lo, hi) for seeded uniform integers,
// or any WithWeightFn.
//
// Errors (all wrapped with the constructor name, match with errors.Is):
//
//	ErrTooFewVertices      size parameter below its minimum
//	ErrInvalidProbability  p outside [0,1]
//	ErrInvalidWeightRange  lo < 0 or hi < lo
//	ErrNeedRandSource      stochastic choice without WithSeed/WithRand
//	ErrConstructFailed     nil constructor or rejected graph mutation
//
// Determinism: equal options, seed and constructor order yield equal graphs.
package builder
