// Package weighted computes weight-optimal matchings on general graphs with
// the primal-dual blossom method (Edmonds, in Galil's formulation).
//
// Every original vertex v carries a dual alpha(v) and every blossom b a dual
// gamma(b) ≥ 0. The engine keeps
//
//	alpha(i) + alpha(j) + Σ gamma(b) ≥ w(i,j)      for every edge
//
// where the sum runs over blossoms holding both ends, with equality on every
// matched edge. Duals are stored doubled as int64, so integer weights never
// leave integer arithmetic.
//
// Each stage grows alternating trees from all exposed vertices over tight
// edges (zero slack), contracting blossoms and augmenting when two trees
// meet. When the trees stop growing the engine moves the duals by the
// smallest of four step sizes: an S vertex dual reaching zero, a tight S–free
// edge, a tight S–S edge between blossoms, or an inner blossom dual reaching
// zero (which expands that blossom).
//
// Before the first stage the edmonds engine matches the subgraph of
// maximum-weight edges, which is exactly the initial equality subgraph.
//
// Entry points:
//
//	MaxWeight                 heaviest matching of any size
//	MaxWeightMaxCardinality   heaviest among the maximum-cardinality matchings
//	MinWeight                 lightest among the maximum-cardinality matchings
//	MinWeightPerfect          lightest perfect matching, or ErrNoPerfectMatching
//
// Arc direction is ignored, loops are skipped and parallel arcs collapse to
// the one best for the objective. Results carry the original arc weights.
//
// Complexity: O(V³) time, O(V + E) space.
package weighted
