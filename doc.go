// Package lvmatch computes matchings on general graphs, odd cycles included.
//
// 🚀 What is lvmatch?
//
//	An in-memory matching library built around Edmonds' blossom method:
//		• Graph model: int-id digraph with odd-cycle contraction and lifting
//		• Maximum-cardinality matching: alternating search with blossoms
//		• Gallai–Edmonds decomposition of a maximum matching
//		• Weighted matching: primal-dual method, max/min objectives, dual certificate
//		• Exhaustive oracle and synthetic graph builders for testing
//
// Packages:
//
//	digraph/    — Graph, Edge, Vertex; ContractCycle / LiftCycle; edge-list parsing
//	matching/   — Matching: partial involution with Add / Remove / Augment
//	blossom/    — Blossom records and the nesting Forest
//	edmonds/    — MaxMatching, Augment, Decompose
//	weighted/   — MaxWeight, MaxWeightMaxCardinality, MinWeight, MinWeightPerfect, CheckOptimality
//	bruteforce/ — exhaustive optima for small graphs
//	builder/    — Path, Cycle, Complete, Star, Wheel, Grid, SharedTriangles, RandomSparse, …
//	cmd/lvmatch — command-line driver
//
// Quick ASCII example:
//
//	    0───1
//	    │     ╲
//	    4      2
//	     ╲    │
//	      3───┘
//
//	a 5-cycle: any maximum matching has two pairs and leaves one vertex
//	exposed; the search shrinks the cycle into a blossom to prove it.
//
//	go get github.com/katalvlaran/lvmatch
package lvmatch
