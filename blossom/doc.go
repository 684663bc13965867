// Package blossom holds the engine-local bookkeeping for contracted odd
// cycles: the Blossom record and the Forest that nests blossoms by id.
//
// What:
//
//   - Blossom: an odd cycle of child ids (original vertices or other
//     blossoms) with the edges joining consecutive children. Cycle[0] is the
//     child holding the base, Edges[i] joins Cycle[i] and Cycle[(i+1)%len]
//     with Tail inside Cycle[i] and Head inside Cycle[i+1]. Under the
//     current matching, Edges[i] is matched exactly when i is odd, so the
//     base is the only vertex whose mate lies outside the blossom.
//   - Forest: an id-keyed tree. Original vertices occupy [0, n), blossoms
//     are allocated from [n, 2n). Parent links give Top (outermost
//     blossom), membership and the child index used to walk a cycle.
//
// Why:
//
//   - Nesting is represented as integer parent links rather than object
//     graphs, so finding the outermost blossom of a vertex, listing its
//     leaves and expanding one level are plain array walks.
//
// Paths:
//
//	PathToBase(b, v) lists the original vertices on the even-length
//	alternating path from v to the base of b that starts with a matched
//	edge. The search engines splice these segments together when an
//	augmenting path runs through a blossom.
//
// Errors:
//
//   - ErrOutOfRange     id outside [0, 2n).
//   - ErrNotBlossom     id does not name a live blossom.
//   - ErrInvalidBlossom malformed record (even/short cycle, edge count
//     mismatch, child already nested or missing).
//   - ErrCapacity       no free blossom id left.
//   - ErrNotMember      vertex is not nested inside the blossom.
package blossom
