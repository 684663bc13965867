// Package matching implements the Matching value shared by every engine in
// lvmatch: an array-backed partial involution over vertex ids with
// incrementally tracked pair count and weight.
//
// What:
//
//   - mate(v) = w  ⇔  mate(w) = v, or Unmatched.
//   - Add / Remove record and drop single pairs, rejecting inconsistent
//     requests instead of coercing them.
//   - Augment toggles an alternating path atomically: every matched edge on
//     the path is removed first, then every other edge is added. A path that
//     fails validation leaves the matching untouched.
//
// Why:
//
//   - The engines only ever grow a matching by augmenting paths; keeping that
//     operation atomic and validated turns bookkeeping bugs in the search into
//     immediate errors rather than silently corrupted results.
//
// Determinism:
//
//   - Pairs() and Edges() enumerate matched pairs sorted by lower endpoint.
//
// Complexity:
//
//   - Add, Remove, Mate, IsMatched: O(1).
//   - Augment: O(len(path)).
//   - Pairs, Exposed, Validate: O(n).
//
// Errors:
//
//   - ErrOutOfRange      vertex id outside [0, Len()).
//   - ErrSelfLoop        an edge from a vertex to itself.
//   - ErrAlreadyMatched  Add on an endpoint that already has a mate.
//   - ErrNotMatched      Remove on an unmatched vertex.
//   - ErrMismatchedPair  Remove with an edge that is not the recorded pair.
//   - ErrInvalidPath     Augment with a broken or non-alternating path.
//   - ErrCorrupt         Validate found a broken involution or stale totals.
package matching
