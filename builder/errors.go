// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// errors.go — sentinel errors of the builder package.
//
// Wrapping style: "<Method>: <context>: %w", so errors.Is keeps working and
// the message names the constructor that failed.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols, k) below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidWeightRange indicates WithWeightRange(lo, hi) with lo < 0 or hi < lo.
var ErrInvalidWeightRange = errors.New("builder: invalid weight range")

// ErrNeedRandSource indicates a stochastic choice without a *rand.Rand
// (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a graph mutation the
// digraph package refused (id beyond the graph order, for instance).
var ErrConstructFailed = errors.New("builder: construction failed")
