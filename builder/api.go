// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// api.go — public entry points of the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(order, bopts, cons...). Creates g, resolves
//     cfg, runs cons in order.
//   - Functional options resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ equal graphs.
//   - Constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/digraph"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters first and return
// sentinel errors; ids they touch start at cfg.offset.
type Constructor func(g *digraph.Graph, cfg builderConfig) error

// BuildGraph creates a digraph.Graph of the given order, resolves the
// builder configuration from bopts and applies all constructors in order.
// The first error is wrapped as "BuildGraph: %w" and returned; no partial
// graph is returned.
//
// Complexity: O(len(bopts)) plus the sum of the constructors' costs.
func BuildGraph(order int, bopts []BuilderOption, cons ...Constructor) (*digraph.Graph, error) {
	cfg, err := newBuilderConfig(bopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	g := digraph.New(order)
	if err = Apply(g, cfg, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Build is BuildGraph for a single constructor over order ids, with options
// taken variadically.
func Build(n int, con Constructor, opts ...BuilderOption) (*digraph.Graph, error) {
	return BuildGraph(n, opts, con)
}

// Apply runs cons against an existing graph.
func Apply(g *digraph.Graph, cfg builderConfig, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("nil graph: %w", ErrConstructFailed)
	}
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// Shift runs con with its ids moved up by k, so that composed constructors
// can occupy disjoint id ranges.
func Shift(k int, con Constructor) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		if con == nil {
			return fmt.Errorf("Shift: nil constructor: %w", ErrConstructFailed)
		}
		cfg.offset += k

		return con(g, cfg)
	}
}
