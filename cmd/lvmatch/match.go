package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatch/digraph"
	"github.com/katalvlaran/lvmatch/edmonds"
	"github.com/katalvlaran/lvmatch/matching"
	"github.com/katalvlaran/lvmatch/weighted"
)

const (
	flagMode       = "mode"
	flagDirected   = "directed-input"
	flagVerify     = "verify"
	flagStageLimit = "stage-limit"
)

// Matching modes.
const (
	modeCardinality = "cardinality"
	modeMax         = "max"
	modeMaxCard     = "max-card"
	modeMin         = "min"
	modeMinPerfect  = "min-perfect"
)

var modes = []string{modeCardinality, modeMax, modeMaxCard, modeMin, modeMinPerfect}

func newMatchCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match [file]",
		Short: `Match a "TAIL HEAD WEIGHT" edge list read from file or stdin`,
		Long: `Match a "TAIL HEAD WEIGHT" edge list read from file or stdin.

Vertex ids are dense indices: the graph holds every id up to the largest one
read, and ids of 2^20 or more are rejected.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runMatch,
	}
	f := cmd.Flags()
	f.String(flagMode, modeCardinality, "objective: "+strings.Join(modes, ", "))
	f.Bool(flagDirected, false, "keep arcs as given instead of adding both directions")
	f.Bool(flagVerify, false, "check the dual certificate of weighted results")
	f.Int(flagStageLimit, 0, "stop after this many stages (0 = unlimited)")

	return cmd
}

func (a *app) runMatch(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	edges, err := digraph.ReadEdges(in)
	if err != nil {
		return err
	}
	g, err := digraph.FromEdges(edges, !a.v.GetBool(flagDirected))
	if err != nil {
		return err
	}
	a.log.Debug().Int("vertices", g.Len()).Int("arcs", g.EdgeCount()).Msg("graph loaded")

	mode := a.v.GetString(flagMode)
	m, err := a.solve(g, mode)
	if err != nil {
		return fmt.Errorf("%s: %w", mode, err)
	}
	a.log.Info().Str("mode", mode).Int("pairs", m.Count()).Int64("weight", m.Weight()).Msg("matched")

	return printMatching(cmd.OutOrStdout(), m)
}

// solve dispatches mode onto an engine.
func (a *app) solve(g *digraph.Graph, mode string) (*matching.Matching, error) {
	limit := a.v.GetInt(flagStageLimit)
	if mode == modeCardinality {
		return edmonds.MaxMatching(g, edmonds.WithLogger(a.log), edmonds.WithStageLimit(limit))
	}

	opts := []weighted.Option{weighted.WithLogger(a.log), weighted.WithStageLimit(limit)}
	if a.v.GetBool(flagVerify) {
		opts = append(opts, weighted.WithVerify())
	}
	switch mode {
	case modeMax:
		return weighted.MaxWeight(g, opts...)
	case modeMaxCard:
		return weighted.MaxWeightMaxCardinality(g, opts...)
	case modeMin:
		return weighted.MinWeight(g, opts...)
	case modeMinPerfect:
		return weighted.MinWeightPerfect(g, opts...)
	}

	return nil, fmt.Errorf("%q (want one of %s): %w", mode, strings.Join(modes, ", "), ErrUnknownMode)
}

func printMatching(w io.Writer, m *matching.Matching) error {
	if _, err := fmt.Fprintf(w, "count %d\nweight %d\n", m.Count(), m.Weight()); err != nil {
		return err
	}
	for _, p := range m.Pairs() {
		if _, err := fmt.Fprintf(w, "%d %d %d\n", p.U, p.V, p.Weight); err != nil {
			return err
		}
	}

	return nil
}
