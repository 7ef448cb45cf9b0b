// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/densemat/matrix"
)

func newUnitCmd() *cobra.Command {
	var dim int
	cmd := &cobra.Command{
		Use:   "unit",
		Short: "dim×dim identity matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := matrix.Unit(dim)
			if err != nil {
				return err
			}
			return show(cmd, res)
		},
	}
	cmd.Flags().IntVar(&dim, "dim", 1, "matrix order")

	return cmd
}

func newDiagCmd() *cobra.Command {
	var values string
	cmd := &cobra.Command{
		Use:   "diag",
		Short: "square matrix with the given values on the main diagonal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vals, err := parseValues(values)
			if err != nil {
				return err
			}
			res, err := matrix.Diag(vals)
			if err != nil {
				return err
			}
			return show(cmd, res)
		},
	}
	cmd.Flags().StringVar(&values, "values", "", "comma-separated diagonal values")

	return cmd
}

func newDijCmd() *cobra.Command {
	var (
		i, j, rows, cols int
		ele              float64
	)
	cmd := &cobra.Command{
		Use:   "dij",
		Short: "zero matrix with ele at (i, j)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("cols") {
				cols = rows
			}
			res, err := matrix.Dij(i, j, rows, cols, ele)
			if err != nil {
				return err
			}
			return show(cmd, res)
		},
	}
	cmd.Flags().IntVarP(&i, "row", "i", 0, "zero-based row of the entry")
	cmd.Flags().IntVarP(&j, "col", "j", 0, "zero-based column of the entry")
	cmd.Flags().IntVar(&rows, "rows", 1, "row count")
	cmd.Flags().IntVar(&cols, "cols", 1, "column count (defaults to --rows)")
	cmd.Flags().Float64Var(&ele, "ele", 1, "entry value")

	return cmd
}

func newPijCmd() *cobra.Command {
	var i, j, dim int
	cmd := &cobra.Command{
		Use:   "pij",
		Short: "identity with rows i and j swapped",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := matrix.Pij(i, j, dim)
			if err != nil {
				return err
			}
			return show(cmd, res)
		},
	}
	cmd.Flags().IntVarP(&i, "row", "i", 0, "first zero-based row")
	cmd.Flags().IntVarP(&j, "col", "j", 0, "second zero-based row")
	cmd.Flags().IntVar(&dim, "dim", 1, "matrix order")

	return cmd
}

func newRandCmd() *cobra.Command {
	var (
		rows, cols int
		seed       int64
		lo, hi     float64
	)
	cmd := &cobra.Command{
		Use:   "rand",
		Short: "rows×cols matrix of uniform values in [lo, hi)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("cols") {
				cols = rows
			}
			if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
				return fmt.Errorf("%w: range [%g, %g)", errOperand, lo, hi)
			}
			opts := []matrix.Option{matrix.WithRange(lo, hi)}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, matrix.WithSeed(seed))
			}
			res, err := matrix.Randmat(rows, cols, opts...)
			if err != nil {
				return err
			}
			return show(cmd, res)
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 1, "row count")
	cmd.Flags().IntVar(&cols, "cols", 1, "column count (defaults to --rows)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "fix the generator seed for reproducible output")
	cmd.Flags().Float64Var(&lo, "lo", matrix.DefaultRandLow, "lower bound (inclusive)")
	cmd.Flags().Float64Var(&hi, "hi", matrix.DefaultRandHigh, "upper bound (exclusive)")

	return cmd
}
