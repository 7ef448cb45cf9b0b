// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/densemat/matrix"
)

func newBinaryCmd(s *session, use, short string, op func(a, b *matrix.Dense) (*matrix.Dense, error)) *cobra.Command {
	var litA, litB string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := s.operand(cmd, "A", litA)
			if err != nil {
				return err
			}
			b, err := s.operand(cmd, "B", litB)
			if err != nil {
				return err
			}
			res, err := op(a, b)
			if err != nil {
				return err
			}
			return show(cmd, res)
		},
	}
	cmd.Flags().StringVar(&litA, "a", "", `operand A as "RxC:v,..." (column-major); prompt when empty`)
	cmd.Flags().StringVar(&litB, "b", "", `operand B as "RxC:v,..." (column-major); prompt when empty`)

	return cmd
}

func newUnaryCmd(s *session, use, short string, op func(a *matrix.Dense) (*matrix.Dense, error)) *cobra.Command {
	var litA string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := s.operand(cmd, "A", litA)
			if err != nil {
				return err
			}
			res, err := op(a)
			if err != nil {
				return err
			}
			return show(cmd, res)
		},
	}
	cmd.Flags().StringVar(&litA, "a", "", `operand A as "RxC:v,..." (column-major); prompt when empty`)

	return cmd
}

func newEqualCmd(s *session) *cobra.Command {
	var litA, litB string
	cmd := &cobra.Command{
		Use:   "equal",
		Short: "report whether A == B exactly",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := s.operand(cmd, "A", litA)
			if err != nil {
				return err
			}
			b, err := s.operand(cmd, "B", litB)
			if err != nil {
				return err
			}
			eq, err := matrix.Equal(a, b)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), eq)
			return err
		},
	}
	cmd.Flags().StringVar(&litA, "a", "", "operand A")
	cmd.Flags().StringVar(&litB, "b", "", "operand B")

	return cmd
}

func newScaleCmd(s *session) *cobra.Command {
	var (
		litA  string
		alpha float64
	)
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "alpha · A",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := s.operand(cmd, "A", litA)
			if err != nil {
				return err
			}
			res, err := matrix.Scale(alpha, a)
			if err != nil {
				return err
			}
			return show(cmd, res)
		},
	}
	cmd.Flags().StringVar(&litA, "a", "", "operand A")
	cmd.Flags().Float64Var(&alpha, "by", 1, "scalar factor")

	return cmd
}

func newPowCmd(s *session) *cobra.Command {
	var (
		litA string
		n    int
	)
	cmd := &cobra.Command{
		Use:   "pow",
		Short: "A^n for square A and n >= 0",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := s.operand(cmd, "A", litA)
			if err != nil {
				return err
			}
			res, err := matrix.Pow(a, n)
			if err != nil {
				return err
			}
			return show(cmd, res)
		},
	}
	cmd.Flags().StringVar(&litA, "a", "", "operand A")
	cmd.Flags().IntVarP(&n, "exp", "n", 1, "non-negative exponent")

	return cmd
}

func newPowSeriesCmd(s *session) *cobra.Command {
	var (
		litA string
		base float64
		ord  int
	)
	cmd := &cobra.Command{
		Use:   "powseries",
		Short: "base^A by the truncated series Σ (ln base)^k A^k / k!",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := s.operand(cmd, "A", litA)
			if err != nil {
				return err
			}
			res, err := matrix.PowSeries(base, a, ord)
			if err != nil {
				return err
			}
			return show(cmd, res)
		},
	}
	cmd.Flags().StringVar(&litA, "a", "", "operand A")
	cmd.Flags().Float64Var(&base, "base", 2, "positive scalar base")
	cmd.Flags().IntVar(&ord, "ord", 20, "number of series terms")

	return cmd
}

// newPredCmd prints every structural predicate of A. Predicates that require a
// square matrix are reported as "n/a" for rectangular input.
func newPredCmd(s *session) *cobra.Command {
	var litA string
	cmd := &cobra.Command{
		Use:   "pred",
		Short: "report zero/square/unit/symmetric/antisymmetric predicates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := s.operand(cmd, "A", litA)
			if err != nil {
				return err
			}
			preds := []struct {
				name string
				fn   func(*matrix.Dense) (bool, error)
			}{
				{"zero", matrix.IsZero},
				{"square", matrix.IsSquare},
				{"unit", matrix.IsUnit},
				{"sym", matrix.IsSym},
				{"asym", matrix.IsAntiSym},
			}
			out := cmd.OutOrStdout()
			for _, p := range preds {
				ok, err := p.fn(a)
				switch {
				case errors.Is(err, matrix.ErrNonSquare):
					_, err = fmt.Fprintf(out, "%s: n/a\n", p.name)
				case err != nil:
					return err
				default:
					_, err = fmt.Fprintf(out, "%s: %t\n", p.name, ok)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&litA, "a", "", "operand A")

	return cmd
}
