// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/densemat/console"
	"github.com/katalvlaran/densemat/matrix"
)

// session carries per-invocation state shared by subcommands.
type session struct {
	verbose bool
	reader  *console.Reader // created on first interactive operand
}

func newRootCmd() *cobra.Command {
	s := &session{}
	root := &cobra.Command{
		Use:          "matcalc",
		Short:        "Evaluate dense-matrix operations",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "echo operands to stderr before evaluating")

	root.AddCommand(
		newBinaryCmd(s, "add", "A + B", matrix.Add),
		newBinaryCmd(s, "sub", "A - B", matrix.Sub),
		newBinaryCmd(s, "mul", "A × B", matrix.Mul),
		newBinaryCmd(s, "lie", "Lie bracket AB - BA", matrix.Lie),
		newEqualCmd(s),
		newUnaryCmd(s, "neg", "-A", matrix.Neg),
		newUnaryCmd(s, "transpose", "Aᵀ", matrix.Transpose),
		newUnaryCmd(s, "abs", "|A| element-wise", matrix.Abs),
		newUnaryCmd(s, "max", "largest element of A as a 1x1 matrix", matrix.Max),
		newUnaryCmd(s, "min", "smallest element of A as a 1x1 matrix", matrix.Min),
		newUnaryCmd(s, "diagof", "main diagonal of A as a column vector", matrix.DiagOf),
		newScaleCmd(s),
		newPowCmd(s),
		newPowSeriesCmd(s),
		newPredCmd(s),
		newUnitCmd(),
		newDiagCmd(),
		newDijCmd(),
		newPijCmd(),
		newRandCmd(),
		newEnvCmd(),
	)

	return root
}

// operand returns the matrix given by the flag literal, or reads one
// interactively from the command's input when the literal is empty.
func (s *session) operand(cmd *cobra.Command, name, literal string) (*matrix.Dense, error) {
	var (
		m   *matrix.Dense
		err error
	)
	if literal != "" {
		m, err = parseOperand(literal)
	} else {
		if s.reader == nil {
			s.reader = console.NewReader(cmd.InOrStdin(), cmd.ErrOrStderr())
		}
		cmd.PrintErrf("matrix %s\n", name)
		m, err = s.reader.ReadNew()
	}
	if err != nil {
		return nil, err
	}
	if s.verbose {
		cmd.PrintErrf("%s =\n%s", name, m)
	}

	return m, nil
}

// show prints m to the command's output.
func show(cmd *cobra.Command, m *matrix.Dense) error {
	return console.Display(cmd.OutOrStdout(), m)
}
