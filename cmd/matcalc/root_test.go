// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

// run executes matcalc with args and stdin, returning stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

// grid splits tab-aligned output into per-line tokens.
func grid(s string) [][]string {
	var out [][]string
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		out = append(out, strings.Fields(line))
	}

	return out
}

func TestCLI_Mul(t *testing.T) {
	out, _, err := run(t, "", "mul", "--a", "2x3:1,4,2,5,3,6", "--b", "3x2:7,9,11,8,10,12")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"58", "64"}, {"139", "154"}}, grid(out))

	_, _, err = run(t, "", "mul", "--a", "2x3:1,4,2,5,3,6", "--b", "2x3:1,4,2,5,3,6")
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestCLI_InteractiveOperand(t *testing.T) {
	// A is read from stdin: 2x2, column-major 1 3 2 4.
	out, prompts, err := run(t, "2 2 1 3 2 4\n", "transpose")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"1", "3"}, {"2", "4"}}, grid(out))
	require.Contains(t, prompts, "rows: ")
	require.Contains(t, prompts, "M(1,1) = ")
}

func TestCLI_InteractiveBothOperands(t *testing.T) {
	out, _, err := run(t, "1 1 2\n1 1 5\n", "add")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"7"}}, grid(out))
}

func TestCLI_Verbose(t *testing.T) {
	_, stderr, err := run(t, "", "neg", "-v", "--a", "1:4")
	require.NoError(t, err)
	require.Contains(t, stderr, "A =\n[4]\n")
}

func TestCLI_Generators(t *testing.T) {
	out, _, err := run(t, "", "dij", "--rows", "2", "-i", "0", "-j", "1", "--ele", "5")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"0", "5"}, {"0", "0"}}, grid(out))

	out, _, err = run(t, "", "pij", "--dim", "3", "-i", "0", "-j", "1")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"0", "1", "0"}, {"1", "0", "0"}, {"0", "0", "1"}}, grid(out))

	out, _, err = run(t, "", "unit", "--dim", "2")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"1", "0"}, {"0", "1"}}, grid(out))

	out, _, err = run(t, "", "diag", "--values", "3,4")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"3", "0"}, {"0", "4"}}, grid(out))
}

func TestCLI_RandSeed(t *testing.T) {
	a, _, err := run(t, "", "rand", "--rows", "3", "--seed", "9")
	require.NoError(t, err)
	b, _, err := run(t, "", "rand", "--rows", "3", "--seed", "9")
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, grid(a), 3)

	_, _, err = run(t, "", "rand", "--lo", "2", "--hi", "1")
	require.ErrorIs(t, err, errOperand)
}

func TestCLI_PowAndSeries(t *testing.T) {
	out, _, err := run(t, "", "pow", "--a", "2:1,0,1,1", "-n", "3")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"1", "3"}, {"0", "1"}}, grid(out))

	_, _, err = run(t, "", "pow", "--a", "2:1,0,1,1", "--exp=-1")
	require.ErrorIs(t, err, matrix.ErrInvalidExponent)

	out, _, err = run(t, "", "powseries", "--a", "2:0,0,0,0", "--base", "3", "--ord", "5")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"1", "0"}, {"0", "1"}}, grid(out))
}

func TestCLI_Reductions(t *testing.T) {
	out, _, err := run(t, "", "max", "--a", "2x3:1,5,3,9,2,7")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"9"}}, grid(out))

	out, _, err = run(t, "", "min", "--a", "2x3:1,5,3,9,2,7")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"1"}}, grid(out))

	out, _, err = run(t, "", "diagof", "--a", "2x3:1,5,3,9,2,7")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"1"}, {"9"}}, grid(out))
}

func TestCLI_EqualAndPred(t *testing.T) {
	out, _, err := run(t, "", "equal", "--a", "2:1,2,2,1", "--b", "2:1,2,2,1")
	require.NoError(t, err)
	require.Equal(t, "true\n", out)

	out, _, err = run(t, "", "pred", "--a", "2:0,-1,1,0")
	require.NoError(t, err)
	require.Equal(t, "zero: false\nsquare: true\nunit: false\nsym: false\nasym: true\n", out)

	out, _, err = run(t, "", "pred", "--a", "1x2:0,0")
	require.NoError(t, err)
	require.Equal(t, "zero: true\nsquare: false\nunit: n/a\nsym: n/a\nasym: n/a\n", out)
}

func TestCLI_Env(t *testing.T) {
	out, _, err := run(t, "", "env")
	require.NoError(t, err)
	require.Contains(t, out, "GOMAXPROCS: ")
	require.Contains(t, out, "ParallelMinOps: ")
}
