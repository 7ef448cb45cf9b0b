// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures so each test states its operands
//     the way a reader sees them (row-major literals), while the code under
//     test stays column-major.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// NewFilledDense builds a matrix from a row-major literal.
// Every row must have the same length.
func NewFilledDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	require.NotEmpty(t, rows)
	m := MustDense(t, len(rows), len(rows[0]))
	for i, row := range rows {
		require.Len(t, row, len(rows[0]), "ragged literal at row %d", i)
		for j, v := range row {
			MustSet(t, m, i, j, v)
		}
	}

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet writes (i, j) or fails the test.
func MustSet(t *testing.T, m *matrix.Dense, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// MustEqual asserts exact equality of two initialized matrices.
func MustEqual(t *testing.T, want, got *matrix.Dense) {
	t.Helper()
	eq, err := matrix.Equal(want, got)
	require.NoError(t, err)
	require.True(t, eq, "want\n%sgot\n%s", want, got)
}

// MustClose asserts AllClose(want, got, 1e-9, 1e-12).
func MustClose(t *testing.T, want, got *matrix.Dense) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 1e-9, 1e-12)
	require.NoError(t, err)
	require.True(t, ok, "want\n%sgot\n%s", want, got)
}

// RandFilledDense returns an r×c matrix of values in [-1, 1) from a fixed seed.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	buf := make([]float64, r*c)
	for k := range buf {
		buf[k] = rng.Float64()*2 - 1
	}
	require.NoError(t, m.Load(buf))

	return m
}

// RandIntDense returns an r×c matrix of integers in [-9, 9] from a fixed
// seed. Integer values keep sums and differences exact in float64.
func RandIntDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	buf := make([]float64, r*c)
	for k := range buf {
		buf[k] = float64(rng.Intn(19) - 9)
	}
	require.NoError(t, m.Load(buf))

	return m
}
