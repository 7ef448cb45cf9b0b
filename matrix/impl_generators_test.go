// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

func TestDiag(t *testing.T) {
	d, err := matrix.Diag([]float64{1, 2, 3})
	require.NoError(t, err)
	MustEqual(t, NewFilledDense(t, [][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}}), d)

	_, err = matrix.Diag(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDiagOf_ColumnVector(t *testing.T) {
	for _, tc := range []struct {
		name string
		rows [][]float64
		want []float64
	}{
		{"square", [][]float64{{1, 2}, {3, 4}}, []float64{1, 4}},
		{"wide", [][]float64{{1, 2, 3}, {4, 5, 6}}, []float64{1, 5}},
		{"tall", [][]float64{{1}, {2}, {3}}, []float64{1}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.DiagOf(NewFilledDense(t, tc.rows))
			require.NoError(t, err)
			require.Equal(t, len(tc.want), got.Rows())
			require.Equal(t, 1, got.Cols())
			if diff := cmp.Diff(tc.want, got.Raw()); diff != "" {
				t.Fatalf("DiagOf mismatch (-want +got):\n%s", diff)
			}
		})
	}

	// Diag ∘ DiagOf is the identity on diagonal matrices.
	d, _ := matrix.Diag([]float64{5, -1, 2})
	v, err := matrix.DiagOf(d)
	require.NoError(t, err)
	back, err := matrix.Diag(v.Raw())
	require.NoError(t, err)
	MustEqual(t, d, back)

	_, err = matrix.DiagOf(&matrix.Dense{})
	require.ErrorIs(t, err, matrix.ErrUninitialized)
}

func TestUnit(t *testing.T) {
	u, err := matrix.Unit(3)
	require.NoError(t, err)
	ok, err := matrix.IsUnit(u)
	require.NoError(t, err)
	require.True(t, ok)

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	MustEqual(t, u, id)

	_, err = matrix.Unit(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDij_Scenario builds DijSquare(0,1,2,5): only (0,1) holds 5.
func TestDij_Scenario(t *testing.T) {
	d, err := matrix.DijSquare(0, 1, 2, 5.0)
	require.NoError(t, err)
	MustEqual(t, NewFilledDense(t, [][]float64{{0, 5}, {0, 0}}), d)
}

func TestDij_OverloadsAgree(t *testing.T) {
	want, err := matrix.Dij(1, 2, 3, 4, -2.5)
	require.NoError(t, err)
	require.Equal(t, -2.5, MustAt(t, want, 1, 2))

	ix := matrix.Index{1, 2}
	sh := matrix.Shape{3, 4}
	for name, build := range map[string]func() (*matrix.Dense, error){
		"DijIndex":      func() (*matrix.Dense, error) { return matrix.DijIndex(ix, 3, 4, -2.5) },
		"DijShape":      func() (*matrix.Dense, error) { return matrix.DijShape(1, 2, sh, -2.5) },
		"DijIndexShape": func() (*matrix.Dense, error) { return matrix.DijIndexShape(ix, sh, -2.5) },
	} {
		got, err := build()
		require.NoError(t, err, name)
		MustEqual(t, want, got)
	}

	sq, err := matrix.DijSquare(2, 0, 3, 1)
	require.NoError(t, err)
	sqIx, err := matrix.DijIndexSquare(matrix.Index{2, 0}, 3, 1)
	require.NoError(t, err)
	MustEqual(t, sq, sqIx)
}

func TestDij_Errors(t *testing.T) {
	_, err := matrix.Dij(0, 0, 0, 2, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Dij(2, 0, 2, 2, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.DijIndexSquare(matrix.Index{0, -1}, 2, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestPij_SwapsIdentityRows checks Pij(0,1,3)·I == {{0,1,0},{1,0,0},{0,0,1}}.
func TestPij_SwapsIdentityRows(t *testing.T) {
	p, err := matrix.Pij(0, 1, 3)
	require.NoError(t, err)
	u, err := matrix.Unit(3)
	require.NoError(t, err)
	got, err := matrix.Mul(p, u)
	require.NoError(t, err)
	MustEqual(t, NewFilledDense(t, [][]float64{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}}), got)
}

func TestPij_RowAndColumnSwap(t *testing.T) {
	a := NewFilledDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	p, err := matrix.PijIndex(matrix.Index{0, 2}, 3)
	require.NoError(t, err)

	rows, err := matrix.Mul(p, a)
	require.NoError(t, err)
	MustEqual(t, NewFilledDense(t, [][]float64{{7, 8, 9}, {4, 5, 6}, {1, 2, 3}}), rows)

	cols, err := matrix.Mul(a, p)
	require.NoError(t, err)
	MustEqual(t, NewFilledDense(t, [][]float64{{3, 2, 1}, {6, 5, 4}, {9, 8, 7}}), cols)

	// Involution and symmetry.
	pp, err := matrix.Pow(p, 2)
	require.NoError(t, err)
	ok, err := matrix.IsUnit(pp)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = matrix.IsSym(p)
	require.NoError(t, err)
	require.True(t, ok)

	same, err := matrix.Pij(1, 1, 3)
	require.NoError(t, err)
	ok, _ = matrix.IsUnit(same)
	require.True(t, ok)

	_, err = matrix.Pij(0, 3, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestRandmat_SeedReproducible(t *testing.T) {
	a, err := matrix.Randmat(3, 4, matrix.WithSeed(42))
	require.NoError(t, err)
	b, err := matrix.Randmat(3, 4, matrix.WithSeed(42))
	require.NoError(t, err)
	MustEqual(t, a, b)

	c, err := matrix.Randmat(3, 4, matrix.WithSeed(43))
	require.NoError(t, err)
	ne, err := matrix.NotEqual(a, c)
	require.NoError(t, err)
	require.True(t, ne)

	// WithRand draws the same stream as WithSeed on the same seed.
	d, err := matrix.Randmat(3, 4, matrix.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	MustEqual(t, a, d)
}

func TestRandmat_UnseededCallsDiffer(t *testing.T) {
	a, err := matrix.RandSquare(4)
	require.NoError(t, err)
	b, err := matrix.RandSquare(4)
	require.NoError(t, err)
	ne, err := matrix.NotEqual(a, b)
	require.NoError(t, err)
	require.True(t, ne)
}

func TestRandmat_Range(t *testing.T) {
	m, err := matrix.Randmat(10, 10, matrix.WithSeed(7), matrix.WithRange(-3, -1))
	require.NoError(t, err)
	for _, v := range m.Raw() {
		require.GreaterOrEqual(t, v, -3.0)
		require.Less(t, v, -1.0)
	}

	def, err := matrix.Randmat(10, 10, matrix.WithSeed(7))
	require.NoError(t, err)
	for _, v := range def.Raw() {
		require.GreaterOrEqual(t, v, matrix.DefaultRandLow)
		require.Less(t, v, matrix.DefaultRandHigh)
	}

	_, err = matrix.Randmat(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
