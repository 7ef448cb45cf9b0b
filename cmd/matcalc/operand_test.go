// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

func TestParseOperand(t *testing.T) {
	m, err := parseOperand("2x3: 1, 4, 2, 5, 3, 6")
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", m.String())

	sq, err := parseOperand("2:1,3,2,4,")
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", sq.String())

	uni, err := parseOperand("1×2:7,8")
	require.NoError(t, err)
	require.Equal(t, 2, uni.Cols())
}

func TestParseOperand_Errors(t *testing.T) {
	for _, s := range []string{"2x2", "axb:1", "2x2x2:1", "1x1:q"} {
		_, err := parseOperand(s)
		require.ErrorIs(t, err, errOperand, s)
	}

	_, err := parseOperand("2x2:1,2,3")
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = parseOperand("0x2:")
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestParseValues_DropsEmptyFields(t *testing.T) {
	vals, err := parseValues(" 1, ,2.5,, -3 ")
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2.5, -3}, vals)
}
