// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

func TestValidators(t *testing.T) {
	sq := MustDense(t, 2, 2)
	wide := MustDense(t, 2, 3)
	var empty matrix.Dense

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(&empty))

	require.ErrorIs(t, matrix.ValidateInitialized(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateInitialized(&empty), matrix.ErrUninitialized)
	require.NoError(t, matrix.ValidateInitialized(sq))

	require.NoError(t, matrix.ValidateSameShape(sq, sq))
	require.ErrorIs(t, matrix.ValidateSameShape(sq, wide), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(wide), matrix.ErrNonSquare)

	require.ErrorIs(t, matrix.ValidateBinarySameShape(sq, &empty), matrix.ErrUninitialized)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(sq, wide), matrix.ErrDimensionMismatch)

	require.ErrorIs(t, matrix.ValidateSquareInitialized(&empty), matrix.ErrUninitialized)
	require.ErrorIs(t, matrix.ValidateSquareInitialized(wide), matrix.ErrNonSquare)

	require.NoError(t, matrix.ValidateMulCompatible(sq, wide))
	require.ErrorIs(t, matrix.ValidateMulCompatible(wide, sq), matrix.ErrDimensionMismatch)
}

// TestValidators_ErrorPriority checks nil before uninitialized before shape.
func TestValidators_ErrorPriority(t *testing.T) {
	var empty matrix.Dense
	err := matrix.ValidateBinarySameShape(nil, &empty)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.NotErrorIs(t, err, matrix.ErrUninitialized)

	_, err = matrix.Pow(&empty, -1)
	require.ErrorIs(t, err, matrix.ErrUninitialized)
	require.NotErrorIs(t, err, matrix.ErrInvalidExponent)

	_, err = matrix.Pow(MustDense(t, 1, 2), -1)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
