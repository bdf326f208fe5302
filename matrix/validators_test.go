package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/groupformer/matrix"
	"github.com/stretchr/testify/require"
)

// mkDense builds a Dense from literal rows; the test fails on malformed input.
func mkDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i := range rows {
		for j := range rows[i] {
			require.NoError(t, m.Set(i, j, rows[i][j]))
		}
	}

	return m
}

func TestValidateSquare(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquare(mkDense(t, [][]float64{{1, 2}})), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateSquare(mkDense(t, [][]float64{{1}})))
}

func TestValidateSymmetric(t *testing.T) {
	sym := mkDense(t, [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))

	asym := mkDense(t, [][]float64{
		{0, 1},
		{1.5, 0},
	})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 0), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, -0.5)) // |tol| is used
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, math.NaN()), matrix.ErrNaNInf)
}

func TestValidateZeroDiagonal(t *testing.T) {
	require.NoError(t, matrix.ValidateZeroDiagonal(mkDense(t, [][]float64{{0, 4}, {4, 0}})))
	require.ErrorIs(t,
		matrix.ValidateZeroDiagonal(mkDense(t, [][]float64{{0, 4}, {4, 1}})),
		matrix.ErrNonZeroDiagonal)
}

func TestValidateNonNegative(t *testing.T) {
	require.NoError(t, matrix.ValidateNonNegative(mkDense(t, [][]float64{{0, 4}, {4, 0}})))
	require.ErrorIs(t,
		matrix.ValidateNonNegative(mkDense(t, [][]float64{{0, -1}, {4, 0}})),
		matrix.ErrNegative)
}

func TestPairSum(t *testing.T) {
	m := mkDense(t, [][]float64{
		{0, 1, 2, 4},
		{1, 0, 8, 16},
		{2, 8, 0, 32},
		{4, 16, 32, 0},
	})

	got, err := matrix.PairSum(m, []int{0, 1, 3})
	require.NoError(t, err)
	require.Equal(t, 1.0+4+16, got)

	// Generic path over the Matrix interface must agree with the Dense fast path.
	got, err = matrix.PairSum(interfaceOnly{m}, []int{0, 1, 3})
	require.NoError(t, err)
	require.Equal(t, 21.0, got)

	got, err = matrix.PairSum(m, []int{2})
	require.NoError(t, err)
	require.Zero(t, got)

	_, err = matrix.PairSum(m, []int{0, 4})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// interfaceOnly hides the concrete *Dense so PairSum takes the generic path.
type interfaceOnly struct{ matrix.Matrix }
