package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fixturegen/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[int64](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense[float64](-3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDiagonal_OffDiagonalZero(t *testing.T) {
	d := []int64{2, -3, 5}
	m, err := matrix.NewDiagonal(d)
	require.NoError(t, err)
	require.Equal(t, 3, m.Size())
	require.True(t, m.IsDiagonal())
	require.Equal(t, [][]int64{{2, 0, 0}, {0, -3, 0}, {0, 0, 5}}, m.Rows())

	// The input slice is copied.
	d[0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(2), v)

	_, err = matrix.NewDiagonal([]float64{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFromRows_RejectsRagged(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromRows([][]int64{{1, 2}, {3, 4}, {5, 6}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestAtSet_Bounds(t *testing.T) {
	m, err := matrix.NewDense[float64](2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 4.5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestClone_Independent(t *testing.T) {
	m, err := matrix.FromRows([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))
	v, _ := m.At(0, 0)
	require.Equal(t, int64(1), v)
	require.False(t, c.IsDiagonal())
}

func TestString(t *testing.T) {
	m, err := matrix.FromRows([][]int64{{1, 0}, {0, -2}})
	require.NoError(t, err)
	require.Equal(t, "[1, 0]\n[0, -2]\n", m.String())
}
