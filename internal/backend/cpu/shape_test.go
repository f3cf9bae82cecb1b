package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linop-ml/linop/internal/tensor"
)

func TestTranspose(t *testing.T) {
	backend := New()

	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)

	at := backend.Transpose(a)
	require.True(t, at.Shape().Equal(tensor.Shape{3, 2}))
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, at.Data())
}

func TestTranspose_Batched(t *testing.T) {
	backend := New()

	a := tensor.Randn(tensor.Shape{2, 3, 4})
	at := backend.Transpose(a)
	require.True(t, at.Shape().Equal(tensor.Shape{2, 4, 3}))

	for bi := 0; bi < 2; bi++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 4; j++ {
				assert.Equal(t, a.At(bi, i, j), at.At(bi, j, i))
			}
		}
	}
}

func TestDiagonal(t *testing.T) {
	backend := New()

	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, tensor.Shape{3, 3})
	require.NoError(t, err)

	d := backend.Diagonal(a)
	require.True(t, d.Shape().Equal(tensor.Shape{3}))
	assert.Equal(t, []float64{1, 5, 9}, d.Data())
}

func TestDiagonal_Rectangular(t *testing.T) {
	backend := New()

	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, tensor.Shape{2, 5})
	require.NoError(t, err)

	d := backend.Diagonal(a)
	require.True(t, d.Shape().Equal(tensor.Shape{2}))
	assert.Equal(t, []float64{1, 7}, d.Data())
}

func TestDiagonal_Batched(t *testing.T) {
	backend := New()

	a := tensor.Randn(tensor.Shape{3, 4, 4})
	d := backend.Diagonal(a)
	require.True(t, d.Shape().Equal(tensor.Shape{3, 4}))

	for bi := 0; bi < 3; bi++ {
		for i := 0; i < 4; i++ {
			assert.Equal(t, a.At(bi, i, i), d.At(bi, i))
		}
	}
}

func TestExpand(t *testing.T) {
	backend := New()

	x, err := tensor.FromSlice([]float64{7}, tensor.Shape{1})
	require.NoError(t, err)

	y := backend.Expand(x, tensor.Shape{4})
	assert.Equal(t, []float64{7, 7, 7, 7}, y.Data())

	col, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2, 1})
	require.NoError(t, err)
	z := backend.Expand(col, tensor.Shape{2, 3})
	assert.Equal(t, []float64{1, 1, 1, 2, 2, 2}, z.Data())
}

func TestExpand_IncompatiblePanics(t *testing.T) {
	backend := New()

	x := tensor.Zeros(tensor.Shape{3})
	assert.Panics(t, func() { backend.Expand(x, tensor.Shape{4}) })
}
