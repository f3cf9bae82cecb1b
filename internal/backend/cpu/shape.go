package cpu

import (
	"fmt"

	"github.com/linop-ml/linop/internal/tensor"
)

// Transpose swaps the trailing two dimensions: (..., n, m) -> (..., m, n).
func (cpu *CPUBackend) Transpose(a *tensor.Dense) *tensor.Dense {
	batch, n, m := matrixDims("transpose", a)

	outShape := append(batch.Clone(), m, n)
	result, err := tensor.NewDense(outShape)
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}

	src := a.Data()
	out := result.Data()
	step := n * m
	for bi := 0; bi < batch.NumElements(); bi++ {
		off := bi * step
		for i := 0; i < n; i++ {
			for j := 0; j < m; j++ {
				out[off+j*n+i] = src[off+i*m+j]
			}
		}
	}
	return result
}

// Diagonal extracts the main diagonal of the trailing two dimensions:
// (..., n, m) -> (..., min(n, m)).
func (cpu *CPUBackend) Diagonal(a *tensor.Dense) *tensor.Dense {
	batch, n, m := matrixDims("diagonal", a)
	k := min(n, m)

	outShape := append(batch.Clone(), k)
	result, err := tensor.NewDense(outShape)
	if err != nil {
		panic(fmt.Sprintf("diagonal: %v", err))
	}

	src := a.Data()
	out := result.Data()
	step := n * m
	for bi := 0; bi < batch.NumElements(); bi++ {
		off := bi * step
		for i := 0; i < k; i++ {
			out[bi*k+i] = src[off+i*m+i]
		}
	}
	return result
}

// Expand broadcasts x to the given shape following NumPy rules.
// Panics if x cannot broadcast to shape.
func (cpu *CPUBackend) Expand(x *tensor.Dense, shape tensor.Shape) *tensor.Dense {
	joined, _, err := tensor.BroadcastShapes(x.Shape(), shape)
	if err != nil || !joined.Equal(shape) {
		panic(fmt.Sprintf("expand: cannot expand %v to %v", x.Shape(), shape))
	}

	result, err := tensor.NewDense(shape)
	if err != nil {
		panic(fmt.Sprintf("expand: %v", err))
	}

	src := x.Data()
	out := result.Data()
	xShape := x.Shape()
	for i := range out {
		out[i] = src[broadcastIndex(i, shape, xShape)]
	}
	return result
}
