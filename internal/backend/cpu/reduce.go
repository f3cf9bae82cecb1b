package cpu

import (
	"fmt"

	"github.com/linop-ml/linop/internal/tensor"
)

// SumDim sums elements along the specified dimension.
//
// Parameters:
//   - dim: dimension to reduce (supports negative indexing: -1 = last dim)
//   - keepDim: if true, keep the reduced dimension with size 1; if false, remove it
//
// Example:
//
//	x := tensor.Randn(tensor.Shape{2, 3, 4})
//	y := backend.SumDim(x, -1, true)  // shape: [2, 3, 1]
//	z := backend.SumDim(x, -1, false) // shape: [2, 3]
func (cpu *CPUBackend) SumDim(x *tensor.Dense, dim int, keepDim bool) *tensor.Dense {
	shape := x.Shape()
	ndim := x.Dim()

	// Normalize negative dimension
	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("sumdim: dimension %d out of range for %dD array", dim, ndim))
	}

	var outShape tensor.Shape
	if keepDim {
		outShape = shape.Clone()
		outShape[dim] = 1
	} else {
		outShape = make(tensor.Shape, 0, ndim-1)
		for i := 0; i < ndim; i++ {
			if i != dim {
				outShape = append(outShape, shape[i])
			}
		}
	}

	result, err := tensor.NewDense(outShape)
	if err != nil {
		panic(fmt.Sprintf("sumdim: %v", err))
	}

	// Row-major layout splits cleanly around the reduced dimension.
	outer := 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	dn := shape[dim]
	inner := 1
	for i := dim + 1; i < ndim; i++ {
		inner *= shape[i]
	}

	src := x.Data()
	out := result.Data()
	for o := 0; o < outer; o++ {
		for d := 0; d < dn; d++ {
			base := (o*dn + d) * inner
			outBase := o * inner
			for i := 0; i < inner; i++ {
				out[outBase+i] += src[base+i]
			}
		}
	}
	return result
}
