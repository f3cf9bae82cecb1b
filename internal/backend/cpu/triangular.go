package cpu

import (
	"fmt"

	"github.com/linop-ml/linop/internal/parallel"
	"github.com/linop-ml/linop/internal/tensor"
)

// SolveTriangular solves l @ x = rhs column-by-column by substitution,
// where l is triangular in its trailing two dimensions: lower when upper is
// false, upper otherwise. With transpose set, lᵀ @ x = rhs is solved
// without materializing the transpose. Batch dimensions broadcast.
//
// Zero pivots are not detected; they produce Inf/NaN in the result per
// IEEE arithmetic.
func (cpu *CPUBackend) SolveTriangular(l, rhs *tensor.Dense, upper, transpose bool) *tensor.Dense {
	lBatch, n, nAlt := matrixDims("solvetriangular", l)
	rBatch, rn, t := matrixDims("solvetriangular", rhs)

	if n != nAlt {
		panic(fmt.Sprintf("solvetriangular: triangular matrix must be square, got %v", l.Shape()))
	}
	if rn != n {
		panic(fmt.Sprintf("solvetriangular: dimension mismatch %v vs rhs %v", l.Shape(), rhs.Shape()))
	}

	outBatch := broadcastBatch("solvetriangular", lBatch, rBatch)
	outShape := append(outBatch.Clone(), n, t)

	result, err := tensor.NewDense(outShape)
	if err != nil {
		panic(fmt.Sprintf("solvetriangular: failed to create result: %v", err))
	}

	batchCount := outBatch.NumElements()
	lData := l.Data()
	rData := rhs.Data()
	out := result.Data()
	lStep, rStep := n*n, n*t

	// Substitution runs forward when the effective matrix is lower
	// triangular: a lower factor as-is, or an upper factor transposed.
	forward := (!upper && !transpose) || (upper && transpose)

	// One task per right-hand-side column across all batch entries; each
	// substitution is O(n²), so even a few columns are worth spreading.
	parallel.For(batchCount*t, func(task int) {
		bi := task / t
		col := task % t

		lOff := broadcastIndex(bi, outBatch, lBatch) * lStep
		rOff := broadcastIndex(bi, outBatch, rBatch) * rStep
		outOff := bi * rStep

		coef := func(i, j int) float64 {
			if transpose {
				return lData[lOff+j*n+i]
			}
			return lData[lOff+i*n+j]
		}

		if forward {
			for i := 0; i < n; i++ {
				sum := rData[rOff+i*t+col]
				for j := 0; j < i; j++ {
					sum -= coef(i, j) * out[outOff+j*t+col]
				}
				out[outOff+i*t+col] = sum / lData[lOff+i*n+i]
			}
		} else {
			for i := n - 1; i >= 0; i-- {
				sum := rData[rOff+i*t+col]
				for j := i + 1; j < n; j++ {
					sum -= coef(i, j) * out[outOff+j*t+col]
				}
				out[outOff+i*t+col] = sum / lData[lOff+i*n+i]
			}
		}
	}, parallel.HeavyConfig())

	return result
}
