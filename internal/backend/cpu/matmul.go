package cpu

import (
	"fmt"

	"github.com/linop-ml/linop/internal/parallel"
	"github.com/linop-ml/linop/internal/tensor"
)

// MatMul performs batched matrix multiplication:
// (..., n, k) @ (..., k, m) -> (..., n, m), with leading batch dimensions
// broadcast NumPy-style. Rows of the output are computed in parallel.
func (cpu *CPUBackend) MatMul(a, b *tensor.Dense) *tensor.Dense {
	aBatch, n, k := matrixDims("matmul", a)
	bBatch, kAlt, m := matrixDims("matmul", b)

	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch %v @ %v (inner dimensions %d vs %d)",
			a.Shape(), b.Shape(), k, kAlt))
	}

	outBatch := broadcastBatch("matmul", aBatch, bBatch)
	outShape := append(outBatch.Clone(), n, m)

	result, err := tensor.NewDense(outShape)
	if err != nil {
		panic(fmt.Sprintf("matmul: failed to create result: %v", err))
	}

	batchCount := outBatch.NumElements()
	aData := a.Data()
	bData := b.Data()
	out := result.Data()
	aStep, bStep, outStep := n*k, k*m, n*m

	// One task per output row across all batch entries.
	parallel.For(batchCount*n, func(task int) {
		bi := task / n
		i := task % n

		aOff := broadcastIndex(bi, outBatch, aBatch)*aStep + i*k
		bOff := broadcastIndex(bi, outBatch, bBatch) * bStep
		outOff := bi*outStep + i*m

		for j := 0; j < m; j++ {
			sum := 0.0
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += aData[aOff+kIdx] * bData[bOff+kIdx*m+j]
			}
			out[outOff+j] = sum
		}
	}, cpu.par)

	return result
}
