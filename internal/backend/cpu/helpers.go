package cpu

import (
	"fmt"

	"github.com/linop-ml/linop/internal/tensor"
)

// broadcastIndex maps a flat index into the broadcast output shape to the
// flat index of an operand with the given (smaller or size-1-padded) shape.
func broadcastIndex(flatIdx int, outShape, inShape tensor.Shape) int {
	outStrides := outShape.ComputeStrides()
	inStrides := inShape.ComputeStrides()

	inIdx := 0
	offset := len(outShape) - len(inShape)
	temp := flatIdx
	for i := 0; i < len(outShape); i++ {
		dimIdx := temp / outStrides[i]
		temp %= outStrides[i]

		j := i - offset
		if j < 0 {
			continue
		}
		if inShape[j] == 1 {
			continue // broadcast dimension, always index 0
		}
		inIdx += dimIdx * inStrides[j]
	}
	return inIdx
}

// matrixDims validates that a has matrix dimensions and returns its batch
// shape along with the trailing (rows, cols).
func matrixDims(op string, a *tensor.Dense) (batch tensor.Shape, n, m int) {
	if a.Dim() < 2 {
		panic(fmt.Sprintf("%s: expected at least 2 dimensions, got shape %v", op, a.Shape()))
	}
	return a.Shape().Batch(), a.Rows(), a.Cols()
}

// broadcastBatch broadcasts the batch shapes of two operands, panicking
// with the op name on incompatibility.
func broadcastBatch(op string, a, b tensor.Shape) tensor.Shape {
	out, _, err := tensor.BroadcastShapes(a, b)
	if err != nil {
		panic(fmt.Sprintf("%s: batch dimensions: %v", op, err))
	}
	return out
}
