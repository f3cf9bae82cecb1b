package lazy

import (
	"fmt"

	"github.com/linop-ml/linop/internal/tensor"
)

// DenseOperator wraps an already-materialized dense matrix in the Operator
// interface. It is the degenerate case of laziness: every query reads the
// stored array directly.
type DenseOperator struct {
	value   *tensor.Dense
	backend tensor.Backend
}

// NewDense wraps value in an operator. The operator aliases value rather
// than copying it; callers must not mutate value afterwards.
func NewDense(value *tensor.Dense, b tensor.Backend) *DenseOperator {
	if value.Dim() < 2 {
		panic(fmt.Sprintf("dense operator requires matrix dimensions, got shape %v", value.Shape()))
	}
	return &DenseOperator{value: value, backend: b}
}

// Shape returns the wrapped matrix shape.
func (d *DenseOperator) Shape() tensor.Shape {
	return d.value.Shape()
}

// MatMul multiplies the wrapped matrix with rhs.
func (d *DenseOperator) MatMul(rhs *tensor.Dense) *tensor.Dense {
	return d.backend.MatMul(d.value, rhs)
}

// TMatMul multiplies the transposed wrapped matrix with rhs.
func (d *DenseOperator) TMatMul(rhs *tensor.Dense) *tensor.Dense {
	return d.backend.MatMul(d.backend.Transpose(d.value), rhs)
}

// Evaluate returns the wrapped array itself, not a copy. Do not mutate the
// result.
func (d *DenseOperator) Evaluate() *tensor.Dense {
	return d.value
}

// Diagonal returns the main diagonal of the wrapped matrix.
func (d *DenseOperator) Diagonal() *tensor.Dense {
	return d.backend.Diagonal(d.value)
}

// Backend returns the compute backend.
func (d *DenseOperator) Backend() tensor.Backend {
	return d.backend
}
