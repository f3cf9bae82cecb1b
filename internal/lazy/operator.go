// Package lazy implements lazily-evaluated linear operators for symmetric
// positive-definite matrices. An operator keeps whatever structure it was
// built from (a root factor, a plain dense array) and answers products,
// solves, and determinant queries from that structure instead of a
// materialized matrix.
package lazy

import (
	"github.com/linop-ml/linop/internal/tensor"
)

// Operator represents a batched matrix without committing to a dense
// layout. Shapes follow the substrate convention: trailing two dimensions
// are the matrix, leading dimensions are batch.
type Operator interface {
	// Shape returns the represented matrix shape, batch dimensions included.
	Shape() tensor.Shape

	// MatMul computes the product of the represented matrix with a dense
	// right-hand side, without materializing the matrix.
	MatMul(rhs *tensor.Dense) *tensor.Dense

	// TMatMul computes the product of the transposed represented matrix
	// with a dense right-hand side.
	TMatMul(rhs *tensor.Dense) *tensor.Dense

	// Evaluate materializes the represented matrix as a dense array.
	Evaluate() *tensor.Dense

	// Diagonal returns the main diagonal without materializing the matrix.
	Diagonal() *tensor.Dense

	// Backend returns the compute backend the operator dispatches to.
	Backend() tensor.Backend
}

// CholeskyFactorer yields a lower-triangular factor l with l @ lᵀ equal to
// the represented matrix. It is the single point where a derived operator
// changes how solves and determinants are produced; everything else is
// plain delegation.
type CholeskyFactorer interface {
	CholeskyFactor() (*tensor.Dense, error)
}
