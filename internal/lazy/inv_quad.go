package lazy

import (
	"fmt"

	"github.com/linop-ml/linop/internal/tensor"
)

// InvQuadLogDet answers quadratic-form and log-determinant queries in one
// pass over the factor.
//
// For each right-hand-side column v it computes vᵀ (r rᵀ)⁻¹ v, summed
// across columns when reduceInvQuad is set, per column otherwise. When
// logDet is set it also computes the log-determinant of r rᵀ. rhs may be
// nil when only the determinant is wanted; requesting neither quantity is
// an error. Results not requested come back nil.
//
// With FastLogProb enabled in the operator's settings both quantities are
// approximated from the operator diagonal alone, which is exact precisely
// when the represented matrix is diagonal. Otherwise the exact factored
// path runs: one triangular solve for the quadratic form, the factor
// diagonal for the determinant.
func (r *Root) InvQuadLogDet(rhs *tensor.Dense, logDet, reduceInvQuad bool) (*tensor.Dense, *tensor.Dense, error) {
	if rhs == nil && !logDet {
		return nil, nil, ErrEmptyQuery
	}
	if rhs != nil {
		if err := r.checkRHS(rhs); err != nil {
			return nil, nil, err
		}
	}

	if r.config.FastLogProb() {
		return r.invQuadLogDetFast(rhs, logDet, reduceInvQuad)
	}
	return r.invQuadLogDetExact(rhs, logDet, reduceInvQuad)
}

// invQuadLogDetExact computes both quantities through the Cholesky factor
// supplied by the operator's factorer.
func (r *Root) invQuadLogDetExact(rhs *tensor.Dense, logDet, reduceInvQuad bool) (*tensor.Dense, *tensor.Dense, error) {
	l, err := r.factorer.CholeskyFactor()
	if err != nil {
		return nil, nil, err
	}

	var invQuad, ld *tensor.Dense
	if rhs != nil {
		// vᵀ (l lᵀ)⁻¹ v = ‖l⁻¹ v‖², one substitution per column.
		y := r.backend.SolveTriangular(l, rhs, false, false)
		invQuad = r.backend.SumDim(r.backend.Mul(y, y), -2, false)
		if reduceInvQuad {
			invQuad = r.backend.SumDim(invQuad, -1, false)
		}
	}
	if logDet {
		diag := r.backend.Diagonal(l)
		if err := checkPositiveDiag(diag); err != nil {
			return nil, nil, err
		}
		ld = r.backend.MulScalar(r.backend.SumDim(r.backend.Log(diag), -1, false), 2)
	}
	return invQuad, ld, nil
}

// invQuadLogDetFast approximates both quantities from the operator
// diagonal, treating the represented matrix as if it were diagonal.
func (r *Root) invQuadLogDetFast(rhs *tensor.Dense, logDet, reduceInvQuad bool) (*tensor.Dense, *tensor.Dense, error) {
	diag := r.Diagonal()

	var invQuad, ld *tensor.Dense
	if rhs != nil {
		// Σᵢ vᵢ² / dᵢ per column; the diagonal broadcasts across columns.
		col := diag.Reshape(append(diag.Shape().Clone(), 1))
		q := r.backend.Div(r.backend.Mul(rhs, rhs), col)
		invQuad = r.backend.SumDim(q, -2, false)
		if reduceInvQuad {
			invQuad = r.backend.SumDim(invQuad, -1, false)
		}
	}
	if logDet {
		if err := checkPositiveDiag(diag); err != nil {
			return nil, nil, err
		}
		ld = r.backend.SumDim(r.backend.Log(diag), -1, false)
	}
	return invQuad, ld, nil
}

// checkPositiveDiag verifies every entry of a diagonal is strictly
// positive, as the log-determinant requires. The comparison also rejects
// NaN entries.
func checkPositiveDiag(diag *tensor.Dense) error {
	for i, v := range diag.Data() {
		if !(v > 0) {
			return fmt.Errorf("log determinant: diagonal entry %d is %g: %w",
				i, v, tensor.ErrNotPositiveDefinite)
		}
	}
	return nil
}
